// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lietensor/lie"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()

	return out.String(), err
}

func TestExpIdentity(t *testing.T) {
	out, err := run(t, "exp", "so3", "0", "0", "0", "0", "0", "0")
	require.NoError(t, err)
	require.Equal(t, "SO3[0] 0 0 0 1\nSO3[1] 0 0 0 1\n", out)
}

func TestLogHalfTurn(t *testing.T) {
	out, err := run(t, "log", "SO3", "1", "0", "0", "0")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(out, "so3[0] 3.14159"), out)
}

func TestMatrixRows(t *testing.T) {
	out, err := run(t, "matrix", "SE3", "1", "2", "3", "0", "0", "0", "1")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 4)
	require.Equal(t, "matrix[0] 1 0 0 1", lines[0])
	require.Equal(t, "matrix[3] 0 0 0 1", lines[3])
}

func TestRandnSeeded(t *testing.T) {
	a, err := run(t, "randn", "Sim3", "--sigma", "0.1,0.2,0.05", "--batch", "2,3", "--seed", "7")
	require.NoError(t, err)
	b, err := run(t, "randn", "Sim3", "--sigma", "0.1,0.2,0.05", "--batch", "2,3", "--seed", "7")
	require.NoError(t, err)
	require.Equal(t, a, b)
	require.Len(t, strings.Split(strings.TrimSpace(a), "\n"), 6)
}

func TestKinds(t *testing.T) {
	out, err := run(t, "kinds")
	require.NoError(t, err)
	require.Len(t, strings.Split(strings.TrimSpace(out), "\n"), len(lie.Kinds()))
	require.Contains(t, out, "Sim3   width=8 pair=sim3")
}

func TestRejections(t *testing.T) {
	_, err := run(t, "exp", "se4", "0")
	require.ErrorIs(t, err, lie.ErrConfig)

	_, err = run(t, "exp", "so3", "1", "2")
	require.ErrorContains(t, err, "multiple of 3")

	_, err = run(t, "exp", "so3", "1", "x", "3")
	require.ErrorContains(t, err, "value 1")

	_, err = run(t, "exp", "SO3", "0", "0", "0", "1")
	require.ErrorIs(t, err, lie.ErrUnsupported)

	_, err = run(t, "randn", "so3", "--sigma=-1")
	require.ErrorIs(t, err, lie.ErrConfig)
}
