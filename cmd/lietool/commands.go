// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"math/rand/v2"
	"strconv"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/katalvlaran/lietensor/config"
	"github.com/katalvlaran/lietensor/lie"
)

// seedMix matches the second PCG word the engine derives from its seed.
const seedMix = 0x9e3779b97f4a7c15

// app carries the state shared by every subcommand.
type app struct {
	out    io.Writer
	logger *zap.Logger
	engine *lie.Engine
}

// unaryFn is any engine method of the shape Tensor -> Tensor.
type unaryFn func(e *lie.Engine, x *lie.Tensor) (*lie.Tensor, error)

// newRootCmd wires the command tree; results are written to out.
func newRootCmd(out io.Writer) *cobra.Command {
	a := &app{out: out}
	root := &cobra.Command{
		Use:           "lietool",
		Short:         "Evaluate batched Lie group kernels",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup()
		},
		PersistentPostRun: func(cmd *cobra.Command, _ []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}
	root.SetOut(out)

	root.AddCommand(
		a.unaryCmd("exp", "Exponential map of algebra elements", (*lie.Engine).Exp),
		a.unaryCmd("log", "Logarithm map of group elements", (*lie.Engine).Log),
		a.unaryCmd("inv", "Group inverse", (*lie.Engine).Inv),
		a.matrixCmd(),
		a.randnCmd(),
		a.kindsCmd(),
	)

	return root
}

// setup builds the logger and engine from the environment.
func (a *app) setup() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if a.logger, err = cfg.NewLogger(); err != nil {
		return err
	}
	a.engine, err = cfg.NewEngine(a.logger)

	return err
}

func (a *app) unaryCmd(name, short string, fn unaryFn) *cobra.Command {
	return &cobra.Command{
		Use:   name + " KIND VALUE...",
		Short: short,
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, err := parseTensor(args[0], args[1:])
			if err != nil {
				return err
			}
			y, err := fn(a.engine, x)
			if err != nil {
				return err
			}
			a.logger.Debug("lietool result", zap.String("cmd", name), zap.Int("rows", y.Len()))

			return writeRows(a.out, y.Kind().String(), y.Data(), y.Kind().Width())
		},
	}
}

func (a *app) matrixCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "matrix KIND VALUE...",
		Short: "Matrix form of group elements",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, err := parseTensor(args[0], args[1:])
			if err != nil {
				return err
			}
			m, err := a.engine.Matrix(x)
			if err != nil {
				return err
			}

			return writeRows(a.out, "matrix", m.Data(), m.Width())
		},
	}
}

// randnFlags are the options of the randn subcommand.
type randnFlags struct {
	sigma []float64
	batch []int
	seed  uint64
}

func (f *randnFlags) register(fs *pflag.FlagSet) {
	fs.Float64SliceVar(&f.sigma, "sigma", nil, "per-block standard deviations (empty means 1)")
	fs.IntSliceVar(&f.batch, "batch", []int{1}, "batch shape")
	fs.Uint64Var(&f.seed, "seed", 0, "generator seed (default: engine generator)")
}

func (a *app) randnCmd() *cobra.Command {
	var f randnFlags
	cmd := &cobra.Command{
		Use:   "randn KIND",
		Short: "Sample random elements around the identity",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := lie.ParseKind(args[0])
			if err != nil {
				return err
			}
			var r *rand.Rand
			if cmd.Flags().Changed("seed") {
				r = rand.New(rand.NewPCG(f.seed, f.seed^seedMix))
			}
			x, err := a.engine.Randn(r, kind, f.sigma, f.batch...)
			if err != nil {
				return err
			}

			return writeRows(a.out, kind.String(), x.Data(), kind.Width())
		},
	}
	f.register(cmd.Flags())

	return cmd
}

func (a *app) kindsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "kinds",
		Short: "List the supported kinds and their widths",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, k := range lie.Kinds() {
				if _, err := fmt.Fprintf(a.out, "%-6s width=%d pair=%s\n", k, k.Width(), k.Pair()); err != nil {
					return err
				}
			}

			return nil
		},
	}
}

// parseTensor reads a flat list of numbers as a batch of kind elements.
func parseTensor(kindName string, args []string) (*lie.Tensor, error) {
	kind, err := lie.ParseKind(kindName)
	if err != nil {
		return nil, err
	}
	values, err := parseFloats(args)
	if err != nil {
		return nil, err
	}
	w := kind.Width()
	if len(values)%w != 0 {
		return nil, fmt.Errorf("%s expects a multiple of %d values, got %d", kind, w, len(values))
	}

	return lie.FromSlice(kind, values, len(values)/w)
}

func parseFloats(args []string) ([]float64, error) {
	var firstErr error
	values := lo.Map(args, func(s string, i int) float64 {
		v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil && firstErr == nil {
			firstErr = fmt.Errorf("value %d: %w", i, err)
		}
		return v
	})

	return values, firstErr
}

// writeRows prints data as one line per width-sized row.
func writeRows(w io.Writer, label string, data []float64, width int) error {
	rows := lo.Chunk(data, width)
	for i, row := range rows {
		cells := lo.Map(row, func(v float64, _ int) string { return strconv.FormatFloat(v, 'g', -1, 64) })
		if _, err := fmt.Fprintf(w, "%s[%d] %s\n", label, i, strings.Join(cells, " ")); err != nil {
			return err
		}
	}

	return nil
}
