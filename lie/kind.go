// SPDX-License-Identifier: MIT

// Package lie - Kind descriptor table.
//
// Purpose:
//   - One closed tag per group/algebra kind; one static descriptor per tag.
//   - Lookups are total over the closed set. An out-of-range Kind value is a
//     programmer error and panics (it can only be produced by a conversion).
//
// AI-Hints:
//   - Use Pair to move between a group and its algebra.
//   - Use Supports before dispatching in generic code; operations already check it.

package lie

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
)

// Kind tags a Tensor as an element of one of the supported groups or algebras.
type Kind uint8

// Group kinds followed by their algebras.
const (
	SO3 Kind = iota
	SE3
	RxSO3
	Sim3
	SO3Alg
	SE3Alg
	RxSO3Alg
	Sim3Alg

	numKinds // sentinel; keep last
)

// Op names an operation of the kernel set.
type Op uint8

const (
	OpExp Op = iota
	OpLog
	OpInv
	OpMul
	OpAct
	OpAdj
	OpAdjT
	OpJinvp
	OpRetr
	OpMatrix
	OpRandn
	OpJr
)

var opNames = [...]string{
	OpExp: "Exp", OpLog: "Log", OpInv: "Inv", OpMul: "Mul", OpAct: "Act",
	OpAdj: "Adj", OpAdjT: "AdjT", OpJinvp: "Jinvp", OpRetr: "Retr",
	OpMatrix: "Matrix", OpRandn: "Randn", OpJr: "Jr",
}

// String returns the operation name.
func (o Op) String() string {
	if int(o) < len(opNames) {
		return opNames[o]
	}

	return fmt.Sprintf("Op(%d)", uint8(o))
}

// descriptor is the static metadata of one kind.
type descriptor struct {
	name      string
	width     int
	pair      Kind
	identity  []float64
	sigmaLens []int // accepted sampler sigma lengths
	ops       []Op
	fam       family
}

var groupOps = []Op{OpLog, OpInv, OpMul, OpAct, OpAdj, OpAdjT, OpJinvp, OpRetr, OpMatrix, OpRandn}

// descriptors is indexed by Kind. Families are stateless values shared by a
// group and its algebra.
var descriptors = [numKinds]descriptor{
	SO3: {
		name: "SO3", width: 4, pair: SO3Alg,
		identity:  []float64{0, 0, 0, 1},
		sigmaLens: []int{1},
		ops:       groupOps, fam: so3Family{},
	},
	SE3: {
		name: "SE3", width: 7, pair: SE3Alg,
		identity:  []float64{0, 0, 0, 0, 0, 0, 1},
		sigmaLens: []int{1, 2, 4},
		ops:       groupOps, fam: se3Family{},
	},
	RxSO3: {
		name: "RxSO3", width: 5, pair: RxSO3Alg,
		identity:  []float64{0, 0, 0, 1, 1},
		sigmaLens: []int{1, 2},
		ops:       groupOps, fam: rxso3Family{},
	},
	Sim3: {
		name: "Sim3", width: 8, pair: Sim3Alg,
		identity:  []float64{0, 0, 0, 0, 0, 0, 1, 1},
		sigmaLens: []int{1, 3, 5},
		ops:       groupOps, fam: sim3Family{},
	},
	SO3Alg: {
		name: "so3", width: 3, pair: SO3,
		identity:  []float64{0, 0, 0},
		sigmaLens: []int{1},
		ops:       []Op{OpExp, OpRandn, OpJr}, fam: so3Family{},
	},
	SE3Alg: {
		name: "se3", width: 6, pair: SE3,
		identity:  []float64{0, 0, 0, 0, 0, 0},
		sigmaLens: []int{1, 2, 4},
		ops:       []Op{OpExp, OpRandn}, fam: se3Family{},
	},
	RxSO3Alg: {
		name: "rxso3", width: 4, pair: RxSO3,
		identity:  []float64{0, 0, 0, 0},
		sigmaLens: []int{1, 2},
		ops:       []Op{OpExp, OpRandn}, fam: rxso3Family{},
	},
	Sim3Alg: {
		name: "sim3", width: 7, pair: Sim3,
		identity:  []float64{0, 0, 0, 0, 0, 0, 0},
		sigmaLens: []int{1, 3, 5},
		ops:       []Op{OpExp, OpRandn}, fam: sim3Family{},
	},
}

// desc returns the descriptor of k, panicking on values outside the closed set.
func (k Kind) desc() *descriptor {
	if k >= numKinds {
		panic(fmt.Sprintf("lie: unknown kind %d", uint8(k)))
	}

	return &descriptors[k]
}

// String returns the canonical name ("SO3", "se3", ...).
func (k Kind) String() string { return k.desc().name }

// Width returns the per-element storage width.
func (k Kind) Width() int { return k.desc().width }

// Pair returns the paired kind (group ↔ algebra).
func (k Kind) Pair() Kind { return k.desc().pair }

// IsGroup reports whether k is a group kind.
func (k Kind) IsGroup() bool {
	k.desc() // fail fast on unknown values
	return k < SO3Alg
}

// IsAlgebra reports whether k is an algebra kind.
func (k Kind) IsAlgebra() bool { return !k.IsGroup() }

// Group returns the group kind of k's family (k itself for group kinds).
func (k Kind) Group() Kind {
	if k.IsGroup() {
		return k
	}

	return k.Pair()
}

// Algebra returns the algebra kind of k's family (k itself for algebra kinds).
func (k Kind) Algebra() Kind {
	if k.IsAlgebra() {
		return k
	}

	return k.Pair()
}

// Identity returns a fresh copy of the identity element.
// For algebras this is the zero vector.
func (k Kind) Identity() []float64 { return append([]float64(nil), k.desc().identity...) }

// SigmaLens returns the accepted sampler sigma lengths.
func (k Kind) SigmaLens() []int { return append([]int(nil), k.desc().sigmaLens...) }

// Supports reports whether op is defined for k.
func (k Kind) Supports(op Op) bool { return lo.Contains(k.desc().ops, op) }

// family returns the kernel family shared by k and its pair.
func (k Kind) family() family { return k.desc().fam }

// Kinds returns every kind, groups first.
func Kinds() []Kind {
	return lo.Map(lo.Range(int(numKinds)), func(i int, _ int) Kind { return Kind(i) })
}

// ParseKind resolves a canonical kind name. Names are case-sensitive:
// "SE3" is the group, "se3" the algebra.
// Errors: ErrConfig for unknown names.
func ParseKind(name string) (Kind, error) {
	name = strings.TrimSpace(name)
	for _, k := range Kinds() {
		if k.String() == name {
			return k, nil
		}
	}

	return 0, lieErrorf("ParseKind", fmt.Errorf("%w: unknown kind %q", ErrConfig, name))
}
