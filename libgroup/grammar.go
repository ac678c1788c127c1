package libgroup

import (
	"github.com/alecthomas/participle/v2"
	"github.com/pkg/errors"

	"github.com/2x3systems/gogroup/gogroup"
)

// MaxPoints caps the 1-based points a cycle may move.
const MaxPoints = 64

// GenExpr is a parsed generator expression: one permutation per part (parts
// separated by ";"), each part a product of cycles over 1-based points:
//
//	(1 2 3)(4 5); (2 3)
type GenExpr struct {
	Gens []*PermExpr `(@@ (";" @@)*)?`
}

type PermExpr struct {
	Cycles []*CycleExpr `@@+`
}

type CycleExpr struct {
	Points []int64 `"(" @Int+ ")"`
}

var parseGenExpr = participle.MustBuild[GenExpr]()

// ParseGenExpr parses a generator expression without building anything.
func ParseGenExpr(expr string) (*GenExpr, error) {
	Xexpr, err := parseGenExpr.ParseString("", expr)
	if err != nil {
		return nil, errors.Wrap(gogroup.ErrBadGenExpr, err.Error())
	}
	return Xexpr, nil
}

// BuildCayleyGraph builds the Cayley graph of the permutation group that the
// parsed expression generates. Group elements are numbered in closure
// discovery order with the identity at index 0.
func BuildCayleyGraph(Xexpr *GenExpr) (*CayleyGraph, error) {
	if len(Xexpr.Gens) == 0 {
		return nil, errors.Wrap(gogroup.ErrBadGenExpr, "no generators")
	}

	numPoints := 0
	for _, gen := range Xexpr.Gens {
		for _, cyc := range gen.Cycles {
			for _, pt := range cyc.Points {
				if pt < 1 || pt > MaxPoints {
					return nil, gogroup.ErrBadPoint
				}
				if int(pt) > numPoints {
					numPoints = int(pt)
				}
			}
		}
	}

	gens := make([][]int, len(Xexpr.Gens))
	for gi, gen := range Xexpr.Gens {
		perm := identityPerm(numPoints)
		for _, cyc := range gen.Cycles {
			if err := applyCycle(perm, cyc.Points); err != nil {
				return nil, err
			}
		}
		gens[gi] = perm
	}

	return closePermGroup(gens)
}

func identityPerm(n int) []int {
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}
	return perm
}

// applyCycle composes one cycle onto perm, left to right: the result maps a
// point through perm first, then through the cycle.
func applyCycle(perm []int, points []int64) error {
	cycle := identityPerm(len(perm))
	for i, pt := range points {
		from := int(pt) - 1
		to := int(points[(i+1)%len(points)]) - 1
		if cycle[from] != from {
			return errors.Wrap(gogroup.ErrBadPoint, "point repeats within a cycle")
		}
		cycle[from] = to
	}
	for i := range perm {
		perm[i] = cycle[perm[i]]
	}
	return nil
}

// compose returns p then q: compose(p, q)[i] = q[p[i]].
func compose(p, q []int) []int {
	pq := make([]int, len(p))
	for i, pi := range p {
		pq[i] = q[pi]
	}
	return pq
}

func permKey(perm []int) string {
	key := make([]byte, len(perm))
	for i, p := range perm {
		key[i] = byte(p)
	}
	return string(key)
}

// closePermGroup enumerates the subgroup of S_n generated by gens (as point
// permutations) and re-expresses it as a Cayley graph over element indices.
// The enumeration is the same breadth-first walk the table decoder later
// retraces, so the graph is connected by construction.
func closePermGroup(gens [][]int) (*CayleyGraph, error) {
	n := len(gens[0])

	index := make(map[string]gogroup.Element)
	var elems [][]int

	add := func(perm []int) gogroup.Element {
		key := permKey(perm)
		if id, found := index[key]; found {
			return id
		}
		id := gogroup.Element(len(elems))
		index[key] = id
		elems = append(elems, perm)
		return id
	}

	add(identityPerm(n))

	out := make([][]gogroup.Element, len(gens))

	// Work-list closure: out[g] grows in lockstep with elems, so out[g][x]
	// lands at index x as x is dequeued.
	for at := 0; at < len(elems); at++ {
		if len(elems) > gogroup.MaxGroupOrder {
			return nil, gogroup.ErrOrderExceeded
		}
		x := elems[at]
		for gi, gen := range gens {
			out[gi] = append(out[gi], add(compose(x, gen)))
		}
	}

	return NewCayleyGraph(out)
}
