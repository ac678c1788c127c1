package libgroup

import (
	"sort"

	"github.com/2x3systems/gogroup/gogroup"
)

// isCentral reports whether x commutes with every generator. Commuting with
// a generating set implies commuting with everything it generates, so this
// is equivalent to x lying in the center.
func (G *Group) isCentral(x gogroup.Element) bool {
	for g := gogroup.GenIdx(0); int(g) < G.Degree(); g++ {
		gen := G.Generator(g)
		if G.op[x][gen] != G.op[gen][x] {
			return false
		}
	}
	return true
}

// computeAbelian: the group is abelian iff every generator is central.
func (G *Group) computeAbelian() bool {
	for g := gogroup.GenIdx(0); int(g) < G.Degree(); g++ {
		if !G.isCentral(G.Generator(g)) {
			return false
		}
	}
	return true
}

// computeDihedral runs cheap rejections before searching for a pair of
// order-2 elements that spans the group. Only evaluated for non-abelian
// groups.
func (G *Group) computeDihedral() bool {
	if G.factors[0] != 2 {
		return false // dihedral groups have even order
	}

	var invols []gogroup.Element
	for x, k := range G.orders {
		if k == 2 {
			invols = append(invols, gogroup.Element(x))
		}
	}
	if len(invols) < 2 {
		return false
	}

	if len(G.factors) == 2 {
		// order 2·prime: a non-abelian group of this order is dihedral
		return true
	}

	for i := 1; i < len(invols); i++ {
		for j := 0; j < i; j++ {
			if G.Generates([]gogroup.Element{invols[i], invols[j]}) {
				return true
			}
		}
	}
	return false
}

// Center returns the elements that commute with every generator.
//
// For an abelian group the center is the whole group; asking for it is
// reported as ErrGroupIsAbelian so the caller can special-case the trivial
// answer without a table walk.
func (G *Group) Center() ([]gogroup.Element, error) {
	if G.abelian {
		return nil, gogroup.ErrGroupIsAbelian
	}

	var center []gogroup.Element
	for x := 0; x < G.Order(); x++ {
		if G.isCentral(gogroup.Element(x)) {
			center = append(center, gogroup.Element(x))
		}
	}
	return center, nil
}

// CommutatorSet returns the set of commutators x·y·x⁻¹·y⁻¹ over all pairs of
// distinct non-identity elements, in ascending element order. Both pair
// orientations are folded in.
//
// This is the raw commutator set, not its closure under the operation, so it
// equals the derived subgroup only when it happens to already be closed.
// DerivedSubgroup applies the closure.
func (G *Group) CommutatorSet() []gogroup.Element {
	n := G.Order()
	seen := make([]bool, n)
	for i := 2; i < n; i++ {
		for j := 1; j < i; j++ {
			x, y := gogroup.Element(i), gogroup.Element(j)
			seen[G.commutator(x, y)] = true
			seen[G.commutator(y, x)] = true
		}
	}

	var set []gogroup.Element
	for x, hit := range seen {
		if hit {
			set = append(set, gogroup.Element(x))
		}
	}
	return set
}

func (G *Group) commutator(x, y gogroup.Element) gogroup.Element {
	xy := G.op[x][y]
	return G.op[G.op[xy][G.inv[x]]][G.inv[y]]
}

// DerivedSubgroup returns the subgroup generated by the commutators: the
// closure of CommutatorSet under the group operation, in ascending element
// order.
func (G *Group) DerivedSubgroup() []gogroup.Element {
	set := G.Closure(G.CommutatorSet())
	sort.Slice(set, func(i, j int) bool { return set[i] < set[j] })
	return set
}
