package libgroup

import (
	"github.com/2x3systems/gogroup/gogroup"
)

// Closure returns the subgroup generated by gens: the breadth-first closure
// of the identity under right-multiplication by each of gens. The result is
// in discovery order, which is stable for a given input.
func (G *Group) Closure(gens []gogroup.Element) []gogroup.Element {
	seen := make([]bool, G.Order())
	seen[gogroup.Identity] = true

	closure := make([]gogroup.Element, 0, G.Order())
	closure = append(closure, gogroup.Identity)

	for at := 0; at < len(closure); at++ {
		x := closure[at]
		for _, g := range gens {
			y := G.op[x][g]
			if !seen[y] {
				seen[y] = true
				closure = append(closure, y)
			}
		}
	}

	return closure
}

// Generates reports whether gens span the whole group.
func (G *Group) Generates(gens []gogroup.Element) bool {
	return len(G.Closure(gens)) == G.Order()
}
