package libgroup

import (
	"github.com/2x3systems/gogroup/gogroup"
)

// CayleyGraph is the labeled multigraph of a finite group's right-multiplication
// action: vertices are group elements, and each generator g contributes one out
// edge per vertex, OutEdge(x, g) = x·gen_g.
type CayleyGraph struct {
	order int
	out   [][]gogroup.Element // out[g][x] = x·gen_g
	in    [][]gogroup.Element // in[g][x] = the y with out[g][y] == x
}

// NewCayleyGraph builds the graph from one permutation of [0,order) per
// generator: perms[g][x] is the right-multiplication image x·gen_g.
// Each perm must be a bijection; the in-edge tables are derived from it.
func NewCayleyGraph(perms [][]gogroup.Element) (*CayleyGraph, error) {
	if len(perms) == 0 || len(perms[0]) == 0 {
		return nil, gogroup.ErrNotPermutation
	}
	order := len(perms[0])
	if order > gogroup.MaxGroupOrder {
		return nil, gogroup.ErrOrderExceeded
	}

	gr := &CayleyGraph{
		order: order,
		out:   make([][]gogroup.Element, len(perms)),
		in:    make([][]gogroup.Element, len(perms)),
	}

	for g, perm := range perms {
		if len(perm) != order {
			return nil, gogroup.ErrNotPermutation
		}
		out := make([]gogroup.Element, order)
		in := make([]gogroup.Element, order)
		seen := make([]bool, order)
		for x, y := range perm {
			if y < 0 || int(y) >= order || seen[y] {
				return nil, gogroup.ErrNotPermutation
			}
			seen[y] = true
			out[x] = y
			in[y] = gogroup.Element(x)
		}
		gr.out[g] = out
		gr.in[g] = in
	}

	return gr, nil
}

// Order returns the number of vertices (group elements).
func (gr *CayleyGraph) Order() int {
	return gr.order
}

// Degree returns the number of generators.
func (gr *CayleyGraph) Degree() int {
	return len(gr.out)
}

// OutEdge returns x·gen_g.
func (gr *CayleyGraph) OutEdge(x gogroup.Element, g gogroup.GenIdx) gogroup.Element {
	return gr.out[g][x]
}

// InEdge returns the unique y with y·gen_g == x.
func (gr *CayleyGraph) InEdge(x gogroup.Element, g gogroup.GenIdx) gogroup.Element {
	return gr.in[g][x]
}

// BFS walks the graph breadth-first from root and returns, per vertex, the
// generator label of its spanning-tree edge. The root is labeled TreeRoot and
// vertices the walk never reaches stay TreeUnreached (the generators do not
// span the element set).
func (gr *CayleyGraph) BFS(root gogroup.Element) []gogroup.TreeLabel {
	tree := make([]gogroup.TreeLabel, gr.order)
	for i := range tree {
		tree[i] = gogroup.TreeUnreached
	}
	tree[root] = gogroup.TreeRoot

	queue := make([]gogroup.Element, 0, gr.order)
	queue = append(queue, root)
	for len(queue) > 0 {
		x := queue[0]
		queue = queue[1:]
		for g := range gr.out {
			y := gr.out[g][x]
			if tree[y] == gogroup.TreeUnreached {
				tree[y] = gogroup.TreeLabel(g)
				queue = append(queue, y)
			}
		}
	}

	return tree
}
