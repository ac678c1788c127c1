package libgroup

import (
	"fmt"
	"strings"

	"github.com/2x3systems/gogroup/gogroup"
)

// Group is the fully decoded multiplication table of a finite group plus the
// invariants derived from it. A Group is immutable once constructed and safe
// for concurrent readers; construction itself is single-threaded.
type Group struct {
	graph  *CayleyGraph
	op     [][]gogroup.Element // op[x][y] = x·y
	inv    []gogroup.Element   // inv[x]·x == identity (and vice versa)
	orders []int

	factors     []int
	orderStats  []gogroup.OrderCount
	pOrderStats []gogroup.POrderCount
	abelian     bool
	dihedral    bool
}

var _ gogroup.GroupView = (*Group)(nil)

// NewGroupFromExpr parses a generator expression, builds its Cayley graph,
// and decodes the graph into a Group.
func NewGroupFromExpr(expr string) (*Group, error) {
	Xexpr, err := ParseGenExpr(expr)
	if err != nil {
		return nil, err
	}
	gr, err := BuildCayleyGraph(Xexpr)
	if err != nil {
		return nil, err
	}
	return NewGroup(gr)
}

// NewGroup decodes gr into a Group using the graph's own BFS spanning tree
// rooted at the identity.
func NewGroup(gr *CayleyGraph) (*Group, error) {
	return NewGroupWithTree(gr, gr.BFS(gogroup.Identity))
}

// NewGroupWithTree decodes gr using a caller-supplied spanning tree.
//
// Construction fails with ErrTreeNotSpanning if the tree does not reach every
// vertex, which means the graph's generators do not generate the whole
// element set. Each derived structure is assigned only after the structures
// it depends on are complete, so a failed construction leaks nothing.
func NewGroupWithTree(gr *CayleyGraph, tree []gogroup.TreeLabel) (*Group, error) {
	G := &Group{
		graph: gr,
	}
	if err := G.fillTable(tree); err != nil {
		return nil, err
	}
	G.computeOrders()
	G.computeOrderStats()
	G.computePOrderStats()
	G.abelian = G.computeAbelian()
	if !G.abelian {
		G.dihedral = G.computeDihedral()
	}
	return G, nil
}

// fillTable decodes the spanning tree into one generator word per element and
// replays each word from every element, filling one table column per word.
// A replay that lands on the identity pins an inverse as a side effect.
func (G *Group) fillTable(tree []gogroup.TreeLabel) error {
	gr := G.graph
	n := gr.Order()
	if len(tree) != n {
		return gogroup.ErrTreeNotSpanning
	}

	G.op = make([][]gogroup.Element, n)
	for x := range G.op {
		G.op[x] = make([]gogroup.Element, n)
	}
	G.inv = make([]gogroup.Element, n)

	var word []gogroup.GenIdx
	for i := 0; i < n; i++ {
		word = word[:0]

		// Collect the tree-edge labels from i back to the root, then reverse:
		// replaying word from the identity lands on i, and replaying it from
		// any j lands on j·i.
		v := gogroup.Element(i)
		for tree[v] != gogroup.TreeRoot {
			label := tree[v]
			if label == gogroup.TreeUnreached || len(word) >= n {
				return gogroup.ErrTreeNotSpanning
			}
			g := gogroup.GenIdx(label)
			word = append(word, g)
			v = gr.InEdge(v, g)
		}
		for lo, hi := 0, len(word)-1; lo < hi; lo, hi = lo+1, hi-1 {
			word[lo], word[hi] = word[hi], word[lo]
		}

		for j := 0; j < n; j++ {
			cur := gogroup.Element(j)
			for _, g := range word {
				cur = gr.OutEdge(cur, g)
			}
			G.op[j][i] = cur
			if cur == gogroup.Identity {
				G.inv[j] = gogroup.Element(i)
			}
		}
	}

	return nil
}

// Order returns the number of elements in the group.
func (G *Group) Order() int {
	return G.graph.Order()
}

// Degree returns the number of generators.
func (G *Group) Degree() int {
	return G.graph.Degree()
}

// Generator returns the element reached from the identity along generator g.
func (G *Group) Generator(g gogroup.GenIdx) gogroup.Element {
	return G.graph.OutEdge(gogroup.Identity, g)
}

// Mul returns the product x·y.
func (G *Group) Mul(x, y gogroup.Element) gogroup.Element {
	return G.op[x][y]
}

// Inv returns the unique y with x·y == identity.
func (G *Group) Inv(x gogroup.Element) gogroup.Element {
	return G.inv[x]
}

// OrderOf returns the multiplicative order of x.
func (G *Group) OrderOf(x gogroup.Element) int {
	return G.orders[x]
}

// Factors returns the prime factorization of the group order: ascending, with multiplicity.
func (G *Group) Factors() []int {
	return G.factors
}

// OrderStats returns the element count per divisor of the group order (ascending).
func (G *Group) OrderStats() []gogroup.OrderCount {
	return G.orderStats
}

// POrderStats returns the element count per prime-power order.
func (G *Group) POrderStats() []gogroup.POrderCount {
	return G.pOrderStats
}

func (G *Group) IsAbelian() bool {
	return G.abelian
}

func (G *Group) IsDihedral() bool {
	return G.dihedral
}

// Info bundles the invariants the identification layer consumes.
func (G *Group) Info() gogroup.GroupInfo {
	return gogroup.GroupInfo{
		Order:       G.Order(),
		Factors:     G.factors,
		OrderStats:  G.orderStats,
		POrderStats: G.pOrderStats,
		IsAbelian:   G.abelian,
		IsDihedral:  G.dihedral,
	}
}

// String renders the group's invariants. Naming the isomorphism class is the
// Identifier's job, not ours.
func (G *Group) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "group{order: %d", G.Order())
	if G.abelian {
		b.WriteString(", abelian")
	} else if G.dihedral {
		b.WriteString(", dihedral")
	}
	b.WriteString(", orders:")
	for _, oc := range G.orderStats {
		fmt.Fprintf(&b, " %d:%d", oc.Divisor, oc.Count)
	}
	b.WriteByte('}')
	return b.String()
}
