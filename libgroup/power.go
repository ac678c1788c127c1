package libgroup

import (
	"github.com/2x3systems/gogroup/gogroup"
)

// Pow returns x**e by square-and-multiply over the table. e may be negative
// or beyond the element's order; it is first reduced modulo OrderOf(x), and
// a negative exponent swaps x for its inverse.
func (G *Group) Pow(x gogroup.Element, e int) gogroup.Element {
	e %= G.orders[x]
	if e < 0 {
		x = G.inv[x]
		e = -e
	}
	if e == 0 {
		return gogroup.Identity
	}

	acc := gogroup.Identity
	for sq := x; e > 0; e >>= 1 {
		if e&1 != 0 {
			acc = G.op[acc][sq]
		}
		sq = G.op[sq][sq]
	}
	return acc
}

// CountPowers returns the number of distinct k-th powers in the group.
func (G *Group) CountPowers(k int) int {
	seen := make([]bool, G.Order())
	count := 0
	for x := 0; x < G.Order(); x++ {
		y := G.Pow(gogroup.Element(x), k)
		if !seen[y] {
			seen[y] = true
			count++
		}
	}
	return count
}
