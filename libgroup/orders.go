package libgroup

import (
	"github.com/2x3systems/gogroup/gogroup"
)

// computeOrders finds each element's multiplicative order by repeated
// multiplication. Propagating a known order to the element's powers would
// skip work, but the plain O(n·maxorder) walk is trivial at this scale.
func (G *Group) computeOrders() {
	n := G.Order()
	G.orders = make([]int, n)
	for x := 0; x < n; x++ {
		j := gogroup.Element(x)
		k := 1
		for j != gogroup.Identity {
			j = G.op[x][j]
			k++
		}
		G.orders[x] = k
	}
}

// computeOrderStats tallies elements by order, one bucket per divisor of the
// group order. Every element order divides the group order (Lagrange), so
// the divisor buckets cover everything.
func (G *Group) computeOrderStats() {
	n := G.Order()
	G.factors = PrimeFactors(n)

	divs := Divisors(n)
	stats := make([]gogroup.OrderCount, len(divs))
	for di, d := range divs {
		stats[di].Divisor = d
	}
	for _, k := range G.orders {
		for di := range stats {
			if stats[di].Divisor == k {
				stats[di].Count++
				break
			}
		}
	}
	G.orderStats = stats
}

// computePOrderStats tallies elements whose order is a prime power p**e, for
// each prime factor p and each e in 0..multiplicity(p).
func (G *Group) computePOrderStats() {
	n := G.Order()

	var stats []gogroup.POrderCount
	prev := 0
	for _, p := range G.factors {
		if p == prev {
			continue
		}
		prev = p
		for e := 0; e <= Multiplicity(n, p); e++ {
			pe := IntPow(p, e)
			count := 0
			for _, k := range G.orders {
				if k == pe {
					count++
				}
			}
			stats = append(stats, gogroup.POrderCount{Prime: p, Exp: e, Count: count})
		}
	}
	G.pOrderStats = stats
}
