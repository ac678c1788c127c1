package libgroup

import (
	"testing"

	"github.com/2x3systems/gogroup/gogroup"
)

func naivePow(G *Group, x gogroup.Element, e int) gogroup.Element {
	e %= G.OrderOf(x)
	if e < 0 {
		x = G.Inv(x)
		e = -e
	}
	acc := gogroup.Identity
	for i := 0; i < e; i++ {
		acc = G.Mul(acc, x)
	}
	return acc
}

func TestPowRoundTrip(t *testing.T) {
	for _, expr := range []string{exprZ6, exprD6, exprQ8, exprA4} {
		G := mustGroup(t, expr)
		for x := gogroup.Element(0); int(x) < G.Order(); x++ {
			k := G.OrderOf(x)
			for e := -2 * k; e <= 2*k; e++ {
				if got, want := G.Pow(x, e), naivePow(G, x, e); got != want {
					t.Fatalf("%q: %d**%d == %d, want %d", expr, x, e, got, want)
				}
			}
		}
	}
}

func TestCountPowers(t *testing.T) {
	Z6 := mustGroup(t, exprZ6)
	D6 := mustGroup(t, exprD6)

	cases := []struct {
		G    *Group
		k    int
		want int
	}{
		{Z6, 1, 6},
		{Z6, 2, 3},
		{Z6, 3, 2},
		{Z6, 5, 6},
		{Z6, 6, 1},
		{D6, 2, 3}, // squares: the rotation subgroup
		{D6, 3, 4}, // cubes: identity plus the three reflections
	}
	for _, tc := range cases {
		if got := tc.G.CountPowers(tc.k); got != tc.want {
			t.Fatalf("CountPowers(%d) on %v: got %d, want %d", tc.k, tc.G, got, tc.want)
		}
	}
}
