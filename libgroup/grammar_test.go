package libgroup

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/2x3systems/gogroup/gogroup"
)

func TestParseGenExpr(t *testing.T) {
	Xexpr, err := ParseGenExpr("(1 2 3)(4 5); (2 3)")
	require.NoError(t, err)
	require.Len(t, Xexpr.Gens, 2)
	require.Len(t, Xexpr.Gens[0].Cycles, 2)
	require.Equal(t, []int64{1, 2, 3}, Xexpr.Gens[0].Cycles[0].Points)

	_, err = ParseGenExpr("(1 2")
	require.ErrorIs(t, err, gogroup.ErrBadGenExpr)
}

func TestBuildFromExpr(t *testing.T) {
	G, err := NewGroupFromExpr(exprD6)
	require.NoError(t, err)
	require.Equal(t, 6, G.Order())
	require.Equal(t, 2, G.Degree())
	require.Equal(t, 3, G.OrderOf(G.Generator(0)))
	require.Equal(t, 2, G.OrderOf(G.Generator(1)))
}

func TestBuildBadPoint(t *testing.T) {
	Xexpr, err := ParseGenExpr("(0 1)")
	require.NoError(t, err)
	_, err = BuildCayleyGraph(Xexpr)
	require.ErrorIs(t, err, gogroup.ErrBadPoint)

	Xexpr, err = ParseGenExpr("(1 2 1)")
	require.NoError(t, err)
	_, err = BuildCayleyGraph(Xexpr)
	require.ErrorIs(t, err, gogroup.ErrBadPoint)
}

func TestBuildOrderExceeded(t *testing.T) {
	// One generator with a 16-cycle and a 17-cycle: order lcm(16, 17) = 272.
	var b strings.Builder
	b.WriteByte('(')
	for pt := 1; pt <= 16; pt++ {
		fmt.Fprintf(&b, " %d", pt)
	}
	b.WriteString(" )(")
	for pt := 17; pt <= 33; pt++ {
		fmt.Fprintf(&b, " %d", pt)
	}
	b.WriteString(" )")

	Xexpr, err := ParseGenExpr(b.String())
	require.NoError(t, err)
	_, err = BuildCayleyGraph(Xexpr)
	require.ErrorIs(t, err, gogroup.ErrOrderExceeded)
}

func TestBuildEmptyExpr(t *testing.T) {
	Xexpr, err := ParseGenExpr("")
	require.NoError(t, err)
	_, err = BuildCayleyGraph(Xexpr)
	require.ErrorIs(t, err, gogroup.ErrBadGenExpr)
}
