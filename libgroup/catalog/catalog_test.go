package catalog

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/2x3systems/gogroup/libgroup"
)

func openTestCatalog(t *testing.T) *catalog {
	t.Helper()
	cat, err := OpenCatalog(Opts{})
	require.NoError(t, err)
	t.Cleanup(func() { cat.Close() })
	return cat.(*catalog)
}

func TestCatalogIdentify(t *testing.T) {
	cat := openTestCatalog(t)

	cases := []struct {
		expr  string
		desig string
	}{
		{"(1 2 3 4 5)", "Z5"},
		{"(1 2 3); (2 3)", "D6"},
		{"(1 2 3 4); (1 3)", "D8"},
		{"(1 3 2 4)(5 7 6 8); (1 5 2 6)(3 8 4 7)", "Q8"},
		{"(1 2 3); (1 2)(3 4)", "A4"},
		{"(1 2 3 4); (1 2)", "S4"},
		{"(1 2 3 4 5); (1 2 3)", "A5"},
	}
	for _, tc := range cases {
		G, err := libgroup.NewGroupFromExpr(tc.expr)
		require.NoError(t, err)

		info := G.Info()
		desig, found, err := cat.Identify(&info)
		require.NoError(t, err)
		require.True(t, found, "expected %q to identify", tc.expr)
		require.Equal(t, tc.desig, desig)
	}
}

func TestCatalogIdentifiesIsomorphs(t *testing.T) {
	cat := openTestCatalog(t)

	// A different faithful representation of the same class lands on the
	// same signature: S3 on the cosets vs D6 seeded as rotations+flip.
	G, err := libgroup.NewGroupFromExpr("(1 2); (2 3)")
	require.NoError(t, err)

	info := G.Info()
	desig, found, err := cat.Identify(&info)
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, "D6", desig)
}

func TestCatalogMiss(t *testing.T) {
	cat := openTestCatalog(t)

	G, err := libgroup.NewGroupFromExpr("(1 2 3 4 5 6 7 8 9 10 11 12 13)")
	require.NoError(t, err)

	info := G.Info()
	desig, found, err := cat.Identify(&info)
	require.NoError(t, err)
	require.False(t, found)
	require.Empty(t, desig)
}

func TestSignatureSet(t *testing.T) {
	set := NewSignatureSet()
	defer set.Close()

	G, err := libgroup.NewGroupFromExpr("(1 2 3)")
	require.NoError(t, err)
	info := G.Info()
	sig := info.AppendSignatureTo(nil)

	require.True(t, set.TryAdd(sig))
	require.False(t, set.TryAdd(sig))

	H, err := libgroup.NewGroupFromExpr("(1 2 3 4)")
	require.NoError(t, err)
	hinfo := H.Info()
	require.True(t, set.TryAdd(hinfo.AppendSignatureTo(nil)))
}
