package libgroup

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDivisors(t *testing.T) {
	require.Equal(t, []int{1}, Divisors(1))
	require.Equal(t, []int{1, 7}, Divisors(7))
	require.Equal(t, []int{1, 2, 3, 4, 6, 12}, Divisors(12))
	require.Equal(t, []int{1, 2, 3, 6, 9, 18}, Divisors(18))
	require.Equal(t, []int{1, 2, 4, 8, 16}, Divisors(16))
}

func TestPrimeFactors(t *testing.T) {
	require.Empty(t, PrimeFactors(1))
	require.Equal(t, []int{2}, PrimeFactors(2))
	require.Equal(t, []int{2, 2, 3}, PrimeFactors(12))
	require.Equal(t, []int{2, 3, 5}, PrimeFactors(30))
	require.Equal(t, []int{97}, PrimeFactors(97))
}

func TestMultiplicity(t *testing.T) {
	require.Equal(t, 0, Multiplicity(9, 2))
	require.Equal(t, 2, Multiplicity(12, 2))
	require.Equal(t, 1, Multiplicity(12, 3))
	require.Equal(t, 4, Multiplicity(48, 2))
}

func TestIntPow(t *testing.T) {
	require.Equal(t, 1, IntPow(5, 0))
	require.Equal(t, 5, IntPow(5, 1))
	require.Equal(t, 1024, IntPow(2, 10))
	require.Equal(t, 729, IntPow(3, 6))
}
