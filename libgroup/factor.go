package libgroup

import (
	"sort"
)

// Divisors returns the positive divisors of n in ascending order, including 1 and n.
func Divisors(n int) []int {
	var divs []int
	for j := 1; j*j <= n; j++ {
		if n%j != 0 {
			continue
		}
		divs = append(divs, j)
		if j*j != n {
			divs = append(divs, n/j)
		}
	}
	sort.Ints(divs)
	return divs
}

// PrimeFactors returns the prime factorization of n: ascending, with multiplicity.
func PrimeFactors(n int) []int {
	var factors []int
	for p := 2; p*p <= n; p++ {
		for n%p == 0 {
			factors = append(factors, p)
			n /= p
		}
	}
	if n > 1 {
		factors = append(factors, n)
	}
	return factors
}

// Multiplicity returns the number of times p divides n.
func Multiplicity(n, p int) int {
	m := 0
	for n%p == 0 {
		m++
		n /= p
	}
	return m
}

// IntPow returns base**exp for exp >= 0.
func IntPow(base, exp int) int {
	pow := 1
	for ; exp > 0; exp >>= 1 {
		if exp&1 != 0 {
			pow *= base
		}
		base *= base
	}
	return pow
}
