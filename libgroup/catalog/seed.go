package catalog

// DefaultSeeds is the stock catalog of small-group isomorphism classes, each
// given by a generator expression for a faithful permutation representation.
// Only classes the invariant bundle discriminates are listed; see the format
// note in catalog.go for why (the first ambiguous orders start at 16, e.g.
// the modular group of order 16 vs Z8×Z2).
var DefaultSeeds = []Seed{
	{"Z1", "(1)"},
	{"Z2", "(1 2)"},
	{"Z3", "(1 2 3)"},
	{"Z4", "(1 2 3 4)"},
	{"Z2xZ2", "(1 2); (3 4)"},
	{"Z5", "(1 2 3 4 5)"},
	{"Z6", "(1 2 3)(4 5)"},
	{"D6", "(1 2 3); (2 3)"},
	{"Z7", "(1 2 3 4 5 6 7)"},
	{"Z8", "(1 2 3 4 5 6 7 8)"},
	{"Z4xZ2", "(1 2 3 4); (5 6)"},
	{"Z2xZ2xZ2", "(1 2); (3 4); (5 6)"},
	{"D8", "(1 2 3 4); (1 3)"},
	{"Q8", "(1 3 2 4)(5 7 6 8); (1 5 2 6)(3 8 4 7)"},
	{"Z9", "(1 2 3 4 5 6 7 8 9)"},
	{"Z3xZ3", "(1 2 3); (4 5 6)"},
	{"Z10", "(1 2 3 4 5)(6 7)"},
	{"D10", "(1 2 3 4 5); (2 5)(3 4)"},
	{"Z11", "(1 2 3 4 5 6 7 8 9 10 11)"},
	{"Z12", "(1 2 3 4)(5 6 7)"},
	{"Z6xZ2", "(1 2 3)(4 5); (6 7)"},
	{"D12", "(1 2 3 4 5 6); (2 6)(3 5)"},
	{"A4", "(1 2 3); (1 2)(3 4)"},
	{"D14", "(1 2 3 4 5 6 7); (2 7)(3 6)(4 5)"},
	{"S4", "(1 2 3 4); (1 2)"},
	{"A5", "(1 2 3 4 5); (1 2 3)"},
}
