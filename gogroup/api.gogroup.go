package gogroup

const (

	// MaxGroupOrder is the max group order this engine will decode a table for.
	// The table fill is O(n²·depth), so the cap keeps the worst case trivial.
	MaxGroupOrder = 255

	// Identity is the element index reserved for the group identity.
	Identity Element = 0
)

// Element is a zero-based index into a group's element set.
// Element 0 is always the identity.
type Element int32

// GenIdx identifies a generator within a group's generating set (0..Degree-1).
type GenIdx int32

// TreeLabel annotates a Cayley-graph vertex with the generator label of its
// spanning-tree edge, or marks it as the root / not reached by the walk.
type TreeLabel int32

const (
	TreeRoot      TreeLabel = -1
	TreeUnreached TreeLabel = -2
)

// OrderCount counts the elements whose multiplicative order equals Divisor.
type OrderCount struct {
	Divisor int
	Count   int
}

// POrderCount counts the elements whose multiplicative order is Prime**Exp.
type POrderCount struct {
	Prime int
	Exp   int
	Count int
}

// GroupInfo is the invariant bundle handed to the identification layer.
//
// OrderStats has one entry per divisor of Order (ascending, including 1 and
// Order itself). POrderStats has one entry per (prime factor, exponent) pair
// with the exponent running 0..multiplicity.
type GroupInfo struct {
	Order       int
	Factors     []int // prime factors of Order, ascending, with multiplicity
	OrderStats  []OrderCount
	POrderStats []POrderCount
	IsAbelian   bool
	IsDihedral  bool
}

// GroupView is read-only access to a fully constructed group.
//
// Every GroupView is immutable once built and safe for concurrent readers.
type GroupView interface {
	Order() int
	Degree() int

	// Generator returns the element reached from the identity along generator g.
	Generator(g GenIdx) Element

	// Mul returns the product x·y.
	Mul(x, y Element) Element

	// Inv returns the unique y with x·y == identity.
	Inv(x Element) Element

	// OrderOf returns the multiplicative order of x.
	OrderOf(x Element) int

	// Pow returns x**e; e may be negative or beyond OrderOf(x).
	Pow(x Element, e int) Element

	Info() GroupInfo
}

// Identifier resolves an invariant bundle to the designation of a known
// isomorphism class ("Z6", "D8", "Q8", ...).
//
// A lookup miss is not an error: found is false and desig is empty.
type Identifier interface {
	Identify(info *GroupInfo) (desig string, found bool, err error)
	Close() error
}
