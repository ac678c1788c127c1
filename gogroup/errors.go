package gogroup

import (
	"errors"
)

// Errors
var (
	ErrBadGenExpr      = errors.New("bad generator expression")
	ErrBadPoint        = errors.New("bad permutation point")
	ErrNotPermutation  = errors.New("generator map is not a permutation")
	ErrOrderExceeded   = errors.New("group order exceeds supported max")
	ErrTreeNotSpanning = errors.New("spanning tree does not reach every element")
	ErrGroupIsAbelian  = errors.New("group is abelian; its center is the whole group")
	ErrBadCatalogParam = errors.New("bad catalog param")
)
