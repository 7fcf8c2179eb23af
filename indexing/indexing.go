package indexing

import (
	"errors"
	"fmt"
)

var (
	// ErrDimensionMismatch indicates sizes and subindices of different lengths.
	ErrDimensionMismatch = errors.New("indexing: sizes and subindices must have the same length")

	// ErrBadDimensionSize indicates a dimension size smaller than one.
	ErrBadDimensionSize = errors.New("indexing: every dimension size must be a positive integer")

	// ErrSubindexRange indicates a subindex outside [0, size) for its dimension.
	ErrSubindexRange = errors.New("indexing: subindex out of range for its dimension")

	// ErrIndexRange indicates a flat index outside [0, product of sizes).
	ErrIndexRange = errors.New("indexing: flat index out of range")
)

// SubToIndex converts the subindex vector subs into a flat scalar index
// over a dense array with the given per-dimension sizes.
//
// The encoding is column-major: the first dimension varies fastest.
// Both slices may be empty, describing a zero-dimensional array whose
// single cell has index 0.
//
// Fails with ErrDimensionMismatch if len(sizes) != len(subs),
// ErrBadDimensionSize if any sizes[k] < 1, and ErrSubindexRange if any
// subs[k] lies outside [0, sizes[k]).
func SubToIndex(sizes, subs []int) (int, error) {
	// 1) Lengths must agree before any arithmetic.
	if len(sizes) != len(subs) {
		return 0, fmt.Errorf("%w: %d sizes, %d subindices",
			ErrDimensionMismatch, len(sizes), len(subs))
	}

	// 2) Accumulate the mixed-radix value. skip is the stride of
	//    dimension k: the product of all earlier dimension sizes.
	index := 0
	skip := 1
	var k int
	for k = range sizes {
		if sizes[k] < 1 {
			return 0, fmt.Errorf("%w: dimension %d has size %d",
				ErrBadDimensionSize, k, sizes[k])
		}
		if subs[k] < 0 || subs[k] >= sizes[k] {
			return 0, fmt.Errorf("%w: dimension %d, subindex %d, size %d",
				ErrSubindexRange, k, subs[k], sizes[k])
		}
		index += subs[k] * skip
		skip *= sizes[k]
	}

	return index, nil
}

// IndexToSub converts the flat scalar index back into a subindex
// vector for a dense array with the given per-dimension sizes. It is
// the exact inverse of SubToIndex.
//
// An empty size vector accepts only index 0 and yields an empty
// subindex vector.
//
// Fails with ErrBadDimensionSize if any sizes[k] < 1, and
// ErrIndexRange if index < 0 or index >= product(sizes).
func IndexToSub(sizes []int, index int) ([]int, error) {
	// 1) Strides: stride[k] is the product of sizes[0..k-1].
	strides, total, err := cumProd(sizes)
	if err != nil {
		return nil, err
	}

	// 2) The flat index must address an existing cell.
	if index < 0 || index >= total {
		return nil, fmt.Errorf("%w: index %d, array has %d cells",
			ErrIndexRange, index, total)
	}

	// 3) Peel dimensions from the slowest-varying (last) to the
	//    fastest-varying (first), dividing out each stride.
	sub := make([]int, len(sizes))
	remainder := index
	var k int
	for k = len(sizes) - 1; k >= 0; k-- {
		sub[k] = remainder / strides[k]
		remainder %= strides[k]
	}

	return sub, nil
}

// cumProd returns the exclusive running product of sizes (the stride
// of each dimension) and the total number of cells. Validates that
// every dimension size is positive.
func cumProd(sizes []int) (strides []int, total int, err error) {
	strides = make([]int, len(sizes))
	total = 1
	var k int
	for k = range sizes {
		if sizes[k] < 1 {
			return nil, 0, fmt.Errorf("%w: dimension %d has size %d",
				ErrBadDimensionSize, k, sizes[k])
		}
		strides[k] = total
		total *= sizes[k]
	}

	return strides, total, nil
}
