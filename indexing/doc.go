// Package indexing converts between multi-dimensional subindices and
// flat scalar indices over dense arrays, and iterates joint
// assignments of a multi-dimensional domain.
//
// Convention:
//
//	The codec is column-major with 0-based indices: the FIRST
//	dimension varies fastest, exactly like Matlab's sub2ind/ind2sub
//	shifted to start at zero. For sizes [s0, s1, ..., sn-1] and
//	subindices [k0, k1, ..., kn-1]:
//
//	    index = k0 + k1*s0 + k2*s0*s1 + ... + kn-1*s0*...*sn-2
//
//	This convention is fixed; IndexToSub is the exact inverse of
//	SubToIndex, and the round-trip laws hold for every valid input:
//
//	    SubToIndex(sizes, IndexToSub(sizes, i)) == i
//	    IndexToSub(sizes, SubToIndex(sizes, s)) == s
//
// Edge case: an empty size vector describes a zero-dimensional array
// with exactly one cell. SubToIndex of two empty slices is 0, and
// IndexToSub(nil, 0) is an empty subindex vector.
//
// DomainIterator walks every joint assignment of a size vector in
// increasing flat-index order (first dimension fastest), so Index()
// advances by exactly one per step. It is the building block for
// sweeping dense factor payloads without allocating a subindex slice
// per cell.
//
// Complexity:
//
//	– SubToIndex / IndexToSub: O(n) time, O(n) space for n dimensions.
//	– DomainIterator: O(n) per Next() in the worst case (odometer
//	  carry), amortised O(1); O(n) space total.
//
// Errors (sentinel):
//
//	– ErrDimensionMismatch if sizes and subs have different lengths.
//	– ErrBadDimensionSize  if any dimension size is < 1.
//	– ErrSubindexRange     if any subindex is outside [0, size).
//	– ErrIndexRange        if a flat index is negative or >= the
//	  product of the sizes.
//
// Example usage:
//
//	idx, _ := indexing.SubToIndex([]int{4, 4}, []int{2, 1}) // 6
//	sub, _ := indexing.IndexToSub([]int{4, 4}, idx)         // [2 1]
package indexing
