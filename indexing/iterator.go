package indexing

import "fmt"

// DomainIterator enumerates every joint assignment of a
// multi-dimensional domain in increasing flat-index order. The first
// dimension varies fastest, matching the SubToIndex convention, so
// Index() advances by exactly one per Next().
//
// Usage pattern:
//
//	it, _ := indexing.NewDomainIterator(sizes)
//	for ; it.Valid(); it.Next() {
//	    sub := it.Sub() // do not retain: reused on Next()
//	    _ = payload[it.Index()]
//	}
//
// A zero-dimensional domain (empty sizes) has exactly one assignment:
// the empty subindex vector at index 0.
type DomainIterator struct {
	sizes []int
	sub   []int
	index int
	total int
}

// NewDomainIterator returns an iterator positioned at the first joint
// assignment (all subindices zero, flat index zero) of a domain with
// the given per-dimension sizes.
//
// Fails with ErrBadDimensionSize if any size is < 1.
func NewDomainIterator(sizes []int) (*DomainIterator, error) {
	total := 1
	var k int
	for k = range sizes {
		if sizes[k] < 1 {
			return nil, fmt.Errorf("%w: dimension %d has size %d",
				ErrBadDimensionSize, k, sizes[k])
		}
		total *= sizes[k]
	}

	it := &DomainIterator{
		sizes: append([]int(nil), sizes...),
		sub:   make([]int, len(sizes)),
		total: total,
	}

	return it, nil
}

// Valid reports whether the iterator currently points at an assignment.
// Once Next() has stepped past the last assignment, Valid returns false.
func (it *DomainIterator) Valid() bool {
	return it.index < it.total
}

// Next advances to the next joint assignment in flat-index order,
// carrying subindices like an odometer: increment the first dimension,
// and on overflow reset it and carry into the next one.
func (it *DomainIterator) Next() {
	if !it.Valid() {
		return
	}
	it.index++

	var k int
	for k = range it.sub {
		it.sub[k]++
		if it.sub[k] < it.sizes[k] {
			return
		}
		it.sub[k] = 0 // carry into dimension k+1
	}
}

// Sub returns the current subindex vector. The slice is owned by the
// iterator and overwritten by Next(); copy it if it must outlive the
// current step.
func (it *DomainIterator) Sub() []int {
	return it.sub
}

// Index returns the flat index of the current assignment, equal to
// SubToIndex(sizes, Sub()).
func (it *DomainIterator) Index() int {
	return it.index
}

// Len returns the total number of joint assignments in the domain.
func (it *DomainIterator) Len() int {
	return it.total
}

// Reset rewinds the iterator to the first assignment.
func (it *DomainIterator) Reset() {
	it.index = 0
	var k int
	for k = range it.sub {
		it.sub[k] = 0
	}
}
