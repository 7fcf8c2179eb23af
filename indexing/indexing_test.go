// Package indexing_test contains unit tests for the subindex codec:
// the fixed column-major convention, both round-trip laws, and every
// validation failure mode.
package indexing_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/katalvlaran/maxsum/indexing"
)

func TestSubToIndex_ColumnMajorConvention(t *testing.T) {
	// First dimension varies fastest: [2,1] over a 4x4 array is 2 + 1*4.
	idx, err := indexing.SubToIndex([]int{4, 4}, []int{2, 1})
	if err != nil {
		t.Fatal(err)
	}
	if idx != 6 {
		t.Errorf("SubToIndex([4,4], [2,1]) = %d; want 6", idx)
	}

	// Three dimensions: [1,2,1] over sizes [2,3,4] is 1 + 2*2 + 1*6.
	idx, err = indexing.SubToIndex([]int{2, 3, 4}, []int{1, 2, 1})
	if err != nil {
		t.Fatal(err)
	}
	if idx != 11 {
		t.Errorf("SubToIndex([2,3,4], [1,2,1]) = %d; want 11", idx)
	}
}

func TestIndexToSub_InverseOfSubToIndex(t *testing.T) {
	sub, err := indexing.IndexToSub([]int{4, 4}, 6)
	if err != nil {
		t.Fatal(err)
	}
	if want := []int{2, 1}; !reflect.DeepEqual(sub, want) {
		t.Errorf("IndexToSub([4,4], 6) = %v; want %v", sub, want)
	}
}

func TestRoundTrip_AllIndices(t *testing.T) {
	// For every valid flat index i: SubToIndex(sizes, IndexToSub(sizes, i)) == i.
	sizes := []int{3, 4, 2}
	for i := 0; i < 3*4*2; i++ {
		sub, err := indexing.IndexToSub(sizes, i)
		if err != nil {
			t.Fatalf("IndexToSub(%v, %d) returned %v", sizes, i, err)
		}
		back, err := indexing.SubToIndex(sizes, sub)
		if err != nil {
			t.Fatalf("SubToIndex(%v, %v) returned %v", sizes, sub, err)
		}
		if back != i {
			t.Fatalf("round trip of index %d via %v gave %d", i, sub, back)
		}
	}
}

func TestRoundTrip_AllSubindices(t *testing.T) {
	// For every valid subindex vector s: IndexToSub(sizes, SubToIndex(sizes, s)) == s.
	sizes := []int{2, 3}
	for k1 := 0; k1 < 3; k1++ {
		for k0 := 0; k0 < 2; k0++ {
			sub := []int{k0, k1}
			idx, err := indexing.SubToIndex(sizes, sub)
			if err != nil {
				t.Fatal(err)
			}
			back, err := indexing.IndexToSub(sizes, idx)
			if err != nil {
				t.Fatal(err)
			}
			if !reflect.DeepEqual(back, sub) {
				t.Fatalf("round trip of %v via index %d gave %v", sub, idx, back)
			}
		}
	}
}

func TestSubToIndex_ZeroDimensional(t *testing.T) {
	// An empty size vector describes one cell at index 0.
	idx, err := indexing.SubToIndex(nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	if idx != 0 {
		t.Errorf("SubToIndex(nil, nil) = %d; want 0", idx)
	}

	sub, err := indexing.IndexToSub(nil, 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(sub) != 0 {
		t.Errorf("IndexToSub(nil, 0) = %v; want empty", sub)
	}

	// Index 1 does not exist in a zero-dimensional array.
	if _, err = indexing.IndexToSub(nil, 1); !errors.Is(err, indexing.ErrIndexRange) {
		t.Errorf("IndexToSub(nil, 1) returned %v; want ErrIndexRange", err)
	}
}

func TestSubToIndex_LengthMismatch(t *testing.T) {
	_, err := indexing.SubToIndex([]int{2, 2}, []int{1})
	if !errors.Is(err, indexing.ErrDimensionMismatch) {
		t.Errorf("got %v; want ErrDimensionMismatch", err)
	}
}

func TestSubToIndex_SubindexOutOfRange(t *testing.T) {
	for _, bad := range [][]int{{2, 0}, {-1, 0}, {0, 3}} {
		_, err := indexing.SubToIndex([]int{2, 3}, bad)
		if !errors.Is(err, indexing.ErrSubindexRange) {
			t.Errorf("SubToIndex([2,3], %v) returned %v; want ErrSubindexRange", bad, err)
		}
	}
}

func TestSubToIndex_BadDimensionSize(t *testing.T) {
	_, err := indexing.SubToIndex([]int{2, 0}, []int{0, 0})
	if !errors.Is(err, indexing.ErrBadDimensionSize) {
		t.Errorf("got %v; want ErrBadDimensionSize", err)
	}
}

func TestIndexToSub_IndexOutOfRange(t *testing.T) {
	for _, bad := range []int{-1, 6, 100} {
		_, err := indexing.IndexToSub([]int{2, 3}, bad)
		if !errors.Is(err, indexing.ErrIndexRange) {
			t.Errorf("IndexToSub([2,3], %d) returned %v; want ErrIndexRange", bad, err)
		}
	}
}

func TestIndexToSub_BadDimensionSize(t *testing.T) {
	_, err := indexing.IndexToSub([]int{-2, 3}, 0)
	if !errors.Is(err, indexing.ErrBadDimensionSize) {
		t.Errorf("got %v; want ErrBadDimensionSize", err)
	}
}
