package factorgraph

import (
	"fmt"

	"github.com/katalvlaran/maxsum/indexing"
	"github.com/katalvlaran/maxsum/register"
)

// FactorID uniquely identifies a factor within one Graph.
type FactorID uint32

// Factor is a dense table of utilities over the joint values of its
// domain variables. Payload cell k scores the joint assignment
// indexing.IndexToSub(Sizes(), k), with Domain[0] varying fastest.
//
// Factors obtained from a Graph are detached copies; mutating one has
// no effect on the graph.
type Factor struct {
	// ID is the factor's identifier within its graph.
	ID FactorID
	// Domain is the ordered list of variable ids the factor scores.
	Domain []register.VarID
	// Payload holds one utility per joint assignment of Domain.
	Payload []float64

	// sizes caches the domain variables' domain sizes, in Domain order.
	sizes []int
}

// Sizes returns the per-dimension domain sizes of the factor, in
// Domain order. The returned slice is a fresh copy.
func (f *Factor) Sizes() []int {
	return append([]int(nil), f.sizes...)
}

// At returns the utility of the joint assignment given by subs, where
// subs[k] is the value index of Domain[k].
//
// Fails with the indexing package's errors if subs does not address a
// payload cell.
func (f *Factor) At(subs []int) (float64, error) {
	idx, err := indexing.SubToIndex(f.sizes, subs)
	if err != nil {
		return 0, fmt.Errorf("factor %d: %w", f.ID, err)
	}

	return f.Payload[idx], nil
}

// Value returns the utility stored at the given flat payload index.
// Fails with indexing.ErrIndexRange if the index is out of bounds.
func (f *Factor) Value(index int) (float64, error) {
	if index < 0 || index >= len(f.Payload) {
		return 0, fmt.Errorf("factor %d: %w: index %d, payload has %d cells",
			f.ID, indexing.ErrIndexRange, index, len(f.Payload))
	}

	return f.Payload[index], nil
}

// clone returns a deep copy of the factor.
func (f *Factor) clone() Factor {
	return Factor{
		ID:      f.ID,
		Domain:  append([]register.VarID(nil), f.Domain...),
		Payload: append([]float64(nil), f.Payload...),
		sizes:   append([]int(nil), f.sizes...),
	}
}
