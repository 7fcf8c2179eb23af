package factorgraph

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/maxsum/register"
)

// Graph is the set of factors currently defined over a shared variable
// registry, together with reference counts of the variables those
// factors mention. A Graph is owned by a single controller; it carries
// no locking of its own.
type Graph struct {
	reg     *register.Registry
	factors map[FactorID]*Factor
	refs    map[register.VarID]int // how many factors mention each variable
}

// New returns an empty factor graph validating against reg.
// Fails with ErrNilRegistry if reg is nil.
func New(reg *register.Registry) (*Graph, error) {
	if reg == nil {
		return nil, ErrNilRegistry
	}

	g := &Graph{
		reg:     reg,
		factors: make(map[FactorID]*Factor),
		refs:    make(map[register.VarID]int),
	}

	return g, nil
}

// SetFactor inserts or replaces the factor identified by id, scoring
// the ordered variables in domain with the dense payload.
//
// Validation happens before any mutation, so a failed call leaves the
// graph untouched:
//  1. every domain variable must be registered (ErrUnknownVariable),
//  2. the domain must not repeat a variable (ErrDuplicateVariable),
//  3. len(payload) must equal the product of the domain variables'
//     sizes (ErrPayloadSize).
//
// The payload is interpreted column-major over the domain sizes, with
// domain[0] varying fastest. An empty domain defines a constant factor
// and requires a payload of exactly one cell. Domain and payload are
// copied; the caller keeps ownership of its slices.
func (g *Graph) SetFactor(id FactorID, domain []register.VarID, payload []float64) error {
	// 1) Resolve every domain variable's size, rejecting unregistered
	//    ids and duplicates. Nothing is mutated yet.
	sizes := make([]int, len(domain))
	seen := make(map[register.VarID]struct{}, len(domain))
	cells := 1
	var (
		k   int
		v   register.VarID
		siz register.ValIndex
		err error
	)
	for k, v = range domain {
		if siz, err = g.reg.DomainSize(v); err != nil {
			return fmt.Errorf("%w: factor %d, variable %d", ErrUnknownVariable, id, v)
		}
		if _, dup := seen[v]; dup {
			return fmt.Errorf("%w: factor %d, variable %d", ErrDuplicateVariable, id, v)
		}
		seen[v] = struct{}{}
		sizes[k] = int(siz)
		cells *= int(siz)
	}

	// 2) The payload must cover each joint assignment exactly once.
	if len(payload) != cells {
		return fmt.Errorf("%w: factor %d has %d payload cells, domain product is %d",
			ErrPayloadSize, id, len(payload), cells)
	}

	// 3) Upsert. Replacing an existing factor first releases its old
	//    domain references, then the new factor takes its own.
	if old, ok := g.factors[id]; ok {
		g.release(old)
	}
	f := &Factor{
		ID:      id,
		Domain:  append([]register.VarID(nil), domain...),
		Payload: append([]float64(nil), payload...),
		sizes:   sizes,
	}
	g.factors[id] = f
	for _, v = range f.Domain {
		g.refs[v]++
	}

	return nil
}

// RemoveFactor deletes the factor identified by id.
// Removing an absent id is a no-op, not an error.
func (g *Graph) RemoveFactor(id FactorID) {
	f, ok := g.factors[id]
	if !ok {
		return
	}
	g.release(f)
	delete(g.factors, id)
}

// ClearAll removes every factor from the graph.
func (g *Graph) ClearAll() {
	g.factors = make(map[FactorID]*Factor)
	g.refs = make(map[register.VarID]int)
}

// FactorCount returns the number of factors currently in the graph.
func (g *Graph) FactorCount() int {
	return len(g.factors)
}

// VariableCount returns the number of distinct variables referenced by
// the current factors.
func (g *Graph) VariableCount() int {
	return len(g.refs)
}

// Factors returns the ids of all current factors in ascending order.
func (g *Graph) Factors() []FactorID {
	ids := make([]FactorID, 0, len(g.factors))
	for id := range g.factors {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	return ids
}

// Variables returns the distinct variables referenced by the current
// factors, in ascending order.
func (g *Graph) Variables() []register.VarID {
	ids := make([]register.VarID, 0, len(g.refs))
	for id := range g.refs {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	return ids
}

// Factor returns a detached copy of the factor identified by id, and
// whether it exists.
func (g *Graph) Factor(id FactorID) (Factor, bool) {
	f, ok := g.factors[id]
	if !ok {
		return Factor{}, false
	}

	return f.clone(), true
}

// References reports whether any current factor mentions variable id.
func (g *Graph) References(id register.VarID) bool {
	return g.refs[id] > 0
}

// release drops the domain reference counts held by f, removing
// variables whose count reaches zero.
func (g *Graph) release(f *Factor) {
	var v register.VarID
	for _, v = range f.Domain {
		g.refs[v]--
		if g.refs[v] == 0 {
			delete(g.refs, v)
		}
	}
}
