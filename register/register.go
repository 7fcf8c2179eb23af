package register

import (
	"fmt"
	"sort"
	"sync"
)

// VarID uniquely identifies a discrete variable.
// Identifiers are unsigned, so the non-negativity requirement holds by type.
type VarID uint32

// ValIndex is the type of domain sizes and value indices.
// A variable with domain size n takes the values 0..n-1 (each a ValIndex).
type ValIndex int

// Registry maps variable identifiers to their immutable domain sizes.
// The zero value is not usable; construct with NewRegistry.
type Registry struct {
	mu    sync.RWMutex
	sizes map[VarID]ValIndex
}

// NewRegistry returns an empty, ready-to-use variable registry.
func NewRegistry() *Registry {
	return &Registry{sizes: make(map[VarID]ValIndex)}
}

// Register records variable id with the given domain size.
//
// Registering an id that is already present with the same size succeeds
// and changes nothing. Registering it with a different size fails with
// ErrDomainConflict, and the originally registered size is kept.
//
// Returns ErrBadDomainSize if size < 1.
func (r *Registry) Register(id VarID, size ValIndex) error {
	// 1) Validate the domain size before touching any state.
	if size < 1 {
		return fmt.Errorf("%w: variable %d, size %d", ErrBadDomainSize, id, size)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	// 2) Re-registration: same size is idempotent, different size is a conflict.
	if prev, ok := r.sizes[id]; ok {
		if prev != size {
			return fmt.Errorf("%w: variable %d has size %d, requested %d",
				ErrDomainConflict, id, prev, size)
		}

		return nil
	}

	// 3) First registration for this id.
	r.sizes[id] = size

	return nil
}

// RegisterMany registers every id in ids with the same domain size.
//
// Registration proceeds in order and stops at the first failure;
// ids registered before the failing one remain registered. Returns
// the first error encountered, or nil.
func (r *Registry) RegisterMany(ids []VarID, size ValIndex) error {
	var id VarID
	for _, id = range ids {
		if err := r.Register(id, size); err != nil {
			return err
		}
	}

	return nil
}

// IsRegistered reports whether variable id has been registered.
func (r *Registry) IsRegistered(id VarID) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.sizes[id]

	return ok
}

// DomainSize returns the registered domain size of variable id.
// Fails with ErrUnknownVariable if id has never been registered.
func (r *Registry) DomainSize(id VarID) (ValIndex, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	size, ok := r.sizes[id]
	if !ok {
		return 0, fmt.Errorf("%w: variable %d", ErrUnknownVariable, id)
	}

	return size, nil
}

// Count returns the number of distinct registered variables.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.sizes)
}

// Variables returns the identifiers of all registered variables in
// ascending order. The returned slice is a fresh copy.
func (r *Registry) Variables() []VarID {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]VarID, 0, len(r.sizes))
	for id := range r.sizes {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	return ids
}

// Clear removes every registered variable, returning the registry to
// its initial empty state. Individual variables cannot be removed;
// clearing is always wholesale.
func (r *Registry) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.sizes = make(map[VarID]ValIndex)
}
