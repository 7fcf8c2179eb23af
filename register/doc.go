// Package register maintains the variable registry: the mapping from a
// discrete variable's identifier to the size of its value domain.
//
// Overview:
//
//   - Every variable that may appear in a factor domain must be
//     registered first, with the number of values it can take.
//   - A variable's domain size is immutable once registered: repeated
//     registration with the same size is an idempotent no-op, while a
//     different size fails with ErrDomainConflict and leaves the
//     original size intact.
//   - Variables are never removed individually; Clear resets the whole
//     registry in one step.
//
// A variable with domain size n takes values {0, ..., n-1}. Value
// indices, domain sizes and all counts use ValIndex; identifiers use
// VarID, which is unsigned so non-negativity holds by construction.
//
// Registries are explicit objects rather than package-level state:
// construct one with NewRegistry and hand it to every factor graph and
// solver that should share its variables. This preserves the
// "variables are shared, solvers are local" relationship without
// hidden globals.
//
// Thread safety:
//
//   - All Registry methods are safe for concurrent use; reads take a
//     shared lock, Register/RegisterMany/Clear take an exclusive lock.
//
// Errors (sentinel):
//
//   - ErrBadDomainSize   if a registration's domain size is < 1.
//   - ErrDomainConflict  if a variable is re-registered with a
//     different domain size.
//   - ErrUnknownVariable if DomainSize is queried for an unregistered
//     variable.
//
// Example usage:
//
//	reg := register.NewRegistry()
//	if err := reg.Register(7, 3); err != nil {
//	    log.Fatal(err)
//	}
//	size, _ := reg.DomainSize(7) // 3
package register
