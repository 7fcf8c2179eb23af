// Package factorgraph stores factors: dense tables of real-valued
// utilities over the joint values of ordered sets of registered
// variables.
//
// Overview:
//
//   - A Factor is identified by a FactorID and defined by its domain
//     (an ordered list of variable ids) and its payload (one float64
//     per joint assignment of the domain variables).
//   - The payload is laid out by the indexing package's column-major
//     convention over the domain's sizes, in domain order: the first
//     domain variable varies fastest.
//   - A Graph owns a set of factors and validates every factor against
//     a shared register.Registry: each domain variable must be
//     registered, domains must not repeat a variable, and the payload
//     length must equal the product of the domain sizes.
//
// Validation is all-or-nothing: a rejected SetFactor leaves the graph
// exactly as it was. Accepted domains and payloads are copied in, and
// accessors copy out, so callers can never alias the graph's internal
// state.
//
// A factor with an empty domain is a valid constant: its payload has
// exactly one cell and it references no variables.
//
// Thread safety:
//
//   - Graph is designed for a single owner. Synchronize externally if
//     one graph must be shared across goroutines. The Registry it
//     validates against is itself safe for concurrent use.
//
// Errors (sentinel):
//
//   - ErrNilRegistry      if New is given a nil registry.
//   - ErrUnknownVariable  if a factor domain references an
//     unregistered variable.
//   - ErrDuplicateVariable if a factor domain repeats a variable id.
//   - ErrPayloadSize      if the payload length differs from the
//     product of the domain sizes.
//
// Example usage:
//
//	g, _ := factorgraph.New(reg)
//	err := g.SetFactor(1, []register.VarID{7, 8}, payload)
//	if errors.Is(err, factorgraph.ErrUnknownVariable) {
//	    // register the variable, then retry
//	}
package factorgraph
