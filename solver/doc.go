// Package solver runs the max-sum algorithm over a factor graph: given
// factors scoring joint assignments of discrete variables, it searches
// for the assignment maximising the sum of all factor utilities.
//
// Overview:
//
//   - A Controller owns one factorgraph.Graph exclusively. Edit the
//     graph through the controller (SetFactor, RemoveFactor, ClearAll),
//     call Optimise, then read the per-variable result with Values or
//     Value. Optimisation is re-runnable: edit further, optimise again.
//   - Max-sum is belief propagation in the max-plus semiring. Messages
//     flow along the edges of the bipartite variable/factor graph
//     induced by the current factors.
//
// Algorithm (one round, repeated up to MaxIterations):
//
//  1. Factor sweep. Each factor sends, to each incident variable and
//     for each of that variable's values, the maximum over all joint
//     assignments consistent with that value of the factor's utility
//     plus the incoming messages from the other incident variables.
//     Implemented as a single pass per factor: the incoming total is
//     computed once per payload cell and the target variable's own
//     message is subtracted out.
//  2. Variable sweep. Each variable sends, to each incident factor,
//     the sum of incoming factor messages excluding that factor's own,
//     shifted by the message's mean so values sum to zero. The shift
//     keeps magnitudes bounded on cyclic graphs and does not affect
//     which value wins.
//  3. Convergence. The round's maximum absolute message change is
//     compared against ConvergenceNorm; at or below it, iteration
//     stops early.
//
// After the final round each variable's value is the argmax of the sum
// of its incoming factor messages, ties broken toward the lowest value
// index. All messages start at zero on every Optimise call, so results
// depend only on the current graph and options, never on edit history:
// two controllers with identical factors and options produce identical
// iteration counts and identical assignments.
//
// On tree-structured graphs the result is the exact maximum; on cyclic
// graphs it is the usual loopy approximation, bounded by the iteration
// cap.
//
// Complexity per round, for factor f with d(f) domain variables and
// T(f) payload cells:
//
//	– Factor sweep:   O(Σ_f T(f)·d(f)) time.
//	– Variable sweep: O(Σ_v deg(v)·|dom(v)|) time.
//	– Space:          O(Σ_f Σ_{v∈f} |dom(v)|) for the two message tables.
//
// Configuration uses functional options with validated constructors:
//
//	c, err := solver.New(reg,
//	    solver.WithMaxIterations(500),
//	    solver.WithConvergenceNorm(1e-9),
//	)
//
// Errors (sentinel):
//
//   - factorgraph.ErrNilRegistry   from New with a nil registry.
//   - ErrBadMaxIterations          panicked by WithMaxIterations(n < 1).
//   - ErrBadConvergenceNorm        panicked by WithConvergenceNorm(x <= 0).
//   - ErrInconsistentValues        from Values if the assignment map
//     disagrees with the graph's variable count (sanity check).
//   - ErrUnknownVariable           from Value for an unreferenced variable.
//
// Thread safety:
//
//   - A Controller is single-owner state; synchronize externally to
//     share one across goroutines. Optimise runs synchronously to
//     completion and is bounded only by MaxIterations.
//
// Example usage:
//
//	reg := register.NewRegistry()
//	_ = reg.RegisterMany([]register.VarID{1, 2}, 2)
//	c, _ := solver.New(reg)
//	_ = c.SetFactor(1, []register.VarID{1, 2},
//	    []float64{3, 0, 0, 1}) // prefers x1 = x2 = 0
//	iters := c.Optimise()
//	values, _ := c.Values()    // map[1:0 2:0]
package solver
