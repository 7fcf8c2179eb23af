// Package maxsum is an in-memory max-sum optimiser for discrete factor
// graphs: register variables, attach utility factors, run iterative
// message passing, read back the best joint assignment.
//
// 🚀 What is maxsum?
//
//	A deterministic, pure-Go implementation of the max-sum algorithm
//	(belief propagation in the max-plus semiring) built from four
//	small, composable packages:
//		• register    — process-wide variable registry (id → domain size)
//		• indexing    — Matlab-style sub2ind/ind2sub codec + domain iteration
//		• factorgraph — factors over registered variables with dense payloads
//		• solver      — the message-passing controller with convergence control
//
// ✨ Why choose maxsum?
//
//   - Deterministic by construction: identical graphs and parameters
//     always produce identical assignments and iteration counts
//   - Rock-solid validation: every payload length, subindex and domain
//     id is checked before any state changes
//   - Pure Go: no cgo, no hidden deps
//   - Small API: four packages, each doing one thing
//
// Typical flow:
//
//	reg := register.NewRegistry()
//	reg.Register(1, 4)                       // variable 1, four values
//	reg.Register(2, 4)
//	c, _ := solver.New(reg)
//	c.SetFactor(10, []register.VarID{1, 2},  // utility over (x1, x2)
//	    payload)                             // len(payload) == 4*4
//	c.Optimise()
//	values, _ := c.Values()                  // map[1:..., 2:...]
//
// Factors score joint assignments; the solver maximises the sum of all
// factor scores. On tree-structured graphs the result is exact; on
// cyclic graphs it is the standard loopy max-sum approximation bounded
// by the iteration cap.
//
// Dive into each package's doc for algorithms, complexity and the full
// error contract.
//
//	go get github.com/katalvlaran/maxsum
package maxsum
