package solver

import (
	"fmt"
	"math"

	"github.com/katalvlaran/maxsum/factorgraph"
	"github.com/katalvlaran/maxsum/indexing"
	"github.com/katalvlaran/maxsum/register"
)

// Controller owns one factor graph and runs max-sum message passing
// over it. Construct with New; edit the graph through the controller;
// call Optimise; read results with Values or Value.
//
// A Controller is not safe for concurrent use.
type Controller struct {
	opts    Options
	graph   *factorgraph.Graph
	actions map[register.VarID]register.ValIndex
}

// New returns a Controller with an empty factor graph validating
// against reg. Defaults (100 iterations, 1e-7 convergence norm) apply
// unless overridden by options.
//
// Fails with factorgraph.ErrNilRegistry if reg is nil. Invalid option
// values panic inside the option constructors.
func New(reg *register.Registry, opts ...Option) (*Controller, error) {
	// 1) Build and validate options.
	cfg := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}

	// 2) The controller exclusively owns its graph.
	g, err := factorgraph.New(reg)
	if err != nil {
		return nil, err
	}

	c := &Controller{
		opts:    cfg,
		graph:   g,
		actions: make(map[register.VarID]register.ValIndex),
	}

	return c, nil
}

// SetFactor inserts or replaces a factor in the owned graph. See
// factorgraph.Graph.SetFactor for the validation contract; a rejected
// call changes nothing.
//
// Variables first referenced by the new factor enter the assignment
// map with value 0 until the next Optimise.
func (c *Controller) SetFactor(id factorgraph.FactorID, domain []register.VarID, payload []float64) error {
	if err := c.graph.SetFactor(id, domain, payload); err != nil {
		return err
	}
	c.reconcile()

	return nil
}

// RemoveFactor removes a factor from the owned graph; absent ids are a
// no-op. Variables no longer referenced by any factor leave the
// assignment map.
func (c *Controller) RemoveFactor(id factorgraph.FactorID) {
	c.graph.RemoveFactor(id)
	c.reconcile()
}

// ClearAll removes every factor and every assignment.
func (c *Controller) ClearAll() {
	c.graph.ClearAll()
	c.actions = make(map[register.VarID]register.ValIndex)
}

// FactorCount returns the number of factors in the owned graph.
func (c *Controller) FactorCount() int {
	return c.graph.FactorCount()
}

// VariableCount returns the number of distinct variables referenced by
// the owned graph's factors.
func (c *Controller) VariableCount() int {
	return c.graph.VariableCount()
}

// Optimise runs max-sum message passing until the largest absolute
// message change in a round is at or below ConvergenceNorm, or until
// MaxIterations rounds have run. It returns the number of rounds
// performed; an empty graph returns 0 immediately.
//
// Messages start from zero on every call, so the result depends only
// on the current graph and options. The controller is ready for
// further edits and re-optimisation afterwards.
func (c *Controller) Optimise() int {
	// 1) Snapshot the graph. Factors are detached copies, so the run
	//    cannot observe (or cause) graph mutation.
	r := c.snapshot()
	if r == nil {
		return 0
	}

	// 2) Message passing to convergence or the iteration cap.
	iters := r.iterate(c.opts)

	// 3) Decide each variable's value from its final incoming messages.
	r.decide()
	var vi int
	for vi = range r.vars {
		c.actions[r.vars[vi]] = register.ValIndex(r.best[vi])
	}

	return iters
}

// Values returns the current assignment for every variable referenced
// by the factor graph: value 0 for variables never optimised, the last
// Optimise result otherwise. The map is a fresh copy.
//
// Fails with ErrInconsistentValues if the assignment count disagrees
// with VariableCount; that invariant is maintained on every edit, so
// the error indicates corrupted controller state.
func (c *Controller) Values() (map[register.VarID]register.ValIndex, error) {
	if len(c.actions) != c.graph.VariableCount() {
		return nil, fmt.Errorf("%w: %d assignments, %d variables",
			ErrInconsistentValues, len(c.actions), c.graph.VariableCount())
	}

	values := make(map[register.VarID]register.ValIndex, len(c.actions))
	for v, val := range c.actions {
		values[v] = val
	}

	return values, nil
}

// Value returns the current assignment of a single variable.
// Fails with ErrUnknownVariable if no current factor references id.
func (c *Controller) Value(id register.VarID) (register.ValIndex, error) {
	val, ok := c.actions[id]
	if !ok {
		return 0, fmt.Errorf("%w: variable %d", ErrUnknownVariable, id)
	}

	return val, nil
}

// reconcile realigns the assignment map with the variables the graph
// currently references: newly referenced variables start at value 0,
// dereferenced variables are dropped.
func (c *Controller) reconcile() {
	var v register.VarID
	for v = range c.actions {
		if !c.graph.References(v) {
			delete(c.actions, v)
		}
	}
	for _, v = range c.graph.Variables() {
		if _, ok := c.actions[v]; !ok {
			c.actions[v] = 0
		}
	}
}

// edge addresses one variable/factor incidence: factor index fi in the
// run's factor slice, position p in that factor's domain.
type edge struct {
	fi int
	p  int
}

// run holds the immutable snapshot and mutable message state of a
// single Optimise call.
type run struct {
	factors []factorgraph.Factor // sorted by id, detached copies
	sizes   [][]int              // per factor: domain sizes, domain order
	vars    []register.VarID     // sorted distinct referenced variables
	domSize []int                // per vars index: that variable's domain size
	inc     [][]edge             // per vars index: incident edges, deterministic order

	// Message tables, both indexed [factor][domain position][value].
	v2f [][][]float64 // variable-to-factor
	f2v [][][]float64 // factor-to-variable

	best []int // per vars index: decided value (filled by decide)
}

// snapshot copies the current factors out of the graph and builds the
// bipartite incidence structure and zeroed message tables. Returns nil
// for an empty graph.
func (c *Controller) snapshot() *run {
	ids := c.graph.Factors()
	if len(ids) == 0 {
		return nil
	}

	vars := c.graph.Variables()
	r := &run{
		factors: make([]factorgraph.Factor, len(ids)),
		sizes:   make([][]int, len(ids)),
		vars:    vars,
		domSize: make([]int, len(vars)),
		inc:     make([][]edge, len(vars)),
		v2f:     make([][][]float64, len(ids)),
		f2v:     make([][][]float64, len(ids)),
	}

	varIdx := make(map[register.VarID]int, len(vars))
	var vi int
	for vi = range vars {
		varIdx[vars[vi]] = vi
	}

	// Factors are visited in ascending id order and domains in their
	// given order, so every per-variable edge list is deterministic.
	var (
		fi, p int
		id    factorgraph.FactorID
	)
	for fi, id = range ids {
		f, _ := c.graph.Factor(id)
		r.factors[fi] = f
		r.sizes[fi] = f.Sizes()
		r.v2f[fi] = make([][]float64, len(f.Domain))
		r.f2v[fi] = make([][]float64, len(f.Domain))
		for p = range f.Domain {
			vi = varIdx[f.Domain[p]]
			r.domSize[vi] = r.sizes[fi][p]
			r.inc[vi] = append(r.inc[vi], edge{fi: fi, p: p})
			r.v2f[fi][p] = make([]float64, r.sizes[fi][p])
			r.f2v[fi][p] = make([]float64, r.sizes[fi][p])
		}
	}

	return r
}

// iterate runs message-passing rounds until convergence or the cap.
// Returns the number of rounds performed.
func (r *run) iterate(opts Options) int {
	var iter int
	var delta, d float64
	for iter = 1; iter <= opts.MaxIterations; iter++ {
		delta = r.sweepFactors()
		if d = r.sweepVariables(); d > delta {
			delta = d
		}
		if delta <= opts.ConvergenceNorm {
			return iter
		}
	}

	return opts.MaxIterations
}

// sweepFactors recomputes every factor-to-variable message and returns
// the largest absolute change.
//
// For each factor the payload is traversed once: the incoming total at
// each joint assignment is computed, and the message to each incident
// variable takes the maximum of (total minus that variable's own
// incoming message) over all assignments sharing the variable's value.
func (r *run) sweepFactors() float64 {
	maxDelta := 0.0
	var (
		fi, p, n int
		total, d float64
		sub      []int
	)
	for fi = range r.factors {
		f := &r.factors[fi]
		n = len(f.Domain)
		if n == 0 {
			continue // constant factor: no incident edges, no messages
		}

		// Fresh outgoing messages, initialised to -inf for the running max.
		out := make([][]float64, n)
		for p = range out {
			out[p] = make([]float64, r.sizes[fi][p])
			for x := range out[p] {
				out[p][x] = math.Inf(-1)
			}
		}

		// One pass over every joint assignment of the factor's domain.
		// Sizes were validated at SetFactor, so the iterator cannot fail.
		it, _ := indexing.NewDomainIterator(r.sizes[fi])
		for ; it.Valid(); it.Next() {
			sub = it.Sub()
			total = f.Payload[it.Index()]
			for p = 0; p < n; p++ {
				total += r.v2f[fi][p][sub[p]]
			}
			for p = 0; p < n; p++ {
				// Exclude the target variable's own message from its total.
				if cand := total - r.v2f[fi][p][sub[p]]; cand > out[p][sub[p]] {
					out[p][sub[p]] = cand
				}
			}
		}

		// Install the new messages, tracking the max-norm change.
		for p = range out {
			for x := range out[p] {
				if d = math.Abs(out[p][x] - r.f2v[fi][p][x]); d > maxDelta {
					maxDelta = d
				}
			}
			r.f2v[fi][p] = out[p]
		}
	}

	return maxDelta
}

// sweepVariables recomputes every variable-to-factor message and
// returns the largest absolute change.
//
// Each message is the sum of the variable's incoming factor messages
// excluding the recipient's own, shifted by its mean so the values sum
// to zero. The shift bounds message growth on cyclic graphs without
// changing any argmax.
func (r *run) sweepVariables() float64 {
	maxDelta := 0.0
	var (
		vi, x, size int
		mean, d     float64
		e           edge
	)
	for vi = range r.vars {
		size = r.domSize[vi]

		// Total incoming factor message per value of this variable.
		total := make([]float64, size)
		for _, e = range r.inc[vi] {
			for x = 0; x < size; x++ {
				total[x] += r.f2v[e.fi][e.p][x]
			}
		}

		// One outgoing message per incident factor.
		for _, e = range r.inc[vi] {
			in := r.f2v[e.fi][e.p]
			msg := make([]float64, size)
			mean = 0
			for x = 0; x < size; x++ {
				msg[x] = total[x] - in[x]
				mean += msg[x]
			}
			mean /= float64(size)
			for x = 0; x < size; x++ {
				msg[x] -= mean
				if d = math.Abs(msg[x] - r.v2f[e.fi][e.p][x]); d > maxDelta {
					maxDelta = d
				}
			}
			r.v2f[e.fi][e.p] = msg
		}
	}

	return maxDelta
}

// decide fixes each variable's value as the argmax of the sum of its
// incoming factor messages, ties broken toward the lowest value index.
func (r *run) decide() {
	r.best = make([]int, len(r.vars))
	var (
		vi, x, size, best int
		e                 edge
	)
	for vi = range r.vars {
		size = r.domSize[vi]
		total := make([]float64, size)
		for _, e = range r.inc[vi] {
			for x = 0; x < size; x++ {
				total[x] += r.f2v[e.fi][e.p][x]
			}
		}
		best = 0
		for x = 1; x < size; x++ {
			// Strict inequality keeps the lowest index on ties.
			if total[x] > total[best] {
				best = x
			}
		}
		r.best[vi] = best
	}
}
