// Package solver defines the max-sum controller's configuration
// options and sentinel errors.
package solver

import "errors"

// Default convergence parameters. They match the defaults commonly
// used for loopy max-sum: a generous iteration cap and a tight
// message-change threshold.
const (
	// DefaultMaxIterations is the iteration cap used when
	// WithMaxIterations is not supplied.
	DefaultMaxIterations = 100

	// DefaultConvergenceNorm is the message-change threshold used when
	// WithConvergenceNorm is not supplied.
	DefaultConvergenceNorm = 1e-7
)

// Sentinel errors returned (or panicked, for option misuse) by the solver.
var (
	// ErrBadMaxIterations indicates a non-positive iteration cap.
	ErrBadMaxIterations = errors.New("solver: MaxIterations must be positive")

	// ErrBadConvergenceNorm indicates a non-positive convergence threshold.
	ErrBadConvergenceNorm = errors.New("solver: ConvergenceNorm must be positive")

	// ErrInconsistentValues indicates that the assignment map disagrees
	// with the factor graph's variable count. This is the post-run
	// sanity check; seeing it means controller state was corrupted.
	ErrInconsistentValues = errors.New("solver: assignment count does not match the factor graph's variable count")

	// ErrUnknownVariable indicates a value query for a variable that no
	// current factor references.
	ErrUnknownVariable = errors.New("solver: variable is not referenced by the current factor graph")
)

// Options configures a Controller.
//
// MaxIterations   – upper bound on message-passing rounds (must be ≥ 1).
// ConvergenceNorm – maximum absolute message change per round below
//
//	which the algorithm is considered converged (must be > 0).
type Options struct {
	MaxIterations   int     // cap on message-passing rounds
	ConvergenceNorm float64 // message-change threshold for early stop
}

// Option is a functional option for configuring a Controller.
type Option func(*Options)

// WithMaxIterations sets the iteration cap.
// Panics with ErrBadMaxIterations if n < 1; invalid configuration is a
// programming error and is surfaced at construction, not at run time.
func WithMaxIterations(n int) Option {
	return func(o *Options) {
		if n < 1 {
			panic(ErrBadMaxIterations.Error())
		}
		o.MaxIterations = n
	}
}

// WithConvergenceNorm sets the message-change threshold below which a
// round is considered converged.
// Panics with ErrBadConvergenceNorm if norm <= 0.
func WithConvergenceNorm(norm float64) Option {
	return func(o *Options) {
		if norm <= 0 {
			panic(ErrBadConvergenceNorm.Error())
		}
		o.ConvergenceNorm = norm
	}
}

// DefaultOptions returns the Options a Controller uses when no
// functional options are supplied:
//
//   - MaxIterations:   DefaultMaxIterations (100)
//   - ConvergenceNorm: DefaultConvergenceNorm (1e-7)
func DefaultOptions() Options {
	return Options{
		MaxIterations:   DefaultMaxIterations,
		ConvergenceNorm: DefaultConvergenceNorm,
	}
}
