// Package msf defines configuration options and sentinel errors for forest
// construction, verification and the sensitivity driver.
package msf

import "errors"

// Sentinel errors. The four verification sentinels are diagnostics for an
// internal inconsistency, not recoverable input errors — see doc.go.
var (
	// ErrNilGraph indicates a nil *ewgraph.Graph input.
	ErrNilGraph = errors.New("msf: graph is nil")

	// ErrNilForest indicates a nil *Forest input.
	ErrNilForest = errors.New("msf: forest is nil")

	// ErrForestMismatch indicates a forest whose vertex count does not match
	// the graph it is being checked or analyzed against.
	ErrForestMismatch = errors.New("msf: forest does not match graph vertex count")

	// ErrWeightMismatch indicates the recorded total weight disagrees with
	// the recomputed sum of forest edge weights beyond the tolerance.
	ErrWeightMismatch = errors.New("msf: forest weight does not match edge sum")

	// ErrCycle indicates the forest edge set contains a cycle.
	ErrCycle = errors.New("msf: forest is not acyclic")

	// ErrNotSpanning indicates a graph edge crosses two forest components.
	ErrNotSpanning = errors.New("msf: forest does not span the graph")

	// ErrCutViolation indicates a forest edge is not the minimum-weight edge
	// across the cut induced by its removal.
	ErrCutViolation = errors.New("msf: cut optimality violated")

	// ErrBadTolerance is the panic value of WithTolerance for a negative
	// tolerance.
	ErrBadTolerance = errors.New("msf: tolerance must be non-negative")

	// ErrBadWorkers is the panic value of WithWorkers for a worker count
	// below one.
	ErrBadWorkers = errors.New("msf: worker count must be positive")
)

// DefaultTolerance absorbs floating-point accumulation error in the weight
// consistency check. Irrelevant for integral weights.
const DefaultTolerance = 1e-12

// Options configures Build, Verify and Sensitivity. Use DefaultOptions for
// the baseline setup and the With* functional options to override.
//
// Fields:
//
//	Verify    bool    — run the optimality checker after Build (diagnostic;
//	                    super-linear, off by default).
//	Tolerance float64 — numeric tolerance of the weight consistency check.
//	Workers   int     — goroutines for Sensitivity; 1 means serial.
type Options struct {
	Verify    bool
	Tolerance float64
	Workers   int
}

// Option configures Options. All Option functions mutate the pointed Options.
type Option func(*Options)

// WithVerify makes Build run the full optimality check on its result and
// return the check's error. Intended for tests and debugging: the check is
// O(E·V) and has no place on a production hot path.
func WithVerify() Option {
	return func(o *Options) { o.Verify = true }
}

// WithTolerance sets the numeric tolerance of the weight consistency check.
// Must be non-negative; negative values panic with ErrBadTolerance.
func WithTolerance(eps float64) Option {
	return func(o *Options) {
		if eps < 0 {
			panic(ErrBadTolerance.Error())
		}
		o.Tolerance = eps
	}
}

// WithWorkers sets how many goroutines Sensitivity fans its per-edge
// recomputations over. Must be at least 1; smaller values panic with
// ErrBadWorkers. Build and Verify ignore this field.
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 1 {
			panic(ErrBadWorkers.Error())
		}
		o.Workers = n
	}
}

// DefaultOptions returns the baseline configuration:
//
//	– Verify    = false (checker only on request)
//	– Tolerance = DefaultTolerance
//	– Workers   = 1 (serial sensitivity driver)
func DefaultOptions() Options {
	return Options{
		Verify:    false,
		Tolerance: DefaultTolerance,
		Workers:   1,
	}
}
