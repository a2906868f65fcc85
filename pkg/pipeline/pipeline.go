// Package pipeline drives one part build through its fixed stage
// order: patterns, profiles, solids, features, export. Every stage
// consumes the output of the one before it, so the run is synchronous
// and aborts on the first failure; there is no partial recovery
// because intermediate solids have no value outside a completed
// export.
package pipeline

import (
	"fmt"

	"github.com/rs/zerolog"
)

// State is the run's position in the stage order.
type State int

const (
	StateInit State = iota
	StatePatternsBuilt
	StateProfilesBuilt
	StateSolidsComposed
	StateFeaturesApplied
	StateExported
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateInit:
		return "init"
	case StatePatternsBuilt:
		return "patterns-built"
	case StateProfilesBuilt:
		return "profiles-built"
	case StateSolidsComposed:
		return "solids-composed"
	case StateFeaturesApplied:
		return "features-applied"
	case StateExported:
		return "exported"
	case StateFailed:
		return "failed"
	}
	return fmt.Sprintf("state(%d)", int(s))
}

// StageError wraps a stage failure with the stage that produced it.
type StageError struct {
	Part  string
	Stage string
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("pipeline: part %s: stage %s: %v", e.Part, e.Stage, e.Err)
}

func (e *StageError) Unwrap() error { return e.Err }

// Run executes one part's stages in order. Stage methods are sticky:
// after a failure every later stage is skipped and Err reports the
// first failure.
type Run struct {
	part  string
	log   zerolog.Logger
	state State
	err   error
}

// NewRun starts a run for the named part.
func NewRun(part string, log zerolog.Logger) *Run {
	return &Run{
		part:  part,
		log:   log.With().Str("part", part).Logger(),
		state: StateInit,
	}
}

// State returns the run's current state.
func (r *Run) State() State { return r.state }

// Err returns the first stage failure, or nil.
func (r *Run) Err() error { return r.err }

// Patterns runs the placement generation stage.
func (r *Run) Patterns(fn func() error) *Run {
	return r.advance("patterns", StateInit, StatePatternsBuilt, fn)
}

// Profiles runs the profile construction stage.
func (r *Run) Profiles(fn func() error) *Run {
	return r.advance("profiles", StatePatternsBuilt, StateProfilesBuilt, fn)
}

// Solids runs the extrusion and boolean composition stage.
func (r *Run) Solids(fn func() error) *Run {
	return r.advance("solids", StateProfilesBuilt, StateSolidsComposed, fn)
}

// Features runs the selector-driven finishing stage.
func (r *Run) Features(fn func() error) *Run {
	return r.advance("features", StateSolidsComposed, StateFeaturesApplied, fn)
}

// Export runs the serialization stage.
func (r *Run) Export(fn func() error) *Run {
	return r.advance("export", StateFeaturesApplied, StateExported, fn)
}

func (r *Run) advance(stage string, from, to State, fn func() error) *Run {
	if r.err != nil {
		return r
	}
	if r.state != from {
		r.fail(stage, fmt.Errorf("stage out of order: run is %s, needs %s", r.state, from))
		return r
	}
	if err := fn(); err != nil {
		r.fail(stage, err)
		return r
	}
	r.state = to
	r.log.Debug().Str("stage", stage).Stringer("state", to).Msg("stage complete")
	return r
}

func (r *Run) fail(stage string, err error) {
	r.state = StateFailed
	r.err = &StageError{Part: r.part, Stage: stage, Err: err}
	r.log.Error().Str("stage", stage).Err(err).Msg("run aborted")
}
