package scoped

import (
	"os"

	"github.com/rs/zerolog"

	"github.com/arthur-debert/testkit/pkg/errors"
	"github.com/arthur-debert/testkit/pkg/logging"
)

// EnvVar overrides one process-wide environment variable for the guard's
// lifetime and puts the pre-guard value back on Release.
//
// The process environment is global mutable state. Two live EnvVar guards
// on the same name chain their captured "previous" values, so the second
// guard restores the first guard's override instead of the true original.
// Keeping at most one live guard per variable name is caller discipline;
// the guard does not lock.
type EnvVar struct {
	name     string
	previous string
	existed  bool
	current  string
	released bool
	log      zerolog.Logger
}

// NewEnvVar captures the current state of the variable name, then sets it
// to value.
func NewEnvVar(name, value string) (*EnvVar, error) {
	previous, existed := os.LookupEnv(name)
	if err := os.Setenv(name, value); err != nil {
		return nil, errors.Wrapf(err, errors.ErrEnvSet, "cannot set %s", name)
	}

	log := logging.GetLogger("scoped")
	log.Debug().Str("name", name).Bool("existed", existed).Msg("overrode environment variable")
	return &EnvVar{
		name:     name,
		previous: previous,
		existed:  existed,
		current:  value,
		log:      log,
	}, nil
}

// Name returns the variable the guard owns.
func (e *EnvVar) Name() string {
	return e.name
}

// Value returns the value most recently written through the guard.
func (e *EnvVar) Value() string {
	return e.current
}

// Set writes a new value to the live variable. The previous value captured
// at construction is untouched, so Release still restores the pre-guard
// state.
func (e *EnvVar) Set(value string) error {
	if err := os.Setenv(e.name, value); err != nil {
		return errors.Wrapf(err, errors.ErrEnvSet, "cannot set %s", e.name)
	}
	e.current = value
	return nil
}

// Release restores the value the variable had before the guard was built.
// If the variable was unset at construction the guard leaves its last
// value in place rather than unsetting it; callers wanting a clean slate
// should pick names with random.UnusedEnvVar and unset them themselves.
// Only the first call acts; later calls return nil.
func (e *EnvVar) Release() error {
	if e.released {
		return nil
	}
	e.released = true

	if !e.existed {
		e.log.Debug().Str("name", e.name).Msg("no previous value to restore")
		return nil
	}
	if err := os.Setenv(e.name, e.previous); err != nil {
		return errors.Wrapf(err, errors.ErrEnvSet, "cannot restore %s", e.name)
	}
	e.log.Debug().Str("name", e.name).Msg("restored environment variable")
	return nil
}

// MustRelease is Release for defer statements; it panics when restoration
// fails.
func (e *EnvVar) MustRelease() {
	if err := e.Release(); err != nil {
		panic(err)
	}
}
