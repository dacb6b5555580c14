package counter

import (
	"errors"
	"sync"
	"time"

	"fare-terminal/pkg/apperror"

	"github.com/rs/zerolog"
)

// Keeper owns the live Counter and replaces it when the cycle changes.
type Keeper struct {
	mu      sync.Mutex
	base    string
	log     zerolog.Logger
	current *Counter
}

// NewKeeper creates a Keeper rooted at base. Nothing is loaded until Current.
func NewKeeper(base string, log zerolog.Logger) *Keeper {
	return &Keeper{base: base, log: log.With().Str("component", "counter").Logger()}
}

// Current returns the counter for now's cycle, reusing the live one when the cycle
// matches and opening a fresh one otherwise. It returns nil when the counter cannot
// be opened; callers run degraded until a later call succeeds.
func (k *Keeper) Current(now time.Time) *Counter {
	k.mu.Lock()
	defer k.mu.Unlock()

	if k.current != nil && k.current.Cycle().Same(now) {
		return k.current
	}

	c, err := Open(k.base, now, k.log)
	if err != nil {
		if isMalformed(err) {
			err = apperror.ErrCounterMalformed(err)
		}
		k.log.Error().Err(err).Str("cycle", CycleOf(now).String()).Msg("failed to load counter")
		k.current = nil
		return nil
	}
	if k.current != nil {
		k.log.Info().
			Str("from", k.current.Cycle().String()).
			Str("to", c.Cycle().String()).
			Msg("counter cycle rollover")
	}
	k.current = c
	return c
}

// Peek returns the live counter without checking the cycle.
func (k *Keeper) Peek() *Counter {
	k.mu.Lock()
	defer k.mu.Unlock()
	return k.current
}

func isMalformed(err error) bool {
	return errors.Is(err, ErrMalformed) ||
		errors.Is(err, ErrFieldMissing) ||
		errors.Is(err, ErrFieldType) ||
		errors.Is(err, ErrOutOfRange)
}
