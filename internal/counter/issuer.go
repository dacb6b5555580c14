package counter

import (
	"fmt"
	"sync"

	"fare-terminal/internal/core/domain"
)

// Issuer holds the counters of one payment network, backed by one JSON file.
type Issuer struct {
	mu   sync.Mutex
	name string
	path string
	c    domain.IssuerCounters
}

// NewIssuer loads the counters stored at path. A missing file starts at zero.
func NewIssuer(name, path string) (*Issuer, error) {
	i := &Issuer{name: name, path: path}
	if err := i.Load(); err != nil {
		return nil, err
	}
	return i, nil
}

func (i *Issuer) Name() string { return i.name }

func (i *Issuer) Path() string { return i.path }

// Load replaces the in-memory counters with the file contents.
func (i *Issuer) Load() error {
	obj, err := readObject(i.path)
	if err != nil {
		return err
	}

	var c domain.IssuerCounters
	if obj != nil {
		fields := []struct {
			key string
			dst *uint32
		}{
			{"tap_in_regular", &c.TapInRegular},
			{"tap_in_economy", &c.TapInEconomy},
			{"tap_in_free_service", &c.TapInFreeService},
			{"tap_out", &c.TapOut},
			{"sent", &c.Sent},
			{"pending", &c.Pending},
		}
		for _, f := range fields {
			if *f.dst, err = obj.uint32(f.key); err != nil {
				return fmt.Errorf("loading %s: %w", i.path, err)
			}
		}
		if c.Amount, err = obj.uint64("amount"); err != nil {
			return fmt.Errorf("loading %s: %w", i.path, err)
		}
	}

	i.mu.Lock()
	i.c = c
	i.mu.Unlock()
	return nil
}

// Store writes the counters to the backing file.
func (i *Issuer) Store() error {
	snap := i.Snapshot()
	return writeFileAtomic(i.path, snap)
}

// Reset zeroes the in-memory counters.
func (i *Issuer) Reset() {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.c = domain.IssuerCounters{}
}

// Snapshot returns a copy of the counters.
func (i *Issuer) Snapshot() domain.IssuerCounters {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.c
}

func (i *Issuer) IncTapInRegular() {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.c.TapInRegular++
}

func (i *Issuer) IncTapInEconomy() {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.c.TapInEconomy++
}

func (i *Issuer) IncTapInFreeService() {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.c.TapInFreeService++
}

func (i *Issuer) IncTapOut() {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.c.TapOut++
}

func (i *Issuer) IncAmount(amount uint32) {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.c.Amount += uint64(amount)
}

func (i *Issuer) IncPending() {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.c.Pending++
}

// IncSent moves one record from pending to sent.
func (i *Issuer) IncSent() {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.c.Sent++
	if i.c.Pending > 0 {
		i.c.Pending--
	}
}

func (i *Issuer) TapInRegular() uint32     { return i.Snapshot().TapInRegular }
func (i *Issuer) TapInEconomy() uint32     { return i.Snapshot().TapInEconomy }
func (i *Issuer) TapInFreeService() uint32 { return i.Snapshot().TapInFreeService }
func (i *Issuer) TapOut() uint32           { return i.Snapshot().TapOut }
func (i *Issuer) Sent() uint32             { return i.Snapshot().Sent }
func (i *Issuer) Pending() uint32          { return i.Snapshot().Pending }
func (i *Issuer) Amount() uint64           { return i.Snapshot().Amount }
