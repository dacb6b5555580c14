package counter

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"fare-terminal/internal/core/domain"

	"github.com/rs/zerolog"
)

// Issuer file names, in lookup fallback order.
const (
	Emoney  = "emoney"
	Brizzi  = "brizzi"
	Tapcash = "tapcash"
	Flazz   = "flazz"
	Jakcard = "jakcard"
)

var issuerNames = []string{Emoney, Brizzi, Tapcash, Flazz, Jakcard}

const snFile = "sn.json"

// DeterminePath returns <base>/<YYYY>/<Mon>/<YYYY-MM-DD> for t and creates it.
func DeterminePath(base string, t time.Time) (string, error) {
	dir := filepath.Join(base, t.Format("2006"), t.Format("Jan"), t.Format("2006-01-02"))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating counter directory %s: %w", dir, err)
	}
	return dir, nil
}

// Counter aggregates the issuer counters of one cycle and the global sequence number.
// The sequence number lives at the base root and survives cycle rollover.
type Counter struct {
	mu      sync.Mutex
	cycle   Cycle
	snPath  string
	sn      uint32
	issuers map[string]*Issuer
	log     zerolog.Logger
}

// Open loads the counter of the cycle containing now.
func Open(base string, now time.Time, log zerolog.Logger) (*Counter, error) {
	dir, err := DeterminePath(base, now)
	if err != nil {
		return nil, err
	}

	c := &Counter{
		cycle:   CycleOf(now),
		snPath:  filepath.Join(base, snFile),
		issuers: make(map[string]*Issuer, len(issuerNames)),
		log:     log,
	}
	for _, name := range issuerNames {
		iss, err := NewIssuer(name, filepath.Join(dir, name+".json"))
		if err != nil {
			return nil, err
		}
		c.issuers[name] = iss
	}
	if err := c.LoadSN(); err != nil {
		return nil, err
	}

	return c, nil
}

func (c *Counter) Cycle() Cycle { return c.cycle }

// Issuer returns the named issuer or nil.
func (c *Counter) Issuer(name string) *Issuer {
	return c.issuers[name]
}

// IssuerByCardType maps a reader card type to its issuer.
// Unmapped types fall back to emoney.
func (c *Counter) IssuerByCardType(t domain.CardType) *Issuer {
	switch t {
	case domain.CardTypeMandiri:
		return c.issuers[Emoney]
	case domain.CardTypeBRI:
		return c.issuers[Brizzi]
	case domain.CardTypeBNI:
		return c.issuers[Tapcash]
	case domain.CardTypeBCA:
		return c.issuers[Flazz]
	case domain.CardTypeDKI:
		return c.issuers[Jakcard]
	}
	c.log.Warn().Stringer("card_type", t).Msg("unmapped card type, counting as emoney")
	return c.issuers[Emoney]
}

func (c *Counter) IncSN() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sn++
}

func (c *Counter) SN() uint32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.sn
}

// LoadSN reads the sequence number. A missing file starts at zero.
func (c *Counter) LoadSN() error {
	obj, err := readObject(c.snPath)
	if err != nil {
		return err
	}
	var sn uint32
	if obj != nil {
		if sn, err = obj.uint32("sn"); err != nil {
			return fmt.Errorf("loading %s: %w", c.snPath, err)
		}
	}

	c.mu.Lock()
	c.sn = sn
	c.mu.Unlock()
	return nil
}

// StoreSN writes the sequence number.
func (c *Counter) StoreSN() error {
	return writeFileAtomic(c.snPath, struct {
		SN uint32 `json:"sn"`
	}{c.SN()})
}

// Store writes every issuer file and the sequence number.
func (c *Counter) Store() error {
	var errs []error
	for _, name := range issuerNames {
		if err := c.issuers[name].Store(); err != nil {
			errs = append(errs, err)
		}
	}
	if err := c.StoreSN(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// Totals sums every issuer.
func (c *Counter) Totals() domain.IssuerCounters {
	var total domain.IssuerCounters
	for _, name := range issuerNames {
		total = total.Add(c.issuers[name].Snapshot())
	}
	return total
}

// Snapshot copies every counter of the cycle.
func (c *Counter) Snapshot() domain.CounterSnapshot {
	snap := domain.CounterSnapshot{
		Cycle:   c.cycle.Time(),
		SN:      c.SN(),
		Issuers: make(map[string]domain.IssuerCounters, len(issuerNames)),
	}
	for _, name := range issuerNames {
		ic := c.issuers[name].Snapshot()
		snap.Issuers[name] = ic
		snap.Total = snap.Total.Add(ic)
	}
	return snap
}
