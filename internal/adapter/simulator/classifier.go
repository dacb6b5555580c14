package simulator

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"time"

	"fare-terminal/internal/core/domain"
	"fare-terminal/internal/core/ports"
)

// User block layout written by the classifier.
const (
	offJourney   = 0
	offTapInAt   = 1
	offTransport = 9
	offTerminal  = 16
	offFletCode  = 32
	fieldWidth   = 16
)

const (
	journeyNone byte = iota
	journeyOpen
)

// ClassifierConfig configures the flat-fare classifier.
type ClassifierConfig struct {
	Fare     domain.FlatFare
	Identity domain.TerminalIdentity
	// BlockWindow rejects a second tap at the same terminal within this window.
	BlockWindow time.Duration
	// JourneyLimit turns a tap-out of an older journey into a penalty. Zero disables it.
	JourneyLimit time.Duration
}

// Classifier alternates between tap-in without deduct and tap-out with deduct,
// keeping the open journey in the card's user block.
type Classifier struct {
	cfg ClassifierConfig
	now func() time.Time
}

// NewClassifier creates a flat-fare classifier.
func NewClassifier(cfg ClassifierConfig) *Classifier {
	return &Classifier{cfg: cfg, now: time.Now}
}

func (c *Classifier) Validate(req ports.ClassifyRequest) domain.TransactionOutcome {
	block := req.UserData
	if block[offJourney] > journeyOpen {
		return domain.Invalid{Raw: block}
	}
	if c.cfg.Fare.Final > req.MaxAmount {
		return domain.FareNotFound{Raw: block}
	}

	now := c.now()
	data := domain.CardUserData{Raw: block}
	if block[offJourney] == journeyNone {
		return domain.TapInWithoutDeduct{Classified: c.classified(data, c.openJourney(now))}
	}

	data.Origin = decodeOrigin(block)
	elapsed := now.Sub(data.Origin.TransactionAt)
	if c.cfg.BlockWindow > 0 && elapsed < c.cfg.BlockWindow && data.Origin.TerminalID == c.cfg.Identity.TerminalID {
		return domain.Blocked{Classified: c.classified(data, block)}
	}
	if c.cfg.JourneyLimit > 0 && elapsed > c.cfg.JourneyLimit {
		return domain.Penalty{Classified: c.classified(data, c.openJourney(now))}
	}
	return domain.TapOutWithDeduct{Classified: c.classified(data, domain.UserBlock{})}
}

func (c *Classifier) classified(data domain.CardUserData, toWrite domain.UserBlock) domain.Classified {
	return domain.Classified{Data: data, ToWrite: toWrite, Rules: c.cfg.Fare}
}

// openJourney encodes a journey started at this terminal at t.
func (c *Classifier) openJourney(t time.Time) domain.UserBlock {
	var b domain.UserBlock
	b[offJourney] = journeyOpen
	binary.BigEndian.PutUint64(b[offTapInAt:], uint64(t.Unix()))
	b[offTransport] = byte(c.cfg.Identity.Transportation)
	copy(b[offTerminal:offTerminal+fieldWidth], c.cfg.Identity.TerminalID)
	copy(b[offFletCode:offFletCode+fieldWidth], c.cfg.Identity.FletCode)
	return b
}

func decodeOrigin(b domain.UserBlock) domain.TerminalIdentity {
	return domain.TerminalIdentity{
		FletCode:       field(b[offFletCode : offFletCode+fieldWidth]),
		TerminalID:     field(b[offTerminal : offTerminal+fieldWidth]),
		Transportation: domain.Transportation(b[offTransport]),
		TransactionAt:  time.Unix(int64(binary.BigEndian.Uint64(b[offTapInAt:])), 0),
	}
}

func field(b []byte) string {
	if i := bytes.IndexByte(b, 0); i >= 0 {
		b = b[:i]
	}
	return string(b)
}

// ZeroDeductTranscode builds a transcode for a deduct that charged nothing.
func (c *Classifier) ZeroDeductTranscode(tid, mid string, sn uint32) string {
	return fmt.Sprintf("%s%sZ%07d", tid, mid, sn)
}

func (c *Classifier) NormalFare() uint32 {
	return c.cfg.Fare.Normal
}

func (c *Classifier) Identity() domain.TerminalIdentity {
	return c.cfg.Identity
}
