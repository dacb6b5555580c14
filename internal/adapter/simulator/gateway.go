// Package simulator provides a bench card reader and fare classifier so the
// terminal can run without hardware attached.
package simulator

import (
	"fmt"
	"math/rand/v2"
	"sync"
	"time"

	"fare-terminal/internal/core/domain"
)

// Op names a gateway operation that can be scripted to fail.
type Op int

const (
	OpReadUserData Op = iota
	OpDeduct
	OpBalance
	OpWriteUserData
)

// GatewayConfig configures the virtual card and its reader.
type GatewayConfig struct {
	MID           string
	TID           string
	TapInterval   time.Duration
	StartBalance  int64
	WriteFailRate float64
	Card          domain.CardIdentity
}

// Gateway is an in-memory card reader with a single virtual card that is
// presented once every TapInterval.
type Gateway struct {
	mu  sync.Mutex
	cfg GatewayConfig
	now func() time.Time
	rnd *rand.Rand

	nextTap     time.Time
	balance     int64
	block       domain.UserBlock
	lastStatus  domain.CardOpStatus
	lastBalance int64
	transcode   string
	seq         uint32
	commits     int
	faults      map[Op]domain.CardOpStatus
}

// DefaultCard is the card presented when GatewayConfig.Card is empty.
var DefaultCard = domain.CardIdentity{
	Number: 6032984012345678,
	Issuer: "emoney",
	Bank:   "MANDIRI",
	Type:   domain.CardTypeMandiri,
}

// NewGateway creates a simulated reader. The first card appears immediately.
func NewGateway(cfg GatewayConfig) *Gateway {
	if cfg.Card == (domain.CardIdentity{}) {
		cfg.Card = DefaultCard
	}
	return &Gateway{
		cfg:     cfg,
		now:     time.Now,
		rnd:     rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0)),
		balance: cfg.StartBalance,
		faults:  make(map[Op]domain.CardOpStatus),
	}
}

// Fail makes the next call of op fail. For OpDeduct, status is reported by LastStatus.
func (g *Gateway) Fail(op Op, status domain.CardOpStatus) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.faults[op] = status
}

// Present makes the card available on the next CardPresent call.
func (g *Gateway) Present() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.nextTap = time.Time{}
}

// SetBalance replaces the card balance.
func (g *Gateway) SetBalance(balance int64) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.balance = balance
}

// Commits reports how many purchases were committed.
func (g *Gateway) Commits() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.commits
}

// Block returns the user data currently stored on the card.
func (g *Gateway) Block() domain.UserBlock {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.block
}

func (g *Gateway) fault(op Op) (domain.CardOpStatus, bool) {
	status, ok := g.faults[op]
	if ok {
		delete(g.faults, op)
	}
	return status, ok
}

func (g *Gateway) CardPresent() bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	now := g.now()
	if now.Before(g.nextTap) {
		return false
	}
	g.nextTap = now.Add(g.cfg.TapInterval)
	return true
}

func (g *Gateway) CardNumber() uint64 {
	return g.cfg.Card.Number
}

func (g *Gateway) ReadUserData() (domain.UserBlock, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, failed := g.fault(OpReadUserData); failed {
		return domain.UserBlock{}, false
	}
	return g.block, true
}

func (g *Gateway) FreeServiceParam() (uint16, time.Time) {
	return 0, time.Time{}
}

func (g *Gateway) Deduct(amount uint32) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	if status, failed := g.fault(OpDeduct); failed {
		g.lastStatus = status
		return false
	}
	if g.balance < int64(amount) {
		g.lastStatus = domain.CardOpInsufficientValue
		return false
	}

	g.balance -= int64(amount)
	g.lastBalance = g.balance
	g.lastStatus = domain.CardOpOK
	g.seq++
	g.transcode = fmt.Sprintf("%s%s%08d", g.cfg.TID, g.cfg.MID, g.seq)
	return true
}

func (g *Gateway) LastStatus() domain.CardOpStatus {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.lastStatus
}

func (g *Gateway) LastBalance() int64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.lastBalance
}

func (g *Gateway) Balance() int64 {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, failed := g.fault(OpBalance); failed {
		return -1
	}
	return g.balance
}

// WriteUserData stores newBlock unless a scripted or random write failure hits.
func (g *Gateway) WriteUserData(newBlock, _ domain.UserBlock) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, failed := g.fault(OpWriteUserData); failed {
		return false
	}
	if g.cfg.WriteFailRate > 0 && g.rnd.Float64() < g.cfg.WriteFailRate {
		return false
	}
	g.block = newBlock
	return true
}

func (g *Gateway) PurchaseCommit() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.commits++
}

func (g *Gateway) ActiveMID() string { return g.cfg.MID }

func (g *Gateway) ActiveTID() string { return g.cfg.TID }

func (g *Gateway) Issuer() string { return g.cfg.Card.Issuer }

func (g *Gateway) Bank() string { return g.cfg.Card.Bank }

func (g *Gateway) CardType() domain.CardType { return g.cfg.Card.Type }

func (g *Gateway) Transcode() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.transcode
}
