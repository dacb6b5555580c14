package ports

//go:generate mockgen -destination=mocks/mock_hardware.go -package=mocks fare-terminal/internal/core/ports CardGateway,FareClassifier,Display

import (
	"context"
	"time"

	"fare-terminal/internal/core/domain"
)

// CardGateway is the card reader and SAM driver. Every call is synchronous and may be slow.
type CardGateway interface {
	CardPresent() bool
	CardNumber() uint64
	ReadUserData() (domain.UserBlock, bool)
	FreeServiceParam() (interop uint16, expireOn time.Time)
	// Deduct debits amount from the card; on failure LastStatus tells why.
	Deduct(amount uint32) bool
	LastStatus() domain.CardOpStatus
	// LastBalance is the balance reported by the last successful Deduct.
	LastBalance() int64
	// Balance reads the card balance; negative means the read failed.
	Balance() int64
	WriteUserData(newBlock, oldBlock domain.UserBlock) bool
	PurchaseCommit()

	ActiveMID() string
	ActiveTID() string
	Issuer() string
	Bank() string
	CardType() domain.CardType
	Transcode() string
}

// ClassifyRequest carries what the classifier needs to pick an outcome.
type ClassifyRequest struct {
	Bank       string
	Issuer     string
	CardNumber uint64
	MaxAmount  uint32
	UserData   domain.UserBlock
	Interop    uint16
	ExpireOn   time.Time
}

// FareClassifier decides which outcome applies to a presented card and computes its fare.
type FareClassifier interface {
	Validate(req ClassifyRequest) domain.TransactionOutcome
	// ZeroDeductTranscode builds the transcode of a deduct outcome that charged nothing.
	ZeroDeductTranscode(tid, mid string, sn uint32) string
	// NormalFare is the single-trip fare shown while idle.
	NormalFare() uint32
	Identity() domain.TerminalIdentity
}

// Display is the rider-facing screen. Calls are fire-and-forget.
type Display interface {
	// WaitReady blocks until the screen can accept updates or ctx ends.
	WaitReady(ctx context.Context) error
	Reset(normalFare uint32)
	ProcessingCard(cardNumber uint64)

	SuccessTapInWithDeduct(r domain.Receipt)
	SuccessTapOutWithDeduct(r domain.Receipt)
	SuccessTapInWithoutDeduct(r domain.Receipt)
	SuccessTapOutWithoutDeduct(r domain.Receipt)
	SuccessResetTapIn(r domain.Receipt)

	FailedToReadCard(code string)
	FailedToWriteCard(code string)
	FailedToDeductCard(code string)
	InsufficientBalance(balance int64)
	InsufficientMinimumBalance(balance int64)
	BlockingTime()
	FreeServiceExpired(expiry time.Time)
	FareNotFound()
	UpdateCounter(snapshot domain.CounterSnapshot)
}
