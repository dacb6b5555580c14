package service

import (
	"context"
	"strconv"
	"time"

	"fare-terminal/internal/core/domain"
	"fare-terminal/internal/core/ports"
	"fare-terminal/internal/counter"

	"github.com/rs/zerolog"
)

// readWriteFailureCode is shown when the card block cannot be read or written.
const readWriteFailureCode = "1004"

const defaultInsertTimeout = 5 * time.Second

// DispatcherConfig holds the ledger fields and limits fixed per terminal.
type DispatcherConfig struct {
	IntegratorID  int
	InsertTimeout time.Duration
}

// Dispatcher executes a classified outcome: value transfer, card write-back,
// ledger insert and counter update, in that order.
type Dispatcher struct {
	gateway    ports.CardGateway
	classifier ports.FareClassifier
	display    ports.Display
	ledger     ports.LedgerStore
	publisher  ports.CounterPublisher
	counters   *counter.Keeper
	cfg        DispatcherConfig
	log        zerolog.Logger
	now        func() time.Time
}

// NewDispatcher creates a Dispatcher. publisher may be nil.
func NewDispatcher(
	gateway ports.CardGateway,
	classifier ports.FareClassifier,
	display ports.Display,
	ledger ports.LedgerStore,
	publisher ports.CounterPublisher,
	counters *counter.Keeper,
	cfg DispatcherConfig,
	log zerolog.Logger,
) *Dispatcher {
	if cfg.InsertTimeout <= 0 {
		cfg.InsertTimeout = defaultInsertTimeout
	}
	return &Dispatcher{
		gateway:    gateway,
		classifier: classifier,
		display:    display,
		ledger:     ledger,
		publisher:  publisher,
		counters:   counters,
		cfg:        cfg,
		log:        log,
		now:        time.Now,
	}
}

// Dispatch executes outcome for card and reports whether the tap succeeded.
func (d *Dispatcher) Dispatch(ctx context.Context, card domain.CardIdentity, outcome domain.TransactionOutcome, dur *Duration) bool {
	tx := &transaction{
		ctx:  ctx,
		d:    d,
		card: card,
		dur:  dur,
		log: d.log.With().
			Uint64("card_number", card.Number).
			Str("issuer", card.Issuer).
			Str("outcome", string(outcome.Kind())).
			Logger(),
	}
	if c, ok := outcome.(interface{ Payload() domain.Classified }); ok && c.Payload().Rules == nil {
		tx.log.Error().Msg("classified outcome without fare rules")
		d.display.FareNotFound()
		return false
	}
	return outcome.Visit(tx)
}

// transaction is the dispatch state of one tap. It implements domain.OutcomeVisitor.
type transaction struct {
	ctx  context.Context
	d    *Dispatcher
	card domain.CardIdentity
	dur  *Duration
	log  zerolog.Logger
}

type deductFlow int

const (
	flowTapIn deductFlow = iota
	flowTapOut
	flowPenalty
)

func (t *transaction) Penalty(o domain.Penalty) bool {
	return t.withDeduct(o.Classified, flowPenalty)
}

func (t *transaction) TapInWithDeduct(o domain.TapInWithDeduct) bool {
	return t.withDeduct(o.Classified, flowTapIn)
}

func (t *transaction) TapOutWithDeduct(o domain.TapOutWithDeduct) bool {
	return t.withDeduct(o.Classified, flowTapOut)
}

func (t *transaction) TapInWithoutDeduct(o domain.TapInWithoutDeduct) bool {
	return t.withoutDeduct(o.Classified, true)
}

func (t *transaction) TapOutWithoutDeduct(o domain.TapOutWithoutDeduct) bool {
	return t.withoutDeduct(o.Classified, false)
}

func (t *transaction) FreeServiceExpired(o domain.FreeServiceExpired) bool {
	t.log.Warn().Time("expiry", o.Data.FreeServiceExpiry).Msg("free service expired")
	t.d.display.FreeServiceExpired(o.Data.FreeServiceExpiry)
	t.fail(o.Classified, true, false, 0, domain.ErrClassServiceExpired)
	return false
}

func (t *transaction) Blocked(o domain.Blocked) bool {
	t.log.Warn().Msg("tap inside blocking time")
	t.d.display.BlockingTime()
	t.fail(o.Classified, true, false, 0, domain.ErrClassTapBelowOneMinute)
	return false
}

func (t *transaction) Invalid(o domain.Invalid) bool {
	t.log.Error().Str("user_data", o.Raw.Hex()).Msg("invalid user data")
	return false
}

func (t *transaction) FareNotFound(domain.FareNotFound) bool {
	t.log.Error().Msg("fare not found")
	t.d.display.FareNotFound()
	return false
}

func (t *transaction) InsufficientBalance(domain.InsufficientBalance) bool {
	t.log.Error().Msg("insufficient minimum balance")
	t.d.display.InsufficientMinimumBalance(0)
	return false
}

// withDeduct charges the final fare, writes the card back and records the tap.
// A failed penalty is recorded like a failed tap-in with deduct.
func (t *transaction) withDeduct(c domain.Classified, flow deductFlow) bool {
	gw := t.d.gateway
	amount := domain.FareFor(c.Rules, c.Data)
	tapIn := flow != flowTapOut

	balance, ok := t.transfer(amount)
	if !ok {
		t.dur.CheckPoint("deduct failed")
		t.deductFailed(c, tapIn, amount)
		return false
	}
	t.dur.CheckPoint("deduct success")

	if !gw.WriteUserData(c.ToWrite, c.Data.Raw) {
		t.dur.CheckPoint("write user data failed")
		t.log.Error().Msg("failed to write user data")
		t.d.display.FailedToWriteCard(readWriteFailureCode)
		t.fail(c, tapIn, true, balance, domain.ErrClassWriteBlockException)
		return false
	}
	t.dur.CheckPoint("write user data success")

	receipt := domain.Receipt{
		Fare:      amount,
		BaseFare:  amount,
		Balance:   balance,
		Tariff:    c.Data.Tariff(),
		FreeUntil: c.Data.FreeServiceExpiry,
	}
	t.log.Info().Uint32("fare", amount).Int64("balance", balance).Msg("deduct success")

	switch flow {
	case flowTapIn:
		t.d.display.SuccessTapInWithDeduct(receipt)
		t.store(c, true, true, balance, amount)
	case flowTapOut:
		t.d.display.SuccessTapOutWithDeduct(receipt)
		t.store(c, false, true, balance, amount)
	case flowPenalty:
		t.d.display.SuccessResetTapIn(receipt)
		t.store(c, false, true, balance, amount)
		t.store(c, true, false, balance, amount)
	}

	if amount > 0 {
		gw.PurchaseCommit()
		t.dur.CheckPoint("purchase commit")
	}
	return true
}

// transfer debits amount, or only reads the balance when there is nothing to charge.
func (t *transaction) transfer(amount uint32) (int64, bool) {
	gw := t.d.gateway
	if amount > 0 {
		if !gw.Deduct(amount) {
			return 0, false
		}
		return gw.LastBalance(), true
	}
	balance := gw.Balance()
	return balance, balance >= 0
}

func (t *transaction) deductFailed(c domain.Classified, tapIn bool, amount uint32) {
	gw := t.d.gateway
	status := gw.LastStatus()
	t.log.Error().Int("status", int(status)).Uint32("fare", amount).Msg("deduct failed")

	if status == domain.CardOpInsufficientValue {
		balance := gw.Balance()
		t.dur.CheckPoint("get balance")
		if balance >= 0 {
			t.d.display.InsufficientBalance(balance)
			t.fail(c, tapIn, true, balance, domain.ErrClassInsufficientBalance)
			return
		}
		t.d.display.FailedToDeductCard(strconv.Itoa(int(status)))
		t.fail(c, tapIn, true, 0, domain.ErrClassBalanceCheckException)
		return
	}

	t.d.display.FailedToDeductCard(strconv.Itoa(int(status)))
	if amount > 0 {
		t.fail(c, tapIn, true, 0, domain.ErrClassDebitDeviceLostContact)
	} else {
		t.fail(c, tapIn, true, 0, domain.ErrClassBalanceCheckException)
	}
}

// withoutDeduct reads the balance, enforces the tap-in minimum balance and writes the card back.
func (t *transaction) withoutDeduct(c domain.Classified, tapIn bool) bool {
	gw := t.d.gateway

	balance := gw.Balance()
	t.dur.CheckPoint("get balance")
	if balance < 0 {
		t.log.Error().Msg("failed to read balance")
		t.d.display.FailedToReadCard(readWriteFailureCode)
		t.fail(c, tapIn, false, 0, domain.ErrClassBalanceCheckException)
		return false
	}

	if tapIn && !c.Data.FreeService {
		if minimum, ok := c.Rules.MinimumBalance(); ok && balance < int64(minimum) {
			t.log.Error().Int64("balance", balance).Uint32("minimum_balance", minimum).Msg("insufficient minimum balance")
			t.d.display.InsufficientMinimumBalance(balance)
			t.fail(c, true, false, balance, domain.ErrClassInsufficientBalance)
			return false
		}
	}

	if !gw.WriteUserData(c.ToWrite, c.Data.Raw) {
		t.dur.CheckPoint("write user data failed")
		t.log.Error().Msg("failed to write user data")
		t.d.display.FailedToWriteCard(readWriteFailureCode)
		t.fail(c, tapIn, false, balance, domain.ErrClassWriteBlockException)
		return false
	}
	t.dur.CheckPoint("write user data success")

	receipt := domain.Receipt{
		Balance:   balance,
		Tariff:    c.Data.Tariff(),
		FreeUntil: c.Data.FreeServiceExpiry,
	}
	if tapIn {
		t.d.display.SuccessTapInWithoutDeduct(receipt)
	} else {
		t.d.display.SuccessTapOutWithoutDeduct(receipt)
	}
	t.store(c, tapIn, false, balance, 0)
	return true
}
