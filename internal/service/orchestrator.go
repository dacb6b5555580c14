package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"fare-terminal/internal/core/domain"
	"fare-terminal/internal/core/ports"
	"fare-terminal/internal/counter"
	"fare-terminal/pkg/apperror"

	"github.com/rs/zerolog"
)

// ErrAlreadyRunning is returned by Begin when the worker is already started.
var ErrAlreadyRunning = errors.New("orchestrator already running")

// LoopConfig holds the worker timings.
type LoopConfig struct {
	PollInterval    time.Duration
	SuccessDebounce time.Duration
	FailureDebounce time.Duration
	IdleInterval    time.Duration
	// MaxAmount is the highest fare the classifier may charge.
	MaxAmount uint32
}

// DefaultLoopConfig returns the production timings.
func DefaultLoopConfig() LoopConfig {
	return LoopConfig{
		PollInterval:    50 * time.Millisecond,
		SuccessDebounce: 3000 * time.Millisecond,
		FailureDebounce: 1500 * time.Millisecond,
		IdleInterval:    125 * time.Millisecond,
		MaxAmount:       999999,
	}
}

// Flusher moves buffered log lines to durable storage.
type Flusher interface {
	Flush() error
}

// SetupFunc receives the collaborators while the orchestrator lock is held.
type SetupFunc func(gateway ports.CardGateway, classifier ports.FareClassifier, display ports.Display)

// Orchestrator runs the single card-polling worker.
type Orchestrator struct {
	mu      sync.Mutex
	running bool
	cancel  context.CancelFunc
	done    chan struct{}

	gateway    ports.CardGateway
	classifier ports.FareClassifier
	display    ports.Display
	dispatcher *Dispatcher
	counters   *counter.Keeper
	history    Flusher
	cfg        LoopConfig
	log        zerolog.Logger
}

// NewOrchestrator creates a stopped Orchestrator sharing the dispatcher's collaborators.
// history may be nil.
func NewOrchestrator(dispatcher *Dispatcher, history Flusher, cfg LoopConfig, log zerolog.Logger) *Orchestrator {
	return &Orchestrator{
		gateway:    dispatcher.gateway,
		classifier: dispatcher.classifier,
		display:    dispatcher.display,
		dispatcher: dispatcher,
		counters:   dispatcher.counters,
		history:    history,
		cfg:        cfg,
		log:        log.With().Str("component", "orchestrator").Logger(),
	}
}

// Begin starts the worker. preSetup runs under the orchestrator lock once the display is ready.
func (o *Orchestrator) Begin(preSetup SetupFunc) error {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.running {
		return ErrAlreadyRunning
	}
	ctx, cancel := context.WithCancel(context.Background())
	o.running = true
	o.cancel = cancel
	o.done = make(chan struct{})

	go o.run(ctx, preSetup, o.done)
	return nil
}

// Setup runs handler under the orchestrator lock.
func (o *Orchestrator) Setup(handler SetupFunc) {
	o.mu.Lock()
	defer o.mu.Unlock()
	handler(o.gateway, o.classifier, o.display)
}

// IsRunning reports whether the worker has been asked to keep going.
func (o *Orchestrator) IsRunning() bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.running
}

// Stop asks the worker to exit and waits for it. A transaction in progress
// completes first. Calling Stop on a stopped orchestrator is a no-op.
func (o *Orchestrator) Stop() {
	o.mu.Lock()
	o.running = false
	cancel, done := o.cancel, o.done
	o.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	if done != nil {
		<-done
	}
}

// Counters returns the live counter, or nil when it is not loaded.
func (o *Orchestrator) Counters() *counter.Counter {
	return o.counters.Peek()
}

func (o *Orchestrator) run(ctx context.Context, preSetup SetupFunc, done chan struct{}) {
	defer close(done)

	if err := o.display.WaitReady(ctx); err != nil {
		o.log.Warn().Err(err).Msg("display not ready, worker exiting")
		return
	}
	o.prepare(preSetup)
	o.log.Info().Msg("orchestrator started")

	for o.IsRunning() {
		o.routine(ctx)
		sleep(ctx, o.cfg.IdleInterval)
	}
	o.log.Info().Msg("orchestrator stopped")
}

func (o *Orchestrator) prepare(preSetup SetupFunc) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if preSetup != nil {
		preSetup(o.gateway, o.classifier, o.display)
	}
	o.display.Reset(o.classifier.NormalFare())
	if c := o.counters.Current(time.Now()); c != nil {
		o.display.UpdateCounter(c.Snapshot())
	} else {
		o.log.Warn().Msg("missing counter")
	}
}

// routine polls once and, when a card is present, processes it and debounces.
func (o *Orchestrator) routine(ctx context.Context) {
	dur := NewDuration("transaction")

	present := o.guard(o.gateway.CardPresent)
	if !present {
		sleep(ctx, o.cfg.PollInterval)
		return
	}
	dur.CheckPoint("card polling")

	// The ledger insert of a started transaction must not be cut short by Stop.
	txCtx := context.WithoutCancel(ctx)
	ok := o.guard(func() bool { return o.process(txCtx, dur) })
	dur.Log(o.log)

	if ok {
		sleep(ctx, o.cfg.SuccessDebounce)
	} else {
		sleep(ctx, o.cfg.FailureDebounce)
	}
	if o.history != nil {
		if err := o.history.Flush(); err != nil {
			o.log.Warn().Err(err).Msg("failed to flush log history")
		}
	}
	o.guard(func() bool {
		o.display.Reset(o.classifier.NormalFare())
		return true
	})
}

func (o *Orchestrator) process(ctx context.Context, dur *Duration) bool {
	gw := o.gateway

	number := gw.CardNumber()
	dur.CheckPoint("get card number")
	o.display.ProcessingCard(number)
	o.log.Info().Uint64("card_number", number).Msg("card detected")

	block, ok := gw.ReadUserData()
	if !ok {
		dur.CheckPoint("read user data failed")
		o.log.Error().Uint64("card_number", number).Msg("failed to read user data")
		o.display.FailedToReadCard(readWriteFailureCode)
		return false
	}
	dur.CheckPoint("read user data")
	interop, expireOn := gw.FreeServiceParam()

	card := domain.CardIdentity{
		Number: number,
		Issuer: gw.Issuer(),
		Bank:   gw.Bank(),
		Type:   gw.CardType(),
	}
	outcome := o.classifier.Validate(ports.ClassifyRequest{
		Bank:       card.Bank,
		Issuer:     card.Issuer,
		CardNumber: number,
		MaxAmount:  o.cfg.MaxAmount,
		UserData:   block,
		Interop:    interop,
		ExpireOn:   expireOn,
	})
	if outcome == nil {
		o.log.Error().Uint64("card_number", number).Msg("classifier returned no outcome")
		return false
	}
	dur.CheckPoint("validate")

	return o.dispatcher.Dispatch(ctx, card, outcome, dur)
}

// guard runs fn and converts a panic into a failed result.
func (o *Orchestrator) guard(fn func() bool) (ok bool) {
	defer func() {
		if v := recover(); v != nil {
			o.log.Error().Err(apperror.ErrTransactionPanic(v)).Msg("recovered from panic")
			ok = false
		}
	}()
	return fn()
}

// sleep waits for d or until ctx is done.
func sleep(ctx context.Context, d time.Duration) {
	if d <= 0 {
		return
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
	case <-ctx.Done():
	}
}
