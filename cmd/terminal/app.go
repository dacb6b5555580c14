package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"fare-terminal/config"
	"fare-terminal/internal/adapter/display"
	httpHandler "fare-terminal/internal/adapter/http/handler"
	"fare-terminal/internal/adapter/simulator"
	pgStorage "fare-terminal/internal/adapter/storage/postgres"
	redisStorage "fare-terminal/internal/adapter/storage/redis"
	sqliteStorage "fare-terminal/internal/adapter/storage/sqlite"
	"fare-terminal/internal/core/domain"
	"fare-terminal/internal/core/ports"
	"fare-terminal/internal/counter"
	"fare-terminal/internal/service"
	"fare-terminal/pkg/logger"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

// ledger is what the terminal needs from a ledger backend.
type ledger interface {
	ports.LedgerStore
	ports.LedgerReader
}

// App is the wired terminal: orchestrator, ledger, optional Redis mirror and status API.
type App struct {
	cfg *config.Config
	log zerolog.Logger

	gateway      *simulator.Gateway
	display      *display.Console
	ledger       ledger
	orchestrator *service.Orchestrator
	handler      http.Handler
	closers      []func()
}

// NewApp connects every dependency named by cfg. history may be nil.
func NewApp(ctx context.Context, cfg *config.Config, history *logger.History, log zerolog.Logger) (*App, error) {
	a := &App{cfg: cfg, log: log}
	var checkers []ports.HealthChecker

	store, checker, err := a.openLedger(ctx)
	if err != nil {
		a.Close()
		return nil, err
	}
	a.ledger = store
	checkers = append(checkers, checker)

	var publisher ports.CounterPublisher
	if cfg.Redis.Enabled {
		rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
		if err != nil {
			a.Close()
			return nil, fmt.Errorf("connecting redis: %w", err)
		}
		a.closers = append(a.closers, func() { _ = rdb.Close() })
		publisher = redisStorage.NewCounterPublisher(rdb)
		checkers = append(checkers, redisStorage.NewHealthCheck(rdb))
	}

	identity := domain.TerminalIdentity{
		FletCode:       cfg.Terminal.FletCode,
		TerminalID:     cfg.Terminal.TerminalID,
		Transportation: domain.ParseTransportation(cfg.Terminal.Transport),
	}
	a.gateway = simulator.NewGateway(simulator.GatewayConfig{
		MID:           cfg.Terminal.MerchantID,
		TID:           cfg.Terminal.TerminalID,
		TapInterval:   cfg.Reader.TapInterval,
		StartBalance:  cfg.Reader.StartBalance,
		WriteFailRate: cfg.Reader.WriteFailRate,
	})
	classifier := simulator.NewClassifier(simulator.ClassifierConfig{
		Fare: domain.FlatFare{
			Normal:     cfg.Fare.Normal,
			Final:      cfg.Fare.Final,
			Minimum:    cfg.Fare.MinimumBalance,
			Type:       cfg.Fare.Type,
			Calculated: true,
		},
		Identity:     identity,
		BlockWindow:  cfg.Fare.BlockWindow,
		JourneyLimit: cfg.Fare.JourneyLimit,
	})
	a.display = display.NewConsole(log)

	dispatcher := service.NewDispatcher(
		a.gateway,
		classifier,
		a.display,
		a.ledger,
		publisher,
		counter.NewKeeper(cfg.Counter.BasePath, log),
		service.DispatcherConfig{
			IntegratorID:  cfg.Terminal.IntegratorID,
			InsertTimeout: cfg.Ledger.InsertTimeout,
		},
		log,
	)

	var flusher service.Flusher
	if history != nil {
		flusher = history
	}
	a.orchestrator = service.NewOrchestrator(dispatcher, flusher, service.LoopConfig{
		PollInterval:    cfg.Loop.PollInterval,
		SuccessDebounce: cfg.Loop.SuccessDebounce,
		FailureDebounce: cfg.Loop.FailureDebounce,
		IdleInterval:    cfg.Loop.IdleInterval,
		MaxAmount:       cfg.Terminal.MaxAmount,
	}, log)

	a.handler = httpHandler.SetupRouter(httpHandler.RouterDeps{
		StatusSvc:      service.NewStatusService(a.orchestrator, a.ledger),
		HealthCheckers: checkers,
		Logger:         log,
	})
	return a, nil
}

func (a *App) openLedger(ctx context.Context) (ledger, ports.HealthChecker, error) {
	switch a.cfg.Ledger.Driver {
	case "postgres":
		pool, err := pgStorage.NewPool(ctx, a.cfg.Database, a.log)
		if err != nil {
			return nil, nil, fmt.Errorf("connecting postgres: %w", err)
		}
		a.closers = append(a.closers, pool.Close)
		repo := pgStorage.NewLedgerRepo(pool)
		if err := repo.Migrate(ctx); err != nil {
			return nil, nil, err
		}
		return repo, pgStorage.NewHealthCheck(pool), nil
	default:
		store, err := sqliteStorage.Open(a.cfg.Ledger.SQLitePath, a.log)
		if err != nil {
			return nil, nil, err
		}
		a.closers = append(a.closers, func() { _ = store.Close() })
		return store, sqliteStorage.NewHealthCheck(store), nil
	}
}

// Handler returns the status API.
func (a *App) Handler() http.Handler {
	return a.handler
}

// Run starts the orchestrator and the status API and blocks until ctx ends.
// The orchestrator is always stopped before Run returns.
func (a *App) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := a.orchestrator.Begin(nil); err != nil {
			return err
		}
		<-ctx.Done()
		a.orchestrator.Stop()
		a.log.Info().Msg("orchestrator stopped")
		return nil
	})

	if a.cfg.Status.Enabled {
		srv := &http.Server{
			Addr:              a.cfg.Status.Addr(),
			Handler:           a.handler,
			ReadHeaderTimeout: 5 * time.Second,
		}
		g.Go(func() error {
			a.log.Info().Str("addr", srv.Addr).Msg("status API listening")
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("status API: %w", err)
			}
			return nil
		})
		g.Go(func() error {
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		})
	}

	return g.Wait()
}

// Close releases connections in reverse order of opening.
func (a *App) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
	a.closers = nil
}
