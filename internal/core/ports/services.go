package ports

//go:generate mockgen -destination=mocks/mock_services.go -package=mocks fare-terminal/internal/core/ports StatusService,HealthChecker

import (
	"context"

	"fare-terminal/internal/core/domain"
)

// TerminalStatus is the orchestrator state exposed to operators.
type TerminalStatus struct {
	Running  bool
	Degraded bool
	Cycle    string
	SN       uint32
}

// StatusService answers read-only operator queries.
type StatusService interface {
	Status(ctx context.Context) TerminalStatus
	Counters(ctx context.Context) (*domain.CounterSnapshot, error)
	RecentTransactions(ctx context.Context, limit int) ([]domain.LedgerRecord, error)
}
