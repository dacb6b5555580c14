package service

import (
	"context"

	"fare-terminal/internal/core/domain"
	"fare-terminal/internal/core/ports"
	"fare-terminal/internal/counter"
	"fare-terminal/pkg/apperror"
)

// MaxRecentTransactions caps the page size of RecentTransactions.
const MaxRecentTransactions = 100

// terminalState is the part of the Orchestrator the status service reads.
type terminalState interface {
	IsRunning() bool
	Counters() *counter.Counter
}

// statusService implements ports.StatusService.
type statusService struct {
	terminal terminalState
	ledger   ports.LedgerReader
}

// NewStatusService creates a new status service. ledger may be nil.
func NewStatusService(terminal terminalState, ledger ports.LedgerReader) ports.StatusService {
	return &statusService{
		terminal: terminal,
		ledger:   ledger,
	}
}

// Status reports whether the worker runs and which cycle it counts into.
func (s *statusService) Status(_ context.Context) ports.TerminalStatus {
	st := ports.TerminalStatus{Running: s.terminal.IsRunning()}
	c := s.terminal.Counters()
	if c == nil {
		st.Degraded = true
		return st
	}
	st.Cycle = c.Cycle().String()
	st.SN = c.SN()
	return st
}

// Counters returns a snapshot of the live counter.
func (s *statusService) Counters(_ context.Context) (*domain.CounterSnapshot, error) {
	c := s.terminal.Counters()
	if c == nil {
		return nil, apperror.ErrCounterUnavailable()
	}
	snap := c.Snapshot()
	return &snap, nil
}

// RecentTransactions returns the newest ledger records first.
func (s *statusService) RecentTransactions(ctx context.Context, limit int) ([]domain.LedgerRecord, error) {
	if s.ledger == nil {
		return nil, apperror.ErrLedgerUnavailable()
	}
	if limit <= 0 || limit > MaxRecentTransactions {
		return nil, apperror.Validation("limit must be between 1 and 100")
	}

	records, err := s.ledger.ListRecent(ctx, limit)
	if err != nil {
		return nil, apperror.ErrDatabaseError(err)
	}
	return records, nil
}
