package ports

//go:generate mockgen -destination=mocks/mock_repositories.go -package=mocks fare-terminal/internal/core/ports LedgerStore,LedgerReader,CounterPublisher

import (
	"context"

	"fare-terminal/internal/core/domain"
)

// LedgerStore is the transactional append-only transaction log.
type LedgerStore interface {
	InsertLog(ctx context.Context, record *domain.LedgerRecord) error
}

// LedgerReader lists recent ledger records for the status API.
type LedgerReader interface {
	ListRecent(ctx context.Context, limit int) ([]domain.LedgerRecord, error)
}

// CounterPublisher mirrors counter snapshots to a back-office store. Best effort.
type CounterPublisher interface {
	Publish(ctx context.Context, tid string, snapshot domain.CounterSnapshot) error
}
