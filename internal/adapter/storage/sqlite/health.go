package sqlite

import "context"

// HealthCheck implements ports.HealthChecker for the SQLite ledger.
type HealthCheck struct {
	store *Store
}

// NewHealthCheck creates a SQLite health checker.
func NewHealthCheck(store *Store) *HealthCheck {
	return &HealthCheck{store: store}
}

// Ping checks that the ledger file is still usable.
func (h *HealthCheck) Ping(ctx context.Context) error {
	return h.store.db.PingContext(ctx)
}

// Name returns the dependency name.
func (h *HealthCheck) Name() string {
	return "sqlite"
}
