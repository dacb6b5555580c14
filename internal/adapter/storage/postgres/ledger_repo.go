// Package postgres stores the transaction ledger in PostgreSQL.
package postgres

import (
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"

	"fare-terminal/internal/core/domain"
)

//go:embed schema.sql
var schema string

// LedgerRepo implements ports.LedgerStore and ports.LedgerReader.
type LedgerRepo struct {
	pool Pool
}

// NewLedgerRepo creates a PostgreSQL-backed ledger.
func NewLedgerRepo(pool Pool) *LedgerRepo {
	return &LedgerRepo{pool: pool}
}

// Migrate creates the ledger table when it does not exist yet.
func (r *LedgerRepo) Migrate(ctx context.Context) error {
	if _, err := r.pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("applying ledger schema: %w", err)
	}
	return nil
}

// InsertLog appends one ledger record.
func (r *LedgerRepo) InsertLog(ctx context.Context, rec *domain.LedgerRecord) error {
	if rec == nil {
		return errors.New("ledger record is required")
	}
	tapIn, origin, card, err := encodeSnapshots(rec)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO transaction_log (
			id, direction, deduct, integrator_id, minimum_balance,
			balance_before, balance_after, normal_fare, fare, processing_time_ms,
			mid, tid, transcode, status, description,
			tap_in, origin, card, transaction_at, stored_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20)`

	_, err = r.pool.Exec(ctx, query,
		rec.ID, string(rec.Direction), rec.Deduct, rec.IntegratorID, rec.MinimumBalance,
		rec.BalanceBefore, rec.BalanceAfter, rec.NormalFare, rec.Fare, rec.ProcessingTimeMs,
		rec.MID, rec.TID, rec.Transcode, string(rec.Status), rec.Description,
		tapIn, origin, card, rec.TransactionAt, rec.StoredAt,
	)
	if err != nil {
		return fmt.Errorf("inserting ledger record: %w", err)
	}
	return nil
}

// ListRecent returns up to limit records, newest first.
func (r *LedgerRepo) ListRecent(ctx context.Context, limit int) ([]domain.LedgerRecord, error) {
	query := `
		SELECT id, direction, deduct, integrator_id, minimum_balance,
			balance_before, balance_after, normal_fare, fare, processing_time_ms,
			mid, tid, transcode, status, description,
			tap_in, origin, card, transaction_at, stored_at
		FROM transaction_log
		ORDER BY stored_at DESC, id DESC
		LIMIT $1`

	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("listing ledger records: %w", err)
	}
	defer rows.Close()

	var records []domain.LedgerRecord
	for rows.Next() {
		var (
			rec                 domain.LedgerRecord
			direction, status   string
			tapIn, origin, card []byte
		)
		if err := rows.Scan(
			&rec.ID, &direction, &rec.Deduct, &rec.IntegratorID, &rec.MinimumBalance,
			&rec.BalanceBefore, &rec.BalanceAfter, &rec.NormalFare, &rec.Fare, &rec.ProcessingTimeMs,
			&rec.MID, &rec.TID, &rec.Transcode, &status, &rec.Description,
			&tapIn, &origin, &card, &rec.TransactionAt, &rec.StoredAt,
		); err != nil {
			return nil, fmt.Errorf("scanning ledger record: %w", err)
		}
		rec.Direction = domain.Direction(direction)
		rec.Status = domain.LedgerStatus(status)
		if err := decodeSnapshots(&rec, tapIn, origin, card); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating ledger records: %w", err)
	}
	return records, nil
}

func encodeSnapshots(rec *domain.LedgerRecord) (tapIn, origin, card []byte, err error) {
	if tapIn, err = json.Marshal(rec.TapIn); err != nil {
		return nil, nil, nil, fmt.Errorf("encoding tap-in terminal: %w", err)
	}
	if origin, err = json.Marshal(rec.Origin); err != nil {
		return nil, nil, nil, fmt.Errorf("encoding origin terminal: %w", err)
	}
	if card, err = json.Marshal(rec.Card); err != nil {
		return nil, nil, nil, fmt.Errorf("encoding card snapshot: %w", err)
	}
	return tapIn, origin, card, nil
}

func decodeSnapshots(rec *domain.LedgerRecord, tapIn, origin, card []byte) error {
	if err := json.Unmarshal(tapIn, &rec.TapIn); err != nil {
		return fmt.Errorf("decoding tap-in terminal: %w", err)
	}
	if err := json.Unmarshal(origin, &rec.Origin); err != nil {
		return fmt.Errorf("decoding origin terminal: %w", err)
	}
	if err := json.Unmarshal(card, &rec.Card); err != nil {
		return fmt.Errorf("decoding card snapshot: %w", err)
	}
	return nil
}
