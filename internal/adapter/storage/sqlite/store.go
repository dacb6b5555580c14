// Package sqlite stores the transaction ledger in a local SQLite file.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"fare-terminal/internal/adapter/storage/sqlite/migrations"
	"fare-terminal/internal/core/domain"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	_ "modernc.org/sqlite"
)

// pragmas are applied by the driver on every new connection. synchronous stays
// FULL so a committed ledger row survives power loss under WAL.
const pragmas = "?_pragma=busy_timeout(5000)" +
	"&_pragma=journal_mode(WAL)" +
	"&_pragma=foreign_keys(ON)" +
	"&_pragma=synchronous(FULL)"

// Store implements ports.LedgerStore and ports.LedgerReader.
type Store struct {
	db *sql.DB
}

// Open opens (or creates) the ledger database at path and applies the schema.
func Open(path string, log zerolog.Logger) (*Store, error) {
	if path == "" {
		return nil, errors.New("sqlite path is required")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("creating ledger directory: %w", err)
	}

	db, err := sql.Open("sqlite", path+pragmas)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite ledger: %w", err)
	}
	// One writer at a time; the terminal never needs more.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("pinging sqlite ledger: %w", err)
	}
	if err := applyMigrations(db, migrations.FS); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrating sqlite ledger: %w", err)
	}

	log.Info().Str("path", path).Msg("SQLite ledger opened")
	return &Store{db: db}, nil
}

// Close closes the database handle.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// InsertLog appends one ledger record.
func (s *Store) InsertLog(ctx context.Context, r *domain.LedgerRecord) error {
	if r == nil {
		return errors.New("ledger record is required")
	}
	tapIn, origin, card, err := encodeSnapshots(r)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO transaction_log (
			id, direction, deduct, integrator_id, minimum_balance,
			balance_before, balance_after, normal_fare, fare, processing_time_ms,
			mid, tid, transcode, status, description,
			tap_in, origin, card, transaction_at, stored_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	_, err = s.db.ExecContext(ctx, query,
		r.ID.String(), string(r.Direction), r.Deduct, r.IntegratorID, r.MinimumBalance,
		r.BalanceBefore, r.BalanceAfter, r.NormalFare, r.Fare, r.ProcessingTimeMs,
		r.MID, r.TID, r.Transcode, string(r.Status), r.Description,
		tapIn, origin, card, r.TransactionAt.UnixMilli(), r.StoredAt.UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("inserting ledger record: %w", err)
	}
	return nil
}

// ListRecent returns up to limit records, newest first.
func (s *Store) ListRecent(ctx context.Context, limit int) ([]domain.LedgerRecord, error) {
	query := `
		SELECT id, direction, deduct, integrator_id, minimum_balance,
			balance_before, balance_after, normal_fare, fare, processing_time_ms,
			mid, tid, transcode, status, description,
			tap_in, origin, card, transaction_at, stored_at
		FROM transaction_log
		ORDER BY stored_at DESC, rowid DESC
		LIMIT ?`

	rows, err := s.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("listing ledger records: %w", err)
	}
	defer rows.Close()

	var records []domain.LedgerRecord
	for rows.Next() {
		var (
			r                     domain.LedgerRecord
			id, direction, status string
			tapIn, origin, card   string
			txAt, storedAt        int64
		)
		if err := rows.Scan(
			&id, &direction, &r.Deduct, &r.IntegratorID, &r.MinimumBalance,
			&r.BalanceBefore, &r.BalanceAfter, &r.NormalFare, &r.Fare, &r.ProcessingTimeMs,
			&r.MID, &r.TID, &r.Transcode, &status, &r.Description,
			&tapIn, &origin, &card, &txAt, &storedAt,
		); err != nil {
			return nil, fmt.Errorf("scanning ledger record: %w", err)
		}

		if r.ID, err = uuid.Parse(id); err != nil {
			return nil, fmt.Errorf("parsing ledger id %q: %w", id, err)
		}
		r.Direction = domain.Direction(direction)
		r.Status = domain.LedgerStatus(status)
		r.TransactionAt = time.UnixMilli(txAt)
		r.StoredAt = time.UnixMilli(storedAt)
		if err := decodeSnapshots(&r, []byte(tapIn), []byte(origin), []byte(card)); err != nil {
			return nil, err
		}
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating ledger records: %w", err)
	}
	return records, nil
}

func encodeSnapshots(r *domain.LedgerRecord) (tapIn, origin, card string, err error) {
	b, err := json.Marshal(r.TapIn)
	if err != nil {
		return "", "", "", fmt.Errorf("encoding tap-in terminal: %w", err)
	}
	tapIn = string(b)
	if b, err = json.Marshal(r.Origin); err != nil {
		return "", "", "", fmt.Errorf("encoding origin terminal: %w", err)
	}
	origin = string(b)
	if b, err = json.Marshal(r.Card); err != nil {
		return "", "", "", fmt.Errorf("encoding card snapshot: %w", err)
	}
	card = string(b)
	return tapIn, origin, card, nil
}

func decodeSnapshots(r *domain.LedgerRecord, tapIn, origin, card []byte) error {
	if err := json.Unmarshal(tapIn, &r.TapIn); err != nil {
		return fmt.Errorf("decoding tap-in terminal: %w", err)
	}
	if err := json.Unmarshal(origin, &r.Origin); err != nil {
		return fmt.Errorf("decoding origin terminal: %w", err)
	}
	if err := json.Unmarshal(card, &r.Card); err != nil {
		return fmt.Errorf("decoding card snapshot: %w", err)
	}
	return nil
}
