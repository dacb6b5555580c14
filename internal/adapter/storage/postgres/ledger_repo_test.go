package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"fare-terminal/internal/core/domain"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRecord() *domain.LedgerRecord {
	now := time.Now().UTC().Truncate(time.Microsecond)
	return &domain.LedgerRecord{
		ID:               uuid.New(),
		Direction:        domain.DirectionTapOut,
		Deduct:           true,
		IntegratorID:     7,
		MinimumBalance:   3500,
		BalanceBefore:    10000,
		BalanceAfter:     6500,
		NormalFare:       3500,
		Fare:             3500,
		ProcessingTimeMs: 380,
		MID:              "MID01",
		TID:              "TID01",
		Transcode:        "TRX0001",
		Status:           domain.LedgerStatusSuccess,
		Description:      domain.DescriptionSuccess,
		TapIn: domain.TerminalIdentity{
			FletCode: "BRT-01", TerminalID: "T001", Transportation: domain.TransportationBRT, TransactionAt: now,
		},
		Origin: domain.TerminalIdentity{
			FletCode: "BRT-02", TerminalID: "T002", Transportation: domain.TransportationBRT, TransactionAt: now.Add(-time.Hour),
		},
		Card: domain.CardSnapshot{
			CardIdentity: domain.CardIdentity{Number: 6032984012345678, Issuer: "emoney", Bank: "MANDIRI", Type: domain.CardTypeMandiri},
			UserData:     "00FF",
		},
		TransactionAt: now,
		StoredAt:      now,
	}
}

func ledgerColumns() []string {
	return []string{"id", "direction", "deduct", "integrator_id", "minimum_balance",
		"balance_before", "balance_after", "normal_fare", "fare", "processing_time_ms",
		"mid", "tid", "transcode", "status", "description",
		"tap_in", "origin", "card", "transaction_at", "stored_at"}
}

func mustJSON(t *testing.T, v any) []byte {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return b
}

func ledgerRow(t *testing.T, rows *pgxmock.Rows, r *domain.LedgerRecord) *pgxmock.Rows {
	return rows.AddRow(
		r.ID, string(r.Direction), r.Deduct, r.IntegratorID, r.MinimumBalance,
		r.BalanceBefore, r.BalanceAfter, r.NormalFare, r.Fare, r.ProcessingTimeMs,
		r.MID, r.TID, r.Transcode, string(r.Status), r.Description,
		mustJSON(t, r.TapIn), mustJSON(t, r.Origin), mustJSON(t, r.Card), r.TransactionAt, r.StoredAt,
	)
}

func TestLedgerRepo_InsertLog(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewLedgerRepo(mock)
	rec := newTestRecord()

	mock.ExpectExec("INSERT INTO transaction_log").
		WithArgs(
			rec.ID, string(rec.Direction), rec.Deduct, rec.IntegratorID, rec.MinimumBalance,
			rec.BalanceBefore, rec.BalanceAfter, rec.NormalFare, rec.Fare, rec.ProcessingTimeMs,
			rec.MID, rec.TID, rec.Transcode, string(rec.Status), rec.Description,
			mustJSON(t, rec.TapIn), mustJSON(t, rec.Origin), mustJSON(t, rec.Card), rec.TransactionAt, rec.StoredAt,
		).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err = repo.InsertLog(context.Background(), rec)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLedgerRepo_InsertLog_Error(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewLedgerRepo(mock)

	mock.ExpectExec("INSERT INTO transaction_log").
		WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(),
			pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(),
			pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(),
			pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnError(errors.New("connection reset"))

	err = repo.InsertLog(context.Background(), newTestRecord())
	assert.ErrorContains(t, err, "connection reset")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLedgerRepo_InsertLog_NilRecord(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	err = NewLedgerRepo(mock).InsertLog(context.Background(), nil)
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLedgerRepo_ListRecent(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewLedgerRepo(mock)
	first := newTestRecord()
	second := newTestRecord()
	second.Direction = domain.DirectionTapIn
	second.Status = domain.LedgerStatusFailure
	second.Description = "F6"

	rows := pgxmock.NewRows(ledgerColumns())
	ledgerRow(t, rows, first)
	ledgerRow(t, rows, second)
	mock.ExpectQuery("SELECT (.+) FROM transaction_log").
		WithArgs(10).
		WillReturnRows(rows)

	records, err := repo.ListRecent(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, first.ID, records[0].ID)
	assert.Equal(t, domain.DirectionTapOut, records[0].Direction)
	assert.Equal(t, first.Origin.TerminalID, records[0].Origin.TerminalID)
	assert.Equal(t, first.Card.Number, records[0].Card.Number)
	assert.Equal(t, uint32(3500), records[0].Fare)

	assert.Equal(t, domain.DirectionTapIn, records[1].Direction)
	assert.Equal(t, domain.LedgerStatusFailure, records[1].Status)
	assert.Equal(t, "F6", records[1].Description)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLedgerRepo_ListRecent_BadSnapshot(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	rec := newTestRecord()
	rows := pgxmock.NewRows(ledgerColumns()).AddRow(
		rec.ID, string(rec.Direction), rec.Deduct, rec.IntegratorID, rec.MinimumBalance,
		rec.BalanceBefore, rec.BalanceAfter, rec.NormalFare, rec.Fare, rec.ProcessingTimeMs,
		rec.MID, rec.TID, rec.Transcode, string(rec.Status), rec.Description,
		[]byte("{"), mustJSON(t, rec.Origin), mustJSON(t, rec.Card), rec.TransactionAt, rec.StoredAt,
	)
	mock.ExpectQuery("SELECT (.+) FROM transaction_log").WithArgs(5).WillReturnRows(rows)

	_, err = NewLedgerRepo(mock).ListRecent(context.Background(), 5)
	assert.ErrorContains(t, err, "decoding tap-in terminal")
}

func TestLedgerRepo_ListRecent_QueryError(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery("SELECT (.+) FROM transaction_log").
		WithArgs(5).
		WillReturnError(errors.New("relation does not exist"))

	_, err = NewLedgerRepo(mock).ListRecent(context.Background(), 5)
	assert.ErrorContains(t, err, "listing ledger records")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLedgerRepo_Migrate(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS transaction_log").
		WillReturnResult(pgxmock.NewResult("CREATE TABLE", 0))

	assert.NoError(t, NewLedgerRepo(mock).Migrate(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHealthCheck(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	hc := NewHealthCheck(mock)
	assert.Equal(t, "postgresql", hc.Name())

	mock.ExpectExec("SELECT 1").WillReturnResult(pgxmock.NewResult("SELECT", 1))
	assert.NoError(t, hc.Ping(context.Background()))

	mock.ExpectExec("SELECT 1").WillReturnError(errors.New("down"))
	assert.Error(t, hc.Ping(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}
