package domain

import (
	"time"

	"github.com/google/uuid"
)

// LedgerStatus is the outcome column of a ledger record.
type LedgerStatus string

const (
	LedgerStatusSuccess LedgerStatus = "S"
	LedgerStatusFailure LedgerStatus = "F"
)

// DescriptionSuccess is the description written on successful records.
const DescriptionSuccess = "S"

// Direction is the boarding direction of a ledger record.
type Direction string

const (
	DirectionTapIn  Direction = "TAP_IN"
	DirectionTapOut Direction = "TAP_OUT"
)

// DirectionOf maps the tap-in flag to a Direction.
func DirectionOf(tapIn bool) Direction {
	if tapIn {
		return DirectionTapIn
	}
	return DirectionTapOut
}

// LedgerRecord is one immutable row per transaction attempt.
type LedgerRecord struct {
	ID               uuid.UUID        `json:"id"`
	Direction        Direction        `json:"direction"`
	Deduct           bool             `json:"deduct"`
	IntegratorID     int              `json:"integrator_id"`
	MinimumBalance   uint32           `json:"minimum_balance"`
	BalanceBefore    int64            `json:"balance_before"`
	BalanceAfter     int64            `json:"balance_after"`
	NormalFare       uint32           `json:"normal_fare"`
	Fare             uint32           `json:"fare"`
	ProcessingTimeMs int64            `json:"processing_time_ms"`
	MID              string           `json:"mid"`
	TID              string           `json:"tid"`
	Transcode        string           `json:"transcode"`
	Status           LedgerStatus     `json:"status"`
	Description      string           `json:"description"`
	TapIn            TerminalIdentity `json:"tap_in"`
	Origin           TerminalIdentity `json:"origin"`
	Card             CardSnapshot     `json:"card"`
	TransactionAt    time.Time        `json:"transaction_at"`
	StoredAt         time.Time        `json:"stored_at"`
}

// IsTapIn reports whether the record is a boarding event.
func (r *LedgerRecord) IsTapIn() bool {
	return r.Direction == DirectionTapIn
}

// Succeeded reports whether the record describes a completed transaction.
func (r *LedgerRecord) Succeeded() bool {
	return r.Status == LedgerStatusSuccess
}
