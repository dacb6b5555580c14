package dto

import (
	"time"

	"fare-terminal/internal/core/domain"
	"fare-terminal/internal/core/ports"
)

// TransactionQuery binds GET /api/v1/transactions query parameters.
type TransactionQuery struct {
	Limit int `form:"limit" binding:"omitempty,min=1,max=100"`
}

// IssuerURI binds the :issuer path segment.
type IssuerURI struct {
	Issuer string `uri:"issuer" binding:"required,max=32,safe_id"`
}

// StatusResponse is the body of GET /api/v1/status.
type StatusResponse struct {
	Running  bool   `json:"running"`
	Degraded bool   `json:"degraded"`
	Cycle    string `json:"cycle,omitempty"`
	SN       uint32 `json:"sn"`
}

// NewStatusResponse converts a terminal status.
func NewStatusResponse(s ports.TerminalStatus) StatusResponse {
	return StatusResponse{Running: s.Running, Degraded: s.Degraded, Cycle: s.Cycle, SN: s.SN}
}

// IssuerCountersResponse is one issuer's counters.
type IssuerCountersResponse struct {
	TapInRegular     uint32 `json:"tap_in_regular"`
	TapInEconomy     uint32 `json:"tap_in_economy"`
	TapInFreeService uint32 `json:"tap_in_free_service"`
	TapOut           uint32 `json:"tap_out"`
	Sent             uint32 `json:"sent"`
	Pending          uint32 `json:"pending"`
	Amount           uint64 `json:"amount"`
}

// NewIssuerCountersResponse converts domain counters.
func NewIssuerCountersResponse(c domain.IssuerCounters) IssuerCountersResponse {
	return IssuerCountersResponse(c)
}

// CountersResponse is the body of GET /api/v1/counters.
type CountersResponse struct {
	Cycle   string                            `json:"cycle"`
	SN      uint32                            `json:"sn"`
	Issuers map[string]IssuerCountersResponse `json:"issuers"`
	Total   IssuerCountersResponse            `json:"total"`
}

// NewCountersResponse converts a counter snapshot.
func NewCountersResponse(s *domain.CounterSnapshot) CountersResponse {
	resp := CountersResponse{
		Cycle:   s.Cycle.Format("2006-01-02"),
		SN:      s.SN,
		Issuers: make(map[string]IssuerCountersResponse, len(s.Issuers)),
		Total:   NewIssuerCountersResponse(s.Total),
	}
	for name, c := range s.Issuers {
		resp.Issuers[name] = NewIssuerCountersResponse(c)
	}
	return resp
}

// TransactionResponse is one ledger record.
type TransactionResponse struct {
	ID               string `json:"id"`
	Direction        string `json:"direction"`
	TapIn            bool   `json:"tap_in"`
	Deduct           bool   `json:"deduct"`
	CardNumber       uint64 `json:"card_number"`
	Issuer           string `json:"issuer"`
	BalanceBefore    int64  `json:"balance_before"`
	BalanceAfter     int64  `json:"balance_after"`
	Fare             uint32 `json:"fare"`
	Status           string `json:"status"`
	Success          bool   `json:"success"`
	Description      string `json:"description"`
	Transcode        string `json:"transcode,omitempty"`
	ProcessingTimeMs int64  `json:"processing_time_ms"`
	TransactionAt    string `json:"transaction_at"`
}

// NewTransactionResponse converts a ledger record.
func NewTransactionResponse(r domain.LedgerRecord) TransactionResponse {
	return TransactionResponse{
		ID:               r.ID.String(),
		Direction:        string(r.Direction),
		TapIn:            r.IsTapIn(),
		Deduct:           r.Deduct,
		CardNumber:       r.Card.Number,
		Issuer:           r.Card.Issuer,
		BalanceBefore:    r.BalanceBefore,
		BalanceAfter:     r.BalanceAfter,
		Fare:             r.Fare,
		Status:           string(r.Status),
		Success:          r.Succeeded(),
		Description:      r.Description,
		Transcode:        r.Transcode,
		ProcessingTimeMs: r.ProcessingTimeMs,
		TransactionAt:    r.TransactionAt.UTC().Format(time.RFC3339),
	}
}

// TransactionListResponse wraps a page of ledger records.
type TransactionListResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	Count        int                   `json:"count"`
}
