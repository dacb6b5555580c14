package domain

import "time"

// IssuerCounters is a point-in-time copy of one issuer's counters.
type IssuerCounters struct {
	TapInRegular     uint32 `json:"tap_in_regular"`
	TapInEconomy     uint32 `json:"tap_in_economy"`
	TapInFreeService uint32 `json:"tap_in_free_service"`
	TapOut           uint32 `json:"tap_out"`
	Sent             uint32 `json:"sent"`
	Pending          uint32 `json:"pending"`
	Amount           uint64 `json:"amount"`
}

// Add returns the field-wise sum of c and o.
func (c IssuerCounters) Add(o IssuerCounters) IssuerCounters {
	return IssuerCounters{
		TapInRegular:     c.TapInRegular + o.TapInRegular,
		TapInEconomy:     c.TapInEconomy + o.TapInEconomy,
		TapInFreeService: c.TapInFreeService + o.TapInFreeService,
		TapOut:           c.TapOut + o.TapOut,
		Sent:             c.Sent + o.Sent,
		Pending:          c.Pending + o.Pending,
		Amount:           c.Amount + o.Amount,
	}
}

// TotalTapIn sums all tap-in categories.
func (c IssuerCounters) TotalTapIn() uint32 {
	return c.TapInRegular + c.TapInEconomy + c.TapInFreeService
}

// CounterSnapshot is a copy of every counter of one cycle.
type CounterSnapshot struct {
	Cycle   time.Time                 `json:"cycle"`
	SN      uint32                    `json:"sn"`
	Issuers map[string]IssuerCounters `json:"issuers"`
	Total   IssuerCounters            `json:"total"`
}
