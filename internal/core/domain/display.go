package domain

import "time"

// TariffType selects the success message layout on the display.
type TariffType uint8

const (
	TariffRegular TariffType = iota
	TariffJakLingko
	TariffEconomical
	TariffFree
)

// Receipt is what the display shows after a successful tap.
type Receipt struct {
	Fare      uint32
	BaseFare  uint32
	Balance   int64
	Tariff    TariffType
	FreeUntil time.Time
}
