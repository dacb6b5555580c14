package domain

import (
	"encoding/hex"
	"strings"
	"time"
)

// UserBlockSize is the size of the on-card user data record.
const UserBlockSize = 64

// UserBlock is the raw on-card user data record.
type UserBlock [UserBlockSize]byte

// Hex returns the block as upper-case hex, the form stored in the ledger card snapshot.
func (b UserBlock) Hex() string {
	return strings.ToUpper(hex.EncodeToString(b[:]))
}

// CardType identifies the payment network of a stored-value card as reported by the reader.
type CardType uint8

const (
	CardTypeUnknown CardType = iota
	CardTypeMandiri
	CardTypeBRI
	CardTypeBNI
	CardTypeBCA
	CardTypeDKI
)

// String returns the network name.
func (t CardType) String() string {
	switch t {
	case CardTypeMandiri:
		return "MANDIRI"
	case CardTypeBRI:
		return "BRI"
	case CardTypeBNI:
		return "BNI"
	case CardTypeBCA:
		return "BCA"
	case CardTypeDKI:
		return "DKI"
	default:
		return "UNKNOWN"
	}
}

// CardOpStatus is the result code of the last value-transfer operation on the reader.
type CardOpStatus int

const (
	CardOpOK                CardOpStatus = 0
	CardOpFailed            CardOpStatus = 1
	CardOpInsufficientValue CardOpStatus = 2
	CardOpLostContact       CardOpStatus = 3
)

// CardIdentity is read from hardware once per transaction and never mutated afterwards.
type CardIdentity struct {
	Number uint64   `json:"card_number"`
	Issuer string   `json:"issuer"`
	Bank   string   `json:"bank"`
	Type   CardType `json:"card_type"`
}

// Transportation identifies the transport mode of a terminal.
type Transportation uint8

const (
	TransportationUnknown Transportation = iota
	TransportationBRT
	TransportationMicroTrans
	TransportationFeeder
)

// ParseTransportation maps a configured transport name (brt, microtrans, feeder).
func ParseTransportation(s string) Transportation {
	switch strings.ToLower(s) {
	case "brt":
		return TransportationBRT
	case "microtrans":
		return TransportationMicroTrans
	case "feeder":
		return TransportationFeeder
	default:
		return TransportationUnknown
	}
}

// TerminalIdentity describes where a tap happened.
type TerminalIdentity struct {
	FletCode       string         `json:"flet_code"`
	TerminalID     string         `json:"terminal_id"`
	Transportation Transportation `json:"transportation"`
	TransactionAt  time.Time      `json:"transaction_at"`
}

// WithTime returns a copy of the identity stamped with t.
func (i TerminalIdentity) WithTime(t time.Time) TerminalIdentity {
	i.TransactionAt = t
	return i
}

// CardUserData is the decoded view of the user block read at the start of a transaction.
type CardUserData struct {
	Raw                 UserBlock
	FreeService         bool
	SubsidyAccumulation uint32
	FreeServiceExpiry   time.Time
	OKOTrip             bool
	// Origin is the terminal recorded on the card by its previous tap.
	Origin TerminalIdentity
}

// Tariff returns the tariff presentation for this card.
func (d CardUserData) Tariff() TariffType {
	switch {
	case d.OKOTrip:
		return TariffJakLingko
	case d.FreeService:
		return TariffFree
	default:
		return TariffRegular
	}
}

// CardSnapshot is the card state stored alongside a ledger record.
type CardSnapshot struct {
	CardIdentity
	UserData    string `json:"user_data"`
	FreeService bool   `json:"free_service"`
	OKOTrip     bool   `json:"oko_trip"`
	Subsidy     uint32 `json:"subsidy_accumulation"`
}

// NewCardSnapshot combines identity and decoded user data.
func NewCardSnapshot(id CardIdentity, data CardUserData) CardSnapshot {
	return CardSnapshot{
		CardIdentity: id,
		UserData:     data.Raw.Hex(),
		FreeService:  data.FreeService,
		OKOTrip:      data.OKOTrip,
		Subsidy:      data.SubsidyAccumulation,
	}
}
