package domain

// Fare types reported by FareRules.FareType.
const (
	FareTypeRegular = "regular"
	FareTypeEconomy = "economy"
)

// FareRules is supplied by the fare classifier and is never mutated by the terminal.
type FareRules interface {
	NormalFare() uint32
	// MinimumBalance reports the minimum card balance for a tap-in; ok is false when
	// no calculated fare applies.
	MinimumBalance() (amount uint32, ok bool)
	FareType() string
	FinalFare(freeService, okoTrip bool, subsidyAccumulation uint32) uint32
}

// FareFor computes the final fare of rules for the given card data.
func FareFor(rules FareRules, data CardUserData) uint32 {
	return rules.FinalFare(data.FreeService, data.OKOTrip, data.SubsidyAccumulation)
}

// FlatFare is a FareRules value with a fixed final fare.
type FlatFare struct {
	Normal  uint32
	Final   uint32
	Minimum uint32
	Type    string
	// Calculated marks that a fare table entry matched, which enables the minimum balance rule.
	Calculated bool
}

func (f FlatFare) NormalFare() uint32 { return f.Normal }

func (f FlatFare) MinimumBalance() (uint32, bool) { return f.Minimum, f.Calculated }

func (f FlatFare) FareType() string {
	if f.Type == "" {
		return FareTypeRegular
	}
	return f.Type
}

// FinalFare is zero for free-service cards and the flat fare otherwise.
func (f FlatFare) FinalFare(freeService, _ bool, _ uint32) uint32 {
	if freeService {
		return 0
	}
	return f.Final
}
