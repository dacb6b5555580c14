package domain

// TransactionOutcome is the classified disposition of a presented card.
// The set of variants is closed: every implementation lives in this file.
type TransactionOutcome interface {
	Visit(v OutcomeVisitor) bool
	Kind() OutcomeKind
}

// OutcomeVisitor handles every outcome variant. A new variant adds a method here,
// so every visitor stops compiling until it handles the new case.
type OutcomeVisitor interface {
	Penalty(o Penalty) bool
	TapInWithDeduct(o TapInWithDeduct) bool
	TapOutWithDeduct(o TapOutWithDeduct) bool
	TapInWithoutDeduct(o TapInWithoutDeduct) bool
	TapOutWithoutDeduct(o TapOutWithoutDeduct) bool
	FreeServiceExpired(o FreeServiceExpired) bool
	Blocked(o Blocked) bool
	Invalid(o Invalid) bool
	FareNotFound(o FareNotFound) bool
	InsufficientBalance(o InsufficientBalance) bool
}

// OutcomeKind names a variant for logging.
type OutcomeKind string

const (
	OutcomePenalty             OutcomeKind = "PENALTY"
	OutcomeTapInWithDeduct     OutcomeKind = "TAP_IN_WITH_DEDUCT"
	OutcomeTapOutWithDeduct    OutcomeKind = "TAP_OUT_WITH_DEDUCT"
	OutcomeTapInWithoutDeduct  OutcomeKind = "TAP_IN_WITHOUT_DEDUCT"
	OutcomeTapOutWithoutDeduct OutcomeKind = "TAP_OUT_WITHOUT_DEDUCT"
	OutcomeFreeServiceExpired  OutcomeKind = "FREE_SERVICE_EXPIRED"
	OutcomeBlocked             OutcomeKind = "BLOCKED"
	OutcomeInvalid             OutcomeKind = "INVALID"
	OutcomeFareNotFound        OutcomeKind = "FARE_NOT_FOUND"
	OutcomeInsufficientBalance OutcomeKind = "INSUFFICIENT_BALANCE"
)

// Classified is the payload shared by outcomes that decoded the card.
type Classified struct {
	Data    CardUserData
	ToWrite UserBlock
	Rules   FareRules
}

// Payload returns the decoded card data. Rules is never nil on an outcome
// produced by a classifier; the dispatcher rejects one that breaks this.
func (c Classified) Payload() Classified { return c }

// Penalty resets an unfinished journey: charge, then record a reset tap-out and a fresh tap-in.
type Penalty struct{ Classified }

type TapInWithDeduct struct{ Classified }

type TapOutWithDeduct struct{ Classified }

type TapInWithoutDeduct struct{ Classified }

type TapOutWithoutDeduct struct{ Classified }

type FreeServiceExpired struct{ Classified }

// Blocked is a repeated tap inside the blocking window.
type Blocked struct{ Classified }

// Invalid means the user block could not be decoded.
type Invalid struct{ Raw UserBlock }

type FareNotFound struct{ Raw UserBlock }

// InsufficientBalance is raised by the classifier before any value transfer.
type InsufficientBalance struct{ Raw UserBlock }

func (o Penalty) Visit(v OutcomeVisitor) bool             { return v.Penalty(o) }
func (o TapInWithDeduct) Visit(v OutcomeVisitor) bool     { return v.TapInWithDeduct(o) }
func (o TapOutWithDeduct) Visit(v OutcomeVisitor) bool    { return v.TapOutWithDeduct(o) }
func (o TapInWithoutDeduct) Visit(v OutcomeVisitor) bool  { return v.TapInWithoutDeduct(o) }
func (o TapOutWithoutDeduct) Visit(v OutcomeVisitor) bool { return v.TapOutWithoutDeduct(o) }
func (o FreeServiceExpired) Visit(v OutcomeVisitor) bool  { return v.FreeServiceExpired(o) }
func (o Blocked) Visit(v OutcomeVisitor) bool             { return v.Blocked(o) }
func (o Invalid) Visit(v OutcomeVisitor) bool             { return v.Invalid(o) }
func (o FareNotFound) Visit(v OutcomeVisitor) bool        { return v.FareNotFound(o) }
func (o InsufficientBalance) Visit(v OutcomeVisitor) bool { return v.InsufficientBalance(o) }

func (Penalty) Kind() OutcomeKind             { return OutcomePenalty }
func (TapInWithDeduct) Kind() OutcomeKind     { return OutcomeTapInWithDeduct }
func (TapOutWithDeduct) Kind() OutcomeKind    { return OutcomeTapOutWithDeduct }
func (TapInWithoutDeduct) Kind() OutcomeKind  { return OutcomeTapInWithoutDeduct }
func (TapOutWithoutDeduct) Kind() OutcomeKind { return OutcomeTapOutWithoutDeduct }
func (FreeServiceExpired) Kind() OutcomeKind  { return OutcomeFreeServiceExpired }
func (Blocked) Kind() OutcomeKind             { return OutcomeBlocked }
func (Invalid) Kind() OutcomeKind             { return OutcomeInvalid }
func (FareNotFound) Kind() OutcomeKind        { return OutcomeFareNotFound }
func (InsufficientBalance) Kind() OutcomeKind { return OutcomeInsufficientBalance }
