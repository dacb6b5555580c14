package domain

// ErrorClass is an issuer-independent failure class.
type ErrorClass int

const (
	ErrClassInsufficientBalance ErrorClass = iota
	ErrClassBalanceCheckException
	ErrClassWriteBlockException
	ErrClassTapBelowOneMinute
	ErrClassServiceExpired
	ErrClassDebitDeviceLostContact
)

func (c ErrorClass) String() string {
	switch c {
	case ErrClassInsufficientBalance:
		return "INSUFFICIENT_BALANCE"
	case ErrClassBalanceCheckException:
		return "BALANCE_CHECK_EXCEPTION"
	case ErrClassWriteBlockException:
		return "WRITE_BLOCK_EXCEPTION"
	case ErrClassTapBelowOneMinute:
		return "TAP_BELOW_ONE_MINUTE"
	case ErrClassServiceExpired:
		return "SERVICE_EXPIRED"
	case ErrClassDebitDeviceLostContact:
		return "DEBIT_DEVICE_LOST_CONTACT"
	default:
		return "UNKNOWN"
	}
}

// ErrorCode is the issuer-specific code written as a failed ledger record's description.
type ErrorCode string

const (
	MandiriD5InsufficientBalance   ErrorCode = "D5"
	MandiriD3BalanceCheckException ErrorCode = "D3"
	MandiriD9WriteBlockException   ErrorCode = "D9"
	MandiriD4TapBelowOneMinute     ErrorCode = "D4"

	BRIA3InsufficientBalance   ErrorCode = "A3"
	BRIAABalanceCheckException ErrorCode = "AA"
	BRIA7WriteBlockException   ErrorCode = "A7"
	BRIA2TapBelowOneMinute     ErrorCode = "A2"

	BNIB3InsufficientBalance   ErrorCode = "B3"
	BNIBABalanceCheckException ErrorCode = "BA"
	BNIB8WriteBlockException   ErrorCode = "B8"
	BNIB9TapBelowOneMinute     ErrorCode = "B9"

	BCAE5InsufficientBalance   ErrorCode = "E5"
	BCAE3BalanceCheckException ErrorCode = "E3"
	BCAE9WriteBlockException   ErrorCode = "E9"
	BCAE4TapBelowOneMinute     ErrorCode = "E4"

	DKIC6InsufficientBalance   ErrorCode = "C6"
	DKIC3BalanceCheckException ErrorCode = "C3"
	DKICBWriteBlockException   ErrorCode = "CB"
	DKIC9TapBelowOneMinute     ErrorCode = "C9"
	DKIC5FreeServiceExpired    ErrorCode = "C5"

	GeneralF6DebitDeviceLostContact ErrorCode = "F6"
)

func (c ErrorCode) String() string { return string(c) }

type errorKey struct {
	card  CardType
	class ErrorClass
}

// Mandiri is the fallback network, mirroring the counter lookup.
var errorCodes = map[errorKey]ErrorCode{
	{CardTypeMandiri, ErrClassInsufficientBalance}:   MandiriD5InsufficientBalance,
	{CardTypeMandiri, ErrClassBalanceCheckException}: MandiriD3BalanceCheckException,
	{CardTypeMandiri, ErrClassWriteBlockException}:   MandiriD9WriteBlockException,
	{CardTypeMandiri, ErrClassTapBelowOneMinute}:     MandiriD4TapBelowOneMinute,

	{CardTypeBRI, ErrClassInsufficientBalance}:   BRIA3InsufficientBalance,
	{CardTypeBRI, ErrClassBalanceCheckException}: BRIAABalanceCheckException,
	{CardTypeBRI, ErrClassWriteBlockException}:   BRIA7WriteBlockException,
	{CardTypeBRI, ErrClassTapBelowOneMinute}:     BRIA2TapBelowOneMinute,

	{CardTypeBNI, ErrClassInsufficientBalance}:   BNIB3InsufficientBalance,
	{CardTypeBNI, ErrClassBalanceCheckException}: BNIBABalanceCheckException,
	{CardTypeBNI, ErrClassWriteBlockException}:   BNIB8WriteBlockException,
	{CardTypeBNI, ErrClassTapBelowOneMinute}:     BNIB9TapBelowOneMinute,

	{CardTypeBCA, ErrClassInsufficientBalance}:   BCAE5InsufficientBalance,
	{CardTypeBCA, ErrClassBalanceCheckException}: BCAE3BalanceCheckException,
	{CardTypeBCA, ErrClassWriteBlockException}:   BCAE9WriteBlockException,
	{CardTypeBCA, ErrClassTapBelowOneMinute}:     BCAE4TapBelowOneMinute,

	{CardTypeDKI, ErrClassInsufficientBalance}:   DKIC6InsufficientBalance,
	{CardTypeDKI, ErrClassBalanceCheckException}: DKIC3BalanceCheckException,
	{CardTypeDKI, ErrClassWriteBlockException}:   DKICBWriteBlockException,
	{CardTypeDKI, ErrClassTapBelowOneMinute}:     DKIC9TapBelowOneMinute,
}

// ResolveErrorCode maps a failure class to the code of the card's network.
// Free-service expiry and lost reader contact have a single network-independent code.
func ResolveErrorCode(card CardType, class ErrorClass) ErrorCode {
	switch class {
	case ErrClassServiceExpired:
		return DKIC5FreeServiceExpired
	case ErrClassDebitDeviceLostContact:
		return GeneralF6DebitDeviceLostContact
	}
	if code, ok := errorCodes[errorKey{card, class}]; ok {
		return code
	}
	return errorCodes[errorKey{CardTypeMandiri, class}]
}
