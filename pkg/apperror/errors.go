package apperror

import (
	"fmt"
	"net/http"
)

// AppError is a structured error that maps to status API responses.
type AppError struct {
	Code       string `json:"error_code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
	Err        error  `json:"-"` // Wrapped internal error (not exposed to client)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError.
func New(code string, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap wraps an internal error with an AppError.
func Wrap(code string, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// ---- Counter store (CNT) ----

func ErrCounterUnavailable() *AppError {
	return New("CNT_001", "Counter store is not loaded", http.StatusServiceUnavailable)
}

func ErrCounterMalformed(err error) *AppError {
	return Wrap("CNT_002", "Counter data is malformed", http.StatusInternalServerError, err)
}

func ErrCounterPersist(err error) *AppError {
	return Wrap("CNT_003", "Counter data could not be stored", http.StatusInternalServerError, err)
}

// ---- Ledger (LDG) ----

func ErrLedgerInsert(err error) *AppError {
	return Wrap("LDG_001", "Ledger insert failed", http.StatusInternalServerError, err)
}

func ErrLedgerUnavailable() *AppError {
	return New("LDG_002", "Ledger reader is not configured", http.StatusServiceUnavailable)
}

// ---- Requests (REQ) ----

func ErrNotFound(entity string) *AppError {
	return New("REQ_002", fmt.Sprintf("%s not found", entity), http.StatusNotFound)
}

// Validation returns a REQ_001 validation error.
func Validation(message string) *AppError {
	return New("REQ_001", message, http.StatusBadRequest)
}

// ---- System & Infrastructure (SYS) ----

func ErrDatabaseError(err error) *AppError {
	return Wrap("SYS_001", "Internal database error", http.StatusInternalServerError, err)
}

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap("SYS_001", "Internal server error", http.StatusInternalServerError, err)
}

// ErrTransactionPanic records a collaborator panic caught at the transaction boundary.
func ErrTransactionPanic(v any) *AppError {
	return New("SYS_002", fmt.Sprintf("transaction aborted: %v", v), http.StatusInternalServerError)
}
