package errors

import (
	"fmt"
)

type ErrorCode string

const (
	AccountNotFound   ErrorCode = "account_not_found"
	AuthFailed        ErrorCode = "auth_failed"
	InvalidInput      ErrorCode = "invalid_input"
	InvalidAmount     ErrorCode = "invalid_amount"
	InsufficientFunds ErrorCode = "insufficient_funds"
	StorageError      ErrorCode = "storage_error"
)

type AppError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Details string    `json:"details,omitempty"`
}

func (e *AppError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Is matches AppErrors by code, so errors.Is works against the predefined
// sentinels even after WithDetails produced a copy.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	return ok && t.Code == e.Code && t.Message == e.Message
}

func NewAppError(code ErrorCode, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

func (e *AppError) WithDetails(details string) *AppError {
	return &AppError{Code: e.Code, Message: e.Message, Details: details}
}

// Predefined errors for common cases
var (
	// ErrLoginFailed deliberately covers both an unknown account number and
	// a wrong PIN; callers must not distinguish the two.
	ErrLoginFailed = NewAppError(AuthFailed, "account not found or incorrect PIN")

	ErrAccountNotFound    = NewAppError(AccountNotFound, "account not found")
	ErrEmptyAccountNumber = NewAppError(InvalidInput, "account number cannot be empty")
	ErrEmptyOwnerName     = NewAppError(InvalidInput, "owner name cannot be empty")
	ErrInvalidPIN         = NewAppError(InvalidInput, "PIN must be exactly four digits")
	ErrNegativeDeposit    = NewAppError(InvalidAmount, "initial deposit cannot be negative")
	ErrInvalidAmount      = NewAppError(InvalidAmount, "amount must be positive")
	ErrInsufficientFunds  = NewAppError(InsufficientFunds, "insufficient funds")
	ErrAccountUpdate      = NewAppError(StorageError, "failed to update account record")
)
