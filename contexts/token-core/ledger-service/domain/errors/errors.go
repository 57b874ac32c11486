package errors

import "errors"

var (
	ErrUnauthorized = errors.New("caller does not hold the required authority")

	ErrSymbolNotFound  = errors.New("token with symbol does not exist, create token first")
	ErrAccountNotFound = errors.New("destination account does not exist")
	ErrBalanceNotFound = errors.New("no balance object found")
	ErrSymbolExists    = errors.New("token with symbol already exists")

	ErrInvalidSymbol     = errors.New("invalid symbol name")
	ErrInvalidAmount     = errors.New("max supply must be positive")
	ErrInvalidQuantity   = errors.New("quantity must be positive and within asset bounds")
	ErrPrecisionMismatch = errors.New("symbol precision mismatch")
	ErrMemoTooLong       = errors.New("memo has more than 256 bytes")

	ErrInsufficientBalance  = errors.New("overdrawn balance")
	ErrInsufficientSupply   = errors.New("quantity exceeds available supply")
	ErrExceedsMaxSupply     = errors.New("quantity exceeds maximum supply")
	ErrSelfTransfer         = errors.New("cannot transfer to self")
	ErrPaused               = errors.New("contract is paused")
	ErrSenderBlacklisted    = errors.New("sender account is blacklisted")
	ErrRecipientBlacklisted = errors.New("recipient account is blacklisted")
	ErrAlreadyBlacklisted   = errors.New("account is already blacklisted")
	ErrNotBlacklisted       = errors.New("account is not blacklisted")
)
