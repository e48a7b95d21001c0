package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrUpstreamUnavailable indicates the external bill ledger could not be reached.
// The caller may retry; this service never retries on its own.
var ErrUpstreamUnavailable = errors.New("bill ledger unavailable")

// ErrUnknownDenomination indicates a cash breakdown referenced a face value
// that is not part of the configured denomination set.
var ErrUnknownDenomination = errors.New("unknown denomination")

// ErrInvalidQuantity indicates a cash breakdown carried a negative quantity.
var ErrInvalidQuantity = errors.New("invalid denomination quantity")

// ErrPaymentAlreadyClosed indicates a payment selected for a closure is already
// claimed by another closure. The caller should refresh the unclosed set and retry.
var ErrPaymentAlreadyClosed = errors.New("payment already included in a closure")

// ErrMissingCashCount indicates a closure that collected cash was submitted
// with an all-zero denomination count.
var ErrMissingCashCount = errors.New("cash count is required when cash was collected")

// ErrClosurePending indicates the sequencing guard refused a new payment because
// an earlier day's closure is still outstanding. Wrap with the required closure
// date so handlers can surface it to the caller.
var ErrClosurePending = errors.New("a prior cash closure is pending")
