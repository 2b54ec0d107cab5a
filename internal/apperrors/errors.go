package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrRateNotFound indicates that no exchange rate exists for a currency pair.
// Conversion callers decide whether to propagate it or fall back to the raw amount.
var ErrRateNotFound = errors.New("exchange rate not found")

// ErrForbidden indicates that the current user may not perform the operation.
var ErrForbidden = errors.New("operation not permitted")
