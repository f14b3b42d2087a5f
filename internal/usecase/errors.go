package usecase

import "errors"

// Errors returned by the catalog and reservation services. Callers match them
// with errors.Is; the wrapped message carries the detail.
var (
	ErrNotFound         = errors.New("not found")
	ErrAlreadyReserved  = errors.New("already reserved")
	ErrStoreUnavailable = errors.New("store unavailable")
	ErrInvalidInput     = errors.New("invalid input")
)
