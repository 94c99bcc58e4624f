package domain

import "errors"

var (
	ErrCategoryNotFound = errors.New("category not found")
	ErrUnitNotFound     = errors.New("unit not found")
	ErrCategoryMismatch = errors.New("unit belongs to a different category")
	ErrInvalidValue     = errors.New("value must be a finite number")

	ErrFetchTimeout     = errors.New("exchange rate fetch timed out")
	ErrFetchUnavailable = errors.New("exchange rate provider unavailable")
	ErrFetchParse       = errors.New("exchange rate response malformed")

	ErrSnapshotMissing = errors.New("no exchange rate snapshot available")
	ErrSnapshotStale   = errors.New("exchange rate snapshot is stale")
)
