package srs

import "errors"

// Sentinel errors for the srs package.
// Use errors.Is to check: errors.Is(err, srs.ErrInvalidRating)
var (
	ErrInvalidRating  = errors.New("srs: invalid rating")
	ErrInvalidStatus  = errors.New("srs: invalid status")
	ErrInvalidCard    = errors.New("srs: invalid card")
	ErrInvalidConfig  = errors.New("srs: invalid config")
	ErrCardIDMismatch = errors.New("srs: card ID mismatch in review log")
)
