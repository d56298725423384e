package rating

import "errors"

var (
	ErrInvalidConfig = errors.New("invalid rating config")
	// ErrNoRateCard is returned by a RateCardSource that holds no tier for a
	// carrier. The engine treats it like any other per-carrier lookup failure.
	ErrNoRateCard   = errors.New("no rate card for carrier")
	ErrZoneNotFound = errors.New("no zone rule for route")
)
