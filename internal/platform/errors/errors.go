package apperrors

import "errors"

var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrNotFound           = errors.New("not found")
	ErrServiceUnavailable = errors.New("planner service unavailable")
	ErrGenerationInFlight = errors.New("schedule generation already in flight")
	ErrStaleGeneration    = errors.New("stale schedule generation discarded")
	ErrInvalidMultiplier  = errors.New("invalid debrief multiplier")
	ErrCorruptState       = errors.New("corrupt stored state")
)
