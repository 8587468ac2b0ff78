package interfaces

import "time"

// TimeProvider supplies the current time. Injected so tests can drive expiry with a fake clock.
//
//go:generate moq -stub -out mock/time_provider.go -pkg mock . TimeProvider
type TimeProvider interface {
	// Now returns the current wall-clock time.
	Now() time.Time
}
