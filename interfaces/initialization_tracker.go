package interfaces

// InitializationTracker is the readiness gate for queries.
//
//go:generate moq -stub -out mock/initialization_tracker.go -pkg mock . InitializationTracker
type InitializationTracker interface {
	// IsPending reports whether some startup task has not finished yet.
	IsPending() bool
}
