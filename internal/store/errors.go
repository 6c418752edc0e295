package store

import "errors"

// Sentinel errors distinguishing the failure classes callers handle
// differently.
var (
	// ErrValidation marks a rejected create: required input missing or
	// malformed. The store is never mutated.
	ErrValidation = errors.New("invalid input")

	// ErrNotLoaded marks a mutation attempted before Load.
	ErrNotLoaded = errors.New("store not loaded")

	// ErrIncompatibleSnapshot marks a snapshot written by a newer,
	// incompatible release.
	ErrIncompatibleSnapshot = errors.New("snapshot schema version not supported")
)
