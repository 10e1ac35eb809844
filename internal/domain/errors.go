package domain

import "errors"

// KeyPrefix namespaces all keys written by studyfind repositories.
const KeyPrefix = "studyfind:"

var (
	// ErrRemoteSearch signals that a fanned-out remote query batch failed.
	// Callers use it to distinguish "search failed" from "no results".
	ErrRemoteSearch = errors.New("remote search failed")
	// ErrNoQuerySpecs signals an empty decomposition batch. The expander
	// guarantees at least one spec, so reaching this is a programming defect.
	ErrNoQuerySpecs = errors.New("no query specs")
	// ErrInvalidDensity signals an unknown presentation density mode.
	ErrInvalidDensity = errors.New("invalid density mode")
)
