// Package domain errors.go contains sentinel errors
package domain

import "errors"

// Sentinel domain-level errors reused by higher layers. Callers match them with
// errors.Is; the returned errors wrap them with a diagnostic.
var (
	ErrInvalidPrefixFormat = errors.New("invalid prefix format")
	ErrUnknownPrefix       = errors.New("unknown prefix")
	ErrFormat              = errors.New("invalid hkid format")
)
