package core

import "context"

// Storage defines the contract for persisting one collection document.
// Adhering to this interface keeps the repositories independent of the
// underlying storage mechanism.
type Storage interface {
	// Read returns the raw collection document.
	// A missing document is reported as (nil, nil).
	Read(ctx context.Context) ([]byte, error)

	// Write replaces the whole collection document.
	Write(ctx context.Context, data []byte) error

	// Location describes where the document lives (a file path for the fs adapter).
	Location() string
}
