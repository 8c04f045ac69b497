package storage

import "errors"

// Common storage errors
var (
	// ErrNotFound indicates that no record exists at the given identifier.
	// Update operations return it; Delete is a silent no-op instead.
	ErrNotFound = errors.New("record not found")

	// ErrStorageClosed is returned by operations attempted after Close.
	// Engines map their driver's not-open failure to it where the driver
	// exposes one; database/sql keeps its own sentinel, so the sqlite
	// engine surfaces that error instead.
	ErrStorageClosed = errors.New("storage is closed")
)
