// Package storage provides a small key-value persistence layer for the runner.
// Values are JSON-serialized; the primary backend is SQLite via the pure-Go
// modernc.org/sqlite driver, with an in-memory backend for tests and for
// running without a usable database.
package storage

// Store is a key-value store over JSON-serializable values.
// Implementations must tolerate concurrent use from a single session; readers
// that fail should let callers degrade to defaults rather than crash.
type Store interface {
	// Get unmarshals the value for key into out.
	// Returns false with a nil error when the key is absent.
	Get(key string, out any) (bool, error)

	// Set marshals value and stores it under key, replacing any previous value.
	Set(key string, value any) error

	// Remove deletes the value for key. Removing an absent key is not an error.
	Remove(key string) error

	// Close releases any underlying resources.
	Close() error
}
