// Package storage persists the journal's documents. A KV holds raw bytes by
// key; the Adapter layers JSON encoding and defensive decoding on top.
package storage

// KV is a synchronous get/set-by-key byte store. Writes are whole-value and
// last-writer-wins; a reader never observes a partial write.
type KV interface {
	// Read returns the stored value, or an error when the key is absent or
	// unreadable.
	Read(key string) ([]byte, error)

	// Write replaces the value under key atomically from the caller's
	// perspective.
	Write(key string, value []byte) error

	// Erase removes the key. Removing an absent key is not an error.
	Erase(key string) error
}
