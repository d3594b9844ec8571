package storage

import (
	"encoding/json"

	"github.com/mstern/zenith/internal/errors"
	"github.com/mstern/zenith/internal/logger"
)

// Adapter serializes store documents to a KV. Loads fail soft: a missing or
// corrupt document yields the caller's zero value so a damaged journal never
// blocks startup. Saves report failures so the caller can warn the user,
// but in-memory state stays authoritative for the session.
type Adapter struct {
	kv KV
}

// NewAdapter wraps a KV backend.
func NewAdapter(kv KV) *Adapter {
	return &Adapter{kv: kv}
}

// Load decodes the document under key into v, which must be a pointer. On a
// missing key the fallback keys are tried in order (legacy layouts from
// earlier releases). Decode failures leave v untouched.
func (a *Adapter) Load(key string, v any, fallbacks ...string) {
	for _, k := range append([]string{key}, fallbacks...) {
		data, err := a.kv.Read(k)
		if err != nil {
			continue
		}
		if err := json.Unmarshal(data, v); err != nil {
			logger.Warn("Discarding corrupt document", "key", k, "error", err)
			continue
		}
		if k != key {
			logger.Info("Loaded document from legacy key", "key", k, "canonical", key)
		}
		return
	}
}

// Save encodes v and writes the whole document under key. Failures come back
// as a *errors.PersistenceError.
func (a *Adapter) Save(key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return &errors.PersistenceError{Key: key, Err: err}
	}
	if err := a.kv.Write(key, data); err != nil {
		return &errors.PersistenceError{Key: key, Err: err}
	}
	return nil
}

// Erase removes the documents under the given keys. Used by the destructive
// clear command only.
func (a *Adapter) Erase(keys ...string) error {
	for _, k := range keys {
		if err := a.kv.Erase(k); err != nil {
			return &errors.PersistenceError{Key: k, Err: err}
		}
	}
	return nil
}
