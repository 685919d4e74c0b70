// Package store persists opaque move data keyed by position identifier.
// The codec never looks inside a stored value; callers get back whatever
// JSON they put in, or an empty object for an unknown key.
package store

import (
	"encoding/json"
	"os"
)

// emptyObject is what Get returns for a key never written.
var emptyObject = json.RawMessage("{}")

// MoveStore is the contract the rest of the system codes against:
// store and retrieve an opaque value by a string key. At-most-one writer
// per key is the caller's responsibility.
type MoveStore interface {
	// Get returns the value stored for id, or an empty JSON object when
	// the id has never been written.
	Get(id string) (json.RawMessage, error)

	// Set stores a value for id, replacing any previous value.
	Set(id string, value json.RawMessage) error

	// Persist writes all non-empty entries to durable storage.
	Persist() error

	// Close releases the store's resources after a final Persist.
	Close() error
}

// JSONStore keeps the whole store in memory and persists it as a single
// JSON file mapping identifiers to their values. Entries whose value is
// empty are dropped on Persist.
type JSONStore struct {
	filename string
	data     map[string]json.RawMessage
}

// OpenJSON loads a JSON store from filename. A missing file yields an
// empty store; a present but unreadable one is an error.
func OpenJSON(filename string) (*JSONStore, error) {
	s := &JSONStore{filename: filename, data: make(map[string]json.RawMessage)}
	raw, err := os.ReadFile(filename)
	if os.IsNotExist(err) {
		return s, nil
	}
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(raw, &s.data); err != nil {
		return nil, err
	}
	return s, nil
}

// Get returns the value for id, defaulting to an empty object.
func (s *JSONStore) Get(id string) (json.RawMessage, error) {
	if v, ok := s.data[id]; ok {
		return v, nil
	}
	return emptyObject, nil
}

// Set stores a value for id.
func (s *JSONStore) Set(id string, value json.RawMessage) error {
	s.data[id] = value
	return nil
}

// Persist writes all non-empty entries to the backing file.
func (s *JSONStore) Persist() error {
	out := make(map[string]json.RawMessage, len(s.data))
	for k, v := range s.data {
		if !isEmptyValue(v) {
			out[k] = v
		}
	}
	raw, err := json.Marshal(out)
	if err != nil {
		return err
	}
	return os.WriteFile(s.filename, raw, 0o644)
}

// Close persists and drops the in-memory map.
func (s *JSONStore) Close() error {
	err := s.Persist()
	s.data = nil
	return err
}

// isEmptyValue reports whether a raw value is missing, an empty object or
// an empty array.
func isEmptyValue(v json.RawMessage) bool {
	switch string(v) {
	case "", "{}", "[]", "null":
		return true
	}
	return false
}
