package store

import (
	"encoding/json"

	"github.com/dgraph-io/badger/v4"
)

// BadgerStore keeps move data in a BadgerDB directory. Writes are durable
// as they happen, so Persist only forces a sync.
type BadgerStore struct {
	db *badger.DB
}

// OpenBadger opens (or creates) a Badger-backed store in dir.
func OpenBadger(dir string) (*BadgerStore, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil // Badger's own logging is noise here.

	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}
	return &BadgerStore{db: db}, nil
}

// Get returns the value for id, defaulting to an empty object.
func (s *BadgerStore) Get(id string) (json.RawMessage, error) {
	value := emptyObject
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(id))
		if err == badger.ErrKeyNotFound {
			return nil
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			value = append(json.RawMessage(nil), val...)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return value, nil
}

// Set stores a value for id. Empty values delete the entry instead, keeping
// the store free of the padding a JSON file store would drop on Persist.
func (s *BadgerStore) Set(id string, value json.RawMessage) error {
	return s.db.Update(func(txn *badger.Txn) error {
		if isEmptyValue(value) {
			err := txn.Delete([]byte(id))
			if err == badger.ErrKeyNotFound {
				return nil
			}
			return err
		}
		return txn.Set([]byte(id), value)
	})
}

// Persist forces a sync to disk.
func (s *BadgerStore) Persist() error {
	return s.db.Sync()
}

// Close syncs and closes the database.
func (s *BadgerStore) Close() error {
	if err := s.db.Sync(); err != nil {
		s.db.Close()
		return err
	}
	return s.db.Close()
}
