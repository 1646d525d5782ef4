// Package bbolt provides a file-backed session store that survives process restarts.
package bbolt

import (
	"encoding/json"
	"fmt"
	"time"

	"go.etcd.io/bbolt"

	"github.com/klwxsrx/simctl/internal/session/app/storage"
	"github.com/klwxsrx/simctl/internal/session/domain"
)

const openTimeout = time.Second

var sessionBucket = []byte("session")

// Store implements storage.Store backed by a BBolt database.
type Store struct {
	db *bbolt.DB
}

var _ storage.Store = (*Store)(nil)

func NewStore(db *bbolt.DB) *Store {
	return &Store{db: db}
}

// NewStoreFromFile opens (or creates) the BBolt database at path.
// The file lock is held until Close, a second process waits up to a second and fails.
func NewStoreFromFile(path string) (*Store, error) {
	db, err := bbolt.Open(path, 0o600, &bbolt.Options{Timeout: openTimeout})
	if err != nil {
		return nil, fmt.Errorf("open bbolt db: %w", err)
	}

	return NewStore(db), nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) Persist(identity domain.Identity, credential domain.Credential) error {
	identityJSON, err := json.Marshal(identity)
	if err != nil {
		return fmt.Errorf("encode identity: %w", err)
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists(sessionBucket)
		if err != nil {
			return err
		}
		if err = b.Put([]byte(storage.KeyIdentity), identityJSON); err != nil {
			return err
		}

		return b.Put([]byte(storage.KeyCredential), []byte(credential))
	})
}

func (s *Store) LoadIdentity() (*domain.Identity, error) {
	var identity *domain.Identity
	err := s.db.View(func(tx *bbolt.Tx) error {
		data := get(tx, storage.KeyIdentity)
		if data == nil {
			return nil
		}

		identity = &domain.Identity{}
		return json.Unmarshal(data, identity)
	})
	if err != nil {
		return nil, fmt.Errorf("load identity: %w", err)
	}

	return identity, nil
}

func (s *Store) LoadCredential() (domain.Credential, error) {
	var credential domain.Credential
	err := s.db.View(func(tx *bbolt.Tx) error {
		credential = domain.Credential(get(tx, storage.KeyCredential))
		return nil
	})

	return credential, err
}

func (s *Store) Clear() error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket(sessionBucket)
		if b == nil {
			return nil
		}
		if err := b.Delete([]byte(storage.KeyIdentity)); err != nil {
			return err
		}

		return b.Delete([]byte(storage.KeyCredential))
	})
}

// get copies the value, bbolt memory is only valid inside the transaction.
func get(tx *bbolt.Tx, key string) []byte {
	b := tx.Bucket(sessionBucket)
	if b == nil {
		return nil
	}

	data := b.Get([]byte(key))
	if data == nil {
		return nil
	}

	return append([]byte(nil), data...)
}
