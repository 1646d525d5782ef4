// Package memory keeps the session in process memory, nothing survives a restart.
package memory

import (
	"sync"

	"github.com/klwxsrx/simctl/internal/session/app/storage"
	"github.com/klwxsrx/simctl/internal/session/domain"
)

type Store struct {
	mu         sync.RWMutex
	identity   *domain.Identity
	credential domain.Credential
}

var _ storage.Store = (*Store)(nil)

func NewStore() *Store {
	return &Store{}
}

func (s *Store) Persist(identity domain.Identity, credential domain.Credential) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.identity = &identity
	s.credential = credential
	return nil
}

func (s *Store) LoadIdentity() (*domain.Identity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.identity == nil {
		return nil, nil
	}

	identity := *s.identity
	return &identity, nil
}

func (s *Store) LoadCredential() (domain.Credential, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.credential, nil
}

func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.identity = nil
	s.credential = ""
	return nil
}
