package rosterstore

import (
	"sync"

	"github.com/NishanthKarthikeyan/college-broadcast-system/core/contact"
)

// Store caches a loaded roster snapshot for the process lifetime. Readers always
// observe a complete set: Reload builds the new set first and swaps it in wholesale,
// never mutating the published one.
type Store struct {
	repo contact.Repository

	mu       sync.RWMutex
	snapshot []contact.Contact
}

var _ contact.Repository = (*Store)(nil)

// NewStore builds the initial snapshot; a load failure is fatal to startup.
func NewStore(repo contact.Repository) (*Store, error) {
	s := &Store{repo: repo}
	if err := s.Reload(); err != nil {
		return nil, err
	}
	return s, nil
}

// AllContacts returns the cached snapshot. Callers must treat it as read-only.
func (s *Store) AllContacts() ([]contact.Contact, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot, nil
}

// Reload re-reads every source file and atomically replaces the snapshot.
// On failure the previous snapshot stays in place.
func (s *Store) Reload() error {
	fresh, err := s.repo.AllContacts()
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.snapshot = fresh
	s.mu.Unlock()
	return nil
}
