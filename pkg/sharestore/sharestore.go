package sharestore

import (
	"errors"
	"sync"

	"github.com/google/uuid"
)

var (
	ErrNilShareSet    = errors.New("sharestore: share set is nil")
	ErrNotFound       = errors.New("sharestore: share set not found")
	ErrLengthMismatch = errors.New("sharestore: indices and values differ in length")
)

// ShareStore keeps share sets between collection and reconstruction.
type ShareStore interface {
	Import(ss *ShareSet) (string, error)
	Get(ID string) (*ShareSet, error)
	Delete(ID string) error
	List() ([]string, error)
}

// InMemoryShareStore holds serialized share sets in memory, keyed by a fresh
// uuid per import.
type InMemoryShareStore struct {
	lock   sync.RWMutex
	shares map[string][]byte
}

var _ ShareStore = (*InMemoryShareStore)(nil)

func NewInMemoryShareStore() *InMemoryShareStore {
	return &InMemoryShareStore{
		shares: make(map[string][]byte),
	}
}

func (s *InMemoryShareStore) Import(ss *ShareSet) (string, error) {
	if ss == nil {
		return "", ErrNilShareSet
	}
	data, err := ss.Bytes()
	if err != nil {
		return "", err
	}

	s.lock.Lock()
	defer s.lock.Unlock()

	ID := uuid.New().String()
	s.shares[ID] = data
	return ID, nil
}

func (s *InMemoryShareStore) Get(ID string) (*ShareSet, error) {
	s.lock.RLock()
	defer s.lock.RUnlock()

	data, ok := s.shares[ID]
	if !ok {
		return nil, ErrNotFound
	}
	return FromBytes(data)
}

func (s *InMemoryShareStore) Delete(ID string) error {
	s.lock.Lock()
	defer s.lock.Unlock()

	_, ok := s.shares[ID]
	if !ok {
		return ErrNotFound
	}
	delete(s.shares, ID)
	return nil
}

func (s *InMemoryShareStore) List() ([]string, error) {
	s.lock.RLock()
	defer s.lock.RUnlock()

	IDs := make([]string, 0, len(s.shares))
	for ID := range s.shares {
		IDs = append(IDs, ID)
	}
	return IDs, nil
}
