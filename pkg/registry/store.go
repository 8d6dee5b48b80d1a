package registry

import (
	"fmt"
	"sort"

	"github.com/arthur-debert/emailnotify/pkg/errors"
)

// Store holds values by id. It is filled while building and only read
// afterwards, so it needs no locking.
type Store[T any] struct {
	items map[string]T
}

// NewStore creates an empty Store
func NewStore[T any]() *Store[T] {
	return &Store[T]{items: make(map[string]T)}
}

// Register adds a value. Ids must be non-empty and unique.
func (s *Store[T]) Register(id string, item T) error {
	if id == "" {
		return errors.New(errors.ErrInvalidInput, "id cannot be empty")
	}
	if _, exists := s.items[id]; exists {
		return errors.Newf(errors.ErrAlreadyExists, "'%s' is already registered", id)
	}
	s.items[id] = item
	return nil
}

// Get returns the value for id
func (s *Store[T]) Get(id string) (T, error) {
	item, exists := s.items[id]
	if !exists {
		var zero T
		return zero, errors.Newf(errors.ErrNotFound, "'%s' not found", id)
	}
	return item, nil
}

// Lookup is Get without the error
func (s *Store[T]) Lookup(id string) (T, bool) {
	item, ok := s.items[id]
	return item, ok
}

// Has checks if id is registered
func (s *Store[T]) Has(id string) bool {
	_, exists := s.items[id]
	return exists
}

// List returns all ids in sorted order
func (s *Store[T]) List() []string {
	ids := make([]string, 0, len(s.items))
	for id := range s.items {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Count returns the number of registered values
func (s *Store[T]) Count() int {
	return len(s.items)
}

// MustGet retrieves a value and panics if not found
func MustGet[T any](s *Store[T], id string) T {
	item, err := s.Get(id)
	if err != nil {
		panic(fmt.Sprintf("failed to get %s: %v", id, err))
	}
	return item
}
