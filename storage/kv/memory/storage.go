package memkv

import (
	"context"
	"sync"

	"github.com/trezcool/unirepo/core"
)

// Storage keeps every item in a map. Nothing survives the process.
type Storage struct {
	sync.RWMutex
	origin string
	items  map[string]string
}

var _ core.Storage = (*Storage)(nil) // interface compliance check

func New(origin string) *Storage {
	return &Storage{origin: origin, items: make(map[string]string)}
}

func (s *Storage) key(k string) string { return s.origin + ":" + k }

func (s *Storage) GetItem(_ context.Context, key string) (string, bool, error) {
	s.RLock()
	defer s.RUnlock()
	val, ok := s.items[s.key(key)]
	return val, ok, nil
}

func (s *Storage) SetItem(_ context.Context, key, value string) error {
	s.Lock()
	defer s.Unlock()
	s.items[s.key(key)] = value
	return nil
}

func (s *Storage) RemoveItem(_ context.Context, key string) error {
	s.Lock()
	defer s.Unlock()
	delete(s.items, s.key(key))
	return nil
}

func (s *Storage) Close() error { return nil }
