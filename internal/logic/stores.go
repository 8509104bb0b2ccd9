package logic

import (
	"sync"

	"dispatchdash/internal/domain"
)

// MemoryRecordStore is an in-memory implementation of RecordStore.
// All keeps insertion order so the unsorted table view is stable.
type MemoryRecordStore struct {
	mu      sync.RWMutex
	records map[string]domain.Record
	order   []string
}

// NewMemoryRecordStore creates a new memory-based record store
func NewMemoryRecordStore(records ...domain.Record) *MemoryRecordStore {
	s := &MemoryRecordStore{
		records: make(map[string]domain.Record),
	}
	s.Put(records...)
	return s
}

// NewDriverStore builds a store from drivers
func NewDriverStore(drivers []domain.Driver) *MemoryRecordStore {
	s := NewMemoryRecordStore()
	for i := range drivers {
		s.Put(&drivers[i])
	}
	return s
}

// NewOrderStore builds a store from orders
func NewOrderStore(orders []domain.Order) *MemoryRecordStore {
	s := NewMemoryRecordStore()
	for i := range orders {
		s.Put(&orders[i])
	}
	return s
}

func (s *MemoryRecordStore) Get(key string) (domain.Record, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.records[key]
	return r, ok
}

// All returns a copy of the records in insertion order
func (s *MemoryRecordStore) All() []domain.Record {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]domain.Record, 0, len(s.order))
	for _, k := range s.order {
		result = append(result, s.records[k])
	}
	return result
}

// Put adds records, replacing any with the same key in place
func (s *MemoryRecordStore) Put(records ...domain.Record) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range records {
		if r == nil {
			continue
		}
		k := r.Key()
		if _, exists := s.records[k]; !exists {
			s.order = append(s.order, k)
		}
		s.records[k] = r
	}
}

func (s *MemoryRecordStore) Remove(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.records[key]; !ok {
		return
	}
	delete(s.records, key)
	for i, k := range s.order {
		if k == key {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}

func (s *MemoryRecordStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.order)
}
