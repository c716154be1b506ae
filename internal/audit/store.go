package audit

import (
	"sync"

	"github.com/matthewtax/ngtax/internal/domain"
)

// Store holds schedule records in memory. Durable persistence is the
// responsibility of an external collaborator; this store only backs the
// report endpoints for the lifetime of the process.
type Store struct {
	mu      sync.RWMutex
	records map[string]domain.ScheduleRecord
}

// NewStore creates an empty record store.
func NewStore() *Store {
	return &Store{records: make(map[string]domain.ScheduleRecord)}
}

// Put saves a record, replacing any previous record with the same id.
func (s *Store) Put(record domain.ScheduleRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[record.ID] = record
}

// Get returns the record with the given id.
func (s *Store) Get(id string) (domain.ScheduleRecord, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	record, ok := s.records[id]
	return record, ok
}

// UpdateStatus moves a record between payment states.
func (s *Store) UpdateStatus(id string, status domain.ScheduleStatus) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	record, ok := s.records[id]
	if !ok {
		return false
	}
	record.Status = status
	s.records[id] = record
	return true
}
