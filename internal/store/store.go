// Package store holds the id-addressed record model and its JSON file persistence.
package store

import (
	"sort"
)

// Store is the in-memory id→Record mapping for one invocation, bound to the
// database file it was loaded from.
type Store struct {
	path    string
	records map[uint64]Record
}

// New returns an empty store that saves to path.
func New(path string) *Store {
	return &Store{
		path:    path,
		records: make(map[uint64]Record),
	}
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// Len returns the number of records.
func (s *Store) Len() int {
	return len(s.records)
}

// GetByID returns the record stored under id.
func (s *Store) GetByID(id uint64) (Record, bool) {
	r, ok := s.records[id]
	return r, ok
}

// GetByKey returns the record with the given key.
// When several records share the key, the one with the lowest id wins.
func (s *Store) GetByKey(key string) (Record, bool) {
	var (
		found Record
		ok    bool
	)
	for _, r := range s.records {
		if r.Key != key {
			continue
		}
		if !ok || r.ID < found.ID {
			found, ok = r, true
		}
	}
	return found, ok
}

// Insert adds a new record under max(id)+1, or 1 for an empty store.
// Keys are not unique: inserting an existing key creates another record.
func (s *Store) Insert(key, value string) Record {
	r := Record{ID: s.nextID(), Key: key, Value: value}
	s.records[r.ID] = r
	return r
}

// RemoveByID deletes and returns the record stored under id.
func (s *Store) RemoveByID(id uint64) (Record, bool) {
	r, ok := s.records[id]
	if ok {
		delete(s.records, id)
	}
	return r, ok
}

// RemoveByKey deletes the record GetByKey would return.
func (s *Store) RemoveByKey(key string) (Record, bool) {
	r, ok := s.GetByKey(key)
	if !ok {
		return Record{}, false
	}
	return s.RemoveByID(r.ID)
}

// List returns all records sorted ascending by id.
func (s *Store) List() []Record {
	records := make([]Record, 0, len(s.records))
	for _, r := range s.records {
		records = append(records, r)
	}
	sort.Slice(records, func(i, j int) bool {
		return records[i].ID < records[j].ID
	})
	return records
}

// nextID is max(existing ids)+1. A deleted maximum id is handed out again.
func (s *Store) nextID() uint64 {
	var maxID uint64
	for id := range s.records {
		if id > maxID {
			maxID = id
		}
	}
	return maxID + 1
}
