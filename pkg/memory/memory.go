// Package memory provides the identity-keyed state store that
// survives across frames. Widgets derive a stable ID from an explicit
// or positional source, read their state at the start of a frame, and
// write it back at the end; the store itself never interprets the
// values it holds.
//
// No two widgets may share an ID: a collision corrupts both records.
package memory

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"
)

// ID is a stable identity for persisted per-widget state.
type ID uint64

// NewID derives an ID from a seed value. Equal seeds of the same type
// always produce the same ID.
func NewID(seed any) ID {
	h := fnv.New64a()
	fmt.Fprintf(h, "%T/%v", seed, seed)
	return ID(h.Sum64())
}

// With derives a child ID from this one. Used to give sub-parts of a
// widget (a scrollbar, a drag region) their own identity without the
// caller providing extra seeds.
func (id ID) With(child any) ID {
	h := fnv.New64a()
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(id))
	h.Write(buf[:])
	fmt.Fprintf(h, "%T/%v", child, child)
	return ID(h.Sum64())
}

// Store maps IDs to arbitrary state records.
type Store struct {
	data map[ID]any
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{data: make(map[ID]any)}
}

// Get returns the value stored under id, if any.
func (s *Store) Get(id ID) (any, bool) {
	v, ok := s.data[id]
	return v, ok
}

// Insert stores value under id, replacing any previous value.
// Inserting the same value every frame is the expected idiom:
// the write is idempotent.
func (s *Store) Insert(id ID, value any) {
	s.data[id] = value
}

// Delete removes the value stored under id.
func (s *Store) Delete(id ID) {
	delete(s.data, id)
}

// Len returns the number of stored records.
func (s *Store) Len() int {
	return len(s.data)
}

// Range calls f for each stored record until f returns false.
func (s *Store) Range(f func(ID, any) bool) {
	for id, v := range s.data {
		if !f(id, v) {
			return
		}
	}
}

// GetOrDefault returns the value of type T stored under id, or the
// zero value of T when nothing (or a value of another type) is
// stored. It never writes; the caller inserts at the end of the frame.
func GetOrDefault[T any](s *Store, id ID) T {
	if v, ok := s.data[id]; ok {
		if typed, ok := v.(T); ok {
			return typed
		}
	}
	var zero T
	return zero
}
