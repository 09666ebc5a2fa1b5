// Package kv provides a generic thread-safe key-value store.
package kv

import "sync"

// Store is a thread-safe generic key-value store.
type Store[K comparable, V any] struct {
	mu   sync.RWMutex
	data map[K]V
}

// New creates a new key-value store.
func New[K comparable, V any]() *Store[K, V] {
	return &Store[K, V]{
		data: make(map[K]V),
	}
}

// Get retrieves a value by key.
func (s *Store[K, V]) Get(key K) (V, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	val, ok := s.data[key]
	return val, ok
}

// Set stores a value by key.
func (s *Store[K, V]) Set(key K, value V) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = value
}

// Delete removes a key from the store.
func (s *Store[K, V]) Delete(key K) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, key)
}

// Len returns the number of items in the store.
func (s *Store[K, V]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.data)
}

// Retain drops every entry whose key fails keep.
func (s *Store[K, V]) Retain(keep func(K) bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for k := range s.data {
		if !keep(k) {
			delete(s.data, k)
		}
	}
}

// GetOrCompute returns the value stored for key if fresh reports it still
// valid, otherwise it stores and returns compute(). The second result is
// true when the stored value was reused.
func (s *Store[K, V]) GetOrCompute(key K, fresh func(V) bool, compute func() V) (V, bool) {
	s.mu.RLock()
	val, ok := s.data[key]
	s.mu.RUnlock()
	if ok && fresh(val) {
		return val, true
	}

	val = compute()
	s.Set(key, val)
	return val, false
}
