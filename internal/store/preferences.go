package store

import (
	"errors"
	"sync"
)

// ErrNotFound is returned by Preferences.Get when the key has no value.
var ErrNotFound = errors.New("preference not found")

// Preferences defines a string key-value preference backend.
type Preferences interface {
	// Get returns the value stored under key, or ErrNotFound.
	Get(key string) (string, error)

	// Set stores value under key.
	Set(key, value string) error
}

// MemoryPreferences is an in-memory Preferences implementation. The zero
// value is empty and ready to use.
type MemoryPreferences struct {
	mu     sync.RWMutex
	values map[string]string

	// FailWrites, when non-nil, is returned from every Set. Set it before the
	// value is shared between goroutines.
	FailWrites error
	// FailReads, when non-nil, is returned from every Get. Set it before the
	// value is shared between goroutines.
	FailReads error
}

// NewMemoryPreferences creates a MemoryPreferences seeded with values.
func NewMemoryPreferences(values map[string]string) *MemoryPreferences {
	m := &MemoryPreferences{values: make(map[string]string, len(values))}
	for k, v := range values {
		m.values[k] = v
	}
	return m
}

// Get implements Preferences.
func (m *MemoryPreferences) Get(key string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.FailReads != nil {
		return "", m.FailReads
	}
	v, ok := m.values[key]
	if !ok {
		return "", ErrNotFound
	}
	return v, nil
}

// Set implements Preferences.
func (m *MemoryPreferences) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.FailWrites != nil {
		return m.FailWrites
	}
	if m.values == nil {
		m.values = make(map[string]string)
	}
	m.values[key] = value
	return nil
}
