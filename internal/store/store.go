// Package store provides the theme store and its preference backends.
package store

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/jmylchreest/glimmer/internal/theme"
)

// DefaultKey is the preference key the theme is stored under.
const DefaultKey = "quantumTheme"

// Listener is notified with the new theme after every change.
type Listener func(theme.Theme) error

// ErrPersist wraps failures writing the theme to the preference backend.
var ErrPersist = errors.New("persist theme")

// ListenerError reports a listener that failed during notification.
// Listeners after Index were not notified.
type ListenerError struct {
	Index int
	Theme theme.Theme
	Err   error
}

func (e *ListenerError) Error() string {
	return fmt.Sprintf("listener %d failed for theme %s: %v", e.Index, e.Theme, e.Err)
}

func (e *ListenerError) Unwrap() error {
	return e.Err
}

// ThemeStore owns the active theme, persists it, and fans out changes.
type ThemeStore struct {
	// opMu serializes Toggle and Reload including notification.
	opMu sync.Mutex

	mu        sync.RWMutex
	current   theme.Theme
	listeners []Listener

	prefs  Preferences
	key    string
	logger *slog.Logger
}

// NewThemeStore creates a store initialized from prefs.
// A missing, unreadable or unrecognised stored value yields theme.Default.
// Nothing is written back.
func NewThemeStore(prefs Preferences, key string, logger *slog.Logger) *ThemeStore {
	if key == "" {
		key = DefaultKey
	}
	if logger == nil {
		logger = slog.Default()
	}

	s := &ThemeStore{
		prefs:  prefs,
		key:    key,
		logger: logger,
	}
	s.current = s.readStored()
	return s
}

// readStored returns the stored theme or theme.Default.
func (s *ThemeStore) readStored() theme.Theme {
	if s.prefs == nil {
		return theme.Default
	}

	raw, err := s.prefs.Get(s.key)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			s.logger.Debug("failed to read stored theme, using default", "key", s.key, "error", err)
		}
		return theme.Default
	}

	t, err := theme.Parse(raw)
	if err != nil {
		s.logger.Debug("ignoring unrecognised stored theme", "key", s.key, "value", raw)
		return theme.Default
	}
	return t
}

// Key returns the preference key used by the store.
func (s *ThemeStore) Key() string {
	return s.key
}

// Current returns the active theme.
func (s *ThemeStore) Current() theme.Theme {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Subscribe appends l to the notification sequence. Duplicates are kept and
// l is not invoked until the next change.
func (s *ThemeStore) Subscribe(l Listener) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, l)
}

// Toggle flips the theme, persists it, then notifies listeners in
// subscription order.
//
// If the write fails the in-memory theme has already changed, no listener is
// called, and the returned error wraps ErrPersist. If a listener fails,
// notification stops and a *ListenerError is returned.
// Listeners must not call Toggle or Reload.
func (s *ThemeStore) Toggle() error {
	s.opMu.Lock()
	defer s.opMu.Unlock()

	s.mu.Lock()
	next := s.current.Next()
	s.current = next
	s.mu.Unlock()

	if s.prefs != nil {
		if err := s.prefs.Set(s.key, next.String()); err != nil {
			return fmt.Errorf("%w: %w", ErrPersist, err)
		}
	}

	s.logger.Debug("theme toggled", "theme", next)
	return s.notify(next)
}

// Reload re-reads the stored value and adopts it if it is valid and differs
// from the active theme, notifying listeners as Toggle does. It reports
// whether the theme changed.
func (s *ThemeStore) Reload() (bool, error) {
	s.opMu.Lock()
	defer s.opMu.Unlock()

	if s.prefs == nil {
		return false, nil
	}

	raw, err := s.prefs.Get(s.key)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	stored, err := theme.Parse(raw)
	if err != nil {
		s.logger.Debug("ignoring unrecognised stored theme", "key", s.key, "value", raw)
		return false, nil
	}

	s.mu.Lock()
	if stored == s.current {
		s.mu.Unlock()
		return false, nil
	}
	s.current = stored
	s.mu.Unlock()

	s.logger.Debug("theme reloaded from storage", "theme", stored)
	return true, s.notify(stored)
}

// notify calls each listener in order, stopping at the first error.
func (s *ThemeStore) notify(t theme.Theme) error {
	s.mu.RLock()
	listeners := make([]Listener, len(s.listeners))
	copy(listeners, s.listeners)
	s.mu.RUnlock()

	for i, l := range listeners {
		if err := l(t); err != nil {
			return &ListenerError{Index: i, Theme: t, Err: err}
		}
	}
	return nil
}
