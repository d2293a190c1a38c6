package store

import (
	"errors"
	"sync"
	"testing"

	"github.com/jmylchreest/glimmer/internal/theme"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recorder collects listener invocations in call order.
type recorder struct {
	calls []string
}

func (r *recorder) listener(name string) Listener {
	return func(t theme.Theme) error {
		r.calls = append(r.calls, name+":"+t.String())
		return nil
	}
}

func TestNewThemeStore_NoStoredValue(t *testing.T) {
	prefs := NewMemoryPreferences(nil)
	s := NewThemeStore(prefs, "", nil)

	assert.Equal(t, theme.Dark, s.Current())
	assert.Equal(t, DefaultKey, s.Key())

	// Default is not written back
	_, err := prefs.Get(DefaultKey)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestNewThemeStore_StoredLight(t *testing.T) {
	prefs := NewMemoryPreferences(map[string]string{DefaultKey: "light"})
	s := NewThemeStore(prefs, "", nil)
	assert.Equal(t, theme.Light, s.Current())
}

func TestNewThemeStore_InvalidStoredValue(t *testing.T) {
	for _, raw := range []string{"", "LIGHT", "blue", "light ", "null"} {
		t.Run(raw, func(t *testing.T) {
			prefs := NewMemoryPreferences(map[string]string{DefaultKey: raw})
			s := NewThemeStore(prefs, "", nil)
			assert.Equal(t, theme.Dark, s.Current())

			v, err := prefs.Get(DefaultKey)
			require.NoError(t, err)
			assert.Equal(t, raw, v, "stored value must not be rewritten")
		})
	}
}

func TestNewThemeStore_ReadFailureDefaultsToDark(t *testing.T) {
	prefs := NewMemoryPreferences(map[string]string{DefaultKey: "light"})
	prefs.FailReads = errors.New("storage disabled")

	s := NewThemeStore(prefs, "", nil)
	assert.Equal(t, theme.Dark, s.Current())
}

func TestNewThemeStore_NilPreferences(t *testing.T) {
	s := NewThemeStore(nil, "", nil)
	assert.Equal(t, theme.Dark, s.Current())
	require.NoError(t, s.Toggle())
	assert.Equal(t, theme.Light, s.Current())
}

func TestNewThemeStore_CustomKey(t *testing.T) {
	prefs := NewMemoryPreferences(map[string]string{"siteTheme": "light"})
	s := NewThemeStore(prefs, "siteTheme", nil)
	assert.Equal(t, theme.Light, s.Current())

	require.NoError(t, s.Toggle())
	v, err := prefs.Get("siteTheme")
	require.NoError(t, err)
	assert.Equal(t, "dark", v)

	_, err = prefs.Get(DefaultKey)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestThemeStore_ToggleParity(t *testing.T) {
	for _, start := range theme.All() {
		prefs := NewMemoryPreferences(map[string]string{DefaultKey: start.String()})
		s := NewThemeStore(prefs, "", nil)

		for n := 1; n <= 6; n++ {
			require.NoError(t, s.Toggle())
			want := start
			if n%2 == 1 {
				want = start.Next()
			}
			assert.Equal(t, want, s.Current(), "start=%s n=%d", start, n)

			stored, err := prefs.Get(DefaultKey)
			require.NoError(t, err)
			assert.Equal(t, s.Current().String(), stored, "persisted value must match current")
		}
	}
}

func TestThemeStore_ListenerOrderAndCount(t *testing.T) {
	s := NewThemeStore(NewMemoryPreferences(nil), "", nil)
	rec := &recorder{}

	a := rec.listener("a")
	s.Subscribe(a)
	s.Subscribe(rec.listener("b"))
	s.Subscribe(a) // duplicates are invoked once per occurrence

	assert.Empty(t, rec.calls, "subscribe must not invoke the listener")

	require.NoError(t, s.Toggle())
	assert.Equal(t, []string{"a:light", "b:light", "a:light"}, rec.calls)
}

func TestThemeStore_LateSubscriberNotCalledForEarlierToggle(t *testing.T) {
	s := NewThemeStore(NewMemoryPreferences(nil), "", nil)
	rec := &recorder{}

	s.Subscribe(rec.listener("early"))
	require.NoError(t, s.Toggle())
	s.Subscribe(rec.listener("late"))

	assert.Equal(t, []string{"early:light"}, rec.calls)

	require.NoError(t, s.Toggle())
	assert.Equal(t, []string{"early:light", "early:dark", "late:dark"}, rec.calls)
}

func TestThemeStore_ScenarioFromEmpty(t *testing.T) {
	prefs := NewMemoryPreferences(nil)
	s := NewThemeStore(prefs, "", nil)
	require.Equal(t, theme.Dark, s.Current())

	var got []theme.Theme
	s.Subscribe(func(th theme.Theme) error {
		got = append(got, th)
		return nil
	})

	require.NoError(t, s.Toggle())
	assert.Equal(t, theme.Light, s.Current())

	stored, err := prefs.Get(DefaultKey)
	require.NoError(t, err)
	assert.Equal(t, "light", stored)
	assert.Equal(t, []theme.Theme{theme.Light}, got)
}

func TestThemeStore_ScenarioFromLight(t *testing.T) {
	prefs := NewMemoryPreferences(map[string]string{DefaultKey: "light"})
	s := NewThemeStore(prefs, "", nil)
	require.Equal(t, theme.Light, s.Current())

	require.NoError(t, s.Toggle())
	assert.Equal(t, theme.Dark, s.Current())
}

func TestThemeStore_PersistFailure(t *testing.T) {
	writeErr := errors.New("quota exceeded")
	prefs := NewMemoryPreferences(nil)
	prefs.FailWrites = writeErr

	s := NewThemeStore(prefs, "", nil)
	called := false
	s.Subscribe(func(theme.Theme) error {
		called = true
		return nil
	})

	err := s.Toggle()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrPersist)
	assert.ErrorIs(t, err, writeErr)

	// In-memory state already moved on; listeners were not told
	assert.Equal(t, theme.Light, s.Current())
	assert.False(t, called)
}

func TestThemeStore_ListenerErrorStopsNotification(t *testing.T) {
	prefs := NewMemoryPreferences(nil)
	s := NewThemeStore(prefs, "", nil)
	rec := &recorder{}
	boom := errors.New("boom")

	var seenCurrent theme.Theme
	s.Subscribe(rec.listener("first"))
	s.Subscribe(func(theme.Theme) error {
		seenCurrent = s.Current()
		return boom
	})
	s.Subscribe(rec.listener("third"))

	err := s.Toggle()
	require.Error(t, err)

	var lerr *ListenerError
	require.True(t, errors.As(err, &lerr))
	assert.Equal(t, 1, lerr.Index)
	assert.Equal(t, theme.Light, lerr.Theme)
	assert.ErrorIs(t, err, boom)

	assert.Equal(t, []string{"first:light"}, rec.calls)
	assert.Equal(t, theme.Light, seenCurrent, "listeners observe the updated store")

	stored, err := prefs.Get(DefaultKey)
	require.NoError(t, err)
	assert.Equal(t, "light", stored)
}

func TestThemeStore_ListenerMaySubscribe(t *testing.T) {
	s := NewThemeStore(NewMemoryPreferences(nil), "", nil)
	rec := &recorder{}

	s.Subscribe(func(theme.Theme) error {
		s.Subscribe(rec.listener("added"))
		return nil
	})

	require.NoError(t, s.Toggle())
	assert.Empty(t, rec.calls, "listeners added during notification wait for the next change")

	require.NoError(t, s.Toggle())
	assert.Equal(t, []string{"added:dark"}, rec.calls)
}

func TestThemeStore_Reload(t *testing.T) {
	prefs := NewMemoryPreferences(nil)
	s := NewThemeStore(prefs, "", nil)
	rec := &recorder{}
	s.Subscribe(rec.listener("l"))

	// Nothing stored yet
	changed, err := s.Reload()
	require.NoError(t, err)
	assert.False(t, changed)

	// Another writer stores light
	require.NoError(t, prefs.Set(DefaultKey, "light"))
	changed, err = s.Reload()
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, theme.Light, s.Current())
	assert.Equal(t, []string{"l:light"}, rec.calls)

	// Same value again: no notification
	changed, err = s.Reload()
	require.NoError(t, err)
	assert.False(t, changed)
	assert.Len(t, rec.calls, 1)

	// Invalid value is ignored
	require.NoError(t, prefs.Set(DefaultKey, "sepia"))
	changed, err = s.Reload()
	require.NoError(t, err)
	assert.False(t, changed)
	assert.Equal(t, theme.Light, s.Current())
}

func TestThemeStore_ReloadReadError(t *testing.T) {
	prefs := NewMemoryPreferences(nil)
	s := NewThemeStore(prefs, "", nil)

	prefs.FailReads = errors.New("unavailable")
	changed, err := s.Reload()
	require.Error(t, err)
	assert.False(t, changed)
	assert.Equal(t, theme.Dark, s.Current())
}

func TestMemoryPreferences_ZeroValue(t *testing.T) {
	var prefs MemoryPreferences

	_, err := prefs.Get(DefaultKey)
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, prefs.Set(DefaultKey, "light"))
	v, err := prefs.Get(DefaultKey)
	require.NoError(t, err)
	assert.Equal(t, "light", v)
}

func TestThemeStore_ConcurrentToggle(t *testing.T) {
	const workers = 32

	prefs := NewMemoryPreferences(nil)
	s := NewThemeStore(prefs, "", nil)

	var (
		mu   sync.Mutex
		seen []theme.Theme
	)
	s.Subscribe(func(th theme.Theme) error {
		// Reads and subscriptions are allowed while notifying
		assert.Equal(t, th, s.Current())
		s.Subscribe(func(theme.Theme) error { return nil })

		mu.Lock()
		seen = append(seen, th)
		mu.Unlock()
		return nil
	})

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(3)
		go func() {
			defer wg.Done()
			assert.NoError(t, s.Toggle())
		}()
		go func() {
			defer wg.Done()
			changed, err := s.Reload()
			assert.NoError(t, err)
			assert.False(t, changed, "stored value always matches current between operations")
		}()
		go func() {
			defer wg.Done()
			assert.True(t, s.Current().Valid())
		}()
	}
	wg.Wait()

	mu.Lock()
	defer mu.Unlock()

	require.Len(t, seen, workers)
	assert.Equal(t, theme.Light, seen[0])
	for i := 1; i < len(seen); i++ {
		assert.Equal(t, seen[i-1].Next(), seen[i], "notification %d", i)
	}

	stored, err := prefs.Get(DefaultKey)
	require.NoError(t, err)
	assert.Equal(t, s.Current().String(), stored)
	assert.Equal(t, seen[len(seen)-1], s.Current())
	assert.Equal(t, theme.Dark, s.Current(), "an even number of toggles returns to the start")
}
