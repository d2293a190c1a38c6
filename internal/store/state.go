package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// CurrentSchemaVersion is the current version of the state file schema.
const CurrentSchemaVersion = 1

// stateFile is the on-disk layout of FilePreferences.
type stateFile struct {
	SchemaVersion int               `json:"schema_version"`
	Values        map[string]string `json:"values"`
	UpdatedAt     map[string]int64  `json:"updated_at,omitempty"` // Unix seconds per key
}

// FilePreferences implements Preferences on a JSON state file.
// Every call reads or rewrites the whole file so several processes can share it.
type FilePreferences struct {
	mu   sync.RWMutex
	path string
}

// NewFilePreferences creates a FilePreferences for path. The file is created
// lazily on the first Set.
func NewFilePreferences(path string) *FilePreferences {
	return &FilePreferences{path: path}
}

// Path returns the state file path.
func (p *FilePreferences) Path() string {
	return p.path
}

// load reads the state file. A missing or corrupted file reads as empty.
func (p *FilePreferences) load() (*stateFile, error) {
	data, err := os.ReadFile(p.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &stateFile{SchemaVersion: CurrentSchemaVersion}, nil
		}
		return nil, err
	}

	var state stateFile
	if err := json.Unmarshal(data, &state); err != nil {
		// Corrupted: behave as if nothing was stored
		return &stateFile{SchemaVersion: CurrentSchemaVersion}, nil
	}

	if state.SchemaVersion > CurrentSchemaVersion {
		return nil, fmt.Errorf("unsupported schema version %d (max: %d)",
			state.SchemaVersion, CurrentSchemaVersion)
	}
	if state.SchemaVersion == 0 {
		state.SchemaVersion = CurrentSchemaVersion
	}

	return &state, nil
}

// Get implements Preferences.
func (p *FilePreferences) Get(key string) (string, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	state, err := p.load()
	if err != nil {
		return "", err
	}
	v, ok := state.Values[key]
	if !ok {
		return "", ErrNotFound
	}
	return v, nil
}

// UpdatedAt returns when key was last written.
func (p *FilePreferences) UpdatedAt(key string) (time.Time, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	state, err := p.load()
	if err != nil {
		return time.Time{}, false
	}
	ts, ok := state.UpdatedAt[key]
	if !ok || ts == 0 {
		return time.Time{}, false
	}
	return time.Unix(ts, 0), true
}

// Set implements Preferences. Other keys in the file are preserved.
func (p *FilePreferences) Set(key, value string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	state, err := p.load()
	if err != nil {
		return err
	}
	if state.Values == nil {
		state.Values = make(map[string]string)
	}
	if state.UpdatedAt == nil {
		state.UpdatedAt = make(map[string]int64)
	}
	state.Values[key] = value
	state.UpdatedAt[key] = time.Now().Unix()

	return p.save(state)
}

// save writes the state atomically via a temp file.
func (p *FilePreferences) save(state *stateFile) error {
	dir := filepath.Dir(p.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return err
	}

	tmpPath := p.path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0600); err != nil {
		return err
	}

	return os.Rename(tmpPath, p.path)
}
