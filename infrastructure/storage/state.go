package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"e2e_automation/domain/interfaces"
)

type stateStore struct {
	path string
}

// NewStateStore - creates storage-state persistence rooted at path. Parent
// directories are created on first save.
func NewStateStore(path string) interfaces.StateStore {
	return &stateStore{path: path}
}

// DefaultStatePath - returns the conventional snapshot location under the
// user's home directory.
func DefaultStatePath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = "."
	}
	return filepath.Join(homeDir, ".e2e_automation", "state.json")
}

// SaveState - writes the snapshot file
func (s *stateStore) SaveState(state []byte) error {
	if !json.Valid(state) {
		return fmt.Errorf("refusing to save invalid storage state")
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("failed to create state directory: %w", err)
	}
	return os.WriteFile(s.path, state, 0644)
}

// LoadState - reads the snapshot file; a missing file is not an error
func (s *stateStore) LoadState() ([]byte, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	if !json.Valid(data) {
		return nil, fmt.Errorf("storage state file %s is not valid JSON", s.path)
	}
	return data, nil
}

// Clear - removes the snapshot file
func (s *stateStore) Clear() error {
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
