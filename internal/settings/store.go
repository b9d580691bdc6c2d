// Package settings persists non-sensitive preferences (network, theme) in a
// plain JSON file next to the vault.
package settings

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/AlexZinkM/drachma-wallet/internal/model"
)

const fileName = "settings.json"

// Store reads and writes the settings record
type Store struct {
	path string
	mu   sync.Mutex
}

// NewStore creates a Store rooted at dir
func NewStore(dir string) *Store {
	return &Store{path: filepath.Join(dir, fileName)}
}

// Load returns saved settings, or defaults when none were saved
func (s *Store) Load() (model.Settings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return model.DefaultSettings(), nil
	}
	if err != nil {
		return model.Settings{}, fmt.Errorf("failed to read settings: %w", err)
	}

	settings := model.DefaultSettings()
	if err := json.Unmarshal(data, &settings); err != nil {
		return model.Settings{}, fmt.Errorf("failed to unmarshal settings: %w", err)
	}
	return settings, nil
}

// Save validates and writes settings
func (s *Store) Save(settings model.Settings) error {
	if _, ok := model.Networks[settings.Network]; !ok {
		return fmt.Errorf("unknown network %q", settings.Network)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("failed to create settings dir: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write settings: %w", err)
	}
	return nil
}
