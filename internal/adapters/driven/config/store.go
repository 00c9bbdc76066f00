// Package config is a file-based store for user-level defaults using TOML.
// Values live in a TOML file within the qc2md config directory and act as
// fallbacks for flags the user did not set on the command line.
package config

import (
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// Store is a TOML-backed key/value store.
type Store struct {
	filePath string
	data     map[string]any
}

// NewStore creates a TOML-based defaults store.
// If configDir is empty, defaults to ~/.qc2md/config.toml.
func NewStore(configDir string) (*Store, error) {
	if configDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		configDir = filepath.Join(home, ".qc2md")
	}

	s := &Store{
		filePath: filepath.Join(configDir, "config.toml"),
		data:     make(map[string]any),
	}

	// A missing file just means no saved defaults.
	if err := s.Load(); err != nil && !os.IsNotExist(err) {
		return nil, err
	}

	return s, nil
}

// Load reads the config file into memory.
func (s *Store) Load() error {
	data, err := os.ReadFile(s.filePath)
	if err != nil {
		return err
	}

	values := make(map[string]any)
	if err := toml.Unmarshal(data, &values); err != nil {
		return err
	}
	s.data = values
	return nil
}

// Save writes the in-memory values back to the config file.
func (s *Store) Save() error {
	if err := os.MkdirAll(filepath.Dir(s.filePath), 0700); err != nil {
		return err
	}

	data, err := toml.Marshal(s.data)
	if err != nil {
		return err
	}
	return os.WriteFile(s.filePath, data, 0600)
}

// Set stores a value under key.
func (s *Store) Set(key string, value any) {
	s.data[key] = value
}

// Get retrieves a value by key.
func (s *Store) Get(key string) (any, bool) {
	val, ok := s.data[key]
	return val, ok
}

// GetString retrieves a string value. Missing or mistyped keys yield "".
func (s *Store) GetString(key string) string {
	val, ok := s.Get(key)
	if !ok {
		return ""
	}

	str, ok := val.(string)
	if !ok {
		return ""
	}
	return str
}

// GetBool retrieves a boolean value and whether it was present.
func (s *Store) GetBool(key string) (bool, bool) {
	val, ok := s.Get(key)
	if !ok {
		return false, false
	}

	b, ok := val.(bool)
	if !ok {
		return false, false
	}
	return b, true
}
