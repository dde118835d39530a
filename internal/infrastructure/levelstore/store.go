// Package levelstore persists levels painted by the editor.
//
// Two backends are provided: FileStore keeps one JSON file per level in a
// directory, DataStore keeps them in the per-user application data
// directory. Both are served over HTTP by Handler and FileStore
// directories can be watched for changes with Watcher.
package levelstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/younwookim/sunnyrun/internal/infrastructure/config"
)

var (
	// ErrNotFound is returned when no level is stored under a name
	ErrNotFound = errors.New("level not found")
	// ErrInvalidName is returned for names that cannot be used as a key
	ErrInvalidName = errors.New("invalid level name")
)

// Store loads and saves levels by name
type Store interface {
	Load(name string) (*config.LevelConfig, error)
	Save(name string, level *config.LevelConfig) error
	List() ([]string, error)
}

// ValidateName rejects empty names and names that would escape the store
func ValidateName(name string) error {
	if name == "" || name == "." || name == ".." || strings.ContainsAny(name, `/\:`) {
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	return nil
}

func encode(level *config.LevelConfig) ([]byte, error) {
	if level == nil {
		return nil, fmt.Errorf("%w: nil level", config.ErrInvalidLevel)
	}
	if err := level.Validate(); err != nil {
		return nil, err
	}
	data, err := json.MarshalIndent(level, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode level: %w", err)
	}
	return data, nil
}
