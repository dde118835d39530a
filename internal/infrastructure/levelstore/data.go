package levelstore

import (
	"encoding/json"
	"fmt"
	"log"
	"sort"

	"github.com/quasilyte/gdata"

	"github.com/younwookim/sunnyrun/internal/infrastructure/config"
)

const indexKey = "levels-index"

// itemStore is the subset of gdata.Manager the store needs
type itemStore interface {
	LoadItem(itemKey string) ([]byte, error)
	SaveItem(itemKey string, data []byte) error
}

// DataStore keeps levels in the per-user data directory of the application.
// An index item tracks the stored names.
type DataStore struct {
	items itemStore
}

// NewDataStore opens the data directory for appName
func NewDataStore(appName string) (*DataStore, error) {
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return nil, fmt.Errorf("failed to open data dir: %w", err)
	}
	return &DataStore{items: m}, nil
}

func itemKey(name string) string {
	return "level-" + name
}

// Load reads a level item
func (s *DataStore) Load(name string) (*config.LevelConfig, error) {
	if err := ValidateName(name); err != nil {
		return nil, err
	}

	data, err := s.items.LoadItem(itemKey(name))
	if err != nil {
		return nil, fmt.Errorf("failed to load level %s: %w", name, err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
	}

	lvl, err := config.ParseLevel(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse level %s: %w", name, err)
	}
	if lvl.ID == "" {
		lvl.ID = name
	}
	return lvl, nil
}

// Save writes a level item and records its name in the index
func (s *DataStore) Save(name string, level *config.LevelConfig) error {
	if err := ValidateName(name); err != nil {
		return err
	}
	data, err := encode(level)
	if err != nil {
		return err
	}
	if err := s.items.SaveItem(itemKey(name), data); err != nil {
		return fmt.Errorf("failed to save level %s: %w", name, err)
	}

	names, err := s.List()
	if err != nil {
		return err
	}
	for _, n := range names {
		if n == name {
			return nil
		}
	}
	names = append(names, name)
	sort.Strings(names)

	index, err := json.Marshal(names)
	if err != nil {
		return fmt.Errorf("failed to encode level index: %w", err)
	}
	if err := s.items.SaveItem(indexKey, index); err != nil {
		return fmt.Errorf("failed to save level index: %w", err)
	}
	return nil
}

// List returns the names recorded in the index
func (s *DataStore) List() ([]string, error) {
	data, err := s.items.LoadItem(indexKey)
	if err != nil {
		return nil, fmt.Errorf("failed to load level index: %w", err)
	}
	if len(data) == 0 {
		return []string{}, nil
	}

	var names []string
	if err := json.Unmarshal(data, &names); err != nil {
		log.Printf("Warning: Could not parse level index, starting over: %v", err)
		return []string{}, nil
	}
	return names, nil
}
