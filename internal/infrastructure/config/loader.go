package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"

	"gopkg.in/yaml.v3"
)

// GameConfig holds all loaded configurations
type GameConfig struct {
	Physics  *PhysicsConfig
	Entities *EntitiesConfig
}

// Loader loads game configuration from YAML or JSON files using fs.FS interface
type Loader struct {
	fsys     fs.FS
	basePath string
}

// NewLoader creates a new config loader from filesystem path
func NewLoader(basePath string) *Loader {
	return &Loader{
		fsys:     os.DirFS(basePath),
		basePath: basePath,
	}
}

// NewFSLoader creates a new config loader from fs.FS
func NewFSLoader(fsys fs.FS, basePath string) *Loader {
	return &Loader{
		fsys:     fsys,
		basePath: basePath,
	}
}

// BasePath returns the path the loader was created with
func (l *Loader) BasePath() string {
	return l.basePath
}

// LoadPhysics loads physics.yaml (or physics.json)
func (l *Loader) LoadPhysics() (*PhysicsConfig, error) {
	var cfg PhysicsConfig
	if err := l.decode("physics", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadEntities loads entities.yaml (or entities.json)
func (l *Loader) LoadEntities() (*EntitiesConfig, error) {
	var cfg EntitiesConfig
	if err := l.decode("entities", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadLevel loads levels/<name>.json
func (l *Loader) LoadLevel(name string) (*LevelConfig, error) {
	data, err := fs.ReadFile(l.fsys, LevelPath(name))
	if err != nil {
		return nil, fmt.Errorf("failed to read level %s: %w", name, err)
	}

	lvl, err := ParseLevel(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse level %s: %w", name, err)
	}
	if lvl.ID == "" {
		lvl.ID = name
	}
	return lvl, nil
}

// LoadAll loads all base configurations (physics, entities)
func (l *Loader) LoadAll() (*GameConfig, error) {
	physics, err := l.LoadPhysics()
	if err != nil {
		return nil, err
	}

	entities, err := l.LoadEntities()
	if err != nil {
		return nil, err
	}

	return &GameConfig{
		Physics:  physics,
		Entities: entities,
	}, nil
}

// LevelPath returns the path of a level file relative to the config root
func LevelPath(name string) string {
	return path.Join("levels", name+".json")
}

// decode reads name.yaml, name.yml or name.json, whichever exists first
func (l *Loader) decode(name string, out any) error {
	for _, ext := range []string{".yaml", ".yml", ".json"} {
		file := name + ext
		data, err := fs.ReadFile(l.fsys, file)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", file, err)
		}

		if ext == ".json" {
			err = json.Unmarshal(data, out)
		} else {
			err = yaml.Unmarshal(data, out)
		}
		if err != nil {
			return fmt.Errorf("failed to parse %s: %w", file, err)
		}
		return nil
	}
	return fmt.Errorf("failed to read %s: %w", name, fs.ErrNotExist)
}
