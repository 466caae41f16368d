// Package presets persists authored effect configurations through gdata's
// cross-platform storage, so tools and games can save and recall named
// effects without shipping loose YAML files.
package presets

import (
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"

	"github.com/gonewx/sparks/pkg/config"
)

// Storage layout: one gdata object holding one property per effect name.
const presetObject = "effects"

// Store saves and loads named effect configurations. The payload is the
// same YAML the config package loads from files, stored through a gdata
// manager.
//
// A nil manager puts the store in degraded mode: saves become logged no-ops
// and loads report that nothing is stored. This mirrors how the rest of the
// stack treats unavailable platform storage as non-fatal.
type Store struct {
	manager *gdata.Manager
}

// Open creates a store backed by the platform data directory for appName.
func Open(appName string) (*Store, error) {
	manager, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return nil, fmt.Errorf("failed to open preset storage: %w", err)
	}
	return &Store{manager: manager}, nil
}

// NewStore wraps an existing gdata manager, which may be nil for degraded
// mode.
func NewStore(manager *gdata.Manager) *Store {
	return &Store{manager: manager}
}

// Save validates and persists the effect under its own name.
func (s *Store) Save(cfg *config.EffectConfig) error {
	if cfg.Name == "" {
		return fmt.Errorf("preset effect needs a name")
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	if s.manager == nil {
		log.Printf("[PresetStore] Warning: no storage available, preset %q not saved", cfg.Name)
		return nil
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal preset %q: %w", cfg.Name, err)
	}
	if err := s.manager.SaveObjectProp(presetObject, cfg.Name, data); err != nil {
		return fmt.Errorf("failed to save preset %q: %w", cfg.Name, err)
	}
	return nil
}

// Load retrieves and validates the effect stored under name.
func (s *Store) Load(name string) (*config.EffectConfig, error) {
	if s.manager == nil {
		return nil, fmt.Errorf("preset %q: no storage available", name)
	}
	if !s.manager.ObjectPropExists(presetObject, name) {
		return nil, fmt.Errorf("preset %q not found", name)
	}

	data, err := s.manager.LoadObjectProp(presetObject, name)
	if err != nil {
		return nil, fmt.Errorf("failed to load preset %q: %w", name, err)
	}

	cfg, err := config.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("preset %q: %w", name, err)
	}
	return cfg, nil
}

// Exists reports whether a preset is stored under name.
func (s *Store) Exists(name string) bool {
	return s.manager != nil && s.manager.ObjectPropExists(presetObject, name)
}
