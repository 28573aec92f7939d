// Package names stores user-chosen display names for boot entries,
// keyed by the serialized menu path so they survive re-parses as long
// as the entry keeps its position.
package names

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/grublist/grublist-cli/pkg/menu"
)

// DefaultPath is the stock location of the overlay file.
const DefaultPath = "/etc/grublist-custom-names.json"

// Store is the custom-name overlay. Names maps serialized paths
// ("1>0") to display names.
type Store struct {
	Path  string            `json:"-"`
	Names map[string]string `json:"names"`
}

// Load reads the overlay file. A missing or corrupt file yields an
// empty store; the overlay is cosmetic and never blocks startup.
func Load(path string) *Store {
	s := &Store{Path: path, Names: make(map[string]string)}
	content, err := os.ReadFile(path)
	if err != nil {
		return s
	}
	var loaded Store
	if err := json.Unmarshal(content, &loaded); err != nil || loaded.Names == nil {
		return s
	}
	loaded.Path = path
	return &loaded
}

// Save writes the overlay file.
func (s *Store) Save() error {
	content, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode custom names: %w", err)
	}
	if err := os.WriteFile(s.Path, content, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", s.Path, err)
	}
	return nil
}

// Get returns the override for a path, if one is set.
func (s *Store) Get(p menu.Path) (string, bool) {
	name, ok := s.Names[p.String()]
	return name, ok
}

// Set stores an override for a path. An empty name removes the
// override.
func (s *Store) Set(p menu.Path, name string) {
	key := p.String()
	if name == "" {
		delete(s.Names, key)
		return
	}
	s.Names[key] = name
}
