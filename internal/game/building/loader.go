package building

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/cory-johannsen/goblinden/internal/game/economy"
)

// definitionFile is the on-disk shape of a catalog file.
type definitionFile struct {
	Buildings []definitionYAML `yaml:"buildings"`
}

type unlockYAML struct {
	RequiredBuildings []string `yaml:"required_buildings"`
	IsUnlocked        *bool    `yaml:"is_unlocked"`
}

type definitionYAML struct {
	ID              string          `yaml:"id"`
	Name            string          `yaml:"name"`
	Icon            string          `yaml:"icon"`
	Description     string          `yaml:"description"`
	Cost            economy.Amount  `yaml:"cost"`
	Category        string          `yaml:"category"`
	Income          *economy.Amount `yaml:"income"`
	Effects         []Effect        `yaml:"effects"`
	UnlockCondition *unlockYAML     `yaml:"unlock_condition"`
	MaxCount        *int            `yaml:"max_count"`
}

// resolve converts the raw YAML form into a Definition, applying defaults for
// every optional field.
func (y definitionYAML) resolve() (*Definition, error) {
	cat, err := ParseCategory(y.Category)
	if err != nil {
		return nil, fmt.Errorf("building %q: %w", y.ID, err)
	}
	d := &Definition{
		ID:          y.ID,
		Name:        y.Name,
		Icon:        y.Icon,
		Description: y.Description,
		Cost:        y.Cost,
		Category:    cat,
		Effects:     y.Effects,
	}
	if y.Income != nil {
		d.Income = *y.Income
	}
	if y.MaxCount != nil {
		if *y.MaxCount < 1 {
			return nil, fmt.Errorf("building %q: max_count must be >= 1 when set, got %d", y.ID, *y.MaxCount)
		}
		d.MaxCount = *y.MaxCount
	}
	if u := y.UnlockCondition; u != nil && (len(u.RequiredBuildings) > 0 || u.IsUnlocked != nil) {
		d.Unlock = &UnlockCondition{
			RequiredBuildings: u.RequiredBuildings,
			Override:          u.IsUnlocked,
		}
	}
	return d, nil
}

// DecodeDefinitions parses one catalog document from r. Unknown fields are
// rejected.
//
// Postcondition: returns the definitions in document order, each passing Validate.
func DecodeDefinitions(r io.Reader) ([]*Definition, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var f definitionFile
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, err
	}
	out := make([]*Definition, 0, len(f.Buildings))
	for _, raw := range f.Buildings {
		d, err := raw.resolve()
		if err != nil {
			return nil, err
		}
		if err := d.Validate(); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, nil
}

// LoadDefinitions reads every *.yaml and *.yml file in dir in lexicographic
// order and returns the concatenated definitions.
//
// Precondition: dir is a readable directory path.
// Postcondition: returns all definitions or the first encountered error.
func LoadDefinitions(dir string) ([]*Definition, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("LoadDefinitions: cannot read directory %q: %w", dir, err)
	}
	var files []string
	for _, entry := range entries {
		ext := filepath.Ext(entry.Name())
		if entry.IsDir() || (ext != ".yaml" && ext != ".yml") {
			continue
		}
		files = append(files, filepath.Join(dir, entry.Name()))
	}
	sort.Strings(files)

	var defs []*Definition
	for _, path := range files {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("LoadDefinitions: cannot read file %q: %w", path, err)
		}
		parsed, err := DecodeDefinitions(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("LoadDefinitions: invalid catalog file %q: %w", path, err)
		}
		defs = append(defs, parsed...)
	}
	return defs, nil
}

// LoadCatalog loads all definitions in dir and builds a Catalog from them.
//
// Postcondition: returns a Catalog with referential integrity verified, or an error.
func LoadCatalog(dir string) (*Catalog, error) {
	defs, err := LoadDefinitions(dir)
	if err != nil {
		return nil, err
	}
	return NewCatalog(defs)
}
