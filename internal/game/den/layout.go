package den

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/cory-johannsen/goblinden/internal/game/building"
	"github.com/cory-johannsen/goblinden/internal/game/economy"
)

// SlotGroup declares Count identical slots.
type SlotGroup struct {
	Category   building.Category `yaml:"category"`
	Count      int               `yaml:"count"`
	Unlocked   bool              `yaml:"unlocked"`
	UnlockCost economy.Amount    `yaml:"unlock_cost"`
}

// Layout is the initial slot configuration of a den. Slot indices follow the
// order of the groups, expanded by Count.
type Layout struct {
	Slots []SlotGroup `yaml:"slots"`
}

// Validate checks every group.
//
// Postcondition: returns nil iff each group has a valid category, a positive
// count and a non-negative unlock cost.
func (l Layout) Validate() error {
	var errs []error
	for i, g := range l.Slots {
		if !g.Category.Valid() {
			errs = append(errs, fmt.Errorf("slots[%d]: invalid category", i))
		}
		if g.Count < 1 {
			errs = append(errs, fmt.Errorf("slots[%d]: count must be >= 1, got %d", i, g.Count))
		}
		if err := g.UnlockCost.Validate(); err != nil {
			errs = append(errs, fmt.Errorf("slots[%d]: unlock_cost: %w", i, err))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("layout validation failed: %w", errors.Join(errs...))
	}
	return nil
}

// Size returns the total number of slots the layout expands to.
func (l Layout) Size() int {
	n := 0
	for _, g := range l.Slots {
		n += g.Count
	}
	return n
}

// expand returns one Slot per declared slot, all empty.
func (l Layout) expand() []Slot {
	out := make([]Slot, 0, l.Size())
	for _, g := range l.Slots {
		for i := 0; i < g.Count; i++ {
			out = append(out, Slot{
				Category:   g.Category,
				Unlocked:   g.Unlocked,
				UnlockCost: g.UnlockCost,
			})
		}
	}
	return out
}

// ParseLayout decodes a layout document. A group without a count declares
// one slot. Unknown fields are rejected.
//
// Postcondition: returns a validated Layout or an error.
func ParseLayout(data []byte) (Layout, error) {
	var raw struct {
		Slots []struct {
			Category   building.Category `yaml:"category"`
			Count      *int              `yaml:"count"`
			Unlocked   bool              `yaml:"unlocked"`
			UnlockCost economy.Amount    `yaml:"unlock_cost"`
		} `yaml:"slots"`
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&raw); err != nil {
		return Layout{}, fmt.Errorf("parsing layout: %w", err)
	}
	var l Layout
	for _, g := range raw.Slots {
		count := 1
		if g.Count != nil {
			count = *g.Count
		}
		l.Slots = append(l.Slots, SlotGroup{
			Category:   g.Category,
			Count:      count,
			Unlocked:   g.Unlocked,
			UnlockCost: g.UnlockCost,
		})
	}
	if err := l.Validate(); err != nil {
		return Layout{}, err
	}
	return l, nil
}

// LoadLayout reads and parses the layout file at path.
//
// Precondition: path is a readable YAML file.
func LoadLayout(path string) (Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Layout{}, fmt.Errorf("reading layout %q: %w", path, err)
	}
	l, err := ParseLayout(data)
	if err != nil {
		return Layout{}, fmt.Errorf("layout %q: %w", path, err)
	}
	return l, nil
}
