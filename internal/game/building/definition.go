// Package building defines the static building catalog of a den and the
// dependency rules that gate when a building may be constructed.
package building

import (
	"errors"
	"fmt"

	"github.com/cory-johannsen/goblinden/internal/game/economy"
)

// Effect is a presentational note about what a building does. It carries no
// behaviour; the presentation layer renders it.
type Effect struct {
	Type        string `yaml:"type" json:"type"`
	Icon        string `yaml:"icon" json:"icon"`
	Description string `yaml:"description" json:"description"`
}

// UnlockCondition gates construction of a building.
type UnlockCondition struct {
	// RequiredBuildings must all be built somewhere in the den.
	RequiredBuildings []string `json:"required_buildings,omitempty"`
	// Override, when non-nil, replaces the requirement check entirely.
	// It is set by logic outside the den (narrative triggers, scripts).
	Override *bool `json:"override,omitempty"`
}

// Definition is the immutable description of a building type.
//
// Optional source fields are resolved when the definition is loaded:
// a missing income is zero, a missing unlock condition is nil, and a
// missing max count is 0 which means unlimited.
type Definition struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Icon        string           `json:"icon"`
	Description string           `json:"description"`
	Cost        economy.Amount   `json:"cost"`
	Category    Category         `json:"category"`
	Income      economy.Amount   `json:"income"`
	Effects     []Effect         `json:"effects,omitempty"`
	Unlock      *UnlockCondition `json:"unlock,omitempty"`
	MaxCount    int              `json:"max_count,omitempty"`
}

// Clone returns a deep copy of d.
func (d *Definition) Clone() *Definition {
	out := *d
	if d.Effects != nil {
		out.Effects = append([]Effect(nil), d.Effects...)
	}
	if d.Unlock != nil {
		u := UnlockCondition{RequiredBuildings: d.Requires()}
		if d.Unlock.Override != nil {
			v := *d.Unlock.Override
			u.Override = &v
		}
		out.Unlock = &u
	}
	return &out
}

// Limited reports whether the definition caps the number of instances per den.
func (d *Definition) Limited() bool {
	return d.MaxCount > 0
}

// Requires returns the building IDs that must exist before d can be built.
//
// Postcondition: returned slice is a copy.
func (d *Definition) Requires() []string {
	if d.Unlock == nil || len(d.Unlock.RequiredBuildings) == 0 {
		return nil
	}
	out := make([]string, len(d.Unlock.RequiredBuildings))
	copy(out, d.Unlock.RequiredBuildings)
	return out
}

// StaticOverride returns the definition's own override flag, or nil.
func (d *Definition) StaticOverride() *bool {
	if d.Unlock == nil {
		return nil
	}
	return d.Unlock.Override
}

// Validate checks the definition's local invariants. Cross-definition checks
// (duplicates, dangling requirements) belong to NewCatalog.
//
// Precondition: d is non-nil.
// Postcondition: returns nil iff all fields are valid.
func (d *Definition) Validate() error {
	var errs []error
	if d.ID == "" {
		errs = append(errs, errors.New("ID must not be empty"))
	}
	if d.Name == "" {
		errs = append(errs, errors.New("Name must not be empty"))
	}
	if !d.Category.Valid() {
		errs = append(errs, fmt.Errorf("Category is invalid: %s", d.Category))
	}
	if err := d.Cost.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("Cost: %w", err))
	}
	if err := d.Income.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("Income: %w", err))
	}
	if d.MaxCount < 0 {
		errs = append(errs, fmt.Errorf("MaxCount must be >= 0, got %d", d.MaxCount))
	}
	for _, req := range d.Requires() {
		if req == "" {
			errs = append(errs, errors.New("RequiredBuildings must not contain empty IDs"))
		}
		if req == d.ID {
			errs = append(errs, errors.New("RequiredBuildings must not reference the building itself"))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("building %q: %w", d.ID, errors.Join(errs...))
	}
	return nil
}
