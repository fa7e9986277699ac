package den

import (
	"github.com/cory-johannsen/goblinden/internal/game/building"
	"github.com/cory-johannsen/goblinden/internal/game/economy"
)

// Slot is one construction site in the den.
//
// Invariants: if Building is non-nil its Category equals the slot's Category;
// a locked slot has neither a Building nor a CharacterID.
type Slot struct {
	// Category is fixed for the lifetime of the slot.
	Category building.Category
	// Building is the structure standing in the slot, or nil.
	Building *building.Definition
	// Unlocked is false until some game event opens the slot.
	Unlocked bool
	// CharacterID is the assigned character, or "" when unassigned.
	CharacterID string
	// UnlockCost is what UnlockSlot charges to open a locked slot.
	UnlockCost economy.Amount
}

// Empty reports whether no building stands in the slot.
func (s Slot) Empty() bool {
	return s.Building == nil
}

// Assigned reports whether a character is assigned to the slot.
func (s Slot) Assigned() bool {
	return s.CharacterID != ""
}

// BuildingID returns the ID of the building in the slot, or "".
func (s Slot) BuildingID() string {
	if s.Building == nil {
		return ""
	}
	return s.Building.ID
}
