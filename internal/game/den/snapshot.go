package den

import (
	"fmt"

	"github.com/cory-johannsen/goblinden/internal/game/building"
	"github.com/cory-johannsen/goblinden/internal/game/economy"
)

// SlotState is the persistable form of a Slot. Buildings are referenced by ID.
type SlotState struct {
	Category    building.Category `json:"category"`
	Unlocked    bool              `json:"unlocked"`
	BuildingID  string            `json:"building_id,omitempty"`
	CharacterID string            `json:"character_id,omitempty"`
	UnlockCost  economy.Amount    `json:"unlock_cost"`
}

// Snapshot is the persistable form of a Den.
type Snapshot struct {
	Slots []SlotState `json:"slots"`
}

// Snapshot captures the slot pool.
//
// Postcondition: Restore(d.Catalog(), d.Snapshot()) yields an equivalent den.
func (d *Den) Snapshot() Snapshot {
	d.mu.RLock()
	defer d.mu.RUnlock()
	out := Snapshot{Slots: make([]SlotState, len(d.slots))}
	for i, s := range d.slots {
		out.Slots[i] = SlotState{
			Category:    s.Category,
			Unlocked:    s.Unlocked,
			BuildingID:  s.BuildingID(),
			CharacterID: s.CharacterID,
			UnlockCost:  s.UnlockCost,
		}
	}
	return out
}

// Restore rebuilds a Den from snap, resolving building IDs against catalog and
// re-deriving the instance counter and character index.
//
// Precondition: catalog must not be nil.
// Postcondition: returns an error wrapping ErrInvalidState if snap violates
// any den invariant: unknown category or building, building in a locked or
// mismatched slot, assignment to a locked, empty or non-assignable slot,
// a character in two slots, or more instances than a building's MaxCount.
func Restore(catalog *building.Catalog, snap Snapshot) (*Den, error) {
	d := &Den{
		catalog: catalog,
		slots:   make([]Slot, len(snap.Slots)),
		counts:  make(map[string]int),
		staff:   make(map[string]int),
	}
	for i, st := range snap.Slots {
		if !st.Category.Valid() {
			return nil, fmt.Errorf("%w: slot %d: invalid category", ErrInvalidState, i)
		}
		if err := st.UnlockCost.Validate(); err != nil {
			return nil, fmt.Errorf("%w: slot %d: unlock cost: %w", ErrInvalidState, i, err)
		}
		s := Slot{Category: st.Category, Unlocked: st.Unlocked, UnlockCost: st.UnlockCost}
		if st.BuildingID != "" {
			def, ok := catalog.Lookup(st.BuildingID)
			if !ok {
				return nil, fmt.Errorf("%w: slot %d: unknown building %q", ErrInvalidState, i, st.BuildingID)
			}
			if !st.Unlocked {
				return nil, fmt.Errorf("%w: slot %d: locked slot holds %q", ErrInvalidState, i, def.ID)
			}
			if def.Category != st.Category {
				return nil, fmt.Errorf("%w: slot %d: %s building %q in %s slot", ErrInvalidState, i, def.Category, def.ID, st.Category)
			}
			d.counts[def.ID]++
			if def.Limited() && d.counts[def.ID] > def.MaxCount {
				return nil, fmt.Errorf("%w: %q exceeds max count %d", ErrInvalidState, def.ID, def.MaxCount)
			}
			s.Building = def
		}
		if st.CharacterID != "" {
			if s.Building == nil || !st.Category.Assignable() {
				return nil, fmt.Errorf("%w: slot %d: character %q assigned to unstaffable slot", ErrInvalidState, i, st.CharacterID)
			}
			if other, dup := d.staff[st.CharacterID]; dup {
				return nil, fmt.Errorf("%w: character %q assigned to slots %d and %d", ErrInvalidState, st.CharacterID, other, i)
			}
			d.staff[st.CharacterID] = i
			s.CharacterID = st.CharacterID
		}
		d.slots[i] = s
	}
	return d, nil
}
