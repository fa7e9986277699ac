package den

import (
	"fmt"

	"github.com/cory-johannsen/goblinden/internal/game/building"
	"github.com/cory-johannsen/goblinden/internal/game/economy"
)

// BuildResult reports a completed construction.
type BuildResult struct {
	// Slot is the slot after the building was placed.
	Slot Slot
	// Spent is the cost the caller must debit from its ledger.
	Spent economy.Amount
}

// Build places buildingID into the slot at index. The den never holds
// resources: available is what the caller can pay, and the returned Spent is
// what the caller must debit.
//
// Checks run in a fixed order and the first failure is returned:
// locked (or missing) slot, occupied slot, unknown building, category
// mismatch, instance limit, unlock gate, cost.
//
// Postcondition: on success the slot holds the building and Count(buildingID)
// increased by one; on error the den is unchanged.
func (d *Den) Build(index int, buildingID string, availableGold, availableFood int) (BuildResult, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	def, err := d.checkBuildLocked(index, buildingID, economy.Amount{Gold: availableGold, Food: availableFood})
	if err != nil {
		return BuildResult{}, err
	}

	d.slots[index].Building = def
	d.counts[def.ID]++
	return BuildResult{Slot: d.slots[index], Spent: def.Cost}, nil
}

// checkBuildLocked runs every Build precondition without mutating.
func (d *Den) checkBuildLocked(index int, buildingID string, available economy.Amount) (*building.Definition, error) {
	if err := d.checkIndex(index); err != nil {
		return nil, fmt.Errorf("build %q: %w: %w", buildingID, ErrSlotLocked, err)
	}
	slot := d.slots[index]
	if !slot.Unlocked {
		return nil, fmt.Errorf("build %q in slot %d: %w", buildingID, index, ErrSlotLocked)
	}
	if !slot.Empty() {
		return nil, fmt.Errorf("build %q in slot %d (holds %q): %w", buildingID, index, slot.BuildingID(), ErrSlotOccupied)
	}
	def, ok := d.catalog.Lookup(buildingID)
	if !ok {
		return nil, fmt.Errorf("build %q in slot %d: %w", buildingID, index, ErrUnknownBuilding)
	}
	if def.Category != slot.Category {
		return nil, fmt.Errorf("build %q (%s) in %s slot %d: %w", buildingID, def.Category, slot.Category, index, ErrCategoryMismatch)
	}
	if def.Limited() && d.counts[def.ID] >= def.MaxCount {
		return nil, fmt.Errorf("build %q: %d of %d built: %w", buildingID, d.counts[def.ID], def.MaxCount, ErrMaxCountReached)
	}
	if !d.unlockableLocked(def) {
		return nil, fmt.Errorf("build %q (missing %v): %w", buildingID, building.Missing(def, d.builtLocked()), ErrBuildingLocked)
	}
	if !available.Covers(def.Cost) {
		return nil, fmt.Errorf("build %q costs %s, have %s: %w", buildingID, def.Cost, available, ErrInsufficientResources)
	}
	return def, nil
}

// Candidates returns the catalog entries Build would currently accept for the
// slot at index with the given resources, in catalog order. It does not
// mutate the den.
//
// Postcondition: returns an error wrapping ErrSlotNotFound iff index is out of range.
func (d *Den) Candidates(index int, availableGold, availableFood int) ([]*building.Definition, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if err := d.checkIndex(index); err != nil {
		return nil, err
	}
	available := economy.Amount{Gold: availableGold, Food: availableFood}
	var out []*building.Definition
	for _, def := range d.catalog.ByCategory(d.slots[index].Category) {
		if _, err := d.checkBuildLocked(index, def.ID, available); err == nil {
			out = append(out, def)
		}
	}
	return out, nil
}

// Demolish removes the building in the slot at index together with any
// assigned character. No cost is refunded.
//
// Postcondition: on success the slot is empty and unassigned and
// Count(id) decreased by one; returns ErrSlotEmpty if nothing was built.
func (d *Den) Demolish(index int) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if err := d.checkIndex(index); err != nil {
		return fmt.Errorf("demolish: %w", err)
	}
	slot := &d.slots[index]
	if slot.Empty() {
		return fmt.Errorf("demolish slot %d: %w", index, ErrSlotEmpty)
	}

	id := slot.Building.ID
	if slot.Assigned() {
		delete(d.staff, slot.CharacterID)
		slot.CharacterID = ""
	}
	slot.Building = nil
	d.counts[id]--
	if d.counts[id] <= 0 {
		delete(d.counts, id)
	}
	return nil
}

// UnlockSlot opens the locked slot at index. Like Build, it only reports the
// slot's unlock cost; the caller debits it.
//
// Postcondition: on success the slot is unlocked and the returned amount is
// its UnlockCost; on error the den is unchanged.
func (d *Den) UnlockSlot(index int, availableGold, availableFood int) (economy.Amount, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if err := d.checkIndex(index); err != nil {
		return economy.Amount{}, fmt.Errorf("unlock: %w", err)
	}
	slot := &d.slots[index]
	if slot.Unlocked {
		return economy.Amount{}, fmt.Errorf("unlock slot %d: %w", index, ErrSlotAlreadyUnlocked)
	}
	available := economy.Amount{Gold: availableGold, Food: availableFood}
	if !available.Covers(slot.UnlockCost) {
		return economy.Amount{}, fmt.Errorf("unlock slot %d costs %s, have %s: %w", index, slot.UnlockCost, available, ErrInsufficientResources)
	}
	slot.Unlocked = true
	return slot.UnlockCost, nil
}
