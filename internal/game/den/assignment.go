package den

import "fmt"

// Assign binds characterID to the slot at index.
//
// Precondition: the slot is a breeding or resource slot holding a building,
// has no character, and characterID is not assigned anywhere in the den.
// Postcondition: on success SlotOf(characterID) == index; on error the den is unchanged.
func (d *Den) Assign(index int, characterID string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if characterID == "" {
		return fmt.Errorf("assign to slot %d: %w", index, ErrInvalidCharacter)
	}
	if err := d.checkIndex(index); err != nil {
		return fmt.Errorf("assign %q: %w", characterID, err)
	}
	slot := &d.slots[index]
	if !slot.Category.Assignable() {
		return fmt.Errorf("assign %q to %s slot %d: %w", characterID, slot.Category, index, ErrAssignmentNotAllowed)
	}
	if slot.Empty() {
		return fmt.Errorf("assign %q to slot %d: %w", characterID, index, ErrNoBuilding)
	}
	if slot.Assigned() {
		return fmt.Errorf("assign %q to slot %d (held by %q): %w", characterID, index, slot.CharacterID, ErrSlotAlreadyAssigned)
	}
	if other, ok := d.staff[characterID]; ok {
		return fmt.Errorf("assign %q to slot %d (already in slot %d): %w", characterID, index, other, ErrCharacterAlreadyAssigned)
	}

	slot.CharacterID = characterID
	d.staff[characterID] = index
	return nil
}

// Unassign clears the character assigned to the slot at index.
//
// Postcondition: on success the slot is unassigned; returns ErrNotAssigned
// if it had no character.
func (d *Den) Unassign(index int) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if err := d.checkIndex(index); err != nil {
		return fmt.Errorf("unassign: %w", err)
	}
	slot := &d.slots[index]
	if !slot.Assigned() {
		return fmt.Errorf("unassign slot %d: %w", index, ErrNotAssigned)
	}
	delete(d.staff, slot.CharacterID)
	slot.CharacterID = ""
	return nil
}
