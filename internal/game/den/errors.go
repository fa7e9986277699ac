package den

import "errors"

// Rejection reasons. Every mutating Den method returns an error wrapping
// exactly one of these on a failed precondition and leaves the den unchanged.
var (
	ErrSlotNotFound             = errors.New("slot does not exist")
	ErrSlotLocked               = errors.New("slot is locked")
	ErrSlotAlreadyUnlocked      = errors.New("slot is already unlocked")
	ErrSlotOccupied             = errors.New("slot already holds a building")
	ErrSlotEmpty                = errors.New("slot has no building to demolish")
	ErrUnknownBuilding          = errors.New("unknown building")
	ErrCategoryMismatch         = errors.New("building category does not match slot category")
	ErrMaxCountReached          = errors.New("building limit reached")
	ErrBuildingLocked           = errors.New("building is not unlocked")
	ErrInsufficientResources    = errors.New("insufficient resources")
	ErrAssignmentNotAllowed     = errors.New("slot category does not accept characters")
	ErrNoBuilding               = errors.New("slot has no building to staff")
	ErrSlotAlreadyAssigned      = errors.New("slot already has an assigned character")
	ErrCharacterAlreadyAssigned = errors.New("character is already assigned to another slot")
	ErrNotAssigned              = errors.New("slot has no assigned character")
	ErrInvalidCharacter         = errors.New("character id must not be empty")
)

// ErrInvalidState is returned by Restore and New when the supplied layout or
// snapshot violates a den invariant.
var ErrInvalidState = errors.New("invalid den state")
