// Package den implements the base-building state machine: a pool of typed
// construction slots, the rules for building into them, staffing them with
// characters, and summing the income of what stands in them.
//
// A Den is the sole owner and mutator of its slots. Every mutation holds the
// den's write lock from the first precondition check to the last write, so
// the slot pool, the per-building instance counter and the character index
// never disagree. Read-only queries share a read lock.
package den

import (
	"fmt"
	"sync"

	"github.com/cory-johannsen/goblinden/internal/game/building"
)

// OverrideFunc supplies an external unlock decision for a building. It
// receives the current per-building instance counts and returns ok=false to
// defer to the building's own rules.
type OverrideFunc func(buildingID string, counts map[string]int) (unlocked bool, ok bool)

// Den owns the slot pool of one player base.
type Den struct {
	mu      sync.RWMutex
	catalog *building.Catalog
	slots   []Slot
	counts  map[string]int // building ID -> instances standing in slots
	staff   map[string]int // character ID -> slot index

	// UnlockOverride, when set, is consulted before a definition's static
	// override flag. Set it before the den is shared between goroutines.
	UnlockOverride OverrideFunc
}

// New creates a den whose slots follow layout. All slots start empty and
// unassigned.
//
// Precondition: catalog must not be nil.
// Postcondition: Returns a Den with layout.Size() slots, or an error wrapping
// ErrInvalidState if the layout is invalid.
func New(catalog *building.Catalog, layout Layout) (*Den, error) {
	if err := layout.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidState, err)
	}
	return &Den{
		catalog: catalog,
		slots:   layout.expand(),
		counts:  make(map[string]int),
		staff:   make(map[string]int),
	}, nil
}

// Catalog returns the catalog the den builds from.
func (d *Den) Catalog() *building.Catalog {
	return d.catalog
}

// Len returns the number of slots.
func (d *Den) Len() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.slots)
}

// Slot returns a copy of the slot at index.
//
// Postcondition: returns an error wrapping ErrSlotNotFound iff index is out of range.
func (d *Den) Slot(index int) (Slot, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if err := d.checkIndex(index); err != nil {
		return Slot{}, err
	}
	return d.slots[index], nil
}

// Slots returns a snapshot copy of the slot pool in index order.
func (d *Den) Slots() []Slot {
	d.mu.RLock()
	defer d.mu.RUnlock()
	out := make([]Slot, len(d.slots))
	copy(out, d.slots)
	return out
}

// Count returns how many instances of buildingID stand in the den.
func (d *Den) Count(buildingID string) int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.counts[buildingID]
}

// Counts returns a copy of the per-building instance counter.
func (d *Den) Counts() map[string]int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.countsLocked()
}

// Built returns the set of building IDs with at least one instance.
func (d *Den) Built() map[string]bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.builtLocked()
}

// SlotOf returns the index of the slot characterID is assigned to.
func (d *Den) SlotOf(characterID string) (int, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	idx, ok := d.staff[characterID]
	return idx, ok
}

// Unlockable reports whether buildingID currently passes its unlock gate,
// resolving overrides the same way Build does. It does not check cost,
// category or limits.
//
// Postcondition: returns an error wrapping building.ErrNotFound for unknown IDs.
func (d *Den) Unlockable(buildingID string) (bool, error) {
	def, err := d.catalog.Get(buildingID)
	if err != nil {
		return false, err
	}
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.unlockableLocked(def), nil
}

func (d *Den) unlockableLocked(def *building.Definition) bool {
	return building.IsUnlockable(def, d.builtLocked(), d.overrideLocked(def))
}

// overrideLocked resolves the external override for def: the runtime hook
// first, then the definition's own flag.
func (d *Den) overrideLocked(def *building.Definition) *bool {
	if d.UnlockOverride != nil {
		if v, ok := d.UnlockOverride(def.ID, d.countsLocked()); ok {
			return &v
		}
	}
	return def.StaticOverride()
}

func (d *Den) builtLocked() map[string]bool {
	out := make(map[string]bool, len(d.counts))
	for id, n := range d.counts {
		if n > 0 {
			out[id] = true
		}
	}
	return out
}

func (d *Den) countsLocked() map[string]int {
	out := make(map[string]int, len(d.counts))
	for id, n := range d.counts {
		out[id] = n
	}
	return out
}

func (d *Den) checkIndex(index int) error {
	if index < 0 || index >= len(d.slots) {
		return fmt.Errorf("slot %d of %d: %w", index, len(d.slots), ErrSlotNotFound)
	}
	return nil
}
