package den

import "github.com/cory-johannsen/goblinden/internal/game/economy"

// Collect sums the declared income of every building standing in the den.
// Income belongs to the structure, so unassigned slots still count. Collect
// does not mutate the den; the caller decides when a turn's income is
// credited.
func (d *Den) Collect() economy.Amount {
	d.mu.RLock()
	defer d.mu.RUnlock()
	var total economy.Amount
	for _, s := range d.slots {
		if s.Building != nil {
			total = total.Add(s.Building.Income)
		}
	}
	return total
}
