package denserver

import (
	"github.com/cory-johannsen/goblinden/internal/game/economy"
)

// SlotView is a read-only copy of one slot.
type SlotView struct {
	Index       int
	Category    string
	Unlocked    bool
	BuildingID  string
	CharacterID string
	UnlockCost  economy.Amount
}

// View is a consistent read-only copy of a den and its ledger.
type View struct {
	ID      string
	Turn    int64
	Balance economy.Amount
	Income  economy.Amount
	Slots   []SlotView
}

// viewOf copies e. e.mu must be held.
func viewOf(e *entry) View {
	slots := e.den.Slots()
	v := View{
		ID:      e.id.String(),
		Turn:    e.turn,
		Balance: e.ledger.Balance(),
		Income:  e.den.Collect(),
		Slots:   make([]SlotView, len(slots)),
	}
	for i, s := range slots {
		v.Slots[i] = SlotView{
			Index:       i,
			Category:    s.Category.String(),
			Unlocked:    s.Unlocked,
			BuildingID:  s.BuildingID(),
			CharacterID: s.CharacterID,
			UnlockCost:  s.UnlockCost,
		}
	}
	return v
}
