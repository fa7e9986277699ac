// Package economy holds the gold/food amounts exchanged between the den and
// the player's stockpile, plus an in-memory ledger of current balances.
package economy

import "fmt"

// Amount is a quantity of gold and food.
type Amount struct {
	Gold int `yaml:"gold" json:"gold"`
	Food int `yaml:"food" json:"food"`
}

// Add returns the component-wise sum of a and b.
func (a Amount) Add(b Amount) Amount {
	return Amount{Gold: a.Gold + b.Gold, Food: a.Food + b.Food}
}

// Sub returns the component-wise difference a - b.
func (a Amount) Sub(b Amount) Amount {
	return Amount{Gold: a.Gold - b.Gold, Food: a.Food - b.Food}
}

// Covers reports whether a has at least as much of every resource as cost.
func (a Amount) Covers(cost Amount) bool {
	return a.Gold >= cost.Gold && a.Food >= cost.Food
}

// IsZero reports whether both components are zero.
func (a Amount) IsZero() bool {
	return a.Gold == 0 && a.Food == 0
}

// Validate returns an error if either component is negative.
//
// Postcondition: returns nil iff Gold >= 0 and Food >= 0.
func (a Amount) Validate() error {
	if a.Gold < 0 || a.Food < 0 {
		return fmt.Errorf("amount must not be negative, got gold=%d food=%d", a.Gold, a.Food)
	}
	return nil
}

// String renders the amount as "N gold, M food".
func (a Amount) String() string {
	return fmt.Sprintf("%d gold, %d food", a.Gold, a.Food)
}
