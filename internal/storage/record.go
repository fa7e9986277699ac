// Package storage holds the persistence types shared by the den stores.
package storage

import (
	"errors"

	"github.com/google/uuid"

	"github.com/cory-johannsen/goblinden/internal/game/den"
	"github.com/cory-johannsen/goblinden/internal/game/economy"
)

// ErrDenNotFound is returned when a den lookup yields no results.
var ErrDenNotFound = errors.New("den not found")

// ErrDenExists is returned when creating a den whose ID is already taken.
var ErrDenExists = errors.New("den already exists")

// DenRecord is the persisted state of one den: its slot pool, its ledger
// balance, and the last turn it was paid for.
type DenRecord struct {
	ID       uuid.UUID      `json:"id"`
	Turn     int64          `json:"turn"`
	Balance  economy.Amount `json:"balance"`
	Snapshot den.Snapshot   `json:"snapshot"`
}
