package economy

import (
	"errors"
	"fmt"
	"sync"
)

// ErrInsufficientFunds is returned when a debit exceeds the current balance.
var ErrInsufficientFunds = errors.New("insufficient funds")

// Ledger tracks a stockpile of gold and food.
// All methods are safe for concurrent use.
type Ledger struct {
	mu      sync.Mutex
	balance Amount
}

// NewLedger creates a Ledger with the given opening balance.
//
// Precondition: opening must not be negative.
// Postcondition: Balance() == opening.
func NewLedger(opening Amount) *Ledger {
	return &Ledger{balance: opening}
}

// Balance returns the current balance.
func (l *Ledger) Balance() Amount {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.balance
}

// Debit removes amt from the balance. It is atomic: if either resource would
// go negative, the balance is unchanged.
//
// Precondition: amt must not be negative.
// Postcondition: on success Balance() decreased by amt; on ErrInsufficientFunds it is unchanged.
func (l *Ledger) Debit(amt Amount) error {
	if err := amt.Validate(); err != nil {
		return fmt.Errorf("ledger: debit: %w", err)
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if !l.balance.Covers(amt) {
		return fmt.Errorf("ledger: debit %s from %s: %w", amt, l.balance, ErrInsufficientFunds)
	}
	l.balance = l.balance.Sub(amt)
	return nil
}

// Credit adds amt to the balance.
//
// Precondition: amt must not be negative.
func (l *Ledger) Credit(amt Amount) error {
	if err := amt.Validate(); err != nil {
		return fmt.Errorf("ledger: credit: %w", err)
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.balance = l.balance.Add(amt)
	return nil
}
