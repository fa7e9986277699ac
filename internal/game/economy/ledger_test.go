package economy_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/goblinden/internal/game/economy"
)

func TestLedger_DebitCredit(t *testing.T) {
	l := economy.NewLedger(economy.Amount{Gold: 100, Food: 20})
	require.NoError(t, l.Debit(economy.Amount{Gold: 40, Food: 5}))
	assert.Equal(t, economy.Amount{Gold: 60, Food: 15}, l.Balance())

	require.NoError(t, l.Credit(economy.Amount{Food: 10}))
	assert.Equal(t, economy.Amount{Gold: 60, Food: 25}, l.Balance())
}

func TestLedger_Debit_InsufficientLeavesBalance(t *testing.T) {
	l := economy.NewLedger(economy.Amount{Gold: 10, Food: 100})
	err := l.Debit(economy.Amount{Gold: 11})
	require.Error(t, err)
	assert.ErrorIs(t, err, economy.ErrInsufficientFunds)
	assert.Equal(t, economy.Amount{Gold: 10, Food: 100}, l.Balance())
}

func TestLedger_RejectsNegative(t *testing.T) {
	l := economy.NewLedger(economy.Amount{})
	assert.Error(t, l.Credit(economy.Amount{Gold: -1}))
	assert.Error(t, l.Debit(economy.Amount{Food: -1}))
}

func TestLedger_ConcurrentCredits(t *testing.T) {
	l := economy.NewLedger(economy.Amount{})
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = l.Credit(economy.Amount{Gold: 1, Food: 2})
		}()
	}
	wg.Wait()
	assert.Equal(t, economy.Amount{Gold: 50, Food: 100}, l.Balance())
}

func TestPropertyLedger_NeverNegative(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		l := economy.NewLedger(economy.Amount{
			Gold: rapid.IntRange(0, 500).Draw(rt, "gold"),
			Food: rapid.IntRange(0, 500).Draw(rt, "food"),
		})
		ops := rapid.IntRange(1, 30).Draw(rt, "ops")
		for i := 0; i < ops; i++ {
			amt := economy.Amount{
				Gold: rapid.IntRange(0, 200).Draw(rt, "g"),
				Food: rapid.IntRange(0, 200).Draw(rt, "f"),
			}
			if rapid.Bool().Draw(rt, "credit") {
				require.NoError(rt, l.Credit(amt))
			} else {
				_ = l.Debit(amt)
			}
			b := l.Balance()
			assert.GreaterOrEqual(rt, b.Gold, 0)
			assert.GreaterOrEqual(rt, b.Food, 0)
		}
	})
}

func TestAmount_Covers(t *testing.T) {
	have := economy.Amount{Gold: 50, Food: 0}
	assert.True(t, have.Covers(economy.Amount{Gold: 50}))
	assert.False(t, have.Covers(economy.Amount{Gold: 50, Food: 1}))
	assert.Equal(t, "50 gold, 0 food", have.String())
}
