package den_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/goblinden/internal/game/economy"
)

func TestCollect_Empty(t *testing.T) {
	assert.Equal(t, economy.Amount{}, newTestDen(t).Collect())
}

func TestCollect_SumsRegardlessOfAssignment(t *testing.T) {
	d := newTestDen(t)
	for idx, id := range map[int]string{2: "farm", 3: "farm", 4: "mine", 8: "totem", 0: "pit"} {
		_, err := d.Build(idx, id, plenty, plenty)
		require.NoError(t, err)
	}
	want := economy.Amount{Gold: 15 + 3, Food: 10 + 10}
	assert.Equal(t, want, d.Collect())

	require.NoError(t, d.Assign(2, "grik"))
	assert.Equal(t, want, d.Collect(), "assignment does not change income")

	require.NoError(t, d.Demolish(4))
	assert.Equal(t, economy.Amount{Gold: 3, Food: 20}, d.Collect())
}

func TestPropertyCollect_Idempotent(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		d := newTestDen(rt)
		for _, idx := range []int{2, 3, 4} {
			if rapid.Bool().Draw(rt, "build") {
				id := rapid.SampledFrom([]string{"farm", "mine"}).Draw(rt, "id")
				_, err := d.Build(idx, id, plenty, plenty)
				require.NoError(rt, err)
			}
		}
		first := d.Collect()
		second := d.Collect()
		assert.Equal(rt, first, second)
		assert.GreaterOrEqual(rt, first.Gold, 0)
		assert.GreaterOrEqual(rt, first.Food, 0)
	})
}
