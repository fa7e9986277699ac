package den_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/goblinden/internal/game/building"
	"github.com/cory-johannsen/goblinden/internal/game/den"
	"github.com/cory-johannsen/goblinden/internal/game/economy"
)

func TestBuild_Success(t *testing.T) {
	d := newTestDen(t)
	res, err := d.Build(2, "farm", 50, 0)
	require.NoError(t, err)
	assert.Equal(t, economy.Amount{Gold: 50}, res.Spent)
	assert.Equal(t, building.CategoryResource, res.Slot.Category)
	assert.Equal(t, 1, d.Count("farm"))
	assert.True(t, d.Built()["farm"])
}

func TestBuild_PreconditionOrder(t *testing.T) {
	cases := []struct {
		name  string
		setup func(t *testing.T, d *den.Den)
		index int
		id    string
		gold  int
		food  int
		want  error
	}{
		{name: "out of range slot reports locked", index: 42, id: "farm", gold: plenty, want: den.ErrSlotLocked},
		{name: "locked beats unknown building", index: 5, id: "nope", gold: plenty, want: den.ErrSlotLocked},
		{
			name: "occupied beats unknown building",
			setup: func(t *testing.T, d *den.Den) {
				_, err := d.Build(2, "farm", plenty, plenty)
				require.NoError(t, err)
			},
			index: 2, id: "nope", gold: plenty, want: den.ErrSlotOccupied,
		},
		{name: "unknown beats category", index: 0, id: "nope", want: den.ErrUnknownBuilding},
		{name: "category beats cost", index: 0, id: "farm", want: den.ErrCategoryMismatch},
		{
			name: "max count beats unlock",
			setup: func(t *testing.T, d *den.Den) {
				_, err := d.Build(2, "farm", plenty, plenty)
				require.NoError(t, err)
				_, err = d.Build(6, "shrine", plenty, plenty)
				require.NoError(t, err)
				require.NoError(t, d.Demolish(2))
			},
			index: 7, id: "shrine", gold: plenty, food: plenty, want: den.ErrMaxCountReached,
		},
		{name: "unlock beats cost", index: 6, id: "shrine", want: den.ErrBuildingLocked},
		{name: "insufficient gold", index: 2, id: "farm", gold: 49, food: plenty, want: den.ErrInsufficientResources},
		{name: "insufficient food", index: 3, id: "mine", gold: plenty, food: 9, want: den.ErrInsufficientResources},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d := newTestDen(t)
			if tc.setup != nil {
				tc.setup(t, d)
			}
			before := d.Snapshot()
			_, err := d.Build(tc.index, tc.id, tc.gold, tc.food)
			require.Error(t, err)
			assert.ErrorIs(t, err, tc.want)
			assert.Equal(t, before, d.Snapshot(), "failed build must not mutate the den")
		})
	}
}

func TestBuild_OutOfRangeAlsoSlotNotFound(t *testing.T) {
	d := newTestDen(t)
	_, err := d.Build(-1, "farm", plenty, plenty)
	assert.ErrorIs(t, err, den.ErrSlotLocked)
	assert.ErrorIs(t, err, den.ErrSlotNotFound)
}

func TestBuild_BeyondMaxCount(t *testing.T) {
	d := newTestDen(t)
	_, err := d.Build(8, "totem", 0, 0)
	require.NoError(t, err)
	_, err = d.Build(9, "totem", 0, 0)
	require.NoError(t, err)

	_, err = d.Build(10, "totem", 0, 0)
	assert.ErrorIs(t, err, den.ErrMaxCountReached)
	assert.Equal(t, 2, d.Count("totem"))

	require.NoError(t, d.Demolish(9))
	_, err = d.Build(10, "totem", 0, 0)
	require.NoError(t, err)
	assert.Equal(t, 2, d.Count("totem"))
}

func TestBuild_OverrideHook(t *testing.T) {
	d := newTestDen(t)
	_, err := d.Build(8, "drum", plenty, plenty)
	require.ErrorIs(t, err, den.ErrBuildingLocked)

	var seen map[string]int
	d.UnlockOverride = func(id string, counts map[string]int) (bool, bool) {
		if id != "drum" {
			return false, false
		}
		seen = counts
		return counts["farm"] >= 1, true
	}
	_, err = d.Build(8, "drum", plenty, plenty)
	require.ErrorIs(t, err, den.ErrBuildingLocked)

	_, err = d.Build(2, "farm", plenty, plenty)
	require.NoError(t, err)
	_, err = d.Build(8, "drum", plenty, plenty)
	require.NoError(t, err)
	assert.Equal(t, 1, seen["farm"])
}

func TestBuild_OverrideHookCanLockBuildable(t *testing.T) {
	d := newTestDen(t)
	d.UnlockOverride = func(id string, _ map[string]int) (bool, bool) {
		return false, id == "farm"
	}
	_, err := d.Build(2, "farm", plenty, plenty)
	assert.ErrorIs(t, err, den.ErrBuildingLocked)
	_, err = d.Build(3, "mine", plenty, plenty)
	assert.NoError(t, err)
}

func TestDemolish(t *testing.T) {
	d := newTestDen(t)
	_, err := d.Build(0, "pit", plenty, plenty)
	require.NoError(t, err)
	require.NoError(t, d.Assign(0, "grik"))

	require.NoError(t, d.Demolish(0))
	s, err := d.Slot(0)
	require.NoError(t, err)
	assert.True(t, s.Empty())
	assert.False(t, s.Assigned())
	assert.Equal(t, 0, d.Count("pit"))
	assert.False(t, d.Built()["pit"])
	_, ok := d.SlotOf("grik")
	assert.False(t, ok)

	// the freed character may be placed elsewhere
	_, err = d.Build(1, "pit", plenty, plenty)
	require.NoError(t, err)
	assert.NoError(t, d.Assign(1, "grik"))
}

func TestDemolish_Empty(t *testing.T) {
	d := newTestDen(t)
	assert.ErrorIs(t, d.Demolish(0), den.ErrSlotEmpty)
	assert.ErrorIs(t, d.Demolish(100), den.ErrSlotNotFound)
}

func TestDemolish_RelocksDependents(t *testing.T) {
	d := newTestDen(t)
	_, err := d.Build(2, "farm", plenty, plenty)
	require.NoError(t, err)
	require.NoError(t, d.Demolish(2))
	_, err = d.Build(6, "shrine", plenty, plenty)
	assert.ErrorIs(t, err, den.ErrBuildingLocked)
}

func TestCandidates(t *testing.T) {
	d := newTestDen(t)
	got, err := d.Candidates(2, 60, 0)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "farm", got[0].ID)

	got, err = d.Candidates(6, plenty, plenty)
	require.NoError(t, err)
	assert.Empty(t, got, "shrine is locked until a farm stands")

	_, err = d.Build(2, "farm", plenty, plenty)
	require.NoError(t, err)
	got, err = d.Candidates(6, plenty, plenty)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "shrine", got[0].ID)

	got, err = d.Candidates(2, plenty, plenty)
	require.NoError(t, err)
	assert.Empty(t, got, "occupied slot accepts nothing")

	_, err = d.Candidates(77, 0, 0)
	assert.ErrorIs(t, err, den.ErrSlotNotFound)
}

func TestUnlockSlot(t *testing.T) {
	d := newTestDen(t)
	_, err := d.UnlockSlot(5, 74, 0)
	assert.ErrorIs(t, err, den.ErrInsufficientResources)

	spent, err := d.UnlockSlot(5, 75, 0)
	require.NoError(t, err)
	assert.Equal(t, economy.Amount{Gold: 75}, spent)

	_, err = d.UnlockSlot(5, plenty, plenty)
	assert.ErrorIs(t, err, den.ErrSlotAlreadyUnlocked)

	_, err = d.Build(5, "farm", plenty, plenty)
	assert.NoError(t, err)

	_, err = d.UnlockSlot(50, plenty, plenty)
	assert.ErrorIs(t, err, den.ErrSlotNotFound)
}

func TestPropertyBuild_CategoryMismatchAlwaysFails(t *testing.T) {
	byCategory := map[building.Category]string{
		building.CategoryBreeding: "pit",
		building.CategoryResource: "farm",
		building.CategoryGlobal:   "shrine",
		building.CategorySpecial:  "totem",
	}
	rapid.Check(t, func(rt *rapid.T) {
		d := newTestDen(rt)
		slots := d.Slots()
		idx := rapid.IntRange(0, len(slots)-1).Filter(func(i int) bool { return slots[i].Unlocked }).Draw(rt, "slot")
		cat := rapid.SampledFrom(building.Categories()).
			Filter(func(c building.Category) bool { return c != slots[idx].Category }).Draw(rt, "category")
		_, err := d.Build(idx, byCategory[cat], plenty, plenty)
		assert.ErrorIs(rt, err, den.ErrCategoryMismatch)
		assert.Equal(rt, 0, d.Count(byCategory[cat]))
	})
}

func TestPropertyBuild_CountIncrementsByOneUntilLimit(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		d := newTestDen(rt)
		steps := rapid.IntRange(1, 25).Draw(rt, "steps")
		for i := 0; i < steps; i++ {
			idx := rapid.SampledFrom([]int{8, 9, 10}).Draw(rt, "slot")
			before := d.Count("totem")
			if !mustSlot(rt, d, idx).Empty() {
				require.NoError(rt, d.Demolish(idx))
				assert.Equal(rt, before-1, d.Count("totem"))
				continue
			}
			_, err := d.Build(idx, "totem", 0, 0)
			if before >= 2 {
				assert.ErrorIs(rt, err, den.ErrMaxCountReached)
				assert.Equal(rt, before, d.Count("totem"))
			} else {
				require.NoError(rt, err)
				assert.Equal(rt, before+1, d.Count("totem"))
			}
			assert.LessOrEqual(rt, d.Count("totem"), 2)
		}
	})
}

func mustSlot(t require.TestingT, d *den.Den, idx int) den.Slot {
	s, err := d.Slot(idx)
	require.NoError(t, err)
	return s
}
