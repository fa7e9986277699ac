package den_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cory-johannsen/goblinden/internal/game/building"
	"github.com/cory-johannsen/goblinden/internal/game/den"
	"github.com/cory-johannsen/goblinden/internal/game/economy"
)

func TestParseLayout(t *testing.T) {
	l, err := den.ParseLayout([]byte(`
slots:
  - category: breeding
    unlocked: true
  - category: resource
    count: 3
    unlocked: false
    unlock_cost: {gold: 20, food: 5}
`))
	require.NoError(t, err)
	require.Len(t, l.Slots, 2)
	assert.Equal(t, 1, l.Slots[0].Count)
	assert.Equal(t, building.CategoryResource, l.Slots[1].Category)
	assert.Equal(t, economy.Amount{Gold: 20, Food: 5}, l.Slots[1].UnlockCost)
	assert.Equal(t, 4, l.Size())
}

func TestParseLayout_Rejects(t *testing.T) {
	cases := map[string]string{
		"unknown category": "slots:\n  - {category: barracks}\n",
		"missing category": "slots:\n  - {unlocked: true}\n",
		"zero count":       "slots:\n  - {category: global, count: 0}\n",
		"negative cost":    "slots:\n  - {category: global, unlock_cost: {gold: -1}}\n",
		"unknown field":    "slots:\n  - {category: global, size: 3}\n",
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := den.ParseLayout([]byte(doc))
			assert.Error(t, err)
		})
	}
}

func TestLoadLayout_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "den.yaml")
	require.NoError(t, os.WriteFile(path, []byte("slots:\n  - {category: special, unlocked: true}\n"), 0644))
	l, err := den.LoadLayout(path)
	require.NoError(t, err)
	assert.Equal(t, 1, l.Size())

	_, err = den.LoadLayout(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoadLayout_Content(t *testing.T) {
	l, err := den.LoadLayout("../../../content/dens/default.yaml")
	require.NoError(t, err)
	cat, err := building.LoadCatalog("../../../content/buildings")
	require.NoError(t, err)
	d, err := den.New(cat, l)
	require.NoError(t, err)
	assert.Equal(t, l.Size(), d.Len())

	// every category in the content layout has at least one buildable entry
	seen := map[building.Category]bool{}
	for _, s := range d.Slots() {
		seen[s.Category] = true
	}
	for c := range seen {
		assert.NotEmpty(t, cat.ByCategory(c), "no building for %s slots", c)
	}
}
