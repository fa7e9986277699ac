package postgres_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cory-johannsen/goblinden/internal/game/building"
	"github.com/cory-johannsen/goblinden/internal/game/den"
	"github.com/cory-johannsen/goblinden/internal/game/economy"
	"github.com/cory-johannsen/goblinden/internal/storage"
	pgstore "github.com/cory-johannsen/goblinden/internal/storage/postgres"
	"github.com/cory-johannsen/goblinden/internal/testutil"
)

func newRepo(t *testing.T) *pgstore.DenRepository {
	t.Helper()
	pc := testutil.NewPostgresContainer(t)
	pc.ApplyMigrations(t)
	return pc.Pool.Dens()
}

func contentDen(t *testing.T) *den.Den {
	t.Helper()
	root := testutil.RepoRoot(t)
	cat, err := building.LoadCatalog(root + "/content/buildings")
	require.NoError(t, err)
	layout, err := den.LoadLayout(root + "/content/dens/default.yaml")
	require.NoError(t, err)
	d, err := den.New(cat, layout)
	require.NoError(t, err)
	return d
}

func TestDenRepository_RoundTrip(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()
	d := contentDen(t)

	rec := storage.DenRecord{
		ID:       uuid.New(),
		Balance:  economy.Amount{Gold: 200, Food: 50},
		Snapshot: d.Snapshot(),
	}
	require.NoError(t, repo.Create(ctx, rec))
	assert.ErrorIs(t, repo.Create(ctx, rec), storage.ErrDenExists)

	got, err := repo.Load(ctx, rec.ID)
	require.NoError(t, err)
	assert.Equal(t, rec, got)

	// build a farm in the first resource slot and persist the change
	idx := -1
	for i, s := range d.Slots() {
		if s.Category == building.CategoryResource && s.Unlocked {
			idx = i
			break
		}
	}
	require.GreaterOrEqual(t, idx, 0)
	res, err := d.Build(idx, "farm", 200, 50)
	require.NoError(t, err)
	require.NoError(t, d.Assign(idx, "grik"))

	rec.Turn = 3
	rec.Balance = rec.Balance.Sub(res.Spent)
	rec.Snapshot = d.Snapshot()
	require.NoError(t, repo.Save(ctx, rec))

	got, err = repo.Load(ctx, rec.ID)
	require.NoError(t, err)
	assert.Equal(t, rec, got)

	restored, err := den.Restore(d.Catalog(), got.Snapshot)
	require.NoError(t, err)
	assert.Equal(t, d.Counts(), restored.Counts())

	ids, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{rec.ID}, ids)

	require.NoError(t, repo.Delete(ctx, rec.ID))
	_, err = repo.Load(ctx, rec.ID)
	assert.ErrorIs(t, err, storage.ErrDenNotFound)
}

func TestDenRepository_LargeBalances(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()
	d := contentDen(t)

	// past the int32 range a long campaign can reach
	const big = 5_000_000_000
	rec := storage.DenRecord{
		ID:       uuid.New(),
		Turn:     big,
		Balance:  economy.Amount{Gold: big, Food: big + 1},
		Snapshot: d.Snapshot(),
	}
	rec.Snapshot.Slots[0].UnlockCost = economy.Amount{Gold: big + 2, Food: big + 3}
	require.NoError(t, repo.Create(ctx, rec))
	got, err := repo.Load(ctx, rec.ID)
	require.NoError(t, err)
	assert.Equal(t, rec, got)

	rec.Balance = economy.Amount{Gold: 3 * big, Food: 0}
	require.NoError(t, repo.Save(ctx, rec))
	got, err = repo.Load(ctx, rec.ID)
	require.NoError(t, err)
	assert.Equal(t, rec.Balance, got.Balance)
}

func TestDenRepository_MissingDen(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()
	id := uuid.New()

	_, err := repo.Load(ctx, id)
	assert.ErrorIs(t, err, storage.ErrDenNotFound)
	assert.ErrorIs(t, repo.Save(ctx, storage.DenRecord{ID: id}), storage.ErrDenNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, id), storage.ErrDenNotFound)
}

func TestDenRepository_CreateRejectsNilID(t *testing.T) {
	// no container needed: the nil check runs before any query
	repo := pgstore.NewDenRepository(nil)
	assert.Error(t, repo.Create(context.Background(), storage.DenRecord{}))
}
