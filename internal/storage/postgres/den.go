package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/cory-johannsen/goblinden/internal/game/building"
	"github.com/cory-johannsen/goblinden/internal/game/den"
	"github.com/cory-johannsen/goblinden/internal/storage"
)

// DenRepository provides den persistence operations.
type DenRepository struct {
	db *pgxpool.Pool
}

// NewDenRepository creates a DenRepository backed by the given pool.
//
// Precondition: db must be a valid, open connection pool.
func NewDenRepository(db *pgxpool.Pool) *DenRepository {
	return &DenRepository{db: db}
}

// Create inserts a new den and its slots in one transaction.
//
// Precondition: rec.ID must not be uuid.Nil; rec.Balance must be non-negative.
// Postcondition: Returns storage.ErrDenExists if rec.ID is taken.
func (r *DenRepository) Create(ctx context.Context, rec storage.DenRecord) error {
	if rec.ID == uuid.Nil {
		return fmt.Errorf("creating den: nil id")
	}
	return pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		_, err := tx.Exec(ctx,
			`INSERT INTO dens (id, turn, gold, food) VALUES ($1, $2, $3, $4)`,
			rec.ID, rec.Turn, rec.Balance.Gold, rec.Balance.Food,
		)
		if err != nil {
			if isDuplicateKeyError(err) {
				return storage.ErrDenExists
			}
			return fmt.Errorf("inserting den: %w", err)
		}
		return insertSlots(ctx, tx, rec.ID, rec.Snapshot)
	})
}

// Save overwrites the stored state of an existing den in one transaction.
//
// Precondition: the den must have been created.
// Postcondition: Returns storage.ErrDenNotFound if no den has rec.ID.
func (r *DenRepository) Save(ctx context.Context, rec storage.DenRecord) error {
	return pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx,
			`UPDATE dens SET turn = $2, gold = $3, food = $4, updated_at = NOW()
			 WHERE id = $1`,
			rec.ID, rec.Turn, rec.Balance.Gold, rec.Balance.Food,
		)
		if err != nil {
			return fmt.Errorf("updating den: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return storage.ErrDenNotFound
		}
		if _, err := tx.Exec(ctx, `DELETE FROM den_slots WHERE den_id = $1`, rec.ID); err != nil {
			return fmt.Errorf("clearing den slots: %w", err)
		}
		return insertSlots(ctx, tx, rec.ID, rec.Snapshot)
	})
}

func insertSlots(ctx context.Context, tx pgx.Tx, id uuid.UUID, snap den.Snapshot) error {
	rows := make([][]any, len(snap.Slots))
	for i, s := range snap.Slots {
		rows[i] = []any{
			id, i, s.Category.String(), s.Unlocked,
			s.BuildingID, s.CharacterID, s.UnlockCost.Gold, s.UnlockCost.Food,
		}
	}
	_, err := tx.CopyFrom(ctx,
		pgx.Identifier{"den_slots"},
		[]string{"den_id", "idx", "category", "unlocked", "building_id", "character_id", "unlock_gold", "unlock_food"},
		pgx.CopyFromRows(rows),
	)
	if err != nil {
		return fmt.Errorf("inserting den slots: %w", err)
	}
	return nil
}

// Load retrieves a den by ID.
//
// Postcondition: Returns storage.ErrDenNotFound if no den has id. Slots are ordered by index.
func (r *DenRepository) Load(ctx context.Context, id uuid.UUID) (storage.DenRecord, error) {
	rec := storage.DenRecord{ID: id}
	err := r.db.QueryRow(ctx,
		`SELECT turn, gold, food FROM dens WHERE id = $1`, id,
	).Scan(&rec.Turn, &rec.Balance.Gold, &rec.Balance.Food)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return storage.DenRecord{}, storage.ErrDenNotFound
		}
		return storage.DenRecord{}, fmt.Errorf("querying den: %w", err)
	}

	rows, err := r.db.Query(ctx,
		`SELECT category, unlocked, building_id, character_id, unlock_gold, unlock_food
		 FROM den_slots WHERE den_id = $1 ORDER BY idx`, id,
	)
	if err != nil {
		return storage.DenRecord{}, fmt.Errorf("querying den slots: %w", err)
	}
	slots, err := pgx.CollectRows(rows, scanSlot)
	if err != nil {
		return storage.DenRecord{}, fmt.Errorf("scanning den slots: %w", err)
	}
	rec.Snapshot = den.Snapshot{Slots: slots}
	return rec, nil
}

func scanSlot(row pgx.CollectableRow) (den.SlotState, error) {
	var (
		st       den.SlotState
		category string
	)
	if err := row.Scan(&category, &st.Unlocked, &st.BuildingID, &st.CharacterID,
		&st.UnlockCost.Gold, &st.UnlockCost.Food); err != nil {
		return den.SlotState{}, err
	}
	c, err := building.ParseCategory(category)
	if err != nil {
		return den.SlotState{}, err
	}
	st.Category = c
	return st, nil
}

// List returns the IDs of all stored dens, oldest first.
func (r *DenRepository) List(ctx context.Context) ([]uuid.UUID, error) {
	rows, err := r.db.Query(ctx, `SELECT id FROM dens ORDER BY created_at, id`)
	if err != nil {
		return nil, fmt.Errorf("listing dens: %w", err)
	}
	ids, err := pgx.CollectRows(rows, pgx.RowTo[uuid.UUID])
	if err != nil {
		return nil, fmt.Errorf("scanning den ids: %w", err)
	}
	return ids, nil
}

// Delete removes a den and its slots.
//
// Postcondition: Returns storage.ErrDenNotFound if no den has id.
func (r *DenRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM dens WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting den: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return storage.ErrDenNotFound
	}
	return nil
}

// isDuplicateKeyError checks if a pgx error is a unique constraint violation.
func isDuplicateKeyError(err error) bool {
	var pgErr interface{ SQLState() string }
	if errors.As(err, &pgErr) {
		return pgErr.SQLState() == "23505"
	}
	return false
}
