// Package denserver hosts dens for remote players: a registry pairing every
// den with its resource ledger, the gRPC DenService in front of it, and the
// turn clock that pays out income.
package denserver

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/cory-johannsen/goblinden/internal/game/building"
	"github.com/cory-johannsen/goblinden/internal/game/den"
	"github.com/cory-johannsen/goblinden/internal/game/economy"
	"github.com/cory-johannsen/goblinden/internal/observability"
	"github.com/cory-johannsen/goblinden/internal/storage"
)

// ErrDenNotFound is returned for an unknown den ID.
var ErrDenNotFound = errors.New("den not found")

// ErrInvalidDenID is returned when a den ID is not a UUID.
var ErrInvalidDenID = errors.New("invalid den id")

// Store persists dens. postgres.DenRepository and sqlite.DenStore satisfy it.
type Store interface {
	Create(ctx context.Context, rec storage.DenRecord) error
	Save(ctx context.Context, rec storage.DenRecord) error
	Load(ctx context.Context, id uuid.UUID) (storage.DenRecord, error)
	List(ctx context.Context) ([]uuid.UUID, error)
}

// RegistryConfig holds what every den in a registry shares.
type RegistryConfig struct {
	Catalog *building.Catalog
	// Layout is the slot layout of newly created dens.
	Layout den.Layout
	// Opening is the starting stock of newly created dens.
	Opening economy.Amount
	// Override, when set, becomes every den's UnlockOverride.
	Override den.OverrideFunc
	// Metrics records turns, payouts and construction. Optional.
	Metrics *observability.Metrics
}

// entry pairs a den with its ledger. mu serializes every
// read-balance/mutate/debit/persist sequence on the pair.
type entry struct {
	mu     sync.Mutex
	id     uuid.UUID
	den    *den.Den
	ledger *economy.Ledger
	turn   int64 // last turn the den was paid for
}

func (e *entry) record() storage.DenRecord {
	return storage.DenRecord{ID: e.id, Turn: e.turn, Balance: e.ledger.Balance(), Snapshot: e.den.Snapshot()}
}

// Registry owns every hosted den.
type Registry struct {
	cfg    RegistryConfig
	store  Store
	logger *zap.Logger

	// turnMu is held across a whole AdvanceTurn, from the increment through
	// the last payout.
	turnMu sync.Mutex

	mu   sync.RWMutex
	dens map[uuid.UUID]*entry
	turn int64
}

// NewRegistry creates an empty Registry. store may be nil, in which case dens
// live only in memory.
//
// Precondition: cfg.Catalog and logger must be non-nil; cfg.Layout must be valid.
func NewRegistry(cfg RegistryConfig, store Store, logger *zap.Logger) (*Registry, error) {
	if cfg.Catalog == nil {
		return nil, errors.New("denserver: registry requires a catalog")
	}
	if err := cfg.Layout.Validate(); err != nil {
		return nil, fmt.Errorf("denserver: layout: %w", err)
	}
	if err := cfg.Opening.Validate(); err != nil {
		return nil, fmt.Errorf("denserver: opening stock: %w", err)
	}
	return &Registry{
		cfg:    cfg,
		store:  store,
		logger: logger,
		dens:   make(map[uuid.UUID]*entry),
	}, nil
}

// Open loads every stored den. The registry turn resumes at the highest
// stored turn.
//
// Postcondition: Returns an error naming the first den that fails to restore.
func (r *Registry) Open(ctx context.Context) error {
	if r.store == nil {
		return nil
	}
	ids, err := r.store.List(ctx)
	if err != nil {
		return fmt.Errorf("listing dens: %w", err)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, id := range ids {
		rec, err := r.store.Load(ctx, id)
		if err != nil {
			return fmt.Errorf("loading den %s: %w", id, err)
		}
		e, err := r.restore(rec)
		if err != nil {
			return fmt.Errorf("restoring den %s: %w", id, err)
		}
		r.dens[id] = e
		r.turn = max(r.turn, rec.Turn)
	}
	r.cfg.Metrics.SetDens(len(r.dens))
	r.cfg.Metrics.TurnEnded(r.turn, 0, 0)
	r.logger.Info("dens loaded", zap.Int("count", len(ids)), zap.Int64("turn", r.turn))
	return nil
}

func (r *Registry) restore(rec storage.DenRecord) (*entry, error) {
	d, err := den.Restore(r.cfg.Catalog, rec.Snapshot)
	if err != nil {
		return nil, err
	}
	if err := rec.Balance.Validate(); err != nil {
		return nil, fmt.Errorf("%w: balance: %w", den.ErrInvalidState, err)
	}
	d.UnlockOverride = r.cfg.Override
	return &entry{id: rec.ID, den: d, ledger: economy.NewLedger(rec.Balance), turn: rec.Turn}, nil
}

// Catalog returns the shared building catalog.
func (r *Registry) Catalog() *building.Catalog {
	return r.cfg.Catalog
}

// Turn returns the last completed turn.
func (r *Registry) Turn() int64 {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.turn
}

// IDs returns the IDs of all hosted dens in string order.
func (r *Registry) IDs() []uuid.UUID {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ids := make([]uuid.UUID, 0, len(r.dens))
	for id := range r.dens {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i].String() < ids[j].String() })
	return ids
}

// Create makes a new den from the configured layout and opening stock and
// persists it.
//
// Postcondition: the den is hosted only if persisting it succeeded.
func (r *Registry) Create(ctx context.Context) (View, error) {
	d, err := den.New(r.cfg.Catalog, r.cfg.Layout)
	if err != nil {
		return View{}, err
	}
	d.UnlockOverride = r.cfg.Override

	r.mu.Lock()
	defer r.mu.Unlock()
	e := &entry{id: uuid.New(), den: d, ledger: economy.NewLedger(r.cfg.Opening), turn: r.turn}
	if r.store != nil {
		if err := r.store.Create(ctx, e.record()); err != nil {
			return View{}, fmt.Errorf("persisting den: %w", err)
		}
	}
	r.dens[e.id] = e
	r.cfg.Metrics.SetDens(len(r.dens))
	r.logger.Info("den created", zap.Stringer("den", e.id))
	return viewOf(e), nil
}

func (r *Registry) lookup(id string) (*entry, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %w", ErrInvalidDenID, id, err)
	}
	r.mu.RLock()
	e, ok := r.dens[uid]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrDenNotFound, uid)
	}
	return e, nil
}

// Get returns the current view of a den.
func (r *Registry) Get(id string) (View, error) {
	e, err := r.lookup(id)
	if err != nil {
		return View{}, err
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return viewOf(e), nil
}

// mutate runs op against the den under its entry lock, debits what op
// reports as spent, and persists the result. If the debit or the save fails
// the den and ledger are rolled back to their state before op.
func (r *Registry) mutate(ctx context.Context, id string, op func(d *den.Den, bal economy.Amount) (economy.Amount, error)) (View, economy.Amount, error) {
	e, err := r.lookup(id)
	if err != nil {
		return View{}, economy.Amount{}, err
	}
	e.mu.Lock()
	defer e.mu.Unlock()

	before := e.record()
	spent, err := op(e.den, before.Balance)
	if err != nil {
		return View{}, economy.Amount{}, err
	}
	if err := e.ledger.Debit(spent); err != nil {
		r.rollback(e, before)
		return View{}, economy.Amount{}, fmt.Errorf("debiting %s: %w", spent, err)
	}
	if r.store != nil {
		if err := r.store.Save(ctx, e.record()); err != nil {
			r.rollback(e, before)
			return View{}, economy.Amount{}, fmt.Errorf("persisting den %s: %w", e.id, err)
		}
	}
	r.cfg.Metrics.Spent(spent.Gold, spent.Food)
	return viewOf(e), spent, nil
}

// rollback restores e to rec. e.mu must be held.
func (r *Registry) rollback(e *entry, rec storage.DenRecord) {
	restored, err := r.restore(rec)
	if err != nil {
		// rec came from a live den, so this indicates a bug
		r.logger.Error("rolling back den", zap.Stringer("den", e.id), zap.Error(err))
		return
	}
	e.den, e.ledger = restored.den, restored.ledger
}

// Build constructs buildingID in a slot, paying from the den's stock.
func (r *Registry) Build(ctx context.Context, id string, index int, buildingID string) (View, economy.Amount, error) {
	v, spent, err := r.mutate(ctx, id, func(d *den.Den, bal economy.Amount) (economy.Amount, error) {
		res, err := d.Build(index, buildingID, bal.Gold, bal.Food)
		return res.Spent, err
	})
	if err == nil {
		r.cfg.Metrics.Built(buildingID)
	}
	return v, spent, err
}

// Demolish clears a slot. Nothing is refunded.
func (r *Registry) Demolish(ctx context.Context, id string, index int) (View, error) {
	v, _, err := r.mutate(ctx, id, func(d *den.Den, _ economy.Amount) (economy.Amount, error) {
		return economy.Amount{}, d.Demolish(index)
	})
	return v, err
}

// Assign places a character in a slot.
func (r *Registry) Assign(ctx context.Context, id string, index int, characterID string) (View, error) {
	v, _, err := r.mutate(ctx, id, func(d *den.Den, _ economy.Amount) (economy.Amount, error) {
		return economy.Amount{}, d.Assign(index, characterID)
	})
	return v, err
}

// Unassign removes the character from a slot.
func (r *Registry) Unassign(ctx context.Context, id string, index int) (View, error) {
	v, _, err := r.mutate(ctx, id, func(d *den.Den, _ economy.Amount) (economy.Amount, error) {
		return economy.Amount{}, d.Unassign(index)
	})
	return v, err
}

// UnlockSlot opens a locked slot, paying its unlock cost.
func (r *Registry) UnlockSlot(ctx context.Context, id string, index int) (View, economy.Amount, error) {
	return r.mutate(ctx, id, func(d *den.Den, bal economy.Amount) (economy.Amount, error) {
		return d.UnlockSlot(index, bal.Gold, bal.Food)
	})
}

// Candidates lists what the den could build in a slot right now.
func (r *Registry) Candidates(id string, index int) ([]*building.Definition, error) {
	e, err := r.lookup(id)
	if err != nil {
		return nil, err
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	bal := e.ledger.Balance()
	return e.den.Candidates(index, bal.Gold, bal.Food)
}

// Collect reports a den's per-turn income without crediting it.
func (r *Registry) Collect(id string) (income, balance economy.Amount, turn int64, err error) {
	e, err := r.lookup(id)
	if err != nil {
		return economy.Amount{}, economy.Amount{}, 0, err
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.den.Collect(), e.ledger.Balance(), e.turn, nil
}

// TurnReport summarizes one AdvanceTurn.
type TurnReport struct {
	Turn int64
	// Paid counts dens credited for Turn.
	Paid int
	// Failed counts dens whose payout could not be persisted.
	Failed int
}

// AdvanceTurn ends the current turn: every den not yet paid for the new turn
// is credited its income once and persisted. A den whose save fails keeps
// its previous state and is retried on the next turn. Concurrent calls are
// serialized so no turn number is skipped for any den.
//
// Postcondition: the report names the new turn; err joins every payout failure.
func (r *Registry) AdvanceTurn(ctx context.Context) (TurnReport, error) {
	r.turnMu.Lock()
	defer r.turnMu.Unlock()

	r.mu.Lock()
	r.turn++
	rep := TurnReport{Turn: r.turn}
	entries := make([]*entry, 0, len(r.dens))
	for _, e := range r.dens {
		entries = append(entries, e)
	}
	r.mu.Unlock()

	var errs []error
	for _, e := range entries {
		ok, err := r.pay(ctx, e, rep.Turn)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if ok {
			rep.Paid++
		}
	}
	rep.Failed = len(errs)
	r.cfg.Metrics.TurnEnded(rep.Turn, rep.Paid, rep.Failed)
	r.logger.Debug("turn ended", zap.Int64("turn", rep.Turn), zap.Int("paid", rep.Paid), zap.Int("failed", rep.Failed))
	return rep, errors.Join(errs...)
}

func (r *Registry) pay(ctx context.Context, e *entry, turn int64) (bool, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.turn >= turn {
		return false, nil
	}
	before := e.record()
	income := e.den.Collect()
	if err := e.ledger.Credit(income); err != nil {
		return false, fmt.Errorf("crediting den %s: %w", e.id, err)
	}
	e.turn = turn
	if r.store != nil {
		if err := r.store.Save(ctx, e.record()); err != nil {
			r.rollback(e, before)
			e.turn = before.Turn
			return false, fmt.Errorf("persisting den %s: %w", e.id, err)
		}
	}
	return true, nil
}
