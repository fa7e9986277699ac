package denserver

import (
	"context"

	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/cory-johannsen/goblinden/internal/denserver/denv1"
	"github.com/cory-johannsen/goblinden/internal/game/building"
)

// Service implements denv1.DenServiceServer over a Registry.
type Service struct {
	denv1.UnimplementedDenServiceServer
	registry *Registry
	logger   *zap.Logger
}

// NewService creates a Service.
//
// Precondition: registry and logger must be non-nil.
func NewService(registry *Registry, logger *zap.Logger) *Service {
	return &Service{registry: registry, logger: logger}
}

func (s *Service) ListBuildings(_ context.Context, req *denv1.ListBuildingsRequest) (*denv1.ListBuildingsResponse, error) {
	defs := s.registry.Catalog().All()
	if req.GetCategory() != "" {
		c, err := building.ParseCategory(req.GetCategory())
		if err != nil {
			return nil, status.Error(codes.InvalidArgument, err.Error())
		}
		defs = s.registry.Catalog().ByCategory(c)
	}
	return &denv1.ListBuildingsResponse{Buildings: denv1.Buildings(defs)}, nil
}

func (s *Service) CreateDen(ctx context.Context, _ *denv1.CreateDenRequest) (*denv1.DenResponse, error) {
	v, err := s.registry.Create(ctx)
	if err != nil {
		return nil, toStatus(err)
	}
	return &denv1.DenResponse{Den: denOf(v)}, nil
}

func (s *Service) ListDens(context.Context, *denv1.ListDensRequest) (*denv1.ListDensResponse, error) {
	ids := s.registry.IDs()
	out := &denv1.ListDensResponse{DenIds: make([]string, len(ids))}
	for i, id := range ids {
		out.DenIds[i] = id.String()
	}
	return out, nil
}

func (s *Service) GetDen(_ context.Context, req *denv1.GetDenRequest) (*denv1.DenResponse, error) {
	v, err := s.registry.Get(req.GetDenId())
	if err != nil {
		return nil, toStatus(err)
	}
	return &denv1.DenResponse{Den: denOf(v)}, nil
}

func (s *Service) Build(ctx context.Context, req *denv1.BuildRequest) (*denv1.DenResponse, error) {
	v, spent, err := s.registry.Build(ctx, req.GetDenId(), int(req.GetSlot()), req.GetBuildingId())
	if err != nil {
		return nil, toStatus(err)
	}
	s.logger.Info("building constructed",
		zap.String("den", req.GetDenId()),
		zap.Int32("slot", req.GetSlot()),
		zap.String("building", req.GetBuildingId()),
		zap.Stringer("spent", spent),
	)
	return &denv1.DenResponse{Den: denOf(v), Spent: denv1.AmountOf(spent)}, nil
}

func (s *Service) Demolish(ctx context.Context, req *denv1.SlotRequest) (*denv1.DenResponse, error) {
	v, err := s.registry.Demolish(ctx, req.GetDenId(), int(req.GetSlot()))
	if err != nil {
		return nil, toStatus(err)
	}
	s.logger.Info("building demolished", zap.String("den", req.GetDenId()), zap.Int32("slot", req.GetSlot()))
	return &denv1.DenResponse{Den: denOf(v)}, nil
}

func (s *Service) Assign(ctx context.Context, req *denv1.AssignRequest) (*denv1.DenResponse, error) {
	v, err := s.registry.Assign(ctx, req.GetDenId(), int(req.GetSlot()), req.GetCharacterId())
	if err != nil {
		return nil, toStatus(err)
	}
	return &denv1.DenResponse{Den: denOf(v)}, nil
}

func (s *Service) Unassign(ctx context.Context, req *denv1.SlotRequest) (*denv1.DenResponse, error) {
	v, err := s.registry.Unassign(ctx, req.GetDenId(), int(req.GetSlot()))
	if err != nil {
		return nil, toStatus(err)
	}
	return &denv1.DenResponse{Den: denOf(v)}, nil
}

func (s *Service) UnlockSlot(ctx context.Context, req *denv1.SlotRequest) (*denv1.DenResponse, error) {
	v, spent, err := s.registry.UnlockSlot(ctx, req.GetDenId(), int(req.GetSlot()))
	if err != nil {
		return nil, toStatus(err)
	}
	s.logger.Info("slot unlocked", zap.String("den", req.GetDenId()), zap.Int32("slot", req.GetSlot()), zap.Stringer("spent", spent))
	return &denv1.DenResponse{Den: denOf(v), Spent: denv1.AmountOf(spent)}, nil
}

func (s *Service) Candidates(_ context.Context, req *denv1.SlotRequest) (*denv1.CandidatesResponse, error) {
	defs, err := s.registry.Candidates(req.GetDenId(), int(req.GetSlot()))
	if err != nil {
		return nil, toStatus(err)
	}
	return &denv1.CandidatesResponse{Buildings: denv1.Buildings(defs)}, nil
}

func (s *Service) Collect(_ context.Context, req *denv1.CollectRequest) (*denv1.CollectResponse, error) {
	income, balance, turn, err := s.registry.Collect(req.GetDenId())
	if err != nil {
		return nil, toStatus(err)
	}
	return &denv1.CollectResponse{Income: denv1.AmountOf(income), Balance: denv1.AmountOf(balance), Turn: turn}, nil
}

// EndTurn advances the registry turn. When any payout fails to persist the
// call returns Unavailable with the EndTurnResponse attached as a status
// detail, so callers still learn the turn number and the paid and failed
// counts.
func (s *Service) EndTurn(ctx context.Context, _ *denv1.EndTurnRequest) (*denv1.EndTurnResponse, error) {
	rep, err := s.registry.AdvanceTurn(ctx)
	resp := &denv1.EndTurnResponse{Turn: rep.Turn, Paid: int32(rep.Paid), Failed: int32(rep.Failed)}
	if err != nil {
		s.logger.Error("turn payout incomplete",
			zap.Int64("turn", rep.Turn),
			zap.Int("failed", rep.Failed),
			zap.Error(err),
		)
		return nil, turnStatus(resp, err)
	}
	return resp, nil
}

func denOf(v View) *denv1.Den {
	out := &denv1.Den{
		Id:      v.ID,
		Turn:    v.Turn,
		Balance: denv1.AmountOf(v.Balance),
		Income:  denv1.AmountOf(v.Income),
		Slots:   make([]*denv1.Slot, len(v.Slots)),
	}
	for i, sv := range v.Slots {
		out.Slots[i] = &denv1.Slot{
			Index:       int32(sv.Index),
			Category:    sv.Category,
			Unlocked:    sv.Unlocked,
			BuildingId:  sv.BuildingID,
			CharacterId: sv.CharacterID,
			UnlockCost:  denv1.AmountOf(sv.UnlockCost),
		}
	}
	return out
}
