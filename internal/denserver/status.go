package denserver

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/cory-johannsen/goblinden/internal/denserver/denv1"
	"github.com/cory-johannsen/goblinden/internal/game/building"
	"github.com/cory-johannsen/goblinden/internal/game/den"
	"github.com/cory-johannsen/goblinden/internal/game/economy"
)

// statusCodes maps domain sentinels to gRPC codes. Order matters: the first
// match wins, so an out-of-range build (locked and not found) reports NotFound.
var statusCodes = []struct {
	err  error
	code codes.Code
}{
	{ErrInvalidDenID, codes.InvalidArgument},
	{den.ErrInvalidCharacter, codes.InvalidArgument},
	{ErrDenNotFound, codes.NotFound},
	{den.ErrSlotNotFound, codes.NotFound},
	{den.ErrUnknownBuilding, codes.NotFound},
	{building.ErrNotFound, codes.NotFound},
	{den.ErrInsufficientResources, codes.ResourceExhausted},
	{economy.ErrInsufficientFunds, codes.ResourceExhausted},
	{den.ErrInvalidState, codes.Internal},
	{den.ErrSlotLocked, codes.FailedPrecondition},
	{den.ErrSlotAlreadyUnlocked, codes.FailedPrecondition},
	{den.ErrSlotOccupied, codes.FailedPrecondition},
	{den.ErrSlotEmpty, codes.FailedPrecondition},
	{den.ErrCategoryMismatch, codes.FailedPrecondition},
	{den.ErrMaxCountReached, codes.FailedPrecondition},
	{den.ErrBuildingLocked, codes.FailedPrecondition},
	{den.ErrAssignmentNotAllowed, codes.FailedPrecondition},
	{den.ErrNoBuilding, codes.FailedPrecondition},
	{den.ErrSlotAlreadyAssigned, codes.FailedPrecondition},
	{den.ErrCharacterAlreadyAssigned, codes.FailedPrecondition},
	{den.ErrNotAssigned, codes.FailedPrecondition},
}

// toStatus converts err into a gRPC status error carrying err's message.
func toStatus(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := status.FromError(err); ok {
		return err
	}
	switch {
	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, err.Error())
	}
	for _, sc := range statusCodes {
		if errors.Is(err, sc.err) {
			return status.Error(sc.code, err.Error())
		}
	}
	return status.Error(codes.Internal, err.Error())
}

// turnStatus reports a partially failed turn as Unavailable, carrying resp as
// a status detail.
func turnStatus(resp *denv1.EndTurnResponse, err error) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return toStatus(err)
	}
	st := status.New(codes.Unavailable,
		fmt.Sprintf("turn %d: %d dens paid, %d failed: %v", resp.GetTurn(), resp.GetPaid(), resp.GetFailed(), err))
	withResp, derr := st.WithDetails(resp)
	if derr != nil {
		return st.Err()
	}
	return withResp.Err()
}
