package denserver

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/cory-johannsen/goblinden/internal/game/den"
)

func TestToStatus(t *testing.T) {
	cases := []struct {
		err  error
		code codes.Code
	}{
		{fmt.Errorf("build: %w: %w", den.ErrSlotLocked, den.ErrSlotNotFound), codes.NotFound},
		{fmt.Errorf("build: %w", den.ErrSlotLocked), codes.FailedPrecondition},
		{fmt.Errorf("slot 3: %w", den.ErrMaxCountReached), codes.FailedPrecondition},
		{den.ErrInsufficientResources, codes.ResourceExhausted},
		{den.ErrInvalidCharacter, codes.InvalidArgument},
		{fmt.Errorf("x: %w", ErrDenNotFound), codes.NotFound},
		{den.ErrInvalidState, codes.Internal},
		{errors.New("boom"), codes.Internal},
		{context.Canceled, codes.Canceled},
		{status.Error(codes.Aborted, "already a status"), codes.Aborted},
	}
	for _, tc := range cases {
		got := toStatus(tc.err)
		assert.Equal(t, tc.code, status.Code(got), "%v", tc.err)
		assert.Equal(t, tc.err.Error(), status.Convert(got).Message())
	}
	assert.NoError(t, toStatus(nil))
}
