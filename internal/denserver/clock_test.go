package denserver_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/cory-johannsen/goblinden/internal/denserver"
	"github.com/cory-johannsen/goblinden/internal/game/economy"
)

func TestTurnClock_Ticks(t *testing.T) {
	clk := denserver.NewTurnClock(20 * time.Millisecond)
	ch := make(chan denserver.Tick, 4)
	clk.Subscribe(ch)
	stop := clk.Start()
	defer stop()
	defer clk.Unsubscribe(ch)

	for want := denserver.Tick(1); want <= 2; want++ {
		select {
		case got := <-ch:
			assert.Equal(t, want, got)
		case <-time.After(time.Second):
			t.Fatalf("timed out waiting for tick %d", want)
		}
	}
	assert.GreaterOrEqual(t, clk.Ticks(), int64(2))
}

func TestTurnClock_StopIsIdempotent(t *testing.T) {
	clk := denserver.NewTurnClock(10 * time.Millisecond)
	stop := clk.Start()
	stop()
	stop()
	n := clk.Ticks()
	time.Sleep(40 * time.Millisecond)
	assert.Equal(t, n, clk.Ticks())
}

func TestTurnClock_UnsubscribeStopsDelivery(t *testing.T) {
	clk := denserver.NewTurnClock(10 * time.Millisecond)
	ch := make(chan denserver.Tick, 16)
	clk.Subscribe(ch)
	clk.Unsubscribe(ch)
	stop := clk.Start()
	time.Sleep(50 * time.Millisecond)
	stop()
	assert.Empty(t, ch)
}

func TestTurnProcessor_PaysEachTick(t *testing.T) {
	reg := newRegistry(t, nil)
	ctx := context.Background()
	v, err := reg.Create(ctx)
	require.NoError(t, err)
	_, _, err = reg.Build(ctx, v.ID, 1, "farm")
	require.NoError(t, err)

	proc := denserver.NewTurnProcessor(denserver.NewTurnClock(10*time.Millisecond), reg, zaptest.NewLogger(t))
	done := make(chan error, 1)
	go func() { done <- proc.Start() }()

	require.Eventually(t, func() bool { return reg.Turn() >= 2 }, 2*time.Second, 5*time.Millisecond)
	proc.Stop()
	proc.Stop()
	require.NoError(t, <-done)

	got, err := reg.Get(v.ID)
	require.NoError(t, err)
	turns := int(got.Turn)
	assert.Equal(t, reg.Turn(), got.Turn)
	assert.Equal(t, economy.Amount{Gold: 150, Food: 50 + 10*turns}, got.Balance)
}
