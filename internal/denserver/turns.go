package denserver

import (
	"context"
	"sync"

	"go.uber.org/zap"
)

// TurnProcessor ends a registry turn on every clock tick. It satisfies
// server.Service.
type TurnProcessor struct {
	clock    *TurnClock
	registry *Registry
	logger   *zap.Logger

	done     chan struct{}
	stopOnce sync.Once
}

// NewTurnProcessor creates a TurnProcessor.
//
// Precondition: clock, registry and logger must be non-nil.
func NewTurnProcessor(clock *TurnClock, registry *Registry, logger *zap.Logger) *TurnProcessor {
	return &TurnProcessor{
		clock:    clock,
		registry: registry,
		logger:   logger,
		done:     make(chan struct{}),
	}
}

// Start runs the clock and pays out every tick until Stop is called.
// Ticks that arrive while a payout is still running are dropped, so a slow
// store delays turns rather than queueing them.
func (p *TurnProcessor) Start() error {
	ch := make(chan Tick, 1)
	p.clock.Subscribe(ch)
	defer p.clock.Unsubscribe(ch)
	stop := p.clock.Start()
	defer stop()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() {
		<-p.done
		cancel()
	}()

	for {
		select {
		case tick := <-ch:
			rep, err := p.registry.AdvanceTurn(ctx)
			if err != nil {
				p.logger.Error("turn payout incomplete",
					zap.Int64("tick", int64(tick)),
					zap.Int64("turn", rep.Turn),
					zap.Int("failed", rep.Failed),
					zap.Error(err),
				)
				continue
			}
			p.logger.Info("turn ended", zap.Int64("turn", rep.Turn), zap.Int("paid", rep.Paid))
		case <-p.done:
			return nil
		}
	}
}

// Stop ends Start. Calling Stop more than once is safe.
func (p *TurnProcessor) Stop() {
	p.stopOnce.Do(func() { close(p.done) })
}
