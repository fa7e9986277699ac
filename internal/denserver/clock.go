package denserver

import (
	"sync"
	"time"
)

// Tick is the sequence number of a turn clock tick, starting at 1.
type Tick int64

// TurnClock emits a tick every interval and broadcasts it to subscribers.
type TurnClock struct {
	interval    time.Duration
	mu          sync.Mutex
	ticks       int64
	subscribers map[chan<- Tick]struct{}
}

// NewTurnClock creates a stopped TurnClock.
//
// Precondition: interval > 0.
// Postcondition: Returns a non-nil *TurnClock ready to Start().
func NewTurnClock(interval time.Duration) *TurnClock {
	return &TurnClock{
		interval:    interval,
		subscribers: make(map[chan<- Tick]struct{}),
	}
}

// Ticks returns how many ticks have fired.
func (c *TurnClock) Ticks() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ticks
}

// Subscribe registers ch to receive every tick.
// If ch is full, the tick is dropped for that subscriber (non-blocking).
//
// Precondition: ch must not be nil.
func (c *TurnClock) Subscribe(ch chan<- Tick) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.subscribers[ch] = struct{}{}
}

// Unsubscribe removes ch from the subscriber list.
func (c *TurnClock) Unsubscribe(ch chan<- Tick) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.subscribers, ch)
}

// Start launches the clock goroutine and returns a stop function.
// Calling stop() is idempotent.
func (c *TurnClock) Start() (stop func()) {
	done := make(chan struct{})
	var once sync.Once
	go func() {
		ticker := time.NewTicker(c.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				c.mu.Lock()
				c.ticks++
				t := Tick(c.ticks)
				subs := make([]chan<- Tick, 0, len(c.subscribers))
				for ch := range c.subscribers {
					subs = append(subs, ch)
				}
				c.mu.Unlock()
				for _, ch := range subs {
					select {
					case ch <- t:
					default:
					}
				}
			case <-done:
				return
			}
		}
	}()
	return func() {
		once.Do(func() { close(done) })
	}
}
