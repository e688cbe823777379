package tournament

import (
	"sync"
	"time"
)

// Countdown is a cancellable task that ticks once per interval and fires
// onExpire when the remaining count reaches zero.
type Countdown struct {
	remaining int
	interval  time.Duration
	stopCh    chan struct{}
	stopOnce  sync.Once
}

// NewCountdown prepares a countdown of the given number of ticks.
func NewCountdown(ticks int, interval time.Duration) *Countdown {
	return &Countdown{
		remaining: ticks,
		interval:  interval,
		stopCh:    make(chan struct{}),
	}
}

// Start runs the countdown in its own goroutine. onTick receives the remaining
// count after each decrement above zero; onExpire runs once at zero.
func (c *Countdown) Start(onTick func(remaining int), onExpire func()) {
	go c.run(onTick, onExpire)
}

// Cancel stops the countdown. Safe to call more than once.
func (c *Countdown) Cancel() {
	c.stopOnce.Do(func() { close(c.stopCh) })
}

// Stopped reports whether Cancel has been called.
func (c *Countdown) Stopped() bool {
	select {
	case <-c.stopCh:
		return true
	default:
		return false
	}
}

func (c *Countdown) run(onTick func(remaining int), onExpire func()) {
	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	remaining := c.remaining
	for {
		select {
		case <-c.stopCh:
			return
		case <-ticker.C:
			if c.Stopped() {
				return
			}
			remaining--
			if remaining > 0 {
				onTick(remaining)
				continue
			}
			onExpire()
			return
		}
	}
}
