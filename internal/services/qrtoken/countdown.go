package qrtoken

import (
	"fmt"
	"sync"
	"time"

	"sotrapay/internal/models"
)

// TickInterval is how often a visible token's remaining validity is redrawn.
const TickInterval = time.Second

// Countdown drives the displayed validity of one visible token. It is a
// liveness aid only: it lets the UI close an expired code without a server
// round trip, and it never touches the token's authoritative status.
type Countdown struct {
	expiresAt time.Time
	interval  time.Duration
	now       func() time.Time

	stopOnce sync.Once
	stop     chan struct{}
	done     chan struct{}
}

// NewCountdown builds a countdown against the token's server-assigned expiry.
func NewCountdown(token *models.PaymentQRToken) *Countdown {
	return &Countdown{
		expiresAt: token.ExpiresAt,
		interval:  TickInterval,
		now:       time.Now,
		stop:      make(chan struct{}),
		done:      make(chan struct{}),
	}
}

// Start begins ticking. onTick receives the remaining validity, clamped at
// zero and strictly non-increasing; onExpire fires exactly once, after a
// final zero tick. Start returns immediately.
func (c *Countdown) Start(onTick func(remaining time.Duration), onExpire func()) {
	go c.run(onTick, onExpire)
}

func (c *Countdown) run(onTick func(remaining time.Duration), onExpire func()) {
	defer close(c.done)

	if c.fire(onTick, onExpire) {
		return
	}

	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	for {
		select {
		case <-c.stop:
			return
		case <-ticker.C:
			// A tick racing Stop must be a no-op.
			select {
			case <-c.stop:
				return
			default:
			}
			if c.fire(onTick, onExpire) {
				return
			}
		}
	}
}

// fire emits one tick and reports whether the countdown has finished.
func (c *Countdown) fire(onTick func(remaining time.Duration), onExpire func()) bool {
	remaining := c.expiresAt.Sub(c.now())
	if remaining < 0 {
		remaining = 0
	}
	if onTick != nil {
		onTick(remaining)
	}
	if remaining == 0 {
		if onExpire != nil {
			onExpire()
		}
		return true
	}
	return false
}

// Stop cancels the countdown. It is idempotent and safe to call after the
// owning view is dismissed; any tick already scheduled becomes a no-op.
func (c *Countdown) Stop() {
	c.stopOnce.Do(func() { close(c.stop) })
}

// Wait blocks until the countdown goroutine has exited. Test helper.
func (c *Countdown) Wait() {
	<-c.done
}

// FormatRemaining renders a remaining validity as M:SS. Zero renders as
// exactly "0:00".
func FormatRemaining(remaining time.Duration) string {
	if remaining < 0 {
		remaining = 0
	}
	total := int(remaining / time.Second)
	return fmt.Sprintf("%d:%02d", total/60, total%60)
}
