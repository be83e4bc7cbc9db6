package core

import (
	"context"
	"time"
)

// FixedStep paces animation events at a steady rate independent of the
// frame rate.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
	now         func() time.Time
}

// NewFixedStep constructs a FixedStep controller targeting the given rate
// in steps per second.
func NewFixedStep(rate int) *FixedStep {
	if rate <= 0 {
		rate = 60
	}
	fs := &FixedStep{now: time.Now}
	fs.SetRate(rate)
	fs.accumulator = fs.step
	return fs
}

// SetRate changes the step rate. It is safe to call from the main loop.
func (f *FixedStep) SetRate(rate int) {
	if rate <= 0 {
		rate = 60
	}
	f.step = time.Second / time.Duration(rate)
}

// Rate returns the configured steps per second.
func (f *FixedStep) Rate() int { return int(time.Second / f.step) }

// Due returns how many steps elapsed since the previous call, consuming
// them. At most max steps are reported; the remainder is dropped so a long
// stall does not replay as a burst.
func (f *FixedStep) Due(max int) int {
	f.advance()
	n := int(f.accumulator / f.step)
	if n > max {
		n = max
		f.accumulator = 0
		return n
	}
	f.accumulator -= time.Duration(n) * f.step
	return n
}

func (f *FixedStep) advance() {
	now := f.now()
	if f.last.IsZero() {
		f.last = now
	}
	f.accumulator += now.Sub(f.last)
	f.last = now
}

// Sleep waits for d or until ctx is done, whichever comes first. It is the
// delay primitive for push-mode visitors.
func Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
