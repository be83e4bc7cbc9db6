package core

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time { return c.t }

func (c *fakeClock) add(d time.Duration) { c.t = c.t.Add(d) }

func TestFixedStepDue(t *testing.T) {
	clock := &fakeClock{t: time.Unix(100, 0)}
	fs := NewFixedStep(100)
	fs.now = clock.now

	assert.Equal(t, 1, fs.Due(10), "first call releases the primed step")
	assert.Equal(t, 0, fs.Due(10))

	clock.add(35 * time.Millisecond)
	assert.Equal(t, 3, fs.Due(10))
	clock.add(5 * time.Millisecond)
	assert.Equal(t, 1, fs.Due(10), "remainder carries over")

	clock.add(time.Second)
	assert.Equal(t, 10, fs.Due(10))
	assert.Equal(t, 0, fs.Due(10), "a clamped burst drops the backlog")
}

func TestFixedStepRate(t *testing.T) {
	fs := NewFixedStep(0)
	assert.Equal(t, 60, fs.Rate())
	fs.SetRate(250)
	assert.Equal(t, 250, fs.Rate())
}

func TestSleepHonoursContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, Sleep(ctx, time.Hour), context.Canceled)
	assert.NoError(t, Sleep(context.Background(), time.Millisecond))
	assert.NoError(t, Sleep(context.Background(), 0))
}
