// Package anim eases freshly changed cells into their new colour.
package anim

import (
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Fader keeps one tween per recently changed cell. Cells without a running
// tween are fully shown.
type Fader struct {
	duration float32
	tweens   map[int]*gween.Tween
	alpha    map[int]float32
}

// NewFader returns a Fader whose fades last d. A non-positive d disables
// fading.
func NewFader(d time.Duration) *Fader {
	return &Fader{
		duration: float32(d.Seconds()),
		tweens:   make(map[int]*gween.Tween),
		alpha:    make(map[int]float32),
	}
}

// Start (re)starts the fade of the cell at idx.
func (f *Fader) Start(idx int) {
	if f.duration <= 0 {
		return
	}
	f.tweens[idx] = gween.New(0, 1, f.duration, ease.OutQuad)
	f.alpha[idx] = 0
}

// Update advances every fade by dt seconds and drops finished ones.
func (f *Fader) Update(dt float32) {
	for idx, t := range f.tweens {
		cur, finished := t.Update(dt)
		if finished {
			delete(f.tweens, idx)
			delete(f.alpha, idx)
			continue
		}
		f.alpha[idx] = cur
	}
}

// Alpha returns how far the cell at idx has faded in, in [0, 1].
func (f *Fader) Alpha(idx int) float32 {
	if a, ok := f.alpha[idx]; ok {
		return a
	}
	return 1
}

// Active returns the number of running fades.
func (f *Fader) Active() int { return len(f.tweens) }

// Reset drops every running fade.
func (f *Fader) Reset() {
	clear(f.tweens)
	clear(f.alpha)
}
