package ebitenhost

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// fade eases the frame opacity from 0 to 1 after the window opens.
// A zero or negative duration starts fully opaque.
type fade struct {
	tween *gween.Tween
	value float32
	done  bool
}

func newFade(duration float32) *fade {
	if duration <= 0 {
		return &fade{value: 1, done: true}
	}
	return &fade{tween: gween.New(0, 1, duration, ease.OutQuad)}
}

// update advances the fade by dt seconds.
func (f *fade) update(dt float32) {
	if f.done {
		return
	}
	v, finished := f.tween.Update(dt)
	f.value = v
	f.done = finished
	if finished {
		f.value = 1
	}
}

// alpha returns the current opacity in [0, 1].
func (f *fade) alpha() float64 {
	return float64(f.value)
}
