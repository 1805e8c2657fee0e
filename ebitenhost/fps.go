package ebitenhost

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

const fpsRefresh = 0.5 // seconds between label refreshes

// fpsLabel shows the current FPS and TPS in the top-left corner. The text is
// refreshed every fpsRefresh seconds.
type fpsLabel struct {
	elapsed float64
	text    string
	sample  func() (fps, tps float64)
}

func newFPSLabel() *fpsLabel {
	return &fpsLabel{
		elapsed: fpsRefresh,
		sample: func() (float64, float64) {
			return ebiten.ActualFPS(), ebiten.ActualTPS()
		},
	}
}

func (l *fpsLabel) update(dt float64) {
	l.elapsed += dt
	if l.elapsed < fpsRefresh {
		return
	}
	l.elapsed = 0
	fps, tps := l.sample()
	l.text = fmt.Sprintf("FPS: %.1f\nTPS: %.1f", fps, tps)
}

func (l *fpsLabel) draw(screen *ebiten.Image) {
	ebitenutil.DebugPrint(screen, l.text)
}
