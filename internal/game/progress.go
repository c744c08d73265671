package game

import (
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	barX      = 20
	barY      = 6
	barHeight = 4
)

// playback returns the elapsed and total time and the played share.
func playback(p Progress) (elapsed, total time.Duration, frac float64) {
	rate := p.SampleRate()
	max := p.MaxFrame()
	if rate <= 0 || max <= 0 {
		return 0, 0, 0
	}
	frac = clamp01(float64(p.CurrentFrame()) / float64(max))
	total = time.Duration(float64(max) / rate * float64(time.Second))
	elapsed = time.Duration(frac * float64(total))
	return elapsed, total, frac
}

func (g *Game) drawProgressBar(screen *ebiten.Image) {
	if g.progress == nil {
		return
	}
	elapsed, total, progress := playback(g.progress)
	if total == 0 {
		return
	}

	barWidth := g.window.Width - 2*barX
	vector.DrawFilledRect(screen, barX, barY, float32(barWidth), barHeight, color.RGBA{R: 25, G: 30, B: 40, A: 200}, false)
	if progress > 0 {
		vector.DrawFilledRect(screen, barX, barY, float32(progress*float64(barWidth)), barHeight, color.RGBA{R: 200, G: 200, B: 210, A: 180}, false)
	}

	current := formatDuration(elapsed)
	totalTime := formatDuration(total)
	ebitenutil.DebugPrintAt(screen, current, barX, barY+barHeight+2)
	ebitenutil.DebugPrintAt(screen, totalTime, barX+barWidth-len(totalTime)*6, barY+barHeight+2)
}
