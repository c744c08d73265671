// Package game runs a session inside an ebiten window.
package game

import (
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/soundwave/internal/config"
	"github.com/iburimskiy/soundwave/internal/gameplay"
	"github.com/iburimskiy/soundwave/internal/geom"
)

// Progress is the playback position shown in the overlay.
type Progress interface {
	SampleRate() float64
	CurrentFrame() int
	MaxFrame() int
}

// Game adapts the engine to ebiten.Game and is the engine's renderer.
type Game struct {
	displayList

	engine   *gameplay.Engine
	progress Progress
	window   config.WindowConfig
	view     viewport
	fonts    *fontCache

	lastTick         time.Time
	cursorX, cursorY int
}

func New(engine *gameplay.Engine, progress Progress, window config.WindowConfig) (*Game, error) {
	fonts, err := newFontCache()
	if err != nil {
		return nil, err
	}
	return &Game{
		engine:   engine,
		progress: progress,
		window:   window,
		view:     newViewport(window.Width, window.Height, engine.Board().Size()),
		fonts:    fonts,
	}, nil
}

func (g *Game) Update() error {
	g.reset()
	if !g.engine.Frame(g) {
		return ebiten.Termination
	}
	return nil
}

// FrameDelta is the wall-clock time since the previous tick, in seconds.
func (g *Game) FrameDelta() float64 {
	now := time.Now()
	dt := 1 / float64(ebiten.TPS())
	if !g.lastTick.IsZero() {
		dt = now.Sub(g.lastTick).Seconds()
	}
	g.lastTick = now
	return dt
}

func (g *Game) ShouldTerminate() bool {
	return ebiten.IsWindowBeingClosed()
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.window.Width, g.window.Height
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	for _, op := range g.ops {
		g.replay(screen, op)
	}
	g.drawProgressBar(screen)
}

func (g *Game) replay(screen *ebiten.Image, op drawOp) {
	c := g.view.toScreen(op.pos)
	switch op.kind {
	case opFillCircle:
		vector.DrawFilledCircle(screen, float32(c.X), float32(c.Y), float32(g.view.length(op.radius)), op.clr, true)
	case opOutlineCircle:
		inner, outer := g.view.length(op.inner), g.view.length(op.radius)
		if outer <= 0 {
			return
		}
		vector.StrokeCircle(screen, float32(c.X), float32(c.Y), float32((inner+outer)/2), float32(outer-inner), op.clr, true)
	case opLabelCircle:
		size := int(math.Round(g.view.length(op.radius)))
		g.drawCentered(screen, op.text, size, c, op.clr)
	case opLabelRectangle:
		size := int(math.Round(g.view.length(op.size.Y) * 0.8))
		g.drawCentered(screen, op.text, size, g.view.toScreen(op.pos.Add(op.size.Scale(0.5))), op.clr)
	}
}

func (g *Game) drawCentered(screen *ebiten.Image, s string, size int, center geom.Vec2, clr color.Color) {
	if s == "" {
		return
	}
	face := g.fonts.face(size)
	b := text.BoundString(face, s)
	x := int(center.X) - b.Min.X - b.Dx()/2
	y := int(center.Y) - b.Min.Y - b.Dy()/2
	text.Draw(screen, s, face, x, y, clr)
}
