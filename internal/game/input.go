package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/iburimskiy/soundwave/internal/gameplay"
)

var digitKeys = [...]ebiten.Key{
	ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3, ebiten.KeyDigit4,
	ebiten.KeyDigit5, ebiten.KeyDigit6, ebiten.KeyDigit7, ebiten.KeyDigit8,
}

var mouseButtons = [...]ebiten.MouseButton{
	ebiten.MouseButtonLeft, ebiten.MouseButtonRight, ebiten.MouseButtonMiddle,
}

// PollEvents snapshots this tick's input. Every event carries the cursor
// position in board units.
func (g *Game) PollEvents() []gameplay.Event {
	x, y := ebiten.CursorPosition()
	pos := g.view.toBoard(x, y)

	var events []gameplay.Event
	add := func(kind gameplay.EventKind) {
		events = append(events, gameplay.Event{Kind: kind, Pos: pos})
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		add(gameplay.EventEscape)
	}
	if x != g.cursorX || y != g.cursorY {
		g.cursorX, g.cursorY = x, y
		add(gameplay.EventPointerMove)
	}
	for i, k := range digitKeys {
		if inpututil.IsKeyJustPressed(k) {
			add(gameplay.EventKey1 + gameplay.EventKind(i))
		}
	}
	for i, b := range mouseButtons {
		if inpututil.IsMouseButtonJustPressed(b) {
			add(gameplay.EventMouseButton1 + gameplay.EventKind(i))
		}
	}
	return events
}
