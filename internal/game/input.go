package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/iburimskiy/lottery-wheel/internal/wheel"
)

// input is one tick worth of pointer and keyboard state. The mouse and the
// first touch both drive the same pointer.
type input struct {
	cursor   wheel.Point
	pressed  bool
	down     bool
	released bool
	actions  []action
}

var keyActions = []struct {
	key ebiten.Key
	act action
}{
	{ebiten.KeySpace, actSpin},
	{ebiten.KeyA, actAuto},
	{ebiten.KeyR, actReset},
	{ebiten.KeyS, actSettings},
	{ebiten.KeyE, actExport},
	{ebiten.KeyEscape, actBack},
	{ebiten.KeyQ, actQuit},
}

func (g *Game) readInput() input {
	var in input

	for _, ka := range keyActions {
		if inpututil.IsKeyJustPressed(ka.key) {
			in.actions = append(in.actions, ka.act)
		}
	}

	g.touchIDs = inpututil.AppendJustPressedTouchIDs(g.touchIDs[:0])
	if !g.touching && len(g.touchIDs) > 0 {
		g.touching = true
		g.touchID = g.touchIDs[0]
		x, y := ebiten.TouchPosition(g.touchID)
		in.cursor = wheel.Pt(x, y)
		in.pressed = true
		in.down = true
		return in
	}
	if g.touching {
		if inpututil.IsTouchJustReleased(g.touchID) {
			g.touching = false
			x, y := inpututil.TouchPositionInPreviousTick(g.touchID)
			in.cursor = wheel.Pt(x, y)
			in.released = true
			return in
		}
		x, y := ebiten.TouchPosition(g.touchID)
		in.cursor = wheel.Pt(x, y)
		in.down = true
		return in
	}

	x, y := ebiten.CursorPosition()
	in.cursor = wheel.Pt(x, y)
	in.pressed = inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	in.down = ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	in.released = inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft)
	return in
}
