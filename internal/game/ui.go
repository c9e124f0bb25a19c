package game

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/lottery-wheel/internal/config"
	"github.com/iburimskiy/lottery-wheel/internal/wheel"
)

type action int

const (
	actNone action = iota
	actSpin
	actAuto
	actReset
	actSettings
	actExport
	actBack
	actQuit
	actDefaults
	actPage
	actSave
)

var (
	colBlack       = color.RGBA{A: 0xff}
	colWhite       = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	colRed         = color.RGBA{R: 0xff, A: 0xff}
	colDarkBrown   = color.RGBA{R: 139, G: 69, B: 19, A: 0xff}
	colTop         = color.RGBA{R: 200, G: 200, B: 200, A: 0xff}
	colBottom      = color.RGBA{R: 150, G: 150, B: 150, A: 0xff}
	colHoverTop    = color.RGBA{R: 220, G: 220, B: 220, A: 0xff}
	colHoverBottom = color.RGBA{R: 170, G: 170, B: 170, A: 0xff}
)

type button struct {
	label string
	rect  wheel.Rect
	act   action
}

// mainButtons lays the wheel screen buttons out in a centered row.
func mainButtons() []button {
	labels := []struct {
		label string
		act   action
	}{
		{"Spin", actSpin},
		{"Auto Spin", actAuto},
		{"Reset", actReset},
		{"Settings", actSettings},
		{"Export", actExport},
	}
	total := len(labels)*config.ButtonWidth + (len(labels)-1)*config.ButtonGap
	x := (config.ScreenWidth - total) / 2

	buttons := make([]button, len(labels))
	for i, l := range labels {
		buttons[i] = button{
			label: l.label,
			act:   l.act,
			rect: wheel.Rect{
				X: float64(x + i*(config.ButtonWidth+config.ButtonGap)),
				Y: config.ButtonY,
				W: config.ButtonWidth,
				H: config.ButtonHeight,
			},
		}
	}
	return buttons
}

func hitButton(buttons []button, p wheel.Point) action {
	for _, b := range buttons {
		if b.rect.Contains(p) {
			return b.act
		}
	}
	return actNone
}

// drawButton paints a vertical gradient box with a centered label.
func (g *Game) drawButton(screen *ebiten.Image, b button, face text.Face) {
	top, bottom := colTop, colBottom
	if b.rect.Contains(g.cursor) {
		top, bottom = colHoverTop, colHoverBottom
	}

	h := int(b.rect.H)
	for dy := 0; dy < h; dy++ {
		t := 0.0
		if h > 1 {
			t = float64(dy) / float64(h-1)
		}
		vector.DrawFilledRect(screen, float32(b.rect.X), float32(b.rect.Y)+float32(dy), float32(b.rect.W), 1, lerpColor(top, bottom, t), false)
	}

	c := b.rect.Center()
	drawCentered(screen, b.label, face, c.X, c.Y, colBlack)
}

func drawCentered(screen *ebiten.Image, s string, face text.Face, x, y float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	text.Draw(screen, s, face, op)
}
