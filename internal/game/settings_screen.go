package game

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/iburimskiy/lottery-wheel/internal/config"
	"github.com/iburimskiy/lottery-wheel/internal/wheel"
)

const (
	footerButtonWidth = 240
	footerGap         = 20

	// Page 0 holds the draw and spin fields, page 1 the appearance fields.
	settingsPages = 2
)

type settingsRow struct {
	field wheel.Field
	page  int
	y     float64
	plus  button
	minus button
}

func fieldPage(f wheel.Field) int {
	if f >= wheel.FirstAppearanceField {
		return 1
	}
	return 0
}

// settingsLayout places one row per field from the top of its page, with
// the Reset to Default, Next Page and Save buttons under the longest page.
func settingsLayout() ([]settingsRow, []button) {
	fields := wheel.Fields()
	rows := make([]settingsRow, len(fields))
	perPage := make([]int, settingsPages)

	for i, f := range fields {
		page := fieldPage(f)
		y := float64(config.SettingsTop + perPage[page]*config.SettingsSpacing)
		perPage[page]++
		rows[i] = settingsRow{
			field: f,
			page:  page,
			y:     y,
			plus: button{label: "+", rect: wheel.Rect{
				X: config.SettingsValueX + 130, Y: y - 10,
				W: config.SettingsButtonSize, H: config.SettingsButtonSize,
			}},
			minus: button{label: "-", rect: wheel.Rect{
				X: config.SettingsValueX + 210, Y: y - 10,
				W: config.SettingsButtonSize, H: config.SettingsButtonSize,
			}},
		}
	}

	footerY := float64(config.SettingsTop + max(perPage[0], perPage[1])*config.SettingsSpacing + 20)
	labels := []struct {
		label string
		act   action
	}{
		{"Reset to Default", actDefaults},
		{"Next Page", actPage},
		{"Save", actSave},
	}
	total := len(labels)*footerButtonWidth + (len(labels)-1)*footerGap
	x := (config.ScreenWidth - total) / 2

	footer := make([]button, len(labels))
	for i, l := range labels {
		footer[i] = button{label: l.label, act: l.act, rect: wheel.Rect{
			X: float64(x + i*(footerButtonWidth+footerGap)), Y: footerY,
			W: footerButtonWidth, H: config.ButtonHeight,
		}}
	}
	return rows, footer
}

// clickSettings applies a click on the current settings page to the draft.
func (g *Game) clickSettings(p wheel.Point) error {
	for _, row := range g.rows {
		if row.page != g.page {
			continue
		}
		switch {
		case row.plus.rect.Contains(p):
			g.draft.Adjust(row.field, 1)
			return nil
		case row.minus.rect.Contains(p):
			g.draft.Adjust(row.field, -1)
			return nil
		}
	}
	return g.do(hitButton(g.footer, p))
}

func (g *Game) drawSettings(screen *ebiten.Image) {
	screen.Fill(colBlack)

	for _, row := range g.rows {
		if row.page != g.page {
			continue
		}
		mid := row.y + config.SettingsButtonSize/2 - 10
		drawCentered(screen, row.field.Label(), g.fonts.settings, config.SettingsLabelX, mid, colWhite)
		drawCentered(screen, g.draft.Value(row.field), g.fonts.settings, config.SettingsValueX, mid, colWhite)
		g.drawButton(screen, row.plus, g.fonts.button)
		g.drawButton(screen, row.minus, g.fonts.button)
	}
	for _, b := range g.footer {
		g.drawButton(screen, b, g.fonts.button)
	}
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Page %d/%d", g.page+1, settingsPages), 12, 12)
}
