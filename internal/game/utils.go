package game

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/iburimskiy/lottery-wheel/internal/wheel"
)

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// settingColor resolves a clamped settings color; unparsable values draw
// black.
func settingColor(c wheel.Color) color.RGBA {
	rgba, ok := c.RGBA()
	if !ok {
		return colBlack
	}
	return rgba
}

// lerpColor blends a toward b by t (0-1), truncating each channel.
func lerpColor(a, b color.RGBA, t float64) color.RGBA {
	t = clamp01(t)
	mix := func(x, y uint8) uint8 {
		return uint8(float64(x)*(1-t) + float64(y)*t)
	}
	return color.RGBA{R: mix(a.R, b.R), G: mix(a.G, b.G), B: mix(a.B, b.B), A: mix(a.A, b.A)}
}

// statusLine formats the debug line printed in the top left corner.
func statusLine(w *wheel.Wheel, lastErr error) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Remaining: %d  Winners: %d", len(w.Remaining()), len(w.Winners()))
	if active, left := w.Auto(); active {
		fmt.Fprintf(&sb, "  Auto: %d left", left)
	}
	if w.Phase() != wheel.Idle {
		fmt.Fprintf(&sb, "  [%s]", w.Phase())
	}
	if len(w.Remaining()) == 0 {
		sb.WriteString("  No numbers left - press Reset")
	}
	if lastErr != nil {
		sb.WriteString(" | Error: " + lastErr.Error())
	}
	return sb.String()
}
