package wheel

import (
	"image/color"
	"math"

	"github.com/kamstrup/intmap"
)

const (
	pastelSaturation = 0.4
	pastelValue      = 0.9
)

// hsvToRgb converts HSV to RGB (hue: 0-360, saturation: 0-1, value: 0-1)
func hsvToRgb(h, s, v float64) (uint8, uint8, uint8) {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	c := v * s
	x := c * (1 - math.Abs(math.Mod(h/60, 2)-1))
	m := v - c

	var r, g, b float64
	switch {
	case h < 60:
		r, g, b = c, x, 0
	case h < 120:
		r, g, b = x, c, 0
	case h < 180:
		r, g, b = 0, c, x
	case h < 240:
		r, g, b = 0, x, c
	case h < 300:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}

	return uint8((r + m) * 255), uint8((g + m) * 255), uint8((b + m) * 255)
}

// darkenFactor maps darkness 1..10 onto a brightness multiplier 0.9..0.0.
func darkenFactor(darkness int) float64 {
	return 0.9 - float64(darkness-1)*0.1
}

// Pastel returns n evenly spaced rainbow colors dimmed by darkness.
func Pastel(n, darkness int) []color.RGBA {
	if n <= 0 {
		return nil
	}
	f := darkenFactor(darkness)
	if f < 0 {
		f = 0
	}
	out := make([]color.RGBA, n)
	for i := range out {
		r, g, b := hsvToRgb(float64(i)/float64(n)*360, pastelSaturation, pastelValue)
		out[i] = color.RGBA{
			R: uint8(float64(r) * f),
			G: uint8(float64(g) * f),
			B: uint8(float64(b) * f),
			A: 0xff,
		}
	}
	return out
}

// NumberColors remembers the color each candidate number had when the wheel
// was full, so the winners table keeps it after the wheel shrinks.
type NumberColors struct {
	colors *intmap.Map[int, color.RGBA]
}

func NewNumberColors(sections, darkness int) *NumberColors {
	nc := &NumberColors{colors: intmap.New[int, color.RGBA](sections)}
	nc.Assign(sections, darkness)
	return nc
}

// Assign maps numbers 1..sections onto Pastel(sections, darkness).
func (nc *NumberColors) Assign(sections, darkness int) {
	nc.colors.Clear()
	for i, c := range Pastel(sections, darkness) {
		nc.colors.Put(i+1, c)
	}
}

func (nc *NumberColors) Color(number int) color.RGBA {
	c, ok := nc.colors.Get(number)
	if !ok {
		return color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	}
	return c
}
