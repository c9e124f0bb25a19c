package wheel

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHsvToRgb(t *testing.T) {
	tests := []struct {
		h, s, v float64
		r, g, b uint8
	}{
		{0, 1, 1, 255, 0, 0},
		{120, 1, 1, 0, 255, 0},
		{240, 1, 1, 0, 0, 255},
		{360, 1, 1, 255, 0, 0},
		{-120, 1, 1, 0, 0, 255},
		{0, 0, 1, 255, 255, 255},
	}
	for _, tt := range tests {
		r, g, b := hsvToRgb(tt.h, tt.s, tt.v)
		assert.Equal(t, [3]uint8{tt.r, tt.g, tt.b}, [3]uint8{r, g, b}, "hsv(%v,%v,%v)", tt.h, tt.s, tt.v)
	}
}

func TestPastel(t *testing.T) {
	assert.Nil(t, Pastel(0, 1))

	colors := Pastel(37, 1)
	assert.Len(t, colors, 37)

	// hue 0, s 0.4, v 0.9 -> (229, 137, 137), then * 0.9
	assert.Equal(t, color.RGBA{R: 206, G: 123, B: 123, A: 255}, colors[0])

	for _, c := range colors {
		assert.Equal(t, uint8(255), c.A)
	}
}

func TestPastelDarkness(t *testing.T) {
	light := Pastel(6, 1)
	dark := Pastel(6, 5)
	black := Pastel(6, 10)

	for i := range light {
		assert.Less(t, dark[i].R, light[i].R)
		assert.Equal(t, color.RGBA{A: 255}, black[i])
	}
}

func TestNumberColors(t *testing.T) {
	nc := NewNumberColors(10, 1)

	palette := Pastel(10, 1)
	assert.Equal(t, palette[0], nc.Color(1))
	assert.Equal(t, palette[9], nc.Color(10))
	assert.Equal(t, color.RGBA{R: 255, G: 255, B: 255, A: 255}, nc.Color(11))

	nc.Assign(3, 2)
	assert.Equal(t, Pastel(3, 2)[2], nc.Color(3))
	assert.Equal(t, color.RGBA{R: 255, G: 255, B: 255, A: 255}, nc.Color(4), "old entries are cleared")
}
