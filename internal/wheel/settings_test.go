package wheel

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func assertInRange(t *testing.T, s Settings) {
	t.Helper()
	assert.GreaterOrEqual(t, s.Sections, MinSections)
	assert.LessOrEqual(t, s.Sections, MaxSections)
	assert.GreaterOrEqual(t, s.MaxSpeed, MinMaxSpeed)
	assert.LessOrEqual(t, s.MaxSpeed, MaxMaxSpeed)
	assert.GreaterOrEqual(t, s.MinSpins, MinMinSpins)
	assert.LessOrEqual(t, s.MinSpins, MaxMinSpins)
	assert.GreaterOrEqual(t, s.MaxSpins, s.MinSpins)
	assert.LessOrEqual(t, s.MaxSpins, MaxMaxSpins)
	assert.GreaterOrEqual(t, s.Deceleration, MinDeceleration)
	assert.LessOrEqual(t, s.Deceleration, MaxDeceleration)
	assert.GreaterOrEqual(t, s.Darkness, MinDarkness)
	assert.LessOrEqual(t, s.Darkness, MaxDarkness)
	assert.GreaterOrEqual(t, s.AutoSpin, MinAutoSpin)
	assert.LessOrEqual(t, s.AutoSpin, MaxAutoSpin)
	assert.GreaterOrEqual(t, s.FlashCount, MinFlashCount)
	assert.LessOrEqual(t, s.FlashCount, MaxFlashCount)
	assert.GreaterOrEqual(t, s.FlashSpeed, MinFlashSpeed)
	assert.LessOrEqual(t, s.FlashSpeed, MaxFlashSpeed)
	assert.True(t, validDirection(s.Direction))
	assert.GreaterOrEqual(t, s.WheelSize, MinWheelSize)
	assert.LessOrEqual(t, s.WheelSize, MaxWheelSize)
	assert.GreaterOrEqual(t, s.WheelFontSize, MinWheelFontSize)
	assert.LessOrEqual(t, s.WheelFontSize, MaxWheelFontSize)
	assert.GreaterOrEqual(t, s.TableFontSize, MinTableFontSize)
	assert.LessOrEqual(t, s.TableFontSize, MaxTableFontSize)
	assert.GreaterOrEqual(t, s.BorderWidth, MinBorderWidth)
	assert.LessOrEqual(t, s.BorderWidth, MaxBorderWidth)
	assert.GreaterOrEqual(t, s.HubSize, MinHubSize)
	assert.LessOrEqual(t, s.HubSize, MaxHubSize)
	assert.GreaterOrEqual(t, s.DotSize, MinDotSize)
	assert.LessOrEqual(t, s.DotSize, MaxDotSize)
	assert.GreaterOrEqual(t, s.DotOffset, MinDotOffset)
	assert.LessOrEqual(t, s.DotOffset, MaxDotOffset)
	assert.Contains(t, []NumberStyle{Regular, Bold}, s.NumberStyle)
	for _, c := range []Color{s.NumberColor, s.BorderColor, s.HubColor, s.DotColor, s.Background, s.FlashColor} {
		_, ok := c.RGBA()
		assert.True(t, ok, "color %q", c)
	}
}

func TestDefaultSettingsAreClamped(t *testing.T) {
	s := DefaultSettings()
	before := s
	s.Clamp()
	assert.Equal(t, before, s)
}

func TestAdjustStaysInRange(t *testing.T) {
	for _, f := range Fields() {
		t.Run(f.Label(), func(t *testing.T) {
			s := DefaultSettings()
			for i := 0; i < 200; i++ {
				s.Adjust(f, 1)
				assertInRange(t, s)
			}
			for i := 0; i < 400; i++ {
				s.Adjust(f, -1)
				assertInRange(t, s)
			}
		})
	}
}

func TestAdjustBounds(t *testing.T) {
	s := DefaultSettings()
	for i := 0; i < 200; i++ {
		s.Adjust(FieldSections, 1)
		s.Adjust(FieldDeceleration, 1)
		s.Adjust(FieldAutoSpin, -1)
		s.Adjust(FieldFlashSpeed, 1)
	}
	assert.Equal(t, MaxSections, s.Sections)
	assert.Equal(t, MaxDeceleration, s.Deceleration)
	assert.Equal(t, MinAutoSpin, s.AutoSpin)
	assert.Equal(t, MaxFlashSpeed, s.FlashSpeed)
}

func TestMaxSpinsFollowsMinSpins(t *testing.T) {
	s := DefaultSettings()
	for i := 0; i < 20; i++ {
		s.Adjust(FieldMinSpins, 1)
	}
	assert.Equal(t, MaxMinSpins, s.MinSpins)
	assert.Equal(t, MaxMinSpins, s.MaxSpins)

	s.Adjust(FieldMaxSpins, -1)
	assert.Equal(t, s.MinSpins, s.MaxSpins)
}

func TestDecelerationStepsStayOnGrid(t *testing.T) {
	s := DefaultSettings()
	for i := 0; i < 7; i++ {
		s.Adjust(FieldDeceleration, 1)
	}
	assert.Equal(t, 0.17, s.Deceleration)
	assert.Equal(t, "0.17", s.Value(FieldDeceleration))

	for i := 0; i < 50; i++ {
		s.Adjust(FieldDeceleration, -1)
	}
	assert.Equal(t, MinDeceleration, s.Deceleration)
}

func TestAdjustToggles(t *testing.T) {
	s := DefaultSettings()

	s.Adjust(FieldRandomize, 1)
	assert.True(t, s.Randomize)
	s.Adjust(FieldRandomize, -1)
	assert.False(t, s.Randomize)

	s.Adjust(FieldFlash, -1)
	assert.False(t, s.Flash)
	assert.Equal(t, "Off", s.Value(FieldFlash))

	s.Adjust(FieldDirection, 1)
	assert.Equal(t, CounterClockwise, s.Direction)
	s.Adjust(FieldDirection, 1)
	assert.Equal(t, RandomDirection, s.Direction)
	s.Adjust(FieldDirection, 1)
	assert.Equal(t, Clockwise, s.Direction)
	s.Adjust(FieldDirection, -1)
	assert.Equal(t, RandomDirection, s.Direction)
}

func TestAdjustZeroDeltaIsNoop(t *testing.T) {
	s := DefaultSettings()
	s.Adjust(FieldRandomize, 0)
	assert.Equal(t, DefaultSettings(), s)
}

func TestClampRepairsGarbage(t *testing.T) {
	s := Settings{
		Sections:     -4,
		MaxSpeed:     500,
		MinSpins:     0,
		MaxSpins:     -1,
		Deceleration: 7,
		Darkness:     0,
		AutoSpin:     99,
		Direction:    "sideways",
		FlashCount:   0,
		FlashSpeed:   1,

		WheelSize:   9000,
		HubSize:     -1,
		DotSize:     100,
		NumberStyle: "italic",
		BorderColor: "brown",
		FlashColor:  "#12345",
		HubColor:    "#ff00ff",
	}
	s.Clamp()
	assertInRange(t, s)
	assert.Equal(t, Clockwise, s.Direction)
	assert.Equal(t, 1, s.MaxSpins)
	assert.Equal(t, MaxWheelSize, s.WheelSize)
	assert.Equal(t, MinHubSize, s.HubSize)
	assert.Equal(t, Regular, s.NumberStyle)
	assert.Equal(t, DefaultSettings().BorderColor, s.BorderColor)
	assert.Equal(t, DefaultSettings().FlashColor, s.FlashColor)
	assert.Equal(t, Color("#FF00FF"), s.HubColor)
	assert.Equal(t, "#FF00FF", s.Value(FieldHubColor))
}

func TestColorRGBA(t *testing.T) {
	tests := []struct {
		in   Color
		want color.RGBA
		ok   bool
	}{
		{"#8B4513", color.RGBA{R: 139, G: 69, B: 19, A: 0xff}, true},
		{"#ffffff", color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}, true},
		{"#000000", color.RGBA{A: 0xff}, true},
		{"8B4513", color.RGBA{}, false},
		{"#GG0000", color.RGBA{}, false},
		{"", color.RGBA{}, false},
	}
	for _, tt := range tests {
		t.Run(string(tt.in), func(t *testing.T) {
			got, ok := tt.in.RGBA()
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAdjustCyclesColors(t *testing.T) {
	s := DefaultSettings()
	assert.Equal(t, "Brown", s.Value(FieldBorderColor))

	s.Adjust(FieldBorderColor, 1)
	assert.Equal(t, Color("#FF0000"), s.BorderColor)
	s.Adjust(FieldBorderColor, -1)
	s.Adjust(FieldBorderColor, -1)
	assert.Equal(t, "White", s.Value(FieldBorderColor))

	s.Background = "#FFD700"
	for range swatches {
		s.Adjust(FieldBackground, 1)
	}
	assert.Equal(t, Color("#FFD700"), s.Background)

	s.DotColor = "#123456"
	s.Adjust(FieldDotColor, -1)
	assert.Equal(t, Color("#008000"), s.DotColor)
	s.DotColor = "#123456"
	s.Adjust(FieldDotColor, 1)
	assert.Equal(t, Color("#000000"), s.DotColor)
}

func TestAdjustAppearance(t *testing.T) {
	s := DefaultSettings()

	s.Adjust(FieldNumberStyle, 1)
	assert.Equal(t, Bold, s.NumberStyle)
	assert.Equal(t, "Bold", s.Value(FieldNumberStyle))
	s.Adjust(FieldNumberStyle, 1)
	assert.Equal(t, Regular, s.NumberStyle)

	s.Adjust(FieldWheelSize, -1)
	assert.Equal(t, 490, s.WheelSize)
	s.Adjust(FieldWheelSize, 1)
	s.Adjust(FieldWheelSize, 1)
	assert.Equal(t, MaxWheelSize, s.WheelSize)

	s.Adjust(FieldHubSize, 1)
	assert.Equal(t, 110, s.HubSize)

	for i := 0; i < 30; i++ {
		s.Adjust(FieldDotOffset, -1)
	}
	assert.Equal(t, MinDotOffset, s.DotOffset)
}

func TestFieldLabels(t *testing.T) {
	assert.Len(t, Fields(), int(fieldCount))
	for _, f := range Fields() {
		assert.NotEmpty(t, f.Label())
		assert.NotEmpty(t, DefaultSettings().Value(f))
	}
	assert.Equal(t, "Field(99)", Field(99).Label())
	assert.Less(t, FirstAppearanceField, fieldCount)
	assert.Equal(t, "Wheel Radius:", FirstAppearanceField.Label())
}
