package wheel

import (
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"
)

type Direction string

const (
	Clockwise        Direction = "clockwise"
	CounterClockwise Direction = "counterclockwise"
	RandomDirection  Direction = "random"
)

var directions = []Direction{Clockwise, CounterClockwise, RandomDirection}

type NumberStyle string

const (
	Regular NumberStyle = "regular"
	Bold    NumberStyle = "bold"
)

// Color is a "#RRGGBB" string as stored in the settings file.
type Color string

type swatch struct {
	name  string
	color Color
}

// swatches are the colors the settings screen cycles through.
var swatches = []swatch{
	{"Black", "#000000"},
	{"White", "#FFFFFF"},
	{"Brown", "#8B4513"},
	{"Red", "#FF0000"},
	{"Gold", "#FFD700"},
	{"Gray", "#808080"},
	{"Navy", "#000080"},
	{"Green", "#008000"},
}

// Settings is the user-tunable configuration of the wheel. Every mutation
// goes through Clamp so the values stay inside their ranges.
type Settings struct {
	Sections     int       `yaml:"sections"`
	MaxSpeed     int       `yaml:"max_speed"`
	MinSpins     int       `yaml:"min_spins"`
	MaxSpins     int       `yaml:"max_spins"`
	Deceleration float64   `yaml:"deceleration"`
	Darkness     int       `yaml:"darkness"`
	AutoSpin     int       `yaml:"auto_spin"`
	Randomize    bool      `yaml:"randomize"`
	Direction    Direction `yaml:"direction"`
	Flash        bool      `yaml:"flash"`
	FlashCount   int       `yaml:"flash_count"`
	FlashSpeed   int       `yaml:"flash_speed_ms"`

	WheelSize     int         `yaml:"wheel_size"`
	WheelFontSize int         `yaml:"wheel_font_size"`
	NumberStyle   NumberStyle `yaml:"number_style"`
	NumberColor   Color       `yaml:"number_color"`
	TableFontSize int         `yaml:"table_font_size"`
	BorderWidth   int         `yaml:"border_width"`
	BorderColor   Color       `yaml:"border_color"`
	HubSize       int         `yaml:"hub_size"`
	HubColor      Color       `yaml:"hub_color"`
	DotSize       int         `yaml:"dot_size"`
	DotOffset     int         `yaml:"dot_offset"`
	DotColor      Color       `yaml:"dot_color"`
	Background    Color       `yaml:"background"`
	FlashColor    Color       `yaml:"flash_color"`
}

const (
	MinSections, MaxSections         = 1, 100
	MinMaxSpeed, MaxMaxSpeed         = 1, 50
	MinMinSpins, MaxMinSpins         = 1, 20
	MaxMaxSpins                      = 30
	MinDeceleration, MaxDeceleration = 0.01, 1.0
	MinDarkness, MaxDarkness         = 1, 10
	MinAutoSpin, MaxAutoSpin         = 0, 50
	MinFlashCount, MaxFlashCount     = 1, 10
	MinFlashSpeed, MaxFlashSpeed     = 50, 1000

	// Sizes are in screen pixels. WheelSize is the radius, HubSize and
	// DotSize are diameters.
	MinWheelSize, MaxWheelSize         = 100, 500
	MinWheelFontSize, MaxWheelFontSize = 10, 50
	MinTableFontSize, MaxTableFontSize = 10, 40
	MinBorderWidth, MaxBorderWidth     = 1, 10
	MinHubSize, MaxHubSize             = 10, 200
	MinDotSize, MaxDotSize             = 2, 20
	MinDotOffset, MaxDotOffset         = 0, 100

	decelerationStep = 0.01
	flashSpeedStep   = 50
	wheelSizeStep    = 10
	hubSizeStep      = 10
)

func DefaultSettings() Settings {
	return Settings{
		Sections:     37,
		MaxSpeed:     20,
		MinSpins:     5,
		MaxSpins:     10,
		Deceleration: 0.1,
		Darkness:     1,
		AutoSpin:     0,
		Randomize:    false,
		Direction:    Clockwise,
		Flash:        true,
		FlashCount:   2,
		FlashSpeed:   200,

		WheelSize:     500,
		WheelFontSize: 36,
		NumberStyle:   Regular,
		NumberColor:   "#000000",
		TableFontSize: 40,
		BorderWidth:   2,
		BorderColor:   "#8B4513",
		HubSize:       100,
		HubColor:      "#000000",
		DotSize:       10,
		DotOffset:     20,
		DotColor:      "#FFFFFF",
		Background:    "#000000",
		FlashColor:    "#FFFFFF",
	}
}

// Clamp forces every field into its range. MaxSpins is clamped after
// MinSpins so it never drops below it.
func (s *Settings) Clamp() {
	s.Sections = clampInt(s.Sections, MinSections, MaxSections)
	s.MaxSpeed = clampInt(s.MaxSpeed, MinMaxSpeed, MaxMaxSpeed)
	s.MinSpins = clampInt(s.MinSpins, MinMinSpins, MaxMinSpins)
	s.MaxSpins = clampInt(s.MaxSpins, s.MinSpins, MaxMaxSpins)
	s.Deceleration = roundCents(clampFloat(s.Deceleration, MinDeceleration, MaxDeceleration))
	s.Darkness = clampInt(s.Darkness, MinDarkness, MaxDarkness)
	s.AutoSpin = clampInt(s.AutoSpin, MinAutoSpin, MaxAutoSpin)
	s.FlashCount = clampInt(s.FlashCount, MinFlashCount, MaxFlashCount)
	s.FlashSpeed = clampInt(s.FlashSpeed, MinFlashSpeed, MaxFlashSpeed)
	if !validDirection(s.Direction) {
		s.Direction = Clockwise
	}

	s.WheelSize = clampInt(s.WheelSize, MinWheelSize, MaxWheelSize)
	s.WheelFontSize = clampInt(s.WheelFontSize, MinWheelFontSize, MaxWheelFontSize)
	s.TableFontSize = clampInt(s.TableFontSize, MinTableFontSize, MaxTableFontSize)
	s.BorderWidth = clampInt(s.BorderWidth, MinBorderWidth, MaxBorderWidth)
	s.HubSize = clampInt(s.HubSize, MinHubSize, MaxHubSize)
	s.DotSize = clampInt(s.DotSize, MinDotSize, MaxDotSize)
	s.DotOffset = clampInt(s.DotOffset, MinDotOffset, MaxDotOffset)
	if s.NumberStyle != Bold {
		s.NumberStyle = Regular
	}

	def := DefaultSettings()
	s.NumberColor = s.NumberColor.or(def.NumberColor)
	s.BorderColor = s.BorderColor.or(def.BorderColor)
	s.HubColor = s.HubColor.or(def.HubColor)
	s.DotColor = s.DotColor.or(def.DotColor)
	s.Background = s.Background.or(def.Background)
	s.FlashColor = s.FlashColor.or(def.FlashColor)
}

type Field int

const (
	FieldSections Field = iota
	FieldMaxSpeed
	FieldMinSpins
	FieldMaxSpins
	FieldDeceleration
	FieldDarkness
	FieldAutoSpin
	FieldRandomize
	FieldDirection
	FieldFlash
	FieldFlashCount
	FieldFlashSpeed
	FieldWheelSize
	FieldWheelFontSize
	FieldNumberStyle
	FieldNumberColor
	FieldTableFontSize
	FieldBorderWidth
	FieldBorderColor
	FieldHubSize
	FieldHubColor
	FieldDotSize
	FieldDotOffset
	FieldDotColor
	FieldBackground
	FieldFlashColor
	fieldCount
)

// FirstAppearanceField starts the fields that only change how the wheel
// looks; the settings screen shows them on their own page.
const FirstAppearanceField = FieldWheelSize

var fieldLabels = [fieldCount]string{
	FieldSections:     "Sections:",
	FieldMaxSpeed:     "Max Speed:",
	FieldMinSpins:     "Min Spins:",
	FieldMaxSpins:     "Max Spins:",
	FieldDeceleration: "Deceleration:",
	FieldDarkness:     "Darkness (1-10):",
	FieldAutoSpin:     "Auto Spin Count:",
	FieldRandomize:    "Shuffle:",
	FieldDirection:    "Direction:",
	FieldFlash:        "Flash Winner:",
	FieldFlashCount:   "Flash Count:",
	FieldFlashSpeed:   "Flash Speed (ms):",

	FieldWheelSize:     "Wheel Radius:",
	FieldWheelFontSize: "Wheel Font Size:",
	FieldNumberStyle:   "Number Style:",
	FieldNumberColor:   "Number Color:",
	FieldTableFontSize: "Table Font Size:",
	FieldBorderWidth:   "Border Width:",
	FieldBorderColor:   "Border Color:",
	FieldHubSize:       "Hub Size:",
	FieldHubColor:      "Hub Color:",
	FieldDotSize:       "Dot Size:",
	FieldDotOffset:     "Dot Offset:",
	FieldDotColor:      "Dot Color:",
	FieldBackground:    "Background:",
	FieldFlashColor:    "Flash Color:",
}

// Fields lists the editable fields in settings screen order.
func Fields() []Field {
	fields := make([]Field, fieldCount)
	for i := range fields {
		fields[i] = Field(i)
	}
	return fields
}

func (f Field) Label() string {
	if f < 0 || f >= fieldCount {
		return "Field(" + strconv.Itoa(int(f)) + ")"
	}
	return fieldLabels[f]
}

// Adjust moves a field one step up (delta > 0) or down (delta < 0) and
// clamps the result. Booleans and the number style flip regardless of sign;
// Direction and colors cycle.
func (s *Settings) Adjust(f Field, delta int) {
	if delta == 0 {
		return
	}
	switch f {
	case FieldSections:
		s.Sections += delta
	case FieldMaxSpeed:
		s.MaxSpeed += delta
	case FieldMinSpins:
		s.MinSpins += delta
	case FieldMaxSpins:
		s.MaxSpins += delta
	case FieldDeceleration:
		s.Deceleration += float64(delta) * decelerationStep
	case FieldDarkness:
		s.Darkness += delta
	case FieldAutoSpin:
		s.AutoSpin += delta
	case FieldRandomize:
		s.Randomize = !s.Randomize
	case FieldDirection:
		s.Direction = s.Direction.next(delta)
	case FieldFlash:
		s.Flash = !s.Flash
	case FieldFlashCount:
		s.FlashCount += delta
	case FieldFlashSpeed:
		s.FlashSpeed += delta * flashSpeedStep
	case FieldWheelSize:
		s.WheelSize += delta * wheelSizeStep
	case FieldWheelFontSize:
		s.WheelFontSize += delta
	case FieldNumberStyle:
		if s.NumberStyle == Bold {
			s.NumberStyle = Regular
		} else {
			s.NumberStyle = Bold
		}
	case FieldNumberColor:
		s.NumberColor = s.NumberColor.next(delta)
	case FieldTableFontSize:
		s.TableFontSize += delta
	case FieldBorderWidth:
		s.BorderWidth += delta
	case FieldBorderColor:
		s.BorderColor = s.BorderColor.next(delta)
	case FieldHubSize:
		s.HubSize += delta * hubSizeStep
	case FieldHubColor:
		s.HubColor = s.HubColor.next(delta)
	case FieldDotSize:
		s.DotSize += delta
	case FieldDotOffset:
		s.DotOffset += delta
	case FieldDotColor:
		s.DotColor = s.DotColor.next(delta)
	case FieldBackground:
		s.Background = s.Background.next(delta)
	case FieldFlashColor:
		s.FlashColor = s.FlashColor.next(delta)
	}
	s.Clamp()
}

// Value formats a field for display.
func (s Settings) Value(f Field) string {
	switch f {
	case FieldSections:
		return strconv.Itoa(s.Sections)
	case FieldMaxSpeed:
		return strconv.Itoa(s.MaxSpeed)
	case FieldMinSpins:
		return strconv.Itoa(s.MinSpins)
	case FieldMaxSpins:
		return strconv.Itoa(s.MaxSpins)
	case FieldDeceleration:
		return fmt.Sprintf("%.2f", s.Deceleration)
	case FieldDarkness:
		return strconv.Itoa(s.Darkness)
	case FieldAutoSpin:
		return strconv.Itoa(s.AutoSpin)
	case FieldRandomize:
		return onOff(s.Randomize)
	case FieldDirection:
		switch s.Direction {
		case CounterClockwise:
			return "CCW"
		case RandomDirection:
			return "Random"
		default:
			return "CW"
		}
	case FieldFlash:
		return onOff(s.Flash)
	case FieldFlashCount:
		return strconv.Itoa(s.FlashCount)
	case FieldFlashSpeed:
		return strconv.Itoa(s.FlashSpeed)
	case FieldWheelSize:
		return strconv.Itoa(s.WheelSize)
	case FieldWheelFontSize:
		return strconv.Itoa(s.WheelFontSize)
	case FieldNumberStyle:
		if s.NumberStyle == Bold {
			return "Bold"
		}
		return "Regular"
	case FieldNumberColor:
		return s.NumberColor.Name()
	case FieldTableFontSize:
		return strconv.Itoa(s.TableFontSize)
	case FieldBorderWidth:
		return strconv.Itoa(s.BorderWidth)
	case FieldBorderColor:
		return s.BorderColor.Name()
	case FieldHubSize:
		return strconv.Itoa(s.HubSize)
	case FieldHubColor:
		return s.HubColor.Name()
	case FieldDotSize:
		return strconv.Itoa(s.DotSize)
	case FieldDotOffset:
		return strconv.Itoa(s.DotOffset)
	case FieldDotColor:
		return s.DotColor.Name()
	case FieldBackground:
		return s.Background.Name()
	case FieldFlashColor:
		return s.FlashColor.Name()
	}
	return ""
}

func (d Direction) next(delta int) Direction {
	idx := 0
	for i, v := range directions {
		if v == d {
			idx = i
			break
		}
	}
	n := len(directions)
	step := 1
	if delta < 0 {
		step = -1
	}
	return directions[((idx+step)%n+n)%n]
}

func validDirection(d Direction) bool {
	for _, v := range directions {
		if v == d {
			return true
		}
	}
	return false
}

// RGBA parses the color. ok is false unless c has the form "#RRGGBB".
func (c Color) RGBA() (rgba color.RGBA, ok bool) {
	if len(c) != 7 || c[0] != '#' {
		return color.RGBA{}, false
	}
	v, err := strconv.ParseUint(string(c[1:]), 16, 32)
	if err != nil {
		return color.RGBA{}, false
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, true
}

// Name returns the swatch name, or the hex string for colors set in the
// settings file by hand.
func (c Color) Name() string {
	for _, sw := range swatches {
		if sw.color == c {
			return sw.name
		}
	}
	return string(c)
}

// or returns c in canonical upper case form, or def when c does not parse.
func (c Color) or(def Color) Color {
	if _, ok := c.RGBA(); !ok {
		return def
	}
	return Color(strings.ToUpper(string(c)))
}

// next steps through the swatches. A color outside them starts the cycle
// from either end.
func (c Color) next(delta int) Color {
	idx := -1
	for i, sw := range swatches {
		if sw.color == c {
			idx = i
			break
		}
	}
	n := len(swatches)
	if idx < 0 {
		if delta < 0 {
			return swatches[n-1].color
		}
		return swatches[0].color
	}
	step := 1
	if delta < 0 {
		step = -1
	}
	return swatches[((idx+step)%n+n)%n].color
}

func onOff(b bool) string {
	if b {
		return "On"
	}
	return "Off"
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampFloat(v, lo, hi float64) float64 {
	if math.IsNaN(v) || v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// roundCents keeps the deceleration on its 0.01 grid so repeated steps do
// not accumulate float error.
func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
