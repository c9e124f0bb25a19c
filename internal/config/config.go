package config

import (
	"github.com/joho/godotenv"
)

const (
	ScreenWidth  = 1080
	ScreenHeight = 1920
	TPS          = 60

	// Wheel placement. Radius is the largest wheel the layout leaves room
	// for; the actual radius is a setting.
	CenterX = ScreenWidth / 2
	CenterY = ScreenHeight/2 - 200
	Radius  = 500

	NumberInset  = 30
	MinArcPoints = 10

	// Pointer sits at the bottom of the wheel, tip pointing up
	PointerWidth     = 60
	PointerHeight    = 60
	PointerTipInset  = 15
	PointerRedHeight = PointerHeight / 5

	// Main screen buttons
	ButtonWidth  = 150
	ButtonHeight = 100
	ButtonGap    = 20
	ButtonY      = ScreenHeight - ButtonHeight - 50

	// Winners table
	TableX      = 40
	TableY      = CenterY + Radius + 50
	CellWidth   = 100
	CellHeight  = 40
	TableCols   = 10
	TableRows   = 5
	CellBorder  = 1
	ButtonSize  = 36
	SettingSize = 48

	// Settings screen
	SettingsButtonSize = 60
	SettingsSpacing    = 100
	SettingsTop        = 200
	SettingsLabelX     = ScreenWidth/2 - 240
	SettingsValueX     = ScreenWidth/2 + 80
)

// Load reads KEY=VALUE pairs from path into the process environment.
// Variables already set are left untouched.
func Load(path string) error {
	err := godotenv.Load(path)
	if err != nil {
		return err
	}
	return nil
}

type AppConfig interface {
	SettingsPath() string
	SoundEnabled() bool
	TickSoundPath() string
	Seed() uint64
	WindowScale() float64
}
