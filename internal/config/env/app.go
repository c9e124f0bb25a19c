package env

import (
	"fmt"
	"os"
	"strconv"

	"github.com/iburimskiy/lottery-wheel/internal/config"
)

const (
	settingsFileName = "WHEEL_SETTINGS_FILE"
	soundName        = "WHEEL_SOUND"
	tickSoundName    = "WHEEL_TICK_SOUND"
	seedName         = "WHEEL_SEED"
	windowScaleName  = "WHEEL_WINDOW_SCALE"

	defaultSettingsFile = "wheel_settings.yaml"
	defaultWindowScale  = 0.5
)

type appConfig struct {
	settingsPath  string
	sound         bool
	tickSoundPath string
	seed          uint64
	windowScale   float64
}

func NewAppConfig() (config.AppConfig, error) {
	cfg := &appConfig{
		settingsPath:  defaultSettingsFile,
		sound:         true,
		tickSoundPath: os.Getenv(tickSoundName),
		windowScale:   defaultWindowScale,
	}

	if v := os.Getenv(settingsFileName); v != "" {
		cfg.settingsPath = v
	}

	if v := os.Getenv(soundName); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", soundName, err)
		}
		cfg.sound = b
	}

	if v := os.Getenv(seedName); v != "" {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", seedName, err)
		}
		cfg.seed = seed
	}

	if v := os.Getenv(windowScaleName); v != "" {
		scale, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", windowScaleName, err)
		}
		if scale <= 0 || scale > 4 {
			return nil, fmt.Errorf("%s: scale %v out of range (0, 4]", windowScaleName, scale)
		}
		cfg.windowScale = scale
	}

	return cfg, nil
}

func (cfg *appConfig) SettingsPath() string {
	return cfg.settingsPath
}

func (cfg *appConfig) SoundEnabled() bool {
	return cfg.sound
}

func (cfg *appConfig) TickSoundPath() string {
	return cfg.tickSoundPath
}

// Seed returns the RNG seed; 0 means seed from the clock.
func (cfg *appConfig) Seed() uint64 {
	return cfg.seed
}

func (cfg *appConfig) WindowScale() float64 {
	return cfg.windowScale
}
