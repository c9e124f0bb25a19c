package main

import (
	"errors"
	"log"
	"math/rand/v2"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/iburimskiy/lottery-wheel/internal/config"
	"github.com/iburimskiy/lottery-wheel/internal/config/env"
	"github.com/iburimskiy/lottery-wheel/internal/game"
	"github.com/iburimskiy/lottery-wheel/internal/sound"
	"github.com/iburimskiy/lottery-wheel/internal/store"
)

func main() {
	err := config.Load(".env")
	if err != nil {
		log.Printf("Error loading .env file: %v", err)
	}

	cfg, err := env.NewAppConfig()
	if err != nil {
		log.Fatalf("failed to read config: %v", err)
	}

	settingsFile := store.NewSettingsFile(cfg.SettingsPath())
	settings, err := settingsFile.Load()
	if err != nil {
		log.Printf("failed to load settings from %s, using defaults: %v", cfg.SettingsPath(), err)
	}

	var player sound.Player = sound.Nop{}
	if cfg.SoundEnabled() {
		spk, err := sound.NewSpeaker(cfg.TickSoundPath())
		if err != nil {
			log.Printf("sound disabled: %v", err)
		} else {
			player = spk
		}
	}

	seed := cfg.Seed()
	if seed == 0 {
		seed = rand.Uint64()
	}
	log.Printf("random seed: %d", seed)

	g := game.NewGame(game.Options{
		Settings: settings,
		Store:    settingsFile,
		Sound:    player,
		Dialogs:  game.NewDialogs(),
		Rand:     rand.New(rand.NewPCG(seed, seed)),
	})

	scale := cfg.WindowScale()
	ebiten.SetWindowSize(int(config.ScreenWidth*scale), int(config.ScreenHeight*scale))
	ebiten.SetWindowTitle(game.WindowTitle())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(config.TPS)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
