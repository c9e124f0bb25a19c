// Package game runs the lottery wheel on ebiten: input, drawing and the two
// screens (wheel and settings).
package game

import (
	"errors"
	"log"
	"math/rand/v2"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/iburimskiy/lottery-wheel/internal/config"
	"github.com/iburimskiy/lottery-wheel/internal/sound"
	"github.com/iburimskiy/lottery-wheel/internal/store"
	"github.com/iburimskiy/lottery-wheel/internal/wheel"
)

const windowTitle = "Spinning Lottery Wheel"

var errNoWinners = errors.New("no winners to export yet")

type mode int

const (
	modeWheel mode = iota
	modeSettings
)

// SettingsStore persists settings saved from the settings screen.
type SettingsStore interface {
	Save(wheel.Settings) error
}

type Options struct {
	Settings wheel.Settings
	Store    SettingsStore
	Sound    sound.Player
	Dialogs  Dialogs
	Rand     wheel.Rand
}

type Game struct {
	wheel   *wheel.Wheel
	store   SettingsStore
	sound   sound.Player
	dialogs Dialogs

	mode    mode
	page    int
	draft   wheel.Settings
	buttons []button
	rows    []settingsRow
	footer  []button

	cursor   wheel.Point
	touchIDs []ebiten.TouchID
	touchID  ebiten.TouchID
	touching bool

	fonts    *fonts
	vertices []ebiten.Vertex
	indices  []uint16

	lastErr error
}

func NewGame(opts Options) *Game {
	if opts.Sound == nil {
		opts.Sound = sound.Nop{}
	}
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	rows, footer := settingsLayout()
	return &Game{
		wheel: wheel.New(opts.Settings, wheel.Options{
			Center:     center,
			PointerTip: pointerTip(config.Radius),
			TPS:        config.TPS,
		}, opts.Rand),
		store:   opts.Store,
		sound:   opts.Sound,
		dialogs: opts.Dialogs,
		buttons: mainButtons(),
		rows:    rows,
		footer:  footer,
	}
}

func WindowTitle() string {
	return windowTitle
}

func (g *Game) Update() error {
	return g.update(g.readInput())
}

func (g *Game) update(in input) error {
	g.cursor = in.cursor

	for _, act := range in.actions {
		if err := g.do(act); err != nil {
			return err
		}
	}

	switch g.mode {
	case modeSettings:
		if in.pressed {
			if err := g.clickSettings(in.cursor); err != nil {
				return err
			}
		}
	case modeWheel:
		if in.pressed && !g.wheel.PointerDown(in.cursor) {
			if err := g.do(hitButton(g.buttons, in.cursor)); err != nil {
				return err
			}
		}
		if in.down {
			g.wheel.PointerMove(in.cursor, 1.0/config.TPS)
		}
		if in.released && g.wheel.PointerUp(in.cursor) {
			log.Printf("Drag spin released at (%.0f, %.0f)", in.cursor.X, in.cursor.Y)
		}
	}

	for _, e := range g.wheel.Update() {
		g.handleEvent(e)
	}
	return nil
}

// do runs a button or keyboard action. Only the quit actions return an
// error, ebiten.Termination.
func (g *Game) do(act action) error {
	switch act {
	case actQuit:
		return ebiten.Termination
	case actBack:
		if g.mode == modeSettings {
			g.mode = modeWheel
			return nil
		}
		return ebiten.Termination
	}

	if g.mode == modeSettings {
		switch act {
		case actDefaults:
			g.draft = wheel.DefaultSettings()
		case actPage:
			g.page = (g.page + 1) % settingsPages
		case actSave:
			g.saveSettings()
		}
		return nil
	}

	switch act {
	case actSpin:
		if g.wheel.Spin() {
			log.Println("Spin clicked!")
		}
	case actAuto:
		if g.wheel.StartAuto() {
			log.Printf("Auto Spin clicked! %d spins", g.wheel.Settings().AutoSpin)
		}
	case actReset:
		log.Println("Reset clicked!")
		g.wheel.Reset()
		g.lastErr = nil
	case actSettings:
		if g.wheel.Busy() {
			return nil
		}
		log.Println("Settings clicked!")
		g.draft = g.wheel.Settings()
		g.page = 0
		g.mode = modeSettings
	case actExport:
		if g.wheel.Busy() {
			return nil
		}
		if err := g.exportWinners(); err != nil {
			g.fail(err)
		}
	}
	return nil
}

func (g *Game) saveSettings() {
	g.wheel.Apply(g.draft)
	g.mode = modeWheel
	log.Printf("Settings saved: %+v", g.wheel.Settings())

	if g.store == nil {
		return
	}
	if err := g.store.Save(g.wheel.Settings()); err != nil {
		g.fail(err)
	}
}

func (g *Game) exportWinners() error {
	winners := g.wheel.Winners()
	if len(winners) == 0 {
		return errNoWinners
	}
	if g.dialogs == nil {
		return nil
	}
	path, err := g.dialogs.SaveFile("Export Winners", "winners.csv")
	if err != nil {
		return err
	}
	if path == "" {
		return nil
	}
	if err := store.WriteWinnersFile(path, winners); err != nil {
		return err
	}
	log.Printf("Exported %d winners to %s", len(winners), path)
	return nil
}

func (g *Game) fail(err error) {
	g.lastErr = err
	log.Printf("error: %v", err)
	if g.dialogs != nil && !errors.Is(err, errNoWinners) {
		g.dialogs.Error(err.Error())
	}
}

func (g *Game) handleEvent(e wheel.Event) {
	switch e.Kind {
	case wheel.EventTick:
		g.sound.Tick()
	case wheel.EventStopped:
		tip := pointerTip(g.wheel.Radius())
		log.Printf("Tip at (%.0f, %.0f), Angle: %.2f, Stopped on: %d",
			tip.X, tip.Y, wheel.NormalizeDegrees(e.Angle), e.Number)
	case wheel.EventWon:
		g.sound.Win()
		log.Printf("Winner: %d", e.Number)
	case wheel.EventAutoDone:
		log.Println("Auto spin finished")
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	if g.fonts == nil {
		f, err := loadFonts()
		if err != nil {
			g.lastErr = err
			ebitenutil.DebugPrint(screen, err.Error())
			return
		}
		g.fonts = f
	}

	switch g.mode {
	case modeSettings:
		g.drawSettings(screen)
	default:
		g.drawMain(screen)
		ebitenutil.DebugPrintAt(screen, statusLine(g.wheel, g.lastErr), 12, 12)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}
