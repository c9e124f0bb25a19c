// Package wheel simulates the lottery wheel: settings, spin physics, drag
// handling and the draw bookkeeping of remaining numbers and winners. It has
// no rendering or input dependencies and advances one tick per Update.
package wheel

import (
	"image/color"
	"slices"
)

type Phase int

const (
	Idle Phase = iota
	Dragging
	Spinning
	Flashing
)

func (p Phase) String() string {
	switch p {
	case Idle:
		return "idle"
	case Dragging:
		return "dragging"
	case Spinning:
		return "spinning"
	case Flashing:
		return "flashing"
	}
	return "unknown"
}

type EventKind int

const (
	// EventTick fires when a section boundary passes the pointer.
	EventTick EventKind = iota
	// EventStopped fires when the wheel comes to rest; Index and Number
	// identify the section under the pointer.
	EventStopped
	// EventWon fires when Number moves from the wheel into the winners.
	EventWon
	// EventAutoDone fires when an auto spin run finishes.
	EventAutoDone
)

type Event struct {
	Kind   EventKind
	Index  int
	Number int
	Angle  float64
}

// Options fixes the geometry the wheel is simulated against. The radius
// comes from Settings.WheelSize.
type Options struct {
	Center     Point
	PointerTip Point
	TPS        int
}

const startAngle = 90

type Wheel struct {
	opts         Options
	pointerAngle float64
	settings     Settings
	rng          Rand

	angle     float64
	remaining []int
	winners   []int
	colors    *NumberColors

	phase    Phase
	spin     Spin
	drag     Drag
	auto     bool
	autoLeft int
	flash    flash

	events []Event
}

func New(s Settings, opts Options, rng Rand) *Wheel {
	if opts.TPS <= 0 {
		opts.TPS = 60
	}
	s.Clamp()
	w := &Wheel{
		opts:         opts,
		pointerAngle: PointerAngle(opts.Center, opts.PointerTip),
		settings:     s,
		rng:          rng,
		colors:       NewNumberColors(s.Sections, s.Darkness),
	}
	w.Reset()
	return w
}

// Reset puts every number back on the wheel, clears the winners and
// cancels any spin, flash or auto run.
func (w *Wheel) Reset() {
	w.angle = startAngle
	w.remaining = w.remaining[:0]
	for n := 1; n <= w.settings.Sections; n++ {
		w.remaining = append(w.remaining, n)
	}
	w.winners = nil
	w.colors.Assign(w.settings.Sections, w.settings.Darkness)
	w.phase = Idle
	w.spin = Spin{}
	w.drag = Drag{}
	w.auto = false
	w.autoLeft = 0
	w.flash = flash{}
}

// Apply replaces the settings and resets the draw.
func (w *Wheel) Apply(s Settings) {
	s.Clamp()
	w.settings = s
	w.Reset()
}

// Spin starts a full speed spin. It refuses while the wheel is busy, auto
// runs included, or has no numbers left.
func (w *Wheel) Spin() bool {
	if w.Busy() || len(w.remaining) == 0 {
		return false
	}
	w.start(ButtonSpin(w.settings, w.rng))
	return true
}

// StartAuto queues Settings.AutoSpin spins back to back.
func (w *Wheel) StartAuto() bool {
	if w.phase != Idle || w.auto || len(w.remaining) == 0 || w.settings.AutoSpin == 0 {
		return false
	}
	w.auto = true
	w.autoLeft = w.settings.AutoSpin
	return true
}

// PointerDown starts a drag when p is on the wheel and the wheel is idle.
func (w *Wheel) PointerDown(p Point) bool {
	if w.Busy() || !InCircle(p, w.opts.Center, w.Radius()) {
		return false
	}
	w.phase = Dragging
	w.drag.Begin(p)
	return true
}

// PointerMove turns the wheel with a held pointer; dt is the tick length
// in seconds.
func (w *Wheel) PointerMove(p Point, dt float64) {
	if w.phase != Dragging {
		return
	}
	w.angle += w.drag.Move(p, w.opts.Center, w.Radius(), dt)
}

// PointerUp ends a drag. Releasing on the wheel with enough speed flings it.
func (w *Wheel) PointerUp(p Point) bool {
	if w.phase != Dragging {
		return false
	}
	v := w.drag.End()
	w.phase = Idle
	if !InCircle(p, w.opts.Center, w.Radius()) || len(w.remaining) == 0 {
		return false
	}
	sp, ok := DragSpin(v, w.settings, w.rng)
	if !ok {
		return false
	}
	w.start(sp)
	return true
}

func (w *Wheel) start(sp Spin) {
	w.spin = sp
	w.phase = Spinning
}

// Update advances the simulation by one tick. The returned slice is reused
// by the next call.
func (w *Wheel) Update() []Event {
	w.events = w.events[:0]

	switch w.phase {
	case Idle:
		if w.auto {
			if w.autoLeft > 0 && len(w.remaining) > 0 {
				w.autoLeft--
				w.start(ButtonSpin(w.settings, w.rng))
			} else {
				w.auto = false
				w.autoLeft = 0
				w.emit(Event{Kind: EventAutoDone})
			}
		}
	case Spinning:
		w.stepSpin()
	case Flashing:
		w.stepFlash()
	}

	return w.events
}

func (w *Wheel) stepSpin() {
	n := len(w.remaining)
	before := SectionAt(w.angle, w.pointerAngle, n)
	delta, done := w.spin.Step(w.settings.Deceleration)
	w.angle += delta
	if SectionAt(w.angle, w.pointerAngle, n) != before {
		w.emit(Event{Kind: EventTick, Angle: w.angle})
	}
	if done {
		w.settle()
	}
}

func (w *Wheel) settle() {
	idx := SectionAt(w.angle, w.pointerAngle, len(w.remaining))
	if idx < 0 {
		w.phase = Idle
		return
	}
	w.emit(Event{Kind: EventStopped, Index: idx, Number: w.remaining[idx], Angle: w.angle})

	if !w.settings.Flash {
		w.award(idx)
		w.phase = Idle
		return
	}
	w.flash = newFlash(idx, w.settings, w.opts.TPS)
	w.phase = Flashing
}

func (w *Wheel) stepFlash() {
	switch w.flash.step() {
	case flashAward:
		w.award(w.flash.section)
		w.flash.cell = len(w.winners) - 1
	case flashDone:
		w.flash = flash{}
		w.phase = Idle
	}
}

// award moves remaining[idx] into the winners in a single step.
func (w *Wheel) award(idx int) {
	number := w.remaining[idx]
	w.winners = append(w.winners, number)
	w.remaining = slices.Delete(w.remaining, idx, idx+1)
	if w.settings.Randomize && len(w.remaining) > 1 {
		w.rng.Shuffle(len(w.remaining), func(i, j int) {
			w.remaining[i], w.remaining[j] = w.remaining[j], w.remaining[i]
		})
	}
	w.emit(Event{Kind: EventWon, Index: idx, Number: number, Angle: w.angle})
}

func (w *Wheel) emit(e Event) {
	w.events = append(w.events, e)
}

func (w *Wheel) Angle() float64 { return w.angle }

func (w *Wheel) Phase() Phase { return w.phase }

func (w *Wheel) Settings() Settings { return w.settings }

func (w *Wheel) Radius() float64 { return float64(w.settings.WheelSize) }

// Remaining returns the numbers still on the wheel in drawing order. The
// slice is owned by the wheel.
func (w *Wheel) Remaining() []int { return w.remaining }

// Winners returns the drawn numbers in draw order. The slice is owned by
// the wheel.
func (w *Wheel) Winners() []int { return w.winners }

func (w *Wheel) NumberColor(n int) color.RGBA { return w.colors.Color(n) }

func (w *Wheel) PointerAngle() float64 { return w.pointerAngle }

// Busy reports whether a spin, drag, flash or auto run is in progress.
func (w *Wheel) Busy() bool { return w.phase != Idle || w.auto }

func (w *Wheel) Auto() (active bool, left int) { return w.auto, w.autoLeft }

// FlashSection reports the wheel section being flashed and whether it is
// currently lit.
func (w *Wheel) FlashSection() (idx int, lit bool) {
	if w.phase != Flashing || w.flash.stage != flashSectionStage {
		return -1, false
	}
	return w.flash.section, w.flash.lit()
}

// FlashCell reports the winners table cell being flashed and whether it is
// currently lit.
func (w *Wheel) FlashCell() (idx int, lit bool) {
	if w.phase != Flashing || w.flash.stage != flashCellStage {
		return -1, false
	}
	return w.flash.cell, w.flash.lit()
}
