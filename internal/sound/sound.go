// Package sound plays the wheel's ratchet ticks and the winner chime.
package sound

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"
	"github.com/faiface/beep/flac"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/speaker"
	"github.com/faiface/beep/wav"
)

const SampleRate beep.SampleRate = 44100

var format = beep.Format{SampleRate: SampleRate, NumChannels: 2, Precision: 2}

type Player interface {
	Tick()
	Win()
}

// Nop is a silent Player.
type Nop struct{}

func (Nop) Tick() {}
func (Nop) Win()  {}

// Speaker plays pre-rendered buffers on the default audio device.
type Speaker struct {
	tick *beep.Buffer
	win  *beep.Buffer
}

// NewSpeaker opens the audio device. tickPath optionally names a WAV, MP3 or
// FLAC file used instead of the synthesized tick.
func NewSpeaker(tickPath string) (*Speaker, error) {
	tick, err := tickBuffer(tickPath)
	if err != nil {
		return nil, err
	}

	if err := speaker.Init(SampleRate, SampleRate.N(time.Second/20)); err != nil {
		return nil, fmt.Errorf("init speaker: %w", err)
	}

	win := beep.NewBuffer(format)
	win.Append(Chime(SampleRate))

	return &Speaker{tick: tick, win: win}, nil
}

func (s *Speaker) Tick() {
	speaker.Play(s.tick.Streamer(0, s.tick.Len()))
}

func (s *Speaker) Win() {
	speaker.Play(s.win.Streamer(0, s.win.Len()))
}

func tickBuffer(path string) (*beep.Buffer, error) {
	buf := beep.NewBuffer(format)
	if path == "" {
		buf.Append(Click(SampleRate))
		return buf, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open tick sound: %w", err)
	}
	defer f.Close()

	var (
		streamer   beep.StreamSeekCloser
		fileFormat beep.Format
	)
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".wav":
		streamer, fileFormat, err = wav.Decode(f)
	case ".mp3":
		streamer, fileFormat, err = mp3.Decode(f)
	case ".flac":
		streamer, fileFormat, err = flac.Decode(f)
	default:
		return nil, fmt.Errorf("unsupported tick sound type %q", ext)
	}
	if err != nil {
		return nil, fmt.Errorf("decode tick sound %s: %w", path, err)
	}
	defer streamer.Close()

	var s beep.Streamer = streamer
	if fileFormat.SampleRate != SampleRate {
		s = beep.Resample(4, fileFormat.SampleRate, SampleRate, s)
	}
	buf.Append(&effects.Volume{Streamer: s, Base: 2, Volume: -1})
	if err := streamer.Err(); err != nil {
		return nil, fmt.Errorf("decode tick sound %s: %w", path, err)
	}
	return buf, nil
}
