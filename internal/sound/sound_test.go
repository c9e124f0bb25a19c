package sound

import (
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/wav"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func drain(s beep.Streamer) (n int, peak float64) {
	buf := make([][2]float64, 512)
	for {
		k, ok := s.Stream(buf)
		for _, smp := range buf[:k] {
			peak = math.Max(peak, math.Abs(smp[0]))
		}
		n += k
		if !ok {
			return n, peak
		}
	}
}

func TestTone(t *testing.T) {
	n, peak := drain(Tone(SampleRate, 440, 100*time.Millisecond, 0.5))
	assert.Equal(t, SampleRate.N(100*time.Millisecond), n)
	assert.LessOrEqual(t, peak, 0.5)
	assert.Greater(t, peak, 0.1)
}

func TestClickAndChimeLengths(t *testing.T) {
	n, _ := drain(Click(SampleRate))
	assert.Equal(t, SampleRate.N(12*time.Millisecond), n)

	n, _ = drain(Chime(SampleRate))
	want := 2*SampleRate.N(120*time.Millisecond) + SampleRate.N(350*time.Millisecond)
	assert.Equal(t, want, n)
}

func TestNop(t *testing.T) {
	var p Player = Nop{}
	p.Tick()
	p.Win()
}

func TestTickBufferSynthesized(t *testing.T) {
	buf, err := tickBuffer("")
	require.NoError(t, err)
	assert.Equal(t, SampleRate.N(12*time.Millisecond), buf.Len())
}

func writeWav(t *testing.T, sr beep.SampleRate, d time.Duration) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tick.wav")
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	fileFormat := beep.Format{SampleRate: sr, NumChannels: 2, Precision: 2}
	require.NoError(t, wav.Encode(f, Tone(sr, 1000, d, 0.5), fileFormat))
	return path
}

func TestTickBufferFromWav(t *testing.T) {
	path := writeWav(t, SampleRate, 20*time.Millisecond)

	buf, err := tickBuffer(path)
	require.NoError(t, err)
	assert.Equal(t, SampleRate.N(20*time.Millisecond), buf.Len())
}

func TestTickBufferResamples(t *testing.T) {
	path := writeWav(t, 22050, 100*time.Millisecond)

	buf, err := tickBuffer(path)
	require.NoError(t, err)
	assert.InDelta(t, SampleRate.N(100*time.Millisecond), buf.Len(), 64)
}

func TestTickBufferErrors(t *testing.T) {
	_, err := tickBuffer(filepath.Join(t.TempDir(), "missing.wav"))
	assert.Error(t, err)

	junk := filepath.Join(t.TempDir(), "junk.wav")
	require.NoError(t, os.WriteFile(junk, []byte("not a wav file"), 0o644))
	_, err = tickBuffer(junk)
	assert.Error(t, err)

	ogg := filepath.Join(t.TempDir(), "tick.ogg")
	require.NoError(t, os.WriteFile(ogg, []byte("OggS"), 0o644))
	_, err = tickBuffer(ogg)
	assert.ErrorContains(t, err, "unsupported")
}
