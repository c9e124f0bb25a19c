package sound

import (
	"math"
	"time"

	"github.com/faiface/beep"
)

// Tone is a sine wave of freq Hz lasting d, fading out quadratically.
func Tone(sr beep.SampleRate, freq float64, d time.Duration, volume float64) beep.Streamer {
	n := sr.N(d)
	i := 0
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		if i >= n {
			return 0, false
		}
		k := 0
		for ; k < len(samples) && i < n; k++ {
			env := 1 - float64(i)/float64(n)
			v := volume * env * env * math.Sin(2*math.Pi*freq*float64(i)/float64(sr))
			samples[k][0] = v
			samples[k][1] = v
			i++
		}
		return k, true
	})
}

// Click is the ratchet sound played when a section passes the pointer.
func Click(sr beep.SampleRate) beep.Streamer {
	return Tone(sr, 1800, 12*time.Millisecond, 0.3)
}

// Chime is a rising three note arpeggio.
func Chime(sr beep.SampleRate) beep.Streamer {
	return beep.Seq(
		Tone(sr, 659.25, 120*time.Millisecond, 0.4),
		Tone(sr, 880, 120*time.Millisecond, 0.4),
		Tone(sr, 1318.5, 350*time.Millisecond, 0.4),
	)
}
