package wheel

import "math"

const (
	dragSpeedFactor    = 0.1
	dragDistanceFactor = 10
	dragMinSpeed       = 0.5
)

// Rand is the subset of *rand.Rand (math/rand/v2) the wheel draws from.
type Rand interface {
	IntN(n int) int
	Shuffle(n int, swap func(i, j int))
}

// Spin is a linear deceleration: the wheel coasts at Speed until it has
// travelled Remaining degrees, then loses the deceleration every tick.
type Spin struct {
	// Speed in degrees per tick; positive turns clockwise on screen.
	Speed     float64
	Remaining float64
}

// Step advances one tick and returns the change to apply to the wheel angle.
// done reports that the wheel came to rest.
func (s *Spin) Step(decel float64) (delta float64, done bool) {
	delta = -s.Speed
	s.Remaining -= math.Abs(s.Speed)
	if s.Remaining <= 0 {
		s.Speed -= decel * sign(s.Speed)
		if math.Abs(s.Speed) <= decel {
			s.Speed = 0
			return delta, true
		}
	}
	return delta, false
}

// ButtonSpin starts at full speed and coasts a whole number of turns picked
// from [MinSpins, MaxSpins].
func ButtonSpin(s Settings, r Rand) Spin {
	return Spin{
		Speed:     float64(s.MaxSpeed) * directionSign(s.Direction, r),
		Remaining: float64(randomTurns(s, r) * 360),
	}
}

// DragSpin converts a release velocity (degrees per second) into a spin.
// Flicks too slow to matter return false.
func DragSpin(velocity float64, s Settings, r Rand) (Spin, bool) {
	speed := math.Min(float64(s.MaxSpeed), math.Abs(velocity)*dragSpeedFactor) * sign(velocity)
	if math.Abs(speed) <= dragMinSpeed {
		return Spin{}, false
	}
	return Spin{
		Speed:     speed,
		Remaining: math.Abs(velocity)*dragDistanceFactor + float64(randomTurns(s, r)*360),
	}, true
}

func randomTurns(s Settings, r Rand) int {
	if s.MaxSpins <= s.MinSpins {
		return s.MinSpins
	}
	return s.MinSpins + r.IntN(s.MaxSpins-s.MinSpins+1)
}

func directionSign(d Direction, r Rand) float64 {
	switch d {
	case CounterClockwise:
		return -1
	case RandomDirection:
		if r.IntN(2) == 0 {
			return -1
		}
		return 1
	default:
		return 1
	}
}

func sign(v float64) float64 {
	if v < 0 {
		return -1
	}
	return 1
}
