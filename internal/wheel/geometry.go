package wheel

import "math"

// Point is a position in screen coordinates (y grows downward).
type Point struct {
	X, Y float64
}

func Pt(x, y int) Point {
	return Point{X: float64(x), Y: float64(y)}
}

// Rect is an axis aligned box; Contains includes its edges.
type Rect struct {
	X, Y, W, H float64
}

func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X <= r.X+r.W && p.Y >= r.Y && p.Y <= r.Y+r.H
}

func (r Rect) Center() Point {
	return Point{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

func InCircle(p, center Point, radius float64) bool {
	dx := p.X - center.X
	dy := p.Y - center.Y
	return math.Sqrt(dx*dx+dy*dy) <= radius
}

// NormalizeDegrees maps a into [0, 360).
func NormalizeDegrees(a float64) float64 {
	a = math.Mod(a, 360)
	if a < 0 {
		a += 360
	}
	if a >= 360 {
		a = 0
	}
	return a
}

// PointerAngle is the direction of tip as seen from center, in degrees with
// the y axis flipped so 90 is straight up.
func PointerAngle(center, tip Point) float64 {
	dx := tip.X - center.X
	dy := center.Y - tip.Y
	return NormalizeDegrees(math.Atan2(dy, dx) * 180 / math.Pi)
}

// SectionAt returns the index of the section under the pointer when the
// wheel is rotated to angle, or -1 when there are no sections. Section i
// spans [angle + i*w, angle + (i+1)*w) with w = 360/n.
func SectionAt(angle, pointerAngle float64, n int) int {
	if n <= 0 {
		return -1
	}
	width := 360 / float64(n)
	relative := NormalizeDegrees(pointerAngle - NormalizeDegrees(angle))
	idx := int(math.Floor(relative/width)) % n
	if idx < 0 {
		idx += n
	}
	return idx
}

// SectionArc returns the start and end angle of section i in degrees.
func SectionArc(angle float64, i, n int) (start, end float64) {
	width := 360 / float64(n)
	return angle + float64(i)*width, angle + float64(i+1)*width
}

// OnCircle converts a polar position (degrees, y flipped) to screen space.
func OnCircle(center Point, radius, degrees float64) Point {
	rad := degrees * math.Pi / 180
	return Point{
		X: center.X + radius*math.Cos(rad),
		Y: center.Y - radius*math.Sin(rad),
	}
}

// screenAngle is the raw atan2 of p around center in screen space, degrees.
func screenAngle(p, center Point) float64 {
	return math.Atan2(p.Y-center.Y, p.X-center.X) * 180 / math.Pi
}

// wrapDelta folds an angle difference into (-180, 180].
func wrapDelta(d float64) float64 {
	if d > 180 {
		d -= 360
	} else if d <= -180 {
		d += 360
	}
	return d
}
