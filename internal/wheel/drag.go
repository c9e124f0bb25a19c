package wheel

// Drag follows a pointer held on the wheel and remembers the angular
// velocity of the last movement, in screen degrees per second.
type Drag struct {
	active   bool
	last     Point
	elapsed  float64
	velocity float64
}

func (d *Drag) Begin(p Point) {
	*d = Drag{active: true, last: p}
}

func (d *Drag) Active() bool {
	return d.active
}

// Move feeds the pointer position for one tick of dt seconds and returns the
// change to apply to the wheel angle. Ticks without movement only add to the
// elapsed time, so the velocity of the last real movement survives a pause.
func (d *Drag) Move(p, center Point, radius, dt float64) float64 {
	if !d.active {
		return 0
	}
	d.elapsed += dt
	if p == d.last {
		return 0
	}

	var delta float64
	if InCircle(p, center, radius) && d.elapsed > 0 {
		diff := wrapDelta(screenAngle(p, center) - screenAngle(d.last, center))
		d.velocity = diff / d.elapsed
		delta = -d.velocity * d.elapsed
	}
	d.last = p
	d.elapsed = 0
	return delta
}

// End stops the drag and returns the last measured velocity.
func (d *Drag) End() float64 {
	v := d.velocity
	*d = Drag{}
	return v
}
