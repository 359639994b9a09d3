package deepzoom

// Pointer is one tracked physical pointer (mouse or touch contact).
type Pointer struct {
	ID int
	// Position is the last known location, normalized to [-1, 1].
	Position Vec2
	// Down is the location recorded at press time, nil while not pressed.
	Down *Vec2
}

// Pressed reports whether the pointer is currently down.
func (p Pointer) Pressed() bool { return p.Down != nil }

type pointerTransition uint8

const (
	pointerMoving pointerTransition = iota
	pointerGoingDown
	pointerGoingUp
)

// pointerList holds at most one entry per pointer ID. Entries are only
// removed by clear.
type pointerList []Pointer

// upsert records a new position for id, creating the entry if it is the
// first event seen for that pointer. It returns the entry's index and the
// motion since the previous event; a newly created entry reports no motion.
func (l *pointerList) upsert(id int, pos Vec2, tr pointerTransition) (int, Vec2) {
	for i := range *l {
		p := &(*l)[i]
		if p.ID != id {
			continue
		}
		delta := Vec2{X: pos.X - p.Position.X, Y: pos.Y - p.Position.Y}
		p.Position = pos
		switch tr {
		case pointerGoingDown:
			d := pos
			p.Down = &d
		case pointerGoingUp:
			p.Down = nil
		}
		return i, delta
	}
	p := Pointer{ID: id, Position: pos}
	if tr == pointerGoingDown {
		d := pos
		p.Down = &d
	}
	*l = append(*l, p)
	return len(*l) - 1, Vec2{}
}

// clear drops every tracked pointer.
func (l *pointerList) clear() {
	*l = (*l)[:0]
}

// pressMidpoint returns the centroid of the press-time positions of every
// pressed pointer. ok is false when nothing is pressed.
func (l pointerList) pressMidpoint() (mid Vec2, ok bool) {
	n := 0
	for _, p := range l {
		if p.Down == nil {
			continue
		}
		mid.X += p.Down.X
		mid.Y += p.Down.Y
		n++
	}
	if n == 0 {
		return Vec2{}, false
	}
	mid.X /= float64(n)
	mid.Y /= float64(n)
	return mid, true
}
