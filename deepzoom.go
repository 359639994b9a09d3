package deepzoom

// Vec2 is a 2D vector used for pointer positions and deltas.
type Vec2 struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle in client (pixel) coordinates. The origin
// is the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Normalize maps a client-space point inside r to [-1, 1] on each axis. An
// axis of zero size maps to 0.
func (r Rect) Normalize(clientX, clientY float64) Vec2 {
	var p Vec2
	if r.Width != 0 {
		p.X = (clientX-r.X)/r.Width*2 - 1
	}
	if r.Height != 0 {
		p.Y = (clientY-r.Y)/r.Height*2 - 1
	}
	return p
}

// Effect tells the host what to do after an event has been handled. Values
// combine with bitwise OR.
type Effect uint8

const (
	EffectDraw        Effect = 1 << iota // draw now, before the next event
	EffectRequestDraw                    // draw on the next frame
	EffectAnimate                        // the key-driven animation loop must run
	EffectConsumed                       // the host must not apply its default handling
)

// EffectNone means the event changed nothing the host needs to act on.
const EffectNone Effect = 0

// Has reports whether all bits of f are set in e.
func (e Effect) Has(f Effect) bool { return e&f == f }

func (e Effect) String() string {
	if e == EffectNone {
		return "none"
	}
	names := [...]string{"draw", "request-draw", "animate", "consumed"}
	s := ""
	for i, n := range names {
		if e&(1<<i) != 0 {
			if s != "" {
				s += "|"
			}
			s += n
		}
	}
	return s
}
