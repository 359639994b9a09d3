package deepzoom

// DefaultDepth is the reference orbit length used when none is configured.
const DefaultDepth = 500

// DefaultBailout is the magnitude past which an orbit stops iterating.
const DefaultBailout = 1 << 32

// Orbit is the reference orbit of an anchor point: the per-iteration real and
// imaginary values narrowed to render precision. Re and Im always have the same
// length.
type Orbit struct {
	Re []float32
	Im []float32
}

// Len returns the number of iterations in the orbit.
func (o Orbit) Len() int { return len(o.Re) }

// OrbitOptions controls ComputeOrbit.
type OrbitOptions struct {
	// Depth is the number of iterations. Zero means DefaultDepth.
	Depth int
	// Precision is the number of significant bits the working values are
	// rounded to after every iteration. Zero keeps every value exact, which
	// only terminates in reasonable time for shallow depths or integer anchors.
	Precision uint
	// Bailout stops iteration once max(|re|, |im|) exceeds it; the
	// remaining entries repeat the last computed pair. Zero means
	// DefaultBailout.
	Bailout float64
}

func (o OrbitOptions) withDefaults() OrbitOptions {
	if o.Depth <= 0 {
		o.Depth = DefaultDepth
	}
	if o.Bailout <= 0 {
		o.Bailout = DefaultBailout
	}
	return o
}

// ComputeOrbit iterates the recurrence
//
//	re' = re² - im + x
//	im' = 2·re'·im + y
//
// from re = im = 0 at the working precision of N and returns every
// intermediate pair narrowed to float32.
func ComputeOrbit[N Number[N]](x, y N, opts OrbitOptions) Orbit {
	opts = opts.withDefaults()
	orbit := Orbit{
		Re: make([]float32, opts.Depth),
		Im: make([]float32, opts.Depth),
	}

	var zero N
	bailout, err := zero.FromFloat64(opts.Bailout)
	if err != nil {
		bailout, _ = zero.FromFloat64(DefaultBailout)
	}

	re, im := Zero[N](), Zero[N]()
	two := Two[N]()
	escaped := false
	var lastRe, lastIm float32
	for i := 0; i < opts.Depth; i++ {
		if !escaped {
			re = re.Mul(re).Sub(im).Add(x).RoundTo(opts.Precision)
			im = two.Mul(re).Mul(im).Add(y).RoundTo(opts.Precision)
			lastRe, lastIm = re.Float32(), im.Float32()
			if Max(re.Abs(), im.Abs()).Cmp(bailout) > 0 {
				escaped = true
			}
		}
		orbit.Re[i] = lastRe
		orbit.Im[i] = lastIm
	}
	return orbit
}

// WorkingPrecision returns the number of significant bits needed to iterate an
// anchor at the given zoom depth without the orbit collapsing to the precision
// of the scale factor.
func WorkingPrecision(zoomBits int) uint {
	const guard = 64
	if zoomBits < 0 {
		zoomBits = 0
	}
	return uint(guard + zoomBits)
}

// OrbitCache keeps the most recent orbit and returns it again while the
// anchor and options are unchanged.
type OrbitCache struct {
	valid  bool
	x, y   Rat
	opts   OrbitOptions
	orbit  Orbit
	hits   int
	misses int
}

// Get returns the orbit of (x, y), computing it only if the previous call used
// a different anchor or options. The returned slices must not be modified.
func (c *OrbitCache) Get(x, y Rat, opts OrbitOptions) Orbit {
	opts = opts.withDefaults()
	if c.valid && c.opts == opts && c.x.Cmp(x) == 0 && c.y.Cmp(y) == 0 {
		c.hits++
		return c.orbit
	}
	c.misses++
	c.orbit = ComputeOrbit(x, y, opts)
	c.x, c.y, c.opts = x, y, opts
	c.valid = true
	return c.orbit
}

// Reset discards the cached orbit.
func (c *OrbitCache) Reset() {
	*c = OrbitCache{}
}
