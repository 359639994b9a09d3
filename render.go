package deepzoom

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// fractalShaderSrc is the perturbation renderer. Each pixel iterates only its
// offset dz from the reference orbit, so the shader never needs more than
// float32 even when the anchor needs thousands of bits. %[1]d is the orbit
// depth, which Kage requires to be a constant.
const fractalShaderSrc = `//kage:unit pixels
package main

var ScaleX float
var ScaleY float
var OrbitRe [%[1]d]float
var OrbitIm [%[1]d]float

func Fragment(dst vec4, src vec2, color vec4) vec4 {
	p := (dst.xy-imageDstOrigin())/imageDstSize()*2 - 1
	// Surface Y grows downward, fractal Y upward.
	dc := vec2(ScaleX*p.x, -ScaleY*p.y)
	dz := vec2(0)
	prev := vec2(0)
	escaped := %[1]d
	for i := 0; i < %[1]d; i++ {
		if escaped == %[1]d {
			dz = vec2(
				2*(prev.x*dz.x-prev.y*dz.y)+dz.x*dz.x-dz.y*dz.y,
				2*(prev.x*dz.y+prev.y*dz.x)+2*dz.x*dz.y,
			) + dc
			z := vec2(OrbitRe[i], OrbitIm[i])
			w := z + dz
			if dot(w, w) > 4 {
				escaped = i
			}
			prev = z
		}
	}
	if escaped == %[1]d {
		return vec4(0, 0, 0, 1)
	}
	t := float(escaped) / float(%[1]d)
	rgb := 0.5 + 0.5*cos(6.28318*(t*4+vec3(0.0, 0.33, 0.67)))
	return vec4(rgb, 1)
}
`

// ShaderRenderer is the FrameSink that draws frames with a Kage shader. Render
// only records uniforms; Blit issues the draw from ebiten's Draw.
type ShaderRenderer struct {
	depth    int
	shader   *ebiten.Shader
	uniforms map[string]any
	shaderOp ebiten.DrawRectShaderOptions
	ready    bool
}

// NewShaderRenderer creates a renderer for orbits of the given depth. The
// shader is compiled lazily on the first Blit (no sync.Once: ebiten calls Draw
// from one goroutine).
func NewShaderRenderer(depth int) *ShaderRenderer {
	if depth <= 0 {
		depth = DefaultDepth
	}
	return &ShaderRenderer{
		depth:    depth,
		uniforms: make(map[string]any, 4),
	}
}

// shaderSource returns the Kage source for the given orbit depth.
func shaderSource(depth int) string {
	return fmt.Sprintf(fractalShaderSrc, depth)
}

func (r *ShaderRenderer) ensureShader() *ebiten.Shader {
	if r.shader == nil {
		s, err := ebiten.NewShader([]byte(shaderSource(r.depth)))
		if err != nil {
			panic("deepzoom: failed to compile fractal shader: " + err.Error())
		}
		r.shader = s
	}
	return r.shader
}

// Render records f's scale factors and orbit as shader uniforms. A frame whose
// orbit length does not match the shader depth is dropped.
func (r *ShaderRenderer) Render(f *Frame) {
	if f.Orbit.Len() != r.depth {
		Logger().Warn("render: orbit depth mismatch", "want", r.depth, "got", f.Orbit.Len())
		return
	}
	r.uniforms["ScaleX"] = f.ScaleX
	r.uniforms["ScaleY"] = f.ScaleY
	r.uniforms["OrbitRe"] = f.Orbit.Re
	r.uniforms["OrbitIm"] = f.Orbit.Im
	r.ready = true
}

// Blit draws the last rendered frame over the whole of dst.
func (r *ShaderRenderer) Blit(dst *ebiten.Image) {
	if !r.ready {
		return
	}
	b := dst.Bounds()
	r.shaderOp.Uniforms = r.uniforms
	dst.DrawRectShader(b.Dx(), b.Dy(), r.ensureShader(), &r.shaderOp)
}
