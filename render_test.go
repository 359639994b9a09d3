package deepzoom

import (
	"strings"
	"testing"
)

func TestShaderSourceDepth(t *testing.T) {
	src := shaderSource(128)
	if !strings.Contains(src, "var OrbitRe [128]float") || !strings.Contains(src, "i < 128") {
		t.Error("depth not substituted")
	}
	if strings.Contains(src, "%") {
		t.Error("unexpanded verb left in shader source")
	}
}

func TestShaderRendererUniforms(t *testing.T) {
	r := NewShaderRenderer(8)
	f := &Frame{ScaleX: 0.5, ScaleY: 0.25, Orbit: ComputeOrbit(Rat{}, Rat{}, OrbitOptions{Depth: 8})}
	r.Render(f)
	if !r.ready {
		t.Fatal("frame not accepted")
	}
	if r.uniforms["ScaleX"] != float32(0.5) || r.uniforms["ScaleY"] != float32(0.25) {
		t.Errorf("uniforms = %v", r.uniforms)
	}
	if re := r.uniforms["OrbitRe"].([]float32); len(re) != 8 {
		t.Errorf("OrbitRe len = %d", len(re))
	}
}

func TestShaderRendererDepthMismatch(t *testing.T) {
	r := NewShaderRenderer(8)
	r.Render(&Frame{Orbit: ComputeOrbit(Rat{}, Rat{}, OrbitOptions{Depth: 4})})
	if r.ready {
		t.Error("mismatched frame accepted")
	}
	if NewShaderRenderer(0).depth != DefaultDepth {
		t.Error("zero depth should default")
	}
}

func TestHUDText(t *testing.T) {
	f := &Frame{ZoomBits: 42, AnchorX: NewRat(-3, 4), AnchorY: NewRat(1, 8)}
	got := hudText(59.94, 60, f)
	for _, want := range []string{"FPS: 59.9", "TPS: 60.0", "zoom: 2^42", "re: -0.75000", "im: 0.12500"} {
		if !strings.Contains(got, want) {
			t.Errorf("hud text %q missing %q", got, want)
		}
	}
}
