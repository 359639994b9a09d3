package deepzoom

import (
	"encoding/json"
	"fmt"
)

// scriptStep is a single action in a script.
type scriptStep struct {
	Action string  `json:"action"`
	Label  string  `json:"label,omitempty"`
	Key    string  `json:"key,omitempty"`
	ID     int     `json:"id,omitempty"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	FromX  float64 `json:"fromX,omitempty"`
	FromY  float64 `json:"fromY,omitempty"`
	ToX    float64 `json:"toX,omitempty"`
	ToY    float64 `json:"toY,omitempty"`
	DX     float64 `json:"dx,omitempty"`
	DY     float64 `json:"dy,omitempty"`
	Width  int     `json:"width,omitempty"`
	Height int     `json:"height,omitempty"`
	Frames int     `json:"frames,omitempty"`
}

type scriptFile struct {
	Steps []scriptStep `json:"steps"`
}

var scriptActions = map[string]bool{
	"key_down": true, "key_up": true,
	"press": true, "move": true, "release": true, "drag": true,
	"wheel": true, "resize": true, "focus": true, "blur": true,
	"wait": true, "screenshot": true,
}

// Script sequences injected input, waits and screenshots across frames, for
// replaying a navigation session. Attach it with Explorer.SetScript.
//
// Pointer coordinates are surface pixels. Key names are DOM key values as
// accepted by ParseKey.
type Script struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool
}

// LoadScript parses a JSON script.
func LoadScript(data []byte) (*Script, error) {
	var f scriptFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}
	if len(f.Steps) == 0 {
		return nil, fmt.Errorf("parse script: no steps")
	}
	for i, st := range f.Steps {
		if !scriptActions[st.Action] {
			return nil, fmt.Errorf("parse script: step %d: unknown action %q", i, st.Action)
		}
		if (st.Action == "key_down" || st.Action == "key_up") && ParseKey(st.Key) == KeyUnknown {
			return nil, fmt.Errorf("parse script: step %d: unknown key %q", i, st.Key)
		}
	}
	return &Script{steps: f.Steps}, nil
}

// Done reports whether every step has run and its input has been dispatched.
func (s *Script) Done() bool {
	return s.done
}

// step advances the script by one frame. Called from Explorer.Step.
func (s *Script) step(e *Explorer) {
	if s.done {
		return
	}
	if e.InjectedPending() > 0 {
		return
	}
	if s.waitCount > 0 {
		s.waitCount--
		return
	}
	if s.cursor >= len(s.steps) {
		s.done = true
		return
	}

	st := s.steps[s.cursor]
	s.cursor++

	switch st.Action {
	case "key_down":
		e.InjectKey(ParseKey(st.Key), true)
	case "key_up":
		e.InjectKey(ParseKey(st.Key), false)
	case "press":
		e.InjectPress(st.ID, st.X, st.Y)
	case "move":
		e.InjectMove(st.ID, st.X, st.Y)
	case "release":
		e.InjectRelease(st.ID, st.X, st.Y)
	case "drag":
		e.InjectDrag(st.ID, st.FromX, st.FromY, st.ToX, st.ToY, st.Frames)
	case "wheel":
		e.InjectWheel(st.DX, st.DY)
	case "resize":
		e.InjectEvent(ResizeEvent{Width: st.Width, Height: st.Height})
	case "focus":
		e.InjectEvent(FocusChangeEvent{Focused: true})
	case "blur":
		e.InjectEvent(FocusChangeEvent{Focused: false})
	case "wait":
		if st.Frames > 0 {
			s.waitCount = st.Frames - 1 // this frame counts as one
		}
	case "screenshot":
		e.screenshot(st.Label)
	}

	if s.cursor >= len(s.steps) && s.waitCount == 0 && e.InjectedPending() == 0 {
		s.done = true
	}
}
