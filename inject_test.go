package deepzoom

import "testing"

func TestInjectKey(t *testing.T) {
	e, _, _ := newTestExplorer(t)
	e.InjectKey(KeyArrowLeft, true)
	e.InjectKey(KeyArrowLeft, false)
	if e.InjectedPending() != 2 {
		t.Fatalf("pending = %d", e.InjectedPending())
	}
	if _, ok := e.injectQueue[0].(KeyDownEvent); !ok {
		t.Errorf("first event = %T", e.injectQueue[0])
	}
	if _, ok := e.injectQueue[1].(KeyUpEvent); !ok {
		t.Errorf("second event = %T", e.injectQueue[1])
	}
}

func TestInjectUsesSurfaceRect(t *testing.T) {
	e, _, _ := newTestExplorer(t)
	e.InjectPress(3, 25, 75)
	ev := e.injectQueue[0].(PointerDownEvent)
	if ev.ID != 3 || ev.Rect != (Rect{Width: 100, Height: 100}) {
		t.Errorf("event = %+v", ev)
	}
	p := ev.Position()
	assertNear(t, "x", p.X, -0.5)
	assertNear(t, "y", p.Y, 0.5)
}

func TestInjectDrag(t *testing.T) {
	e, _, _ := newTestExplorer(t)
	e.InjectDrag(1, 50, 50, 100, 50, 5)
	if e.InjectedPending() != 5 {
		t.Fatalf("pending = %d, want 5", e.InjectedPending())
	}
	if _, ok := e.injectQueue[0].(PointerDownEvent); !ok {
		t.Errorf("first = %T", e.injectQueue[0])
	}
	last := e.injectQueue[3].(PointerMoveEvent)
	if last.ClientX != 100 || last.ClientY != 50 {
		t.Errorf("last move at (%v, %v)", last.ClientX, last.ClientY)
	}
	if _, ok := e.injectQueue[4].(PointerUpEvent); !ok {
		t.Errorf("last = %T", e.injectQueue[4])
	}
}

func TestInjectDragMinimumFrames(t *testing.T) {
	e, _, _ := newTestExplorer(t)
	e.InjectDrag(1, 0, 0, 10, 10, 1)
	if e.InjectedPending() != 3 {
		t.Errorf("pending = %d, want 3", e.InjectedPending())
	}
}

func TestInjectDragPans(t *testing.T) {
	e, _, _ := newTestExplorer(t)
	e.InjectDrag(1, 50, 50, 100, 50, 4)
	for i := 0; i < 4; i++ {
		e.Step()
	}
	if e.InjectedPending() != 0 {
		t.Fatalf("pending = %d", e.InjectedPending())
	}
	// A full half-width drag moves the view by one unit.
	x, _ := e.Viewport().Anchor()
	if x.Cmp(RatFromInt(-1)) != 0 {
		t.Errorf("anchor x = %v, want -1", x)
	}
	ps := e.Viewport().Pointers()
	if len(ps) != 1 || ps[0].Pressed() {
		t.Errorf("pointers = %+v", ps)
	}
}

func TestProcessInjectedOnePerStep(t *testing.T) {
	e, _, _ := newTestExplorer(t)
	e.InjectWheel(0, 10)
	e.InjectWheel(0, 10)
	if !e.processInjected() || e.InjectedPending() != 1 {
		t.Errorf("pending = %d after one pop", e.InjectedPending())
	}
	e.processInjected()
	if e.processInjected() {
		t.Error("empty queue reported an event")
	}
}
