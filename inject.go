package deepzoom

// surfaceRect is the client rectangle of the render surface. Injected pointer
// coordinates are in surface pixels.
func (e *Explorer) surfaceRect() Rect {
	w, h := e.viewport.Size()
	return Rect{Width: float64(w), Height: float64(h)}
}

// InjectEvent queues ev. Queued events are dispatched one per Step, ahead of
// anything the script runner does next.
func (e *Explorer) InjectEvent(ev Event) {
	e.injectQueue = append(e.injectQueue, ev)
}

// InjectKey queues a key press or release.
func (e *Explorer) InjectKey(k Key, down bool) {
	if down {
		e.InjectEvent(KeyDownEvent{Key: k})
	} else {
		e.InjectEvent(KeyUpEvent{Key: k})
	}
}

func (e *Explorer) pointerEvent(id int, x, y float64) PointerEvent {
	return PointerEvent{ID: id, ClientX: x, ClientY: y, Rect: e.surfaceRect()}
}

// InjectPress queues a pointer press at surface pixel (x, y).
func (e *Explorer) InjectPress(id int, x, y float64) {
	e.InjectEvent(PointerDownEvent{e.pointerEvent(id, x, y)})
}

// InjectMove queues a pointer move to surface pixel (x, y).
func (e *Explorer) InjectMove(id int, x, y float64) {
	e.InjectEvent(PointerMoveEvent{e.pointerEvent(id, x, y)})
}

// InjectRelease queues a pointer release at surface pixel (x, y).
func (e *Explorer) InjectRelease(id int, x, y float64) {
	e.InjectEvent(PointerUpEvent{e.pointerEvent(id, x, y)})
}

// InjectDrag queues a full drag: a press at (fromX, fromY), frames-2 moves
// linearly interpolated up to and including (toX, toY), and a release there.
// The sequence consumes frames Steps. Minimum frames is 3, the shortest drag
// that moves.
func (e *Explorer) InjectDrag(id int, fromX, fromY, toX, toY float64, frames int) {
	if frames < 3 {
		frames = 3
	}
	e.InjectPress(id, fromX, fromY)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps)
		e.InjectMove(id, fromX+(toX-fromX)*t, fromY+(toY-fromY)*t)
	}
	e.InjectRelease(id, toX, toY)
}

// InjectWheel queues a wheel scroll in DOM pixel units.
func (e *Explorer) InjectWheel(dx, dy float64) {
	e.InjectEvent(WheelEvent{DeltaX: dx, DeltaY: dy})
}

// InjectedPending returns the number of queued events.
func (e *Explorer) InjectedPending() int { return len(e.injectQueue) }

// processInjected pops and dispatches one queued event. It reports whether an
// event was consumed.
func (e *Explorer) processInjected() bool {
	if len(e.injectQueue) == 0 {
		return false
	}
	ev := e.injectQueue[0]
	copy(e.injectQueue, e.injectQueue[1:])
	e.injectQueue[len(e.injectQueue)-1] = nil
	e.injectQueue = e.injectQueue[:len(e.injectQueue)-1]
	e.Dispatch(ev)
	return true
}
