package opentk

// UpdateEvent is the record passed to each update tick.
type UpdateEvent struct {
	// Elapsed is the seconds since the previous update tick, clamped to
	// 0.1s to bound catch-up work after a stall.
	Elapsed float64
}

// RenderEvent is the record passed to each render tick.
type RenderEvent struct {
	// Elapsed is the seconds since the previous render tick, clamped to 0.1s.
	Elapsed float64
	// ScaleFactor is the ratio of the measured render period to the measured
	// update period, 1.0 when either is still unknown. Renderers use it to
	// interpolate between logic states.
	ScaleFactor float64
}

// ResizeEvent carries the new drawable size of the surface.
type ResizeEvent struct {
	Width  int
	Height int
}

// Hooks holds the single overridable handler per occurrence kind. Hooks run
// after all subscribed observers of the same kind. Nil hooks are skipped.
type Hooks struct {
	Load    func(*Window)
	Update  func(*Window, UpdateEvent)
	Render  func(*Window, RenderEvent)
	Resize  func(*Window, ResizeEvent)
	Unload  func(*Window)
	Destroy func(*Window)
}

type occurrenceKind int

const (
	occLoad occurrenceKind = iota
	occUpdate
	occRender
	occResize
	occUnload
	occDestroy
)

// Subscription identifies one registered observer, for Unsubscribe.
type Subscription struct {
	kind occurrenceKind
	id   int
}

type observerEntry[T any] struct {
	id int
	fn func(*Window, T)
}

// observerList keeps observers in registration order. Dispatch walks a
// snapshot of the list, so subscribing or unsubscribing from inside a
// notification takes effect from the next dispatch, never the current one.
type observerList[T any] struct {
	nextID  int
	entries []observerEntry[T]
}

func (l *observerList[T]) add(fn func(*Window, T)) int {
	l.nextID++
	entries := make([]observerEntry[T], 0, len(l.entries)+1)
	entries = append(entries, l.entries...)
	entries = append(entries, observerEntry[T]{id: l.nextID, fn: fn})
	l.entries = entries
	return l.nextID
}

func (l *observerList[T]) remove(id int) {
	entries := make([]observerEntry[T], 0, len(l.entries))
	for _, e := range l.entries {
		if e.id != id {
			entries = append(entries, e)
		}
	}
	l.entries = entries
}

func (l *observerList[T]) dispatch(w *Window, ev T) {
	for _, e := range l.entries {
		e.fn(w, ev)
	}
}

// OnLoad subscribes an observer to the Load occurrence.
func (w *Window) OnLoad(fn func(*Window)) Subscription {
	return Subscription{kind: occLoad, id: w.loadObs.add(wrap(fn))}
}

// OnUpdate subscribes an observer to every update tick.
func (w *Window) OnUpdate(fn func(*Window, UpdateEvent)) Subscription {
	return Subscription{kind: occUpdate, id: w.updateObs.add(fn)}
}

// OnRender subscribes an observer to every render tick.
func (w *Window) OnRender(fn func(*Window, RenderEvent)) Subscription {
	return Subscription{kind: occRender, id: w.renderObs.add(fn)}
}

// OnResize subscribes an observer to drawable size changes. The window's
// cached size is already updated by the time the observer runs.
func (w *Window) OnResize(fn func(*Window, ResizeEvent)) Subscription {
	return Subscription{kind: occResize, id: w.resizeObs.add(fn)}
}

// OnUnload subscribes an observer to the Unload occurrence, fired once when
// the loop exits.
func (w *Window) OnUnload(fn func(*Window)) Subscription {
	return Subscription{kind: occUnload, id: w.unloadObs.add(wrap(fn))}
}

// OnDestroy subscribes an observer to the Destroy occurrence, fired once
// while the surface's graphics context is still valid.
func (w *Window) OnDestroy(fn func(*Window)) Subscription {
	return Subscription{kind: occDestroy, id: w.destroyObs.add(wrap(fn))}
}

// Unsubscribe removes a previously registered observer. Removing during a
// dispatch of the same kind takes effect from the next dispatch.
func (w *Window) Unsubscribe(sub Subscription) {
	switch sub.kind {
	case occLoad:
		w.loadObs.remove(sub.id)
	case occUpdate:
		w.updateObs.remove(sub.id)
	case occRender:
		w.renderObs.remove(sub.id)
	case occResize:
		w.resizeObs.remove(sub.id)
	case occUnload:
		w.unloadObs.remove(sub.id)
	case occDestroy:
		w.destroyObs.remove(sub.id)
	}
}

func wrap(fn func(*Window)) func(*Window, struct{}) {
	return func(w *Window, _ struct{}) { fn(w) }
}

func (w *Window) dispatchLoad() {
	w.loadObs.dispatch(w, struct{}{})
	if w.Hooks.Load != nil {
		w.Hooks.Load(w)
	}
}

func (w *Window) dispatchUpdate(ev UpdateEvent) {
	w.updateObs.dispatch(w, ev)
	if w.Hooks.Update != nil {
		w.Hooks.Update(w, ev)
	}
}

func (w *Window) dispatchRender(ev RenderEvent) {
	w.renderObs.dispatch(w, ev)
	if w.Hooks.Render != nil {
		w.Hooks.Render(w, ev)
	}
}

// dispatchResize writes the size cache before notifying anyone: observers
// must see the new size through the window's accessors.
func (w *Window) dispatchResize(ev ResizeEvent) {
	w.width, w.height = ev.Width, ev.Height
	w.resizeObs.dispatch(w, ev)
	if w.Hooks.Resize != nil {
		w.Hooks.Resize(w, ev)
	}
}

func (w *Window) dispatchUnload() {
	w.unloadObs.dispatch(w, struct{}{})
	if w.Hooks.Unload != nil {
		w.Hooks.Unload(w)
	}
}

func (w *Window) dispatchDestroy() {
	w.destroyObs.dispatch(w, struct{}{})
	if w.Hooks.Destroy != nil {
		w.Hooks.Destroy(w)
	}
}
