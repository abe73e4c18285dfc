package opentk

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDispatchOrderObserversThenHook(t *testing.T) {
	w, _, _ := newTestWindow(t, Config{})
	var order []string

	w.OnUpdate(func(*Window, UpdateEvent) { order = append(order, "first") })
	w.OnUpdate(func(*Window, UpdateEvent) { order = append(order, "second") })
	w.Hooks.Update = func(*Window, UpdateEvent) { order = append(order, "hook") }

	w.dispatchUpdate(UpdateEvent{Elapsed: 0.016})

	assert.Equal(t, []string{"first", "second", "hook"}, order)
}

func TestNilHookIsSkipped(t *testing.T) {
	w, _, _ := newTestWindow(t, Config{})
	calls := 0
	w.OnRender(func(*Window, RenderEvent) { calls++ })

	w.dispatchRender(RenderEvent{Elapsed: 0.033, ScaleFactor: 1})
	assert.Equal(t, 1, calls)
}

func TestObserverRecordValues(t *testing.T) {
	w, _, _ := newTestWindow(t, Config{})
	var got RenderEvent
	w.OnRender(func(_ *Window, ev RenderEvent) { got = ev })

	w.dispatchRender(RenderEvent{Elapsed: 0.02, ScaleFactor: 1.25})

	assert.Equal(t, 0.02, got.Elapsed)
	assert.Equal(t, 1.25, got.ScaleFactor)
}

func TestUnsubscribe(t *testing.T) {
	w, _, _ := newTestWindow(t, Config{})
	calls := 0
	sub := w.OnUpdate(func(*Window, UpdateEvent) { calls++ })

	w.dispatchUpdate(UpdateEvent{})
	w.Unsubscribe(sub)
	w.dispatchUpdate(UpdateEvent{})

	assert.Equal(t, 1, calls)
}

func TestUnsubscribeDuringDispatchIsDeferred(t *testing.T) {
	w, _, _ := newTestWindow(t, Config{})
	var order []string

	var second Subscription
	w.OnUpdate(func(win *Window, _ UpdateEvent) {
		order = append(order, "first")
		win.Unsubscribe(second)
	})
	second = w.OnUpdate(func(*Window, UpdateEvent) { order = append(order, "second") })

	// The removal lands mid-dispatch; the current dispatch still sees the
	// original list.
	w.dispatchUpdate(UpdateEvent{})
	assert.Equal(t, []string{"first", "second"}, order)

	w.dispatchUpdate(UpdateEvent{})
	assert.Equal(t, []string{"first", "second", "first"}, order)
}

func TestSubscribeDuringDispatchIsDeferred(t *testing.T) {
	w, _, _ := newTestWindow(t, Config{})
	calls := 0
	added := false
	w.OnUpdate(func(win *Window, _ UpdateEvent) {
		if !added {
			added = true
			win.OnUpdate(func(*Window, UpdateEvent) { calls++ })
		}
	})

	w.dispatchUpdate(UpdateEvent{})
	assert.Zero(t, calls, "an observer added mid-dispatch must not run this dispatch")

	w.dispatchUpdate(UpdateEvent{})
	assert.Equal(t, 1, calls)
}

func TestUnsubscribeWrongKindIsHarmless(t *testing.T) {
	w, _, _ := newTestWindow(t, Config{})
	calls := 0
	w.OnLoad(func(*Window) { calls++ })
	renderSub := w.OnRender(func(*Window, RenderEvent) {})

	w.Unsubscribe(renderSub)
	w.dispatchLoad()
	assert.Equal(t, 1, calls)
}

func TestLifecycleObserversReceiveSender(t *testing.T) {
	w, _, _ := newTestWindow(t, Config{})
	var sender *Window
	w.OnUnload(func(win *Window) { sender = win })

	w.dispatchUnload()
	require.Same(t, w, sender)
}
