package input

import "sync"

// Kernel key event values.
const (
	valueReleased = 0
	valuePressed  = 1
	valueRepeated = 2
)

// keyTracker folds raw kernel key events into a pressed set and a queue of
// discrete events. The reader goroutine applies, the control loop drains.
type keyTracker struct {
	mu      sync.Mutex
	pressed KeySet
	queue   []Event
}

func (t *keyTracker) apply(code Code, value int32) {
	if code == NoCode || code > MaxCode {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	switch value {
	case valueReleased:
		t.pressed = t.pressed.Without(code)
	case valuePressed:
		t.pressed = t.pressed.With(code)
		t.queue = append(t.queue, Down(code))
	case valueRepeated:
		t.pressed = t.pressed.With(code)
		t.queue = append(t.queue, Event{Kind: KeyDown, Code: code, Repeat: true})
	}
}

func (t *keyTracker) push(ev Event) {
	t.mu.Lock()
	t.queue = append(t.queue, ev)
	t.mu.Unlock()
}

func (t *keyTracker) drain() []Event {
	t.mu.Lock()
	defer t.mu.Unlock()
	if len(t.queue) == 0 {
		return nil
	}
	out := t.queue
	t.queue = nil
	return out
}

func (t *keyTracker) snapshot() KeySet {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.pressed
}
