package input

import "fmt"

type EventKind uint8

const (
	KeyDown EventKind = iota + 1
	Quit
)

func (k EventKind) String() string {
	switch k {
	case KeyDown:
		return "key-down"
	case Quit:
		return "quit"
	default:
		return fmt.Sprintf("EventKind(%d)", uint8(k))
	}
}

// Event is a discrete input event. Code is set for KeyDown only.
// Repeat marks keyboard autorepeat of a key that is already down.
type Event struct {
	Kind   EventKind
	Code   Code
	Repeat bool
}

func Down(c Code) Event { return Event{Kind: KeyDown, Code: c} }

func QuitEvent() Event { return Event{Kind: Quit} }

// Source is the input device as seen by the control loop and the binding
// wizard.
type Source interface {
	// PollEvents drains the events queued since the previous call. It never
	// blocks and returns nil when nothing is queued.
	PollEvents() []Event
	// Pressed returns the keys held right now.
	Pressed() KeySet
	Close() error
}
