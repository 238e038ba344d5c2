package input

import "sync"

// Step is one poll of a Script: the events returned by PollEvents and the
// keys reported by Pressed until the next poll.
type Step struct {
	Events  []Event
	Pressed KeySet
}

// Script is a deterministic Source that replays steps in order, one per
// PollEvents call. Once the steps run out it reports Quit, so loops driven by
// a Script always terminate.
type Script struct {
	mu      sync.Mutex
	steps   []Step
	next    int
	current KeySet
	polls   int
	closed  bool
}

func NewScript(steps ...Step) *Script {
	return &Script{steps: steps}
}

func (s *Script) PollEvents() []Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.polls++
	if s.next >= len(s.steps) {
		s.current = KeySet{}
		return []Event{QuitEvent()}
	}
	st := s.steps[s.next]
	s.next++
	s.current = st.Pressed
	return st.Events
}

func (s *Script) Pressed() KeySet {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

func (s *Script) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return nil
}

// Polls returns how many times PollEvents was called.
func (s *Script) Polls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.polls
}

func (s *Script) Closed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}
