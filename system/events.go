// Package system defines the platform backend seen by the GUI and engines.
package system

// EventType identifies a system-level event
type EventType int

const (
	EventNone EventType = iota
	EventReturnToLauncher
	EventQuit
)

// String returns a readable event name
func (t EventType) String() string {
	switch t {
	case EventReturnToLauncher:
		return "return-to-launcher"
	case EventQuit:
		return "quit"
	}
	return "none"
}

// Event is a queued system event
type Event struct {
	Type EventType
}

// EventQueue buffers events until the platform's main loop drains them.
// It is only used from the UI goroutine.
type EventQueue struct {
	events []Event
}

// NewEventQueue creates an empty queue
func NewEventQueue() *EventQueue {
	return &EventQueue{}
}

// Push appends an event
func (q *EventQueue) Push(e Event) {
	q.events = append(q.events, e)
}

// Poll removes and returns the oldest event
func (q *EventQueue) Poll() (Event, bool) {
	if len(q.events) == 0 {
		return Event{}, false
	}
	e := q.events[0]
	q.events = q.events[1:]
	return e, true
}

// Len returns the number of pending events
func (q *EventQueue) Len() int {
	return len(q.events)
}
