package scene

// EventKind is the type of a stack transition.
type EventKind int

const (
	EventPush EventKind = iota
	EventPop
	EventReplace
)

// String returns the event name.
func (k EventKind) String() string {
	switch k {
	case EventPush:
		return "push"
	case EventPop:
		return "pop"
	case EventReplace:
		return "replace"
	default:
		return "unknown"
	}
}

// Event is a queued stack transition. Scene is nil for Pop.
type Event struct {
	Kind  EventKind
	Scene Scene
}

// Queue collects events in emission order.
type Queue struct {
	events []Event
}

// Push requests that s becomes live and the current live scene is paused.
func (q *Queue) Push(s Scene) {
	q.events = append(q.events, Event{Kind: EventPush, Scene: s})
}

// Pop requests that the top paused scene becomes live again.
func (q *Queue) Pop() {
	q.events = append(q.events, Event{Kind: EventPop})
}

// Replace requests that s replaces the live scene.
func (q *Queue) Replace(s Scene) {
	q.events = append(q.events, Event{Kind: EventReplace, Scene: s})
}

// Len returns the number of pending events.
func (q *Queue) Len() int {
	return len(q.events)
}

// Events returns the pending events without consuming them.
func (q *Queue) Events() []Event {
	return q.events
}

// drain returns the pending events and empties the queue.
func (q *Queue) drain() []Event {
	ev := q.events
	q.events = nil
	return ev
}
