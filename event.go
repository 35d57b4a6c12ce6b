package asynclist

// EventKind classifies a change notification.
type EventKind string

const (
	// EventItems fires when the item slice changed: a fetch applied, or a
	// local mutation ran.
	EventItems EventKind = "items"

	// EventState fires when the loading state changed.
	EventState EventKind = "state"

	// EventSelection fires when the selection changed.
	EventSelection EventKind = "selection"

	// EventFilter fires when the filter text changed.
	EventFilter EventKind = "filter"

	// EventSort fires when the sort descriptor changed.
	EventSort EventKind = "sort"
)

// Event is delivered to the [WithOnChange] hook after a state transition
// commits. It is a signal to re-read the list; State is included so
// consumers showing a spinner need not call back immediately.
type Event struct {
	Kind  EventKind
	State LoadingState
}
