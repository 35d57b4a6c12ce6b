package asynclist

// LoadingState describes what a [List] is currently doing.
type LoadingState string

const (
	// StateIdle means no fetch is running and the last fetch, if any,
	// succeeded.
	StateIdle LoadingState = "idle"

	// StateLoading means a full reload is in flight.
	StateLoading LoadingState = "loading"

	// StateLoadingMore means the next page is being appended.
	StateLoadingMore LoadingState = "loadingMore"

	// StateSorting means a fetch or client-side sort triggered by a sort
	// descriptor change is in flight.
	StateSorting LoadingState = "sorting"

	// StateFiltering means a fetch triggered by a filter text change is in
	// flight.
	StateFiltering LoadingState = "filtering"

	// StateError means the last fetch failed. Previously loaded items are
	// retained.
	StateError LoadingState = "error"
)

// String returns the string representation of the state.
func (s LoadingState) String() string {
	return string(s)
}

// Loading reports whether a fetch is in flight.
func (s LoadingState) Loading() bool {
	switch s {
	case StateLoading, StateLoadingMore, StateSorting, StateFiltering:
		return true
	}
	return false
}

// Settled reports whether the list is at rest, successfully or not.
func (s LoadingState) Settled() bool {
	return s == StateIdle || s == StateError
}

// Reason names the operation that triggered a fetch. It is carried on the
// [LoadRequest] so load functions can branch without tracking state of
// their own.
type Reason string

const (
	ReasonReload   Reason = "reload"
	ReasonLoadMore Reason = "loadMore"
	ReasonSort     Reason = "sort"
	ReasonFilter   Reason = "filter"
)
