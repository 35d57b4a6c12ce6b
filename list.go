package asynclist

import (
	"context"
	"sort"
	"sync"
)

// Item is the element constraint. Keys identify items for selection and
// mutation and must be stable and unique within one list.
type Item interface {
	Key() string
}

// List manages asynchronously loaded, paginated, sortable and filterable
// items. All methods are safe for concurrent use. The zero value is not
// usable; construct with [New].
type List[T Item] struct {
	mu       sync.Mutex
	load     LoadFunc[T]
	sortFn   SortFunc[T]
	baseCtx  context.Context
	onChange func(Event)

	items      []T
	cursor     string
	filterText string
	sortDesc   *SortDescriptor
	selection  map[string]struct{}
	state      LoadingState
	err        error

	// gen identifies the current fetch. A result whose generation is no
	// longer current is discarded, which is what makes superseding safe.
	gen    uint64
	cancel context.CancelFunc
	closed bool
}

// Snapshot is a point-in-time copy of everything a consumer can observe.
type Snapshot[T Item] struct {
	Items      []T
	State      LoadingState
	Err        error
	Cursor     string
	FilterText string
	Sort       *SortDescriptor
	Selection  []string
	HasMore    bool
}

// New builds a list around the given load function. The list starts idle
// and empty; call [List.Reload] to run the first fetch.
func New[T Item](load LoadFunc[T], opts ...Option[T]) *List[T] {
	if load == nil {
		panic("asynclist: nil LoadFunc")
	}
	cfg := defaultConfig[T]()
	for _, opt := range opts {
		opt(&cfg)
	}
	l := &List[T]{
		load:       load,
		sortFn:     cfg.sortFn,
		baseCtx:    cfg.ctx,
		onChange:   cfg.onChange,
		filterText: cfg.filterText,
		sortDesc:   cfg.sortDesc,
		selection:  make(map[string]struct{}, len(cfg.selection)),
		state:      StateIdle,
	}
	for _, k := range cfg.selection {
		l.selection[k] = struct{}{}
	}
	return l
}

// Close cancels any in-flight fetch and turns every subsequent operation
// into a no-op. Accessors keep returning the final state. Idempotent.
func (l *List[T]) Close() {
	l.mu.Lock()
	if l.closed {
		l.mu.Unlock()
		return
	}
	l.closed = true
	if l.cancel != nil {
		l.cancel()
		l.cancel = nil
	}
	l.gen++
	if l.state.Loading() {
		l.state = StateIdle
	}
	l.mu.Unlock()
}

// ---- accessors ----

// Items returns a copy of the loaded items in display order.
func (l *List[T]) Items() []T {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]T(nil), l.items...)
}

// Len returns the number of loaded items.
func (l *List[T]) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.items)
}

// Get returns the item with the given key.
func (l *List[T]) Get(key string) (T, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if i := l.indexLocked(key); i >= 0 {
		return l.items[i], true
	}
	var zero T
	return zero, false
}

// IndexOf returns the position of the item with the given key, or -1.
func (l *List[T]) IndexOf(key string) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.indexLocked(key)
}

// State returns the current loading state.
func (l *List[T]) State() LoadingState {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.state
}

// Err returns the error from the last failed fetch, or nil. It is cleared
// when a new fetch starts.
func (l *List[T]) Err() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.err
}

// Cursor returns the pagination token from the last successful fetch.
// Empty means no further pages.
func (l *List[T]) Cursor() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.cursor
}

// HasMore reports whether a further page is available.
func (l *List[T]) HasMore() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.cursor != ""
}

// FilterText returns the current filter text.
func (l *List[T]) FilterText() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.filterText
}

// SortDescriptor returns the current sort descriptor. The second return is
// false while the list is unsorted.
func (l *List[T]) SortDescriptor() (SortDescriptor, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.sortDesc == nil {
		return SortDescriptor{}, false
	}
	return *l.sortDesc, true
}

// Snapshot returns a copy of the full observable state.
func (l *List[T]) Snapshot() Snapshot[T] {
	l.mu.Lock()
	defer l.mu.Unlock()
	snap := Snapshot[T]{
		Items:      append([]T(nil), l.items...),
		State:      l.state,
		Err:        l.err,
		Cursor:     l.cursor,
		FilterText: l.filterText,
		Selection:  l.selectedLocked(),
		HasMore:    l.cursor != "",
	}
	if l.sortDesc != nil {
		d := *l.sortDesc
		snap.Sort = &d
	}
	return snap
}

// ---- internals ----

func (l *List[T]) indexLocked(key string) int {
	for i, it := range l.items {
		if it.Key() == key {
			return i
		}
	}
	return -1
}

func (l *List[T]) selectedLocked() []string {
	keys := make([]string, 0, len(l.selection))
	for k := range l.selection {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func (l *List[T]) notify(events ...Event) {
	if l.onChange == nil {
		return
	}
	for _, ev := range events {
		l.onChange(ev)
	}
}
