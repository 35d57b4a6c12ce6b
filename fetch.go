package asynclist

import "context"

// Reload fetches the collection from the first page, superseding any fetch
// already in flight. It is also the recovery path after an error.
func (l *List[T]) Reload() {
	l.fetch(ReasonReload)
}

// LoadMore fetches the page after the current cursor and appends it. It is
// deliberately droppable: while any fetch is in flight, or when no further
// page exists, it does nothing. Callers may invoke it on every scroll tick.
func (l *List[T]) LoadMore() {
	l.fetch(ReasonLoadMore)
}

// Sort records the descriptor and reorders the list: through the configured
// [SortFunc] when one was given, otherwise by refetching with the new
// descriptor on the request. Supersedes any fetch in flight.
func (l *List[T]) Sort(d SortDescriptor) {
	l.mu.Lock()
	if l.closed {
		l.mu.Unlock()
		return
	}
	desc := d
	l.sortDesc = &desc
	if l.sortFn == nil {
		l.mu.Unlock()
		l.fetch(ReasonSort)
		return
	}

	gen, ctx, cancel := l.supersedeLocked()
	l.state = StateSorting
	items := append([]T(nil), l.items...)
	fn := l.sortFn
	events := []Event{
		{Kind: EventSort, State: l.state},
		{Kind: EventState, State: l.state},
	}
	l.mu.Unlock()

	// Notify before the goroutine starts so an instantly returning sort
	// cannot report completion ahead of the start transition.
	l.notify(events...)
	go func() {
		defer cancel()
		sorted, err := fn(ctx, items, desc)
		l.finishSort(gen, sorted, err)
	}()
}

// SetFilterText records the filter text and refetches with it. Supersedes
// any fetch in flight. Setting the same text again still refetches.
func (l *List[T]) SetFilterText(text string) {
	l.mu.Lock()
	if l.closed {
		l.mu.Unlock()
		return
	}
	l.filterText = text
	l.mu.Unlock()
	l.fetch(ReasonFilter)
}

// ---- fetch lifecycle ----

func (l *List[T]) fetch(reason Reason) {
	l.mu.Lock()
	if l.closed {
		l.mu.Unlock()
		return
	}
	if reason == ReasonLoadMore && (!l.state.Settled() || l.cursor == "") {
		l.mu.Unlock()
		return
	}

	gen, ctx, cancel := l.supersedeLocked()
	l.state = fetchState(reason)
	req := LoadRequest{FilterText: l.filterText, Reason: reason}
	if reason == ReasonLoadMore {
		req.Cursor = l.cursor
	}
	if l.sortDesc != nil {
		d := *l.sortDesc
		req.Sort = &d
	}
	var events []Event
	switch reason {
	case ReasonSort:
		events = append(events, Event{Kind: EventSort, State: l.state})
	case ReasonFilter:
		events = append(events, Event{Kind: EventFilter, State: l.state})
	}
	events = append(events, Event{Kind: EventState, State: l.state})
	l.mu.Unlock()

	// Notify before the goroutine starts so an instantly returning load
	// cannot report completion ahead of the start transition.
	l.notify(events...)
	go func() {
		defer cancel()
		res, err := l.load(ctx, req)
		l.finish(gen, req, res, err)
	}()
}

// supersedeLocked cancels the in-flight fetch, if any, and claims the next
// generation. Caller holds l.mu.
func (l *List[T]) supersedeLocked() (uint64, context.Context, context.CancelFunc) {
	if l.cancel != nil {
		l.cancel()
	}
	l.gen++
	ctx, cancel := context.WithCancel(l.baseCtx)
	l.cancel = cancel
	l.err = nil
	return l.gen, ctx, cancel
}

// finish applies a fetch result. Results from a superseded generation or a
// closed list are discarded, which keeps abort-then-deliver races harmless.
func (l *List[T]) finish(gen uint64, req LoadRequest, res LoadResult[T], err error) {
	l.mu.Lock()
	if l.closed || gen != l.gen {
		l.mu.Unlock()
		return
	}
	l.cancel = nil

	if err != nil {
		l.err = err
		l.state = StateError
		ev := Event{Kind: EventState, State: l.state}
		l.mu.Unlock()
		l.notify(ev)
		return
	}

	if req.Reason == ReasonLoadMore {
		l.appendLocked(res.Items)
	} else {
		l.items = dedupeByKey(res.Items)
	}
	l.cursor = res.Cursor
	if res.Sort != nil {
		d := *res.Sort
		l.sortDesc = &d
	}
	if res.Selection != nil {
		if req.Reason != ReasonLoadMore {
			l.selection = make(map[string]struct{}, len(res.Selection))
		}
		for _, k := range res.Selection {
			l.selection[k] = struct{}{}
		}
	}
	l.state = StateIdle
	l.err = nil

	events := []Event{{Kind: EventItems, State: l.state}}
	if res.Sort != nil {
		events = append(events, Event{Kind: EventSort, State: l.state})
	}
	if res.Selection != nil {
		events = append(events, Event{Kind: EventSelection, State: l.state})
	}
	events = append(events, Event{Kind: EventState, State: l.state})
	l.mu.Unlock()
	l.notify(events...)
}

func (l *List[T]) finishSort(gen uint64, sorted []T, err error) {
	l.mu.Lock()
	if l.closed || gen != l.gen {
		l.mu.Unlock()
		return
	}
	l.cancel = nil

	var events []Event
	if err != nil {
		l.err = err
		l.state = StateError
	} else {
		l.items = append([]T(nil), sorted...)
		l.state = StateIdle
		l.err = nil
		events = append(events, Event{Kind: EventItems, State: l.state})
	}
	events = append(events, Event{Kind: EventState, State: l.state})
	l.mu.Unlock()
	l.notify(events...)
}

// appendLocked adds a page to the tail, dropping items whose keys are
// already loaded.
func (l *List[T]) appendLocked(batch []T) {
	for _, it := range batch {
		if l.indexLocked(it.Key()) >= 0 {
			continue
		}
		l.items = append(l.items, it)
	}
}

// dedupeByKey copies batch keeping the first occurrence of each key.
func dedupeByKey[T Item](batch []T) []T {
	seen := make(map[string]struct{}, len(batch))
	out := make([]T, 0, len(batch))
	for _, it := range batch {
		k := it.Key()
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, it)
	}
	return out
}

func fetchState(r Reason) LoadingState {
	switch r {
	case ReasonLoadMore:
		return StateLoadingMore
	case ReasonSort:
		return StateSorting
	case ReasonFilter:
		return StateFiltering
	default:
		return StateLoading
	}
}
