package asynclist

// Local edits to the loaded items. None of them fetch, none of them touch
// the cursor, and none of them deduplicate against loaded keys; a later
// successful fetch replaces whatever they produced.

// Insert places items at index i, clamped into [0, Len()].
func (l *List[T]) Insert(i int, items ...T) {
	if len(items) == 0 {
		return
	}
	l.mu.Lock()
	if l.closed {
		l.mu.Unlock()
		return
	}
	if i < 0 {
		i = 0
	}
	if i > len(l.items) {
		i = len(l.items)
	}
	out := make([]T, 0, len(l.items)+len(items))
	out = append(out, l.items[:i]...)
	out = append(out, items...)
	out = append(out, l.items[i:]...)
	l.items = out
	ev := Event{Kind: EventItems, State: l.state}
	l.mu.Unlock()
	l.notify(ev)
}

// Append adds items at the end.
func (l *List[T]) Append(items ...T) {
	if len(items) == 0 {
		return
	}
	l.mu.Lock()
	if l.closed {
		l.mu.Unlock()
		return
	}
	l.items = append(l.items, items...)
	ev := Event{Kind: EventItems, State: l.state}
	l.mu.Unlock()
	l.notify(ev)
}

// Prepend adds items at the front.
func (l *List[T]) Prepend(items ...T) {
	if len(items) == 0 {
		return
	}
	l.mu.Lock()
	if l.closed {
		l.mu.Unlock()
		return
	}
	out := make([]T, 0, len(items)+len(l.items))
	out = append(out, items...)
	out = append(out, l.items...)
	l.items = out
	ev := Event{Kind: EventItems, State: l.state}
	l.mu.Unlock()
	l.notify(ev)
}

// Update replaces the item stored under key. It reports whether the key
// was found.
func (l *List[T]) Update(key string, item T) bool {
	l.mu.Lock()
	if l.closed {
		l.mu.Unlock()
		return false
	}
	i := l.indexLocked(key)
	if i < 0 {
		l.mu.Unlock()
		return false
	}
	l.items[i] = item
	ev := Event{Kind: EventItems, State: l.state}
	l.mu.Unlock()
	l.notify(ev)
	return true
}

// Remove drops the items with the given keys and deselects those keys. It
// returns the number of items removed.
func (l *List[T]) Remove(keys ...string) int {
	if len(keys) == 0 {
		return 0
	}
	l.mu.Lock()
	if l.closed {
		l.mu.Unlock()
		return 0
	}
	drop := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		drop[k] = struct{}{}
	}
	kept := make([]T, 0, len(l.items))
	removed := 0
	for _, it := range l.items {
		if _, ok := drop[it.Key()]; ok {
			removed++
			continue
		}
		kept = append(kept, it)
	}
	l.items = kept
	selChanged := false
	for k := range drop {
		if _, ok := l.selection[k]; ok {
			delete(l.selection, k)
			selChanged = true
		}
	}
	var events []Event
	if removed > 0 {
		events = append(events, Event{Kind: EventItems, State: l.state})
	}
	if selChanged {
		events = append(events, Event{Kind: EventSelection, State: l.state})
	}
	l.mu.Unlock()
	l.notify(events...)
	return removed
}

// RemoveSelected drops every loaded item whose key is selected and
// deselects exactly those keys. Selected keys with no loaded item stay
// selected. It returns the number of items removed.
func (l *List[T]) RemoveSelected() int {
	l.mu.Lock()
	if l.closed || len(l.selection) == 0 {
		l.mu.Unlock()
		return 0
	}
	kept := make([]T, 0, len(l.items))
	removed := 0
	for _, it := range l.items {
		if _, ok := l.selection[it.Key()]; ok {
			delete(l.selection, it.Key())
			removed++
			continue
		}
		kept = append(kept, it)
	}
	l.items = kept
	var events []Event
	if removed > 0 {
		events = append(events,
			Event{Kind: EventItems, State: l.state},
			Event{Kind: EventSelection, State: l.state},
		)
	}
	l.mu.Unlock()
	l.notify(events...)
	return removed
}

// Move repositions the item with the given key to index to, clamped into
// the valid range. It reports whether the key was found.
func (l *List[T]) Move(key string, to int) bool {
	l.mu.Lock()
	if l.closed {
		l.mu.Unlock()
		return false
	}
	from := l.indexLocked(key)
	if from < 0 {
		l.mu.Unlock()
		return false
	}
	it := l.items[from]
	rest := make([]T, 0, len(l.items)-1)
	rest = append(rest, l.items[:from]...)
	rest = append(rest, l.items[from+1:]...)
	if to < 0 {
		to = 0
	}
	if to > len(rest) {
		to = len(rest)
	}
	out := make([]T, 0, len(l.items))
	out = append(out, rest[:to]...)
	out = append(out, it)
	out = append(out, rest[to:]...)
	l.items = out
	ev := Event{Kind: EventItems, State: l.state}
	l.mu.Unlock()
	l.notify(ev)
	return true
}
