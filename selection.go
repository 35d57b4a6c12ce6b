package asynclist

// Selection is a set of keys carried independently of the item slice: keys
// stay selected across reloads and pages, whether or not an item with that
// key is currently loaded.

// SelectedKeys returns the selected keys in lexicographic order.
func (l *List[T]) SelectedKeys() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.selectedLocked()
}

// IsSelected reports whether the key is selected.
func (l *List[T]) IsSelected(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	_, ok := l.selection[key]
	return ok
}

// SelectedCount returns the number of selected keys.
func (l *List[T]) SelectedCount() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.selection)
}

// Select adds the given keys to the selection.
func (l *List[T]) Select(keys ...string) {
	if len(keys) == 0 {
		return
	}
	l.mu.Lock()
	if l.closed {
		l.mu.Unlock()
		return
	}
	changed := false
	for _, k := range keys {
		if _, ok := l.selection[k]; !ok {
			l.selection[k] = struct{}{}
			changed = true
		}
	}
	l.emitSelection(changed)
}

// Deselect removes the given keys from the selection.
func (l *List[T]) Deselect(keys ...string) {
	if len(keys) == 0 {
		return
	}
	l.mu.Lock()
	if l.closed {
		l.mu.Unlock()
		return
	}
	changed := false
	for _, k := range keys {
		if _, ok := l.selection[k]; ok {
			delete(l.selection, k)
			changed = true
		}
	}
	l.emitSelection(changed)
}

// Toggle flips the selection state of one key.
func (l *List[T]) Toggle(key string) {
	l.mu.Lock()
	if l.closed {
		l.mu.Unlock()
		return
	}
	if _, ok := l.selection[key]; ok {
		delete(l.selection, key)
	} else {
		l.selection[key] = struct{}{}
	}
	l.emitSelection(true)
}

// SetSelection replaces the selection with exactly the given keys.
func (l *List[T]) SetSelection(keys ...string) {
	l.mu.Lock()
	if l.closed {
		l.mu.Unlock()
		return
	}
	l.selection = make(map[string]struct{}, len(keys))
	for _, k := range keys {
		l.selection[k] = struct{}{}
	}
	l.emitSelection(true)
}

// ClearSelection deselects everything.
func (l *List[T]) ClearSelection() {
	l.mu.Lock()
	if l.closed || len(l.selection) == 0 {
		l.mu.Unlock()
		return
	}
	l.selection = make(map[string]struct{})
	l.emitSelection(true)
}

// SelectAll replaces the selection with the keys of the loaded items.
func (l *List[T]) SelectAll() {
	l.mu.Lock()
	if l.closed {
		l.mu.Unlock()
		return
	}
	l.selection = make(map[string]struct{}, len(l.items))
	for _, it := range l.items {
		l.selection[it.Key()] = struct{}{}
	}
	l.emitSelection(true)
}

// emitSelection unlocks l.mu and, when changed, notifies. Caller holds
// l.mu.
func (l *List[T]) emitSelection(changed bool) {
	ev := Event{Kind: EventSelection, State: l.state}
	l.mu.Unlock()
	if changed {
		l.notify(ev)
	}
}
