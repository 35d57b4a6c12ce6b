package asynclist

import (
	"context"
	"testing"
)

func newIdleList(t *testing.T, items ...entry) *List[entry] {
	t.Helper()
	l := New(func(ctx context.Context, req LoadRequest) (LoadResult[entry], error) {
		return LoadResult[entry]{}, nil
	})
	t.Cleanup(l.Close)
	if len(items) > 0 {
		l.Append(items...)
	}
	return l
}

func TestNewPanicsOnNilLoad(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("New(nil) did not panic")
		}
	}()
	New[entry](nil)
}

func TestAccessorsOnEmptyList(t *testing.T) {
	l := newIdleList(t)

	if got := l.Len(); got != 0 {
		t.Errorf("Len = %d, want 0", got)
	}
	if _, ok := l.Get("missing"); ok {
		t.Error("Get(missing) = ok")
	}
	if got := l.IndexOf("missing"); got != -1 {
		t.Errorf("IndexOf(missing) = %d, want -1", got)
	}
	if l.HasMore() {
		t.Error("HasMore = true on fresh list")
	}
	if _, ok := l.SortDescriptor(); ok {
		t.Error("SortDescriptor = ok on unsorted list")
	}
	if got := l.State(); got != StateIdle {
		t.Errorf("state = %v, want %v", got, StateIdle)
	}
	if l.Err() != nil {
		t.Errorf("err = %v, want nil", l.Err())
	}
}

func TestGetAndIndexOf(t *testing.T) {
	l := newIdleList(t, entry{id: "a", name: "alpha"}, entry{id: "b", name: "beta"})

	it, ok := l.Get("b")
	if !ok || it.name != "beta" {
		t.Errorf("Get(b) = %+v ok=%v, want beta", it, ok)
	}
	if got := l.IndexOf("b"); got != 1 {
		t.Errorf("IndexOf(b) = %d, want 1", got)
	}
}

func TestItemsReturnsCopy(t *testing.T) {
	l := newIdleList(t, entry{id: "a"}, entry{id: "b"})

	items := l.Items()
	items[0] = entry{id: "mutated"}
	if got := l.IndexOf("a"); got != 0 {
		t.Error("mutating the returned slice changed the list")
	}
}

func TestInitialOptions(t *testing.T) {
	calls := make(chan LoadRequest, 1)
	load := func(ctx context.Context, req LoadRequest) (LoadResult[entry], error) {
		calls <- req
		return LoadResult[entry]{}, nil
	}
	l := New(load,
		WithInitialFilterText[entry]("dune"),
		WithInitialSort[entry](SortDescriptor{Column: "title", Direction: Descending}),
		WithInitialSelection[entry]("x", "y"),
	)
	defer l.Close()

	if got := l.FilterText(); got != "dune" {
		t.Errorf("FilterText = %q, want %q", got, "dune")
	}
	d, ok := l.SortDescriptor()
	if !ok || d.Column != "title" || d.Direction != Descending {
		t.Errorf("descriptor = %+v ok=%v, want title descending", d, ok)
	}
	sel := l.SelectedKeys()
	if len(sel) != 2 || sel[0] != "x" || sel[1] != "y" {
		t.Errorf("selection = %v, want [x y]", sel)
	}

	l.Reload()
	req := <-calls
	if req.FilterText != "dune" {
		t.Errorf("first request filter = %q, want %q", req.FilterText, "dune")
	}
	if req.Sort == nil || req.Sort.Column != "title" {
		t.Errorf("first request sort = %+v, want title", req.Sort)
	}
	waitState(t, l, StateIdle)
}

func TestSnapshot(t *testing.T) {
	l := New(func(ctx context.Context, req LoadRequest) (LoadResult[entry], error) {
		return LoadResult[entry]{
			Items:  []entry{{id: "a"}, {id: "b"}},
			Cursor: "p2",
		}, nil
	}, WithInitialSort[entry](SortDescriptor{Column: "title"}))
	defer l.Close()

	l.Reload()
	waitState(t, l, StateIdle)
	l.Select("a")

	snap := l.Snapshot()
	assertKeys(t, snap.Items, "a", "b")
	if snap.State != StateIdle {
		t.Errorf("snapshot state = %v, want %v", snap.State, StateIdle)
	}
	if snap.Cursor != "p2" || !snap.HasMore {
		t.Errorf("snapshot cursor = %q hasMore=%v, want p2 true", snap.Cursor, snap.HasMore)
	}
	if snap.Sort == nil || snap.Sort.Column != "title" {
		t.Errorf("snapshot sort = %+v, want title", snap.Sort)
	}
	if len(snap.Selection) != 1 || snap.Selection[0] != "a" {
		t.Errorf("snapshot selection = %v, want [a]", snap.Selection)
	}

	// The snapshot is detached from later changes.
	l.Append(entry{id: "c"})
	if len(snap.Items) != 2 {
		t.Error("snapshot items changed after Append")
	}
}
