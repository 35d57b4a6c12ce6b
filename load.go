package asynclist

import "context"

// LoadFunc fetches one page of items. The context is the abort signal: it
// is canceled when the fetch is superseded by a newer operation or when the
// list is closed. Implementations should pass ctx through to whatever IO
// they perform and return promptly once it is canceled.
type LoadFunc[T Item] func(ctx context.Context, req LoadRequest) (LoadResult[T], error)

// SortFunc reorders items in memory. When configured via [WithSortFunc],
// [List.Sort] calls it instead of refetching. It receives a copy of the
// loaded items and must return the full reordered slice.
type SortFunc[T Item] func(ctx context.Context, items []T, d SortDescriptor) ([]T, error)

// LoadRequest carries everything a [LoadFunc] needs to fetch a page.
type LoadRequest struct {
	// Cursor is the opaque pagination token returned by the previous
	// load. It is empty on a fresh load (reload, sort, filter).
	Cursor string

	// FilterText is the current filter text, typically forwarded to a
	// server-side search parameter.
	FilterText string

	// Sort is the current sort descriptor, or nil when unsorted.
	Sort *SortDescriptor

	// Reason names the operation that started this fetch.
	Reason Reason
}

// LoadResult is what a [LoadFunc] hands back on success.
type LoadResult[T Item] struct {
	// Items is the fetched page.
	Items []T

	// Cursor is the token to request the next page with. Empty means the
	// collection is exhausted and LoadMore becomes a no-op.
	Cursor string

	// Sort optionally overrides the effective sort descriptor, for data
	// sources that report the order they actually applied.
	Sort *SortDescriptor

	// Selection optionally carries keys to select. A fresh load replaces
	// the selection with these keys; a LoadMore unions them in. Nil
	// leaves the selection untouched.
	Selection []string
}
