package asynclist

import "context"

// Option configures a [List] at construction time.
type Option[T Item] func(*config[T])

type config[T Item] struct {
	ctx        context.Context
	sortFn     SortFunc[T]
	filterText string
	sortDesc   *SortDescriptor
	selection  []string
	onChange   func(Event)
}

func defaultConfig[T Item]() config[T] {
	return config[T]{ctx: context.Background()}
}

// WithContext sets the base context for all fetches. Canceling it aborts
// any in-flight fetch and causes subsequent fetches to fail immediately.
// The default is context.Background.
func WithContext[T Item](ctx context.Context) Option[T] {
	return func(c *config[T]) {
		if ctx != nil {
			c.ctx = ctx
		}
	}
}

// WithSortFunc makes [List.Sort] reorder the loaded items in memory with fn
// instead of refetching. Use it when the data source returns the complete
// collection up front.
func WithSortFunc[T Item](fn SortFunc[T]) Option[T] {
	return func(c *config[T]) {
		c.sortFn = fn
	}
}

// WithInitialFilterText sets the filter text in effect before the first
// fetch.
func WithInitialFilterText[T Item](text string) Option[T] {
	return func(c *config[T]) {
		c.filterText = text
	}
}

// WithInitialSort sets the sort descriptor in effect before the first
// fetch.
func WithInitialSort[T Item](d SortDescriptor) Option[T] {
	return func(c *config[T]) {
		desc := d
		c.sortDesc = &desc
	}
}

// WithInitialSelection pre-selects the given keys. The keys need not refer
// to loaded items; selection is carried independently of the item slice.
func WithInitialSelection[T Item](keys ...string) Option[T] {
	return func(c *config[T]) {
		c.selection = append(c.selection, keys...)
	}
}

// WithOnChange registers a hook invoked after every committed state
// transition, outside the list's lock, on the goroutine that caused the
// transition. The hook must not block for long; it is on the fetch path.
func WithOnChange[T Item](fn func(Event)) Option[T] {
	return func(c *config[T]) {
		c.onChange = fn
	}
}
