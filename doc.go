// Package asynclist manages the state of an asynchronously loaded,
// paginated collection: its items, pagination cursor, filter text, sort
// descriptor, selection, loading state, and last load error.
//
// A [List] is driven by a user-supplied [LoadFunc] that fetches one page of
// items from wherever they live (a database, an HTTP API, a file). The list
// never performs IO itself; it owns the lifecycle around the load function:
//
//   - Reload, Sort and SetFilterText each start a fresh fetch and cancel
//     whatever fetch was previously in flight. The canceled fetch's result
//     is discarded even if it arrives after cancellation took effect, so a
//     slow first page can never clobber a fast second filter.
//   - LoadMore fetches the next page using the opaque cursor returned by
//     the previous load, and appends. It is dropped silently while another
//     fetch is running or when no cursor remains.
//   - The abort signal is an ordinary [context.Context] passed to the load
//     function; implementations that respect their context get prompt
//     cancellation for free.
//
// Reads are served from memory and are safe for concurrent use. Previous
// items stay visible while a fetch is in flight and when a fetch fails;
// callers decide how to present the loading and error states.
//
// # Driving a terminal UI
//
// The engine is presentation-agnostic, but it was built to back terminal
// list views. The widgets subpackage binds a List to a Bubble Tea component
// with cursor movement, selection, sort cycling, filter-as-you-type, and
// infinite scrolling.
package asynclist
