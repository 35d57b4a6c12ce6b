// Package widgets contains Bubble Tea components bound to asynclist
// engines, plus the render primitives they draw with.
//
// Allowed here:
// - the interactive list component (cursor, selection, sort, filter keys)
// - stateless drawing helpers (column rows, bars, pane chrome)
//
// Not allowed here:
// - data loading or IO; widgets reach data only through an engine
// - application policy (routing, tabs, persistence)
package widgets
