// Package commands defines the bookbrowser CLI and wires dependencies for subcommands.
//
// Commands
//
//   - (root)  Browse the catalog interactively
//   - seed    Replace the catalog with generated sample books
//
// # Implementation
//
// The root command loads configuration, applies migrations and opens the
// database before any subcommand runs, so handlers share one repository
// over a single sqlite connection.
package commands
