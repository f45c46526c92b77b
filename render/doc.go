// Package render turns search results into plain-text output: a map
// with the route overlaid, a per-result metrics block, and a
// side-by-side algorithm comparison.
//
// It writes strings, not terminals: callers decide where the text goes.
// Rendering never mutates the grid it draws.
package render
