// Package diag carries structured diagnostics from compiler passes to
// output emitters.
//
// Passes build a Diag through a Context-bound builder; the Context
// enforces volume limits and fans the finished value out to every
// registered Emitter. Rendering lives elsewhere (internal/diagfmt for
// terminals), so the model here stays presentation-free. Contexts are
// plain values with their own counters, so tests construct as many
// independent ones as they need.
package diag

import (
	"beleg/internal/source"
)

// Label attaches a message to a source range inside a diagnostic.
type Label struct {
	Span  source.Span
	Text  string
	Level Level
	// SurroundingLines is the number of context lines to show around
	// the labelled range.
	SurroundingLines uint32
}

// Diag is one complete diagnostic.
type Diag struct {
	Level   Level
	Code    Code // CodeNone когда номера нет
	Message string
	Primary source.Span
	Labels  []Label
	Notes   []string
}

// Issue is anything that can render itself into the diagnostic system.
type Issue interface {
	Span() source.Span
	Message() string
	Level() Level
	// Emit builds and sends the diagnostic through the context.
	Emit(ctx *Context)
}
