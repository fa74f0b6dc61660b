package diag

import (
	"beleg/internal/source"
)

// Builder accumulates diagnostic details before emitting them through
// its Context.
type Builder struct {
	ctx  *Context
	diag Diag
}

// WithCode attaches a diagnostic code.
func (b *Builder) WithCode(code Code) *Builder {
	b.diag.Code = code
	return b
}

// Label attaches a labelled range at an explicit level.
func (b *Builder) Label(span source.Span, text string, level Level) *Builder {
	b.diag.Labels = append(b.diag.Labels, Label{
		Span:             span,
		Text:             text,
		Level:            level,
		SurroundingLines: 1,
	})
	return b
}

// SpanLabel attaches a labelled range at the diagnostic's own level.
func (b *Builder) SpanLabel(span source.Span, text string) *Builder {
	return b.Label(span, text, b.diag.Level)
}

// Note appends a free-form note rendered after the source excerpt.
func (b *Builder) Note(text string) *Builder {
	b.diag.Notes = append(b.diag.Notes, text)
	return b
}

// Emit hands the finished diagnostic to the context.
func (b *Builder) Emit() {
	if b.ctx != nil {
		b.ctx.Emit(b.diag)
	}
}

// Diag returns the accumulated value without emitting it.
func (b *Builder) Diag() Diag {
	return b.diag
}
