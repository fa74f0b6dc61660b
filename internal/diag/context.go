package diag

import (
	"beleg/internal/source"
)

// Options управляют объёмом диагностик, принимаемых одним Context
type Options struct {
	// MaxErrors caps errors and fatals; past it further ones are dropped.
	MaxErrors uint32
	// MaxWarnings caps warnings the same way.
	MaxWarnings uint32
	// AbortOnFirstError makes ShouldAbort report true after the first
	// counted error; drivers poll it between work units.
	AbortOnFirstError bool
}

// DefaultOptions returns the standard volume limits.
func DefaultOptions() Options {
	return Options{
		MaxErrors:   100,
		MaxWarnings: 1000,
	}
}

// Emitter consumes finished diagnostics.
type Emitter interface {
	Emit(d Diag)
}

// Context routes diagnostics to emitters and enforces volume limits.
// Not safe for concurrent use; parallel pipelines give each worker its
// own Context and merge afterwards.
type Context struct {
	opts     Options
	emitters []Emitter

	errorCount   uint32
	warningCount uint32
}

// NewContext creates a context with the given options and no emitters.
func NewContext(opts Options) *Context {
	return &Context{opts: opts}
}

// AddEmitter registers another consumer of emitted diagnostics.
func (c *Context) AddEmitter(e Emitter) {
	c.emitters = append(c.emitters, e)
}

// Emit counts the diagnostic and fans it out, unless its level is over
// the volume limit.
func (c *Context) Emit(d Diag) {
	if !c.CanEmit(d.Level) {
		return
	}

	switch d.Level {
	case LevelError, LevelFatal:
		c.errorCount++
	case LevelWarning:
		c.warningCount++
	case LevelNote:
	}

	for _, e := range c.emitters {
		e.Emit(d)
	}
}

// CanEmit reports whether a diagnostic of the given level would still
// be accepted.
func (c *Context) CanEmit(level Level) bool {
	switch level {
	case LevelError, LevelFatal:
		return c.errorCount < c.opts.MaxErrors
	case LevelWarning:
		return c.warningCount < c.opts.MaxWarnings
	default:
		return true
	}
}

// ShouldAbort reports whether the driver is asked to stop after the
// errors seen so far.
func (c *Context) ShouldAbort() bool {
	return c.opts.AbortOnFirstError && c.errorCount > 0
}

// ErrorCount returns the number of counted errors and fatals.
func (c *Context) ErrorCount() uint32 { return c.errorCount }

// WarningCount returns the number of counted warnings.
func (c *Context) WarningCount() uint32 { return c.warningCount }

// Build starts a diagnostic bound to this context.
func (c *Context) Build(level Level, message string, primary source.Span) *Builder {
	return &Builder{
		ctx: c,
		diag: Diag{
			Level:   level,
			Message: message,
			Primary: primary,
		},
	}
}
