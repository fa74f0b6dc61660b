package parser

import (
	"fmt"

	"beleg/internal/diag"
	"beleg/internal/source"
)

// ParseErrorKind classifies a grammar mismatch.
type ParseErrorKind uint8

const (
	// UnexpectedToken — токен не подходит ни одной альтернативе.
	UnexpectedToken ParseErrorKind = iota
	// ExpectedToken — продукция требует конкретный токен, его нет.
	ExpectedToken
	// InvalidToken — лексер пометил байт как Invalid.
	InvalidToken
	// MissingSemicolon после конструкции нет ';'.
	MissingSemicolon
	// MissingParenthesis нет парной '(' или ')'.
	MissingParenthesis
	// MissingBrace нет парной '{' или '}'.
	MissingBrace
	// UnexpectedEof вход закончился посреди продукции.
	UnexpectedEof
	// InternalError — ошибка самого парсера, не входа.
	InternalError

	parseErrorKindCount
)

var parseErrorKindNames = [parseErrorKindCount]string{
	UnexpectedToken:    "UnexpectedToken",
	ExpectedToken:      "ExpectedToken",
	InvalidToken:       "InvalidToken",
	MissingSemicolon:   "MissingSemicolon",
	MissingParenthesis: "MissingParenthesis",
	MissingBrace:       "MissingBrace",
	UnexpectedEof:      "UnexpectedEof",
	InternalError:      "InternalError",
}

func (k ParseErrorKind) String() string {
	if k < parseErrorKindCount {
		return parseErrorKindNames[k]
	}
	return fmt.Sprintf("ParseErrorKind(%d)", uint8(k))
}

// code maps the kind onto the stable syntax-diagnostic numbering.
func (k ParseErrorKind) code() diag.Code {
	switch k {
	case UnexpectedToken:
		return diag.SynUnexpectedToken
	case ExpectedToken:
		return diag.SynExpectedToken
	case InvalidToken:
		return diag.SynInvalidToken
	case MissingSemicolon:
		return diag.SynMissingSemicolon
	case MissingParenthesis:
		return diag.SynMissingParenthesis
	case MissingBrace:
		return diag.SynMissingBrace
	case UnexpectedEof:
		return diag.SynUnexpectedEof
	default:
		return diag.SynInternalError
	}
}

// ParseError is a failed production: a message anchored at the global
// span where the grammar stopped matching. It implements error for
// call-site propagation and diag.Issue for rendering.
type ParseError struct {
	span    source.Span
	message string
	kind    ParseErrorKind
	level   diag.Level
}

// NewParseError builds an error-level ParseError.
func NewParseError(span source.Span, message string, kind ParseErrorKind) *ParseError {
	return &ParseError{span: span, message: message, kind: kind, level: diag.LevelError}
}

// WithLevel overrides the diagnostic level.
func (e *ParseError) WithLevel(level diag.Level) *ParseError {
	e.level = level
	return e
}

func (e *ParseError) Span() source.Span    { return e.span }
func (e *ParseError) Message() string      { return e.message }
func (e *ParseError) Level() diag.Level    { return e.level }
func (e *ParseError) Kind() ParseErrorKind { return e.kind }

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: %s at %s", e.kind, e.message, e.span)
}

// Emit renders the error as a single-label diagnostic: its own span is
// both the primary span and the label span.
func (e *ParseError) Emit(ctx *diag.Context) {
	ctx.Build(e.level, e.message, e.span).
		WithCode(e.kind.code()).
		SpanLabel(e.span, e.message).
		Emit()
}
