package source

import (
	"fmt"
)

// Span is a half-open byte range [Start, End) in the global offset
// space of a SourceMap: all loaded files laid out back to back in load
// order. Zero-length spans are valid and mark insertion points.
type Span struct {
	Start uint32 // в байтах, включительно
	End   uint32 // в байтах, не включительно
}

// NewSpan builds a span from two global offsets.
func NewSpan(start, end uint32) Span {
	return Span{Start: start, End: end}
}

// IsValid reports whether Start <= End.
func (s Span) IsValid() bool {
	return s.Start <= s.End
}

// Len returns the number of bytes covered by the span.
func (s Span) Len() uint32 {
	return s.End - s.Start
}

// Empty reports whether the span covers no bytes.
func (s Span) Empty() bool {
	return s.Start == s.End
}

// Contains reports whether the global offset pos lies inside the span.
func (s Span) Contains(pos uint32) bool {
	return pos >= s.Start && pos < s.End
}

// WithOffset shifts both ends right by offset. Used to translate a span
// local to a sub-parse back into the outer document's coordinates.
func (s Span) WithOffset(offset uint32) Span {
	return Span{Start: s.Start + offset, End: s.End + offset}
}

func (s Span) String() string {
	return fmt.Sprintf("%d-%d", s.Start, s.End)
}
