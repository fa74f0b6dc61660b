package source

import (
	"fmt"
	"sort"

	"fortio.org/safecast"
)

// SourceFile owns the name, content and line index of a single loaded
// file, plus its StartPos in the global offset space of the owning map.
// The line index is built once at construction and never changes.
type SourceFile struct {
	Name       string
	Content    []byte
	StartPos   uint32
	lineStarts []uint32 // смещение первого байта каждой строки; [0] == 0 всегда
}

// NewSourceFile scans content once and records the byte offset of every
// line start. Line 1 always starts at byte 0, even for empty content.
func NewSourceFile(name string, content []byte, startPos uint32) *SourceFile {
	file := &SourceFile{
		Name:     name,
		Content:  content,
		StartPos: startPos,
	}
	file.lineStarts = append(file.lineStarts, 0)
	for i, b := range content {
		if b == '\n' {
			off, err := safecast.Conv[uint32](i + 1)
			if err != nil {
				panic(fmt.Errorf("line start overflow: %w", err))
			}
			file.lineStarts = append(file.lineStarts, off)
		}
	}
	return file
}

// Size returns the content length in bytes.
func (f *SourceFile) Size() uint32 {
	size, err := safecast.Conv[uint32](len(f.Content))
	if err != nil {
		panic(fmt.Errorf("content length overflow: %w", err))
	}
	return size
}

// End returns the exclusive global end offset of the file.
func (f *SourceFile) End() uint32 {
	return f.StartPos + f.Size()
}

// LineCount returns the number of lines, which is always at least 1.
func (f *SourceFile) LineCount() uint32 {
	count, err := safecast.Conv[uint32](len(f.lineStarts))
	if err != nil {
		panic(fmt.Errorf("line count overflow: %w", err))
	}
	return count
}

// BytePosToLocation converts a file-local byte offset into a Location.
// Positions at or past the end of content clamp to the final byte of
// the file, so EOF diagnostics still land somewhere printable.
func (f *SourceFile) BytePosToLocation(bytePos uint32, id FileID) Location {
	size := f.Size()
	if bytePos >= size {
		lastLine := f.LineCount()
		lastStart := f.lineStarts[lastLine-1]
		return Location{File: id, Line: lastLine, Column: size - lastStart}
	}

	// бинпоиск: наибольшее начало строки <= bytePos
	idx := sort.Search(len(f.lineStarts), func(i int) bool {
		return f.lineStarts[i] > bytePos
	}) - 1

	line, err := safecast.Conv[uint32](idx + 1)
	if err != nil {
		panic(fmt.Errorf("line number overflow: %w", err))
	}
	return Location{File: id, Line: line, Column: bytePos - f.lineStarts[idx]}
}

// LocationToBytePos converts a 1-based line and 0-based column back into
// a file-local byte offset. It reports false when line is out of range
// or the column crosses the start of the next line (or content end for
// the last line).
func (f *SourceFile) LocationToBytePos(line, column uint32) (uint32, bool) {
	lineCount := f.LineCount()
	if line == 0 || line > lineCount {
		return 0, false
	}

	bytePos := f.lineStarts[line-1] + column
	if line < lineCount {
		if bytePos > f.lineStarts[line] {
			return 0, false
		}
	} else if bytePos > f.Size() {
		return 0, false
	}
	return bytePos, true
}

// GetLine returns the text of the 1-based line without its trailing
// newline. It reports false for out-of-range line numbers.
func (f *SourceFile) GetLine(line uint32) (string, bool) {
	lineCount := f.LineCount()
	if line == 0 || line > lineCount {
		return "", false
	}

	start := f.lineStarts[line-1]
	var end uint32
	if line < lineCount {
		end = f.lineStarts[line] - 1 // не включаем \n
	} else {
		end = f.Size()
	}
	return string(f.Content[start:end]), true
}

// SpanText returns the content slice covered by a file-local span.
func (f *SourceFile) SpanText(span Span) (string, bool) {
	if !span.IsValid() || span.End > f.Size() {
		return "", false
	}
	return string(f.Content[span.Start:span.End]), true
}

// Contains reports whether the global offset falls inside this file's
// half-open global range.
func (f *SourceFile) Contains(globalPos uint32) bool {
	return globalPos >= f.StartPos && globalPos < f.End()
}
