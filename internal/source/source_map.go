package source

import (
	"fmt"
	"os"
	"strings"

	"fortio.org/safecast"
)

// SourceMap owns an ordered collection of source files glued into one
// global byte-offset space: file i+1 starts exactly where file i ends.
// Once a file is added its FileID and StartPos never change, so a built
// map may be shared read-only across concurrent parsers.
type SourceMap struct {
	files        []*SourceFile
	fileIDs      map[string]FileID
	nextStartPos uint32
}

// NewSourceMap creates an empty map.
func NewSourceMap() *SourceMap {
	return &SourceMap{
		fileIDs: make(map[string]FileID),
	}
}

// AddFile appends a file to the global space and returns its FileID.
// Adding a name that is already present is idempotent: the existing ID
// comes back and neither storage nor the global layout changes.
func (sm *SourceMap) AddFile(name string, content []byte) FileID {
	if id, ok := sm.fileIDs[name]; ok {
		return id
	}

	lenFiles, err := safecast.Conv[uint32](len(sm.files))
	if err != nil {
		panic(fmt.Errorf("file count overflow: %w", err))
	}
	id := FileID(lenFiles)
	file := NewSourceFile(name, content, sm.nextStartPos)
	sm.files = append(sm.files, file)
	sm.fileIDs[name] = id
	sm.nextStartPos += file.Size()
	return id
}

// LoadFile reads a file from disk and adds it under its path. Loading a
// path that is already present returns the existing ID without touching
// the filesystem state of the map.
func (sm *SourceMap) LoadFile(path string) (FileID, error) {
	if id, ok := sm.fileIDs[path]; ok {
		return id, nil
	}
	// #nosec G304 -- path is provided by the caller
	content, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("load %s: %w", path, err)
	}
	return sm.AddFile(path, content), nil
}

// GetFile returns the file for the given ID, or nil when out of range.
func (sm *SourceMap) GetFile(id FileID) *SourceFile {
	if int(id) >= len(sm.files) {
		return nil
	}
	return sm.files[id]
}

// GetFileID returns the ID registered for name.
func (sm *SourceMap) GetFileID(name string) (FileID, bool) {
	id, ok := sm.fileIDs[name]
	return id, ok
}

// Files returns the files in load order.
func (sm *SourceMap) Files() []*SourceFile {
	return sm.files
}

// NextStartPos returns the global offset the next added file would get.
func (sm *SourceMap) NextStartPos() uint32 {
	return sm.nextStartPos
}

// LookupLocation resolves a global byte offset into a file-local
// Location. An offset equal to a file's exclusive end belongs to the
// next file; at the very last file it stands for EOF and clamps to the
// file's final byte.
func (sm *SourceMap) LookupLocation(globalPos uint32) (Location, bool) {
	for i, file := range sm.files {
		if file.Contains(globalPos) {
			return file.BytePosToLocation(globalPos-file.StartPos, FileID(i)), true
		}
	}
	// Позиция сразу за последним файлом — это EOF последнего файла.
	if n := len(sm.files); n > 0 && globalPos == sm.files[n-1].End() {
		last := sm.files[n-1]
		return last.BytePosToLocation(globalPos-last.StartPos, FileID(n-1)), true
	}
	return Location{}, false
}

// LookupBytePos converts a Location back into a global byte offset.
func (sm *SourceMap) LookupBytePos(loc Location) (uint32, bool) {
	file := sm.GetFile(loc.File)
	if file == nil {
		return 0, false
	}
	localPos, ok := file.LocationToBytePos(loc.Line, loc.Column)
	if !ok {
		return 0, false
	}
	return file.StartPos + localPos, true
}

// GetSpanText reconstructs the text behind a global span, stitching
// pieces together when the span straddles file boundaries. It reports
// false unless every covered byte is backed by a loaded file.
func (sm *SourceMap) GetSpanText(span Span) (string, bool) {
	if !span.IsValid() {
		return "", false
	}

	var out strings.Builder
	coveredEnd := span.Start
	for _, file := range sm.files {
		fileEnd := file.End()
		if coveredEnd >= fileEnd || span.End <= file.StartPos || coveredEnd < file.StartPos {
			continue
		}
		localStart := coveredEnd - file.StartPos
		localEnd := min(span.End, fileEnd) - file.StartPos

		text, ok := file.SpanText(Span{Start: localStart, End: localEnd})
		if !ok {
			return "", false
		}
		out.WriteString(text)
		coveredEnd = file.StartPos + localEnd
	}

	if coveredEnd < span.End {
		return "", false
	}
	return out.String(), true
}

// GetLineAtLocation returns the full source line behind a Location.
func (sm *SourceMap) GetLineAtLocation(loc Location) (string, bool) {
	file := sm.GetFile(loc.File)
	if file == nil {
		return "", false
	}
	return file.GetLine(loc.Line)
}

// MakeSpan builds a global span from two line/column positions inside
// one file. The zero span comes back when either position is invalid.
func (sm *SourceMap) MakeSpan(id FileID, startLine, startCol, endLine, endCol uint32) Span {
	file := sm.GetFile(id)
	if file == nil {
		return Span{}
	}
	start, okStart := file.LocationToBytePos(startLine, startCol)
	end, okEnd := file.LocationToBytePos(endLine, endCol)
	if !okStart || !okEnd {
		return Span{}
	}
	return Span{Start: file.StartPos + start, End: file.StartPos + end}
}

// FormatLocation renders "file:line:col" with the column shown 1-based.
func (sm *SourceMap) FormatLocation(loc Location) string {
	file := sm.GetFile(loc.File)
	if file == nil {
		return "<unknown>"
	}
	return fmt.Sprintf("%s:%d:%d", file.Name, loc.Line, loc.Column+1)
}

// FormatSpan renders "file:line:colA-colB" when the span stays on one
// line and "fileA:lineA:colA-fileB:lineB:colB" otherwise. Columns are
// shown 1-based; the end column names the last covered byte. A
// zero-length span is an insertion point and renders as the single
// "file:line:col" position.
func (sm *SourceMap) FormatSpan(span Span) (string, bool) {
	if span.Start == span.End {
		loc, ok := sm.LookupLocation(span.Start)
		if !ok {
			return "", false
		}
		return sm.FormatLocation(loc), true
	}

	startLoc, okStart := sm.LookupLocation(span.Start)
	endLoc, okEnd := sm.LookupLocation(span.End - 1) // end не включается
	if !okStart || !okEnd {
		return "", false
	}

	if startLoc.File == endLoc.File && startLoc.Line == endLoc.Line {
		file := sm.GetFile(startLoc.File)
		if file == nil {
			return "", false
		}
		return fmt.Sprintf("%s:%d:%d-%d",
			file.Name, startLoc.Line, startLoc.Column+1, endLoc.Column+1), true
	}
	return sm.FormatLocation(startLoc) + "-" + sm.FormatLocation(endLoc), true
}
