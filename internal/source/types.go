package source

// FileID uniquely identifies a source file within a SourceMap.
// IDs are dense indices assigned in load order and are never reused
// while the map is alive.
type FileID uint32

// Location is a human-readable position in a source file.
// Line is 1-based; Column is a 0-based byte offset within the line.
// Locations never store byte offsets directly — они всегда выводятся
// из таблицы начал строк файла.
type Location struct {
	File   FileID
	Line   uint32
	Column uint32
}
