package diag

// Level defines the importance of a diagnostic.
type Level uint8

const (
	// LevelNote is for informational diagnostics; never counted
	// against volume limits.
	LevelNote Level = iota
	// LevelWarning is for warning diagnostics.
	LevelWarning
	// LevelError is for recoverable error diagnostics.
	LevelError
	// LevelFatal is for errors the pipeline cannot continue past.
	// Counted together with errors.
	LevelFatal
)

func (l Level) String() string {
	switch l {
	case LevelNote:
		return "Note"
	case LevelWarning:
		return "Warning"
	case LevelError:
		return "Error"
	case LevelFatal:
		return "Fatal"
	}
	return "Unknown"
}
