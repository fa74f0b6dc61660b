package diagfmt

// Options configures terminal rendering of diagnostics.
type Options struct {
	// Color turns ANSI styling on.
	Color bool
	// Unicode selects box-drawing characters; ASCII otherwise.
	Unicode bool
	// Context is the surrounding-line count applied to labels that do
	// not carry their own.
	Context uint32
}

// DefaultOptions renders colored unicode output with one context line.
func DefaultOptions() Options {
	return Options{Color: true, Unicode: true, Context: 1}
}

// JSONOpts configures JSON output of diagnostics.
type JSONOpts struct {
	// IncludePositions resolves spans into line/col pairs.
	IncludePositions bool
	// Max обрезает вывод; 0 — без ограничения
	Max int
}
