package diagfmt

import (
	"encoding/json"
	"io"

	"beleg/internal/diag"
	"beleg/internal/source"
)

// LocationJSON is a resolved source range for JSON output.
type LocationJSON struct {
	File      string `json:"file"`
	StartByte uint32 `json:"start_byte"`
	EndByte   uint32 `json:"end_byte"`
	StartLine uint32 `json:"start_line,omitempty"`
	StartCol  uint32 `json:"start_col,omitempty"`
	EndLine   uint32 `json:"end_line,omitempty"`
	EndCol    uint32 `json:"end_col,omitempty"`
}

// LabelJSON is one labelled range of a diagnostic.
type LabelJSON struct {
	Message  string       `json:"message"`
	Level    string       `json:"level"`
	Location LocationJSON `json:"location"`
}

// DiagnosticJSON is one diagnostic in JSON form.
type DiagnosticJSON struct {
	Level    string       `json:"level"`
	Code     uint32       `json:"code,omitempty"`
	Message  string       `json:"message"`
	Location LocationJSON `json:"location"`
	Labels   []LabelJSON  `json:"labels,omitempty"`
	Notes    []string     `json:"notes,omitempty"`
}

// DiagnosticsOutput is the root of the JSON document.
type DiagnosticsOutput struct {
	Diagnostics []DiagnosticJSON `json:"diagnostics"`
	Count       int              `json:"count"`
}

// makeLocation resolves a global span against the map. Column values
// are shown 1-based, как в FormatLocation.
func makeLocation(span source.Span, sm *source.SourceMap, includePositions bool) LocationJSON {
	loc := LocationJSON{
		StartByte: span.Start,
		EndByte:   span.End,
	}

	start, ok := sm.LookupLocation(span.Start)
	if !ok {
		return loc
	}
	if file := sm.GetFile(start.File); file != nil {
		loc.File = file.Name
	}

	if includePositions {
		loc.StartLine = start.Line
		loc.StartCol = start.Column + 1
		if end, endOK := sm.LookupLocation(span.End); endOK {
			loc.EndLine = end.Line
			loc.EndCol = end.Column + 1
		}
	}
	return loc
}

// BuildDiagnosticsOutput формирует структуру JSON-вывода без сериализации.
func BuildDiagnosticsOutput(diags []diag.Diag, sm *source.SourceMap, opts JSONOpts) DiagnosticsOutput {
	maxItems := len(diags)
	if opts.Max > 0 && opts.Max < maxItems {
		maxItems = opts.Max
	}

	out := make([]DiagnosticJSON, 0, maxItems)
	for _, d := range diags[:maxItems] {
		dj := DiagnosticJSON{
			Level:    d.Level.String(),
			Code:     uint32(d.Code),
			Message:  d.Message,
			Location: makeLocation(d.Primary, sm, opts.IncludePositions),
			Notes:    d.Notes,
		}
		for _, label := range d.Labels {
			dj.Labels = append(dj.Labels, LabelJSON{
				Message:  label.Text,
				Level:    label.Level.String(),
				Location: makeLocation(label.Span, sm, opts.IncludePositions),
			})
		}
		out = append(out, dj)
	}

	return DiagnosticsOutput{Diagnostics: out, Count: len(out)}
}

// JSON renders diagnostics as an indented JSON document.
func JSON(w io.Writer, diags []diag.Diag, sm *source.SourceMap, opts JSONOpts) error {
	output := BuildDiagnosticsOutput(diags, sm, opts)

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}
