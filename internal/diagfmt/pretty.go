// Package diagfmt renders diagnostics and token dumps for people and
// tools. The diagnostic model stays in internal/diag; everything about
// terminals (color, box drawing, column math) lives here.
package diagfmt

import (
	"cmp"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"
	"golang.org/x/text/unicode/norm"

	"beleg/internal/diag"
	"beleg/internal/source"
)

// Pretty renders diagnostics in a human-readable form:
//
//	[2003] Error: invalid token
//	   ╭─[ main.bl:2:5 ]
//	   │
//	 2 │ let ` = 1;
//	   │     ─ invalid token
//	   ╰───
//
// plus surrounding context lines and trailing notes.
func Pretty(w io.Writer, diags []diag.Diag, sm *source.SourceMap, opts Options) {
	p := newPrinter(w, sm, opts)
	for _, d := range diags {
		p.render(d)
	}
}

// TerminalEmitter renders diagnostics as the context emits them.
// It implements diag.Emitter.
type TerminalEmitter struct {
	p *printer
}

// NewTerminalEmitter builds an emitter that writes to w and resolves
// spans through sm.
func NewTerminalEmitter(w io.Writer, sm *source.SourceMap, opts Options) *TerminalEmitter {
	return &TerminalEmitter{p: newPrinter(w, sm, opts)}
}

func (e *TerminalEmitter) Emit(d diag.Diag) {
	e.p.render(d)
}

// printer держит writer, карту исходников и подготовленные стили
type printer struct {
	w    io.Writer
	sm   *source.SourceMap
	opts Options

	styles    [4]*color.Color
	bar       string // │
	underline string // ─
	insert    string // точка вставки для пустого span
}

func newPrinter(w io.Writer, sm *source.SourceMap, opts Options) *printer {
	p := &printer{
		w:    w,
		sm:   sm,
		opts: opts,
		styles: [4]*color.Color{
			diag.LevelNote:    color.New(color.FgHiBlue),
			diag.LevelWarning: color.New(color.FgHiYellow),
			diag.LevelError:   color.New(color.FgHiRed),
			diag.LevelFatal:   color.New(color.FgHiRed),
		},
	}
	for _, c := range p.styles {
		if opts.Color {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	if opts.Unicode {
		p.bar, p.underline, p.insert = "│", "─", "│"
	} else {
		p.bar, p.underline, p.insert = "|", "-", "|"
	}
	return p
}

func (p *printer) style(level diag.Level) *color.Color {
	if int(level) < len(p.styles) {
		return p.styles[level]
	}
	return p.styles[diag.LevelError]
}

func (p *printer) render(d diag.Diag) {
	p.renderHeader(d)

	if len(d.Labels) > 0 {
		labels := slices.Clone(d.Labels)
		slices.SortStableFunc(labels, func(a, b diag.Label) int {
			return cmp.Compare(a.Span.Start, b.Span.Start)
		})
		for i, label := range labels {
			p.renderLabel(label, i == 0)
		}
	}

	for _, note := range d.Notes {
		fmt.Fprintf(p.w, "%s: %s\n", p.style(diag.LevelNote).Sprint("note"), note)
	}
}

// renderHeader prints "[2003] Error: message", or без кода —
// "Error: message".
func (p *printer) renderHeader(d diag.Diag) {
	style := p.style(d.Level)
	if d.Code != diag.CodeNone {
		fmt.Fprintln(p.w, style.Sprintf("%s %s: %s", d.Code.ID(), d.Level, d.Message))
		return
	}
	fmt.Fprintln(p.w, style.Sprintf("%s: %s", d.Level, d.Message))
}

// renderLabel prints the source excerpt for one label. The first label
// in span order owns the file-location border.
func (p *printer) renderLabel(label diag.Label, isPrimary bool) {
	loc, ok := p.sm.LookupLocation(label.Span.Start)
	if !ok {
		return
	}
	file := p.sm.GetFile(loc.File)
	if file == nil {
		return
	}

	surrounding := label.SurroundingLines
	if surrounding == 0 {
		surrounding = p.opts.Context
	}

	startLine := uint32(1)
	if loc.Line > surrounding {
		startLine = loc.Line - surrounding
	}

	endLoc, endOK := p.sm.LookupLocation(label.Span.End)
	endLine := loc.Line
	if endOK {
		endLine = endLoc.Line
	}
	endLine += surrounding

	width := len(strconv.FormatUint(uint64(endLine), 10))
	spaces := strings.Repeat(" ", width)

	if isPrimary {
		if p.opts.Unicode {
			fmt.Fprintf(p.w, " %s ╭─[ %s ]\n", spaces, p.sm.FormatLocation(loc))
		} else {
			fmt.Fprintf(p.w, " %s +--[ %s ]\n", spaces, p.sm.FormatLocation(loc))
		}
		fmt.Fprintf(p.w, " %s %s\n", spaces, p.bar)
	}

	for line := startLine; line <= endLine; line++ {
		text, lineOK := file.GetLine(line)
		if !lineOK {
			continue
		}
		fmt.Fprintf(p.w, " %*d %s %s\n", width, line, p.bar, text)
		if line == loc.Line {
			p.renderUnderline(label, loc, endLoc, endOK, spaces, text)
		}
	}

	if isPrimary {
		if p.opts.Unicode {
			fmt.Fprintf(p.w, " %s ╰───\n", spaces)
		} else {
			fmt.Fprintf(p.w, " %s ---+\n", spaces)
		}
	}
}

// renderUnderline prints the marker row under the label's first line.
// Column math runs over display widths of the NFC-normalized text so
// wide runes keep the marker aligned.
func (p *printer) renderUnderline(label diag.Label, loc source.Location, endLoc source.Location, endOK bool, spaces, lineText string) {
	col := min(int(loc.Column), len(lineText))
	lead := displayWidth(lineText[:col])

	spanWidth := 1
	if endOK && endLoc.Line == loc.Line {
		if endCol := min(int(endLoc.Column), len(lineText)); endCol >= col {
			spanWidth = displayWidth(lineText[col:endCol])
		}
	}

	// Нулевая ширина — точка вставки
	marker := p.insert
	if spanWidth > 0 {
		marker = strings.Repeat(p.underline, spanWidth)
	}

	suffix := ""
	if label.Text != "" {
		suffix = " " + label.Text
	}

	fmt.Fprintf(p.w, " %s %s %s%s%s\n",
		spaces, p.bar,
		strings.Repeat(" ", lead),
		p.style(label.Level).Sprint(marker),
		suffix)
}

func displayWidth(s string) int {
	return runewidth.StringWidth(norm.NFC.String(s))
}
