// Package diagfmt renders diagnostics and token dumps for the CLI.
package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/univrs/metadol/internal/diag"
	"github.com/univrs/metadol/internal/source"
)

// PrettyOpts настраивает человекочитаемый вывод диагностик.
type PrettyOpts struct {
	Color bool
}

// Pretty форматирует диагностики в человекочитаемый вид.
// Идёт по bag.Items() (ожидается bag.Sort() заранее).
// Для каждого diag печатает:
// <path>:<line>:<col>: <SEV> <CODE>: <Message>
// затем контекст строки с подчёркиванием ^~~~ по Span, затем Notes.
func Pretty(w io.Writer, bag *diag.Bag, fileSet *source.FileSet, opts PrettyOpts) {
	for _, d := range bag.Items() {
		writeHeader(w, fileSet, d.Severity, d.Code, d.Primary, d.Message, opts)
		writeContext(w, fileSet, d.Primary)
		for _, note := range d.Notes {
			writeHeader(w, fileSet, diag.SevInfo, diag.SynInfo, note.Span, note.Msg, opts)
			writeContext(w, fileSet, note.Span)
		}
	}
}

func writeHeader(w io.Writer, fileSet *source.FileSet, sev diag.Severity, code diag.Code, sp source.Span, msg string, opts PrettyOpts) {
	sevText := sev.String()
	if opts.Color {
		sevText = severityColor(sev).Sprint(sevText)
	}
	// диагностики уровня модуля (пропуск, кеш, I/O) идут с пустым span
	if sp == (source.Span{}) || int(sp.File) >= fileSet.Len() {
		fmt.Fprintf(w, "%s %s: %s\n", sevText, code.ID(), msg)
		return
	}
	f := fileSet.Get(sp.File)
	start, _ := fileSet.Resolve(sp)
	fmt.Fprintf(w, "%s:%d:%d: %s %s: %s\n", f.Path, start.Line, start.Col, sevText, code.ID(), msg)
}

// writeContext печатает строку исходника и подчёркивание ^~~~ по span.
func writeContext(w io.Writer, fileSet *source.FileSet, sp source.Span) {
	if sp == (source.Span{}) || int(sp.File) >= fileSet.Len() {
		return
	}
	f := fileSet.Get(sp.File)
	start, end := fileSet.Resolve(sp)
	line := f.GetLine(start.Line)
	if line == "" {
		return
	}

	fmt.Fprintf(w, "  %s\n", line)

	width := uint32(1)
	if end.Line == start.Line && end.Col > start.Col {
		width = end.Col - start.Col
	}
	pad := strings.Repeat(" ", int(start.Col-1))
	marker := "^"
	if width > 1 {
		marker += strings.Repeat("~", int(width-1))
	}
	fmt.Fprintf(w, "  %s%s\n", pad, marker)
}

func severityColor(sev diag.Severity) *color.Color {
	switch sev {
	case diag.SevError:
		return color.New(color.FgRed, color.Bold)
	case diag.SevWarning:
		return color.New(color.FgYellow, color.Bold)
	default:
		return color.New(color.FgCyan)
	}
}
