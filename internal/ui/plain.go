package ui

import (
	"fmt"
	"io"
	"path"

	"github.com/fatih/color"

	"github.com/univrs/metadol/internal/driver"
)

// PlainPrinter печатает ход разрезания построчно — для пайпов, CI и
// --quiet-совместимого вывода. Формат повторяет исторический консольный
// отчёт: путь каждого созданного файла, счётчик на модуль и общий итог.
type PlainPrinter struct {
	W     io.Writer
	Color bool
	// Quiet подавляет пер-файловые строки, оставляя только счётчики.
	Quiet bool
}

func (p *PlainPrinter) module(name string) string {
	if p.Color {
		return color.New(color.FgCyan, color.Bold).Sprint(name)
	}
	return name
}

// Report печатает итог одного модуля.
func (p *PlainPrinter) Report(r driver.ModuleResult) {
	switch {
	case r.Missing:
		return // отсутствующий модуль молча пропускается
	case r.Err != nil:
		fmt.Fprintf(p.W, "\nSplitting %s.dol: failed: %v\n", p.module(r.Module), r.Err)
		return
	}

	label := ""
	if r.Cached {
		label = " (cached)"
	}
	fmt.Fprintf(p.W, "\nSplitting %s.dol:%s\n", p.module(r.Module), label)
	if !p.Quiet {
		for _, rel := range r.Created {
			fmt.Fprintf(p.W, "  Created: %s\n", path.Join(r.Module, rel))
		}
	}
	fmt.Fprintf(p.W, "  Split into %d files\n", r.Count())
}

// Total печатает общий итог по всем модулям.
func (p *PlainPrinter) Total(count int) {
	fmt.Fprintf(p.W, "\nTotal: %d individual .dol files created\n", count)
}
