package diagfmt_test

import (
	"strings"
	"testing"

	"github.com/univrs/metadol/internal/diag"
	"github.com/univrs/metadol/internal/diagfmt"
	"github.com/univrs/metadol/internal/source"
)

func TestPretty(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("mod.dol", []byte("gene broken {\n  has image\n"))

	bag := diag.NewBag(10)
	bag.Add(diag.Diagnostic{
		Severity: diag.SevError,
		Code:     diag.SynUnterminatedBlock,
		Message:  "'{' has no matching '}'",
		Primary:  source.Span{File: id, Start: 12, End: 13},
	})

	var b strings.Builder
	diagfmt.Pretty(&b, bag, fs, diagfmt.PrettyOpts{})

	got := b.String()
	if !strings.Contains(got, "mod.dol:1:13: ERROR SYN2001: '{' has no matching '}'") {
		t.Fatalf("missing header line:\n%s", got)
	}
	// контекст: строка исходника и подчёркивание под колонкой
	if !strings.Contains(got, "  gene broken {") {
		t.Fatalf("missing context line:\n%s", got)
	}
	if !strings.Contains(got, "\n              ^\n") {
		t.Fatalf("missing caret underline:\n%s", got)
	}
}

// Диагностики уровня модуля (пропуск, кеш, I/O) не привязаны к файлу:
// печатается только заголовок без позиции и контекста.
func TestPrettyPositionless(t *testing.T) {
	bag := diag.NewBag(10)
	bag.Add(diag.Diagnostic{
		Severity: diag.SevError,
		Code:     diag.IOLoadFileError,
		Message:  "failed to load auth.dol: permission denied",
	})

	var b strings.Builder
	diagfmt.Pretty(&b, bag, source.NewFileSet(), diagfmt.PrettyOpts{})

	got := b.String()
	if got != "ERROR IO4001: failed to load auth.dol: permission denied\n" {
		t.Fatalf("positionless output = %q", got)
	}
}

func TestPrettyNotes(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("mod.dol", []byte("gene dup {x}\ngene dup {y}\n"))

	bag := diag.NewBag(10)
	bag.Add(diag.Diagnostic{
		Severity: diag.SevError,
		Code:     diag.OntDuplicateDecl,
		Message:  `duplicate declaration "dup"`,
		Primary:  source.Span{File: id, Start: 13, End: 25},
		Notes: []diag.Note{
			{Span: source.Span{File: id, Start: 0, End: 12}, Msg: `previous declaration of "dup"`},
		},
	})

	var b strings.Builder
	diagfmt.Pretty(&b, bag, fs, diagfmt.PrettyOpts{})

	got := b.String()
	if !strings.Contains(got, "ONT3001") {
		t.Fatalf("missing code:\n%s", got)
	}
	if !strings.Contains(got, "previous declaration") {
		t.Fatalf("missing note:\n%s", got)
	}
}
