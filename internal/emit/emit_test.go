package emit_test

import (
	"strings"
	"testing"

	"github.com/univrs/metadol/internal/ast"
	"github.com/univrs/metadol/internal/emit"
)

func TestSanitizeExegesis(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"no braces", "plain documentation", "plain documentation"},
		{"placeholder", "does {name} things", "does <name> things"},
		{"two placeholders", "{a} and {b}", "<a> and <b>"},
		{"lone open brace", "code { sample", "code ( sample"},
		{"lone close brace", "sample } code", "sample ) code"},
		{"braces with spaces inside", "{not a placeholder}", "(not a placeholder)"},
		{"mixed", "use {var} in { blocks }", "use <var> in ( blocks )"},
		{"already sanitized", "does <name> (things)", "does <name> (things)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := emit.SanitizeExegesis(tt.input)
			if got != tt.want {
				t.Errorf("SanitizeExegesis(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

// Санитизация идемпотентна: в результате нет фигурных скобок.
func TestSanitizeExegesisIdempotent(t *testing.T) {
	inputs := []string{"does {name} things", "a { b } c", "{x}{y}"}
	for _, input := range inputs {
		once := emit.SanitizeExegesis(input)
		if strings.ContainsAny(once, "{}") {
			t.Fatalf("braces survived sanitization: %q", once)
		}
		if twice := emit.SanitizeExegesis(once); twice != once {
			t.Fatalf("not idempotent: %q -> %q", once, twice)
		}
	}
}

func TestDeriveFilename(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"docker", "docker"},
		{"auth system", "auth_system"},
		{"container.docker", "container_docker"},
		{"service@v2", "service_v2"},
		{"a>b", "a_b"},
		{"container.docker service@v2 a>b", "container_docker_service_v2_a_b"},
	}
	for _, tt := range tests {
		if got := emit.DeriveFilename(tt.name); got != tt.want {
			t.Errorf("DeriveFilename(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestRelPath(t *testing.T) {
	tests := []struct {
		kind ast.Kind
		want string
	}{
		{ast.KindGene, "genes/docker.dol"},
		{ast.KindTrait, "traits/docker.dol"},
		{ast.KindConstraint, "constraints/docker.dol"},
		{ast.KindSystem, "systems/docker.dol"},
	}
	for _, tt := range tests {
		if got := emit.RelPath(tt.kind, "docker"); got != tt.want {
			t.Errorf("RelPath(%v) = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestRender(t *testing.T) {
	got := string(emit.Render(ast.KindGene, "docker", "\n  has image\n", ""))
	want := "gene docker {\n  has image\n}\n\nexegesis {}\n"
	if got != want {
		t.Fatalf("Render = %q, want %q", got, want)
	}
}

func TestRenderWithExegesis(t *testing.T) {
	got := string(emit.Render(ast.KindTrait, "fast", "x", "\ndoc\n"))
	want := "trait fast {x}\n\nexegesis {\ndoc\n}\n"
	if got != want {
		t.Fatalf("Render = %q, want %q", got, want)
	}
}

func TestEmitRecordsKindAndPath(t *testing.T) {
	sink := emit.NewMemSink()
	decl := ast.Decl{Kind: ast.KindSystem, Name: "auth system", Body: "b", Exegesis: "e"}

	relPath, err := emit.Emit(sink, decl)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := "systems/auth_system.dol"; relPath != want {
		t.Fatalf("relPath = %q, want %q", relPath, want)
	}
	if len(sink.Paths) != 1 || sink.Paths[0] != relPath {
		t.Fatalf("sink.Paths = %v", sink.Paths)
	}
	if len(sink.Kinds) != 1 || sink.Kinds[0] != ast.KindSystem {
		t.Fatalf("sink.Kinds = %v", sink.Kinds)
	}
	if want := "system auth system {b}\n\nexegesis {e}\n"; string(sink.Files[relPath]) != want {
		t.Fatalf("content = %q, want %q", sink.Files[relPath], want)
	}
}
