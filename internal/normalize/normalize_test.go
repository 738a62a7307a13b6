package normalize_test

import (
	"strings"
	"testing"

	"github.com/univrs/metadol/internal/ast"
	"github.com/univrs/metadol/internal/normalize"
)

func TestBodyGlobalRules(t *testing.T) {
	tests := []struct {
		name string
		kind ast.Kind
		line string
		want string
	}{
		{"derive from", ast.KindGene, "derive from base", "derives from base"},
		{"derives from untouched", ast.KindGene, "derives from base", "derives from base"},
		{"require", ast.KindGene, "require docker", "requires docker"},
		{"require clause untouched", ast.KindGene, "require clause x", "require clause x"},
		{"requires untouched", ast.KindGene, "requires docker", "requires docker"},
		{
			"dequalify subject",
			ast.KindConstraint,
			"authentication.temporal matches duration", "temporal matches duration",
		},
		{"plain subject untouched", ast.KindConstraint, "temporal matches duration", "temporal matches duration"},
		{"dequalify has", ast.KindGene, "container.docker has image", "docker has image"},
		{"dequalify only before verb", ast.KindGene, "container.docker ports", "container.docker ports"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := normalize.Body(tt.kind, tt.line)
			if got != tt.want {
				t.Errorf("Body(%v, %q) = %q, want %q", tt.kind, tt.line, got, tt.want)
			}
		})
	}
}

func TestBodyTraitRules(t *testing.T) {
	tests := []struct {
		name string
		line string
		want string
	}{
		{"uses drops subject", "docker uses network", "uses network"},
		{"uses without subject untouched", "uses network", "uses network"},
		{"emits gets action", "emits started", "action emits started"},
		{"action emits untouched", "action emits started", "action emits started"},
		{"is gets behavior", "is stateless", "behavior is stateless"},
		{"behavior is untouched", "behavior is stateless", "behavior is stateless"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := normalize.Body(ast.KindTrait, tt.line)
			if got != tt.want {
				t.Errorf("Body(trait, %q) = %q, want %q", tt.line, got, tt.want)
			}
		})
	}
}

func TestBodyConstraintRules(t *testing.T) {
	tests := []struct {
		name string
		line string
		want string
	}{
		{"matches reorder", "matches duration max_30d", "duration matches max_30d"},
		{"matches with subject untouched", "duration matches max_30d", "duration matches max_30d"},
		{"never gets invariant", "never expires silently", "invariant never expires silently"},
		{"invariant never untouched", "invariant never expires silently", "invariant never expires silently"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := normalize.Body(ast.KindConstraint, tt.line)
			if got != tt.want {
				t.Errorf("Body(constraint, %q) = %q, want %q", tt.line, got, tt.want)
			}
		})
	}
}

func TestBodySystemRules(t *testing.T) {
	tests := []struct {
		name string
		line string
		want string
	}{
		// снятый префикс system попадает под канонический version floor
		{"system requires", "system requires docker", "requires docker >= 0.0.1"},
		{"all is", "all containers is ephemeral", "containers is ephemeral"},
		{"bare requires gets version floor", "requires docker", "requires docker >= 0.0.1"},
		{"requires with version untouched", "requires docker >= 1.2.0", "requires docker >= 1.2.0"},
		{"dotted requires gets version floor", "requires container.docker", "requires container.docker >= 0.0.1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := normalize.Body(ast.KindSystem, tt.line)
			if got != tt.want {
				t.Errorf("Body(system, %q) = %q, want %q", tt.line, got, tt.want)
			}
		})
	}
}

// system: 'system requires x' за один проход должен стать каноничным
// 'requires x >= 0.0.1' — правила в списке применяются по порядку.
func TestBodySystemRuleOrder(t *testing.T) {
	got := normalize.Body(ast.KindSystem, "system requires docker")
	if want := "requires docker >= 0.0.1"; got != want {
		t.Fatalf("Body = %q, want %q", got, want)
	}
}

func TestBodyPreservesIndentAndBlankLines(t *testing.T) {
	body := "\n  derive from base\n\n\ttrait.x has y\n"
	got := normalize.Body(ast.KindGene, body)
	want := "\n  derives from base\n\n\tx has y\n"
	if got != want {
		t.Fatalf("Body = %q, want %q", got, want)
	}
}

// Строки-комментарии проходят насквозь, даже если похожи на клаузы.
func TestBodySkipsCommentLines(t *testing.T) {
	body := "  // derive from base\n  derive from base"
	got := normalize.Body(ast.KindGene, body)
	want := "  // derive from base\n  derives from base"
	if got != want {
		t.Fatalf("Body = %q, want %q", got, want)
	}
}

// Нормализация никогда не меняет число строк.
func TestBodyPreservesLineCount(t *testing.T) {
	body := "derive from a\nrequire b\n\nnever c\nmatches x y\nall z is w\n"
	for _, kind := range ast.Kinds() {
		got := normalize.Body(kind, body)
		if strings.Count(got, "\n") != strings.Count(body, "\n") {
			t.Fatalf("kind %v changed line count: %q", kind, got)
		}
	}
}

// Нормализация идемпотентна: повторный проход ничего не меняет.
func TestBodyIdempotent(t *testing.T) {
	bodies := map[ast.Kind]string{
		ast.KindGene:       "derive from base\nrequire docker\ncontainer.docker has image",
		ast.KindTrait:      "docker uses network\nemits started\nis stateless",
		ast.KindConstraint: "matches duration max_30d\nnever expires",
		ast.KindSystem:     "system requires docker\nall containers is ephemeral\nrequires auth",
	}
	for kind, body := range bodies {
		once := normalize.Body(kind, body)
		twice := normalize.Body(kind, once)
		if once != twice {
			t.Fatalf("kind %v not idempotent:\nonce:  %q\ntwice: %q", kind, once, twice)
		}
	}
}
