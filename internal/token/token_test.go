package token_test

import (
	"testing"

	"github.com/univrs/metadol/internal/token"
)

func TestLookupKeyword(t *testing.T) {
	tests := []struct {
		ident string
		want  token.Kind
		ok    bool
	}{
		{"gene", token.KwGene, true},
		{"trait", token.KwTrait, true},
		{"constraint", token.KwConstraint, true},
		{"system", token.KwSystem, true},
		{"exegesis", token.KwExegesis, true},
		// регистрозависимость: только lowercase
		{"Gene", token.Invalid, false},
		{"GENE", token.Invalid, false},
		{"genes", token.Invalid, false},
		{"", token.Invalid, false},
	}
	for _, tt := range tests {
		got, ok := token.LookupKeyword(tt.ident)
		if ok != tt.ok {
			t.Errorf("LookupKeyword(%q) ok = %v, want %v", tt.ident, ok, tt.ok)
		}
		if ok && got != tt.want {
			t.Errorf("LookupKeyword(%q) = %v, want %v", tt.ident, got, tt.want)
		}
	}
}

func TestIsDeclKeyword(t *testing.T) {
	declKinds := []token.Kind{token.KwGene, token.KwTrait, token.KwConstraint, token.KwSystem}
	for _, k := range declKinds {
		if !(token.Token{Kind: k}).IsDeclKeyword() {
			t.Errorf("%v must be a declaration keyword", k)
		}
	}
	// exegesis открывает блок документации, но не декларацию
	others := []token.Kind{token.KwExegesis, token.Ident, token.Text, token.LBrace, token.EOF}
	for _, k := range others {
		if (token.Token{Kind: k}).IsDeclKeyword() {
			t.Errorf("%v must not be a declaration keyword", k)
		}
	}
}

func TestKindString(t *testing.T) {
	// каждое значение должно иметь человекочитаемое имя
	kinds := []token.Kind{
		token.Invalid, token.EOF, token.Newline, token.Ident, token.Text,
		token.KwGene, token.KwTrait, token.KwConstraint, token.KwSystem,
		token.KwExegesis, token.LBrace, token.RBrace,
	}
	seen := make(map[string]bool)
	for _, k := range kinds {
		s := k.String()
		if s == "" || s == "Unknown" {
			t.Errorf("Kind(%d).String() = %q", k, s)
		}
		if seen[s] {
			t.Errorf("duplicate string %q", s)
		}
		seen[s] = true
	}
}
