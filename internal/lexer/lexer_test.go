package lexer_test

import (
	"testing"

	"github.com/univrs/metadol/internal/lexer"
	"github.com/univrs/metadol/internal/source"
	"github.com/univrs/metadol/internal/token"
)

// makeTestLexer создаёт лексер для тестовой строки
func makeTestLexer(input string) *lexer.Lexer {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.dol", []byte(input))
	return lexer.New(fs.Get(fileID))
}

// collectAllTokens собирает все токены до EOF (EOF не включается)
func collectAllTokens(lx *lexer.Lexer) []token.Token {
	tokens := make([]token.Token, 0)
	for {
		tok := lx.Next()
		if tok.Kind == token.EOF {
			return tokens
		}
		tokens = append(tokens, tok)
	}
}

func kinds(tokens []token.Token) []token.Kind {
	out := make([]token.Kind, len(tokens))
	for i, tok := range tokens {
		out[i] = tok.Kind
	}
	return out
}

func TestLexerTokenKinds(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []token.Kind
	}{
		{
			name:  "simple declaration header",
			input: "gene docker {",
			want:  []token.Kind{token.KwGene, token.Ident, token.LBrace},
		},
		{
			name:  "braces and newlines",
			input: "gene a {\n}\n",
			want: []token.Kind{
				token.KwGene, token.Ident, token.LBrace,
				token.Newline, token.RBrace, token.Newline,
			},
		},
		{
			name:  "consecutive newlines coalesce",
			input: "a\n\n\nb",
			want:  []token.Kind{token.Ident, token.Newline, token.Ident},
		},
		{
			name:  "name with dots and at",
			input: "trait container.docker@v1 {",
			want:  []token.Kind{token.KwTrait, token.Ident, token.LBrace},
		},
		{
			// '>' входит в класс имени, '=' — нет
			name:  "opaque text run",
			input: "matches x >= 0.0.1",
			want: []token.Kind{
				token.Ident, token.Ident, token.Ident, token.Text, token.Ident,
			},
		},
		{
			name:  "exegesis after closing brace",
			input: "} exegesis {",
			want:  []token.Kind{token.RBrace, token.KwExegesis, token.LBrace},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := kinds(collectAllTokens(makeTestLexer(tt.input)))
			if len(got) != len(tt.want) {
				t.Fatalf("token kinds = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Fatalf("token[%d] = %v, want %v (all: %v)", i, got[i], tt.want[i], got)
				}
			}
		})
	}
}

// Decl-ключевые слова значимы только в начале строки; в середине строки
// то же слово — обычный Ident.
func TestLexerKeywordsOnlyAtLineStart(t *testing.T) {
	lx := makeTestLexer("docker gene {\ngene docker {")
	tokens := collectAllTokens(lx)

	want := []token.Kind{
		token.Ident, token.Ident, token.LBrace,
		token.Newline,
		token.KwGene, token.Ident, token.LBrace,
	}
	got := kinds(tokens)
	if len(got) != len(want) {
		t.Fatalf("token kinds = %v, want %v", got, want)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("token[%d] = %v, want %v", i, got[i], want[i])
		}
	}
	if tokens[1].Text != "gene" {
		t.Fatalf("mid-line keyword text = %q, want %q", tokens[1].Text, "gene")
	}
}

// Пробелы перед ключевым словом не отменяют начало строки.
func TestLexerKeywordAfterIndent(t *testing.T) {
	lx := makeTestLexer("  gene a {")
	tok := lx.Next()
	if tok.Kind != token.KwGene {
		t.Fatalf("indented keyword kind = %v, want KwGene", tok.Kind)
	}
}

// exegesis распознаётся где угодно: он легально стоит после '}' в той же строке.
func TestLexerExegesisMidLine(t *testing.T) {
	lx := makeTestLexer("body exegesis {")
	tokens := collectAllTokens(lx)
	got := kinds(tokens)
	want := []token.Kind{token.Ident, token.KwExegesis, token.LBrace}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("token[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestLexerSpansSliceSource(t *testing.T) {
	input := "gene my.name {"
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("test.dol", []byte(input)))
	lx := lexer.New(file)

	for _, tok := range collectAllTokens(lx) {
		slice := string(file.Content[tok.Span.Start:tok.Span.End])
		if slice != tok.Text {
			t.Fatalf("span slice %q != token text %q", slice, tok.Text)
		}
	}
}

func TestLexerPeekDoesNotConsume(t *testing.T) {
	lx := makeTestLexer("gene a")
	p1 := lx.Peek()
	p2 := lx.Peek()
	if p1 != p2 {
		t.Fatalf("Peek not stable: %v vs %v", p1, p2)
	}
	n := lx.Next()
	if n != p1 {
		t.Fatalf("Next() = %v, want peeked %v", n, p1)
	}
}

// Mark/Reset откатывает и позицию, и lookahead, и признак начала строки.
func TestLexerMarkReset(t *testing.T) {
	lx := makeTestLexer("gene a {\ntrait b {")

	// съедаем первый заголовок
	for i := 0; i < 3; i++ {
		lx.Next()
	}

	m := lx.Mark()
	first := lx.Next() // Newline
	second := lx.Next()
	if second.Kind != token.KwTrait {
		t.Fatalf("after newline kind = %v, want KwTrait", second.Kind)
	}

	lx.Reset(m)
	if got := lx.Next(); got != first {
		t.Fatalf("after reset Next() = %v, want %v", got, first)
	}
	if got := lx.Next(); got.Kind != token.KwTrait {
		t.Fatalf("after reset second kind = %v, want KwTrait", got.Kind)
	}
}

func TestLexerEOFIsSticky(t *testing.T) {
	lx := makeTestLexer("a")
	lx.Next()
	for i := 0; i < 3; i++ {
		if tok := lx.Next(); tok.Kind != token.EOF {
			t.Fatalf("Next() after end = %v, want EOF", tok.Kind)
		}
	}
}
