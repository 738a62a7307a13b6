package lexer

import (
	"github.com/univrs/metadol/internal/source"
	"github.com/univrs/metadol/internal/token"
)

// Lexer разбивает DOL-файл (уже без комментариев, см. StripComments) на
// поток токенов. Лексер никогда не падает: всё, что не классифицируется,
// уходит в token.Text и разбирается выше по стеку как непрозрачный текст.
type Lexer struct {
	file   *source.File
	cursor Cursor
	look   *token.Token // 1 элементный буфер для токена
	bol    bool         // текущая позиция — начало строки (modulo пробелы)
}

// New creates a lexer for the provided file. Content is expected to be
// comment-stripped; the lexer itself never interprets `//`.
func New(file *source.File) *Lexer {
	return &Lexer{
		file:   file,
		cursor: NewCursor(file),
		look:   nil,
		bol:    true,
	}
}

// Next возвращает следующий значимый токен. После EOF всегда возвращает EOF.
//
// Declaration keywords (gene/trait/constraint/system) are only recognized at
// a line start; mid-line the same word lexes as Ident. The exegesis keyword
// is recognized anywhere because it legally follows a closing brace on the
// same line.
func (lx *Lexer) Next() token.Token {
	if lx.look != nil {
		tok := *lx.look
		lx.look = nil
		return tok
	}

	// пробелы и табы — не токены; начало строки при этом не сбрасываем
	for {
		b := lx.cursor.Peek()
		if b != ' ' && b != '\t' {
			break
		}
		lx.cursor.Bump()
	}

	if lx.cursor.EOF() {
		return token.Token{
			Kind: token.EOF,
			Span: lx.emptySpan(),
			Text: "",
		}
	}

	start := lx.cursor.Mark()
	switch b := lx.cursor.Peek(); {
	case b == '\n':
		// подряд идущие \n коалесцируются в один Newline
		for lx.cursor.Eat('\n') {
		}
		lx.bol = true
		return lx.tokenFrom(token.Newline, start)

	case b == '{':
		lx.cursor.Bump()
		lx.bol = false
		return lx.tokenFrom(token.LBrace, start)

	case b == '}':
		lx.cursor.Bump()
		lx.bol = false
		return lx.tokenFrom(token.RBrace, start)

	case isNameByte(b):
		return lx.scanIdentOrKeyword()

	default:
		// непрозрачный текст: до брейса, конца строки или начала имени
		for !lx.cursor.EOF() {
			b2 := lx.cursor.Peek()
			if b2 == '{' || b2 == '}' || b2 == '\n' || isNameByte(b2) {
				break
			}
			lx.cursor.Bump()
		}
		lx.bol = false
		return lx.tokenFrom(token.Text, start)
	}
}

// Peek возвращает следующий токен, не потребляя его.
func (lx *Lexer) Peek() token.Token {
	t := lx.Next()
	lx.look = &t
	return t
}

// LexMark снимает снапшот состояния лексера для отката.
type LexMark struct {
	cur  Mark
	look *token.Token
	bol  bool
}

// Mark сохраняет текущее состояние (позиция + lookahead).
func (lx *Lexer) Mark() LexMark {
	return LexMark{cur: lx.cursor.Mark(), look: lx.look, bol: lx.bol}
}

// Reset возвращает лексер к сохранённому состоянию.
func (lx *Lexer) Reset(m LexMark) {
	lx.cursor.Reset(m.cur)
	lx.look = m.look
	lx.bol = m.bol
}

// scanIdentOrKeyword сканирует name-token run и проверяет через LookupKeyword.
// Token.Text — ровно исходный срез.
func (lx *Lexer) scanIdentOrKeyword() token.Token {
	start := lx.cursor.Mark()
	for !lx.cursor.EOF() && isNameByte(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}

	sp := lx.cursor.SpanFrom(start)
	text := string(lx.file.Content[sp.Start:sp.End])
	atLineStart := lx.bol
	lx.bol = false

	if k, ok := token.LookupKeyword(text); ok {
		// decl-ключевые слова значимы только в начале строки
		if k == token.KwExegesis || atLineStart {
			return token.Token{Kind: k, Span: sp, Text: text}
		}
	}
	return token.Token{Kind: token.Ident, Span: sp, Text: text}
}

func (lx *Lexer) tokenFrom(kind token.Kind, start Mark) token.Token {
	sp := lx.cursor.SpanFrom(start)
	return token.Token{
		Kind: kind,
		Span: sp,
		Text: string(lx.file.Content[sp.Start:sp.End]),
	}
}

func (lx *Lexer) emptySpan() source.Span {
	return source.Span{File: lx.file.ID, Start: lx.cursor.Off, End: lx.cursor.Off}
}

// isNameByte — байты, допустимые в имени декларации: word-символы плюс
// '.', '@', '>'.
func isNameByte(b byte) bool {
	return b == '_' || b == '.' || b == '@' || b == '>' ||
		(b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z') || (b >= '0' && b <= '9')
}
