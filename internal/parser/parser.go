package parser

import (
	"strings"

	"github.com/univrs/metadol/internal/ast"
	"github.com/univrs/metadol/internal/diag"
	"github.com/univrs/metadol/internal/lexer"
	"github.com/univrs/metadol/internal/source"
	"github.com/univrs/metadol/internal/token"
)

type Options struct {
	Reporter diag.Reporter
}

// Parser — состояние сканера деклараций на один файл. Курсор только
// движется вперёд: span каждой следующей декларации лежит строго после
// всего, что уже потреблено.
type Parser struct {
	lx   *lexer.Lexer
	file *source.File
	opts Options
}

// New создаёт парсер поверх лексера. Контент файла должен быть уже без
// комментариев (lexer.StripComments), иначе ключевые слова внутри
// комментариев будут приняты за заголовки.
func New(file *source.File, lx *lexer.Lexer, opts Options) *Parser {
	if opts.Reporter == nil {
		opts.Reporter = diag.NopReporter{}
	}
	return &Parser{lx: lx, file: file, opts: opts}
}

// ParseFile разбирает весь файл и возвращает декларации в порядке
// появления в исходнике. При ошибке извлечения (UnterminatedBlock,
// MalformedInput) возвращает уже накопленные декларации и ошибку: позиция
// сканера после такого сбоя недостоверна, файл дальше не обрабатывается.
func ParseFile(file *source.File, lx *lexer.Lexer, opts Options) ([]ast.Decl, error) {
	p := New(file, lx, opts)
	var decls []ast.Decl
	for {
		decl, ok, err := p.Next()
		if err != nil {
			return decls, err
		}
		if !ok {
			return decls, nil
		}
		decls = append(decls, decl)
	}
}

// Next находит следующую декларацию. ok=false без ошибки — нормальный конец
// входа, не сбой.
func (p *Parser) Next() (ast.Decl, bool, error) {
	for {
		tok := p.lx.Next()
		if tok.Kind == token.EOF {
			return ast.Decl{}, false, nil
		}
		if !tok.IsDeclKeyword() {
			// всё, что не заголовок известного вида, молча пропускается —
			// включая declaration-подобный текст с чужим ключевым словом
			continue
		}
		kind, _ := ast.KindOfToken(tok.Kind)
		decl, ok, err := p.parseDecl(kind, tok)
		if err != nil {
			return ast.Decl{}, false, err
		}
		if !ok {
			// заголовок не дотянулся до '{' — бросаем и сканируем дальше
			continue
		}
		return decl, true, nil
	}
}

// parseDecl разбирает `<name> { body } [exegesis { text }]` после уже
// съеденного ключевого слова вида.
func (p *Parser) parseDecl(kind ast.Kind, kw token.Token) (ast.Decl, bool, error) {
	// Имя: ленивая череда name-токенов до ближайшей '{'. Ключевые слова и
	// переводы строк внутри имени допустимы (и потом триммируются) — ровно
	// как и в историческом сканере.
	var first, last source.Span
	haveName := false
	for {
		tok := p.lx.Peek()
		switch {
		case tok.IsIdent() || tok.IsDeclKeyword() || tok.Kind == token.KwExegesis:
			p.lx.Next()
			if !haveName {
				first = tok.Span
				haveName = true
			}
			last = tok.Span
		case tok.Kind == token.Newline:
			p.lx.Next()
		case tok.Kind == token.LBrace:
			if !haveName {
				// имя пустое: заголовок не считается декларацией
				diag.ReportInfo(p.opts.Reporter, diag.SynEmptyDeclName, kw.Span,
					"declaration keyword without a name")
				return ast.Decl{}, false, nil
			}
			name := strings.TrimSpace(string(p.file.Content[first.Start:last.End]))
			body, bodySpan, err := p.matchBraces()
			if err != nil {
				return ast.Decl{}, false, err
			}
			exegesis, exSpan, err := p.parseExegesis()
			if err != nil {
				return ast.Decl{}, false, err
			}
			span := kw.Span.Cover(bodySpan)
			if exSpan.End != 0 {
				span = span.Cover(exSpan)
			}
			return ast.Decl{
				Kind:     kind,
				Name:     name,
				Body:     body,
				Exegesis: exegesis,
				Span:     span,
			}, true, nil
		default:
			// символ вне класса имени раньше '{' — это не декларация
			return ast.Decl{}, false, nil
		}
	}
}

// parseExegesis ищет `exegesis {` сразу после тела (между ними допустимы
// только пробельные токены). Если блока нет — откатывается и возвращает
// пустую строку.
func (p *Parser) parseExegesis() (string, source.Span, error) {
	m := p.lx.Mark()
	for p.lx.Peek().Kind == token.Newline {
		p.lx.Next()
	}
	if p.lx.Peek().Kind != token.KwExegesis {
		p.lx.Reset(m)
		return "", source.Span{}, nil
	}
	kw := p.lx.Next()
	for p.lx.Peek().Kind == token.Newline {
		p.lx.Next()
	}
	if p.lx.Peek().Kind != token.LBrace {
		// слово "exegesis" без блока — не наш случай, откат
		p.lx.Reset(m)
		return "", source.Span{}, nil
	}
	text, sp, err := p.matchBraces()
	if err != nil {
		return "", source.Span{}, err
	}
	return text, kw.Span.Cover(sp), nil
}
