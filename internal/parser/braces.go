package parser

import (
	"errors"
	"fmt"

	"github.com/univrs/metadol/internal/diag"
	"github.com/univrs/metadol/internal/source"
	"github.com/univrs/metadol/internal/token"
)

var (
	// ErrUnterminatedBlock: конец файла раньше, чем глубина скобок вернулась
	// к нулю. Исторический сканер в этом месте молча возвращал нулевой
	// offset — здесь это громкая ошибка, обрывающая файл.
	ErrUnterminatedBlock = errors.New("unterminated brace block")
	// ErrMalformedInput: matchBraces вызван, когда текущий токен — не '{'.
	// Это нарушение контракта сканера, а не состояние входных данных.
	ErrMalformedInput = errors.New("brace matching started at a non-brace token")
)

// matchBraces потребляет сбалансированный блок, начиная с текущего токена,
// который обязан быть LBrace. Возвращает текст строго между внешними
// скобками (сырой срез расчищенного исходника) и span всего блока, включая
// обе скобки.
func (p *Parser) matchBraces() (string, source.Span, error) {
	open := p.lx.Next()
	if open.Kind != token.LBrace {
		diag.ReportError(p.opts.Reporter, diag.SynMalformedBraceCall, open.Span,
			fmt.Sprintf("expected '{', got %s", open.Kind))
		return "", source.Span{}, fmt.Errorf("%s at offset %d: %w",
			p.file.Path, open.Span.Start, ErrMalformedInput)
	}

	depth := 1
	for {
		tok := p.lx.Next()
		switch tok.Kind {
		case token.LBrace:
			depth++
		case token.RBrace:
			depth--
			if depth == 0 {
				body := string(p.file.Content[open.Span.End:tok.Span.Start])
				return body, open.Span.Cover(tok.Span), nil
			}
		case token.EOF:
			sp := open.Span.Cover(tok.Span)
			diag.ReportError(p.opts.Reporter, diag.SynUnterminatedBlock, open.Span,
				fmt.Sprintf("'{' has no matching '}' (depth %d at end of file)", depth))
			return "", sp, fmt.Errorf("%s at offset %d: %w",
				p.file.Path, open.Span.Start, ErrUnterminatedBlock)
		}
	}
}
