package diagfmt

import (
	"fmt"
	"io"

	"github.com/univrs/metadol/internal/source"
	"github.com/univrs/metadol/internal/token"
)

// FormatTokensPretty печатает поток токенов по одному на строку:
// <line>:<col> <Kind> <text>. Текст обрезается, переводы строк экранируются.
func FormatTokensPretty(w io.Writer, tokens []token.Token, fileSet *source.FileSet) error {
	for _, tok := range tokens {
		start, _ := fileSet.Resolve(tok.Span)
		text := tok.Text
		if len(text) > 32 {
			text = text[:29] + "..."
		}
		if _, err := fmt.Fprintf(w, "%4d:%-3d %-12s %q\n", start.Line, start.Col, tok.Kind, text); err != nil {
			return err
		}
	}
	return nil
}
