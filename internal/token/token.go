package token

import (
	"github.com/univrs/metadol/internal/source"
)

// Token represents a single source token with its location.
type Token struct {
	Kind Kind
	Span source.Span
	Text string
}

// IsDeclKeyword reports whether the token opens one of the four declaration
// kinds. The keyword set is fixed: anything else never starts a declaration.
func (t Token) IsDeclKeyword() bool {
	switch t.Kind {
	case KwGene, KwTrait, KwConstraint, KwSystem:
		return true
	default:
		return false
	}
}

// IsIdent reports whether the token is an identifier.
func (t Token) IsIdent() bool { return t.Kind == Ident }
