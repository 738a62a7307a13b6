package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF

	// Newline marks one or more consecutive '\n' bytes. The parser relies on
	// it to know when a keyword sits at a line start.
	Newline
	// Ident represents a name-token run: word characters plus '.', '@', '>'.
	Ident
	// Text represents an opaque run of body bytes the lexer does not classify.
	Text

	// KwGene represents the 'gene' declaration keyword.
	KwGene // gene
	// KwTrait represents the 'trait' declaration keyword.
	KwTrait // trait
	// KwConstraint represents the 'constraint' declaration keyword.
	KwConstraint // constraint
	// KwSystem represents the 'system' declaration keyword.
	KwSystem // system
	// KwExegesis represents the 'exegesis' keyword.
	KwExegesis // exegesis

	// LBrace represents the left brace token.
	LBrace // {
	// RBrace represents the right brace token.
	RBrace // }
)

func (k Kind) String() string {
	switch k {
	case Invalid:
		return "Invalid"
	case EOF:
		return "EOF"
	case Newline:
		return "Newline"
	case Ident:
		return "Ident"
	case Text:
		return "Text"
	case KwGene:
		return "KwGene"
	case KwTrait:
		return "KwTrait"
	case KwConstraint:
		return "KwConstraint"
	case KwSystem:
		return "KwSystem"
	case KwExegesis:
		return "KwExegesis"
	case LBrace:
		return "LBrace"
	case RBrace:
		return "RBrace"
	}
	return "Unknown"
}
