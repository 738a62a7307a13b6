package ast

import "github.com/univrs/metadol/internal/source"

// Decl is a single parsed DOL declaration:
//
//	<kind> <name> { <body> } [ exegesis { <text> } ]
//
// Body and Exegesis are raw slices of the comment-stripped source, prior to
// normalization/sanitization. A Decl lives for exactly one split iteration:
// constructed, normalized, emitted, discarded.
type Decl struct {
	Kind Kind
	// Name is the header name verbatim, trimmed. May contain letters, digits,
	// '.', '@', '>' and internal whitespace.
	Name string
	// Body is the text strictly between the outermost body braces.
	Body string
	// Exegesis is the text of the trailing exegesis block; empty if absent.
	Exegesis string
	// Span covers everything consumed for this declaration (body and, if
	// present, exegesis). Spans of consecutive declarations never overlap.
	Span source.Span
}
