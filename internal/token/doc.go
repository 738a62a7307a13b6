// Package token defines the token kinds produced by the DOL lexer.
//
// DOL has a deliberately small surface: four declaration keywords, the
// exegesis keyword, braces, identifier runs and opaque text. Everything a
// declaration body contains is carried through as raw spans, so the token
// set never needs to classify body content beyond braces and newlines.
package token
