package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/univrs/metadol/internal/diagfmt"
	"github.com/univrs/metadol/internal/lexer"
	"github.com/univrs/metadol/internal/source"
	"github.com/univrs/metadol/internal/token"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize <file.dol>",
	Short: "Dump the token stream for a DOL file",
	Long: `Tokenize strips comments, lexes the file and prints one token per line.
Intended for debugging declaration scanning.`,
	Args: cobra.ExactArgs(1),
	RunE: runTokenize,
}

func runTokenize(_ *cobra.Command, args []string) error {
	fileSet := source.NewFileSet()
	id, err := fileSet.Load(args[0])
	if err != nil {
		return err
	}

	raw := fileSet.Get(id)
	stripped, changed := lexer.StripComments(raw.Content)
	flags := raw.Flags
	if changed {
		flags |= source.FileStripped
	}
	file := fileSet.Get(fileSet.Add(raw.Path, stripped, flags))

	lx := lexer.New(file)
	var tokens []token.Token
	for {
		tok := lx.Next()
		tokens = append(tokens, tok)
		if tok.Kind == token.EOF {
			break
		}
	}

	return diagfmt.FormatTokensPretty(os.Stdout, tokens, fileSet)
}
