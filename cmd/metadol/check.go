package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/univrs/metadol/internal/ast"
	"github.com/univrs/metadol/internal/diag"
	"github.com/univrs/metadol/internal/diagfmt"
	"github.com/univrs/metadol/internal/driver"
	"github.com/univrs/metadol/internal/source"
)

var checkCmd = &cobra.Command{
	Use:   "check <file.dol>...",
	Short: "Parse and validate DOL files without writing output",
	Long: `Check extracts and normalizes every declaration in each file without
writing anything, then validates the derivation graph: duplicate names,
references to undeclared parents and derives-from cycles.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCheck,
}

func runCheck(cmd *cobra.Command, args []string) error {
	maxDiagnostics, _ := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	quiet, _ := cmd.Root().PersistentFlags().GetBool("quiet")

	// Файлы живут в одном FileSet, диагностики копятся в общий Bag и
	// печатаются одним блоком после всех файлов.
	fileSet := source.NewFileSet()
	total := diag.NewBag(maxDiagnostics)
	truncated := false

	failed := 0
	for _, path := range args {
		id, err := fileSet.Load(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", path, err)
			failed++
			continue
		}

		result, checkErr := driver.CheckFile(fileSet, id, maxDiagnostics)
		if result.Bag != nil {
			if result.Bag.Len() >= int(result.Bag.Cap()) {
				truncated = true
			}
			total.Merge(result.Bag)
		}

		if checkErr != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", path, checkErr)
			failed++
			continue
		}
		if result.Bag != nil && result.Bag.HasErrors() {
			failed++
			continue
		}

		if !quiet {
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %d declarations", path, len(result.Decls))
			for _, kind := range ast.Kinds() {
				if n := result.KindCounts[kind]; n > 0 {
					fmt.Fprintf(cmd.OutOrStdout(), " %s=%d", kind, n)
				}
			}
			fmt.Fprintln(cmd.OutOrStdout())
		}
	}

	if total.Len() > 0 {
		total.Dedup()
		total.Sort()
		diagfmt.Pretty(os.Stderr, total, fileSet, diagfmt.PrettyOpts{
			Color: useColor(cmd, os.Stderr),
		})
		if truncated {
			fmt.Fprintf(os.Stderr, "diagnostic limit (%d) reached, some diagnostics were dropped\n", maxDiagnostics)
		}
	}

	if failed > 0 {
		return fmt.Errorf("check failed for %d file(s)", failed)
	}
	return nil
}
