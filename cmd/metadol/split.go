package main

import (
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/univrs/metadol/internal/diagfmt"
	"github.com/univrs/metadol/internal/driver"
	"github.com/univrs/metadol/internal/project"
	"github.com/univrs/metadol/internal/ui"
)

var splitCmd = &cobra.Command{
	Use:   "split [flags] [module...]",
	Short: "Split multi-declaration DOL modules into individual files",
	Long: `Split reads <module>.dol for each named module and writes one canonical
file per declaration under <out>/<module>/{genes,traits,constraints,systems}.
Without positional modules the list is taken from metadol.toml.`,
	RunE: runSplit,
}

func init() {
	splitCmd.Flags().String("dir", "", "directory containing <module>.dol inputs (default: manifest dir or '.')")
	splitCmd.Flags().String("out", "", "output root directory (default: same as --dir)")
	splitCmd.Flags().String("manifest", "", "explicit path to metadol.toml")
	splitCmd.Flags().Bool("no-cache", false, "always re-split, ignoring the split cache")
	splitCmd.Flags().Bool("progress", false, "show interactive progress (TTY only)")
}

func runSplit(cmd *cobra.Command, args []string) error {
	modules, dir, out, err := resolveSplitConfig(cmd, args)
	if err != nil {
		return err
	}
	if len(modules) == 0 {
		return fmt.Errorf("nothing to split: no modules given and no manifest found")
	}

	jobs, _ := cmd.Root().PersistentFlags().GetInt("jobs")
	maxDiagnostics, _ := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	quiet, _ := cmd.Root().PersistentFlags().GetBool("quiet")
	noCache, _ := cmd.Flags().GetBool("no-cache")
	progress, _ := cmd.Flags().GetBool("progress")

	var cache *driver.DiskCache
	if !noCache {
		// промах открытия кеша не мешает сплиту — просто работаем без него
		cache, _ = driver.OpenDiskCache("metadol")
	}

	opts := driver.SplitOptions{
		Dir:            dir,
		Out:            out,
		Jobs:           jobs,
		MaxDiagnostics: maxDiagnostics,
		Cache:          cache,
	}

	var results []driver.ModuleResult
	if progress && isTerminal(os.Stdout) {
		events := make(chan driver.Event, len(modules)*4)
		opts.Events = events

		errCh := make(chan error, 1)
		go func() {
			var splitErr error
			results, splitErr = driver.SplitModules(cmd.Context(), modules, opts)
			errCh <- splitErr
		}()

		model := ui.NewProgressModel("splitting DOL modules", modules, events)
		if _, teaErr := tea.NewProgram(model).Run(); teaErr != nil {
			return teaErr
		}
		if splitErr := <-errCh; splitErr != nil {
			return splitErr
		}
	} else {
		if results, err = driver.SplitModules(cmd.Context(), modules, opts); err != nil {
			return err
		}
	}

	printer := &ui.PlainPrinter{W: os.Stdout, Color: useColor(cmd, os.Stdout), Quiet: quiet}
	total := 0
	failed := 0
	for _, r := range results {
		printer.Report(r)
		total += r.Count()
		if r.Err != nil {
			failed++
			if r.Bag != nil && r.FileSet != nil && r.Bag.Len() > 0 {
				r.Bag.Sort()
				diagfmt.Pretty(os.Stderr, r.Bag, r.FileSet, diagfmt.PrettyOpts{
					Color: useColor(cmd, os.Stderr),
				})
			}
		}
	}
	printer.Total(total)

	if failed > 0 {
		return fmt.Errorf("split failed for %d module(s)", failed)
	}
	return nil
}

// resolveSplitConfig сводит флаги, аргументы и манифест к итоговому списку
// модулей и директориям. Позиционные модули имеют приоритет над манифестом.
func resolveSplitConfig(cmd *cobra.Command, args []string) (modules []string, dir, out string, err error) {
	dir, _ = cmd.Flags().GetString("dir")
	out, _ = cmd.Flags().GetString("out")
	manifestFlag, _ := cmd.Flags().GetString("manifest")

	if len(args) > 0 {
		modules = args
	}

	manifestPath := manifestFlag
	if manifestPath == "" && len(modules) == 0 {
		if found, ok, findErr := project.FindManifest("."); findErr != nil {
			return nil, "", "", findErr
		} else if ok {
			manifestPath = found
		}
	}

	if manifestPath != "" {
		manifest, loadErr := project.LoadManifest(manifestPath)
		if loadErr != nil {
			return nil, "", "", loadErr
		}
		base := filepath.Dir(manifestPath)
		if len(modules) == 0 {
			modules = manifest.Split.Modules
		}
		if dir == "" {
			dir = resolveAgainst(base, manifest.Split.Dir)
		}
		if out == "" {
			out = resolveAgainst(base, manifest.Split.Out)
		}
	}

	if dir == "" {
		dir = "."
	}
	if out == "" {
		out = dir
	}
	return modules, dir, out, nil
}

func resolveAgainst(base, p string) string {
	if p == "" {
		return base
	}
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(base, p)
}
