package cli

import (
	"fmt"
	"os"
	"sort"

	"github.com/quell-dev/quell/internal/annotate"
	"github.com/quell-dev/quell/internal/changed"
	"github.com/quell-dev/quell/internal/config"
	"github.com/quell-dev/quell/internal/model"
	"github.com/quell-dev/quell/internal/source"
	"github.com/quell-dev/quell/internal/tidy"
	"github.com/spf13/cobra"
)

func loadConfig(cmd *cobra.Command) (config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		path = config.DefaultFile
	}
	return config.Load(path)
}

// readWarnings parses a clang-tidy log from the given argument, where
// "-" means stdin.
func readWarnings(arg string) ([]model.Warning, error) {
	if arg == "-" {
		return tidy.Parse(os.Stdin)
	}
	return tidy.ParseFile(arg)
}

// restrictToChanged drops warnings outside the lines touched by the
// given git diff range ("" means working tree vs HEAD).
func restrictToChanged(ws []model.Warning, commitRange string) ([]model.Warning, error) {
	raw, err := changed.GitDiff(commitRange)
	if err != nil {
		return nil, err
	}
	ranges, err := changed.Parse(raw)
	if err != nil {
		return nil, err
	}
	return changed.Restrict(ws, ranges), nil
}

// applyDecisions groups warnings per file, applies every non-None
// decision against one annotated document per file, and writes the
// rendered result back. Under dryRun nothing is written; the rendered
// output is printed instead.
func applyDecisions(ws []model.Warning, decisions model.Decisions, dryRun bool) (filesWritten int, err error) {
	byFile := make(map[string][]model.Warning)
	for _, w := range ws {
		if decisions[w.Key()] != model.StyleNone {
			byFile[w.File] = append(byFile[w.File], w)
		}
	}

	paths := make([]string, 0, len(byFile))
	for p := range byFile {
		paths = append(paths, p)
	}
	sort.Strings(paths)

	for _, path := range paths {
		lines, meta, err := source.ReadLines(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: skipping %s: %v\n", path, err)
			continue
		}

		doc := annotate.New(lines)
		for _, w := range byFile[path] {
			doc.Apply(w, decisions[w.Key()])
		}
		if !doc.Modified() {
			continue
		}

		rendered := doc.Render()
		if dryRun {
			fmt.Printf("--- %s (%d -> %d lines)\n", path, len(lines), len(rendered))
			for _, l := range rendered {
				fmt.Println(l)
			}
			continue
		}

		if err := source.WriteLines(path, rendered, meta); err != nil {
			return filesWritten, err
		}
		filesWritten++
	}

	return filesWritten, nil
}
