package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/quell-dev/quell/internal/model"
	"github.com/quell-dev/quell/internal/session"
	"github.com/quell-dev/quell/internal/tui"
	"github.com/spf13/cobra"
)

var reviewCmd = &cobra.Command{
	Use:   "review [clang-tidy-log]",
	Short: "Open an interactive review session",
	Long: `Open an interactive session over clang-tidy output. Pass the path to
a saved log, or - to read from a pipe.

Examples:
  clang-tidy -p build src/*.cpp | quell review -
  quell review tidy.log
  quell review tidy.log --changed main...HEAD   # only warnings on changed lines`,
	Args: cobra.ExactArgs(1),
	RunE: runReview,
}

func init() {
	reviewCmd.Flags().StringP("session", "s", "", "session file to resume and save decisions")
	reviewCmd.Flags().String("changed", "", "restrict to lines changed in a git diff range")
	reviewCmd.Flags().Bool("changed-worktree", false, "restrict to uncommitted changes")
	reviewCmd.Flags().Bool("dry-run", false, "preview the rewritten files instead of writing them")
}

func runReview(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	ws, err := readWarnings(args[0])
	if err != nil {
		return err
	}

	commitRange, _ := cmd.Flags().GetString("changed")
	worktree, _ := cmd.Flags().GetBool("changed-worktree")
	if commitRange != "" || worktree {
		before := len(ws)
		ws, err = restrictToChanged(ws, commitRange)
		if err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "Changed-lines filter: %d/%d warnings kept\n", len(ws), before)
	}

	if len(ws) == 0 {
		fmt.Println("No warnings to review.")
		return nil
	}

	sessionPath, _ := cmd.Flags().GetString("session")
	if sessionPath == "" {
		sessionPath = cfg.SessionFile
	}

	seed := model.Decisions{}
	if prev, err := session.Load(sessionPath); err == nil {
		seed = prev
		fmt.Fprintf(os.Stderr, "Resumed %d decision(s) from %s\n", len(prev), sessionPath)
	} else if !errors.Is(err, os.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "Warning: could not load session %s: %v\n", sessionPath, err)
	}

	result, err := tui.Run(ws, cfg, seed)
	if err != nil {
		return err
	}
	if result == nil {
		fmt.Fprintln(os.Stderr, "Quit without saving.")
		return nil
	}

	if err := session.Save(sessionPath, result.Decisions); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "Session saved to %s\n", sessionPath)

	dryRun, _ := cmd.Flags().GetBool("dry-run")
	written, err := applyDecisions(ws, result.Decisions, dryRun)
	if err != nil {
		return fmt.Errorf("applying suppressions: %w", err)
	}
	if !dryRun {
		fmt.Fprintf(os.Stderr, "Updated %d file(s).\n", written)
	}
	return nil
}
