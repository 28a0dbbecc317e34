package cli

import (
	"fmt"
	"os"

	"github.com/quell-dev/quell/internal/session"
	"github.com/spf13/cobra"
)

var applyCmd = &cobra.Command{
	Use:   "apply [clang-tidy-log]",
	Short: "Apply a saved session non-interactively",
	Long: `Re-apply the decisions from a saved session to the files named in a
clang-tidy log. Useful after re-running the analyzer, or for applying a
session that was reviewed with --dry-run.`,
	Args: cobra.ExactArgs(1),
	RunE: runApply,
}

func init() {
	applyCmd.Flags().StringP("session", "s", "", "session file to apply (default from config)")
	applyCmd.Flags().Bool("dry-run", false, "print the rewritten files instead of writing them")
}

func runApply(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	ws, err := readWarnings(args[0])
	if err != nil {
		return err
	}

	sessionPath, _ := cmd.Flags().GetString("session")
	if sessionPath == "" {
		sessionPath = cfg.SessionFile
	}

	decisions, err := session.Load(sessionPath)
	if err != nil {
		return err
	}
	if decisions.Addressed() == 0 {
		fmt.Println("Session has no suppressions to apply.")
		return nil
	}

	dryRun, _ := cmd.Flags().GetBool("dry-run")
	written, err := applyDecisions(ws, decisions, dryRun)
	if err != nil {
		return fmt.Errorf("applying suppressions: %w", err)
	}

	if !dryRun {
		fmt.Fprintf(os.Stderr, "Applied %d decision(s) to %d file(s).\n", decisions.Addressed(), written)
	}
	return nil
}
