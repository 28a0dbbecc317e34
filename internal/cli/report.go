package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/quell-dev/quell/internal/model"
	"github.com/quell-dev/quell/internal/session"
	"github.com/quell-dev/quell/internal/stats"
	"github.com/spf13/cobra"
)

var reportCmd = &cobra.Command{
	Use:   "report [clang-tidy-log]",
	Short: "Print per-rule suppression progress (non-interactive)",
	Long: `Aggregate a clang-tidy log into per-rule counts, marking warnings
addressed by a saved session. Useful in CI to watch suppression debt.

Exit codes:
  0 — every warning has a decision
  1 — unaddressed warnings remain`,
	Args: cobra.ExactArgs(1),
	RunE: runReport,
}

func init() {
	reportCmd.Flags().StringP("session", "s", "", "session file with decisions (default from config)")
	reportCmd.Flags().StringP("format", "f", "text", "output format: text, json, markdown")
}

func runReport(cmd *cobra.Command, args []string) error {
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
	decisions := model.Decisions{}
	if loaded, err := session.Load(sessionPath); err == nil {
		decisions = loaded
	} else if !errors.Is(err, os.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "Warning: could not load session %s: %v\n", sessionPath, err)
	}

	all := stats.Aggregate(ws, decisions, nil)

	format, _ := cmd.Flags().GetString("format")
	switch format {
	case "json":
		err = reportJSON(all)
	case "markdown":
		err = reportMarkdown(all)
	default:
		err = reportText(all)
	}
	if err != nil {
		return err
	}

	for _, rs := range all {
		if rs.Addressed < rs.Total {
			os.Exit(1)
		}
	}
	return nil
}

func reportText(all []stats.RuleStats) error {
	if len(all) == 0 {
		fmt.Println("No warnings found.")
		return nil
	}

	done := color.New(color.FgGreen, color.Bold)
	partial := color.New(color.FgYellow)
	todo := color.New(color.FgRed)

	fmt.Printf("%-50s %7s %10s %6s\n", "RULE", "TOTAL", "ADDRESSED", "%")
	for _, rs := range all {
		pct := rs.AddressedPercent()
		c := todo
		switch {
		case pct == 100:
			c = done
		case pct > 0:
			c = partial
		}
		fmt.Printf("%-50s %7d %10d %s\n", rs.Rule, rs.Total, rs.Addressed, c.Sprintf("%5d%%", pct))
	}
	fmt.Printf("\n%s\n", stats.Summary(all))
	return nil
}

func reportJSON(all []stats.RuleStats) error {
	type jsonRule struct {
		Rule      string `json:"rule"`
		Total     int    `json:"total"`
		Addressed int    `json:"addressed"`
		Percent   int    `json:"addressed_percent"`
	}
	type jsonReport struct {
		Summary string     `json:"summary"`
		Rules   []jsonRule `json:"rules"`
	}

	out := jsonReport{Summary: stats.Summary(all)}
	for _, rs := range all {
		out.Rules = append(out.Rules, jsonRule{
			Rule:      rs.Rule,
			Total:     rs.Total,
			Addressed: rs.Addressed,
			Percent:   rs.AddressedPercent(),
		})
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func reportMarkdown(all []stats.RuleStats) error {
	fmt.Printf("## Suppression Report\n\n")
	fmt.Printf("%s\n\n", stats.Summary(all))

	if len(all) == 0 {
		return nil
	}

	fmt.Println("| Rule | Total | Addressed | % |")
	fmt.Println("|------|-------|-----------|---|")
	for _, rs := range all {
		fmt.Printf("| `%s` | %d | %d | %d%% |\n", rs.Rule, rs.Total, rs.Addressed, rs.AddressedPercent())
	}
	return nil
}
