package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/DevCompass/compass-cli/internal/history"
	"github.com/DevCompass/compass-cli/internal/util/config"
	"github.com/pkg/browser"
	"github.com/spf13/cobra"
)

var (
	statsFormat string
	statsOpen   bool
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Aggregate statistics over recorded decisions",
	Long: `Summarize the decision history: totals per workflow, average
confidence, and how often a security scan was recommended.

With --open an HTML report is written to a temporary file and opened
in the default browser.`,
	Example: `  compass stats
  compass stats --format json
  compass stats --open`,
	RunE: runStats,
}

func init() {
	statsCmd.Flags().StringVarP(&statsFormat, "format", "f", "text", "output format (text|json)")
	statsCmd.Flags().BoolVar(&statsOpen, "open", false, "open an HTML report in the browser")
}

func runStats(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}

	store, err := history.New(history.Config{DataDir: cfg.HistoryDir})
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	st, err := store.Stats()
	if err != nil {
		return err
	}

	if statsOpen {
		return openReport(st)
	}

	if statsFormat == "json" {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(st)
	}

	printTitle("STATS", fmt.Sprintf("%d decisions recorded", st.TotalDecisions))
	if st.TotalDecisions == 0 {
		return nil
	}
	fmt.Println(indent(fmt.Sprintf("average confidence: %.2f", st.AvgConfidence)))
	fmt.Println(indent(fmt.Sprintf("security scan rate: %.0f%%", st.SecurityScanRate*100)))
	for _, wc := range st.ByWorkflow {
		fmt.Println(indent(fmt.Sprintf("%-16s %d", wc.Workflow, wc.Count)))
	}
	return nil
}

func openReport(st *history.Stats) error {
	path := filepath.Join(os.TempDir(), "compass-stats.html")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create report file: %w", err)
	}
	if err := history.WriteReport(f, st); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	if verbose {
		fmt.Fprintf(os.Stderr, "report written to %s\n", path)
	}
	return browser.OpenFile(path)
}
