package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/DevCompass/compass-cli/internal/history"
	"github.com/DevCompass/compass-cli/internal/util/config"
	"github.com/spf13/cobra"
)

var (
	historyLimit  int
	historyFormat string
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recently recorded classification decisions",
	Long: `Show recorded decisions, newest first.

Only classifications run with --record (or recorded through the MCP
server) appear here.`,
	Example: `  compass history
  compass history --limit 50 --format json`,
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "maximum number of decisions to show")
	historyCmd.Flags().StringVarP(&historyFormat, "format", "f", "text", "output format (text|json)")
}

func runHistory(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}

	store, err := history.New(history.Config{DataDir: cfg.HistoryDir})
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	decisions, err := store.Recent(historyLimit)
	if err != nil {
		return err
	}

	if historyFormat == "json" {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(decisions)
	}

	if len(decisions) == 0 {
		fmt.Println("No decisions recorded yet. Run 'compass classify --record' to start.")
		return nil
	}

	for _, d := range decisions {
		scan := ""
		if d.SecurityScanRecommended {
			scan = " " + warn("security scan")
		}
		fmt.Printf("%s  %-16s %.2f%s\n", d.CreatedAt, d.Workflow, d.Confidence, scan)
		fmt.Println(indent(d.TaskText))
	}
	return nil
}
