package cmd

import (
	"fmt"

	"github.com/DevCompass/compass-cli/internal/engine/dict"
	"github.com/DevCompass/compass-cli/internal/history"
	"github.com/DevCompass/compass-cli/internal/mcp"
	"github.com/DevCompass/compass-cli/internal/util/config"
	"github.com/spf13/cobra"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start MCP server to integrate with LLM tools",
	Long: `Start Model Context Protocol (MCP) server.
LLM-based coding tools can classify tasks into workflows through stdio.

Tools provided by MCP server:
- classify_task: Classify a task into a recommended workflow
- list_keywords: List the keyword dictionary
- classification_stats: Aggregate stats over recorded decisions

Communicates via stdio for integration with Claude Desktop, Claude Code, Cursor, and other MCP clients.`,
	Example: `  compass mcp`,
	RunE:    runMCP,
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}

func runMCP(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}

	d, err := dict.LoadOverlay(cfg.KeywordsPath)
	if err != nil {
		return fmt.Errorf("load keyword overlay: %w", err)
	}

	// A broken history store should not keep the server from classifying.
	store, err := history.New(history.Config{DataDir: cfg.HistoryDir})
	if err != nil {
		printError(fmt.Sprintf("history store unavailable: %v", err))
		store = nil
	} else {
		defer func() { _ = store.Close() }()
	}

	server := mcp.NewServer(d, store)
	return server.Start()
}
