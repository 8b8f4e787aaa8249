// Package mcp exposes the workflow classifier over the Model Context
// Protocol so LLM-based coding tools can pick a workflow via stdio.
package mcp

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/DevCompass/compass-cli/internal/engine/dict"
	"github.com/DevCompass/compass-cli/internal/history"
	"github.com/DevCompass/compass-cli/pkg/classify"
	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

// Server is a MCP (Model Context Protocol) server.
// It communicates via JSON-RPC over stdio.
type Server struct {
	classifier *classify.Classifier
	dictionary *dict.Dictionary
	store      *history.Store
}

// NewServer creates a new MCP server instance. The store may be nil,
// in which case classification_stats reports an error and decisions
// are not recorded.
func NewServer(d *dict.Dictionary, store *history.Store) *Server {
	return &Server{
		classifier: classify.New(classify.WithDictionary(d)),
		dictionary: d,
		store:      store,
	}
}

// ClassifyTaskInput represents the input schema for the classify_task tool (go-sdk).
type ClassifyTaskInput struct {
	TaskText          string `json:"task_text" jsonschema:"Natural-language task description to classify (required)"`
	ContextTokenCount int    `json:"context_token_count,omitempty" jsonschema:"Estimated tokens already loaded in the conversation context (optional)"`
	LoadedFileCount   int    `json:"loaded_file_count,omitempty" jsonschema:"Number of files currently loaded (optional)"`
	Record            bool   `json:"record,omitempty" jsonschema:"Persist the decision to the local history store (optional)"`
}

// ListKeywordsInput represents the input schema for the list_keywords tool (go-sdk).
type ListKeywordsInput struct {
	Category string `json:"category,omitempty" jsonschema:"Keyword category to list (optional). Leave empty for all categories. Examples: simpleComplexity, highRisk, securityTrigger"`
}

// ClassificationStatsInput represents the input schema for the classification_stats tool (go-sdk).
type ClassificationStatsInput struct {
	// No parameters - returns aggregate stats over recorded decisions
}

// Start starts the MCP server over stdio.
func (s *Server) Start() error {
	fmt.Fprintln(os.Stderr, "compass MCP server started (stdio mode)")
	fmt.Fprintln(os.Stderr, "Available tools: classify_task, list_keywords, classification_stats")
	return s.runStdioWithSDK(context.Background())
}

// runStdioWithSDK runs a spec-compliant MCP server over stdio using the official go-sdk.
func (s *Server) runStdioWithSDK(ctx context.Context) error {
	server := sdkmcp.NewServer(&sdkmcp.Implementation{
		Name:    "compass",
		Version: "1.0.0",
	}, nil)

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "classify_task",
		Description: "Classify a coding task into a recommended workflow (orchestrated, complete_system, phase_based) with confidence, reasoning, and a security-scan recommendation. Call this BEFORE planning how to execute a task.",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, input ClassifyTaskInput) (*sdkmcp.CallToolResult, map[string]any, error) {
		result, err := s.handleClassifyTask(input)
		if err != nil {
			return &sdkmcp.CallToolResult{IsError: true}, nil, err
		}
		return nil, result, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "list_keywords",
		Description: "List the keyword dictionary driving classification, optionally filtered to one category.",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, input ListKeywordsInput) (*sdkmcp.CallToolResult, map[string]any, error) {
		result, err := s.handleListKeywords(input)
		if err != nil {
			return &sdkmcp.CallToolResult{IsError: true}, nil, err
		}
		return nil, result, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "classification_stats",
		Description: "Aggregate statistics over previously recorded classification decisions.",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, input ClassificationStatsInput) (*sdkmcp.CallToolResult, map[string]any, error) {
		result, err := s.handleStats()
		if err != nil {
			return &sdkmcp.CallToolResult{IsError: true}, nil, err
		}
		return nil, result, nil
	})

	return server.Run(ctx, &sdkmcp.StdioTransport{})
}

func (s *Server) handleClassifyTask(input ClassifyTaskInput) (map[string]any, error) {
	result, err := s.classifier.Classify(input.TaskText, input.ContextTokenCount, input.LoadedFileCount)
	if err != nil {
		return nil, fmt.Errorf("classify_task: %w", err)
	}

	if input.Record && s.store != nil {
		if _, err := s.store.Record(history.RecordParams{
			TaskText:                input.TaskText,
			Workflow:                result.Workflow.String(),
			Confidence:              result.Confidence,
			Reasoning:               result.Reasoning,
			SecurityScanRecommended: result.SecurityScanRecommended,
			ContextTokenCount:       input.ContextTokenCount,
			LoadedFileCount:         input.LoadedFileCount,
		}); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to record decision: %v\n", err)
		}
	}

	out := map[string]any{
		"workflow":                  result.Workflow.String(),
		"confidence":                result.Confidence,
		"reasoning":                 result.Reasoning,
		"security_scan_recommended": result.SecurityScanRecommended,
	}
	if result.Factors != nil {
		out["factors"] = result.Factors
	}
	if len(result.DecisionFactors) > 0 {
		out["decision_factors"] = result.DecisionFactors
	}
	if len(result.Alternatives) > 0 {
		out["alternatives"] = result.Alternatives
	}
	return out, nil
}

func (s *Server) handleListKeywords(input ListKeywordsInput) (map[string]any, error) {
	categories := dict.Categories()
	if input.Category != "" {
		if _, err := s.dictionary.CategoryKeywords(input.Category); err != nil {
			return nil, fmt.Errorf("list_keywords: unknown category %q (known: %s)",
				input.Category, strings.Join(categories, ", "))
		}
		categories = []string{input.Category}
	}

	out := map[string]any{}
	for _, cat := range categories {
		kws, err := s.dictionary.CategoryKeywords(cat)
		if err != nil {
			return nil, fmt.Errorf("list_keywords: %w", err)
		}
		out[cat] = kws
	}
	return out, nil
}

func (s *Server) handleStats() (map[string]any, error) {
	if s.store == nil {
		return nil, fmt.Errorf("classification_stats: history store unavailable")
	}
	st, err := s.store.Stats()
	if err != nil {
		return nil, fmt.Errorf("classification_stats: %w", err)
	}
	out := map[string]any{
		"total_decisions":    st.TotalDecisions,
		"avg_confidence":     st.AvgConfidence,
		"security_scan_rate": st.SecurityScanRate,
	}
	byWorkflow := map[string]int{}
	for _, wc := range st.ByWorkflow {
		byWorkflow[wc.Workflow] = wc.Count
	}
	out["by_workflow"] = byWorkflow
	if st.FirstRecordedAt != "" {
		out["first_recorded_at"] = st.FirstRecordedAt
		out["last_recorded_at"] = st.LastRecordedAt
	}
	return out, nil
}
