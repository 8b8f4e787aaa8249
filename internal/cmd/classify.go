package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/DevCompass/compass-cli/internal/analyze"
	"github.com/DevCompass/compass-cli/internal/engine/dict"
	"github.com/DevCompass/compass-cli/internal/history"
	"github.com/DevCompass/compass-cli/internal/util/config"
	"github.com/DevCompass/compass-cli/pkg/classify"
	"github.com/DevCompass/compass-cli/pkg/schema"
	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
)

var (
	classifyTokens      int
	classifyFiles       int
	classifyFormat      string
	classifyRecord      bool
	classifyInteractive bool
)

var classifyCmd = &cobra.Command{
	Use:   "classify [task text]",
	Short: "Classify a task into a recommended workflow",
	Long: `Classify a natural-language task description into a workflow.

The decision is keyword-based and fully deterministic. Context pressure
can be supplied with --tokens and --files; large contexts push the
recommendation towards a phase-based workflow.`,
	Example: `  compass classify "fix typo in readme"
  compass classify "refactor authentication architecture" --tokens 5000 --files 3
  compass classify --interactive
  compass classify "delete production data" --format json`,
	RunE: runClassify,
}

func init() {
	classifyCmd.Flags().IntVar(&classifyTokens, "tokens", 0, "context size in tokens")
	classifyCmd.Flags().IntVar(&classifyFiles, "files", 0, "number of loaded files")
	classifyCmd.Flags().StringVarP(&classifyFormat, "format", "f", "text", "output format (text|json)")
	classifyCmd.Flags().BoolVar(&classifyRecord, "record", false, "record the decision in the local history")
	classifyCmd.Flags().BoolVarP(&classifyInteractive, "interactive", "i", false, "prompt for the task interactively")
}

func runClassify(cmd *cobra.Command, args []string) error {
	if classifyFormat != "text" && classifyFormat != "json" {
		return fmt.Errorf("unknown format %q (expected text or json)", classifyFormat)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}

	taskText := strings.Join(args, " ")
	if classifyInteractive {
		taskText, err = promptForTask()
		if err != nil {
			return err
		}
	}

	d, err := dict.LoadOverlay(cfg.KeywordsPath)
	if err != nil {
		return fmt.Errorf("load keyword overlay: %w", err)
	}
	if verbose {
		fmt.Fprintf(os.Stderr, "keywords: %s\n", cfg.KeywordsPath)
	}

	classifier := classify.New(classify.WithDictionary(d))
	result, err := classifier.Classify(taskText, classifyTokens, classifyFiles)
	if err != nil {
		printError(err.Error())
		os.Exit(1)
	}

	if classifyRecord {
		if err := recordDecision(cfg, taskText, result); err != nil {
			printWarn(fmt.Sprintf("failed to record decision: %v", err))
		}
	}

	if classifyFormat == "json" {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}

	printResult(result)
	return nil
}

func promptForTask() (string, error) {
	textPrompt := promptui.Prompt{
		Label: "Task",
		Validate: func(s string) error {
			if strings.TrimSpace(s) == "" {
				return fmt.Errorf("task text must not be empty")
			}
			return nil
		},
	}
	taskText, err := textPrompt.Run()
	if err != nil {
		return "", err
	}

	tokensPrompt := promptui.Prompt{Label: "Context tokens", Default: "0", Validate: validateInt}
	if s, err := tokensPrompt.Run(); err == nil {
		classifyTokens, _ = strconv.Atoi(s)
	}

	filesPrompt := promptui.Prompt{Label: "Loaded files", Default: "0", Validate: validateInt}
	if s, err := filesPrompt.Run(); err == nil {
		classifyFiles, _ = strconv.Atoi(s)
	}

	return taskText, nil
}

func validateInt(s string) error {
	if _, err := strconv.Atoi(s); err != nil {
		return fmt.Errorf("must be a number")
	}
	return nil
}

func printResult(result *schema.ClassificationResult) {
	printTitle("RESULT", fmt.Sprintf("%s (confidence %.2f)", workflowColor(result.Workflow), result.Confidence))
	fmt.Println(indent("reasoning: " + result.Reasoning))
	if result.SecurityScanRecommended {
		printWarn("security scan recommended")
	}

	if result.Factors != nil && verbose {
		fmt.Println(indent(fmt.Sprintf("complexity %.2f (%s) | scope %.2f | risk %.2f (%s) | load %.2f | urgency %.2f",
			result.Factors.TechnicalComplexity, analyze.ScoreLevel(result.Factors.TechnicalComplexity),
			result.Factors.ScopeImpact,
			result.Factors.RiskFactor, analyze.ScoreLevel(result.Factors.RiskFactor),
			result.Factors.ContextLoad, result.Factors.TimePressure)))
	}
	for _, f := range result.DecisionFactors {
		fmt.Println(indent("- " + f))
	}
	if len(result.Alternatives) > 0 {
		alts := make([]string, 0, len(result.Alternatives))
		for _, a := range result.Alternatives {
			alts = append(alts, fmt.Sprintf("%s (%.2f)", a.Workflow, a.Suitability))
		}
		fmt.Println(indent("alternatives: " + strings.Join(alts, ", ")))
	}
}

func recordDecision(cfg *config.Config, taskText string, result *schema.ClassificationResult) error {
	store, err := history.New(history.Config{DataDir: cfg.HistoryDir})
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	_, err = store.Record(history.RecordParams{
		TaskText:                taskText,
		Workflow:                result.Workflow.String(),
		Confidence:              result.Confidence,
		Reasoning:               result.Reasoning,
		SecurityScanRecommended: result.SecurityScanRecommended,
		ContextTokenCount:       classifyTokens,
		LoadedFileCount:         classifyFiles,
	})
	return err
}
