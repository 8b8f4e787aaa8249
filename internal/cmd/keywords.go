package cmd

import (
	"fmt"
	"strings"

	"github.com/DevCompass/compass-cli/internal/engine/dict"
	"github.com/DevCompass/compass-cli/internal/util/config"
	"github.com/sahilm/fuzzy"
	"github.com/spf13/cobra"
)

var keywordsCmd = &cobra.Command{
	Use:   "keywords [category]",
	Short: "List the keyword dictionary driving classification",
	Long: `List the keywords the classifier matches against task text.

Without arguments all six categories are printed. With a category name
only that category is printed. User overlays from keywords.yaml are
merged into the builtin sets.`,
	Example: `  compass keywords
  compass keywords highRisk`,
	Args: cobra.MaximumNArgs(1),
	RunE: runKeywords,
}

func runKeywords(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}
	d, err := dict.LoadOverlay(cfg.KeywordsPath)
	if err != nil {
		return fmt.Errorf("load keyword overlay: %w", err)
	}

	categories := dict.Categories()
	if len(args) == 1 {
		if _, err := d.CategoryKeywords(args[0]); err != nil {
			msg := fmt.Sprintf("unknown category %q", args[0])
			if matches := fuzzy.Find(args[0], categories); len(matches) > 0 {
				msg += fmt.Sprintf(" (did you mean %q?)", matches[0].Str)
			}
			return fmt.Errorf("%s", msg)
		}
		categories = []string{args[0]}
	}

	for _, cat := range categories {
		kws, err := d.CategoryKeywords(cat)
		if err != nil {
			return err
		}
		printTitle(cat, fmt.Sprintf("%d keywords", len(kws)))
		fmt.Println(indent(strings.Join(kws, ", ")))
	}
	return nil
}
