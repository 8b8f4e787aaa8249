package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/DevCompass/compass-cli/internal/util/config"
	"github.com/spf13/cobra"
)

// sampleKeywords is written on init so users have a template to extend
// the builtin dictionary. Categories left out keep their builtin sets.
const sampleKeywords = `# compass keyword overlay
#
# Keywords listed here are merged into the builtin dictionary.
# Builtin keywords cannot be removed, only extended.
#
# Categories: simpleComplexity, complexComplexity, highRisk, lowRisk,
#             securityTrigger, systemScope
categories:
  # highRisk:
  #   - hotfix
  # simpleComplexity:
  #   - tweak
`

var (
	initForce   bool
	initProject bool
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the compass configuration",
	Long: `Write the default configuration and a keyword overlay template.

Creates ~/.config/compass/config.json and ~/.config/compass/keywords.yaml.
With --project, a .compass/config.json is written in the current
directory instead; values set there override the user config for tasks
classified inside the project. Existing files are kept unless --force
is given.`,
	Example: `  compass init
  compass init --force
  compass init --project`,
	RunE: runInit,
}

func init() {
	initCmd.Flags().BoolVar(&initForce, "force", false, "overwrite existing configuration")
	initCmd.Flags().BoolVar(&initProject, "project", false, "write a project-level .compass/config.json")
}

func runInit(cmd *cobra.Command, args []string) error {
	if initProject {
		return runInitProject()
	}

	cfg := config.Defaults()

	if _, err := os.Stat(config.ConfigPath()); err == nil && !initForce {
		printWarn(fmt.Sprintf("config already exists at %s (use --force to overwrite)", config.ConfigPath()))
	} else {
		if err := config.SaveConfig(cfg); err != nil {
			return fmt.Errorf("write config: %w", err)
		}
		fmt.Printf("Created %s\n", config.ConfigPath())
	}

	if _, err := os.Stat(cfg.KeywordsPath); err == nil && !initForce {
		printWarn(fmt.Sprintf("keyword overlay already exists at %s", cfg.KeywordsPath))
		return nil
	}
	if err := os.WriteFile(cfg.KeywordsPath, []byte(sampleKeywords), 0600); err != nil {
		return fmt.Errorf("write keyword overlay: %w", err)
	}
	fmt.Printf("Created %s\n", cfg.KeywordsPath)
	return nil
}

func runInitProject() error {
	if config.ProjectConfigExists() && !initForce {
		printWarn(fmt.Sprintf("project config already exists at %s (use --force to overwrite)", config.GetProjectConfigPath()))
		return nil
	}

	// Only the keywords path is seeded; unset fields fall back to the
	// user config.
	if err := config.SaveProjectConfig(&config.ProjectConfig{
		KeywordsPath: filepath.Join(".compass", "keywords.yaml"),
	}); err != nil {
		return err
	}
	fmt.Printf("Created %s\n", config.GetProjectConfigPath())
	return nil
}
