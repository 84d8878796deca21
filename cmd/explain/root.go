package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"explain/internal/config"
)

var (
	flagModel     string
	flagOutputDir string
	flagRepo      string
)

var rootCmd = &cobra.Command{
	Use:   "explain",
	Short: "AI-powered code explanation tool",
	Long: `Explain generates guided explanations of unfamiliar codebases.

Each explanation surfaces follow-up topics into a persistent exploration
queue, building a connected learning session rather than isolated documents.

Start with a repository overview, then follow the queue:

  explain repo ~/git/some-project
  explain topics
  explain next`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagModel, "model", "m", "", "Model to use (default: claude)")
	rootCmd.PersistentFlags().StringVarP(&flagOutputDir, "output-dir", "d", "", "Output directory (default: ./explanations)")
	rootCmd.PersistentFlags().StringVarP(&flagRepo, "repo", "r", ".", "Repository root (default: current directory)")

	rootCmd.AddCommand(fileCmd)
	rootCmd.AddCommand(functionCmd)
	rootCmd.AddCommand(repoCmd)
	rootCmd.AddCommand(diffCmd)
	rootCmd.AddCommand(topicsCmd)
	rootCmd.AddCommand(nextCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(installSkillCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadSettings merges the loaded config with command-line flag overrides.
func loadSettings() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if flagModel != "" {
		cfg.Model = flagModel
	}
	if flagOutputDir != "" {
		cfg.OutputDir = flagOutputDir
	}
	return cfg, nil
}

// printStatus prints a status line with color
func printStatus(symbol, message string, colorAttr color.Attribute) {
	c := color.New(colorAttr)
	fmt.Printf("%s %s\n", c.Sprint(symbol), message)
}
