package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"explain/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show configuration sources and effective settings",
	RunE:  runConfig,
}

func runConfig(cmd *cobra.Command, args []string) error {
	cfg, err := loadSettings()
	if err != nil {
		return err
	}

	userPath := config.GetUserConfigPath()
	if _, err := os.Stat(userPath); err == nil {
		fmt.Printf("User config:    %s\n", userPath)
	} else {
		fmt.Printf("User config:    %s (not present)\n", userPath)
	}

	if projectPath := config.GetProjectConfigPath(); projectPath != "" {
		fmt.Printf("Project config: %s\n", projectPath)
	} else {
		fmt.Println("Project config: (none)")
	}

	fmt.Println()
	fmt.Printf("model:        %s\n", cfg.Model)
	fmt.Printf("output_dir:   %s\n", cfg.OutputDir)
	fmt.Printf("generate:     %s\n", cfg.Timeouts.Generate)
	fmt.Printf("max_depth:    %d\n", cfg.Tree.MaxDepth)
	fmt.Printf("api.model:    %s\n", orUnset(cfg.API.Model))
	fmt.Printf("api.api_key:  %s\n", maskKey(cfg.API.APIKey))
	fmt.Printf("api.bedrock:  %t\n", cfg.API.UseBedrock)
	return nil
}

func orUnset(s string) string {
	if s == "" {
		return "(unset)"
	}
	return s
}

// maskKey hides all but the last four characters of a key.
func maskKey(key string) string {
	if key == "" {
		return "(unset)"
	}
	if len(key) <= 4 {
		return "****"
	}
	return "****" + key[len(key)-4:]
}
