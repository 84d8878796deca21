package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var functionCmd = &cobra.Command{
	Use:   "function FILE:SYMBOL",
	Short: "Explain a specific function or class",
	Long: `Explain a specific function or class.

The target must be in the format FILE_PATH:SYMBOL_NAME
(e.g. src/auth/client.py:login).`,
	Args: cobra.ExactArgs(1),
	RunE: runFunction,
}

func runFunction(cmd *cobra.Command, args []string) error {
	target := args[0]
	idx := strings.LastIndex(target, ":")
	if idx < 0 {
		return fmt.Errorf("target must be FILE_PATH:SYMBOL_NAME (e.g. src/auth.py:login)")
	}
	filePath, symbol := target[:idx], target[idx+1:]

	cfg, err := loadSettings()
	if err != nil {
		return err
	}

	sess, err := createSession(cfg)
	if err != nil {
		return err
	}
	defer closeSession(sess)

	return sess.ExplainFunction(context.Background(), filePath, symbol)
}
