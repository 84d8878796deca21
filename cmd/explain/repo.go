package main

import (
	"context"

	"github.com/spf13/cobra"
)

var repoCmd = &cobra.Command{
	Use:   "repo [PATH]",
	Short: "Generate a high-level repository architecture overview",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runRepo,
}

func runRepo(cmd *cobra.Command, args []string) error {
	repoPath := "."
	if len(args) > 0 {
		repoPath = args[0]
	}

	cfg, err := loadSettings()
	if err != nil {
		return err
	}

	sess, err := createSession(cfg)
	if err != nil {
		return err
	}
	defer closeSession(sess)

	return sess.ExplainRepo(context.Background(), repoPath)
}
