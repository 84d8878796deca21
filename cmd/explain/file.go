package main

import (
	"context"

	"github.com/spf13/cobra"
)

var fileCmd = &cobra.Command{
	Use:   "file FILE",
	Short: "Explain a file's purpose, structure, and key patterns",
	Args:  cobra.ExactArgs(1),
	RunE:  runFile,
}

func runFile(cmd *cobra.Command, args []string) error {
	cfg, err := loadSettings()
	if err != nil {
		return err
	}

	sess, err := createSession(cfg)
	if err != nil {
		return err
	}
	defer closeSession(sess)

	return sess.ExplainFile(context.Background(), args[0])
}
