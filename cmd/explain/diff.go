package main

import (
	"context"

	"github.com/spf13/cobra"
)

var (
	diffBranch string
	diffBase   string
)

var diffCmd = &cobra.Command{
	Use:   "diff",
	Short: "Explain what changed in a diff and why",
	Long: `Explain what changed in a diff and why.

Without --branch, explains the staged changes. With --branch, explains
the branch's commits against the base branch.`,
	RunE: runDiff,
}

func init() {
	diffCmd.Flags().StringVarP(&diffBranch, "branch", "b", "", "Branch to explain (default: staged changes)")
	diffCmd.Flags().StringVar(&diffBase, "base", "main", "Base branch to diff against (default: main)")
}

func runDiff(cmd *cobra.Command, args []string) error {
	cfg, err := loadSettings()
	if err != nil {
		return err
	}

	sess, err := createSession(cfg)
	if err != nil {
		return err
	}
	defer closeSession(sess)

	return sess.ExplainDiff(context.Background(), diffBranch, diffBase)
}
