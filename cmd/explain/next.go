package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"explain/internal/topics"
)

var nextSkip bool

var nextCmd = &cobra.Command{
	Use:   "next",
	Short: "Explain the next topic in the exploration queue",
	RunE:  runNext,
}

func init() {
	nextCmd.Flags().BoolVar(&nextSkip, "skip", false, "Skip the next topic instead of explaining it")
}

func runNext(cmd *cobra.Command, args []string) error {
	cfg, err := loadSettings()
	if err != nil {
		return err
	}

	if nextSkip {
		return skipNext(topics.NewStore(cfg.OutputDir))
	}

	sess, err := createSession(cfg)
	if err != nil {
		return err
	}
	defer closeSession(sess)

	ran, err := sess.Next(context.Background())
	if err != nil {
		return err
	}
	if !ran {
		fmt.Println("No pending topics. Run an explanation to discover topics.")
	}
	return nil
}

// skipNext marks the head of the queue skipped and reports what is next.
func skipNext(store *topics.Store) error {
	skipped, err := store.Skip(0)
	if err != nil {
		return err
	}
	if !skipped {
		fmt.Println("Nothing to skip.")
		return nil
	}

	queue, err := store.Load()
	if err != nil {
		return err
	}
	for _, topic := range queue {
		if topic.Status == topics.StatusPending {
			fmt.Printf("Skipped. Next: [%s] %s\n", topic.Kind, topic.Target)
			return nil
		}
	}
	fmt.Println("Skipped. No more pending topics.")
	return nil
}
