package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"explain/internal/topics"
	"explain/internal/tui"
)

var (
	topicsShowAll     bool
	topicsInteractive bool
)

var topicsCmd = &cobra.Command{
	Use:   "topics",
	Short: "Show the exploration queue",
	RunE:  runTopics,
}

func init() {
	topicsCmd.Flags().BoolVar(&topicsShowAll, "all", false, "Show all topics including done and skipped")
	topicsCmd.Flags().BoolVar(&topicsInteractive, "interactive", false, "Browse the queue interactively")
}

func runTopics(cmd *cobra.Command, args []string) error {
	cfg, err := loadSettings()
	if err != nil {
		return err
	}

	store := topics.NewStore(cfg.OutputDir)

	if topicsInteractive {
		return tui.Run(store)
	}

	queue, err := store.Load()
	if err != nil {
		return err
	}

	if len(queue) == 0 {
		fmt.Println("No topics queued. Run an explanation to discover topics.")
		return nil
	}

	var pending, done, skipped []topics.Topic
	for _, topic := range queue {
		switch topic.Status {
		case topics.StatusPending:
			pending = append(pending, topic)
		case topics.StatusDone:
			done = append(done, topic)
		case topics.StatusSkipped:
			skipped = append(skipped, topic)
		}
	}

	header := color.New(color.Bold)

	if len(pending) > 0 {
		header.Printf("Pending (%d):\n\n", len(pending))
		for i, topic := range pending {
			fmt.Printf("  %d. [%s] %s\n", i, topic.Kind, topic.Target)
			fmt.Printf("     %s\n", topic.Title)
			if topic.Source != "" {
				fmt.Printf("     (from %s)\n", topic.Source)
			}
			fmt.Println()
		}
	} else {
		fmt.Println("No pending topics.")
	}

	if topicsShowAll {
		if len(done) > 0 {
			header.Printf("Done (%d):\n\n", len(done))
			for _, topic := range done {
				fmt.Printf("  [%s] %s - %s\n", topic.Kind, topic.Target, topic.Title)
			}
		}
		if len(skipped) > 0 {
			header.Printf("\nSkipped (%d):\n\n", len(skipped))
			for _, topic := range skipped {
				fmt.Printf("  [%s] %s - %s\n", topic.Kind, topic.Target, topic.Title)
			}
		}
	}

	fmt.Printf("\n%d pending, %d done, %d skipped\n", len(pending), len(done), len(skipped))
	return nil
}
