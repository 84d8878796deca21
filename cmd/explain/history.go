package main

import (
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"explain/internal/history"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent explanation runs",
	RunE:  runHistory,
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "Maximum number of runs to show")
}

func runHistory(cmd *cobra.Command, args []string) error {
	cfg, err := loadSettings()
	if err != nil {
		return err
	}

	path := history.Path(cfg.OutputDir)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		fmt.Println("No history yet. Run an explanation first.")
		return nil
	}

	db, err := history.Open(path)
	if err != nil {
		return err
	}
	defer db.Close()

	runs, err := db.Recent(historyLimit)
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("No history yet. Run an explanation first.")
		return nil
	}

	kindStyle := color.New(color.FgCyan)
	for _, run := range runs {
		fmt.Printf("%s  %s %s (%s, %s)\n",
			run.CreatedAt.Format("2006-01-02 15:04"),
			kindStyle.Sprintf("[%s]", run.Kind),
			run.Target,
			run.Model,
			run.Duration.Round(time.Millisecond),
		)
		fmt.Printf("    -> %s\n", run.OutputPath)
	}
	return nil
}
