package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"explain/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("explain version %s\n", version.Get())
	},
}
