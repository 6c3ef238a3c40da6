// The presence command hosts developer tooling for the presence library.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use: "presence",
	Short: "Presence CLI tool can run presence transition scenarios on a " +
		"virtual timeline.",
	Long: `Presence CLI tool can run presence transition scenarios on a ` +
		`virtual timeline. It is meant for tuning enter/exit durations and ` +
		`inspecting the resulting phase changes without a UI attached.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
