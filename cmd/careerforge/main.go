// Package main provides the entry point for the CareerForge CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "careerforge",
	Short: "CareerForge résumé builder",
	Long:  "CareerForge maintains a personal résumé: a REST store for profile and work-experience sections, and a career-timeline client that keeps local state in sync with it.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
