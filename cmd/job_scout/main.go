// Package main provides the entry point for the Job Scout CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "job_scout",
	Short: "AI-assisted job search aggregator",
	Long:  "Job Scout reads a resume, suggests matching job titles with Gemini, searches multiple job boards, and exports the merged listings to a spreadsheet.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
