package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/jonathan/job-scout/internal/export"
)

var cleanupCommand = &cobra.Command{
	Use:   "cleanup",
	Short: "Delete exported spreadsheets older than the retention window",
	RunE:  runCleanupCmd,
}

var (
	cleanupDir     string
	cleanupMaxDays int
)

func init() {
	cleanupCommand.Flags().StringVarP(&cleanupDir, "output-dir", "o", "output", "Directory holding exported spreadsheets")
	cleanupCommand.Flags().IntVar(&cleanupMaxDays, "max-age-days", 7, "Delete files older than this many days")

	rootCmd.AddCommand(cleanupCommand)
}

func runCleanupCmd(_ *cobra.Command, _ []string) error {
	if cleanupMaxDays < 0 {
		return fmt.Errorf("--max-age-days must be non-negative")
	}

	removed, err := export.Prune(cleanupDir, time.Duration(cleanupMaxDays)*24*time.Hour)
	if err != nil {
		return err
	}

	fmt.Printf("Removed %d old spreadsheet(s) from %s\n", removed, cleanupDir)
	return nil
}
