package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/job-scout/internal/llm"
	"github.com/jonathan/job-scout/internal/resume"
	"github.com/jonathan/job-scout/internal/suggest"
)

var suggestCommand = &cobra.Command{
	Use:   "suggest-titles",
	Short: "Suggest job titles from a resume without searching",
	Long:  "Reads the resume, asks the model for matching job titles, and prints them one per line. Useful for previewing what a full run would search for.",
	RunE:  runSuggestCmd,
}

var (
	suggestResume    string
	suggestInterests string
	suggestAPIKey    string
)

func init() {
	suggestCommand.Flags().StringVarP(&suggestResume, "resume", "r", "", "Path to resume file (.txt, .md, or .pdf)")
	suggestCommand.Flags().StringVarP(&suggestInterests, "interests", "i", "", "Career interests to steer the suggestions")
	suggestCommand.Flags().StringVar(&suggestAPIKey, "api-key", "", "Gemini API Key (optional, defaults to GEMINI_API_KEY env var)")

	_ = suggestCommand.MarkFlagRequired("resume")

	rootCmd.AddCommand(suggestCommand)
}

func runSuggestCmd(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	apiKey := suggestAPIKey
	if apiKey == "" {
		apiKey = os.Getenv("GEMINI_API_KEY")
	}
	if apiKey == "" {
		return fmt.Errorf("GEMINI_API_KEY environment variable or --api-key flag is required")
	}

	resumeText, err := resume.Load(suggestResume)
	if err != nil {
		return err
	}

	client, err := llm.NewClient(ctx, llm.DefaultConfig(), apiKey)
	if err != nil {
		return err
	}
	defer client.Close()

	titles, err := suggest.Titles(ctx, client, resumeText, suggestInterests)
	if err != nil {
		return err
	}

	for _, title := range titles {
		fmt.Println(title)
	}
	return nil
}
