package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/job-scout/internal/config"
	"github.com/jonathan/job-scout/internal/pipeline"
	"github.com/jonathan/job-scout/internal/scrape"
)

var searchCommand = &cobra.Command{
	Use:   "search [title]...",
	Short: "Search sources for explicit job titles, skipping the AI step",
	Long: `Searches the configured sources for the given titles directly, with no resume or API key needed, and exports the merged listings.

Example: job_scout search "Data Engineer" "Backend Engineer" -l Bengaluru`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSearchCmd,
}

var (
	searchLocation      string
	searchCountry       string
	searchMaxPages      int
	searchResultsWanted int
	searchSources       []string
	searchGreenhouse    []string
	searchLever         []string
	searchJobFunction   int
	searchOutputDir     string
	searchUseBrowser    bool
	searchVerbose       bool
)

func init() {
	searchCommand.Flags().StringVarP(&searchLocation, "location", "l", "", "Preferred location passed to sources")
	searchCommand.Flags().StringVar(&searchCountry, "country", "", "Country for location-scoped boards (default India)")
	searchCommand.Flags().IntVar(&searchMaxPages, "max-pages", 0, "Maximum result pages to fetch per source")
	searchCommand.Flags().IntVar(&searchResultsWanted, "results-wanted", 0, "Maximum listings to keep per source per title")
	searchCommand.Flags().StringSliceVar(&searchSources, "sources", nil, "Sources to query (unstop, instahyre, greenhouse, lever)")
	searchCommand.Flags().StringSliceVar(&searchGreenhouse, "greenhouse-board", nil, "Greenhouse board slug, optionally slug=Display Name (repeatable)")
	searchCommand.Flags().StringSliceVar(&searchLever, "lever-board", nil, "Lever board slug, optionally slug=Display Name (repeatable)")
	searchCommand.Flags().IntVar(&searchJobFunction, "instahyre-job-function", 0, "Instahyre job function segment")
	searchCommand.Flags().StringVarP(&searchOutputDir, "output-dir", "o", "", "Directory for the exported spreadsheet")
	searchCommand.Flags().BoolVar(&searchUseBrowser, "use-browser", false, "Use headless browser for JS-rendered boards (requires Chrome)")
	searchCommand.Flags().BoolVarP(&searchVerbose, "verbose", "v", false, "Print detailed progress information")

	rootCmd.AddCommand(searchCommand)
}

func runSearchCmd(_ *cobra.Command, titles []string) error {
	ctx := context.Background()

	cfg := config.Config{
		Location:             searchLocation,
		Country:              searchCountry,
		MaxPages:             searchMaxPages,
		ResultsWanted:        searchResultsWanted,
		SourcesEnabled:       searchSources,
		GreenhouseBoards:     searchGreenhouse,
		LeverBoards:          searchLever,
		InstahyreJobFunction: searchJobFunction,
		OutputDir:            searchOutputDir,
		UseBrowser:           searchUseBrowser,
		Verbose:              searchVerbose,
	}
	cfg = cfg.MergeWithDefaults(config.DefaultConfig())
	if err := cfg.Validate(); err != nil {
		return err
	}

	sources, err := scrape.Build(scrape.Options{
		Enabled:              cfg.SourcesEnabled,
		GreenhouseBoards:     greenhouseBoards(cfg.GreenhouseBoards),
		LeverBoards:          leverBoards(cfg.LeverBoards),
		InstahyreJobFunction: cfg.InstahyreJobFunction,
		UseBrowser:           cfg.UseBrowser,
	})
	if err != nil {
		return err
	}

	result, err := pipeline.Run(ctx, pipeline.RunOptions{
		Titles:        titles,
		Location:      cfg.Location,
		Country:       cfg.Country,
		MaxPages:      cfg.MaxPages,
		ResultsWanted: cfg.ResultsWanted,
		OutputDir:     cfg.OutputDir,
		Sources:       sources,
		Verbose:       cfg.Verbose,
	})
	if err != nil {
		return err
	}

	fmt.Printf("Saved %d listings to %s\n", len(result.Table), result.OutputPath)
	for name, srcErr := range result.SourceFailures {
		fmt.Fprintf(os.Stderr, "Warning: source %s failed: %v\n", name, srcErr)
	}
	return nil
}
