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

var runCommand = &cobra.Command{
	Use:   "run",
	Short: "Run the full job search pipeline end-to-end",
	Long: `Orchestrates the entire search: resume -> AI title suggestion -> source scraping -> merge/dedupe -> spreadsheet export.

Configuration can be loaded from a JSON file using --config. Command-line arguments override config file values.`,
	RunE: runPipelineCmd,
}

var (
	runConfigPath    string
	runResume        string
	runInterests     string
	runLocation      string
	runCountry       string
	runMaxPages      int
	runResultsWanted int
	runSources       []string
	runGreenhouse    []string
	runLever         []string
	runJobFunction   int
	runOutputDir     string
	runAPIKey        string
	runUseBrowser    bool
	runVerbose       bool
)

func init() {
	// Config file flag (processed first)
	runCommand.Flags().StringVar(&runConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")

	runCommand.Flags().StringVarP(&runResume, "resume", "r", "", "Path to resume file (.txt, .md, or .pdf)")
	runCommand.Flags().StringVarP(&runInterests, "interests", "i", "", "Career interests to steer the title suggestions")
	runCommand.Flags().StringVarP(&runLocation, "location", "l", "", "Preferred location passed to sources")
	runCommand.Flags().StringVar(&runCountry, "country", "", "Country for location-scoped boards (default India)")
	runCommand.Flags().IntVar(&runMaxPages, "max-pages", 0, "Maximum result pages to fetch per source")
	runCommand.Flags().IntVar(&runResultsWanted, "results-wanted", 0, "Maximum listings to keep per source per title")
	runCommand.Flags().StringSliceVar(&runSources, "sources", nil, "Sources to query (unstop, instahyre, greenhouse, lever)")
	runCommand.Flags().StringSliceVar(&runGreenhouse, "greenhouse-board", nil, "Greenhouse board slug, optionally slug=Display Name (repeatable)")
	runCommand.Flags().StringSliceVar(&runLever, "lever-board", nil, "Lever board slug, optionally slug=Display Name (repeatable)")
	runCommand.Flags().IntVar(&runJobFunction, "instahyre-job-function", 0, "Instahyre job function segment")
	runCommand.Flags().StringVarP(&runOutputDir, "output-dir", "o", "", "Directory for the exported spreadsheet")
	runCommand.Flags().BoolVar(&runUseBrowser, "use-browser", false, "Use headless browser for JS-rendered boards (requires Chrome)")
	runCommand.Flags().BoolVarP(&runVerbose, "verbose", "v", false, "Print detailed progress information")

	// API key can be passed as a flag, or read from env var GEMINI_API_KEY
	runCommand.Flags().StringVar(&runAPIKey, "api-key", "", "Gemini API Key (optional, defaults to GEMINI_API_KEY env var)")

	rootCmd.AddCommand(runCommand)
}

func runPipelineCmd(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	cfg, err := loadRunConfig(cmd)
	if err != nil {
		return err
	}

	// Validate required fields
	if cfg.Resume == "" {
		return fmt.Errorf("--resume is required (via flag or config)")
	}
	if cfg.APIKey == "" {
		cfg.APIKey = os.Getenv("GEMINI_API_KEY")
	}
	if cfg.APIKey == "" {
		return fmt.Errorf("GEMINI_API_KEY environment variable or --api-key flag is required")
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
		ResumePath:    cfg.Resume,
		Interests:     cfg.Interests,
		Location:      cfg.Location,
		Country:       cfg.Country,
		MaxPages:      cfg.MaxPages,
		ResultsWanted: cfg.ResultsWanted,
		OutputDir:     cfg.OutputDir,
		APIKey:        cfg.APIKey,
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

// loadRunConfig merges the config file, explicit flag overrides, and
// defaults, in that priority order (flags win).
func loadRunConfig(cmd *cobra.Command) (config.Config, error) {
	var cfg config.Config
	if runConfigPath != "" {
		loadedCfg, err := config.LoadConfig(runConfigPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = *loadedCfg
		if runVerbose {
			_, _ = fmt.Fprintf(os.Stdout, "Loaded config from: %s\n", runConfigPath)
		}
	}

	// Only override if the flag was explicitly set
	if cmd.Flags().Changed("resume") {
		cfg.Resume = runResume
	}
	if cmd.Flags().Changed("interests") {
		cfg.Interests = runInterests
	}
	if cmd.Flags().Changed("location") {
		cfg.Location = runLocation
	}
	if cmd.Flags().Changed("country") {
		cfg.Country = runCountry
	}
	if cmd.Flags().Changed("max-pages") {
		cfg.MaxPages = runMaxPages
	}
	if cmd.Flags().Changed("results-wanted") {
		cfg.ResultsWanted = runResultsWanted
	}
	if cmd.Flags().Changed("sources") {
		cfg.SourcesEnabled = runSources
	}
	if cmd.Flags().Changed("greenhouse-board") {
		cfg.GreenhouseBoards = runGreenhouse
	}
	if cmd.Flags().Changed("lever-board") {
		cfg.LeverBoards = runLever
	}
	if cmd.Flags().Changed("instahyre-job-function") {
		cfg.InstahyreJobFunction = runJobFunction
	}
	if cmd.Flags().Changed("output-dir") {
		cfg.OutputDir = runOutputDir
	}
	if cmd.Flags().Changed("api-key") {
		cfg.APIKey = runAPIKey
	}
	if cmd.Flags().Changed("use-browser") {
		cfg.UseBrowser = runUseBrowser
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = runVerbose
	}

	cfg = cfg.MergeWithDefaults(config.DefaultConfig())

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}
