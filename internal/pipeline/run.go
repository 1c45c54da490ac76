// Package pipeline provides the high-level orchestration for a job search run.
package pipeline

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/job-scout/internal/export"
	"github.com/jonathan/job-scout/internal/llm"
	"github.com/jonathan/job-scout/internal/normalize"
	"github.com/jonathan/job-scout/internal/observability"
	"github.com/jonathan/job-scout/internal/resume"
	"github.com/jonathan/job-scout/internal/scrape"
	"github.com/jonathan/job-scout/internal/suggest"
	"github.com/jonathan/job-scout/internal/types"
)

// Progress step and category identifiers.
const (
	CategoryInput   = "input"
	CategorySuggest = "suggest"
	CategoryScrape  = "scrape"
	CategoryExport  = "export"

	StepResume   = "resume"
	StepTitles   = "titles"
	StepSource   = "source"
	StepMerge    = "merge"
	StepExported = "exported"
)

// maxConcurrentFetches bounds how many source requests run at once. Each
// source also applies its own per-host rate limit.
const maxConcurrentFetches = 4

// ProgressEvent represents a progress update during pipeline execution
type ProgressEvent struct {
	Step     string `json:"step"`
	Category string `json:"category"`
	Message  string `json:"message"`
	RunID    string `json:"run_id,omitempty"`
	Content  any    `json:"content,omitempty"`
}

// ProgressCallback is called when pipeline progress occurs
type ProgressCallback func(event ProgressEvent)

// RunOptions holds configuration for running the pipeline
type RunOptions struct {
	ResumePath    string
	Interests     string
	Titles        []string // When set, skips the AI title suggestion step
	Location      string
	Country       string
	MaxPages      int
	ResultsWanted int
	OutputDir     string
	APIKey        string
	Sources       []scrape.Source
	Client        llm.Client // Optional; built from APIKey when nil
	Verbose       bool
	Out           io.Writer // Defaults to os.Stdout
	OnProgress    ProgressCallback
}

// Result holds the outputs of a completed run.
type Result struct {
	RunID          string
	Titles         []string
	Table          types.Table
	OutputPath     string
	SourceCounts   map[string]int
	SourceFailures map[string]error
	Elapsed        time.Duration
}

// emitProgress calls the progress callback if configured
func emitProgress(opts *RunOptions, runID, step, category, message string, content any) {
	if opts.OnProgress != nil {
		opts.OnProgress(ProgressEvent{
			Step:     step,
			Category: category,
			Message:  message,
			RunID:    runID,
			Content:  content,
		})
	}
}

// Run orchestrates the full search pipeline: resolve titles, query every
// source, merge and dedupe, and export the result to a spreadsheet. Source
// failures are non-fatal; they are reported in the result and the run
// continues with whatever listings were collected.
func Run(ctx context.Context, opts RunOptions) (*Result, error) {
	start := time.Now()
	runID := uuid.New().String()

	out := opts.Out
	if out == nil {
		out = os.Stdout
	}
	printer := observability.NewPrinter(out)

	titles, err := resolveTitles(ctx, &opts, runID)
	if err != nil {
		return nil, err
	}
	if opts.Verbose {
		printer.PrintSuggestedTitles(titles)
	}
	emitProgress(&opts, runID, StepTitles, CategorySuggest,
		fmt.Sprintf("Searching %d job titles", len(titles)), titles)

	collected, counts, failures := fetchAll(ctx, &opts, runID, titles)

	table := normalize.Dedupe(collected)
	emitProgress(&opts, runID, StepMerge, CategoryScrape,
		fmt.Sprintf("Merged %d listings into %d unique rows", len(collected), len(table)), nil)
	if opts.Verbose {
		printer.PrintSourceCounts(counts, failures)
	}

	writer := export.NewWriter(opts.OutputDir)
	path, err := writer.Write(table)
	if err != nil {
		return nil, err
	}
	emitProgress(&opts, runID, StepExported, CategoryExport,
		fmt.Sprintf("Exported %d listings to %s", len(table), path), nil)

	result := &Result{
		RunID:          runID,
		Titles:         titles,
		Table:          table,
		OutputPath:     path,
		SourceCounts:   counts,
		SourceFailures: failures,
		Elapsed:        time.Since(start),
	}
	if opts.Verbose {
		printer.PrintSummary(table, path, result.Elapsed)
	}
	return result, nil
}

// resolveTitles returns the explicit title override when present, otherwise
// loads the resume and asks the model for suggestions.
func resolveTitles(ctx context.Context, opts *RunOptions, runID string) ([]string, error) {
	if len(opts.Titles) > 0 {
		return opts.Titles, nil
	}

	resumeText, err := resume.Load(opts.ResumePath)
	if err != nil {
		return nil, err
	}
	emitProgress(opts, runID, StepResume, CategoryInput,
		fmt.Sprintf("Loaded resume from %s", opts.ResumePath), nil)

	client := opts.Client
	if client == nil {
		client, err = llm.NewClient(ctx, llm.DefaultConfig(), opts.APIKey)
		if err != nil {
			return nil, err
		}
		defer client.Close()
	}

	return suggest.Titles(ctx, client, resumeText, opts.Interests)
}

// fetchAll queries every source for every title, bounded by
// maxConcurrentFetches. Sources that ignore the title filter are queried
// once per run instead of once per title.
func fetchAll(ctx context.Context, opts *RunOptions, runID string, titles []string) ([]types.Listing, map[string]int, map[string]error) {
	var (
		mu        sync.Mutex
		collected []types.Listing
		counts    = make(map[string]int)
		failures  = make(map[string]error)
	)

	record := func(name string, listings []types.Listing, err error) {
		mu.Lock()
		defer mu.Unlock()
		collected = append(collected, listings...)
		counts[name] += len(listings)
		if err != nil && failures[name] == nil {
			failures[name] = err
		}
	}

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentFetches)

	fetchOne := func(src scrape.Source, q types.Query) {
		listings, err := src.Fetch(gCtx, q)
		if err != nil {
			err = &scrape.UnavailableError{Source: src.Name(), Cause: err}
			emitProgress(opts, runID, StepSource, CategoryScrape,
				fmt.Sprintf("Source %s failed: %v", src.Name(), err), nil)
		} else {
			emitProgress(opts, runID, StepSource, CategoryScrape,
				fmt.Sprintf("Source %s returned %d listings for %q", src.Name(), len(listings), q.Title), nil)
		}
		record(src.Name(), listings, err)
	}

	for _, src := range opts.Sources {
		base := types.Query{
			Location:      opts.Location,
			Country:       opts.Country,
			MaxPages:      opts.MaxPages,
			ResultsWanted: opts.ResultsWanted,
		}

		if ta, ok := src.(scrape.TitleAgnostic); ok && ta.TitleAgnostic() {
			g.Go(func() error {
				fetchOne(src, base)
				return nil
			})
			continue
		}

		for _, title := range titles {
			q := base
			q.Title = title
			g.Go(func() error {
				fetchOne(src, q)
				return nil
			})
		}
	}

	// Tasks never return errors; Wait only orders the merges.
	_ = g.Wait()
	return collected, counts, failures
}
