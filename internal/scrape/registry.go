package scrape

import (
	"fmt"
	"strings"

	"github.com/jonathan/job-scout/internal/scrape/greenhouse"
	"github.com/jonathan/job-scout/internal/scrape/instahyre"
	"github.com/jonathan/job-scout/internal/scrape/lever"
	"github.com/jonathan/job-scout/internal/scrape/unstop"
)

// DefaultSources is the set of adapters enabled when config names none.
var DefaultSources = []string{
	unstop.SourceName,
	instahyre.SourceName,
	greenhouse.SourceName,
	lever.SourceName,
}

// Options selects and configures the sources for a run.
type Options struct {
	// Enabled names the adapters to run. Empty means DefaultSources.
	Enabled []string
	// GreenhouseBoards and LeverBoards list the company boards to scan.
	GreenhouseBoards []greenhouse.Board
	LeverBoards      []lever.Board
	// InstahyreJobFunction selects the Instahyre segment; zero uses the default.
	InstahyreJobFunction int
	// UseBrowser enables headless rendering for JS-shell board pages.
	UseBrowser bool
}

// Build constructs the enabled source adapters. Unknown names are an error so
// config typos surface immediately instead of silently skipping a site.
func Build(opts Options) ([]Source, error) {
	enabled := opts.Enabled
	if len(enabled) == 0 {
		enabled = DefaultSources
	}

	seen := make(map[string]bool, len(enabled))
	sources := make([]Source, 0, len(enabled))
	for _, name := range enabled {
		name = strings.ToLower(strings.TrimSpace(name))
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true

		switch name {
		case unstop.SourceName:
			sources = append(sources, unstop.New())
		case instahyre.SourceName:
			sources = append(sources, instahyre.New(opts.InstahyreJobFunction))
		case greenhouse.SourceName:
			gh := greenhouse.New(opts.GreenhouseBoards)
			gh.UseBrowser = opts.UseBrowser
			sources = append(sources, gh)
		case lever.SourceName:
			sources = append(sources, lever.New(opts.LeverBoards))
		default:
			return nil, fmt.Errorf("unknown source %q (supported: %s)", name, strings.Join(DefaultSources, ", "))
		}
	}
	return sources, nil
}
