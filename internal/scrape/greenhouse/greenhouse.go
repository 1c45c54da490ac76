// Package greenhouse scrapes company job boards hosted on
// boards.greenhouse.io. Boards have no search endpoint, so listings are
// filtered locally against the queried title.
package greenhouse

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/time/rate"

	"github.com/jonathan/job-scout/internal/fetch"
	"github.com/jonathan/job-scout/internal/types"
)

// SourceName identifies this adapter in config and logs.
const SourceName = "greenhouse"

const (
	defaultBaseURL = "https://boards.greenhouse.io"
	// boardDelay paces successive board fetches.
	boardDelay = time.Second
)

// Board is one company's greenhouse board.
type Board struct {
	// Slug is the path segment: boards.greenhouse.io/<slug>.
	Slug string `json:"slug"`
	// Name is the display name used for the company column.
	Name string `json:"name"`
}

// Scraper fetches the configured boards and keeps the openings whose titles
// match the query.
type Scraper struct {
	// BaseURL is overridable in tests.
	BaseURL string
	// UseBrowser enables headless rendering when a board comes back as a
	// JavaScript shell. Requires Chrome on the host.
	UseBrowser bool
	boards     []Board
	limiter    *rate.Limiter
	opts       *fetch.Options
}

// New returns a greenhouse scraper over the given boards.
func New(boards []Board) *Scraper {
	return &Scraper{
		BaseURL: defaultBaseURL,
		boards:  boards,
		limiter: rate.NewLimiter(rate.Every(boardDelay), 1),
		opts: &fetch.Options{
			Timeout:   20 * time.Second,
			UserAgent: fetch.DefaultUserAgent,
		},
	}
}

// Name implements scrape.Source.
func (s *Scraper) Name() string { return SourceName }

// Fetch scans every configured board. A board that fails does not abort the
// others; the first error is reported alongside whatever was collected.
func (s *Scraper) Fetch(ctx context.Context, q types.Query) ([]types.Listing, error) {
	var listings []types.Listing
	var firstErr error

	for _, board := range s.boards {
		if err := s.limiter.Wait(ctx); err != nil {
			return listings, err
		}

		found, err := s.fetchBoard(ctx, board, q)
		if err != nil {
			if firstErr == nil {
				firstErr = fmt.Errorf("greenhouse board %s: %w", board.Slug, err)
			}
			continue
		}
		listings = append(listings, found...)
	}
	return listings, firstErr
}

func (s *Scraper) fetchBoard(ctx context.Context, board Board, q types.Query) ([]types.Listing, error) {
	boardURL := fmt.Sprintf("%s/%s", s.BaseURL, board.Slug)

	body, err := fetch.Get(ctx, boardURL, s.opts)
	if err != nil {
		return nil, err
	}

	html := string(body)
	if s.UseBrowser && fetch.ShouldUseBrowser(html) {
		html, err = fetch.WithBrowser(ctx, boardURL, s.opts.Timeout)
		if err != nil {
			return nil, err
		}
	}

	return s.parseBoard(html, board, q)
}

// parseBoard extracts openings from the board HTML. Greenhouse boards render
// each opening as a div.opening holding the job anchor and a location span.
func (s *Scraper) parseBoard(html string, board Board, q types.Query) ([]types.Listing, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("parse board html: %w", err)
	}

	var listings []types.Listing
	doc.Find("div.opening").Each(func(_ int, opening *goquery.Selection) {
		anchor := opening.Find("a[href]").First()
		href, ok := anchor.Attr("href")
		if !ok {
			return
		}
		href = strings.TrimSpace(href)
		title := strings.TrimSpace(anchor.Text())
		location := strings.TrimSpace(opening.Find("span.location").First().Text())
		if href == "" || title == "" || !q.MatchesTitle(title) || !q.MatchesLocation(location) {
			return
		}
		if strings.HasPrefix(href, "/") {
			href = s.BaseURL + href
		}

		listings = append(listings, types.Listing{
			Source:   SourceName,
			Title:    title,
			Company:  board.Name,
			Location: location,
			URL:      href,
		})
	})

	if q.ResultsWanted > 0 && len(listings) > q.ResultsWanted {
		listings = listings[:q.ResultsWanted]
	}
	return listings, nil
}
