// Package lever scrapes company job boards through the public Lever postings
// API. Like greenhouse boards there is no search endpoint, so listings are
// filtered locally against the queried title.
package lever

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
const SourceName = "lever"

const (
	defaultBaseURL = "https://api.lever.co"
	// boardDelay paces successive board fetches.
	boardDelay = time.Second
)

// Board is one company's Lever board.
type Board struct {
	// Slug is the path segment: api.lever.co/v0/postings/<slug>.
	Slug string `json:"slug"`
	// Name is the display name used for the company column.
	Name string `json:"name"`
}

// Scraper fetches the configured boards and keeps the postings whose titles
// match the query.
type Scraper struct {
	// BaseURL is overridable in tests.
	BaseURL string
	boards  []Board
	limiter *rate.Limiter
	opts    *fetch.Options
}

// New returns a Lever scraper over the given boards.
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

// posting mirrors the fields we read from the Lever API payload.
type posting struct {
	ID         string `json:"id"`
	Text       string `json:"text"` // title
	HostedURL  string `json:"hostedUrl"`
	CreatedAt  int64  `json:"createdAt"` // ms epoch
	Categories struct {
		Location   string `json:"location"`
		Commitment string `json:"commitment"`
	} `json:"categories"`
	Description      string `json:"description"` // html
	DescriptionPlain string `json:"descriptionPlain"`
}

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
				firstErr = fmt.Errorf("lever board %s: %w", board.Slug, err)
			}
			continue
		}
		listings = append(listings, found...)
	}
	return listings, firstErr
}

func (s *Scraper) fetchBoard(ctx context.Context, board Board, q types.Query) ([]types.Listing, error) {
	apiURL := fmt.Sprintf("%s/v0/postings/%s?mode=json", s.BaseURL, board.Slug)

	var postings []posting
	if err := fetch.JSON(ctx, apiURL, s.opts, &postings); err != nil {
		return nil, err
	}

	var listings []types.Listing
	for _, p := range postings {
		title := strings.TrimSpace(p.Text)
		if p.ID == "" || p.HostedURL == "" || title == "" {
			continue
		}
		if !q.MatchesTitle(title) || !q.MatchesLocation(p.Categories.Location) {
			continue
		}

		listings = append(listings, types.Listing{
			Source:      SourceName,
			Title:       title,
			Company:     board.Name,
			Location:    p.Categories.Location,
			Experience:  p.Categories.Commitment,
			DatePosted:  datePosted(p.CreatedAt),
			Description: description(p),
			URL:         p.HostedURL,
		})
		if q.ResultsWanted > 0 && len(listings) == q.ResultsWanted {
			break
		}
	}
	return listings, nil
}

func datePosted(msEpoch int64) string {
	if msEpoch <= 0 {
		return ""
	}
	return time.UnixMilli(msEpoch).UTC().Format("2006-01-02")
}

// description prefers the plain variant and otherwise flattens the HTML one.
func description(p posting) string {
	if plain := strings.TrimSpace(p.DescriptionPlain); plain != "" {
		return plain
	}
	if p.Description == "" {
		return ""
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(p.Description))
	if err != nil {
		return strings.TrimSpace(p.Description)
	}
	return strings.TrimSpace(doc.Text())
}
