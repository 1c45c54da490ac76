// Package instahyre scrapes job listings from instahyre.com's private API.
// The API is segmented by job function rather than by search term, so the
// adapter is queried once per run instead of once per title.
package instahyre

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/jonathan/job-scout/internal/fetch"
	"github.com/jonathan/job-scout/internal/types"
)

// SourceName identifies this adapter in config and logs.
const SourceName = "instahyre"

// DefaultJobFunction is the "Technology" job function on Instahyre.
const DefaultJobFunction = 9

const (
	defaultBaseURL  = "https://www.instahyre.com"
	defaultMaxPages = 5
	pageLimit       = 20
	// pageDelay matches the site's tolerance for repeated API hits.
	pageDelay = 2 * time.Second
)

// Scraper pages through the Instahyre job-search API for one job function.
type Scraper struct {
	// BaseURL is overridable in tests.
	BaseURL string
	// JobFunction selects the Instahyre job-function segment to fetch.
	JobFunction int
	limiter     *rate.Limiter
	opts        *fetch.Options
}

// New returns an Instahyre scraper for the given job function id.
// A non-positive id falls back to DefaultJobFunction.
func New(jobFunction int) *Scraper {
	if jobFunction <= 0 {
		jobFunction = DefaultJobFunction
	}
	return &Scraper{
		BaseURL:     defaultBaseURL,
		JobFunction: jobFunction,
		limiter:     rate.NewLimiter(rate.Every(pageDelay), 1),
		opts: &fetch.Options{
			Timeout:   30 * time.Second,
			UserAgent: fetch.DefaultUserAgent,
		},
	}
}

// Name implements scrape.Source.
func (s *Scraper) Name() string { return SourceName }

// TitleAgnostic marks that results do not depend on the queried title.
func (s *Scraper) TitleAgnostic() bool { return true }

type searchResponse struct {
	Objects []posting `json:"objects"`
}

type posting struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	PublicURL string    `json:"public_url"`
	Locations string    `json:"locations"`
	Keywords  []string  `json:"keywords"`
	Employer  *employer `json:"employer"`
}

type employer struct {
	CompanyName   string `json:"company_name"`
	InstahyreNote string `json:"instahyre_note"`
}

// Fetch pages through the API using offset pagination until a page comes back
// empty or the page bound is hit. On a mid-run failure the listings collected
// so far are returned together with the error.
func (s *Scraper) Fetch(ctx context.Context, q types.Query) ([]types.Listing, error) {
	maxPages := q.MaxPages
	if maxPages <= 0 {
		maxPages = defaultMaxPages
	}

	var listings []types.Listing
	offset := 0
	for page := 1; page <= maxPages; page++ {
		if err := s.limiter.Wait(ctx); err != nil {
			return listings, err
		}

		var resp searchResponse
		if err := fetch.JSON(ctx, s.pageURL(offset), s.opts, &resp); err != nil {
			return listings, fmt.Errorf("instahyre offset %d: %w", offset, err)
		}

		if len(resp.Objects) == 0 {
			break
		}
		for _, p := range resp.Objects {
			listings = append(listings, transform(p))
		}
		offset += len(resp.Objects)
	}
	return listings, nil
}

func (s *Scraper) pageURL(offset int) string {
	params := url.Values{}
	params.Set("company_size", "0")
	params.Set("isLandingPage", "true")
	params.Set("job_type", "0")
	params.Set("limit", fmt.Sprintf("%d", pageLimit))
	params.Set("job_functions", fmt.Sprintf("%d", s.JobFunction))
	params.Set("offset", fmt.Sprintf("%d", offset))
	return s.BaseURL + "/api/v1/job_search?" + params.Encode()
}

func transform(p posting) types.Listing {
	l := types.Listing{
		Source:   SourceName,
		Title:    p.Title,
		URL:      p.PublicURL,
		Location: p.Locations,
		Skills:   strings.Join(p.Keywords, ", "),
	}
	if p.Employer != nil {
		l.Company = p.Employer.CompanyName
		l.Description = strings.TrimSpace(p.Employer.InstahyreNote)
	}
	return l
}
