// Package unstop scrapes job listings from unstop.com's public search API.
package unstop

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
const SourceName = "unstop"

const (
	defaultBaseURL  = "https://unstop.com"
	defaultMaxPages = 5
	perPage         = 20
	// pageDelay paces pagination so the API is not hammered.
	pageDelay = 500 * time.Millisecond
)

// Scraper queries the Unstop search API with a title keyword and pages
// through the results.
type Scraper struct {
	// BaseURL is overridable in tests.
	BaseURL string
	limiter *rate.Limiter
	opts    *fetch.Options
}

// New returns a ready-to-use Unstop scraper.
func New() *Scraper {
	return &Scraper{
		BaseURL: defaultBaseURL,
		limiter: rate.NewLimiter(rate.Every(pageDelay), 1),
		opts: &fetch.Options{
			Timeout:   20 * time.Second,
			UserAgent: fetch.DefaultUserAgent,
			Headers:   map[string]string{"Referer": defaultBaseURL + "/jobs"},
		},
	}
}

// Name implements scrape.Source.
func (s *Scraper) Name() string { return SourceName }

// searchResponse mirrors the fields we read from the API payload.
type searchResponse struct {
	Data struct {
		Data []posting `json:"data"`
	} `json:"data"`
}

type posting struct {
	ID           int64         `json:"id"`
	Title        string        `json:"title"`
	SeoURL       string        `json:"seo_url"`
	ApprovedDate string        `json:"approved_date"`
	JobDetail    *jobDetail    `json:"jobDetail"`
	Organisation *organisation `json:"organisation"`
	SeoDetails   []seoDetail   `json:"seo_details"`
	Filters      []filterTag   `json:"filters"`
}

type jobDetail struct {
	Locations    []string `json:"locations"`
	MinSalary    *int64   `json:"min_salary"`
	MaxSalary    *int64   `json:"max_salary"`
	NotDisclosed bool     `json:"not_disclosed"`
}

type organisation struct {
	Name string `json:"name"`
}

type seoDetail struct {
	Description string `json:"description"`
}

type filterTag struct {
	Name string `json:"name"`
}

// Fetch pages through the search results for the queried title. On a mid-run
// failure the listings collected so far are returned together with the error.
func (s *Scraper) Fetch(ctx context.Context, q types.Query) ([]types.Listing, error) {
	maxPages := q.MaxPages
	if maxPages <= 0 {
		maxPages = defaultMaxPages
	}

	var listings []types.Listing
	for page := 1; page <= maxPages; page++ {
		if err := s.limiter.Wait(ctx); err != nil {
			return listings, err
		}

		var resp searchResponse
		if err := fetch.JSON(ctx, s.pageURL(q.Title, page), s.opts, &resp); err != nil {
			return listings, fmt.Errorf("unstop page %d: %w", page, err)
		}

		if len(resp.Data.Data) == 0 {
			break
		}
		for _, p := range resp.Data.Data {
			listings = append(listings, s.transform(p))
		}
	}
	return listings, nil
}

func (s *Scraper) pageURL(title string, page int) string {
	params := url.Values{}
	params.Set("opportunity", "jobs")
	params.Set("page", fmt.Sprintf("%d", page))
	params.Set("per_page", fmt.Sprintf("%d", perPage))
	params.Set("oppstatus", "recent")
	params.Set("searchTerm", title)
	return s.BaseURL + "/api/public/opportunity/search-result?" + params.Encode()
}

// transform maps one API posting into the canonical listing shape.
func (s *Scraper) transform(p posting) types.Listing {
	l := types.Listing{
		Source:  SourceName,
		Title:   p.Title,
		URL:     s.BaseURL + p.SeoURL,
		Skills:  "", // the API exposes no skills list
	}

	if p.Organisation != nil {
		l.Company = p.Organisation.Name
	}
	if len(p.SeoDetails) > 0 {
		l.Description = strings.TrimSpace(p.SeoDetails[0].Description)
	}
	if p.JobDetail != nil {
		l.Location = strings.Join(p.JobDetail.Locations, ", ")
		l.SalaryRange = salaryRange(p.JobDetail)
	}

	var tags []string
	for _, f := range p.Filters {
		if f.Name != "" {
			tags = append(tags, f.Name)
		}
	}
	l.Experience = strings.Join(tags, ", ")
	l.DatePosted = datePosted(p.ApprovedDate)

	return l
}

// salaryRange formats the advertised band, or empty when undisclosed.
func salaryRange(d *jobDetail) string {
	if d.NotDisclosed || d.MinSalary == nil {
		return ""
	}
	var max int64
	if d.MaxSalary != nil {
		max = *d.MaxSalary
	}
	return fmt.Sprintf("₹%d - ₹%d", *d.MinSalary, max)
}

// datePosted formats the approval timestamp as a plain date.
func datePosted(raw string) string {
	if raw == "" {
		return ""
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.Format("2006-01-02")
		}
	}
	return ""
}
