package lever

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"

	"github.com/jonathan/job-scout/internal/types"
)

const postingsJSON = `[
  {
    "id": "p-1",
    "text": "Backend Engineer",
    "hostedUrl": "https://jobs.lever.co/acme/p-1",
    "createdAt": 1787184000000,
    "categories": {"location": "Remote - India", "commitment": "Full-time"},
    "description": "<div><p>Build <b>APIs</b> in Go.</p></div>"
  },
  {
    "id": "p-2",
    "text": "Backend Engineer, Payments",
    "hostedUrl": "https://jobs.lever.co/acme/p-2",
    "categories": {"location": "Bengaluru"},
    "descriptionPlain": "Payments team."
  },
  {
    "id": "p-3",
    "text": "Brand Marketer",
    "hostedUrl": "https://jobs.lever.co/acme/p-3"
  },
  {
    "id": "",
    "text": "Ghost Posting",
    "hostedUrl": "https://jobs.lever.co/acme/p-4"
  }
]`

func newTestScraper(url string, boards []Board) *Scraper {
	s := New(boards)
	s.BaseURL = url
	s.limiter = rate.NewLimiter(rate.Inf, 1)
	return s
}

func TestFetchFiltersAndTransforms(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v0/postings/acme", r.URL.Path)
		assert.Equal(t, "json", r.URL.Query().Get("mode"))
		_, _ = w.Write([]byte(postingsJSON))
	}))
	defer srv.Close()

	s := newTestScraper(srv.URL, []Board{{Slug: "acme", Name: "Acme"}})
	listings, err := s.Fetch(context.Background(), types.Query{Title: "Backend Engineer"})
	require.NoError(t, err)
	require.Len(t, listings, 2)

	first := listings[0]
	assert.Equal(t, SourceName, first.Source)
	assert.Equal(t, "Backend Engineer", first.Title)
	assert.Equal(t, "Acme", first.Company)
	assert.Equal(t, "Remote - India", first.Location)
	assert.Equal(t, "Full-time", first.Experience)
	assert.Equal(t, "2026-08-20", first.DatePosted)
	assert.Equal(t, "Build APIs in Go.", first.Description)
	assert.Equal(t, "https://jobs.lever.co/acme/p-1", first.URL)

	// descriptionPlain wins when present.
	assert.Equal(t, "Payments team.", listings[1].Description)
}

func TestFetchFiltersByLocation(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(postingsJSON))
	}))
	defer srv.Close()

	s := newTestScraper(srv.URL, []Board{{Slug: "acme", Name: "Acme"}})
	listings, err := s.Fetch(context.Background(), types.Query{
		Title:    "Backend Engineer",
		Location: "Bengaluru",
		Country:  "India",
	})
	require.NoError(t, err)
	require.Len(t, listings, 2)

	// The Bengaluru posting matches directly; the country-wide remote
	// posting passes through the country fallback.
	assert.Equal(t, "Remote - India", listings[0].Location)
	assert.Equal(t, "Bengaluru", listings[1].Location)
}

func TestFetchCapsResults(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(postingsJSON))
	}))
	defer srv.Close()

	s := newTestScraper(srv.URL, []Board{{Slug: "acme", Name: "Acme"}})
	listings, err := s.Fetch(context.Background(), types.Query{Title: "Backend Engineer", ResultsWanted: 1})
	require.NoError(t, err)
	assert.Len(t, listings, 1)
}

func TestFetchContinuesPastFailingBoard(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/v0/postings/down" {
			http.Error(w, "not found", http.StatusNotFound)
			return
		}
		_, _ = w.Write([]byte(postingsJSON))
	}))
	defer srv.Close()

	s := newTestScraper(srv.URL, []Board{
		{Slug: "down", Name: "Down Inc"},
		{Slug: "acme", Name: "Acme"},
	})
	listings, err := s.Fetch(context.Background(), types.Query{Title: "Backend Engineer"})
	require.Error(t, err)
	assert.Len(t, listings, 2)
}

func TestName(t *testing.T) {
	assert.Equal(t, "lever", New(nil).Name())
}
