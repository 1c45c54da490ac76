package greenhouse

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

const boardHTML = `<html><body>
<section>
  <div class="opening">
    <a data-mapped="true" href="/acme/jobs/101">Backend Engineer</a>
    <span class="location">Remote</span>
  </div>
  <div class="opening">
    <a href="/acme/jobs/102">Senior Backend Engineer</a>
    <span class="location">Bengaluru, India</span>
  </div>
  <div class="opening">
    <a href="/acme/jobs/103">Product Designer</a>
    <span class="location">Remote</span>
  </div>
  <div class="opening">
    <a href="https://boards.greenhouse.io/acme/jobs/104">Staff Backend Engineer</a>
  </div>
</section>
</body></html>`

func newTestScraper(url string, boards []Board) *Scraper {
	s := New(boards)
	s.BaseURL = url
	s.limiter = rate.NewLimiter(rate.Inf, 1)
	return s
}

func TestFetchFiltersByTitle(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/acme", r.URL.Path)
		_, _ = w.Write([]byte(boardHTML))
	}))
	defer srv.Close()

	s := newTestScraper(srv.URL, []Board{{Slug: "acme", Name: "Acme"}})
	listings, err := s.Fetch(context.Background(), types.Query{Title: "Backend Engineer"})
	require.NoError(t, err)
	require.Len(t, listings, 3)

	first := listings[0]
	assert.Equal(t, SourceName, first.Source)
	assert.Equal(t, "Backend Engineer", first.Title)
	assert.Equal(t, "Acme", first.Company)
	assert.Equal(t, "Remote", first.Location)
	assert.Equal(t, srv.URL+"/acme/jobs/101", first.URL)

	// Absolute hrefs pass through untouched.
	assert.Equal(t, "https://boards.greenhouse.io/acme/jobs/104", listings[2].URL)

	for _, l := range listings {
		assert.NotEqual(t, "Product Designer", l.Title)
	}
}

func TestFetchFiltersByLocation(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(boardHTML))
	}))
	defer srv.Close()

	s := newTestScraper(srv.URL, []Board{{Slug: "acme", Name: "Acme"}})
	listings, err := s.Fetch(context.Background(), types.Query{
		Title:    "Backend Engineer",
		Location: "Bengaluru",
		Country:  "India",
	})
	require.NoError(t, err)
	require.Len(t, listings, 1)
	assert.Equal(t, "Senior Backend Engineer", listings[0].Title)
	assert.Equal(t, "Bengaluru, India", listings[0].Location)
}

func TestFetchCapsResults(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(boardHTML))
	}))
	defer srv.Close()

	s := newTestScraper(srv.URL, []Board{{Slug: "acme", Name: "Acme"}})
	listings, err := s.Fetch(context.Background(), types.Query{Title: "Backend Engineer", ResultsWanted: 1})
	require.NoError(t, err)
	assert.Len(t, listings, 1)
}

func TestFetchContinuesPastFailingBoard(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/down" {
			http.Error(w, "gone", http.StatusNotFound)
			return
		}
		_, _ = w.Write([]byte(boardHTML))
	}))
	defer srv.Close()

	s := newTestScraper(srv.URL, []Board{
		{Slug: "down", Name: "Down Inc"},
		{Slug: "acme", Name: "Acme"},
	})
	listings, err := s.Fetch(context.Background(), types.Query{Title: "Backend Engineer"})
	// The failing board surfaces as an error, but the healthy board's
	// listings are still returned.
	require.Error(t, err)
	assert.Len(t, listings, 3)
}

func TestName(t *testing.T) {
	assert.Equal(t, "greenhouse", New(nil).Name())
}
