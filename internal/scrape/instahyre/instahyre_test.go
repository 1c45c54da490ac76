package instahyre

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

const firstPage = `{
  "objects": [
    {
      "id": 501,
      "title": "Senior Backend Engineer",
      "public_url": "https://www.instahyre.com/job-501",
      "locations": "Bengaluru",
      "keywords": ["Go", "PostgreSQL"],
      "employer": {
        "company_name": "Initech",
        "instahyre_note": "Fast growing infra team. "
      }
    }
  ]
}`

func newTestScraper(url string) *Scraper {
	s := New(0)
	s.BaseURL = url
	s.limiter = rate.NewLimiter(rate.Inf, 1)
	return s
}

func TestFetchTransformsListings(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "9", r.URL.Query().Get("job_functions"))
		if r.URL.Query().Get("offset") == "0" {
			_, _ = w.Write([]byte(firstPage))
			return
		}
		_, _ = w.Write([]byte(`{"objects": []}`))
	}))
	defer srv.Close()

	s := newTestScraper(srv.URL)
	listings, err := s.Fetch(context.Background(), types.Query{})
	require.NoError(t, err)
	require.Len(t, listings, 1)

	l := listings[0]
	assert.Equal(t, SourceName, l.Source)
	assert.Equal(t, "Senior Backend Engineer", l.Title)
	assert.Equal(t, "Initech", l.Company)
	assert.Equal(t, "Bengaluru", l.Location)
	assert.Equal(t, "Go, PostgreSQL", l.Skills)
	assert.Equal(t, "Fast growing infra team.", l.Description)
	assert.Equal(t, "https://www.instahyre.com/job-501", l.URL)
}

func TestFetchAdvancesOffset(t *testing.T) {
	var offsets []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		offsets = append(offsets, r.URL.Query().Get("offset"))
		if len(offsets) == 1 {
			_, _ = w.Write([]byte(firstPage))
			return
		}
		_, _ = w.Write([]byte(`{"objects": []}`))
	}))
	defer srv.Close()

	s := newTestScraper(srv.URL)
	_, err := s.Fetch(context.Background(), types.Query{MaxPages: 3})
	require.NoError(t, err)
	assert.Equal(t, []string{"0", "1"}, offsets)
}

func TestFetchReturnsPartialOnError(t *testing.T) {
	var calls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls++
		if calls == 1 {
			_, _ = w.Write([]byte(firstPage))
			return
		}
		http.Error(w, "blocked", http.StatusForbidden)
	}))
	defer srv.Close()

	s := newTestScraper(srv.URL)
	listings, err := s.Fetch(context.Background(), types.Query{MaxPages: 3})
	require.Error(t, err)
	assert.Len(t, listings, 1)
}

func TestDefaults(t *testing.T) {
	s := New(0)
	assert.Equal(t, DefaultJobFunction, s.JobFunction)
	assert.Equal(t, "instahyre", s.Name())
	assert.True(t, s.TitleAgnostic())
}
