package observability

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/job-scout/internal/types"
)

func TestPrintSuggestedTitles(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintSuggestedTitles([]string{
		"Data Engineer", "Backend Engineer", "Platform Engineer",
		"Analytics Engineer", "ML Engineer", "SRE", "DevOps Engineer",
	})

	out := buf.String()
	assert.Contains(t, out, "SUGGESTED JOB TITLES")
	assert.Contains(t, out, "Searching 7 titles")
	assert.Contains(t, out, "Data Engineer")
	assert.Contains(t, out, "... and 2 more")
	assert.NotContains(t, out, "DevOps Engineer")
}

func TestPrintSuggestedTitlesEmpty(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintSuggestedTitles(nil)
	assert.Empty(t, buf.String())
}

func TestPrintSourceCounts(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintSourceCounts(
		map[string]int{"unstop": 12, "greenhouse": 3},
		map[string]error{"instahyre": errors.New("status 503")},
	)

	out := buf.String()
	assert.Contains(t, out, "SOURCE RESULTS")
	assert.Contains(t, out, "unstop")
	assert.Contains(t, out, "12 listings")
	assert.Contains(t, out, "⚠ instahyre: status 503")
}

func TestPrintSummary(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	table := types.Table{{Title: "Data Engineer", URL: "https://x"}}
	p.PrintSummary(table, "/tmp/out/job_listings_2026-03-14_09-26-53.xlsx", 42*time.Second)

	out := buf.String()
	assert.Contains(t, out, "RUN COMPLETE")
	assert.Contains(t, out, "Listings: 1")
	assert.Contains(t, out, "Elapsed:  42s")
}
