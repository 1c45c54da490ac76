// Package types defines the shared data structures passed between pipeline stages.
package types

import "strings"

// NotDisclosed is the placeholder value for optional fields a source did not provide.
const NotDisclosed = "Not Disclosed"

// Listing is the canonical job listing record. Every source adapter maps its
// own payload into this shape; the normalizer and exporter only ever see it.
type Listing struct {
	Source      string `json:"source"`
	Title       string `json:"title"`
	Company     string `json:"company"`
	Location    string `json:"location"`
	DatePosted  string `json:"date_posted"`
	Experience  string `json:"experience"`
	SalaryRange string `json:"salary_range"`
	Skills      string `json:"skills"`
	Description string `json:"description"`
	URL         string `json:"url"`
}

// Key returns the deduplication key for the listing: the (title, company, link)
// triple, case-folded and trimmed. Two listings with equal keys describe the
// same posting.
func (l Listing) Key() string {
	parts := []string{l.Title, l.Company, l.URL}
	for i, p := range parts {
		parts[i] = strings.ToLower(strings.TrimSpace(p))
	}
	return strings.Join(parts, "|")
}

// Table is an ordered collection of listings. Order is merge order: the first
// occurrence of a duplicate wins and keeps its position.
type Table []Listing
