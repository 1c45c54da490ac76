// Package normalize merges the listings collected from all sources into one
// clean, deduplicated table.
package normalize

import (
	"strings"

	"github.com/jonathan/job-scout/internal/types"
)

// CleanText collapses runs of whitespace (including non-breaking spaces) into
// single spaces and trims the result.
func CleanText(s string) string {
	s = strings.ReplaceAll(s, " ", " ")
	s = strings.Join(strings.Fields(s), " ")
	return strings.TrimSpace(s)
}

// NormalizeLocation cleans a raw location string: label prefixes are removed
// and repeated comma-separated segments are collapsed.
func NormalizeLocation(loc string) string {
	loc = CleanText(loc)
	if loc == "" {
		return ""
	}

	loc = strings.TrimPrefix(loc, "Location:")
	loc = strings.TrimPrefix(loc, "LOCATIONS:")
	loc = strings.TrimSpace(loc)

	parts := strings.Split(loc, ",")
	seen := map[string]bool{}
	var out []string
	for _, p := range parts {
		p = CleanText(p)
		if p == "" {
			continue
		}
		k := strings.ToLower(p)
		if seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, p)
	}
	return strings.Join(out, ", ")
}

// Dedupe cleans every listing, drops rows missing a title or link, and
// removes duplicates by the (title, company, link) key. The first occurrence
// of a duplicate wins; insertion order is preserved.
func Dedupe(listings []types.Listing) types.Table {
	seen := make(map[string]bool, len(listings))
	table := make(types.Table, 0, len(listings))

	for _, l := range listings {
		l = clean(l)
		if l.Title == "" || l.URL == "" {
			continue
		}
		key := l.Key()
		if seen[key] {
			continue
		}
		seen[key] = true
		table = append(table, l)
	}
	return table
}

// clean trims every field and fills placeholders for absent optional values.
func clean(l types.Listing) types.Listing {
	l.Source = CleanText(l.Source)
	l.Title = CleanText(l.Title)
	l.Company = CleanText(l.Company)
	l.Location = NormalizeLocation(l.Location)
	l.DatePosted = CleanText(l.DatePosted)
	l.Experience = CleanText(l.Experience)
	l.SalaryRange = CleanText(l.SalaryRange)
	l.Skills = CleanText(l.Skills)
	l.Description = strings.TrimSpace(l.Description)
	l.URL = strings.TrimSpace(l.URL)

	if l.Location == "" {
		l.Location = types.NotDisclosed
	}
	if l.DatePosted == "" {
		l.DatePosted = types.NotDisclosed
	}
	if l.Experience == "" {
		l.Experience = types.NotDisclosed
	}
	if l.SalaryRange == "" {
		l.SalaryRange = types.NotDisclosed
	}
	if l.Skills == "" {
		l.Skills = types.NotDisclosed
	}
	return l
}
