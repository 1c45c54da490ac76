package types

import "strings"

// Query carries the search parameters handed to every source adapter.
// Adapters are free to ignore fields their backing site cannot express.
type Query struct {
	// Title is the job title being searched for.
	Title string
	// Location is an optional location filter.
	Location string
	// Country scopes boards that are segmented per country.
	Country string
	// MaxPages bounds pagination for sources that page through results.
	// Zero means the adapter's default.
	MaxPages int
	// ResultsWanted bounds the number of listings per source per title.
	// Zero means the adapter's default.
	ResultsWanted int
}

// MatchesTitle reports whether a listing title is a plausible hit for the
// queried title. Company boards have no search endpoint, so those adapters
// filter locally: either the whole phrase appears in the listing title, or
// every word of the query does.
func (q Query) MatchesTitle(listingTitle string) bool {
	listing := strings.ToLower(listingTitle)
	query := strings.ToLower(strings.TrimSpace(q.Title))
	if query == "" {
		return true
	}
	if strings.Contains(listing, query) {
		return true
	}
	for _, tok := range strings.Fields(query) {
		if !strings.Contains(listing, tok) {
			return false
		}
	}
	return true
}

// MatchesLocation reports whether a listing location is a plausible hit for
// the queried location. An empty query location matches everything. A
// country-wide row (the listing location names the queried country, as
// remote roles do) also passes, so a city filter keeps "Remote - India".
func (q Query) MatchesLocation(listingLocation string) bool {
	query := strings.ToLower(strings.TrimSpace(q.Location))
	if query == "" {
		return true
	}

	listing := strings.ToLower(listingLocation)
	if strings.Contains(listing, query) {
		return true
	}

	country := strings.ToLower(strings.TrimSpace(q.Country))
	return country != "" && strings.Contains(listing, country)
}
