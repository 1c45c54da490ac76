package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestListingKey(t *testing.T) {
	tests := []struct {
		name string
		a    Listing
		b    Listing
		same bool
	}{
		{
			name: "identical listings",
			a:    Listing{Title: "Backend Engineer", Company: "Acme", URL: "https://a.com/1"},
			b:    Listing{Title: "Backend Engineer", Company: "Acme", URL: "https://a.com/1"},
			same: true,
		},
		{
			name: "case and whitespace differences",
			a:    Listing{Title: "Backend Engineer", Company: "Acme", URL: "https://a.com/1"},
			b:    Listing{Title: "  backend engineer ", Company: "ACME", URL: "https://a.com/1 "},
			same: true,
		},
		{
			name: "different link",
			a:    Listing{Title: "Backend Engineer", Company: "Acme", URL: "https://a.com/1"},
			b:    Listing{Title: "Backend Engineer", Company: "Acme", URL: "https://a.com/2"},
			same: false,
		},
		{
			name: "different company",
			a:    Listing{Title: "Backend Engineer", Company: "Acme", URL: "https://a.com/1"},
			b:    Listing{Title: "Backend Engineer", Company: "Globex", URL: "https://a.com/1"},
			same: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.same {
				assert.Equal(t, tt.a.Key(), tt.b.Key())
			} else {
				assert.NotEqual(t, tt.a.Key(), tt.b.Key())
			}
		})
	}
}

func TestListingKeyIgnoresOtherFields(t *testing.T) {
	a := Listing{Title: "Data Analyst", Company: "Acme", URL: "https://a.com/3", Source: "unstop"}
	b := Listing{Title: "Data Analyst", Company: "Acme", URL: "https://a.com/3", Source: "lever", Description: "different"}
	assert.Equal(t, a.Key(), b.Key())
}
