package main

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/job-scout/internal/scrape/greenhouse"
	"github.com/jonathan/job-scout/internal/scrape/lever"
)

func TestSplitBoard(t *testing.T) {
	tests := []struct {
		entry    string
		wantSlug string
		wantName string
	}{
		{"stripe", "stripe", "stripe"},
		{"stripe=Stripe", "stripe", "Stripe"},
		{" netflix = Netflix Inc ", "netflix", "Netflix Inc"},
		{"acme=", "acme", "acme"},
	}

	for _, tt := range tests {
		slug, name := splitBoard(tt.entry)
		assert.Equal(t, tt.wantSlug, slug, tt.entry)
		assert.Equal(t, tt.wantName, name, tt.entry)
	}
}

func TestGreenhouseBoards(t *testing.T) {
	boards := greenhouseBoards([]string{"stripe=Stripe", "", "datadog"})
	assert.Equal(t, []greenhouse.Board{
		{Slug: "stripe", Name: "Stripe"},
		{Slug: "datadog", Name: "datadog"},
	}, boards)
}

func TestLeverBoards(t *testing.T) {
	boards := leverBoards([]string{"netflix=Netflix"})
	assert.Equal(t, []lever.Board{{Slug: "netflix", Name: "Netflix"}}, boards)
}
