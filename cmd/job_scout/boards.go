package main

import (
	"strings"

	"github.com/jonathan/job-scout/internal/scrape/greenhouse"
	"github.com/jonathan/job-scout/internal/scrape/lever"
)

// splitBoard parses a board entry of the form "slug" or "slug=Display Name".
func splitBoard(entry string) (slug, name string) {
	slug, name, found := strings.Cut(entry, "=")
	slug = strings.TrimSpace(slug)
	name = strings.TrimSpace(name)
	if !found || name == "" {
		name = slug
	}
	return slug, name
}

func greenhouseBoards(entries []string) []greenhouse.Board {
	boards := make([]greenhouse.Board, 0, len(entries))
	for _, entry := range entries {
		slug, name := splitBoard(entry)
		if slug == "" {
			continue
		}
		boards = append(boards, greenhouse.Board{Slug: slug, Name: name})
	}
	return boards
}

func leverBoards(entries []string) []lever.Board {
	boards := make([]lever.Board, 0, len(entries))
	for _, entry := range entries {
		slug, name := splitBoard(entry)
		if slug == "" {
			continue
		}
		boards = append(boards, lever.Board{Slug: slug, Name: name})
	}
	return boards
}
