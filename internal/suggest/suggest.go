// Package suggest derives candidate job titles from a resume and the
// candidate's stated interests using the LLM client.
package suggest

import (
	"context"
	"encoding/json"
	"strconv"
	"strings"

	"github.com/jonathan/job-scout/internal/llm"
	"github.com/jonathan/job-scout/internal/prompts"
	"github.com/jonathan/job-scout/internal/schemas"
)

// MaxTitles caps how many titles the suggester returns. Every title fans out
// to every enabled source, so the cap bounds the whole run.
const MaxTitles = 10

// Titles asks the model for job titles matching the resume and interests.
// The result is ordered as the model returned it, with duplicates removed.
// A single attempt is made; callers decide whether a failure is fatal.
func Titles(ctx context.Context, client llm.Client, resumeText, interests string) ([]string, error) {
	if strings.TrimSpace(resumeText) == "" {
		return nil, &InputError{Message: "resume text is required"}
	}
	if strings.TrimSpace(interests) == "" {
		return nil, &InputError{Message: "interests are required"}
	}

	prompt := buildPrompt(resumeText, interests)

	// Title suggestion is a short list-generation task; the lite tier is
	// enough for it.
	response, err := client.GenerateJSON(ctx, prompt, llm.TierLite)
	if err != nil {
		return nil, &APICallError{Message: "failed to generate titles", Cause: err}
	}

	if err := schemas.Validate(schemas.JobTitles, []byte(response)); err != nil {
		return nil, &ParseError{Message: "response failed schema validation", Cause: err}
	}

	var raw []string
	if err := json.Unmarshal([]byte(response), &raw); err != nil {
		return nil, &ParseError{Message: "response is not a JSON string array", Cause: err}
	}

	titles := dedupeTitles(raw)
	if len(titles) == 0 {
		return nil, &ParseError{Message: "response contained no usable titles"}
	}
	return titles, nil
}

func buildPrompt(resumeText, interests string) string {
	template := prompts.MustGet("suggest.json", "suggest-job-titles")
	return prompts.Format(template, map[string]string{
		"Resume":    resumeText,
		"Interests": interests,
		"MaxTitles": strconv.Itoa(MaxTitles),
	})
}

// dedupeTitles trims entries, drops empties, and removes case-insensitive
// duplicates while preserving the model's ordering.
func dedupeTitles(raw []string) []string {
	seen := make(map[string]bool, len(raw))
	titles := make([]string, 0, len(raw))
	for _, t := range raw {
		t = strings.TrimSpace(t)
		if t == "" {
			continue
		}
		key := strings.ToLower(t)
		if seen[key] {
			continue
		}
		seen[key] = true
		titles = append(titles, t)
		if len(titles) == MaxTitles {
			break
		}
	}
	return titles
}
