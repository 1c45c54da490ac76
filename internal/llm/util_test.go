package llm

import (
	"testing"
)

func TestCleanJSONBlock(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "json code block",
			input:    "```json\n[\"Backend Engineer\"]\n```",
			expected: `["Backend Engineer"]`,
		},
		{
			name:     "generic code block",
			input:    "```\n{\"key\": \"value\"}\n```",
			expected: `{"key": "value"}`,
		},
		{
			name:     "code block with language identifier",
			input:    "```javascript\n{\"key\": \"value\"}\n```",
			expected: `{"key": "value"}`,
		},
		{
			name:     "plain JSON",
			input:    `{"key": "value"}`,
			expected: `{"key": "value"}`,
		},
		{
			name:     "preamble before array",
			input:    "Here are the titles:\n[\"Data Analyst\", \"ML Engineer\"]",
			expected: `["Data Analyst", "ML Engineer"]`,
		},
		{
			name:     "trailing chatter after object",
			input:    "{\"key\": \"value\"}\n\nLet me know if you need anything else!",
			expected: `{"key": "value"}`,
		},
		{
			name:     "nested objects",
			input:    "Output:\n{\"outer\": {\"inner\": \"value\"}}",
			expected: `{"outer": {"inner": "value"}}`,
		},
		{
			name:     "braces inside strings",
			input:    `{"note": "uses { and ] inside"} trailing`,
			expected: `{"note": "uses { and ] inside"}`,
		},
		{
			name:     "no JSON at all",
			input:    "sorry, I cannot help with that",
			expected: "sorry, I cannot help with that",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := CleanJSONBlock(tt.input)
			if result != tt.expected {
				t.Errorf("CleanJSONBlock() = %q, want %q", result, tt.expected)
			}
		})
	}
}

func TestGetModel(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.GetModel(TierLite) == "" {
		t.Error("expected a default model for TierLite")
	}
	if cfg.GetModel(TierStandard) == "" {
		t.Error("expected a default model for TierStandard")
	}
	if got := cfg.GetModel(ModelTier("advanced")); got != "" {
		t.Errorf("expected no model for unknown tier, got %q", got)
	}

	var nilCfg *Config
	if got := nilCfg.GetModel(TierLite); got != "" {
		t.Errorf("expected empty model from nil config, got %q", got)
	}
}
