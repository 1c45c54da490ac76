// Package llm provides the Gemini client abstraction shared by AI-backed steps.
package llm

// ModelTier represents the capability level of a model.
type ModelTier string

const (
	// TierLite is for simple tasks: classification, short list generation.
	TierLite ModelTier = "lite"
	// TierStandard is for moderate reasoning over longer inputs, such as a
	// full resume.
	TierStandard ModelTier = "standard"
)

// Config holds the model configuration for the application.
type Config struct {
	Models map[ModelTier]string
}

// DefaultConfig returns the default Gemini model configuration.
func DefaultConfig() *Config {
	return &Config{
		Models: map[ModelTier]string{
			TierLite:     "gemini-2.5-flash-lite",
			TierStandard: "gemini-2.5-flash",
		},
	}
}

// GetModel returns the model name configured for a tier, or empty string if
// the tier is unknown.
func (c *Config) GetModel(tier ModelTier) string {
	if c == nil || c.Models == nil {
		return ""
	}
	return c.Models[tier]
}
