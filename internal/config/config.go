// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
)

// validCountries lists the country names the boards accept for location
// scoping. Lookup is case-insensitive.
var validCountries = map[string]struct{}{
	"argentina": {}, "australia": {}, "austria": {}, "bahrain": {}, "belgium": {},
	"bulgaria": {}, "brazil": {}, "canada": {}, "chile": {}, "china": {},
	"colombia": {}, "costa rica": {}, "croatia": {}, "cyprus": {},
	"czech republic": {}, "czechia": {}, "denmark": {}, "ecuador": {},
	"egypt": {}, "estonia": {}, "finland": {}, "france": {}, "germany": {},
	"greece": {}, "hong kong": {}, "hungary": {}, "india": {}, "indonesia": {},
	"ireland": {}, "israel": {}, "italy": {}, "japan": {}, "kuwait": {},
	"latvia": {}, "lithuania": {}, "luxembourg": {}, "malaysia": {}, "malta": {},
	"mexico": {}, "morocco": {}, "netherlands": {}, "new zealand": {},
	"nigeria": {}, "norway": {}, "oman": {}, "pakistan": {}, "panama": {},
	"peru": {}, "philippines": {}, "poland": {}, "portugal": {}, "qatar": {},
	"romania": {}, "saudi arabia": {}, "singapore": {}, "slovakia": {},
	"slovenia": {}, "south africa": {}, "south korea": {}, "spain": {},
	"sweden": {}, "switzerland": {}, "taiwan": {}, "thailand": {},
	"türkiye": {}, "turkey": {}, "ukraine": {}, "united arab emirates": {},
	"uk": {}, "united kingdom": {}, "usa": {}, "us": {}, "united states": {},
	"uruguay": {}, "venezuela": {}, "vietnam": {},
}

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Inputs
	Resume    string `json:"resume,omitempty"`    // Path to resume file (.txt, .md, .pdf)
	Interests string `json:"interests,omitempty"` // Free-text career interests for the title suggester
	Location  string `json:"location,omitempty"`  // Preferred location string passed to sources
	Country   string `json:"country,omitempty" validate:"omitempty,country"`

	// Search limits
	MaxPages      int `json:"max_pages,omitempty" validate:"min=0,max=50"`
	ResultsWanted int `json:"results_wanted,omitempty" validate:"min=0,max=1000"`

	// Sources
	SourcesEnabled       []string `json:"sources_enabled,omitempty"`
	GreenhouseBoards     []string `json:"greenhouse_boards,omitempty"`
	LeverBoards          []string `json:"lever_boards,omitempty"`
	InstahyreJobFunction int      `json:"instahyre_job_function,omitempty" validate:"min=0"`

	// Output
	OutputDir string `json:"output_dir,omitempty"` // Directory for exported spreadsheets

	// Behavior
	APIKey     string `json:"api_key,omitempty"`     // Gemini API key
	UseBrowser bool   `json:"use_browser,omitempty"` // Use headless browser for SPA boards
	Verbose    bool   `json:"verbose,omitempty"`     // Print detailed progress information
}

// DefaultConfig returns the built-in defaults applied before flags and files.
func DefaultConfig() Config {
	return Config{
		Country:       "India",
		MaxPages:      5,
		ResultsWanted: 50,
		OutputDir:     "output",
	}
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Registration only fails for an empty tag name.
	_ = v.RegisterValidation("country", func(fl validator.FieldLevel) bool {
		_, ok := validCountries[strings.ToLower(strings.TrimSpace(fl.Field().String()))]
		return ok
	})
	return v
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
// Note: This doesn't check for required fields since those are handled
// by CLI flag validation after merging.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		if verrs, ok := err.(validator.ValidationErrors); ok && len(verrs) > 0 {
			first := verrs[0]
			return fmt.Errorf("config error: field %q failed %q validation", first.Field(), first.Tag())
		}
		return fmt.Errorf("config error: %w", err)
	}

	if c.Resume != "" {
		if _, err := os.Stat(c.Resume); os.IsNotExist(err) {
			return fmt.Errorf("config error: resume file not found: %s", c.Resume)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with zero-valued fields filled from
// defaults. This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Resume == "" {
		result.Resume = defaults.Resume
	}
	if result.Interests == "" {
		result.Interests = defaults.Interests
	}
	if result.Location == "" {
		result.Location = defaults.Location
	}
	if result.Country == "" {
		result.Country = defaults.Country
	}
	if result.OutputDir == "" {
		result.OutputDir = defaults.OutputDir
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.MaxPages == 0 {
		result.MaxPages = defaults.MaxPages
	}
	if result.ResultsWanted == 0 {
		result.ResultsWanted = defaults.ResultsWanted
	}
	if result.InstahyreJobFunction == 0 {
		result.InstahyreJobFunction = defaults.InstahyreJobFunction
	}
	if len(result.SourcesEnabled) == 0 {
		result.SourcesEnabled = defaults.SourcesEnabled
	}
	if len(result.GreenhouseBoards) == 0 {
		result.GreenhouseBoards = defaults.GreenhouseBoards
	}
	if len(result.LeverBoards) == 0 {
		result.LeverBoards = defaults.LeverBoards
	}
	if !result.UseBrowser {
		result.UseBrowser = defaults.UseBrowser
	}
	if !result.Verbose {
		result.Verbose = defaults.Verbose
	}

	return result
}
