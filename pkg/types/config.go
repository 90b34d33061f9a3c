// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// Default E-utilities endpoints and client settings.
const (
	DefaultSearchURL  = "https://eutils.ncbi.nlm.nih.gov/entrez/eutils/esearch.fcgi"
	DefaultSummaryURL = "https://eutils.ncbi.nlm.nih.gov/entrez/eutils/esummary.fcgi"
	DefaultDatabase   = "pubmed"
	DefaultTimeout    = 30 * time.Second
	DefaultUserAgent  = "pubmed-papers/0.1"
	DefaultTool       = "get-papers-list"
)

// HTTPConfig holds shared HTTP settings used by stages that make network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout" mapstructure:"timeout" validate:"gt=0"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "pubmed-papers/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent" mapstructure:"user_agent"`
}

// PubMedConfig holds settings for the search and summary stages.
type PubMedConfig struct {
	HTTPConfig `yaml:",inline" mapstructure:",squash"`

	// SearchURL is the ESearch endpoint.
	SearchURL string `json:"search_url" yaml:"search_url" mapstructure:"search_url" validate:"required,url"`

	// SummaryURL is the ESummary endpoint.
	SummaryURL string `json:"summary_url" yaml:"summary_url" mapstructure:"summary_url" validate:"required,url"`

	// Database is the Entrez database queried (always "pubmed" in practice).
	Database string `json:"database" yaml:"database" mapstructure:"database" validate:"required"`

	// APIKey is sent as the api_key query parameter when non-empty.
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty" mapstructure:"api_key"`

	// Email and Tool identify the caller to NCBI. Both are optional.
	Email string `json:"email,omitempty" yaml:"email,omitempty" mapstructure:"email" validate:"omitempty,email"`
	Tool  string `json:"tool,omitempty" yaml:"tool,omitempty" mapstructure:"tool"`

	// MaxResults is sent as retmax when positive. Zero leaves the upstream
	// default in place.
	MaxResults int `json:"max_results" yaml:"max_results" mapstructure:"max_results" validate:"gte=0"`
}

// DefaultPubMedConfig returns a config pointing at the public NCBI endpoints.
func DefaultPubMedConfig() PubMedConfig {
	return PubMedConfig{
		HTTPConfig: HTTPConfig{
			Timeout:   DefaultTimeout,
			UserAgent: DefaultUserAgent,
		},
		SearchURL:  DefaultSearchURL,
		SummaryURL: DefaultSummaryURL,
		Database:   DefaultDatabase,
		Tool:       DefaultTool,
	}
}

// Validate checks the config with struct tags.
func (c PubMedConfig) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid pubmed config: %w", err)
	}
	return nil
}

// OutputFormat selects how papers are rendered on the console.
type OutputFormat string

const (
	FormatRecords OutputFormat = "records"
	FormatTable   OutputFormat = "table"
	FormatJSON    OutputFormat = "json"
	FormatYAML    OutputFormat = "yaml"
)
