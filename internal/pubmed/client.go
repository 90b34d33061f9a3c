// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pubmed queries the NCBI E-utilities for PubMed papers. A fetch is
// two sequential requests: ESearch turns a term into PMIDs, then ESummary
// returns per-paper metadata that is reduced to output rows.
package pubmed

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/pdiddy/pubmed-papers/internal/httputil"
	"github.com/pdiddy/pubmed-papers/pkg/types"
)

// Client issues ESearch and ESummary requests. A nil Logger discards
// progress messages.
type Client struct {
	HTTP   *http.Client
	Config types.PubMedConfig
	Logger *slog.Logger
}

// NewClient validates cfg and returns a Client whose HTTP client applies
// cfg.Timeout. A nil logger discards output.
func NewClient(cfg types.PubMedConfig, logger *slog.Logger) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = discardLogger()
	}
	return &Client{
		HTTP:   &http.Client{Timeout: cfg.Timeout},
		Config: cfg,
		Logger: logger,
	}, nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func (c *Client) logger() *slog.Logger {
	if c.Logger == nil {
		return discardLogger()
	}
	return c.Logger
}

// FetchPapers runs the whole pipeline for term: search, summary, and row
// derivation. Transport and parse failures surface as *types.Error.
func (c *Client) FetchPapers(ctx context.Context, term string) ([]types.Paper, error) {
	log := c.logger()
	log.Debug("fetching papers", "query", term)

	ids, err := c.SearchIDs(ctx, term)
	if err != nil {
		return nil, err
	}
	log.Debug("found papers", "count", len(ids))

	records, err := c.FetchSummaries(ctx, ids)
	if err != nil {
		return nil, err
	}
	for _, r := range records {
		if r.Error != "" {
			log.Debug("summary entry reported an error", "pmid", r.ID, "error", r.Error)
		}
	}

	return Papers(records), nil
}

// baseParams returns the query parameters shared by both endpoints.
func (c *Client) baseParams() url.Values {
	params := url.Values{
		"db":      {c.Config.Database},
		"retmode": {"json"},
	}
	if c.Config.APIKey != "" {
		params.Set("api_key", c.Config.APIKey)
	}
	if c.Config.Tool != "" {
		params.Set("tool", c.Config.Tool)
	}
	if c.Config.Email != "" {
		params.Set("email", c.Config.Email)
	}
	return params
}

func (c *Client) getJSON(ctx context.Context, op, endpoint string, params url.Values, v any) error {
	reqURL := endpoint + "?" + params.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return types.TransportError(op, 0, fmt.Errorf("creating request: %w", err))
	}
	if c.Config.UserAgent != "" {
		req.Header.Set("User-Agent", c.Config.UserAgent)
	}

	c.logger().Debug("request", "op", op, "url", redact(reqURL))
	return httputil.GetJSON(ctx, c.HTTP, req, op, v)
}

// redact hides the api_key value in URLs written to logs.
func redact(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}
	q := u.Query()
	if q.Get("api_key") == "" {
		return rawURL
	}
	q.Set("api_key", "REDACTED")
	u.RawQuery = q.Encode()
	return u.String()
}
