// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pubmed

import (
	"context"
	"errors"
	"strconv"
	"strings"
)

// ErrEmptyQuery is returned for a blank search term. No request is sent.
var ErrEmptyQuery = errors.New("query is empty: provide a PubMed search term")

// SearchIDs sends term to ESearch and returns the matching PMIDs in the
// order NCBI ranks them. A response without esearchresult.idlist yields an
// empty slice, not an error. A blank term returns ErrEmptyQuery.
func (c *Client) SearchIDs(ctx context.Context, term string) ([]string, error) {
	if strings.TrimSpace(term) == "" {
		return nil, ErrEmptyQuery
	}

	params := c.baseParams()
	params.Set("term", term)
	if c.Config.MaxResults > 0 {
		params.Set("retmax", strconv.Itoa(c.Config.MaxResults))
	}

	var resp esearchResponse
	if err := c.getJSON(ctx, "esearch", c.Config.SearchURL, params, &resp); err != nil {
		return nil, err
	}

	if resp.Result == nil {
		return []string{}, nil
	}
	if resp.Result.Error != "" {
		c.logger().Warn("esearch reported an error", "error", resp.Result.Error)
	}
	if resp.Result.IDList == nil {
		return []string{}, nil
	}
	return resp.Result.IDList, nil
}

// ESearch JSON structures. Only the fields the pipeline reads are declared.
type esearchResponse struct {
	Result *esearchResult `json:"esearchresult"`
}

type esearchResult struct {
	Count  string   `json:"count"`
	IDList []string `json:"idlist"`
	Error  string   `json:"ERROR"`
}
