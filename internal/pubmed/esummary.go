// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pubmed

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/pdiddy/pubmed-papers/pkg/types"
)

// uidsKey is the bookkeeping entry in ESummary's result map that lists all
// returned UIDs. It is not a record.
const uidsKey = "uids"

// FetchSummaries retrieves summary records for ids with a single ESummary
// request. An empty ids slice returns an empty result without any request.
func (c *Client) FetchSummaries(ctx context.Context, ids []string) ([]types.Record, error) {
	if len(ids) == 0 {
		return []types.Record{}, nil
	}

	params := c.baseParams()
	params.Set("id", strings.Join(ids, ","))

	var resp esummaryResponse
	if err := c.getJSON(ctx, "esummary", c.Config.SummaryURL, params, &resp); err != nil {
		return nil, err
	}
	return decodeSummaries(resp)
}

// decodeSummaries turns the result map into records. Entries listed in the
// uids sentinel come first in that order; any others follow sorted by key.
func decodeSummaries(resp esummaryResponse) ([]types.Record, error) {
	if resp.Result == nil {
		return nil, types.ParseError("esummary", fmt.Errorf("response has no result object"))
	}

	var order []string
	if raw, ok := resp.Result[uidsKey]; ok {
		// A malformed sentinel only costs ordering.
		_ = json.Unmarshal(raw, &order)
	}

	keys := make([]string, 0, len(resp.Result))
	listed := make(map[string]bool, len(order))
	for _, id := range order {
		if _, ok := resp.Result[id]; ok && id != uidsKey && !listed[id] {
			listed[id] = true
			keys = append(keys, id)
		}
	}
	var rest []string
	for id := range resp.Result {
		if id != uidsKey && !listed[id] {
			rest = append(rest, id)
		}
	}
	sort.Strings(rest)
	keys = append(keys, rest...)

	records := make([]types.Record, 0, len(keys))
	for _, id := range keys {
		rec, err := decodeRecord(id, resp.Result[id])
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, nil
}

// decodeRecord applies the per-field defaults to one ESummary entry.
func decodeRecord(id string, raw json.RawMessage) (types.Record, error) {
	var doc esummaryDoc
	if err := json.Unmarshal(raw, &doc); err != nil {
		return types.Record{}, types.ParseError("esummary", fmt.Errorf("decoding record %s: %w", id, err))
	}

	rec := types.Record{
		ID:      id,
		Title:   types.UnknownTitle,
		PubDate: types.UnknownDate,
		Authors: make([]types.Author, 0, len(doc.Authors)),
		Error:   doc.Error,
	}
	if doc.Title != nil {
		rec.Title = *doc.Title
	}
	if doc.PubDate != nil {
		rec.PubDate = *doc.PubDate
	}
	for _, a := range doc.Authors {
		author := types.Author{
			Name:        a.Name,
			Affiliation: a.Affiliation,
		}
		if a.Email.present {
			email := a.Email.value
			author.Email = &email
		}
		rec.Authors = append(rec.Authors, author)
	}
	return rec, nil
}

// ESummary JSON structures. Pointer fields distinguish absent from empty.
type esummaryResponse struct {
	Result map[string]json.RawMessage `json:"result"`
}

type esummaryDoc struct {
	UID     string           `json:"uid"`
	Title   *string          `json:"title"`
	PubDate *string          `json:"pubdate"`
	Authors []esummaryAuthor `json:"authors"`
	Error   string           `json:"error"`
}

type esummaryAuthor struct {
	Name        *string       `json:"name"`
	Affiliation *string       `json:"affiliation"`
	Email       presentString `json:"email"`
}

// presentString records that a key appeared in the object, even when its
// value is null. A null email still ends the corresponding-author search.
type presentString struct {
	present bool
	value   string
}

func (p *presentString) UnmarshalJSON(data []byte) error {
	p.present = true
	if string(data) == "null" {
		return nil
	}
	return json.Unmarshal(data, &p.value)
}
