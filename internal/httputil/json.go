// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package httputil provides HTTP helpers shared across stages.
package httputil

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/pdiddy/pubmed-papers/pkg/types"
)

// maxErrorBody bounds how much of a non-success body is quoted in errors.
const maxErrorBody = 256

// GetJSON executes req once and decodes the JSON response body into v.
//
// Network failures and non-2xx statuses return a types.KindTransport error;
// the body of a failed response is drained and a short prefix is quoted in
// the message. Bodies that do not decode into v, or that carry anything
// after the top-level value, return types.KindParse. op labels
// the error (e.g. "esearch"). There is no retry.
func GetJSON(ctx context.Context, client *http.Client, req *http.Request, op string, v any) error {
	if client == nil {
		client = http.DefaultClient
	}

	resp, err := client.Do(req.WithContext(ctx))
	if err != nil {
		return types.TransportError(op, 0, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		io.Copy(io.Discard, resp.Body)
		msg := fmt.Sprintf("HTTP %d", resp.StatusCode)
		if s := strings.TrimSpace(string(snippet)); s != "" {
			msg += ": " + s
		}
		return types.TransportError(op, resp.StatusCode, errors.New(msg))
	}

	dec := json.NewDecoder(resp.Body)
	if err := dec.Decode(v); err != nil {
		return types.ParseError(op, fmt.Errorf("decoding JSON body: %w", err))
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		return types.ParseError(op, errors.New("decoding JSON body: unexpected data after top-level value"))
	}
	return nil
}
