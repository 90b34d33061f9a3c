// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"errors"
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestAuthorAccessors(t *testing.T) {
	a := Author{Name: strPtr("Jane Doe"), Affiliation: strPtr("XYZ Company Labs")}
	assert.Equal(t, "Jane Doe", a.NameOrEmpty())
	assert.Equal(t, "XYZ Company Labs", a.AffiliationOrEmpty())

	var empty Author
	assert.Equal(t, "", empty.NameOrEmpty())
	assert.Equal(t, "", empty.AffiliationOrEmpty())
}

func TestPaperFields(t *testing.T) {
	p := Paper{
		PubmedID:                 "111",
		Title:                    "A, B and C",
		PublicationDate:          "2024 Jan",
		NonAcademicAuthors:       []string{"Jane Doe", "John Roe"},
		CompanyAffiliations:      []string{"XYZ Company Labs"},
		CorrespondingAuthorEmail: "jane@xyz.com",
	}
	got := p.Fields()
	require.Len(t, got, len(CSVHeader))
	assert.Equal(t, []string{"111", "A, B and C", "2024 Jan", "Jane Doe, John Roe", "XYZ Company Labs", "jane@xyz.com"}, got)
}

func TestPaperFieldsEmptyLists(t *testing.T) {
	p := Paper{PubmedID: "222", Title: UnknownTitle, PublicationDate: UnknownDate}
	assert.Equal(t, []string{"222", UnknownTitle, UnknownDate, "", "", ""}, p.Fields())
}

func TestErrorKinds(t *testing.T) {
	tests := []struct {
		name string
		err  error
		kind ErrorKind
	}{
		{"transport", TransportError("esearch", 503, errors.New("HTTP 503")), KindTransport},
		{"parse", ParseError("esummary", io.ErrUnexpectedEOF), KindParse},
		{"io", IOError("write csv", errors.New("permission denied")), KindIO},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wrapped := fmt.Errorf("fetching papers: %w", tt.err)
			assert.True(t, IsKind(wrapped, tt.kind))
			for _, other := range []ErrorKind{KindTransport, KindParse, KindIO} {
				if other != tt.kind {
					assert.False(t, IsKind(wrapped, other), "kind %s", other)
				}
			}
		})
	}
	assert.False(t, IsKind(errors.New("plain"), KindIO))
}

func TestErrorMessageAndUnwrap(t *testing.T) {
	err := ParseError("esummary", io.ErrUnexpectedEOF)
	assert.Equal(t, "esummary: unexpected EOF", err.Error())
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)

	noOp := &Error{Kind: KindIO, Err: errors.New("disk full")}
	assert.Equal(t, "disk full", noOp.Error())
}

func TestTransportErrorStatus(t *testing.T) {
	var e *Error
	require.True(t, errors.As(fmt.Errorf("x: %w", TransportError("esearch", 429, errors.New("too many"))), &e))
	assert.Equal(t, 429, e.StatusCode)
}

func TestPubMedConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*PubMedConfig)
		wantErr bool
	}{
		{"defaults are valid", func(*PubMedConfig) {}, false},
		{"with email", func(c *PubMedConfig) { c.Email = "me@example.org" }, false},
		{"bad email", func(c *PubMedConfig) { c.Email = "not-an-email" }, true},
		{"missing search url", func(c *PubMedConfig) { c.SearchURL = "" }, true},
		{"relative summary url", func(c *PubMedConfig) { c.SummaryURL = "esummary.fcgi" }, true},
		{"negative max results", func(c *PubMedConfig) { c.MaxResults = -1 }, true},
		{"zero timeout", func(c *PubMedConfig) { c.Timeout = 0 }, true},
		{"missing database", func(c *PubMedConfig) { c.Database = "" }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultPubMedConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
