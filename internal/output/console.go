// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/pubmed-papers/pkg/types"
)

// Format writes papers to w in the requested console format. An empty format
// selects FormatRecords.
func Format(w io.Writer, papers []types.Paper, format types.OutputFormat) error {
	switch format {
	case types.FormatRecords, "":
		return FormatRecords(w, papers)
	case types.FormatTable:
		return FormatTable(w, papers)
	case types.FormatJSON:
		return FormatJSON(w, papers)
	case types.FormatYAML:
		return FormatYAML(w, papers)
	default:
		return fmt.Errorf("unsupported format %q: use records, table, json, or yaml", format)
	}
}

// FormatRecords writes one line per paper with every column labelled.
func FormatRecords(w io.Writer, papers []types.Paper) error {
	for _, p := range papers {
		fields := p.Fields()
		parts := make([]string, len(fields))
		for i, v := range fields {
			parts[i] = types.CSVHeader[i] + ": " + v
		}
		if _, err := fmt.Fprintln(w, strings.Join(parts, " | ")); err != nil {
			return err
		}
	}
	return nil
}

// FormatTable writes papers as a fixed-width table with truncated columns.
func FormatTable(w io.Writer, papers []types.Paper) error {
	if len(papers) == 0 {
		_, err := fmt.Fprintln(w, "No results found.")
		return err
	}

	fmt.Fprintf(w, "%-10s  %-50s  %-12s  %-25s  %-25s  %s\n",
		"PubmedID", "Title", "Date", "Non-academic", "Company", "Email")
	fmt.Fprintln(w, strings.Repeat("-", 150))

	for _, p := range papers {
		fmt.Fprintf(w, "%-10s  %-50s  %-12s  %-25s  %-25s  %s\n",
			p.PubmedID,
			truncate(p.Title, 50),
			truncate(p.PublicationDate, 12),
			truncate(p.NonAcademicAuthorsText(), 25),
			truncate(p.CompanyAffiliationsText(), 25),
			p.CorrespondingAuthorEmail)
	}

	_, err := fmt.Fprintf(w, "\n%d results\n", len(papers))
	return err
}

// FormatJSON writes papers as indented JSON.
func FormatJSON(w io.Writer, papers []types.Paper) error {
	if papers == nil {
		papers = []types.Paper{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(papers)
}

// FormatYAML writes papers as a YAML list.
func FormatYAML(w io.Writer, papers []types.Paper) error {
	if papers == nil {
		papers = []types.Paper{}
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(papers); err != nil {
		return err
	}
	return enc.Close()
}

// truncate shortens s to max runes, marking the cut with "...".
func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-3]) + "..."
}

// ParseFormat validates a console format name. An empty name selects
// FormatRecords.
func ParseFormat(s string) (types.OutputFormat, error) {
	switch f := types.OutputFormat(strings.ToLower(strings.TrimSpace(s))); f {
	case "":
		return types.FormatRecords, nil
	case types.FormatRecords, types.FormatTable, types.FormatJSON, types.FormatYAML:
		return f, nil
	default:
		return "", fmt.Errorf("unsupported format %q: use records, table, json, or yaml", s)
	}
}
