// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package affiliation derives author-level signals from PubMed summary
// records: which authors look non-academic and which email belongs to the
// corresponding author. Both heuristics are loose substring and pattern
// tests over free text, not domain policy.
package affiliation

import (
	"regexp"
	"strings"

	"github.com/pdiddy/pubmed-papers/pkg/types"
)

// companyMarker is the lower-case substring that flags an affiliation as
// non-academic.
const companyMarker = "company"

var emailPattern = regexp.MustCompile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`)

// Classification holds the company-related fields derived from an author list.
type Classification struct {
	// NonAcademicAuthors lists names of company-affiliated authors in author
	// order. Repeated names are kept.
	NonAcademicAuthors []string

	// CompanyAffiliations holds each distinct company affiliation once, in
	// first-seen order.
	CompanyAffiliations []string
}

// IsCompany reports whether an affiliation mentions "company" in any case.
func IsCompany(affiliation string) bool {
	return strings.Contains(strings.ToLower(affiliation), companyMarker)
}

// Classify splits out the company-affiliated authors. Authors without an
// affiliation never match; matching authors without a name contribute only
// their affiliation.
func Classify(authors []types.Author) Classification {
	var c Classification
	seen := make(map[string]bool)

	for _, a := range authors {
		aff := a.AffiliationOrEmpty()
		if !IsCompany(aff) {
			continue
		}
		if a.Name != nil {
			c.NonAcademicAuthors = append(c.NonAcademicAuthors, *a.Name)
		}
		if !seen[aff] {
			seen[aff] = true
			c.CompanyAffiliations = append(c.CompanyAffiliations, aff)
		}
	}
	return c
}

// CorrespondingEmail returns the first email found walking authors in order.
// For each author an explicit email field wins over an address scraped from
// the affiliation text. It reports false when no author yields one.
func CorrespondingEmail(authors []types.Author) (string, bool) {
	for _, a := range authors {
		if a.Email != nil {
			return *a.Email, true
		}
		if m := FindEmail(a.AffiliationOrEmpty()); m != "" {
			return m, true
		}
	}
	return "", false
}

// FindEmail returns the first email address in text, or "".
func FindEmail(text string) string {
	return emailPattern.FindString(text)
}
