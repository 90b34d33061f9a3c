// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the PubMed paper pipeline:
// summary records as returned by ESummary, the derived output rows, the
// client configuration, and the error kinds surfaced at stage boundaries.
package types

import "strings"

// Placeholders used when ESummary omits a field.
const (
	UnknownTitle = "Unknown Title"
	UnknownDate  = "Unknown Date"
)

// Author is one entry of a record's author list. Every field is optional;
// nil means the field was absent from the upstream response.
type Author struct {
	Name        *string `json:"name,omitempty" yaml:"name,omitempty"`
	Affiliation *string `json:"affiliation,omitempty" yaml:"affiliation,omitempty"`
	Email       *string `json:"email,omitempty" yaml:"email,omitempty"`
}

// NameOrEmpty returns the author name, or "" when absent.
func (a Author) NameOrEmpty() string {
	if a.Name == nil {
		return ""
	}
	return *a.Name
}

// AffiliationOrEmpty returns the affiliation text, or "" when absent.
func (a Author) AffiliationOrEmpty() string {
	if a.Affiliation == nil {
		return ""
	}
	return *a.Affiliation
}

// Record holds one paper's summary metadata with defaults already applied.
type Record struct {
	// ID is the PMID assigned by PubMed.
	ID string `json:"id" yaml:"id"`

	// Title is the paper title, or UnknownTitle.
	Title string `json:"title" yaml:"title"`

	// PubDate is the free-text publication date, or UnknownDate.
	PubDate string `json:"pubdate" yaml:"pubdate"`

	// Authors lists the paper authors in source order.
	Authors []Author `json:"authors" yaml:"authors"`

	// Error is the message ESummary attaches to UIDs it cannot resolve.
	Error string `json:"error,omitempty" yaml:"error,omitempty"`
}

// Paper is the derived output row for one Record.
type Paper struct {
	PubmedID                 string   `json:"pubmed_id" yaml:"pubmed_id"`
	Title                    string   `json:"title" yaml:"title"`
	PublicationDate          string   `json:"publication_date" yaml:"publication_date"`
	NonAcademicAuthors       []string `json:"non_academic_authors" yaml:"non_academic_authors"`
	CompanyAffiliations      []string `json:"company_affiliations" yaml:"company_affiliations"`
	CorrespondingAuthorEmail string   `json:"corresponding_author_email,omitempty" yaml:"corresponding_author_email,omitempty"`
}

// listSep joins multi-valued fields when a row is flattened.
const listSep = ", "

// NonAcademicAuthorsText returns the comma-joined non-academic author names.
func (p Paper) NonAcademicAuthorsText() string {
	return strings.Join(p.NonAcademicAuthors, listSep)
}

// CompanyAffiliationsText returns the comma-joined company affiliations.
func (p Paper) CompanyAffiliationsText() string {
	return strings.Join(p.CompanyAffiliations, listSep)
}

// CSVHeader is the header row of the CSV export, in column order.
var CSVHeader = []string{
	"PubmedID",
	"Title",
	"Publication Date",
	"Non-academic Author(s)",
	"Company Affiliation(s)",
	"Corresponding Author Email",
}

// Fields returns the row values in CSVHeader order.
func (p Paper) Fields() []string {
	return []string{
		p.PubmedID,
		p.Title,
		p.PublicationDate,
		p.NonAcademicAuthorsText(),
		p.CompanyAffiliationsText(),
		p.CorrespondingAuthorEmail,
	}
}
