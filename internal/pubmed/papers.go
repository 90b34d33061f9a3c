// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pubmed

import (
	"github.com/pdiddy/pubmed-papers/internal/affiliation"
	"github.com/pdiddy/pubmed-papers/pkg/types"
)

// Papers derives one output row per record, preserving order.
func Papers(records []types.Record) []types.Paper {
	papers := make([]types.Paper, 0, len(records))
	for _, r := range records {
		papers = append(papers, ToPaper(r))
	}
	return papers
}

// ToPaper derives the output row for a single record.
func ToPaper(r types.Record) types.Paper {
	c := affiliation.Classify(r.Authors)
	email, _ := affiliation.CorrespondingEmail(r.Authors)
	return types.Paper{
		PubmedID:                 r.ID,
		Title:                    r.Title,
		PublicationDate:          r.PubDate,
		NonAcademicAuthors:       c.NonAcademicAuthors,
		CompanyAffiliations:      c.CompanyAffiliations,
		CorrespondingAuthorEmail: email,
	}
}
