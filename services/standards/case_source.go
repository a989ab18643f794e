package standards

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"standards-backend/lib/keywordutil"
	"standards-backend/lib/scrapers/casenet"
)

// CaseSource drives a CASE framework API, one unit per framework
// document whose title matches the jurisdiction.
type CaseSource struct {
	client          *casenet.Client
	state           string
	jurisdiction    string
	caseInsensitive bool
}

func NewCaseSource(client *casenet.Client, state, jurisdiction string, caseInsensitive bool) CaseSource {
	return CaseSource{
		client:          client,
		state:           state,
		jurisdiction:    jurisdiction,
		caseInsensitive: caseInsensitive,
	}
}

func (s CaseSource) matches(title string) bool {
	if s.caseInsensitive {
		return strings.Contains(strings.ToLower(title), strings.ToLower(s.jurisdiction))
	}
	return strings.Contains(title, s.jurisdiction)
}

// Units fetches and filters the framework document list. Failing here
// aborts API collection entirely, there is no per-document fallback
// for a missing document list.
func (s CaseSource) Units(ctx context.Context) ([]Unit, error) {
	documents, err := s.client.Documents(ctx)
	if err != nil {
		return nil, fmt.Errorf("list framework documents: %w", err)
	}

	var units []Unit
	for _, document := range documents {
		if !s.matches(document.Title) {
			continue
		}
		units = append(units, Unit{
			Subject:  subjectFromTitle(document.Title),
			Document: document.Identifier,
		})
	}
	if len(units) == 0 {
		slog.WarnContext(ctx, "no framework documents matched jurisdiction", "jurisdiction", s.jurisdiction)
	}
	return units, nil
}

func subjectFromTitle(title string) string {
	fields := strings.Fields(title)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

func (s CaseSource) Fetch(ctx context.Context, unit Unit) ([]Record, error) {
	items, err := s.client.Items(ctx, unit.Document)
	if err != nil {
		return nil, err
	}

	records := make([]Record, 0, len(items))
	for _, item := range items {
		// a statement without a coding scheme has no natural key to
		// dedup on, skip it
		if item.HumanCodingScheme == "" || item.FullStatement == "" {
			continue
		}

		grade := ""
		if len(item.EducationLevel) > 0 {
			grade = item.EducationLevel[0]
		}
		title := item.AbbreviatedStatement
		if title == "" {
			title = item.FullStatement
		}

		records = append(records, Record{
			StandardId:  item.HumanCodingScheme,
			State:       s.state,
			Subject:     unit.Subject,
			Grade:       grade,
			Title:       title,
			Description: item.FullStatement,
			Keywords:    keywordutil.Extract(fmt.Sprintf("%s %s", item.FullStatement, item.AbbreviatedStatement)),
		})
	}
	return records, nil
}
