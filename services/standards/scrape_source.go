package standards

import (
	"context"

	"standards-backend/lib/keywordutil"
	"standards-backend/lib/scrapers/cpalms"
)

// ScrapeSource drives the search interface across the subject x grade
// cross product, subjects outer, grades inner.
type ScrapeSource struct {
	client   *cpalms.Client
	state    string
	subjects []string
	grades   []string
}

func NewScrapeSource(client *cpalms.Client, state string, subjects, grades []string) ScrapeSource {
	if len(subjects) == 0 {
		subjects = Subjects
	}
	if len(grades) == 0 {
		grades = Grades
	}
	return ScrapeSource{
		client:   client,
		state:    state,
		subjects: subjects,
		grades:   grades,
	}
}

func (s ScrapeSource) Units(ctx context.Context) ([]Unit, error) {
	units := make([]Unit, 0, len(s.subjects)*len(s.grades))
	for _, subject := range s.subjects {
		for _, grade := range s.grades {
			units = append(units, Unit{Subject: subject, Grade: grade})
		}
	}
	return units, nil
}

func (s ScrapeSource) Fetch(ctx context.Context, unit Unit) ([]Record, error) {
	items, err := s.client.FetchUnit(ctx, unit.Subject, unit.Grade)
	if err != nil {
		return nil, err
	}

	records := make([]Record, 0, len(items))
	for _, item := range items {
		records = append(records, Record{
			StandardId:  item.Id,
			State:       s.state,
			Subject:     unit.Subject,
			Grade:       unit.Grade,
			Title:       item.Title,
			Description: item.Description,
			Keywords:    keywordutil.Extract(item.Description),
			Url:         item.Url,
		})
	}
	return records, nil
}
