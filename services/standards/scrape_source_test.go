package standards

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"standards-backend/lib/scrapers/cpalms"

	"github.com/stretchr/testify/require"
)

func TestScrapeSourceUnitsCrossProduct(t *testing.T) {
	source := NewScrapeSource(nil, "FL", []string{"Mathematics (B.E.S.T.)", "Science"}, []string{"K", "1"})
	units, err := source.Units(context.Background())
	require.NoError(t, err)
	require.Equal(t, []Unit{
		{Subject: "Mathematics (B.E.S.T.)", Grade: "K"},
		{Subject: "Mathematics (B.E.S.T.)", Grade: "1"},
		{Subject: "Science", Grade: "K"},
		{Subject: "Science", Grade: "1"},
	}, units)
}

func TestScrapeSourceUnitsDefaults(t *testing.T) {
	source := NewScrapeSource(nil, "FL", nil, nil)
	units, err := source.Units(context.Background())
	require.NoError(t, err)
	require.Len(t, units, len(Subjects)*len(Grades))
	require.Equal(t, Unit{Subject: Subjects[0], Grade: "K"}, units[0])
}

func TestScrapeSourceFetch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `<html><body>
			<div class="standard-item">
				<span class="standard-id">MA.3.NSO.1.1</span>
				<h3 class="standard-title">Read and write numbers</h3>
				<div class="standard-description">Read and write numbers from 0 to 10,000.</div>
				<a href="/standards/MA.3.NSO.1.1">details</a>
			</div>
		</body></html>`)
	}))
	t.Cleanup(server.Close)

	client, err := cpalms.NewClient(cpalms.ClientOptions{BaseUrl: server.URL})
	require.NoError(t, err)

	source := NewScrapeSource(client, "FL", nil, nil)
	records, err := source.Fetch(context.Background(), Unit{Subject: "Mathematics (B.E.S.T.)", Grade: "3"})
	require.NoError(t, err)
	require.Len(t, records, 1)

	record := records[0]
	require.Equal(t, "MA.3.NSO.1.1", record.StandardId)
	require.Equal(t, "FL", record.State)
	require.Equal(t, "Mathematics (B.E.S.T.)", record.Subject)
	require.Equal(t, "3", record.Grade)
	require.Equal(t, "Read and write numbers", record.Title)
	require.Equal(t, server.URL+"/standards/MA.3.NSO.1.1", record.Url)
	require.Contains(t, record.Keywords, "numbers")
	require.NotContains(t, record.Keywords, "and")
}
