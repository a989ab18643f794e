package standards

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"standards-backend/lib/scrapers/casenet"

	"github.com/stretchr/testify/require"
)

const caseDocumentsBody = `{
	"CFDocuments": [
		{"identifier": "doc-math", "title": "Mathematics Standards - Florida"},
		{"identifier": "doc-ela", "title": "ELA Standards - florida"},
		{"identifier": "doc-tx", "title": "Mathematics Standards - Texas"}
	]
}`

func newCaseServer(t *testing.T, itemsBody string) *casenet.Client {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/CFDocuments":
			fmt.Fprint(w, caseDocumentsBody)
		case "/CFDocuments/doc-math/CFItems":
			fmt.Fprint(w, itemsBody)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	t.Cleanup(server.Close)
	return casenet.NewClient(casenet.ClientOptions{BaseUrl: server.URL, ApiKey: "secret"})
}

func TestCaseSourceUnits(t *testing.T) {
	client := newCaseServer(t, `{"CFItems": []}`)

	source := NewCaseSource(client, "FL", "Florida", false)
	units, err := source.Units(context.Background())
	require.NoError(t, err)
	require.Equal(t, []Unit{
		{Subject: "Mathematics", Document: "doc-math"},
	}, units)
}

func TestCaseSourceUnitsCaseInsensitive(t *testing.T) {
	client := newCaseServer(t, `{"CFItems": []}`)

	source := NewCaseSource(client, "FL", "Florida", true)
	units, err := source.Units(context.Background())
	require.NoError(t, err)
	require.Equal(t, []Unit{
		{Subject: "Mathematics", Document: "doc-math"},
		{Subject: "ELA", Document: "doc-ela"},
	}, units)
}

func TestCaseSourceUnitsNoMatch(t *testing.T) {
	client := newCaseServer(t, `{"CFItems": []}`)

	source := NewCaseSource(client, "FL", "Atlantis", false)
	units, err := source.Units(context.Background())
	require.NoError(t, err)
	require.Empty(t, units)
}

func TestCaseSourceUnitsServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	t.Cleanup(server.Close)
	client := casenet.NewClient(casenet.ClientOptions{BaseUrl: server.URL, ApiKey: "bad"})

	source := NewCaseSource(client, "FL", "Florida", false)
	_, err := source.Units(context.Background())
	require.Error(t, err)
}

func TestCaseSourceFetch(t *testing.T) {
	client := newCaseServer(t, `{
		"CFItems": [
			{
				"humanCodingScheme": "MA.3.NSO.1.1",
				"abbreviatedStatement": "Read and write numbers",
				"fullStatement": "Read and write numbers from 0 to 10,000.",
				"educationLevel": ["03", "04"]
			},
			{
				"humanCodingScheme": "MA.3.NSO.1.2",
				"fullStatement": "Compose and decompose four-digit numbers."
			},
			{
				"humanCodingScheme": "",
				"fullStatement": "An orphan statement without a code."
			},
			{
				"humanCodingScheme": "MA.3.NSO.1.3",
				"fullStatement": ""
			}
		]
	}`)

	source := NewCaseSource(client, "FL", "Florida", false)
	records, err := source.Fetch(context.Background(), Unit{Subject: "Mathematics", Document: "doc-math"})
	require.NoError(t, err)
	require.Len(t, records, 2)

	require.Equal(t, "MA.3.NSO.1.1", records[0].StandardId)
	require.Equal(t, "FL", records[0].State)
	require.Equal(t, "Mathematics", records[0].Subject)
	require.Equal(t, "03", records[0].Grade)
	require.Equal(t, "Read and write numbers", records[0].Title)
	require.Equal(t, "Read and write numbers from 0 to 10,000.", records[0].Description)
	require.NotEmpty(t, records[0].Keywords)
	require.Empty(t, records[0].Url)

	// title falls back to the full statement, grade stays empty
	require.Equal(t, "MA.3.NSO.1.2", records[1].StandardId)
	require.Equal(t, "", records[1].Grade)
	require.Equal(t, "Compose and decompose four-digit numbers.", records[1].Title)
}
