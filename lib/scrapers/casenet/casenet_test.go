package casenet

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

const documentsFixture = `{
	"CFDocuments": [
		{"identifier": "doc-fl-math", "title": "Florida Mathematics Standards"},
		{"identifier": "doc-tx-ela", "title": "Texas English Language Arts"}
	]
}`

const itemsFixture = `{
	"CFItems": [
		{
			"humanCodingScheme": "MA.K.NSO.1.1",
			"abbreviatedStatement": "Count to 20",
			"fullStatement": "Given a group of up to 20 objects, count the number of objects in that group.",
			"educationLevel": ["K"]
		},
		{
			"humanCodingScheme": "",
			"fullStatement": "An item without a coding scheme."
		}
	]
}`

func TestDocuments(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/CFDocuments", r.URL.Path)
		gotAuth = r.Header.Get("Authorization")
		fmt.Fprint(w, documentsFixture)
	}))
	t.Cleanup(server.Close)

	client := NewClient(ClientOptions{BaseUrl: server.URL, ApiKey: "secret"})

	documents, err := client.Documents(context.Background())
	require.NoError(t, err)
	require.Equal(t, "Bearer secret", gotAuth)
	require.Len(t, documents, 2)
	require.Equal(t, "doc-fl-math", documents[0].Identifier)
	require.Equal(t, "Florida Mathematics Standards", documents[0].Title)
}

func TestItems(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/CFDocuments/doc-fl-math/CFItems", r.URL.Path)
		fmt.Fprint(w, itemsFixture)
	}))
	t.Cleanup(server.Close)

	client := NewClient(ClientOptions{BaseUrl: server.URL, ApiKey: "secret"})

	items, err := client.Items(context.Background(), "doc-fl-math")
	require.NoError(t, err)
	require.Len(t, items, 2)
	require.Equal(t, "MA.K.NSO.1.1", items[0].HumanCodingScheme)
	require.Equal(t, []string{"K"}, items[0].EducationLevel)
}

func TestDocumentsServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
	}))
	t.Cleanup(server.Close)

	client := NewClient(ClientOptions{BaseUrl: server.URL, ApiKey: "bad"})

	_, err := client.Documents(context.Background())
	require.Error(t, err)
}

func TestItemsMalformedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "<html>not json</html>")
	}))
	t.Cleanup(server.Close)

	client := NewClient(ClientOptions{BaseUrl: server.URL, ApiKey: "secret"})

	_, err := client.Items(context.Background(), "doc-fl-math")
	require.Error(t, err)
}
