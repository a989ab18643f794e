package cpalms

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

const searchFixture = `
<html><body>
<div class="results">
	<div class="standard-item">
		<span class="standard-id">MA.3.AR.1.1</span>
		<h3 class="standard-title">  Apply the distributive
			property  </h3>
		<div class="standard-description">Apply the distributive property to multiply a one-digit number and two-digit number.</div>
		<a href="/standards/MA.3.AR.1.1">details</a>
	</div>
	<div class="standard-item">
		<span class="standard-id">MA.3.AR.1.2</span>
		<div class="standard-description">An item with no title element.</div>
	</div>
	<div class="standard-item">
		<span class="standard-id">MA.3.AR.2.1</span>
		<h3 class="standard-title">Determine and explain whether an equation is true or false</h3>
		<div class="standard-description">Determine and explain whether an equation involving multiplication or division is true or false.</div>
	</div>
</div>
</body></html>`

func newTestClient(t *testing.T, handler http.Handler) (*Client, *httptest.Server) {
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := NewClient(ClientOptions{BaseUrl: server.URL})
	require.NoError(t, err)
	return client, server
}

func TestFetchUnit(t *testing.T) {
	var gotQuery map[string]string
	client, server := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = map[string]string{
			"subject": r.URL.Query().Get("subject"),
			"grade":   r.URL.Query().Get("grade"),
		}
		fmt.Fprint(w, searchFixture)
	}))

	items, err := client.FetchUnit(context.Background(), "Mathematics (B.E.S.T.)", "3")
	require.NoError(t, err)
	require.Equal(t, map[string]string{
		"subject": "Mathematics (B.E.S.T.)",
		"grade":   "3",
	}, gotQuery)

	// the item without a title is dropped silently
	require.Len(t, items, 2)

	require.Equal(t, "MA.3.AR.1.1", items[0].Id)
	require.Equal(t, "Apply the distributive property", items[0].Title)
	require.Equal(t, server.URL+"/standards/MA.3.AR.1.1", items[0].Url)

	require.Equal(t, "MA.3.AR.2.1", items[1].Id)
	require.Empty(t, items[1].Url)
}

func TestFetchUnitEmptyPage(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "<html><body><p>No results.</p></body></html>")
	}))

	items, err := client.FetchUnit(context.Background(), "Dance", "K")
	require.NoError(t, err)
	require.Empty(t, items)
}

func TestFetchUnitServerError(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusInternalServerError)
	}))

	_, err := client.FetchUnit(context.Background(), "Science", "4")
	require.Error(t, err)
}

func TestFetchUnitTransportError(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	client, err := NewClient(ClientOptions{BaseUrl: server.URL})
	require.NoError(t, err)
	server.Close()

	_, err = client.FetchUnit(context.Background(), "Science", "4")
	require.Error(t, err)
}

func TestCustomSelectors(t *testing.T) {
	page := `
<ul>
	<li class="result">
		<em class="code">SC.4.P.8.1</em>
		<strong class="name">Measure and compare objects</strong>
		<p class="text">Measure and compare objects and materials based on their physical properties.</p>
	</li>
</ul>`
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, page)
	}))
	t.Cleanup(server.Close)

	client, err := NewClient(ClientOptions{
		BaseUrl: server.URL,
		Selectors: Selectors{
			Item:        "li.result",
			Id:          "em.code",
			Title:       "strong.name",
			Description: "p.text",
			Link:        "a",
		},
	})
	require.NoError(t, err)

	items, err := client.FetchUnit(context.Background(), "Science", "4")
	require.NoError(t, err)
	require.Len(t, items, 1)
	require.Equal(t, "SC.4.P.8.1", items[0].Id)
}
