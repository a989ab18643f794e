package cpalms

// Selectors locates standard items inside a search results page. The
// upstream markup has not been confirmed against a live page, so the
// mapping is configuration rather than code and can be retargeted
// without a rebuild.
type Selectors struct {
	Item        string `json:"item"`
	Id          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Link        string `json:"link"`
}

func DefaultSelectors() Selectors {
	return Selectors{
		Item:        "div.standard-item",
		Id:          "span.standard-id",
		Title:       "h3.standard-title",
		Description: "div.standard-description",
		Link:        "a",
	}
}

// Item is one standard as presented by the search interface.
type Item struct {
	Id          string
	Title       string
	Description string
	Url         string
}
