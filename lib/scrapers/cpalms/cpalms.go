package cpalms

import (
	"bytes"
	"context"
	"fmt"
	"net/http/cookiejar"
	"net/url"
	"time"

	"standards-backend/lib/htmlutil"
	"standards-backend/lib/telemetry"

	cloudflarebp "github.com/DaRealFreak/cloudflare-bp-go"
	"github.com/PuerkitoBio/goquery"
	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

var tracer = otel.Tracer("scrapers/cpalms")

type Client struct {
	baseUrl    *url.URL
	searchPath string
	selectors  Selectors
	delay      time.Duration
	http       *resty.Client
}

type ClientOptions struct {
	BaseUrl    string
	SearchPath string
	Selectors  Selectors
	// wait applied after every unit fetch, regardless of outcome
	Delay time.Duration
}

func NewClient(opts ClientOptions) (*Client, error) {
	baseUrl, err := url.Parse(opts.BaseUrl)
	if err != nil {
		return nil, err
	}
	if opts.SearchPath == "" {
		opts.SearchPath = "/search/Standard"
	}
	if opts.Selectors == (Selectors{}) {
		opts.Selectors = DefaultSelectors()
	}

	client := resty.New()
	client.SetBaseURL(opts.BaseUrl)
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, err
	}
	client.SetCookieJar(jar)
	client.GetClient().Transport = cloudflarebp.AddCloudFlareByPass(client.GetClient().Transport)

	client.SetHeader("user-agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/123.0.0.0 Safari/537.36")
	client.SetHeader("accept", "text/html,application/xhtml+xml,application/xml;q=0.9,image/webp,*/*;q=0.8")
	client.SetHeader("accept-language", "en-US,en;q=0.5")
	client.SetTimeout(time.Second * 30)

	telemetry.InstrumentResty(client, "scrapers/cpalms/http")

	return &Client{
		baseUrl:    baseUrl,
		searchPath: opts.SearchPath,
		selectors:  opts.Selectors,
		delay:      opts.Delay,
		http:       client,
	}, nil
}

// FetchUnit performs the search request for one (subject, grade) pair
// and extracts its standard items. The configured delay always runs
// before returning, so the outbound request rate stays fixed even when
// the unit fails.
func (c *Client) FetchUnit(ctx context.Context, subject, grade string) ([]Item, error) {
	ctx, span := tracer.Start(ctx, "FetchUnit")
	defer span.End()
	span.SetAttributes(
		attribute.String("subject", subject),
		attribute.String("grade", grade),
	)
	defer time.Sleep(c.delay)

	res, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"subject": subject,
			"grade":   grade,
		}).
		Get(c.searchPath)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to fetch search results")
		return nil, fmt.Errorf("fetch %q grade %q: %w", subject, grade, err)
	}
	if res.IsError() {
		err := fmt.Errorf("fetch %q grade %q: status %s", subject, grade, res.Status())
		span.RecordError(err)
		span.SetStatus(codes.Error, "search request rejected")
		return nil, err
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewBuffer(res.Body()))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to parse search results")
		return nil, fmt.Errorf("parse %q grade %q: %w", subject, grade, err)
	}

	var items []Item
	doc.Find(c.selectors.Item).Each(func(_ int, sel *goquery.Selection) {
		item := Item{
			Id:          htmlutil.CleanText(sel.Find(c.selectors.Id)),
			Title:       htmlutil.CleanText(sel.Find(c.selectors.Title)),
			Description: htmlutil.CleanText(sel.Find(c.selectors.Description)),
		}
		// items missing a required field are filtered, not errors
		if item.Id == "" || item.Title == "" || item.Description == "" {
			return
		}
		if href := htmlutil.FirstHref(sel, c.selectors.Link); href != "" {
			item.Url = c.resolveUrl(href)
		}
		items = append(items, item)
	})

	return items, nil
}

func (c *Client) resolveUrl(href string) string {
	parsed, err := url.Parse(href)
	if err != nil {
		return ""
	}
	return c.baseUrl.ResolveReference(parsed).String()
}
