// Package casenet implements a client for CASE format competency
// framework APIs (document -> item hierarchies of standards).
package casenet

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"standards-backend/lib/telemetry"

	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

var tracer = otel.Tracer("scrapers/casenet")

// Document is a CASE competency framework document.
type Document struct {
	Identifier string `json:"identifier"`
	Title      string `json:"title"`
}

// Item is one competency statement inside a document.
type Item struct {
	HumanCodingScheme    string   `json:"humanCodingScheme"`
	AbbreviatedStatement string   `json:"abbreviatedStatement"`
	FullStatement        string   `json:"fullStatement"`
	EducationLevel       []string `json:"educationLevel"`
}

type documentsResponse struct {
	CFDocuments []Document `json:"CFDocuments"`
}

type itemsResponse struct {
	CFItems []Item `json:"CFItems"`
}

type Client struct {
	http *resty.Client
}

type ClientOptions struct {
	BaseUrl string
	ApiKey  string
}

func NewClient(opts ClientOptions) *Client {
	client := resty.New()
	client.SetBaseURL(opts.BaseUrl)
	client.SetHeader("authorization", fmt.Sprintf("Bearer %s", opts.ApiKey))
	client.SetHeader("content-type", "application/json")
	client.SetTimeout(time.Second * 30)

	telemetry.InstrumentResty(client, "scrapers/casenet/http")

	return &Client{http: client}
}

// Documents fetches the top-level framework document list.
func (c *Client) Documents(ctx context.Context) ([]Document, error) {
	ctx, span := tracer.Start(ctx, "Documents")
	defer span.End()

	res, err := c.http.R().
		SetContext(ctx).
		Get("/CFDocuments")
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to fetch documents")
		return nil, fmt.Errorf("fetch CFDocuments: %w", err)
	}
	if res.IsError() {
		err := fmt.Errorf("fetch CFDocuments: status %s", res.Status())
		span.RecordError(err)
		span.SetStatus(codes.Error, "document request rejected")
		return nil, err
	}

	var body documentsResponse
	err = json.Unmarshal(res.Body(), &body)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to parse documents")
		return nil, fmt.Errorf("parse CFDocuments: %w", err)
	}
	return body.CFDocuments, nil
}

// Items fetches the competency items of one document.
func (c *Client) Items(ctx context.Context, documentId string) ([]Item, error) {
	ctx, span := tracer.Start(ctx, "Items")
	defer span.End()
	span.SetAttributes(attribute.String("document", documentId))

	res, err := c.http.R().
		SetContext(ctx).
		Get(fmt.Sprintf("/CFDocuments/%s/CFItems", documentId))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to fetch items")
		return nil, fmt.Errorf("fetch CFItems of %s: %w", documentId, err)
	}
	if res.IsError() {
		err := fmt.Errorf("fetch CFItems of %s: status %s", documentId, res.Status())
		span.RecordError(err)
		span.SetStatus(codes.Error, "item request rejected")
		return nil, err
	}

	var body itemsResponse
	err = json.Unmarshal(res.Body(), &body)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to parse items")
		return nil, fmt.Errorf("parse CFItems of %s: %w", documentId, err)
	}
	return body.CFItems, nil
}
