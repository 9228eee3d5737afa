package sejm

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"sejmdata-backend/lib/htmlutil"
	"sejmdata-backend/lib/webcache"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/otel/attribute"
)

// outcome is the three-way classification of a fetch. The public
// contract flattens absent and transportFailed into "no data", but
// the distinction is kept here so logs (and a future repair of the
// surface) can tell a real outage from a legitimately missing
// resource.
type outcome int

const (
	fetched outcome = iota
	absent
	transportFailed
)

func classify(res *resty.Response, err error) outcome {
	if err != nil {
		return transportFailed
	}
	if res.StatusCode() == http.StatusNotFound {
		return absent
	}
	if !res.IsSuccess() {
		return transportFailed
	}
	return fetched
}

// getJSON is the single chokepoint for JSON-backed endpoints: cache
// check, GET on miss, outcome classification, cache write-through.
// Every failure mode degrades to nil; a nil result means
// "unknown/absent" and nothing more.
func (c *Client) getJSON(ctx context.Context, client *resty.Client, endpoint string) json.RawMessage {
	ctx, span := tracer.Start(ctx, "getJSON")
	defer span.End()
	span.SetAttributes(attribute.String("endpoint", endpoint))

	key := webcache.Key("sejm", c.baseURL+endpoint)
	if cached, ok := c.cache.Get(ctx, key); ok {
		if cached.NotFound {
			return nil
		}
		return json.RawMessage(cached.Payload)
	}

	res, err := client.R().SetContext(ctx).Get(endpoint)

	result := classify(res, err)
	if result == fetched && !json.Valid(res.Body()) {
		result = transportFailed
	}

	switch result {
	case absent:
		slog.WarnContext(ctx, "resource not found", "url", c.baseURL+endpoint)
	case transportFailed:
		status := 0
		if res != nil {
			status = res.StatusCode()
		}
		slog.ErrorContext(ctx, "fetch failed, degrading to no data",
			"url", c.baseURL+endpoint, "status", status, "err", err)
	}
	if result != fetched {
		c.cache.Set(ctx, key, webcache.Entry{NotFound: true})
		return nil
	}

	payload := res.Body()
	c.cache.Set(ctx, key, webcache.Entry{Payload: payload})
	return payload
}

// getHTML mirrors getJSON for HTML document endpoints, additionally
// reducing the document to normalized body text before caching.
// Returns "" under the same absence/failure rules.
func (c *Client) getHTML(ctx context.Context, endpoint string) string {
	ctx, span := tracer.Start(ctx, "getHTML")
	defer span.End()
	span.SetAttributes(attribute.String("endpoint", endpoint))

	key := webcache.Key("sejm.html", c.baseURL+endpoint)
	if cached, ok := c.cache.Get(ctx, key); ok {
		if cached.NotFound {
			return ""
		}
		return string(cached.Payload)
	}

	res, err := c.html.R().SetContext(ctx).Get(endpoint)

	switch classify(res, err) {
	case absent:
		slog.WarnContext(ctx, "html resource not found", "url", c.baseURL+endpoint)
		c.cache.Set(ctx, key, webcache.Entry{NotFound: true})
		return ""
	case transportFailed:
		status := 0
		if res != nil {
			status = res.StatusCode()
		}
		slog.ErrorContext(ctx, "html fetch failed, degrading to no data",
			"url", c.baseURL+endpoint, "status", status, "err", err)
		c.cache.Set(ctx, key, webcache.Entry{NotFound: true})
		return ""
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(res.Body()))
	if err != nil {
		slog.ErrorContext(ctx, "failed to parse html document",
			"url", c.baseURL+endpoint, "err", err)
		c.cache.Set(ctx, key, webcache.Entry{NotFound: true})
		return ""
	}

	text := htmlutil.ExtractBodyText(doc)
	if text == "" {
		slog.WarnContext(ctx, "html document has no body text", "url", c.baseURL+endpoint)
		c.cache.Set(ctx, key, webcache.Entry{NotFound: true})
		return ""
	}

	c.cache.Set(ctx, key, webcache.Entry{Payload: []byte(text)})
	return text
}
