// Package sejm is a read-only client for the Sejm REST API with a
// write-through TTL cache. Upstream outages and missing resources
// both degrade to empty results; callers of the fetch layer never see
// a transport error.
package sejm

import (
	"strings"
	"time"

	"sejmdata-backend/lib/telemetry"
	"sejmdata-backend/lib/webcache"
	"sejmdata-backend/services/declarations"

	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("sejmdata.services.sejm")

const DefaultBaseURL = "https://api.sejm.gov.pl/sejm/term10"

const userAgent = "sejmdata/1.0"

type Options struct {
	// BaseURL defaults to DefaultBaseURL.
	BaseURL string
	// Cache is required; it is shared by every fetch operation.
	Cache *webcache.Cache
	// Declarations defaults to the static extraction snapshot.
	Declarations declarations.Source
}

type Client struct {
	baseURL string
	cache   *webcache.Cache
	decls   declarations.Source

	http *resty.Client
	list *resty.Client
	html *resty.Client
}

func NewClient(opts Options) *Client {
	baseURL := strings.TrimSuffix(opts.BaseURL, "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	decls := opts.Declarations
	if decls == nil {
		decls = declarations.NewStatic()
	}

	httpClient := resty.New()
	httpClient.SetBaseURL(baseURL)
	httpClient.SetHeader("accept", "application/json")
	httpClient.SetHeader("user-agent", userAgent)
	httpClient.SetTimeout(time.Second * 30)
	telemetry.InstrumentResty(httpClient, "sejmdata.services.sejm.http")

	// the MP list is the root of every profile aggregation, so it
	// alone retries with capped exponential backoff
	listClient := resty.New()
	listClient.SetBaseURL(baseURL)
	listClient.SetHeader("accept", "application/json")
	listClient.SetHeader("user-agent", userAgent)
	listClient.SetTimeout(time.Second * 30)
	listClient.SetRetryCount(3)
	listClient.SetRetryWaitTime(500 * time.Millisecond)
	listClient.SetRetryMaxWaitTime(8 * time.Second)
	listClient.AddRetryCondition(func(res *resty.Response, err error) bool {
		return err != nil || res.StatusCode() >= 500
	})
	telemetry.InstrumentResty(listClient, "sejmdata.services.sejm.list")

	htmlClient := resty.New()
	htmlClient.SetBaseURL(baseURL)
	htmlClient.SetHeader("accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	htmlClient.SetHeader("user-agent", userAgent)
	htmlClient.SetTimeout(time.Second * 30)
	telemetry.InstrumentResty(htmlClient, "sejmdata.services.sejm.html")

	return &Client{
		baseURL: baseURL,
		cache:   opts.Cache,
		decls:   decls,
		http:    httpClient,
		list:    listClient,
		html:    htmlClient,
	}
}
