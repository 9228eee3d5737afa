package webcache

import (
	"bytes"
	"context"
	"encoding/gob"
	"net/url"
	"time"

	"github.com/PuerkitoBio/purell"
	"github.com/dgraph-io/badger/v4"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("sejmdata.lib.webcache")

// DefaultTTL bounds how long an upstream response may be served
// without re-fetching.
const DefaultTTL = 5 * time.Minute

// Entry is a single cached upstream response. NotFound marks a
// confirmed-absent resource so repeated lookups for a known-missing
// document do not re-hit the network within the TTL window.
type Entry struct {
	Payload    []byte
	NotFound   bool
	CapturedAt time.Time
}

// Cache is a TTL cache over an in-memory badger store. Expiry is a
// pure time check at read; entries are never evicted proactively.
type Cache struct {
	db  *badger.DB
	ttl time.Duration
}

func New(ttl time.Duration) (*Cache, error) {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	db, err := badger.Open(
		badger.DefaultOptions("").
			WithInMemory(true).
			WithLogger(nil),
	)
	if err != nil {
		return nil, err
	}
	return &Cache{db: db, ttl: ttl}, nil
}

func (c *Cache) Close() error {
	return c.db.Close()
}

func (c *Cache) TTL() time.Duration {
	return c.ttl
}

// Key builds a stable cache key from a namespace and a request url,
// normalized so that query parameter order does not split entries.
func Key(namespace, rawurl string) string {
	link, err := url.Parse(rawurl)
	if err != nil {
		return namespace + ":" + rawurl
	}
	normalized := purell.NormalizeURL(
		link,
		purell.FlagsSafe|
			purell.FlagsUsuallySafeNonGreedy|
			purell.FlagRemoveDirectoryIndex|
			purell.FlagRemoveFragment|
			purell.FlagSortQuery,
	)
	return namespace + ":" + normalized
}

func (c *Cache) Get(ctx context.Context, key string) (Entry, bool) {
	ctx, span := tracer.Start(ctx, "Get")
	defer span.End()
	span.SetAttributes(attribute.String("cache_key", key))

	tx := c.db.NewTransaction(false)
	defer tx.Discard()

	item, err := tx.Get([]byte(key))
	if err == badger.ErrKeyNotFound {
		return Entry{}, false
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to read item from badger")
		return Entry{}, false
	}
	serialized, err := item.ValueCopy(nil)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to copy cached item")
		return Entry{}, false
	}

	var cached Entry
	err = gob.NewDecoder(bytes.NewReader(serialized)).Decode(&cached)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to deserialize cached item")
		return Entry{}, false
	}

	if time.Since(cached.CapturedAt) >= c.ttl {
		span.AddEvent("delete expired cache key", trace.WithAttributes(
			attribute.String("key", key),
		))

		wtx := c.db.NewTransaction(true)
		defer wtx.Commit()
		err = wtx.Delete([]byte(key))
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "failed to delete expired key")
		}
		return Entry{}, false
	}

	span.AddEvent("cache hit", trace.WithAttributes(
		attribute.Int("payload_length", len(cached.Payload)),
		attribute.Bool("not_found", cached.NotFound),
	))
	return cached, true
}

// Set unconditionally overwrites the entry under key. A zero
// CapturedAt is stamped with the current time.
func (c *Cache) Set(ctx context.Context, key string, entry Entry) error {
	ctx, span := tracer.Start(ctx, "Set")
	defer span.End()
	span.SetAttributes(attribute.String("cache_key", key))

	if entry.CapturedAt.IsZero() {
		entry.CapturedAt = time.Now()
	}

	serialized := bytes.NewBuffer(nil)
	err := gob.NewEncoder(serialized).Encode(entry)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to serialize entry")
		return err
	}

	tx := c.db.NewTransaction(true)
	defer tx.Commit()

	err = tx.Set([]byte(key), serialized.Bytes())
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to set badger item")
		return err
	}
	return nil
}
