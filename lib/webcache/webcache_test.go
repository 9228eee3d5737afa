package webcache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestRoundTrip(t *testing.T) {
	cache, err := New(time.Minute)
	require.NoError(t, err)
	defer cache.Close()

	ctx := context.Background()
	payload := []byte(`{"id":241,"firstName":"Andrzej"}`)

	err = cache.Set(ctx, "sejm:mps", Entry{Payload: payload})
	require.NoError(t, err)

	got, ok := cache.Get(ctx, "sejm:mps")
	require.True(t, ok)
	require.Equal(t, payload, got.Payload)
	require.False(t, got.NotFound)
}

func TestExpiry(t *testing.T) {
	cache, err := New(50 * time.Millisecond)
	require.NoError(t, err)
	defer cache.Close()

	ctx := context.Background()
	err = cache.Set(ctx, "k", Entry{Payload: []byte("v")})
	require.NoError(t, err)

	_, ok := cache.Get(ctx, "k")
	require.True(t, ok)

	time.Sleep(80 * time.Millisecond)

	_, ok = cache.Get(ctx, "k")
	require.False(t, ok)
}

func TestOverwrite(t *testing.T) {
	cache, err := New(time.Minute)
	require.NoError(t, err)
	defer cache.Close()

	ctx := context.Background()
	require.NoError(t, cache.Set(ctx, "k", Entry{Payload: []byte("old")}))
	require.NoError(t, cache.Set(ctx, "k", Entry{Payload: []byte("new")}))

	got, ok := cache.Get(ctx, "k")
	require.True(t, ok)
	require.Equal(t, []byte("new"), got.Payload)
}

func TestNotFoundSentinel(t *testing.T) {
	cache, err := New(time.Minute)
	require.NoError(t, err)
	defer cache.Close()

	ctx := context.Background()
	require.NoError(t, cache.Set(ctx, "missing", Entry{NotFound: true}))

	got, ok := cache.Get(ctx, "missing")
	require.True(t, ok)
	require.True(t, got.NotFound)
	require.Empty(t, got.Payload)
}

func TestTTL(t *testing.T) {
	cache, err := New(time.Minute)
	require.NoError(t, err)
	defer cache.Close()
	require.Equal(t, time.Minute, cache.TTL())

	// non-positive values fall back to the default
	fallback, err := New(0)
	require.NoError(t, err)
	defer fallback.Close()
	require.Equal(t, DefaultTTL, fallback.TTL())
}

func TestMissingKey(t *testing.T) {
	cache, err := New(time.Minute)
	require.NoError(t, err)
	defer cache.Close()

	_, ok := cache.Get(context.Background(), "nope")
	require.False(t, ok)
}

func TestKeyNormalization(t *testing.T) {
	a := Key("sejm", "https://api.sejm.gov.pl/sejm/term10/interpellations?from=015&limit=100")
	b := Key("sejm", "https://api.sejm.gov.pl/sejm/term10/interpellations?limit=100&from=015")
	require.Equal(t, a, b)

	c := Key("html", "https://api.sejm.gov.pl/sejm/term10/interpellations?from=015&limit=100")
	require.NotEqual(t, a, c)
}
