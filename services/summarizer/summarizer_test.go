package summarizer

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"sejmdata-backend/lib/telemetry"

	"github.com/stretchr/testify/require"
)

func TestConfigCheck(t *testing.T) {
	testCases := []struct {
		apiKey     string
		configured bool
	}{
		{"", false},
		{"your_openai_api_key_here", false},
		{"sk-real-key", true},
	}

	for _, test := range testCases {
		ok, reason := Config{APIKey: test.apiKey}.Check()
		require.Equal(t, test.configured, ok)
		if !ok {
			require.NotEmpty(t, reason)
		}
	}
}

func TestSummarizeUnconfiguredSkipsNetwork(t *testing.T) {
	cleanup := telemetry.SetupForTesting(t, "test:summarizer")
	defer cleanup()

	var hits atomic.Int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
	}))
	defer server.Close()

	question := strings.Repeat("pytanie o stan dróg krajowych ", 10)
	reply := strings.Repeat("odpowiedź ministerstwa infrastruktury ", 10)

	client := NewClient(Config{BaseURL: server.URL})
	summary, err := client.Summarize(context.Background(), question, reply)
	require.NoError(t, err)
	require.Zero(t, hits.Load())

	require.NotEmpty(t, summary.QuestionSummary)
	require.NotEmpty(t, summary.ReplySummary)
	require.Contains(t, summary.QuestionSummary, string([]rune(question)[:100]))
	require.Contains(t, summary.ReplySummary, string([]rune(reply)[:100]))
	require.Contains(t, summary.QuestionSummary, "OPENAI_API_KEY")
}

func TestSummarizeSuccess(t *testing.T) {
	cleanup := telemetry.SetupForTesting(t, "test:summarizer")
	defer cleanup()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/chat/completions", r.URL.Path)
		require.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))
		w.Write([]byte(`{
			"choices": [{"message": {"content": "{\"question_summary\":\"Pytanie o drogi.\",\"reply_summary\":\"Remont planowany.\"}"}}]
		}`))
	}))
	defer server.Close()

	client := NewClient(Config{APIKey: "sk-test", BaseURL: server.URL})
	summary, err := client.Summarize(context.Background(), "pytanie", "odpowiedź")
	require.NoError(t, err)
	require.Equal(t, "Pytanie o drogi.", summary.QuestionSummary)
	require.Equal(t, "Remont planowany.", summary.ReplySummary)
}

func TestSummarizeBadStatus(t *testing.T) {
	cleanup := telemetry.SetupForTesting(t, "test:summarizer")
	defer cleanup()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	client := NewClient(Config{APIKey: "sk-test", BaseURL: server.URL})
	_, err := client.Summarize(context.Background(), "q", "r")

	var serviceErr *ServiceError
	require.ErrorAs(t, err, &serviceErr)
	require.Equal(t, http.StatusUnauthorized, serviceErr.Status)
}

func TestSummarizeMalformedCompletion(t *testing.T) {
	cleanup := telemetry.SetupForTesting(t, "test:summarizer")
	defer cleanup()

	testCases := []string{
		`{"choices": []}`,
		`{"choices": [{"message": {"content": ""}}]}`,
		`{"choices": [{"message": {"content": "not json at all"}}]}`,
		`{"choices": [{"message": {"content": "{\"question_summary\":\"only one field\"}"}}]}`,
	}

	for _, body := range testCases {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(body))
		}))

		client := NewClient(Config{APIKey: "sk-test", BaseURL: server.URL})
		_, err := client.Summarize(context.Background(), "q", "r")

		var serviceErr *ServiceError
		require.ErrorAs(t, err, &serviceErr, "body=%s", body)
		server.Close()
	}
}

func TestSummarizeOrFallback(t *testing.T) {
	cleanup := telemetry.SetupForTesting(t, "test:summarizer")
	defer cleanup()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer server.Close()

	client := NewClient(Config{APIKey: "sk-test", BaseURL: server.URL})
	summary := client.SummarizeOrFallback(context.Background(), "treść zapytania", "treść odpowiedzi")

	require.NotEmpty(t, summary.QuestionSummary)
	require.NotEmpty(t, summary.ReplySummary)
	require.Contains(t, summary.QuestionSummary, "Błąd AI")
	require.Contains(t, summary.QuestionSummary, "treść zapytania")
	require.Contains(t, summary.ReplySummary, "treść odpowiedzi")
}

func TestFallbackTruncatesExcerpts(t *testing.T) {
	long := strings.Repeat("a", 300)
	summary := Fallback("powód", long, "krótka odpowiedź")

	require.Contains(t, summary.QuestionSummary, "powód")
	require.NotContains(t, summary.QuestionSummary, strings.Repeat("a", 101))
	require.Contains(t, summary.QuestionSummary, strings.Repeat("a", 100))
	require.Contains(t, summary.ReplySummary, "krótka odpowiedź")
}
