// Package summarizer produces paired summaries of a parliamentary
// question and its reply through an OpenAI chat completion. Missing
// or placeholder credentials never reach the network: they yield a
// deterministic fallback summary instead, so a caller always ends up
// with two non-empty strings.
package summarizer

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"time"

	"sejmdata-backend/lib/telemetry"

	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("sejmdata.services.summarizer")

const DefaultBaseURL = "https://api.openai.com/v1"

const (
	model          = "gpt-4o-mini"
	maxTokens      = 500
	temperature    = 0.3
	placeholderKey = "your_openai_api_key_here"
)

const defaultSystemPrompt = "Jesteś ekspertem w analizie dokumentów parlamentarnych. " +
	"Twoim zadaniem jest tworzenie zwięzłych, obiektywnych streszczeń zapytań poselskich i odpowiedzi na nie."

const userPromptFormat = `
Proszę o stworzenie streszczenia następującego zapytania poselskiego i odpowiedzi na nie:

ZAPYTANIE POSELSKIE:
%s

ODPOWIEDŹ:
%s

Proszę o zwrócenie odpowiedzi w formacie JSON z polami:
- question_summary: streszczenie zapytania (maksymalnie 2-3 zdania)
- reply_summary: streszczenie odpowiedzi (maksymalnie 2-3 zdania)

Streszczenia powinny być obiektywne, zwięzłe i zrozumiałe dla obywateli.
`

type Config struct {
	// APIKey is the service credential; empty or the placeholder
	// value disables summarization.
	APIKey string
	// SystemPrompt overrides the default system instruction.
	SystemPrompt string
	// BaseURL defaults to DefaultBaseURL.
	BaseURL string
}

func ConfigFromEnv() Config {
	return Config{
		APIKey:       os.Getenv("OPENAI_API_KEY"),
		SystemPrompt: os.Getenv("OPENAI_SYSTEM_PROMPT"),
	}
}

// Check reports whether a usable credential is configured, with a
// human-readable reason when it is not.
func (c Config) Check() (bool, string) {
	if c.APIKey == "" {
		return false, "OPENAI_API_KEY nie jest skonfigurowany"
	}
	if c.APIKey == placeholderKey {
		return false, "OPENAI_API_KEY zawiera wartość placeholder"
	}
	return true, ""
}

// Summary is the two-field summarization result; both fields are
// populated even on degraded paths.
type Summary struct {
	QuestionSummary string `json:"question_summary"`
	ReplySummary    string `json:"reply_summary"`
}

// ServiceError classifies a failed summarization call: bad status, or
// a malformed completion response. The caller is expected to catch it
// and substitute a fallback summary.
type ServiceError struct {
	Status int
	Reason string
}

func (e *ServiceError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("summarization service: %s (status %d)", e.Reason, e.Status)
	}
	return fmt.Sprintf("summarization service: %s", e.Reason)
}

type Client struct {
	config Config
	http   *resty.Client
}

func NewClient(config Config) *Client {
	baseURL := config.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	client := resty.New()
	client.SetBaseURL(baseURL)
	client.SetAuthToken(config.APIKey)
	client.SetHeader("content-type", "application/json")
	client.SetTimeout(time.Second * 60)
	client.SetRetryCount(3)
	client.SetRetryWaitTime(500 * time.Millisecond)
	client.SetRetryMaxWaitTime(8 * time.Second)
	client.AddRetryCondition(func(res *resty.Response, err error) bool {
		return err != nil || res.StatusCode() >= 500
	})
	telemetry.InstrumentResty(client, "sejmdata.services.summarizer")

	return &Client{config: config, http: client}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type responseFormat struct {
	Type string `json:"type"`
}

type chatRequest struct {
	Model          string         `json:"model"`
	Messages       []chatMessage  `json:"messages"`
	MaxTokens      int            `json:"max_tokens"`
	Temperature    float64        `json:"temperature"`
	ResponseFormat responseFormat `json:"response_format"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Summarize issues one chat completion over both documents. An
// unconfigured credential short-circuits to a fallback summary before
// any network call; a failed or malformed completion raises a
// *ServiceError. The call itself is never retried beyond the
// transport's capped backoff policy.
func (c *Client) Summarize(ctx context.Context, questionBody, replyBody string) (Summary, error) {
	ctx, span := tracer.Start(ctx, "Summarize")
	defer span.End()

	configured, reason := c.config.Check()
	if !configured {
		slog.WarnContext(ctx, "summarizer not configured, serving fallback", "reason", reason)
		return Fallback("Streszczenie AI niedostępne: "+reason, questionBody, replyBody), nil
	}

	systemPrompt := c.config.SystemPrompt
	if systemPrompt == "" {
		systemPrompt = defaultSystemPrompt
	}

	res, err := c.http.R().
		SetContext(ctx).
		SetBody(chatRequest{
			Model: model,
			Messages: []chatMessage{
				{Role: "system", Content: systemPrompt},
				{Role: "user", Content: fmt.Sprintf(userPromptFormat, questionBody, replyBody)},
			},
			MaxTokens:      maxTokens,
			Temperature:    temperature,
			ResponseFormat: responseFormat{Type: "json_object"},
		}).
		Post("/chat/completions")
	if err != nil {
		return Summary{}, &ServiceError{Reason: err.Error()}
	}
	if !res.IsSuccess() {
		return Summary{}, &ServiceError{
			Status: res.StatusCode(),
			Reason: "completion request rejected",
		}
	}

	var completion chatResponse
	err = json.Unmarshal(res.Body(), &completion)
	if err != nil {
		return Summary{}, &ServiceError{Reason: "unparseable completion response"}
	}
	if len(completion.Choices) == 0 || completion.Choices[0].Message.Content == "" {
		return Summary{}, &ServiceError{Reason: "completion response has no message"}
	}

	var summary Summary
	err = json.Unmarshal([]byte(completion.Choices[0].Message.Content), &summary)
	if err != nil {
		return Summary{}, &ServiceError{Reason: "completion content is not the expected JSON"}
	}
	if summary.QuestionSummary == "" || summary.ReplySummary == "" {
		return Summary{}, &ServiceError{Reason: "completion content is missing required fields"}
	}
	return summary, nil
}

// SummarizeOrFallback never fails: a *ServiceError from Summarize is
// converted into a fallback summary labeled with the error text.
func (c *Client) SummarizeOrFallback(ctx context.Context, questionBody, replyBody string) Summary {
	summary, err := c.Summarize(ctx, questionBody, replyBody)
	if err != nil {
		slog.ErrorContext(ctx, "summarization failed, serving fallback", "err", err)
		return Fallback("Błąd AI: "+err.Error(), questionBody, replyBody)
	}
	return summary
}

const excerptLength = 100

// Fallback builds a deterministic summary embedding the failure
// reason and a truncated excerpt of each source document.
func Fallback(reason, questionBody, replyBody string) Summary {
	return Summary{
		QuestionSummary: fmt.Sprintf("%s. Zapytanie dotyczy: %s...", reason, excerpt(questionBody)),
		ReplySummary:    fmt.Sprintf("%s. Odpowiedź zawiera: %s...", reason, excerpt(replyBody)),
	}
}

func excerpt(s string) string {
	runes := []rune(s)
	if len(runes) <= excerptLength {
		return s
	}
	return string(runes[:excerptLength])
}
