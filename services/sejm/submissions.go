package sejm

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
)

const (
	// listLimit bounds full submission listings for one MP.
	listLimit = 100
	// countLimit is the result-size ceiling for count-only queries,
	// which report the returned list's length.
	countLimit = 10000
)

// Interpellations lists the interpellations submitted by one MP,
// normalized. An unavailable upstream degrades to an empty list.
func (c *Client) Interpellations(ctx context.Context, mpID int) []Interpellation {
	ctx, span := tracer.Start(ctx, "Interpellations")
	defer span.End()

	endpoint := fmt.Sprintf("/interpellations?from=%s&limit=%d", FormatMPID(mpID), listLimit)
	payload := c.getJSON(ctx, c.http, endpoint)
	if payload == nil {
		return nil
	}

	var list []Interpellation
	err := json.Unmarshal(payload, &list)
	if err != nil {
		slog.WarnContext(ctx, "interpellation list has unexpected shape", "mp", mpID, "err", err)
		return nil
	}
	for i := range list {
		normalizeInterpellation(&list[i])
	}
	return list
}

// InterpellationsCount reports how many interpellations an MP has
// submitted; absent or empty responses normalize to 0.
func (c *Client) InterpellationsCount(ctx context.Context, mpID int) int {
	endpoint := fmt.Sprintf("/interpellations?from=%s&limit=%d", FormatMPID(mpID), countLimit)
	return c.countList(ctx, endpoint)
}

// InterpellationBody fetches an interpellation's full text, reduced
// to normalized plain text. "" means absent or unavailable.
func (c *Client) InterpellationBody(ctx context.Context, num int) string {
	return c.getHTML(ctx, fmt.Sprintf("/interpellations/%d/body", num))
}

// InterpellationReplyBody fetches a reply document's text.
func (c *Client) InterpellationReplyBody(ctx context.Context, num int, replyKey string) string {
	return c.getHTML(ctx, fmt.Sprintf("/interpellations/%d/reply/%s/body", num, replyKey))
}

// WrittenQuestions lists the written questions submitted by one MP.
func (c *Client) WrittenQuestions(ctx context.Context, mpID int) []WrittenQuestion {
	ctx, span := tracer.Start(ctx, "WrittenQuestions")
	defer span.End()

	endpoint := fmt.Sprintf("/writtenQuestions?from=%s&limit=%d", FormatMPID(mpID), listLimit)
	payload := c.getJSON(ctx, c.http, endpoint)
	if payload == nil {
		return nil
	}

	var list []WrittenQuestion
	err := json.Unmarshal(payload, &list)
	if err != nil {
		slog.WarnContext(ctx, "written question list has unexpected shape", "mp", mpID, "err", err)
		return nil
	}
	for i := range list {
		normalizeWrittenQuestion(&list[i])
	}
	return list
}

// QuestionsCount reports how many written questions an MP has
// submitted; absent or empty responses normalize to 0.
func (c *Client) QuestionsCount(ctx context.Context, mpID int) int {
	endpoint := fmt.Sprintf("/writtenQuestions?from=%s&limit=%d", FormatMPID(mpID), countLimit)
	return c.countList(ctx, endpoint)
}

// WrittenQuestionBody fetches a written question's full text.
func (c *Client) WrittenQuestionBody(ctx context.Context, num int) string {
	return c.getHTML(ctx, fmt.Sprintf("/writtenQuestions/%d/body", num))
}

// WrittenQuestionReplyBody fetches a reply document's text.
func (c *Client) WrittenQuestionReplyBody(ctx context.Context, num int, replyKey string) string {
	return c.getHTML(ctx, fmt.Sprintf("/writtenQuestions/%d/reply/%s/body", num, replyKey))
}

func (c *Client) countList(ctx context.Context, endpoint string) int {
	ctx, span := tracer.Start(ctx, "countList")
	defer span.End()

	payload := c.getJSON(ctx, c.http, endpoint)
	if payload == nil {
		return 0
	}

	var items []json.RawMessage
	err := json.Unmarshal(payload, &items)
	if err != nil {
		slog.WarnContext(ctx, "count query has unexpected shape", "endpoint", endpoint, "err", err)
		return 0
	}
	return len(items)
}
