package sejm

import (
	"context"
	"encoding/json"
	"log/slog"
)

// MPs returns the normalized member list. When the upstream list is
// unreachable or malformed it serves a fixed set of fallback records,
// so a presentation surface never renders an empty parliament because
// of an outage.
func (c *Client) MPs(ctx context.Context) []MP {
	ctx, span := tracer.Start(ctx, "MPs")
	defer span.End()

	payload := c.getJSON(ctx, c.list, "/MP")
	if payload == nil {
		slog.WarnContext(ctx, "MP list unavailable, serving fallback records")
		return fallbackMPs()
	}

	var raws []rawMP
	err := json.Unmarshal(payload, &raws)
	if err != nil {
		slog.ErrorContext(ctx, "MP list has unexpected shape, serving fallback records", "err", err)
		return fallbackMPs()
	}
	// a literal `null` body decodes cleanly into a nil slice; treat
	// it like any other unusable list (an empty array stays empty)
	if raws == nil {
		slog.WarnContext(ctx, "MP list is null, serving fallback records")
		return fallbackMPs()
	}

	mps := make([]MP, len(raws))
	for i, raw := range raws {
		mps[i] = normalizeMP(raw)
	}
	return mps
}

// MPByID resolves one MP from the normalized list.
func (c *Client) MPByID(ctx context.Context, id int) (MP, bool) {
	for _, mp := range c.MPs(ctx) {
		if mp.ID == id {
			return mp, true
		}
	}
	return MP{}, false
}
