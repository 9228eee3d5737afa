package sejm

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"sejmdata-backend/services/declarations"

	"golang.org/x/sync/errgroup"
)

// ErrMPNotFound is the one terminal failure of profile aggregation:
// there is no way to build a profile for an unknown MP id.
var ErrMPNotFound = errors.New("mp not found")

// Profile assembles the composite record for one MP: base record,
// voting stats, submission counts and the financial declaration. The
// four sub-fetches run concurrently and each degrades to a safe
// default on its own, so the result is always either complete or not
// found, never partial.
func (c *Client) Profile(ctx context.Context, id int) (MPProfile, error) {
	ctx, span := tracer.Start(ctx, "Profile")
	defer span.End()

	mp, ok := c.MPByID(ctx, id)
	if !ok {
		return MPProfile{}, fmt.Errorf("%w: %d", ErrMPNotFound, id)
	}

	var stats VotingStats
	var interpellations, questions int
	var declaration *declarations.Declaration

	group, gctx := errgroup.WithContext(ctx)
	group.Go(func() error {
		stats = c.VotingStats(gctx, id)
		return nil
	})
	group.Go(func() error {
		interpellations = c.InterpellationsCount(gctx, id)
		return nil
	})
	group.Go(func() error {
		questions = c.QuestionsCount(gctx, id)
		return nil
	})
	group.Go(func() error {
		decl, found, err := c.decls.Lookup(gctx, id)
		if err != nil {
			slog.ErrorContext(gctx, "declaration lookup failed, degrading to none",
				"mp", id, "err", err)
			return nil
		}
		if found {
			declaration = decl
		}
		return nil
	})
	// the sub-fetches never fail, they degrade
	_ = group.Wait()

	profile := MPProfile{
		MP:                   mp,
		Stats:                stats,
		InterpellationsCount: interpellations,
		QuestionsCount:       questions,
		PresencePct:          stats.PresencePct,
		FinancialDeclaration: declaration,
	}
	if age, ok := ageFromBirthDate(mp.BirthDate, time.Now()); ok {
		profile.Age = age
	}
	return profile, nil
}
