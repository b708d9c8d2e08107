package engine

import (
	"context"
	"sort"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// CatalogEntry pairs an opportunity with its requirements for matching.
type CatalogEntry struct {
	ID           uuid.UUID
	Requirements RequirementSet
}

// OpportunityMatch is one catalog entry's eligibility score for a profile.
type OpportunityMatch struct {
	OpportunityID uuid.UUID `json:"opportunity_id"`
	Score         int       `json:"score"`
}

type Matcher interface {
	FindMatches(ctx context.Context, profile CandidateProfile, catalog []CatalogEntry, minScore int) ([]OpportunityMatch, error)
}

type matcher struct {
	scorer      Scorer
	concurrency int
}

// NewMatcher creates a catalog matcher that scores entries concurrently.
// Concurrency <= 0 falls back to 4 workers.
func NewMatcher(scorer Scorer, concurrency int) Matcher {
	if concurrency <= 0 {
		concurrency = 4
	}
	return &matcher{
		scorer:      scorer,
		concurrency: concurrency,
	}
}

// FindMatches implements Matcher. The scan is a pure map over the catalog:
// scoring is side-effect free, so entries are evaluated in parallel and only
// the final sort imposes order. Equal scores keep catalog order.
func (m *matcher) FindMatches(ctx context.Context, profile CandidateProfile, catalog []CatalogEntry, minScore int) ([]OpportunityMatch, error) {
	scores := make([]int, len(catalog))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(m.concurrency)

	for i := range catalog {
		i := i
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			scores[i] = m.scorer.Score(profile, catalog[i].Requirements).Score
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	matches := make([]OpportunityMatch, 0, len(catalog))
	for i, entry := range catalog {
		if scores[i] < minScore {
			continue
		}
		matches = append(matches, OpportunityMatch{
			OpportunityID: entry.ID,
			Score:         scores[i],
		})
	}

	sort.SliceStable(matches, func(a, b int) bool {
		return matches[a].Score > matches[b].Score
	})

	return matches, nil
}
