package order

import (
	"context"
	"iter"
	"log/slog"

	"github.com/katalvlaran/pairpath/cache"
	"github.com/katalvlaran/pairpath/domain"
)

// Score is the simulated cost of an access order.
type Score struct {
	Total cache.Cost // sum of all access costs
	Pairs int        // number of pairs accessed
}

// PerPair returns the average cost per accessed pair (0 for an empty order).
func (s Score) PerPair() cache.Cost {
	if s.Pairs == 0 {
		return 0
	}

	return s.Total / cache.Cost(s.Pairs)
}

// ScorePairs replays pairs through a fresh recency list of m, accessing
// both feeds of every pair in turn. When logger is non-nil every pair is
// logged at debug level and every feed access at LevelTrace.
//
// Complexity: O(L·k) for L pairs and k distinct feeds.
func ScorePairs(m *cache.Model, pairs iter.Seq[domain.Pair], logger *slog.Logger) Score {
	var (
		ctx     = context.Background()
		entries = m.StartSimulation()
		pairLog = logger != nil && logger.Enabled(ctx, slog.LevelDebug)
		feedLog = logger != nil && logger.Enabled(ctx, LevelTrace)
		s       Score
	)
	for p := range pairs {
		var pairCost cache.Cost
		for _, feed := range p.Feeds() {
			c := m.SimulateAccess(&entries, feed)
			if feedLog {
				logger.Log(ctx, LevelTrace, "accessed feed", "feed", feed, "cost", c)
			}
			pairCost += c
		}
		if pairLog {
			logger.Debug("accessed feed pair", "pair", p.String(), "cost", pairCost)
		}
		s.Total += pairCost
		s.Pairs++
	}

	return s
}

// LevelTrace is the slog level used for per-feed access tracing.
const LevelTrace = slog.LevelDebug - 4
