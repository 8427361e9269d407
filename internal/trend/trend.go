// Package trend approximates ecosystem activity over time.
//
// True token-launch dates are not exposed by the upstream source, so the
// analyzer buckets tokens by the calendar month of their last market update
// and uses that recency as an activity proxy. The output is explicitly an
// approximation, not launch-date ground truth.
package trend

import (
	"sort"

	"github.com/yourorg/ai-analytics-hub/internal/model"
)

// monthLayout is the bucket key format, sortable lexicographically
const monthLayout = "2006-01"

// LaunchTrends groups tokens by the year+month of their last update and
// returns per-month counts in ascending month order. Records with a missing
// or unparseable timestamp are skipped rather than failing the computation.
func LaunchTrends(tokens []model.TokenRecord) []model.TrendPoint {
	counts := map[string]int{}
	for _, t := range tokens {
		ts, ok := t.UpdatedAt()
		if !ok {
			continue
		}
		counts[ts.Format(monthLayout)]++
	}

	points := make([]model.TrendPoint, 0, len(counts))
	for month, count := range counts {
		points = append(points, model.TrendPoint{Month: month, Count: count})
	}
	sort.Slice(points, func(i, j int) bool {
		return points[i].Month < points[j].Month
	})

	return points
}
