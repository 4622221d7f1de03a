package projections

import (
	"context"

	"github.com/yasintkd/fittrack-lite/internal/adapters/storage/report"
)

// topLimit caps each leaderboard. Ties beyond the cut are resolved by the
// database's arbitrary ordering.
const topLimit = 10

// GetPerformanceResult carries the leaderboards.
type GetPerformanceResult struct {
	TopMembers  []report.LabelTotal
	TopClasses  []report.LabelTotal
	TopTrainers []report.LabelTotal
}

// GetPerformanceDeps holds dependencies for GetPerformance.
type GetPerformanceDeps struct {
	ReportStore ReportStore
}

// QueryGetPerformance assembles the top-10 members, classes and trainers by
// revenue. Trainer totals are share-weighted income.
func QueryGetPerformance(ctx context.Context, deps GetPerformanceDeps) (GetPerformanceResult, error) {
	members, err := deps.ReportStore.TopMembers(ctx, topLimit)
	if err != nil {
		return GetPerformanceResult{}, err
	}
	classes, err := deps.ReportStore.TopClasses(ctx, topLimit)
	if err != nil {
		return GetPerformanceResult{}, err
	}
	trainers, err := deps.ReportStore.TopTrainers(ctx, topLimit)
	if err != nil {
		return GetPerformanceResult{}, err
	}
	return GetPerformanceResult{
		TopMembers:  members,
		TopClasses:  classes,
		TopTrainers: trainers,
	}, nil
}
