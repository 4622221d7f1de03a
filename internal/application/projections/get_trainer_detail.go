package projections

import (
	"context"

	domainTrainer "github.com/yasintkd/fittrack-lite/internal/domain/trainer"
)

// GetTrainerDetailQuery carries query parameters.
type GetTrainerDetailQuery struct {
	TrainerID int64
}

// ClassStat is one of the trainer's classes with its headcount.
type ClassStat struct {
	ClassID      int64
	ClassName    string
	StudentCount int
}

// GetTrainerDetailResult carries the trainer page data.
type GetTrainerDetailResult struct {
	Trainer    domainTrainer.Trainer
	ClassStats []ClassStat
}

// GetTrainerDetailDeps holds dependencies for GetTrainerDetail.
type GetTrainerDetailDeps struct {
	TrainerStore    TrainerStore
	ClassStore      ClassStore
	EnrollmentStore EnrollmentStore
}

// QueryGetTrainerDetail assembles the admin view of a trainer: record plus
// classes with enrollment counts.
// PRE: TrainerID > 0
// POST: Returns storage.ErrNotFound when the trainer does not exist
func QueryGetTrainerDetail(ctx context.Context, query GetTrainerDetailQuery, deps GetTrainerDetailDeps) (GetTrainerDetailResult, error) {
	t, err := deps.TrainerStore.GetByID(ctx, query.TrainerID)
	if err != nil {
		return GetTrainerDetailResult{}, err
	}

	classes, err := deps.ClassStore.ListByTrainerID(ctx, query.TrainerID)
	if err != nil {
		return GetTrainerDetailResult{}, err
	}

	var stats []ClassStat
	for _, c := range classes {
		count, err := deps.EnrollmentStore.CountByClassID(ctx, c.ID)
		if err != nil {
			return GetTrainerDetailResult{}, err
		}
		stats = append(stats, ClassStat{ClassID: c.ID, ClassName: c.Name, StudentCount: count})
	}

	return GetTrainerDetailResult{Trainer: t, ClassStats: stats}, nil
}
