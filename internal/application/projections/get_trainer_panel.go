package projections

import (
	"context"
	"time"

	"github.com/yasintkd/fittrack-lite/internal/adapters/storage/report"
	domainClass "github.com/yasintkd/fittrack-lite/internal/domain/class"
	domainPayment "github.com/yasintkd/fittrack-lite/internal/domain/payment"
	domainTrainer "github.com/yasintkd/fittrack-lite/internal/domain/trainer"
)

// GetTrainerPanelQuery carries query parameters.
type GetTrainerPanelQuery struct {
	TrainerID int64
	Today     time.Time
}

// GetTrainerPanelResult carries the trainer's own dashboard data.
type GetTrainerPanelResult struct {
	Trainer       domainTrainer.Trainer
	Classes       []domainClass.Class
	Payments      []report.MonthPaymentRow
	TotalIncome   float64
	TrainerIncome float64
	Month         string
}

// GetTrainerPanelDeps holds dependencies for GetTrainerPanel.
type GetTrainerPanelDeps struct {
	TrainerStore TrainerStore
	ClassStore   ClassStore
	ReportStore  ReportStore
}

// QueryGetTrainerPanel assembles a trainer's own panel: their classes and this
// month's payments flowing through them, with the share-weighted income.
// PRE: TrainerID > 0; caller has verified the session owns this trainer
// POST: TrainerIncome = round2(TotalIncome * share / 100)
func QueryGetTrainerPanel(ctx context.Context, query GetTrainerPanelQuery, deps GetTrainerPanelDeps) (GetTrainerPanelResult, error) {
	t, err := deps.TrainerStore.GetByID(ctx, query.TrainerID)
	if err != nil {
		return GetTrainerPanelResult{}, err
	}

	classes, err := deps.ClassStore.ListByTrainerID(ctx, query.TrainerID)
	if err != nil {
		return GetTrainerPanelResult{}, err
	}

	month := domainPayment.MonthPrefix(query.Today)
	rows, err := deps.ReportStore.MonthPayments(ctx, month)
	if err != nil {
		return GetTrainerPanelResult{}, err
	}

	var mine []report.MonthPaymentRow
	var total float64
	for _, r := range rows {
		if r.TrainerID != query.TrainerID {
			continue
		}
		mine = append(mine, r)
		total += r.Amount
	}

	income, _ := domainTrainer.SplitAmount(total, t.SharePercent)
	return GetTrainerPanelResult{
		Trainer:       t,
		Classes:       classes,
		Payments:      mine,
		TotalIncome:   total,
		TrainerIncome: income,
		Month:         month,
	}, nil
}
