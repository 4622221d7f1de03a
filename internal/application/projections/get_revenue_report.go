package projections

import (
	"context"
	"sort"
	"time"

	"github.com/yasintkd/fittrack-lite/internal/adapters/storage/report"
	domainPayment "github.com/yasintkd/fittrack-lite/internal/domain/payment"
	domainTrainer "github.com/yasintkd/fittrack-lite/internal/domain/trainer"
)

// GetRevenueReportQuery carries query parameters.
type GetRevenueReportQuery struct {
	Today time.Time
}

// TrainerTotal is one trainer's share sum for the month.
type TrainerTotal struct {
	TrainerName string
	Total       float64
}

// GetRevenueReportResult carries the current-month revenue report.
type GetRevenueReportResult struct {
	Payments      []report.MonthPaymentRow
	TotalIncome   float64
	TrainerTotals []TrainerTotal
	SalonTotal    float64
	Month         string
}

// GetRevenueReportDeps holds dependencies for GetRevenueReport.
type GetRevenueReportDeps struct {
	ReportStore ReportStore
}

// QueryGetRevenueReport sums this month's payments and splits each between
// its trainer and the studio. Payments without a trainer contribute their
// studio share only.
// POST: Per-row shares reconcile: trainer_share + salon_share == round2(amount)
func QueryGetRevenueReport(ctx context.Context, query GetRevenueReportQuery, deps GetRevenueReportDeps) (GetRevenueReportResult, error) {
	month := domainPayment.MonthPrefix(query.Today)
	rows, err := deps.ReportStore.MonthPayments(ctx, month)
	if err != nil {
		return GetRevenueReportResult{}, err
	}

	result := GetRevenueReportResult{Payments: rows, Month: month}
	trainerTotals := make(map[string]float64)
	for _, r := range rows {
		result.TotalIncome += r.Amount
		trainerShare, salonShare := domainTrainer.SplitAmount(r.Amount, r.SharePercent)
		if r.TrainerName != "" {
			trainerTotals[r.TrainerName] += trainerShare
		}
		result.SalonTotal += salonShare
	}

	names := make([]string, 0, len(trainerTotals))
	for name := range trainerTotals {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		result.TrainerTotals = append(result.TrainerTotals, TrainerTotal{
			TrainerName: name,
			Total:       domainTrainer.Round2(trainerTotals[name]),
		})
	}

	return result, nil
}
