package projections

import (
	"context"

	"github.com/yasintkd/fittrack-lite/internal/adapters/storage/report"
)

// GetMonthlyReportResult carries the history report: totals by month, by belt
// level, and by class.
type GetMonthlyReportResult struct {
	MonthlyTotals []report.MonthTotal
	BeltTotals    []report.LabelTotal
	ClassTotals   []report.LabelTotal
}

// GetMonthlyReportDeps holds dependencies for GetMonthlyReport.
type GetMonthlyReportDeps struct {
	ReportStore ReportStore
}

// QueryGetMonthlyReport assembles the all-time revenue breakdowns.
func QueryGetMonthlyReport(ctx context.Context, deps GetMonthlyReportDeps) (GetMonthlyReportResult, error) {
	monthly, err := deps.ReportStore.MonthlyTotals(ctx)
	if err != nil {
		return GetMonthlyReportResult{}, err
	}
	belts, err := deps.ReportStore.BeltTotals(ctx)
	if err != nil {
		return GetMonthlyReportResult{}, err
	}
	classes, err := deps.ReportStore.ClassTotals(ctx)
	if err != nil {
		return GetMonthlyReportResult{}, err
	}
	return GetMonthlyReportResult{
		MonthlyTotals: monthly,
		BeltTotals:    belts,
		ClassTotals:   classes,
	}, nil
}
