package projections

import (
	"context"
	"testing"
	"time"

	"github.com/yasintkd/fittrack-lite/internal/adapters/storage/report"
	domainTrainer "github.com/yasintkd/fittrack-lite/internal/domain/trainer"
)

type mockReportStore struct {
	monthPayments []report.MonthPaymentRow
	monthly       []report.MonthTotal
	belts         []report.LabelTotal
	classes       []report.LabelTotal
	topMembers    []report.LabelTotal
	topClasses    []report.LabelTotal
	topTrainers   []report.LabelTotal
}

// MonthPayments returns the seeded rows regardless of month.
func (m *mockReportStore) MonthPayments(_ context.Context, _ string) ([]report.MonthPaymentRow, error) {
	return m.monthPayments, nil
}

// MonthlyTotals returns the seeded totals.
func (m *mockReportStore) MonthlyTotals(_ context.Context) ([]report.MonthTotal, error) {
	return m.monthly, nil
}

// BeltTotals returns the seeded totals.
func (m *mockReportStore) BeltTotals(_ context.Context) ([]report.LabelTotal, error) {
	return m.belts, nil
}

// ClassTotals returns the seeded totals.
func (m *mockReportStore) ClassTotals(_ context.Context) ([]report.LabelTotal, error) {
	return m.classes, nil
}

// TopMembers returns the seeded leaderboard.
func (m *mockReportStore) TopMembers(_ context.Context, _ int) ([]report.LabelTotal, error) {
	return m.topMembers, nil
}

// TopClasses returns the seeded leaderboard.
func (m *mockReportStore) TopClasses(_ context.Context, _ int) ([]report.LabelTotal, error) {
	return m.topClasses, nil
}

// TopTrainers returns the seeded leaderboard.
func (m *mockReportStore) TopTrainers(_ context.Context, _ int) ([]report.LabelTotal, error) {
	return m.topTrainers, nil
}

// TestQueryGetRevenueReport_Totals verifies per-trainer sums, the studio
// total, and reconciliation against total income.
func TestQueryGetRevenueReport_Totals(t *testing.T) {
	store := &mockReportStore{monthPayments: []report.MonthPaymentRow{
		{PaymentID: 1, MemberName: "A", Amount: 100, TrainerID: 1, TrainerName: "Coach One", SharePercent: 30},
		{PaymentID: 2, MemberName: "B", Amount: 50, TrainerID: 2, TrainerName: "Coach Two", SharePercent: 40},
		{PaymentID: 3, MemberName: "C", Amount: 75}, // not enrolled anywhere
	}}

	res, err := QueryGetRevenueReport(context.Background(), GetRevenueReportQuery{Today: time.Now()}, GetRevenueReportDeps{ReportStore: store})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if res.TotalIncome != 225 {
		t.Errorf("TotalIncome = %v, want 225", res.TotalIncome)
	}
	if len(res.TrainerTotals) != 2 {
		t.Fatalf("TrainerTotals = %+v, want two trainers", res.TrainerTotals)
	}
	if res.TrainerTotals[0].TrainerName != "Coach One" || res.TrainerTotals[0].Total != 30.00 {
		t.Errorf("first trainer = %+v, want Coach One / 30.00", res.TrainerTotals[0])
	}
	if res.TrainerTotals[1].TrainerName != "Coach Two" || res.TrainerTotals[1].Total != 20.00 {
		t.Errorf("second trainer = %+v, want Coach Two / 20.00", res.TrainerTotals[1])
	}
	// 70 + 30 from the attributed payments, plus the full 75 unattributed.
	if res.SalonTotal != 175.00 {
		t.Errorf("SalonTotal = %v, want 175.00", res.SalonTotal)
	}

	var trainerSum float64
	for _, tt := range res.TrainerTotals {
		trainerSum += tt.Total
	}
	if domainTrainer.Round2(trainerSum+res.SalonTotal) != domainTrainer.Round2(res.TotalIncome) {
		t.Errorf("shares %v + %v do not reconcile to income %v", trainerSum, res.SalonTotal, res.TotalIncome)
	}
}

// TestQueryGetPerformance passes the leaderboards through unchanged.
func TestQueryGetPerformance(t *testing.T) {
	store := &mockReportStore{
		topMembers:  []report.LabelTotal{{Label: "A", Total: 500}},
		topClasses:  []report.LabelTotal{{Label: "Kids", Total: 900}},
		topTrainers: []report.LabelTotal{{Label: "Coach", Total: 270}},
	}

	res, err := QueryGetPerformance(context.Background(), GetPerformanceDeps{ReportStore: store})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.TopMembers) != 1 || res.TopMembers[0].Label != "A" {
		t.Errorf("TopMembers = %+v", res.TopMembers)
	}
	if len(res.TopTrainers) != 1 || res.TopTrainers[0].Total != 270 {
		t.Errorf("TopTrainers = %+v", res.TopTrainers)
	}
}
