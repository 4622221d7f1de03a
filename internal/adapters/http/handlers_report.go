package web

import (
	"net/http"

	"github.com/gorilla/csrf"

	"github.com/yasintkd/fittrack-lite/internal/application/orchestrators"
	"github.com/yasintkd/fittrack-lite/internal/application/projections"
)

// handleRevenueReport handles GET /reports (current calendar month).
func handleRevenueReport(w http.ResponseWriter, r *http.Request) {
	result, err := projections.QueryGetRevenueReport(r.Context(),
		projections.GetRevenueReportQuery{Today: timeNow()},
		projections.GetRevenueReportDeps{ReportStore: stores.ReportStore},
	)
	if err != nil {
		internalError(w, err)
		return
	}

	if isHTMLRequest(r) {
		renderTemplate(w, r, "revenue_report.html", map[string]any{
			"Payments":      result.Payments,
			"TotalIncome":   result.TotalIncome,
			"TrainerTotals": result.TrainerTotals,
			"SalonTotal":    result.SalonTotal,
			"Month":         result.Month,
		})
		return
	}
	writeJSON(w, result)
}

// handleMonthlyReport handles GET /monthly_report (all-time breakdowns).
func handleMonthlyReport(w http.ResponseWriter, r *http.Request) {
	result, err := projections.QueryGetMonthlyReport(r.Context(),
		projections.GetMonthlyReportDeps{ReportStore: stores.ReportStore},
	)
	if err != nil {
		internalError(w, err)
		return
	}

	if isHTMLRequest(r) {
		renderTemplate(w, r, "monthly_report.html", map[string]any{
			"MonthlyTotals": result.MonthlyTotals,
			"BeltTotals":    result.BeltTotals,
			"ClassTotals":   result.ClassTotals,
		})
		return
	}
	writeJSON(w, result)
}

// handleExpiring handles GET /expiring (memberships ending within a week).
func handleExpiring(w http.ResponseWriter, r *http.Request) {
	result, err := projections.QueryGetExpiringMembers(r.Context(),
		projections.GetExpiringMembersQuery{Today: timeNow()},
		projections.GetExpiringMembersDeps{
			MemberStore:  stores.MemberStore,
			PaymentStore: stores.PaymentStore,
		},
	)
	if err != nil {
		internalError(w, err)
		return
	}

	if isHTMLRequest(r) {
		renderTemplate(w, r, "expiring.html", map[string]any{
			"CSRFToken": csrf.Token(r),
			"Expiring":  result.Expiring,
		})
		return
	}
	writeJSON(w, result)
}

// handleExpiringNotify handles POST /expiring/notify: emails a renewal
// reminder to every expiring member with an address.
func handleExpiringNotify(w http.ResponseWriter, r *http.Request) {
	result, err := orchestrators.ExecuteSendRenewalReminders(r.Context(),
		orchestrators.SendRenewalRemindersInput{Today: timeNow()},
		orchestrators.SendRenewalRemindersDeps{
			MemberStore:  stores.MemberStore,
			PaymentStore: stores.PaymentStore,
			EmailSender:  emailSender,
			FromAddress:  emailFromAddress,
		},
	)
	if err != nil {
		internalError(w, err)
		return
	}

	if isHTMLRequest(r) {
		http.Redirect(w, r, "/expiring", http.StatusSeeOther)
		return
	}
	writeJSON(w, result)
}

// handlePerformance handles GET /performance (top-10 leaderboards).
func handlePerformance(w http.ResponseWriter, r *http.Request) {
	result, err := projections.QueryGetPerformance(r.Context(),
		projections.GetPerformanceDeps{ReportStore: stores.ReportStore},
	)
	if err != nil {
		internalError(w, err)
		return
	}

	if isHTMLRequest(r) {
		renderTemplate(w, r, "performance.html", map[string]any{
			"TopMembers":  result.TopMembers,
			"TopClasses":  result.TopClasses,
			"TopTrainers": result.TopTrainers,
		})
		return
	}
	writeJSON(w, result)
}
