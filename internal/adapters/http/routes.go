package web

import (
	"net/http"

	"github.com/yasintkd/fittrack-lite/internal/adapters/http/middleware"
	domainUser "github.com/yasintkd/fittrack-lite/internal/domain/user"
)

// registerRoutes wires every route on the mux. Patterns are method-qualified;
// paths match the legacy application so bookmarks keep working.
func registerRoutes(mux *http.ServeMux) {
	authed := func(h http.HandlerFunc) http.Handler {
		return middleware.RequireAuth(h)
	}
	adminOnly := func(h http.HandlerFunc) http.Handler {
		return middleware.RequireRole(domainUser.RoleAdmin)(h)
	}

	// Dashboards
	mux.Handle("GET /{$}", authed(handleIndex))
	mux.Handle("GET /dashboard", authed(handleDashboard))
	mux.Handle("GET /trainer_dashboard", authed(handleTrainerDashboard))

	// Auth
	mux.HandleFunc("GET /login", handleLogin)
	mux.HandleFunc("POST /login", handleLogin)
	mux.Handle("GET /logout", authed(handleLogout))
	mux.Handle("GET /add_user", adminOnly(handleAddUser))
	mux.Handle("POST /add_user", adminOnly(handleAddUser))

	// Members (trainer-scoped; see handlers_member.go)
	mux.Handle("GET /members", authed(handleMemberList))
	mux.Handle("POST /add", authed(handleAddMember))
	mux.Handle("POST /delete_member/{id}", adminOnly(handleDeleteMember))
	mux.Handle("GET /edit_member/{id}", authed(handleEditMember))
	mux.Handle("POST /update_member/{id}", authed(handleUpdateMember))
	mux.Handle("GET /search_members", authed(handleSearchMembers))
	mux.Handle("GET /member/{id}", authed(handleMemberDetail))

	// Trainers
	mux.HandleFunc("GET /trainers", handleTrainerList)
	mux.Handle("POST /add_trainer", authed(handleAddTrainer))
	mux.Handle("GET /edit_trainer/{id}", authed(handleEditTrainer))
	mux.Handle("POST /update_trainer/{id}", authed(handleUpdateTrainer))
	mux.Handle("POST /delete_trainer/{id}", authed(handleDeleteTrainer))
	mux.Handle("GET /trainer/{id}", authed(handleTrainerDetail))

	// Classes
	mux.HandleFunc("GET /classes", handleClassList)
	mux.Handle("POST /add_class", authed(handleAddClass))
	mux.Handle("GET /edit_class/{id}", authed(handleEditClass))
	mux.Handle("POST /update_class/{id}", authed(handleUpdateClass))
	mux.Handle("POST /delete_class/{id}", authed(handleDeleteClass))
	mux.Handle("GET /class/{id}", authed(handleClassDetail))

	// Enrollments
	mux.Handle("POST /enroll", authed(handleEnroll))
	mux.HandleFunc("GET /enrollments", handleEnrollmentList)

	// Payments
	mux.HandleFunc("GET /payments", handlePaymentList)
	mux.Handle("POST /add_payment", authed(handleAddPayment))
	mux.Handle("GET /add_payment/{member_id}", authed(handlePaymentForm))
	mux.Handle("POST /save_payment/{member_id}", authed(handleSavePayment))
	mux.Handle("GET /edit_payment/{id}", authed(handleEditPayment))
	mux.Handle("POST /update_payment/{id}", authed(handleUpdatePayment))
	mux.Handle("GET /delete_payment/{id}", authed(handleDeletePayment))

	// Reports
	mux.HandleFunc("GET /reports", handleRevenueReport)
	mux.HandleFunc("GET /monthly_report", handleMonthlyReport)
	mux.HandleFunc("GET /expiring", handleExpiring)
	mux.Handle("POST /expiring/notify", adminOnly(handleExpiringNotify))
	mux.HandleFunc("GET /performance", handlePerformance)
}
