package web

import (
	"net/http"
	"strconv"

	"github.com/gorilla/csrf"

	"github.com/yasintkd/fittrack-lite/internal/adapters/http/middleware"
	"github.com/yasintkd/fittrack-lite/internal/application/orchestrators"
	"github.com/yasintkd/fittrack-lite/internal/application/projections"
	domainUser "github.com/yasintkd/fittrack-lite/internal/domain/user"
)

func trainerInputFromForm(r *http.Request) orchestrators.SaveTrainerInput {
	share, _ := strconv.ParseFloat(r.FormValue("SharePercent"), 64)
	return orchestrators.SaveTrainerInput{
		Name:         r.FormValue("Name"),
		Email:        r.FormValue("Email"),
		Phone:        r.FormValue("Phone"),
		SharePercent: share,
	}
}

// handleTrainerList handles GET /trainers
func handleTrainerList(w http.ResponseWriter, r *http.Request) {
	trainers, err := stores.TrainerStore.List(r.Context())
	if err != nil {
		internalError(w, err)
		return
	}

	data := map[string]any{"Trainers": trainers}
	if isHTMLRequest(r) {
		renderTemplate(w, r, "trainer_list.html", data)
		return
	}
	writeJSON(w, data)
}

// handleAddTrainer handles POST /add_trainer
func handleAddTrainer(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form submission", http.StatusBadRequest)
		return
	}
	deps := orchestrators.SaveTrainerDeps{TrainerStore: stores.TrainerStore}
	if _, err := orchestrators.ExecuteCreateTrainer(r.Context(), trainerInputFromForm(r), deps); err != nil {
		internalError(w, err)
		return
	}

	if isHTMLRequest(r) {
		http.Redirect(w, r, "/trainers", http.StatusSeeOther)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleEditTrainer handles GET /edit_trainer/{id}
func handleEditTrainer(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		http.Error(w, "Invalid trainer id", http.StatusBadRequest)
		return
	}
	t, err := stores.TrainerStore.GetByID(r.Context(), id)
	if err != nil {
		storeError(w, r, err)
		return
	}
	renderTemplate(w, r, "trainer_form.html", map[string]any{
		"CSRFToken": csrf.Token(r),
		"Trainer":   t,
	})
}

// handleUpdateTrainer handles POST /update_trainer/{id}
func handleUpdateTrainer(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		http.Error(w, "Invalid trainer id", http.StatusBadRequest)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form submission", http.StatusBadRequest)
		return
	}
	if !requireFormFields(w, r, "Name", "Email", "Phone", "SharePercent") {
		return
	}
	input := trainerInputFromForm(r)
	input.ID = id

	deps := orchestrators.SaveTrainerDeps{TrainerStore: stores.TrainerStore}
	if err := orchestrators.ExecuteUpdateTrainer(r.Context(), input, deps); err != nil {
		storeError(w, r, err)
		return
	}

	if isHTMLRequest(r) {
		http.Redirect(w, r, "/trainers", http.StatusSeeOther)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleDeleteTrainer handles POST /delete_trainer/{id}
func handleDeleteTrainer(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		http.Error(w, "Invalid trainer id", http.StatusBadRequest)
		return
	}
	deps := orchestrators.SaveTrainerDeps{TrainerStore: stores.TrainerStore}
	if err := orchestrators.ExecuteDeleteTrainer(r.Context(), id, deps); err != nil {
		storeError(w, r, err)
		return
	}
	http.Redirect(w, r, "/trainers", http.StatusSeeOther)
}

// handleTrainerDetail handles GET /trainer/{id}. Admins get the management
// view; a trainer gets their own panel and a plain 403 for anyone else's.
func handleTrainerDetail(w http.ResponseWriter, r *http.Request) {
	sess, _ := middleware.GetSessionFromContext(r.Context())
	id, ok := pathID(r, "id")
	if !ok {
		http.Error(w, "Invalid trainer id", http.StatusBadRequest)
		return
	}

	if sess.Role == domainUser.RoleTrainer {
		if sess.TrainerID != id {
			http.Error(w, "Forbidden", http.StatusForbidden)
			return
		}
		renderTrainerPanel(w, r, id)
		return
	}

	result, err := projections.QueryGetTrainerDetail(r.Context(),
		projections.GetTrainerDetailQuery{TrainerID: id},
		projections.GetTrainerDetailDeps{
			TrainerStore:    stores.TrainerStore,
			ClassStore:      stores.ClassStore,
			EnrollmentStore: stores.EnrollmentStore,
		},
	)
	if err != nil {
		storeError(w, r, err)
		return
	}

	if isHTMLRequest(r) {
		renderTemplate(w, r, "trainer_detail.html", map[string]any{
			"Trainer":    result.Trainer,
			"ClassStats": result.ClassStats,
		})
		return
	}
	writeJSON(w, result)
}

// renderTrainerPanel renders the trainer's own dashboard for the given id.
// Callers are responsible for the ownership check.
func renderTrainerPanel(w http.ResponseWriter, r *http.Request, trainerID int64) {
	result, err := projections.QueryGetTrainerPanel(r.Context(),
		projections.GetTrainerPanelQuery{TrainerID: trainerID, Today: timeNow()},
		projections.GetTrainerPanelDeps{
			TrainerStore: stores.TrainerStore,
			ClassStore:   stores.ClassStore,
			ReportStore:  stores.ReportStore,
		},
	)
	if err != nil {
		storeError(w, r, err)
		return
	}

	if isHTMLRequest(r) {
		renderTemplate(w, r, "trainer_panel.html", map[string]any{
			"Trainer":       result.Trainer,
			"Classes":       result.Classes,
			"Payments":      result.Payments,
			"TotalIncome":   result.TotalIncome,
			"TrainerIncome": result.TrainerIncome,
			"Month":         result.Month,
		})
		return
	}
	writeJSON(w, result)
}
