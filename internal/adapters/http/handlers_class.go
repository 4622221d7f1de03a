package web

import (
	"net/http"
	"strconv"

	"github.com/gorilla/csrf"

	"github.com/yasintkd/fittrack-lite/internal/application/orchestrators"
	"github.com/yasintkd/fittrack-lite/internal/application/projections"
)

func classInputFromForm(r *http.Request) orchestrators.SaveClassInput {
	trainerID, _ := strconv.ParseInt(r.FormValue("TrainerID"), 10, 64)
	return orchestrators.SaveClassInput{
		TrainerID:   trainerID,
		Name:        r.FormValue("Name"),
		Description: r.FormValue("Description"),
		Day:         r.FormValue("Day"),
		Time:        r.FormValue("Time"),
	}
}

// handleClassList handles GET /classes
func handleClassList(w http.ResponseWriter, r *http.Request) {
	result, err := projections.QueryGetClassList(r.Context(), projections.GetClassListDeps{
		ClassStore:   stores.ClassStore,
		TrainerStore: stores.TrainerStore,
	})
	if err != nil {
		internalError(w, err)
		return
	}

	if isHTMLRequest(r) {
		renderTemplate(w, r, "class_list.html", map[string]any{
			"CSRFToken": csrf.Token(r),
			"Classes":   result.Classes,
			"Trainers":  result.Trainers,
		})
		return
	}
	writeJSON(w, result)
}

// handleAddClass handles POST /add_class
func handleAddClass(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form submission", http.StatusBadRequest)
		return
	}
	deps := orchestrators.SaveClassDeps{ClassStore: stores.ClassStore}
	if _, err := orchestrators.ExecuteCreateClass(r.Context(), classInputFromForm(r), deps); err != nil {
		internalError(w, err)
		return
	}

	if isHTMLRequest(r) {
		http.Redirect(w, r, "/classes", http.StatusSeeOther)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleEditClass handles GET /edit_class/{id}
func handleEditClass(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		http.Error(w, "Invalid class id", http.StatusBadRequest)
		return
	}
	c, err := stores.ClassStore.GetByID(r.Context(), id)
	if err != nil {
		storeError(w, r, err)
		return
	}
	trainers, err := stores.TrainerStore.List(r.Context())
	if err != nil {
		internalError(w, err)
		return
	}
	renderTemplate(w, r, "class_form.html", map[string]any{
		"CSRFToken": csrf.Token(r),
		"Class":     c,
		"Trainers":  trainers,
	})
}

// handleUpdateClass handles POST /update_class/{id}
func handleUpdateClass(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		http.Error(w, "Invalid class id", http.StatusBadRequest)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form submission", http.StatusBadRequest)
		return
	}
	if !requireFormFields(w, r, "Name", "Description", "Day", "Time", "TrainerID") {
		return
	}
	input := classInputFromForm(r)
	input.ID = id

	deps := orchestrators.SaveClassDeps{ClassStore: stores.ClassStore}
	if err := orchestrators.ExecuteUpdateClass(r.Context(), input, deps); err != nil {
		storeError(w, r, err)
		return
	}

	if isHTMLRequest(r) {
		http.Redirect(w, r, "/classes", http.StatusSeeOther)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleDeleteClass handles POST /delete_class/{id}
func handleDeleteClass(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		http.Error(w, "Invalid class id", http.StatusBadRequest)
		return
	}
	deps := orchestrators.SaveClassDeps{ClassStore: stores.ClassStore}
	if err := orchestrators.ExecuteDeleteClass(r.Context(), id, deps); err != nil {
		storeError(w, r, err)
		return
	}
	http.Redirect(w, r, "/classes", http.StatusSeeOther)
}

// handleClassDetail handles GET /class/{id}
func handleClassDetail(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		http.Error(w, "Invalid class id", http.StatusBadRequest)
		return
	}

	result, err := projections.QueryGetClassDetail(r.Context(),
		projections.GetClassDetailQuery{ClassID: id, Today: timeNow()},
		projections.GetClassDetailDeps{
			ClassStore:      stores.ClassStore,
			TrainerStore:    stores.TrainerStore,
			MemberStore:     stores.MemberStore,
			EnrollmentStore: stores.EnrollmentStore,
			PaymentStore:    stores.PaymentStore,
		},
	)
	if err != nil {
		storeError(w, r, err)
		return
	}

	if isHTMLRequest(r) {
		renderTemplate(w, r, "class_detail.html", map[string]any{
			"Class":         result.Class,
			"Trainer":       result.Trainer,
			"HasTrainer":    result.HasTrainer,
			"Members":       result.Members,
			"TotalPayment":  result.TotalPayment,
			"TrainerShare":  result.TrainerShare,
			"SalonShare":    result.SalonShare,
			"UnpaidMembers": result.UnpaidMembers,
			"Month":         result.Month,
		})
		return
	}
	writeJSON(w, result)
}
