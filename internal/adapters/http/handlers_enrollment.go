package web

import (
	"net/http"
	"strconv"

	"github.com/gorilla/csrf"

	"github.com/yasintkd/fittrack-lite/internal/application/orchestrators"
	"github.com/yasintkd/fittrack-lite/internal/application/projections"
)

// handleEnroll handles POST /enroll
func handleEnroll(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form submission", http.StatusBadRequest)
		return
	}
	memberID, _ := strconv.ParseInt(r.FormValue("MemberID"), 10, 64)
	classID, _ := strconv.ParseInt(r.FormValue("ClassID"), 10, 64)

	deps := orchestrators.EnrollDeps{EnrollmentStore: stores.EnrollmentStore}
	input := orchestrators.EnrollInput{MemberID: memberID, ClassID: classID}
	if _, err := orchestrators.ExecuteEnroll(r.Context(), input, deps); err != nil {
		internalError(w, err)
		return
	}

	if isHTMLRequest(r) {
		http.Redirect(w, r, "/enrollments", http.StatusSeeOther)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleEnrollmentList handles GET /enrollments
func handleEnrollmentList(w http.ResponseWriter, r *http.Request) {
	result, err := projections.QueryGetEnrollmentList(r.Context(), projections.GetEnrollmentListDeps{
		EnrollmentStore: stores.EnrollmentStore,
		MemberStore:     stores.MemberStore,
		ClassStore:      stores.ClassStore,
	})
	if err != nil {
		internalError(w, err)
		return
	}

	if isHTMLRequest(r) {
		renderTemplate(w, r, "enrollment_list.html", map[string]any{
			"CSRFToken":   csrf.Token(r),
			"Enrollments": result.Enrollments,
			"Members":     result.Members,
			"Classes":     result.Classes,
		})
		return
	}
	writeJSON(w, result)
}
