package web

import (
	"net/http"
	"strconv"

	"github.com/gorilla/csrf"

	"github.com/yasintkd/fittrack-lite/internal/application/orchestrators"
	"github.com/yasintkd/fittrack-lite/internal/application/projections"
)

func paymentInputFromForm(r *http.Request) orchestrators.RecordPaymentInput {
	memberID, _ := strconv.ParseInt(r.FormValue("MemberID"), 10, 64)
	amount, _ := strconv.ParseFloat(r.FormValue("Amount"), 64)
	return orchestrators.RecordPaymentInput{
		MemberID:    memberID,
		Amount:      amount,
		PaymentDate: r.FormValue("PaymentDate"),
		StartDate:   r.FormValue("StartDate"),
		EndDate:     r.FormValue("EndDate"),
		Note:        r.FormValue("Note"),
	}
}

// handlePaymentList handles GET /payments
func handlePaymentList(w http.ResponseWriter, r *http.Request) {
	result, err := projections.QueryGetPaymentList(r.Context(), projections.GetPaymentListDeps{
		PaymentStore: stores.PaymentStore,
		MemberStore:  stores.MemberStore,
	})
	if err != nil {
		internalError(w, err)
		return
	}

	if isHTMLRequest(r) {
		renderTemplate(w, r, "payment_list.html", map[string]any{
			"CSRFToken": csrf.Token(r),
			"Payments":  result.Payments,
			"Members":   result.Members,
		})
		return
	}
	writeJSON(w, result)
}

// handleAddPayment handles POST /add_payment (member chosen in the form)
func handleAddPayment(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form submission", http.StatusBadRequest)
		return
	}
	deps := orchestrators.RecordPaymentDeps{PaymentStore: stores.PaymentStore}
	if _, err := orchestrators.ExecuteRecordPayment(r.Context(), paymentInputFromForm(r), deps); err != nil {
		internalError(w, err)
		return
	}

	if isHTMLRequest(r) {
		http.Redirect(w, r, "/payments", http.StatusSeeOther)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handlePaymentForm handles GET /add_payment/{member_id}. The form is
// pre-filled with a suggested payment date based on the member's history.
func handlePaymentForm(w http.ResponseWriter, r *http.Request) {
	memberID, ok := pathID(r, "member_id")
	if !ok {
		http.Error(w, "Invalid member id", http.StatusBadRequest)
		return
	}

	result, err := projections.QueryGetPaymentForm(r.Context(),
		projections.GetPaymentFormQuery{MemberID: memberID, Today: timeNow()},
		projections.GetPaymentFormDeps{
			MemberStore:  stores.MemberStore,
			PaymentStore: stores.PaymentStore,
		},
	)
	if err != nil {
		storeError(w, r, err)
		return
	}

	if isHTMLRequest(r) {
		renderTemplate(w, r, "payment_form.html", map[string]any{
			"CSRFToken":     csrf.Token(r),
			"Member":        result.Member,
			"SuggestedDate": result.SuggestedDate,
		})
		return
	}
	writeJSON(w, result)
}

// handleSavePayment handles POST /save_payment/{member_id}
func handleSavePayment(w http.ResponseWriter, r *http.Request) {
	memberID, ok := pathID(r, "member_id")
	if !ok {
		http.Error(w, "Invalid member id", http.StatusBadRequest)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form submission", http.StatusBadRequest)
		return
	}
	input := paymentInputFromForm(r)
	input.MemberID = memberID

	deps := orchestrators.RecordPaymentDeps{PaymentStore: stores.PaymentStore}
	if _, err := orchestrators.ExecuteRecordPayment(r.Context(), input, deps); err != nil {
		internalError(w, err)
		return
	}

	if isHTMLRequest(r) {
		http.Redirect(w, r, "/member/"+strconv.FormatInt(memberID, 10), http.StatusSeeOther)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleEditPayment handles GET /edit_payment/{id}
func handleEditPayment(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		http.Error(w, "Invalid payment id", http.StatusBadRequest)
		return
	}
	p, err := stores.PaymentStore.GetByID(r.Context(), id)
	if err != nil {
		storeError(w, r, err)
		return
	}
	m, err := stores.MemberStore.GetByID(r.Context(), p.MemberID)
	if err != nil {
		storeError(w, r, err)
		return
	}
	renderTemplate(w, r, "payment_edit.html", map[string]any{
		"CSRFToken": csrf.Token(r),
		"Payment":   p,
		"Member":    m,
	})
}

// handleUpdatePayment handles POST /update_payment/{id}. The payment keeps
// its member; only amount, dates, and note change.
func handleUpdatePayment(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		http.Error(w, "Invalid payment id", http.StatusBadRequest)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form submission", http.StatusBadRequest)
		return
	}
	if !requireFormFields(w, r, "Amount", "PaymentDate", "StartDate", "EndDate", "Note") {
		return
	}
	input := paymentInputFromForm(r)
	input.ID = id

	deps := orchestrators.RecordPaymentDeps{PaymentStore: stores.PaymentStore}
	if err := orchestrators.ExecuteUpdatePayment(r.Context(), input, deps); err != nil {
		storeError(w, r, err)
		return
	}

	p, err := stores.PaymentStore.GetByID(r.Context(), id)
	if err != nil {
		storeError(w, r, err)
		return
	}
	if isHTMLRequest(r) {
		http.Redirect(w, r, "/member/"+strconv.FormatInt(p.MemberID, 10), http.StatusSeeOther)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleDeletePayment handles GET /delete_payment/{id}, matching the legacy
// link-based delete. Redirects back to the owning member's page.
func handleDeletePayment(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		http.Error(w, "Invalid payment id", http.StatusBadRequest)
		return
	}
	deps := orchestrators.RecordPaymentDeps{PaymentStore: stores.PaymentStore}
	memberID, err := orchestrators.ExecuteDeletePayment(r.Context(), id, deps)
	if err != nil {
		storeError(w, r, err)
		return
	}
	http.Redirect(w, r, "/member/"+strconv.FormatInt(memberID, 10), http.StatusSeeOther)
}
