package web

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/csrf"

	"github.com/yasintkd/fittrack-lite/internal/adapters/http/middleware"
	memberStore "github.com/yasintkd/fittrack-lite/internal/adapters/storage/member"
	"github.com/yasintkd/fittrack-lite/internal/application/orchestrators"
	"github.com/yasintkd/fittrack-lite/internal/application/projections"
	domainMember "github.com/yasintkd/fittrack-lite/internal/domain/member"
	domainUser "github.com/yasintkd/fittrack-lite/internal/domain/user"
)

// memberInputFromForm reads the full member record from a submitted form.
// Numeric fields parse leniently; a blank or malformed value becomes zero.
func memberInputFromForm(r *http.Request) orchestrators.SaveMemberInput {
	height, _ := strconv.ParseFloat(r.FormValue("Height"), 64)
	weight, _ := strconv.ParseFloat(r.FormValue("Weight"), 64)
	trainerID, _ := strconv.ParseInt(r.FormValue("TrainerID"), 10, 64)
	return orchestrators.SaveMemberInput{
		TrainerID:        trainerID,
		Name:             r.FormValue("Name"),
		Email:            r.FormValue("Email"),
		Phone:            r.FormValue("Phone"),
		JoinDate:         r.FormValue("JoinDate"),
		BirthDate:        r.FormValue("BirthDate"),
		Height:           height,
		Weight:           weight,
		BeltLevel:        r.FormValue("BeltLevel"),
		WeightCategory:   r.FormValue("WeightCategory"),
		ParentName:       r.FormValue("ParentName"),
		ParentPhone:      r.FormValue("ParentPhone"),
		ParentEmail:      r.FormValue("ParentEmail"),
		RegistrationDate: r.FormValue("RegistrationDate"),
	}
}

// ownsMember reports whether the session may see the given member.
// Admins see everyone; trainers only members assigned to them.
func ownsMember(sess middleware.Session, m domainMember.Member) bool {
	if sess.Role == domainUser.RoleAdmin {
		return true
	}
	return m.TrainerID == sess.TrainerID
}

// handleMemberList handles GET /members. Trainers see only their own members.
func handleMemberList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sess, _ := middleware.GetSessionFromContext(ctx)

	filter := memberStore.ListFilter{}
	if sess.Role == domainUser.RoleTrainer {
		filter.TrainerID = sess.TrainerID
	}
	members, err := stores.MemberStore.List(ctx, filter)
	if err != nil {
		internalError(w, err)
		return
	}
	trainers, err := stores.TrainerStore.List(ctx)
	if err != nil {
		internalError(w, err)
		return
	}

	data := map[string]any{
		"Members":  members,
		"Trainers": trainers,
	}
	if isHTMLRequest(r) {
		renderTemplate(w, r, "member_list.html", data)
		return
	}
	writeJSON(w, data)
}

// handleAddMember handles POST /add
func handleAddMember(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sess, _ := middleware.GetSessionFromContext(ctx)

	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form submission", http.StatusBadRequest)
		return
	}
	input := memberInputFromForm(r)
	// New members created by a trainer belong to that trainer.
	if sess.Role == domainUser.RoleTrainer {
		input.TrainerID = sess.TrainerID
	}

	deps := orchestrators.SaveMemberDeps{MemberStore: stores.MemberStore}
	if _, err := orchestrators.ExecuteCreateMember(ctx, input, deps); err != nil {
		internalError(w, err)
		return
	}

	if isHTMLRequest(r) {
		http.Redirect(w, r, "/members", http.StatusSeeOther)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleDeleteMember handles POST /delete_member/{id}
func handleDeleteMember(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		http.Error(w, "Invalid member id", http.StatusBadRequest)
		return
	}
	deps := orchestrators.SaveMemberDeps{MemberStore: stores.MemberStore}
	if err := orchestrators.ExecuteDeleteMember(r.Context(), id, deps); err != nil {
		storeError(w, r, err)
		return
	}
	http.Redirect(w, r, "/members", http.StatusSeeOther)
}

// handleEditMember handles GET /edit_member/{id}
func handleEditMember(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sess, _ := middleware.GetSessionFromContext(ctx)
	id, ok := pathID(r, "id")
	if !ok {
		http.Error(w, "Invalid member id", http.StatusBadRequest)
		return
	}

	m, err := stores.MemberStore.GetByID(ctx, id)
	if err != nil {
		storeError(w, r, err)
		return
	}
	if !ownsMember(sess, m) {
		http.Error(w, "Forbidden", http.StatusForbidden)
		return
	}
	trainers, err := stores.TrainerStore.List(ctx)
	if err != nil {
		internalError(w, err)
		return
	}

	renderTemplate(w, r, "member_form.html", map[string]any{
		"CSRFToken": csrf.Token(r),
		"Member":    m,
		"Trainers":  trainers,
	})
}

// handleUpdateMember handles POST /update_member/{id}
func handleUpdateMember(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sess, _ := middleware.GetSessionFromContext(ctx)
	id, ok := pathID(r, "id")
	if !ok {
		http.Error(w, "Invalid member id", http.StatusBadRequest)
		return
	}

	existing, err := stores.MemberStore.GetByID(ctx, id)
	if err != nil {
		storeError(w, r, err)
		return
	}
	if !ownsMember(sess, existing) {
		http.Error(w, "Forbidden", http.StatusForbidden)
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form submission", http.StatusBadRequest)
		return
	}
	required := []string{
		"Name", "Email", "Phone", "JoinDate", "BirthDate", "Height", "Weight",
		"BeltLevel", "WeightCategory", "ParentName", "ParentPhone", "ParentEmail",
		"RegistrationDate",
	}
	// Trainers never submit TrainerID; it comes from their session.
	if sess.Role == domainUser.RoleAdmin {
		required = append(required, "TrainerID")
	}
	if !requireFormFields(w, r, required...) {
		return
	}
	input := memberInputFromForm(r)
	input.ID = id
	if sess.Role == domainUser.RoleTrainer {
		input.TrainerID = sess.TrainerID
	}

	deps := orchestrators.SaveMemberDeps{MemberStore: stores.MemberStore}
	if err := orchestrators.ExecuteUpdateMember(ctx, input, deps); err != nil {
		if errors.Is(err, orchestrators.ErrIncompleteRecord) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		internalError(w, err)
		return
	}

	if isHTMLRequest(r) {
		http.Redirect(w, r, "/member/"+strconv.FormatInt(id, 10), http.StatusSeeOther)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleSearchMembers handles GET /search_members?q=
func handleSearchMembers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sess, _ := middleware.GetSessionFromContext(ctx)
	query := r.URL.Query().Get("q")

	members, err := stores.MemberStore.SearchByName(ctx, query)
	if err != nil {
		internalError(w, err)
		return
	}
	if sess.Role == domainUser.RoleTrainer {
		var own []domainMember.Member
		for _, m := range members {
			if m.TrainerID == sess.TrainerID {
				own = append(own, m)
			}
		}
		members = own
	}
	trainers, err := stores.TrainerStore.List(ctx)
	if err != nil {
		internalError(w, err)
		return
	}

	data := map[string]any{
		"Members":  members,
		"Trainers": trainers,
		"Search":   query,
	}
	if isHTMLRequest(r) {
		renderTemplate(w, r, "member_list.html", data)
		return
	}
	writeJSON(w, data)
}

// handleMemberDetail handles GET /member/{id}
func handleMemberDetail(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sess, _ := middleware.GetSessionFromContext(ctx)
	id, ok := pathID(r, "id")
	if !ok {
		http.Error(w, "Invalid member id", http.StatusBadRequest)
		return
	}

	result, err := projections.QueryGetMemberDetail(ctx,
		projections.GetMemberDetailQuery{MemberID: id, Today: timeNow()},
		projections.GetMemberDetailDeps{
			MemberStore:     stores.MemberStore,
			PaymentStore:    stores.PaymentStore,
			EnrollmentStore: stores.EnrollmentStore,
			ClassStore:      stores.ClassStore,
		},
	)
	if err != nil {
		storeError(w, r, err)
		return
	}
	if !ownsMember(sess, result.Member) {
		http.Error(w, "Forbidden", http.StatusForbidden)
		return
	}

	if isHTMLRequest(r) {
		renderTemplate(w, r, "member_detail.html", map[string]any{
			"CSRFToken":       csrf.Token(r),
			"Member":          result.Member,
			"Payments":        result.Payments,
			"ClassNames":      result.ClassNames,
			"RenewSuggestion": result.RenewSuggestion,
		})
		return
	}
	writeJSON(w, result)
}
