package web

import (
	"bytes"
	"encoding/json"
	"errors"
	"html/template"
	"log/slog"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/gorilla/csrf"
	"github.com/yuin/goldmark"
	goldmarkHTML "github.com/yuin/goldmark/renderer/html"

	"github.com/yasintkd/fittrack-lite/internal/adapters/http/middleware"
	"github.com/yasintkd/fittrack-lite/internal/adapters/storage"
	memberStore "github.com/yasintkd/fittrack-lite/internal/adapters/storage/member"
	"github.com/yasintkd/fittrack-lite/internal/application/orchestrators"
	"github.com/yasintkd/fittrack-lite/internal/application/projections"
	domainUser "github.com/yasintkd/fittrack-lite/internal/domain/user"
)

// timeNow is a variable for testability.
var timeNow = time.Now

// mdRenderer is a goldmark instance configured for safe HTML output.
// Raw HTML in markdown input is escaped (WithUnsafe is NOT set), preventing XSS.
var mdRenderer = goldmark.New(
	goldmark.WithRendererOptions(
		goldmarkHTML.WithHardWraps(),
	),
)

// internalError logs the real error and returns a generic message to the client.
// This prevents leaking internal details per OWASP A05.
func internalError(w http.ResponseWriter, err error) {
	slog.Error("internal_error", "error", err.Error())
	http.Error(w, "internal server error", http.StatusInternalServerError)
}

// storeError maps storage.ErrNotFound to 404 and everything else to a 500.
func storeError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, storage.ErrNotFound) {
		http.NotFound(w, r)
		return
	}
	internalError(w, err)
}

// strictDecode decodes JSON from the request body, rejecting unknown fields.
func strictDecode(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}

// templatesDir is relative to the process working directory (the repo root in
// production). Tests point it at the package-local directory.
var templatesDir = "internal/adapters/http/templates"

func isHTMLRequest(r *http.Request) bool {
	accept := r.Header.Get("Accept")
	return strings.Contains(accept, "text/html") || strings.Contains(accept, "application/xhtml+xml")
}

// requireFormFields rejects update submissions that do not carry every
// expected key. Update forms submit the complete record, so an absent key
// means a partial submission and the row must not be overwritten from it.
// PRE: r.ParseForm has been called
// POST: Returns false after writing a 400 when any key is absent
func requireFormFields(w http.ResponseWriter, r *http.Request, keys ...string) bool {
	var missing []string
	for _, k := range keys {
		if !r.PostForm.Has(k) {
			missing = append(missing, k)
		}
	}
	if len(missing) > 0 {
		http.Error(w, "Missing form fields: "+strings.Join(missing, ", "), http.StatusBadRequest)
		return false
	}
	return true
}

// pathID parses the named path segment as a positive row id.
func pathID(r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func renderTemplate(w http.ResponseWriter, r *http.Request, templateName string, data any) {
	sess, ok := middleware.GetSessionFromContext(r.Context())
	role := ""
	username := ""
	if ok {
		role = sess.Role
		username = sess.Username
	}

	funcMap := template.FuncMap{
		"currentRole":     func() string { return role },
		"currentUsername": func() string { return username },
		"isLoggedIn":      func() bool { return role != "" },
		"isAdmin":         func() bool { return role == domainUser.RoleAdmin },
		"csrfToken":       func() string { return csrf.Token(r) },
		"money":           func(v float64) string { return strconv.FormatFloat(v, 'f', 2, 64) },
		"renderMarkdown": func(md string) template.HTML {
			var buf bytes.Buffer
			if err := mdRenderer.Convert([]byte(md), &buf); err != nil {
				return template.HTML(template.HTMLEscapeString(md))
			}
			return template.HTML(buf.String())
		},
	}

	layoutPath := filepath.Join(templatesDir, "layout.html")
	pagePath := filepath.Join(templatesDir, templateName)
	tpl, err := template.New("layout.html").Funcs(funcMap).ParseFiles(layoutPath, pagePath)
	if err != nil {
		http.Error(w, "Template error: "+err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := tpl.Execute(w, data); err != nil {
		http.Error(w, "Render error: "+err.Error(), http.StatusInternalServerError)
		return
	}
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

// handleIndex redirects the root to the dashboard.
func handleIndex(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}

// handleDashboard handles GET /dashboard (admin overview).
func handleDashboard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sess, _ := middleware.GetSessionFromContext(ctx)
	if sess.Role == domainUser.RoleTrainer {
		http.Redirect(w, r, "/trainer_dashboard", http.StatusSeeOther)
		return
	}

	members, err := stores.MemberStore.List(ctx, memberStore.ListFilter{})
	if err != nil {
		internalError(w, err)
		return
	}
	trainers, err := stores.TrainerStore.List(ctx)
	if err != nil {
		internalError(w, err)
		return
	}
	classes, err := stores.ClassStore.List(ctx)
	if err != nil {
		internalError(w, err)
		return
	}
	revenue, err := projections.QueryGetRevenueReport(ctx,
		projections.GetRevenueReportQuery{Today: timeNow()},
		projections.GetRevenueReportDeps{ReportStore: stores.ReportStore},
	)
	if err != nil {
		internalError(w, err)
		return
	}
	expiring, err := projections.QueryGetExpiringMembers(ctx,
		projections.GetExpiringMembersQuery{Today: timeNow()},
		projections.GetExpiringMembersDeps{MemberStore: stores.MemberStore, PaymentStore: stores.PaymentStore},
	)
	if err != nil {
		internalError(w, err)
		return
	}

	data := map[string]any{
		"MemberCount":  len(members),
		"TrainerCount": len(trainers),
		"ClassCount":   len(classes),
		"MonthIncome":  revenue.TotalIncome,
		"Month":        revenue.Month,
		"Expiring":     expiring.Expiring,
	}
	if isHTMLRequest(r) {
		renderTemplate(w, r, "dashboard.html", data)
		return
	}
	writeJSON(w, data)
}

// handleTrainerDashboard handles GET /trainer_dashboard (trainer's own panel).
func handleTrainerDashboard(w http.ResponseWriter, r *http.Request) {
	sess, _ := middleware.GetSessionFromContext(r.Context())
	if sess.Role != domainUser.RoleTrainer || sess.TrainerID <= 0 {
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
		return
	}
	renderTrainerPanel(w, r, sess.TrainerID)
}

// handleLogin handles GET (form) and POST (authenticate) for /login
func handleLogin(w http.ResponseWriter, r *http.Request) {
	if r.Method == "GET" {
		// If already logged in, redirect to dashboard
		if _, ok := middleware.GetSessionFromContext(r.Context()); ok {
			http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
			return
		}
		renderTemplate(w, r, "login.html", map[string]any{
			"CSRFToken": csrf.Token(r),
		})
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form submission", http.StatusBadRequest)
		return
	}

	input := orchestrators.LoginInput{
		Username: r.FormValue("Username"),
		Password: r.FormValue("Password"),
	}
	deps := orchestrators.LoginDeps{
		UserStore: stores.UserStore,
	}

	result, err := orchestrators.ExecuteLogin(r.Context(), input, deps)
	if err != nil {
		renderTemplate(w, r, "login.html", map[string]any{
			"CSRFToken": csrf.Token(r),
			"Error":     err.Error(),
		})
		return
	}

	token, err := sessions.Create(result.UserID, result.Username, result.Role, result.TrainerID)
	if err != nil {
		http.Error(w, "Session error", http.StatusInternalServerError)
		return
	}

	middleware.SetSessionCookie(w, token)
	if result.Role == domainUser.RoleTrainer {
		http.Redirect(w, r, "/trainer_dashboard", http.StatusSeeOther)
		return
	}
	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}

// handleLogout handles GET /logout
func handleLogout(w http.ResponseWriter, r *http.Request) {
	cookie, err := r.Cookie("fittrack_session")
	if err == nil {
		sessions.Delete(cookie.Value)
	}

	middleware.ClearSessionCookie(w)
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

// handleAddUser handles GET (form) and POST (create) for /add_user.
// Route registration restricts this to admins.
func handleAddUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if r.Method == "GET" {
		trainers, err := stores.TrainerStore.List(ctx)
		if err != nil {
			internalError(w, err)
			return
		}
		renderTemplate(w, r, "add_user.html", map[string]any{
			"CSRFToken": csrf.Token(r),
			"Trainers":  trainers,
		})
		return
	}

	input := orchestrators.CreateUserInput{}
	if strings.HasPrefix(r.Header.Get("Content-Type"), "application/x-www-form-urlencoded") {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Invalid form submission", http.StatusBadRequest)
			return
		}
		input.Username = r.FormValue("Username")
		input.Password = r.FormValue("Password")
		input.Role = r.FormValue("Role")
		input.TrainerID, _ = strconv.ParseInt(r.FormValue("TrainerID"), 10, 64)
	} else {
		if err := strictDecode(r, &input); err != nil {
			http.Error(w, "Invalid request", http.StatusBadRequest)
			return
		}
	}

	deps := orchestrators.CreateUserDeps{UserStore: stores.UserStore}
	id, err := orchestrators.ExecuteCreateUser(ctx, input, deps)
	if err != nil {
		// Validation problems go back to the form; anything else is a 500.
		switch {
		case errors.Is(err, orchestrators.ErrUsernameTaken),
			errors.Is(err, domainUser.ErrEmptyUsername),
			errors.Is(err, domainUser.ErrInvalidRole),
			errors.Is(err, domainUser.ErrEmptyPassword),
			errors.Is(err, domainUser.ErrPasswordTooShort):
			if isHTMLRequest(r) {
				trainers, listErr := stores.TrainerStore.List(ctx)
				if listErr != nil {
					internalError(w, listErr)
					return
				}
				renderTemplate(w, r, "add_user.html", map[string]any{
					"CSRFToken": csrf.Token(r),
					"Trainers":  trainers,
					"Error":     err.Error(),
				})
				return
			}
			http.Error(w, err.Error(), http.StatusBadRequest)
		default:
			internalError(w, err)
		}
		return
	}

	if isHTMLRequest(r) {
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
		return
	}
	w.WriteHeader(http.StatusCreated)
	writeJSON(w, map[string]any{"ID": id})
}
