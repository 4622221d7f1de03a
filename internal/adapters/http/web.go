package web

import (
	"net/http"
	"os"
	"time"

	"github.com/yasintkd/fittrack-lite/internal/adapters/email"
	"github.com/yasintkd/fittrack-lite/internal/adapters/http/middleware"
	classStore "github.com/yasintkd/fittrack-lite/internal/adapters/storage/class"
	enrollmentStore "github.com/yasintkd/fittrack-lite/internal/adapters/storage/enrollment"
	memberStore "github.com/yasintkd/fittrack-lite/internal/adapters/storage/member"
	paymentStore "github.com/yasintkd/fittrack-lite/internal/adapters/storage/payment"
	reportStore "github.com/yasintkd/fittrack-lite/internal/adapters/storage/report"
	trainerStore "github.com/yasintkd/fittrack-lite/internal/adapters/storage/trainer"
	userStore "github.com/yasintkd/fittrack-lite/internal/adapters/storage/user"
)

// Stores holds all storage dependencies.
type Stores struct {
	UserStore       userStore.Store
	MemberStore     memberStore.Store
	TrainerStore    trainerStore.Store
	ClassStore      classStore.Store
	EnrollmentStore enrollmentStore.Store
	PaymentStore    paymentStore.Store
	ReportStore     reportStore.Store
}

// Global stores instance (set by NewMux)
var stores *Stores

// Global session store instance
var sessions *middleware.SessionStore

// RateLimitPerSecond controls the per-IP rate limit. Tests can increase this.
var RateLimitPerSecond = 10

// Global email sender instance (set by SetEmailSender)
var emailSender email.Sender

// Email configuration
var emailFromAddress string

// SetEmailSender sets the global email sender for the application.
func SetEmailSender(sender email.Sender, from string) {
	emailSender = sender
	emailFromAddress = from
}

// NewMux wires HTTP handlers for the app.
func NewMux(staticDir string, s *Stores, csrfKey []byte) http.Handler {
	stores = s
	sessions = middleware.NewSessionStore()
	middleware.SecureCookies = os.Getenv("FITTRACK_ENV") == "production"

	mux := http.NewServeMux()
	mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServer(http.Dir(staticDir))))
	registerRoutes(mux)

	// Rate limiter: configurable requests per second per IP (OWASP A04)
	limiter := middleware.NewRateLimiter(RateLimitPerSecond, time.Second)

	return middleware.Chain(mux,
		middleware.SecurityHeaders,
		middleware.CSRF(csrfKey),
		middleware.Auth(sessions),
		middleware.RateLimit(limiter),
		middleware.RequestID,
	)
}
