package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"

	_ "modernc.org/sqlite"

	emailPkg "github.com/yasintkd/fittrack-lite/internal/adapters/email"
	web "github.com/yasintkd/fittrack-lite/internal/adapters/http"
	"github.com/yasintkd/fittrack-lite/internal/adapters/storage"
	classStore "github.com/yasintkd/fittrack-lite/internal/adapters/storage/class"
	enrollmentStore "github.com/yasintkd/fittrack-lite/internal/adapters/storage/enrollment"
	memberStore "github.com/yasintkd/fittrack-lite/internal/adapters/storage/member"
	paymentStore "github.com/yasintkd/fittrack-lite/internal/adapters/storage/payment"
	reportStore "github.com/yasintkd/fittrack-lite/internal/adapters/storage/report"
	trainerStore "github.com/yasintkd/fittrack-lite/internal/adapters/storage/trainer"
	userStore "github.com/yasintkd/fittrack-lite/internal/adapters/storage/user"
	"github.com/yasintkd/fittrack-lite/internal/application/orchestrators"
	"github.com/yasintkd/fittrack-lite/internal/config"
	domainUser "github.com/yasintkd/fittrack-lite/internal/domain/user"
)

// version is set at build time via -ldflags "-X main.version=..."
var version = "dev"

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	// Initialize database with WAL mode, foreign keys, and busy timeout
	dsn := cfg.DBPath + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=foreign_keys(ON)&_pragma=synchronous(NORMAL)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	defer db.Close()

	// Connection pool settings for WAL mode
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)

	if err := db.Ping(); err != nil {
		log.Fatalf("database unreachable: %v", err)
	}

	if err := storage.MigrateDB(db); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}
	log.Println("Database initialized successfully!")

	users := userStore.NewSQLiteStore(db)
	stores := &web.Stores{
		UserStore:       users,
		MemberStore:     memberStore.NewSQLiteStore(db),
		TrainerStore:    trainerStore.NewSQLiteStore(db),
		ClassStore:      classStore.NewSQLiteStore(db),
		EnrollmentStore: enrollmentStore.NewSQLiteStore(db),
		PaymentStore:    paymentStore.NewSQLiteStore(db),
		ReportStore:     reportStore.NewSQLiteStore(db),
	}

	// Seed the bootstrap admin if no users exist
	seedInput := orchestrators.CreateUserInput{
		Username: cfg.AdminUsername,
		Password: cfg.AdminPassword,
		Role:     domainUser.RoleAdmin,
	}
	if err := orchestrators.ExecuteSeedAdmin(context.Background(), seedInput, orchestrators.CreateUserDeps{UserStore: users}); err != nil {
		log.Fatalf("failed to seed admin: %v", err)
	}

	// Configure email sender
	if cfg.ResendKey != "" {
		web.SetEmailSender(emailPkg.NewResendSender(cfg.ResendKey, cfg.EmailFrom), cfg.EmailFrom)
		log.Println("Email sender configured (Resend)")
	} else {
		web.SetEmailSender(emailPkg.NewNoopSender(), cfg.EmailFrom)
		if cfg.IsProduction() {
			log.Println("WARNING: FITTRACK_RESEND_KEY is not set; email delivery is DISABLED in production")
		} else {
			log.Println("Email sender configured (noop, set FITTRACK_RESEND_KEY for real delivery)")
		}
	}

	csrfKey, err := cfg.CSRFKeyBytes()
	if err != nil {
		log.Fatalf("failed to load CSRF key: %v", err)
	}
	if cfg.CSRFKey == "" && !cfg.IsProduction() {
		log.Println("WARNING: using random CSRF key (sessions won't survive restart). Set FITTRACK_CSRF_KEY for production.")
	}

	mux := web.NewMux("static", stores, csrfKey)

	log.Printf("FitTrack %s starting on %s (env=%s, schema=%d)", version, cfg.Addr, cfg.Env, storage.LatestSchemaVersion())
	if err := http.ListenAndServe(cfg.Addr, mux); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
