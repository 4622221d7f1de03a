package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

// TestSessionStore_CreateAndGet verifies a created session round-trips.
func TestSessionStore_CreateAndGet(t *testing.T) {
	store := NewSessionStore()

	token, err := store.Create(1, "boss", "admin", 0)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if token == "" {
		t.Fatal("Create returned empty token")
	}

	sess, ok := store.Get(token)
	if !ok {
		t.Fatal("Get: session not found")
	}
	if sess.UserID != 1 || sess.Username != "boss" || sess.Role != "admin" {
		t.Errorf("session = %+v, want UserID 1, Username boss, Role admin", sess)
	}
}

// TestSessionStore_UniqueTokens verifies tokens are not reused across sessions.
func TestSessionStore_UniqueTokens(t *testing.T) {
	store := NewSessionStore()
	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		token, err := store.Create(int64(i), "u", "admin", 0)
		if err != nil {
			t.Fatalf("Create: %v", err)
		}
		if seen[token] {
			t.Fatalf("duplicate token on iteration %d", i)
		}
		seen[token] = true
	}
}

// TestSessionStore_Delete verifies a deleted session is gone.
func TestSessionStore_Delete(t *testing.T) {
	store := NewSessionStore()
	token, err := store.Create(1, "boss", "admin", 0)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	store.Delete(token)

	if _, ok := store.Get(token); ok {
		t.Error("Get returned a deleted session")
	}
}

// TestSessionStore_Expiry verifies sessions older than the TTL are rejected.
func TestSessionStore_Expiry(t *testing.T) {
	store := NewSessionStore()
	token, err := store.Create(1, "boss", "admin", 0)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	// Backdate the session past the 24h window.
	store.mu.Lock()
	sess := store.sessions[token]
	sess.CreatedAt = time.Now().Add(-25 * time.Hour)
	store.sessions[token] = sess
	store.mu.Unlock()

	if _, ok := store.Get(token); ok {
		t.Error("Get returned an expired session")
	}
}

// TestAuth_PopulatesContext verifies a valid cookie puts the session in context.
func TestAuth_PopulatesContext(t *testing.T) {
	store := NewSessionStore()
	token, err := store.Create(7, "coach", "trainer", 3)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	var got Session
	var found bool
	handler := Auth(store)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, found = GetSessionFromContext(r.Context())
	}))

	req := httptest.NewRequest("GET", "/members", nil)
	req.AddCookie(&http.Cookie{Name: "fittrack_session", Value: token})
	handler.ServeHTTP(httptest.NewRecorder(), req)

	if !found {
		t.Fatal("session not found in context")
	}
	if got.UserID != 7 || got.TrainerID != 3 {
		t.Errorf("session = %+v, want UserID 7, TrainerID 3", got)
	}
}

// TestAuth_NoCookiePassesThrough verifies anonymous requests still reach the handler.
func TestAuth_NoCookiePassesThrough(t *testing.T) {
	store := NewSessionStore()
	reached := false
	handler := Auth(store)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reached = true
		if _, ok := GetSessionFromContext(r.Context()); ok {
			t.Error("anonymous request should carry no session")
		}
	}))

	req := httptest.NewRequest("GET", "/trainers", nil)
	handler.ServeHTTP(httptest.NewRecorder(), req)

	if !reached {
		t.Error("handler was not reached")
	}
}

// TestRequireAuth_Redirects verifies anonymous requests are sent to the login page.
func TestRequireAuth_Redirects(t *testing.T) {
	handler := RequireAuth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler should not run without a session")
	}))

	req := httptest.NewRequest("GET", "/members", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusSeeOther {
		t.Errorf("status = %d, want 303", rr.Code)
	}
	if loc := rr.Header().Get("Location"); loc != "/login" {
		t.Errorf("Location = %q, want /login", loc)
	}
}

// TestRequireRole verifies role gating: matching role passes, other roles get 403,
// anonymous requests redirect to login.
func TestRequireRole(t *testing.T) {
	adminOnly := RequireRole("admin")

	t.Run("admin passes", func(t *testing.T) {
		reached := false
		handler := adminOnly(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			reached = true
		}))
		req := httptest.NewRequest("GET", "/add_user", nil)
		req = req.WithContext(ContextWithSession(req.Context(), Session{UserID: 1, Role: "admin", CreatedAt: time.Now()}))
		handler.ServeHTTP(httptest.NewRecorder(), req)
		if !reached {
			t.Error("admin should reach the handler")
		}
	})

	t.Run("trainer forbidden", func(t *testing.T) {
		handler := adminOnly(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Error("trainer should not reach an admin-only handler")
		}))
		req := httptest.NewRequest("GET", "/add_user", nil)
		req = req.WithContext(ContextWithSession(req.Context(), Session{UserID: 2, Role: "trainer", TrainerID: 5, CreatedAt: time.Now()}))
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)
		if rr.Code != http.StatusForbidden {
			t.Errorf("status = %d, want 403", rr.Code)
		}
	})

	t.Run("anonymous redirected", func(t *testing.T) {
		handler := adminOnly(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Error("anonymous request should not reach the handler")
		}))
		req := httptest.NewRequest("GET", "/add_user", nil)
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)
		if rr.Code != http.StatusSeeOther {
			t.Errorf("status = %d, want 303", rr.Code)
		}
	})
}

// TestSecurityHeaders verifies the response carries the hardening headers.
func TestSecurityHeaders(t *testing.T) {
	handler := SecurityHeaders(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest("GET", "/", nil))

	for _, h := range []string{"Content-Security-Policy", "X-Frame-Options", "X-Content-Type-Options", "Referrer-Policy"} {
		if rr.Header().Get(h) == "" {
			t.Errorf("missing header %s", h)
		}
	}
}

// TestRateLimiter verifies the per-IP bucket blocks after the burst is spent
// and tracks addresses independently.
func TestRateLimiter(t *testing.T) {
	limiter := NewRateLimiter(3, time.Hour)

	for i := 0; i < 3; i++ {
		if !limiter.Allow("10.0.0.1") {
			t.Fatalf("request %d should be allowed", i+1)
		}
	}
	if limiter.Allow("10.0.0.1") {
		t.Error("fourth request should be blocked")
	}
	if !limiter.Allow("10.0.0.2") {
		t.Error("a different address should not be affected")
	}
}

// TestRateLimiter_RefillsUnderSteadyLoad verifies a throttled address recovers
// once the interval passes even while it keeps sending requests faster than
// the refill interval. Rejected calls must not reset the refill clock.
func TestRateLimiter_RefillsUnderSteadyLoad(t *testing.T) {
	limiter := NewRateLimiter(2, 30*time.Millisecond)
	const ip = "10.0.0.3"

	if !limiter.Allow(ip) || !limiter.Allow(ip) {
		t.Fatal("burst should be allowed")
	}
	if limiter.Allow(ip) {
		t.Fatal("bucket should be empty after the burst")
	}

	// Hammer faster than the interval; within a few intervals the bucket
	// must refill regardless.
	deadline := time.Now().Add(10 * 30 * time.Millisecond)
	for time.Now().Before(deadline) {
		if limiter.Allow(ip) {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Error("address never recovered under steady load")
}
