package orchestrators

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/yasintkd/fittrack-lite/internal/domain/user"
)

// UserStoreForLogin defines the store interface needed by Login.
type UserStoreForLogin interface {
	GetByUsername(ctx context.Context, username string) (user.User, error)
}

// LoginInput carries input for the login orchestrator.
type LoginInput struct {
	Username string
	Password string
}

// LoginResult carries the result of a successful login.
type LoginResult struct {
	UserID    int64
	Username  string
	Role      string
	TrainerID int64
}

// LoginDeps holds dependencies for Login.
type LoginDeps struct {
	UserStore UserStoreForLogin
}

var ErrInvalidCredentials = errors.New("invalid username or password")

// ExecuteLogin validates credentials and returns user info for session creation.
// PRE: Valid username and password provided
// POST: Returns user info on success, ErrInvalidCredentials on any failure
// INVARIANT: Unknown-user and wrong-password responses are indistinguishable
func ExecuteLogin(ctx context.Context, input LoginInput, deps LoginDeps) (LoginResult, error) {
	username := strings.TrimSpace(input.Username)
	if username == "" || input.Password == "" {
		return LoginResult{}, ErrInvalidCredentials
	}

	u, err := deps.UserStore.GetByUsername(ctx, username)
	if err != nil {
		// Burn a verification against the decoy so an unknown username
		// costs the same as a wrong password.
		user.VerifyHash(user.DecoyHash(), input.Password)
		slog.Info("auth_event", "event", "login_failed", "username", username, "reason", "not_found")
		return LoginResult{}, ErrInvalidCredentials
	}

	if err := u.CheckPassword(input.Password); err != nil {
		slog.Info("auth_event", "event", "login_failed", "username", username, "reason", "wrong_password")
		return LoginResult{}, ErrInvalidCredentials
	}

	slog.Info("auth_event", "event", "login_success", "username", username, "role", u.Role)

	return LoginResult{
		UserID:    u.ID,
		Username:  u.Username,
		Role:      u.Role,
		TrainerID: u.TrainerID,
	}, nil
}
