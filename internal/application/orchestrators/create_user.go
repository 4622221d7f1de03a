package orchestrators

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/yasintkd/fittrack-lite/internal/domain/user"
)

// UserStoreForCreateUser defines the store interface needed by CreateUser.
type UserStoreForCreateUser interface {
	GetByUsername(ctx context.Context, username string) (user.User, error)
	Insert(ctx context.Context, value user.User) (int64, error)
	Count(ctx context.Context) (int, error)
}

// CreateUserInput carries input for the create-user orchestrator.
type CreateUserInput struct {
	Username  string
	Password  string
	Role      string
	TrainerID int64
}

// CreateUserDeps holds dependencies for CreateUser.
type CreateUserDeps struct {
	UserStore UserStoreForCreateUser
}

var ErrUsernameTaken = errors.New("username already exists")

// ExecuteCreateUser creates a login account with a hashed password.
// PRE: Caller has verified the acting user is an admin
// POST: User persisted with hashed password; plaintext never stored
// INVARIANT: Username comparison is exact and case-sensitive
func ExecuteCreateUser(ctx context.Context, input CreateUserInput, deps CreateUserDeps) (int64, error) {
	u := user.User{
		Username:  strings.TrimSpace(input.Username),
		Role:      input.Role,
		TrainerID: input.TrainerID,
	}
	if err := u.Validate(); err != nil {
		return 0, err
	}
	if err := u.SetPassword(input.Password); err != nil {
		return 0, err
	}

	if _, err := deps.UserStore.GetByUsername(ctx, u.Username); err == nil {
		return 0, ErrUsernameTaken
	}

	id, err := deps.UserStore.Insert(ctx, u)
	if err != nil {
		return 0, fmt.Errorf("failed to create user: %w", err)
	}

	slog.Info("auth_event", "event", "user_created", "username", u.Username, "role", u.Role)
	return id, nil
}

// ExecuteSeedAdmin creates the bootstrap admin when no users exist yet.
// PRE: Username and password come from configuration
// POST: Admin exists; no-op when any user is already present
func ExecuteSeedAdmin(ctx context.Context, input CreateUserInput, deps CreateUserDeps) error {
	count, err := deps.UserStore.Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to count users: %w", err)
	}
	if count > 0 {
		return nil
	}

	input.Role = user.RoleAdmin
	input.TrainerID = 0
	if _, err := ExecuteCreateUser(ctx, input, deps); err != nil {
		return fmt.Errorf("failed to seed admin: %w", err)
	}
	slog.Info("auth_event", "event", "admin_seeded", "username", input.Username)
	return nil
}
