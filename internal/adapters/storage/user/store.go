package user

import (
	"context"

	domain "github.com/yasintkd/fittrack-lite/internal/domain/user"
)

// Store persists User state.
type Store interface {
	GetByID(ctx context.Context, id int64) (domain.User, error)
	GetByUsername(ctx context.Context, username string) (domain.User, error)
	Insert(ctx context.Context, value domain.User) (int64, error)
	Count(ctx context.Context) (int, error)
}
