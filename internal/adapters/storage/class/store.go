package class

import (
	"context"

	domain "github.com/yasintkd/fittrack-lite/internal/domain/class"
)

// Store persists Class state.
type Store interface {
	GetByID(ctx context.Context, id int64) (domain.Class, error)
	Insert(ctx context.Context, value domain.Class) (int64, error)
	Update(ctx context.Context, value domain.Class) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context) ([]domain.Class, error)
	ListByTrainerID(ctx context.Context, trainerID int64) ([]domain.Class, error)
}
