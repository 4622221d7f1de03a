package trainer

import (
	"context"

	domain "github.com/yasintkd/fittrack-lite/internal/domain/trainer"
)

// Store persists Trainer state.
type Store interface {
	GetByID(ctx context.Context, id int64) (domain.Trainer, error)
	Insert(ctx context.Context, value domain.Trainer) (int64, error)
	Update(ctx context.Context, value domain.Trainer) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context) ([]domain.Trainer, error)
}
