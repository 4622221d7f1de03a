package member

import (
	"context"

	domain "github.com/yasintkd/fittrack-lite/internal/domain/member"
)

// Store persists Member state.
type Store interface {
	GetByID(ctx context.Context, id int64) (domain.Member, error)
	Insert(ctx context.Context, value domain.Member) (int64, error)
	Update(ctx context.Context, value domain.Member) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, filter ListFilter) ([]domain.Member, error)
	ListByIDs(ctx context.Context, ids []int64) ([]domain.Member, error)
	SearchByName(ctx context.Context, query string) ([]domain.Member, error)
}

// ListFilter carries filtering parameters for List operations. A zero
// TrainerID means no trainer restriction (admin view).
type ListFilter struct {
	TrainerID int64
}
