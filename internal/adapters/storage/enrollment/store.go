package enrollment

import (
	"context"

	domain "github.com/yasintkd/fittrack-lite/internal/domain/enrollment"
)

// Store persists Enrollment state.
type Store interface {
	Insert(ctx context.Context, value domain.Enrollment) (int64, error)
	List(ctx context.Context) ([]domain.Enrollment, error)
	ListByClassID(ctx context.Context, classID int64) ([]domain.Enrollment, error)
	ListByMemberID(ctx context.Context, memberID int64) ([]domain.Enrollment, error)
	CountByClassID(ctx context.Context, classID int64) (int, error)
}
