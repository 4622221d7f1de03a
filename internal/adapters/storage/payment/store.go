package payment

import (
	"context"

	domain "github.com/yasintkd/fittrack-lite/internal/domain/payment"
)

// Store handles payment persistence.
type Store interface {
	// GetByID retrieves a Payment by its id.
	GetByID(ctx context.Context, id int64) (domain.Payment, error)

	// Insert persists a new Payment and returns its generated id.
	Insert(ctx context.Context, value domain.Payment) (int64, error)

	// Update replaces the stored Payment identified by value.ID.
	Update(ctx context.Context, value domain.Payment) error

	// Delete removes the Payment with the given id.
	Delete(ctx context.Context, id int64) error

	// List retrieves all Payments, most recent payment date first.
	List(ctx context.Context) ([]domain.Payment, error)

	// ListByMemberID retrieves a member's Payments, latest coverage first.
	ListByMemberID(ctx context.Context, memberID int64) ([]domain.Payment, error)

	// LatestByMemberID retrieves the member's most recent Payment by payment
	// date.
	LatestByMemberID(ctx context.Context, memberID int64) (domain.Payment, error)

	// TotalForMembersInMonth sums payment amounts for the given members whose
	// payment date falls in the given YYYY-MM month.
	TotalForMembersInMonth(ctx context.Context, memberIDs []int64, monthPrefix string) (float64, error)

	// DistinctPayerIDsByMonth lists member ids with at least one payment in
	// the given YYYY-MM month.
	DistinctPayerIDsByMonth(ctx context.Context, monthPrefix string) ([]int64, error)

	// LatestEndDates maps each member id to its latest coverage end date.
	// Members with no dated payments are absent from the map.
	LatestEndDates(ctx context.Context) (map[int64]string, error)
}
