package projections

import (
	"context"
	"errors"
	"time"

	"github.com/yasintkd/fittrack-lite/internal/adapters/storage"
	domainMember "github.com/yasintkd/fittrack-lite/internal/domain/member"
	domainPayment "github.com/yasintkd/fittrack-lite/internal/domain/payment"
)

// GetPaymentFormQuery carries query parameters.
type GetPaymentFormQuery struct {
	MemberID int64
	Today    time.Time
}

// GetPaymentFormResult carries the add-payment form data.
type GetPaymentFormResult struct {
	Member        domainMember.Member
	SuggestedDate string // first of the month after the latest payment
}

// GetPaymentFormDeps holds dependencies for GetPaymentForm.
type GetPaymentFormDeps struct {
	MemberStore  MemberStore
	PaymentStore PaymentStore
}

// QueryGetPaymentForm prepares the add-payment form with a suggested payment
// date derived from the member's latest payment.
// PRE: MemberID > 0
// POST: SuggestedDate falls back to today when there is no usable history
func QueryGetPaymentForm(ctx context.Context, query GetPaymentFormQuery, deps GetPaymentFormDeps) (GetPaymentFormResult, error) {
	m, err := deps.MemberStore.GetByID(ctx, query.MemberID)
	if err != nil {
		return GetPaymentFormResult{}, err
	}

	var lastDate string
	latest, err := deps.PaymentStore.LatestByMemberID(ctx, query.MemberID)
	switch {
	case err == nil:
		lastDate = latest.PaymentDate
	case errors.Is(err, storage.ErrNotFound):
		// No payments yet, suggest today.
	default:
		return GetPaymentFormResult{}, err
	}

	return GetPaymentFormResult{
		Member:        m,
		SuggestedDate: domainPayment.NextPaymentDay(lastDate, query.Today),
	}, nil
}
