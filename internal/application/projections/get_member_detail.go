package projections

import (
	"context"
	"fmt"
	"time"

	domainMember "github.com/yasintkd/fittrack-lite/internal/domain/member"
	domainPayment "github.com/yasintkd/fittrack-lite/internal/domain/payment"
)

// GetMemberDetailQuery carries query parameters.
type GetMemberDetailQuery struct {
	MemberID int64
	Today    time.Time
}

// GetMemberDetailResult carries the member page data.
type GetMemberDetailResult struct {
	Member          domainMember.Member
	Payments        []domainPayment.Payment
	ClassNames      []string
	RenewSuggestion string // empty when no renewal is due
}

// GetMemberDetailDeps holds dependencies for GetMemberDetail.
type GetMemberDetailDeps struct {
	MemberStore     MemberStore
	PaymentStore    PaymentStore
	EnrollmentStore EnrollmentStore
	ClassStore      ClassStore
}

// QueryGetMemberDetail assembles the member page: record, payment history
// (latest coverage first) and enrolled class names.
// PRE: MemberID > 0
// POST: Returns storage.ErrNotFound when the member does not exist
// INVARIANT: A renewal is suggested only when the latest coverage end is
// between today and today+7 inclusive
func QueryGetMemberDetail(ctx context.Context, query GetMemberDetailQuery, deps GetMemberDetailDeps) (GetMemberDetailResult, error) {
	m, err := deps.MemberStore.GetByID(ctx, query.MemberID)
	if err != nil {
		return GetMemberDetailResult{}, err
	}

	payments, err := deps.PaymentStore.ListByMemberID(ctx, query.MemberID)
	if err != nil {
		return GetMemberDetailResult{}, err
	}

	enrollments, err := deps.EnrollmentStore.ListByMemberID(ctx, query.MemberID)
	if err != nil {
		return GetMemberDetailResult{}, err
	}
	var classNames []string
	for _, e := range enrollments {
		c, err := deps.ClassStore.GetByID(ctx, e.ClassID)
		if err != nil {
			// Orphaned enrollment, the class was deleted.
			continue
		}
		classNames = append(classNames, c.Name)
	}

	result := GetMemberDetailResult{
		Member:     m,
		Payments:   payments,
		ClassNames: classNames,
	}

	if len(payments) > 0 {
		if end, ok := domainPayment.ParseDay(payments[0].EndDate); ok {
			if domainPayment.EndsSoon(end, query.Today) {
				days := domainPayment.DaysUntil(end, query.Today)
				result.RenewSuggestion = fmt.Sprintf("Membership ends in %d days. Suggest a renewal.", days)
			}
		}
	}

	return result, nil
}
