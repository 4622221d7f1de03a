package projections

import (
	"context"

	"github.com/yasintkd/fittrack-lite/internal/adapters/storage/member"
	domainMember "github.com/yasintkd/fittrack-lite/internal/domain/member"
	domainPayment "github.com/yasintkd/fittrack-lite/internal/domain/payment"
)

// PaymentWithMember is a payment row annotated with the payer's name.
type PaymentWithMember struct {
	domainPayment.Payment
	MemberName string
}

// GetPaymentListResult carries the payment page data. Members are included
// for the add-payment form.
type GetPaymentListResult struct {
	Payments []PaymentWithMember
	Members  []domainMember.Member
}

// GetPaymentListDeps holds dependencies for GetPaymentList.
type GetPaymentListDeps struct {
	PaymentStore PaymentStore
	MemberStore  MemberStore
}

// QueryGetPaymentList lists all payments with payer names resolved. Payments
// of deleted members are dropped, matching inner-join behavior.
func QueryGetPaymentList(ctx context.Context, deps GetPaymentListDeps) (GetPaymentListResult, error) {
	payments, err := deps.PaymentStore.List(ctx)
	if err != nil {
		return GetPaymentListResult{}, err
	}
	members, err := deps.MemberStore.List(ctx, member.ListFilter{})
	if err != nil {
		return GetPaymentListResult{}, err
	}

	names := make(map[int64]string, len(members))
	for _, m := range members {
		names[m.ID] = m.Name
	}

	result := GetPaymentListResult{Members: members}
	for _, p := range payments {
		name, ok := names[p.MemberID]
		if !ok {
			continue
		}
		result.Payments = append(result.Payments, PaymentWithMember{Payment: p, MemberName: name})
	}
	return result, nil
}
