package projections

import (
	"context"
	"sort"
	"time"

	"github.com/yasintkd/fittrack-lite/internal/adapters/storage/member"
	domainPayment "github.com/yasintkd/fittrack-lite/internal/domain/payment"
)

// GetExpiringMembersQuery carries query parameters.
type GetExpiringMembersQuery struct {
	Today time.Time
}

// ExpiringMember is a member whose latest coverage ends inside the renewal
// window.
type ExpiringMember struct {
	MemberID  int64
	Name      string
	BeltLevel string
	EndDate   string
	DaysLeft  int
}

// GetExpiringMembersResult carries the expiring-members report.
type GetExpiringMembersResult struct {
	Expiring []ExpiringMember
}

// GetExpiringMembersDeps holds dependencies for GetExpiringMembers.
type GetExpiringMembersDeps struct {
	MemberStore  MemberStore
	PaymentStore PaymentStore
}

// QueryGetExpiringMembers lists members whose latest coverage end date falls
// between today and today+7, both inclusive. Members with no dated payments
// or a malformed end date are silently excluded.
// POST: Result ordered by end date, soonest first
func QueryGetExpiringMembers(ctx context.Context, query GetExpiringMembersQuery, deps GetExpiringMembersDeps) (GetExpiringMembersResult, error) {
	members, err := deps.MemberStore.List(ctx, member.ListFilter{})
	if err != nil {
		return GetExpiringMembersResult{}, err
	}
	endDates, err := deps.PaymentStore.LatestEndDates(ctx)
	if err != nil {
		return GetExpiringMembersResult{}, err
	}

	var result GetExpiringMembersResult
	for _, m := range members {
		end, ok := domainPayment.ParseDay(endDates[m.ID])
		if !ok || !domainPayment.EndsSoon(end, query.Today) {
			continue
		}
		result.Expiring = append(result.Expiring, ExpiringMember{
			MemberID:  m.ID,
			Name:      m.Name,
			BeltLevel: m.BeltLevel,
			EndDate:   endDates[m.ID],
			DaysLeft:  domainPayment.DaysUntil(end, query.Today),
		})
	}
	sort.Slice(result.Expiring, func(i, j int) bool {
		return result.Expiring[i].EndDate < result.Expiring[j].EndDate
	})
	return result, nil
}
