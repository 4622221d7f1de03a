package projections

import (
	"context"
	"time"

	domainClass "github.com/yasintkd/fittrack-lite/internal/domain/class"
	domainMember "github.com/yasintkd/fittrack-lite/internal/domain/member"
	domainPayment "github.com/yasintkd/fittrack-lite/internal/domain/payment"
	domainTrainer "github.com/yasintkd/fittrack-lite/internal/domain/trainer"
)

// GetClassDetailQuery carries query parameters.
type GetClassDetailQuery struct {
	ClassID int64
	Today   time.Time
}

// GetClassDetailResult carries the class page data.
type GetClassDetailResult struct {
	Class         domainClass.Class
	Trainer       domainTrainer.Trainer
	HasTrainer    bool
	Members       []domainMember.Member
	TotalPayment  float64 // this calendar month, enrolled members only
	TrainerShare  float64
	SalonShare    float64
	UnpaidMembers []domainMember.Member
	Month         string
}

// GetClassDetailDeps holds dependencies for GetClassDetail.
type GetClassDetailDeps struct {
	ClassStore      ClassStore
	TrainerStore    TrainerStore
	MemberStore     MemberStore
	EnrollmentStore EnrollmentStore
	PaymentStore    PaymentStore
}

// QueryGetClassDetail assembles the class page: roster, this month's payment
// total from enrolled members, the trainer/studio split, and the enrolled
// members without a payment this month.
// PRE: ClassID > 0
// POST: TrainerShare + SalonShare == round2(TotalPayment) when a trainer with
// a share is assigned
func QueryGetClassDetail(ctx context.Context, query GetClassDetailQuery, deps GetClassDetailDeps) (GetClassDetailResult, error) {
	c, err := deps.ClassStore.GetByID(ctx, query.ClassID)
	if err != nil {
		return GetClassDetailResult{}, err
	}

	result := GetClassDetailResult{
		Class: c,
		Month: domainPayment.MonthPrefix(query.Today),
	}

	if c.TrainerID != 0 {
		t, err := deps.TrainerStore.GetByID(ctx, c.TrainerID)
		if err == nil {
			result.Trainer = t
			result.HasTrainer = true
		}
	}

	enrollments, err := deps.EnrollmentStore.ListByClassID(ctx, query.ClassID)
	if err != nil {
		return GetClassDetailResult{}, err
	}
	memberIDs := make([]int64, 0, len(enrollments))
	for _, e := range enrollments {
		memberIDs = append(memberIDs, e.MemberID)
	}
	members, err := deps.MemberStore.ListByIDs(ctx, memberIDs)
	if err != nil {
		return GetClassDetailResult{}, err
	}
	result.Members = members

	ids := make([]int64, len(members))
	for i, m := range members {
		ids[i] = m.ID
	}
	total, err := deps.PaymentStore.TotalForMembersInMonth(ctx, ids, result.Month)
	if err != nil {
		return GetClassDetailResult{}, err
	}
	result.TotalPayment = total

	if result.HasTrainer && result.Trainer.SharePercent > 0 {
		result.TrainerShare, result.SalonShare = result.Trainer.Split(total)
	}

	paidIDs, err := deps.PaymentStore.DistinctPayerIDsByMonth(ctx, result.Month)
	if err != nil {
		return GetClassDetailResult{}, err
	}
	paid := make(map[int64]bool, len(paidIDs))
	for _, id := range paidIDs {
		paid[id] = true
	}
	for _, m := range members {
		if !paid[m.ID] {
			result.UnpaidMembers = append(result.UnpaidMembers, m)
		}
	}

	return result, nil
}
