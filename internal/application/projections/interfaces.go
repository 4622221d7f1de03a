package projections

import (
	"context"

	"github.com/yasintkd/fittrack-lite/internal/adapters/storage/member"
	"github.com/yasintkd/fittrack-lite/internal/adapters/storage/report"
	domainClass "github.com/yasintkd/fittrack-lite/internal/domain/class"
	domainEnrollment "github.com/yasintkd/fittrack-lite/internal/domain/enrollment"
	domainMember "github.com/yasintkd/fittrack-lite/internal/domain/member"
	domainPayment "github.com/yasintkd/fittrack-lite/internal/domain/payment"
	domainTrainer "github.com/yasintkd/fittrack-lite/internal/domain/trainer"
)

// MemberStore interface for member queries.
type MemberStore interface {
	GetByID(ctx context.Context, id int64) (domainMember.Member, error)
	List(ctx context.Context, filter member.ListFilter) ([]domainMember.Member, error)
	ListByIDs(ctx context.Context, ids []int64) ([]domainMember.Member, error)
	SearchByName(ctx context.Context, query string) ([]domainMember.Member, error)
}

// TrainerStore interface for trainer queries.
type TrainerStore interface {
	GetByID(ctx context.Context, id int64) (domainTrainer.Trainer, error)
	List(ctx context.Context) ([]domainTrainer.Trainer, error)
}

// ClassStore interface for class queries.
type ClassStore interface {
	GetByID(ctx context.Context, id int64) (domainClass.Class, error)
	List(ctx context.Context) ([]domainClass.Class, error)
	ListByTrainerID(ctx context.Context, trainerID int64) ([]domainClass.Class, error)
}

// EnrollmentStore interface for enrollment queries.
type EnrollmentStore interface {
	List(ctx context.Context) ([]domainEnrollment.Enrollment, error)
	ListByClassID(ctx context.Context, classID int64) ([]domainEnrollment.Enrollment, error)
	ListByMemberID(ctx context.Context, memberID int64) ([]domainEnrollment.Enrollment, error)
	CountByClassID(ctx context.Context, classID int64) (int, error)
}

// PaymentStore interface for payment queries.
type PaymentStore interface {
	GetByID(ctx context.Context, id int64) (domainPayment.Payment, error)
	List(ctx context.Context) ([]domainPayment.Payment, error)
	ListByMemberID(ctx context.Context, memberID int64) ([]domainPayment.Payment, error)
	LatestByMemberID(ctx context.Context, memberID int64) (domainPayment.Payment, error)
	TotalForMembersInMonth(ctx context.Context, memberIDs []int64, monthPrefix string) (float64, error)
	DistinctPayerIDsByMonth(ctx context.Context, monthPrefix string) ([]int64, error)
	LatestEndDates(ctx context.Context) (map[int64]string, error)
}

// ReportStore interface for aggregation queries.
type ReportStore interface {
	MonthPayments(ctx context.Context, monthPrefix string) ([]report.MonthPaymentRow, error)
	MonthlyTotals(ctx context.Context) ([]report.MonthTotal, error)
	BeltTotals(ctx context.Context) ([]report.LabelTotal, error)
	ClassTotals(ctx context.Context) ([]report.LabelTotal, error)
	TopMembers(ctx context.Context, limit int) ([]report.LabelTotal, error)
	TopClasses(ctx context.Context, limit int) ([]report.LabelTotal, error)
	TopTrainers(ctx context.Context, limit int) ([]report.LabelTotal, error)
}
