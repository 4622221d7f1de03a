package report

import "context"

// MonthPaymentRow is one payment joined to its member and, when the member has
// an enrollment, the class and trainer the money flows through. Members with
// several enrollments produce one row per enrollment.
type MonthPaymentRow struct {
	PaymentID    int64
	MemberID     int64
	MemberName   string
	Amount       float64
	PaymentDate  string
	ClassName    string
	TrainerID    int64
	TrainerName  string
	SharePercent float64
}

// LabelTotal is a summed amount under a display label.
type LabelTotal struct {
	Label string
	Total float64
}

// MonthTotal is a summed amount for one YYYY-MM month.
type MonthTotal struct {
	Month string
	Total float64
}

// Store answers the read-only aggregation queries behind the report pages.
type Store interface {
	// MonthPayments lists payments in the given YYYY-MM month joined through
	// enrollments to classes and trainers. Orphaned references produce empty
	// class and trainer columns rather than dropping the payment.
	MonthPayments(ctx context.Context, monthPrefix string) ([]MonthPaymentRow, error)

	// MonthlyTotals sums payments per YYYY-MM month, newest first.
	MonthlyTotals(ctx context.Context) ([]MonthTotal, error)

	// BeltTotals sums payments per member belt level.
	BeltTotals(ctx context.Context) ([]LabelTotal, error)

	// ClassTotals sums payments per class through member enrollments.
	ClassTotals(ctx context.Context) ([]LabelTotal, error)

	// TopMembers lists members by descending payment total.
	TopMembers(ctx context.Context, limit int) ([]LabelTotal, error)

	// TopClasses lists classes by descending payment total through enrollments.
	TopClasses(ctx context.Context, limit int) ([]LabelTotal, error)

	// TopTrainers lists trainers by descending share-weighted income through
	// their classes' enrollments.
	TopTrainers(ctx context.Context, limit int) ([]LabelTotal, error)
}
