package report

import (
	"context"
	"database/sql"
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore creates a new report store.
func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

// MonthPayments lists payments in the given YYYY-MM month joined through
// enrollments to classes and trainers. LEFT JOINs keep payments whose member
// was deleted or never enrolled; the missing columns come back empty.
// PRE: monthPrefix is a YYYY-MM string
// POST: Returns rows ordered by payment date then id
func (s *SQLiteStore) MonthPayments(ctx context.Context, monthPrefix string) ([]MonthPaymentRow, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT p.id, p.member_id, m.name, p.amount, p.payment_date,
			c.name, t.id, t.name, t.share_percent
		FROM payments p
		LEFT JOIN members m ON m.id = p.member_id
		LEFT JOIN enrollments e ON e.member_id = p.member_id
		LEFT JOIN classes c ON c.id = e.class_id
		LEFT JOIN trainers t ON t.id = c.trainer_id
		WHERE p.payment_date LIKE ?
		ORDER BY p.payment_date, p.id`,
		monthPrefix+"%")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []MonthPaymentRow
	for rows.Next() {
		var r MonthPaymentRow
		var (
			memberName, paymentDate sql.NullString
			amount, share           sql.NullFloat64
			className, trainerName  sql.NullString
			trainerID               sql.NullInt64
		)
		err := rows.Scan(&r.PaymentID, &r.MemberID, &memberName, &amount, &paymentDate,
			&className, &trainerID, &trainerName, &share)
		if err != nil {
			return nil, err
		}
		r.MemberName = memberName.String
		r.Amount = amount.Float64
		r.PaymentDate = paymentDate.String
		r.ClassName = className.String
		r.TrainerID = trainerID.Int64
		r.TrainerName = trainerName.String
		r.SharePercent = share.Float64
		results = append(results, r)
	}
	return results, rows.Err()
}

// MonthlyTotals sums payments per YYYY-MM month, newest first. Rows without a
// payment date are skipped.
func (s *SQLiteStore) MonthlyTotals(ctx context.Context) ([]MonthTotal, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT substr(payment_date, 1, 7) AS month, COALESCE(SUM(amount), 0)
		FROM payments
		WHERE payment_date IS NOT NULL AND payment_date != ''
		GROUP BY month
		ORDER BY month DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []MonthTotal
	for rows.Next() {
		var t MonthTotal
		if err := rows.Scan(&t.Month, &t.Total); err != nil {
			return nil, err
		}
		results = append(results, t)
	}
	return results, rows.Err()
}

// BeltTotals sums payments per member belt level. Members without a belt are
// grouped under the empty label.
func (s *SQLiteStore) BeltTotals(ctx context.Context) ([]LabelTotal, error) {
	return s.collectTotals(ctx, `
		SELECT COALESCE(m.belt_level, ''), COALESCE(SUM(p.amount), 0) AS total
		FROM payments p
		JOIN members m ON m.id = p.member_id
		GROUP BY m.belt_level
		ORDER BY total DESC`)
}

// ClassTotals sums payments per class through member enrollments.
func (s *SQLiteStore) ClassTotals(ctx context.Context) ([]LabelTotal, error) {
	return s.collectTotals(ctx, `
		SELECT c.name, COALESCE(SUM(p.amount), 0) AS total
		FROM payments p
		JOIN enrollments e ON e.member_id = p.member_id
		JOIN classes c ON c.id = e.class_id
		GROUP BY c.id
		ORDER BY total DESC`)
}

// TopMembers lists members by descending payment total. Ordering between equal
// totals is unspecified.
// PRE: limit > 0
func (s *SQLiteStore) TopMembers(ctx context.Context, limit int) ([]LabelTotal, error) {
	return s.collectTotals(ctx, `
		SELECT m.name, COALESCE(SUM(p.amount), 0) AS total
		FROM payments p
		JOIN members m ON m.id = p.member_id
		GROUP BY m.id
		ORDER BY total DESC
		LIMIT ?`, limit)
}

// TopClasses lists classes by descending payment total through enrollments.
// PRE: limit > 0
func (s *SQLiteStore) TopClasses(ctx context.Context, limit int) ([]LabelTotal, error) {
	return s.collectTotals(ctx, `
		SELECT c.name, COALESCE(SUM(p.amount), 0) AS total
		FROM payments p
		JOIN enrollments e ON e.member_id = p.member_id
		JOIN classes c ON c.id = e.class_id
		GROUP BY c.id
		ORDER BY total DESC
		LIMIT ?`, limit)
}

// TopTrainers lists trainers by descending share-weighted income through
// their classes' enrollments.
// PRE: limit > 0
func (s *SQLiteStore) TopTrainers(ctx context.Context, limit int) ([]LabelTotal, error) {
	return s.collectTotals(ctx, `
		SELECT t.name, COALESCE(SUM(p.amount * COALESCE(t.share_percent, 0) / 100.0), 0) AS total
		FROM payments p
		JOIN enrollments e ON e.member_id = p.member_id
		JOIN classes c ON c.id = e.class_id
		JOIN trainers t ON t.id = c.trainer_id
		GROUP BY t.id
		ORDER BY total DESC
		LIMIT ?`, limit)
}

func (s *SQLiteStore) collectTotals(ctx context.Context, query string, args ...any) ([]LabelTotal, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []LabelTotal
	for rows.Next() {
		var t LabelTotal
		var label sql.NullString
		if err := rows.Scan(&label, &t.Total); err != nil {
			return nil, err
		}
		t.Label = label.String
		results = append(results, t)
	}
	return results, rows.Err()
}
