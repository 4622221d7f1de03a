package payment

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/yasintkd/fittrack-lite/internal/adapters/storage"
	domain "github.com/yasintkd/fittrack-lite/internal/domain/payment"
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore creates a new payment store.
func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

const paymentColumns = "id, member_id, amount, payment_date, start_date, end_date, note"

// scanPayment reads one row. Rows written before the coverage-window migration
// carry NULL dates, so everything optional goes through sql.Null types.
func scanPayment(scan func(dest ...any) error) (domain.Payment, error) {
	var entity domain.Payment
	var (
		memberID               sql.NullInt64
		amount                 sql.NullFloat64
		paymentDate, startDate sql.NullString
		endDate, note          sql.NullString
	)
	err := scan(&entity.ID, &memberID, &amount, &paymentDate, &startDate, &endDate, &note)
	if err != nil {
		return domain.Payment{}, err
	}
	entity.MemberID = memberID.Int64
	entity.Amount = amount.Float64
	entity.PaymentDate = paymentDate.String
	entity.StartDate = startDate.String
	entity.EndDate = endDate.String
	entity.Note = note.String
	return entity, nil
}

// GetByID retrieves a Payment by its ID.
// PRE: id > 0
// POST: Returns the entity or storage.ErrNotFound
func (s *SQLiteStore) GetByID(ctx context.Context, id int64) (domain.Payment, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+paymentColumns+" FROM payments WHERE id = ?", id)
	entity, err := scanPayment(row.Scan)
	if err == sql.ErrNoRows {
		return domain.Payment{}, fmt.Errorf("payment %d: %w", id, storage.ErrNotFound)
	}
	return entity, err
}

// Insert persists a new Payment and returns its generated id. Only the
// canonical payment_date column is written; the legacy date column stays NULL
// on new rows.
// PRE: entity has been validated
// POST: Entity is persisted
func (s *SQLiteStore) Insert(ctx context.Context, entity domain.Payment) (int64, error) {
	res, err := s.db.ExecContext(ctx, `
		INSERT INTO payments (member_id, amount, payment_date, start_date, end_date, note)
		VALUES (?, ?, ?, ?, ?, ?)`,
		entity.MemberID, entity.Amount, entity.PaymentDate, entity.StartDate, entity.EndDate, entity.Note)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// Update overwrites every mutable field of a Payment. Last write wins.
// PRE: entity has been validated and carries every field
// POST: Row is fully overwritten, or storage.ErrNotFound
func (s *SQLiteStore) Update(ctx context.Context, entity domain.Payment) error {
	res, err := s.db.ExecContext(ctx, `
		UPDATE payments SET
			member_id = ?, amount = ?, payment_date = ?, start_date = ?, end_date = ?, note = ?
		WHERE id = ?`,
		entity.MemberID, entity.Amount, entity.PaymentDate, entity.StartDate, entity.EndDate,
		entity.Note, entity.ID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("payment %d: %w", entity.ID, storage.ErrNotFound)
	}
	return nil
}

// Delete removes a Payment.
// PRE: id > 0
// POST: Row with given id is removed
func (s *SQLiteStore) Delete(ctx context.Context, id int64) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM payments WHERE id = ?", id)
	return err
}

// List retrieves all Payments, most recent payment date first. Rows with a
// NULL payment date sort last.
func (s *SQLiteStore) List(ctx context.Context) ([]domain.Payment, error) {
	return s.collect(ctx, "SELECT "+paymentColumns+" FROM payments ORDER BY payment_date DESC, id DESC")
}

// ListByMemberID retrieves a member's Payments, latest coverage first.
// PRE: memberID > 0
// POST: Returns entities ordered by end date descending
func (s *SQLiteStore) ListByMemberID(ctx context.Context, memberID int64) ([]domain.Payment, error) {
	return s.collect(ctx,
		"SELECT "+paymentColumns+" FROM payments WHERE member_id = ? ORDER BY end_date DESC, id DESC",
		memberID)
}

// LatestByMemberID retrieves the member's most recent Payment by payment date.
// PRE: memberID > 0
// POST: Returns the entity or storage.ErrNotFound
func (s *SQLiteStore) LatestByMemberID(ctx context.Context, memberID int64) (domain.Payment, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT "+paymentColumns+" FROM payments WHERE member_id = ? ORDER BY payment_date DESC, id DESC LIMIT 1",
		memberID)
	entity, err := scanPayment(row.Scan)
	if err == sql.ErrNoRows {
		return domain.Payment{}, fmt.Errorf("latest payment for member %d: %w", memberID, storage.ErrNotFound)
	}
	return entity, err
}

// TotalForMembersInMonth sums payment amounts for the given members whose
// payment date falls in the given YYYY-MM month.
// PRE: monthPrefix is a YYYY-MM string
// POST: Returns 0 for an empty member list
func (s *SQLiteStore) TotalForMembersInMonth(ctx context.Context, memberIDs []int64, monthPrefix string) (float64, error) {
	if len(memberIDs) == 0 {
		return 0, nil
	}
	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(memberIDs)), ",")
	query := "SELECT COALESCE(SUM(amount), 0) FROM payments WHERE member_id IN (" + placeholders + ") AND payment_date LIKE ?"
	args := make([]any, 0, len(memberIDs)+1)
	for _, id := range memberIDs {
		args = append(args, id)
	}
	args = append(args, monthPrefix+"%")

	var total float64
	err := s.db.QueryRowContext(ctx, query, args...).Scan(&total)
	return total, err
}

// DistinctPayerIDsByMonth lists member ids with at least one payment in the
// given YYYY-MM month.
// PRE: monthPrefix is a YYYY-MM string
// POST: Returns ids ordered ascending
func (s *SQLiteStore) DistinctPayerIDsByMonth(ctx context.Context, monthPrefix string) ([]int64, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT DISTINCT member_id FROM payments WHERE payment_date LIKE ? ORDER BY member_id",
		monthPrefix+"%")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// LatestEndDates maps each member id to its latest coverage end date. Members
// with only NULL end dates are absent from the map.
func (s *SQLiteStore) LatestEndDates(ctx context.Context) (map[int64]string, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT member_id, MAX(end_date) FROM payments WHERE end_date IS NOT NULL GROUP BY member_id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make(map[int64]string)
	for rows.Next() {
		var memberID int64
		var endDate sql.NullString
		if err := rows.Scan(&memberID, &endDate); err != nil {
			return nil, err
		}
		if endDate.Valid {
			result[memberID] = endDate.String
		}
	}
	return result, rows.Err()
}

func (s *SQLiteStore) collect(ctx context.Context, query string, args ...any) ([]domain.Payment, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []domain.Payment
	for rows.Next() {
		entity, err := scanPayment(rows.Scan)
		if err != nil {
			return nil, err
		}
		results = append(results, entity)
	}
	return results, rows.Err()
}
