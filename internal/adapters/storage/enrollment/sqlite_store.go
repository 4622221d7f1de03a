package enrollment

import (
	"context"
	"database/sql"

	domain "github.com/yasintkd/fittrack-lite/internal/domain/enrollment"
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore creates a new enrollment store.
func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

// Insert persists a new Enrollment and returns its generated id. Duplicate
// member/class pairs are allowed.
// PRE: entity has been validated
// POST: Entity is persisted
func (s *SQLiteStore) Insert(ctx context.Context, entity domain.Enrollment) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		"INSERT INTO enrollments (member_id, class_id) VALUES (?, ?)",
		entity.MemberID, entity.ClassID)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// List retrieves all Enrollments.
// POST: Returns entities ordered by id
func (s *SQLiteStore) List(ctx context.Context) ([]domain.Enrollment, error) {
	return s.collect(ctx, "SELECT id, member_id, class_id FROM enrollments ORDER BY id")
}

// ListByClassID retrieves Enrollments for one class.
// PRE: classID > 0
// POST: Returns entities ordered by id
func (s *SQLiteStore) ListByClassID(ctx context.Context, classID int64) ([]domain.Enrollment, error) {
	return s.collect(ctx, "SELECT id, member_id, class_id FROM enrollments WHERE class_id = ? ORDER BY id", classID)
}

// ListByMemberID retrieves Enrollments for one member.
// PRE: memberID > 0
// POST: Returns entities ordered by id
func (s *SQLiteStore) ListByMemberID(ctx context.Context, memberID int64) ([]domain.Enrollment, error) {
	return s.collect(ctx, "SELECT id, member_id, class_id FROM enrollments WHERE member_id = ? ORDER BY id", memberID)
}

// CountByClassID returns the number of enrollments in a class.
// PRE: classID > 0
// POST: Returns count >= 0
func (s *SQLiteStore) CountByClassID(ctx context.Context, classID int64) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM enrollments WHERE class_id = ?", classID).Scan(&count)
	return count, err
}

func (s *SQLiteStore) collect(ctx context.Context, query string, args ...any) ([]domain.Enrollment, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []domain.Enrollment
	for rows.Next() {
		var entity domain.Enrollment
		if err := rows.Scan(&entity.ID, &entity.MemberID, &entity.ClassID); err != nil {
			return nil, err
		}
		results = append(results, entity)
	}
	return results, rows.Err()
}
