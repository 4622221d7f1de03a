package class

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/yasintkd/fittrack-lite/internal/adapters/storage"
	domain "github.com/yasintkd/fittrack-lite/internal/domain/class"
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore creates a new class store.
func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

// time is a keyword-free but awkward column name; quoting keeps SQLite happy.
const classColumns = `id, trainer_id, name, description, day, "time"`

func scanClass(scan func(dest ...any) error) (domain.Class, error) {
	var entity domain.Class
	var trainerID sql.NullInt64
	var name, description, day, timeOfDay sql.NullString
	err := scan(&entity.ID, &trainerID, &name, &description, &day, &timeOfDay)
	if err != nil {
		return domain.Class{}, err
	}
	entity.TrainerID = trainerID.Int64
	entity.Name = name.String
	entity.Description = description.String
	entity.Day = day.String
	entity.Time = timeOfDay.String
	return entity, nil
}

// GetByID retrieves a Class by its ID.
// PRE: id > 0
// POST: Returns the entity or storage.ErrNotFound
func (s *SQLiteStore) GetByID(ctx context.Context, id int64) (domain.Class, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+classColumns+" FROM classes WHERE id = ?", id)
	entity, err := scanClass(row.Scan)
	if err == sql.ErrNoRows {
		return domain.Class{}, fmt.Errorf("class %d: %w", id, storage.ErrNotFound)
	}
	return entity, err
}

// Insert persists a new Class and returns its generated id.
// PRE: entity has been validated
// POST: Entity is persisted
func (s *SQLiteStore) Insert(ctx context.Context, entity domain.Class) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO classes (trainer_id, name, description, day, "time") VALUES (?, ?, ?, ?, ?)`,
		entity.TrainerID, entity.Name, entity.Description, entity.Day, entity.Time)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// Update overwrites every mutable field of a Class (last write wins).
// PRE: entity has been validated and carries every field
// POST: Row is fully overwritten, or storage.ErrNotFound
func (s *SQLiteStore) Update(ctx context.Context, entity domain.Class) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE classes SET trainer_id = ?, name = ?, description = ?, day = ?, "time" = ? WHERE id = ?`,
		entity.TrainerID, entity.Name, entity.Description, entity.Day, entity.Time, entity.ID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("class %d: %w", entity.ID, storage.ErrNotFound)
	}
	return nil
}

// Delete removes a Class. Enrollments referencing the class are left in
// place; readers tolerate the orphans.
// PRE: id > 0
// POST: Row with given id is removed
func (s *SQLiteStore) Delete(ctx context.Context, id int64) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM classes WHERE id = ?", id)
	return err
}

// List retrieves all Classes.
// POST: Returns entities ordered by id
func (s *SQLiteStore) List(ctx context.Context) ([]domain.Class, error) {
	return s.collect(ctx, "SELECT "+classColumns+" FROM classes ORDER BY id")
}

// ListByTrainerID retrieves Classes owned by one trainer.
// PRE: trainerID > 0
// POST: Returns entities ordered by id
func (s *SQLiteStore) ListByTrainerID(ctx context.Context, trainerID int64) ([]domain.Class, error) {
	return s.collect(ctx, "SELECT "+classColumns+" FROM classes WHERE trainer_id = ? ORDER BY id", trainerID)
}

func (s *SQLiteStore) collect(ctx context.Context, query string, args ...any) ([]domain.Class, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []domain.Class
	for rows.Next() {
		entity, err := scanClass(rows.Scan)
		if err != nil {
			return nil, err
		}
		results = append(results, entity)
	}
	return results, rows.Err()
}
