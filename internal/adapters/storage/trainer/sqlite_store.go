package trainer

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/yasintkd/fittrack-lite/internal/adapters/storage"
	domain "github.com/yasintkd/fittrack-lite/internal/domain/trainer"
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore creates a new trainer store.
func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

const trainerColumns = "id, name, email, phone, share_percent"

func scanTrainer(scan func(dest ...any) error) (domain.Trainer, error) {
	var entity domain.Trainer
	var name, email, phone sql.NullString
	var share sql.NullFloat64
	err := scan(&entity.ID, &name, &email, &phone, &share)
	if err != nil {
		return domain.Trainer{}, err
	}
	entity.Name = name.String
	entity.Email = email.String
	entity.Phone = phone.String
	entity.SharePercent = share.Float64
	return entity, nil
}

// GetByID retrieves a Trainer by its ID.
// PRE: id > 0
// POST: Returns the entity or storage.ErrNotFound
func (s *SQLiteStore) GetByID(ctx context.Context, id int64) (domain.Trainer, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+trainerColumns+" FROM trainers WHERE id = ?", id)
	entity, err := scanTrainer(row.Scan)
	if err == sql.ErrNoRows {
		return domain.Trainer{}, fmt.Errorf("trainer %d: %w", id, storage.ErrNotFound)
	}
	return entity, err
}

// Insert persists a new Trainer and returns its generated id.
// PRE: entity has been validated
// POST: Entity is persisted
func (s *SQLiteStore) Insert(ctx context.Context, entity domain.Trainer) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		"INSERT INTO trainers (name, email, phone, share_percent) VALUES (?, ?, ?, ?)",
		entity.Name, entity.Email, entity.Phone, entity.SharePercent)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// Update overwrites every mutable field of a Trainer (last write wins).
// PRE: entity has been validated and carries every field
// POST: Row is fully overwritten, or storage.ErrNotFound
func (s *SQLiteStore) Update(ctx context.Context, entity domain.Trainer) error {
	res, err := s.db.ExecContext(ctx,
		"UPDATE trainers SET name = ?, email = ?, phone = ?, share_percent = ? WHERE id = ?",
		entity.Name, entity.Email, entity.Phone, entity.SharePercent, entity.ID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("trainer %d: %w", entity.ID, storage.ErrNotFound)
	}
	return nil
}

// Delete removes a Trainer. Classes and members referencing the trainer are
// left in place; readers tolerate the orphans.
// PRE: id > 0
// POST: Row with given id is removed
func (s *SQLiteStore) Delete(ctx context.Context, id int64) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM trainers WHERE id = ?", id)
	return err
}

// List retrieves all Trainers.
// POST: Returns entities ordered by id
func (s *SQLiteStore) List(ctx context.Context) ([]domain.Trainer, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT "+trainerColumns+" FROM trainers ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []domain.Trainer
	for rows.Next() {
		entity, err := scanTrainer(rows.Scan)
		if err != nil {
			return nil, err
		}
		results = append(results, entity)
	}
	return results, rows.Err()
}
