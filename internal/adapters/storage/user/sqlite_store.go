package user

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/yasintkd/fittrack-lite/internal/adapters/storage"
	domain "github.com/yasintkd/fittrack-lite/internal/domain/user"
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore creates a new user store.
func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

const userColumns = "id, username, password, role, trainer_id"

func scanUser(scan func(dest ...any) error) (domain.User, error) {
	var entity domain.User
	var trainerID sql.NullInt64
	err := scan(&entity.ID, &entity.Username, &entity.Password, &entity.Role, &trainerID)
	if trainerID.Valid {
		entity.TrainerID = trainerID.Int64
	}
	return entity, err
}

// GetByID retrieves a User by its ID.
// PRE: id > 0
// POST: Returns the entity or storage.ErrNotFound
func (s *SQLiteStore) GetByID(ctx context.Context, id int64) (domain.User, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+userColumns+" FROM users WHERE id = ?", id)
	entity, err := scanUser(row.Scan)
	if err == sql.ErrNoRows {
		return domain.User{}, fmt.Errorf("user %d: %w", id, storage.ErrNotFound)
	}
	return entity, err
}

// GetByUsername retrieves a User by exact username match.
// PRE: username is non-empty
// POST: Returns the entity or storage.ErrNotFound
func (s *SQLiteStore) GetByUsername(ctx context.Context, username string) (domain.User, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+userColumns+" FROM users WHERE username = ?", username)
	entity, err := scanUser(row.Scan)
	if err == sql.ErrNoRows {
		return domain.User{}, fmt.Errorf("user %q: %w", username, storage.ErrNotFound)
	}
	return entity, err
}

// Insert persists a new User and returns its generated id.
// PRE: entity has been validated and the password hashed
// POST: Entity is persisted
func (s *SQLiteStore) Insert(ctx context.Context, entity domain.User) (int64, error) {
	var trainerID any
	if entity.TrainerID != 0 {
		trainerID = entity.TrainerID
	}
	res, err := s.db.ExecContext(ctx,
		"INSERT INTO users (username, password, role, trainer_id) VALUES (?, ?, ?, ?)",
		entity.Username, entity.Password, entity.Role, trainerID)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// Count returns the total number of users.
// POST: Returns count >= 0
func (s *SQLiteStore) Count(ctx context.Context) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM users").Scan(&count)
	return count, err
}
