package member

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/yasintkd/fittrack-lite/internal/adapters/storage"
	domain "github.com/yasintkd/fittrack-lite/internal/domain/member"
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore creates a new member store.
func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

const memberColumns = "id, trainer_id, name, email, phone, join_date, birth_date, height, weight, belt_level, weight_category, parent_name, parent_phone, parent_email, registration_date"

// scanMember reads one row. Evolved columns are nullable on rows that predate
// their migration, so everything optional goes through sql.Null types.
func scanMember(scan func(dest ...any) error) (domain.Member, error) {
	var entity domain.Member
	var (
		trainerID              sql.NullInt64
		name, email, phone     sql.NullString
		joinDate, birthDate    sql.NullString
		height, weight         sql.NullFloat64
		beltLevel, weightCat   sql.NullString
		parentName, parentTel  sql.NullString
		parentEmail, regnDate  sql.NullString
	)
	err := scan(&entity.ID, &trainerID, &name, &email, &phone, &joinDate, &birthDate,
		&height, &weight, &beltLevel, &weightCat, &parentName, &parentTel, &parentEmail, &regnDate)
	if err != nil {
		return domain.Member{}, err
	}
	entity.TrainerID = trainerID.Int64
	entity.Name = name.String
	entity.Email = email.String
	entity.Phone = phone.String
	entity.JoinDate = joinDate.String
	entity.BirthDate = birthDate.String
	entity.Height = height.Float64
	entity.Weight = weight.Float64
	entity.BeltLevel = beltLevel.String
	entity.WeightCategory = weightCat.String
	entity.ParentName = parentName.String
	entity.ParentPhone = parentTel.String
	entity.ParentEmail = parentEmail.String
	entity.RegistrationDate = regnDate.String
	return entity, nil
}

// GetByID retrieves a Member by its ID.
// PRE: id > 0
// POST: Returns the entity or storage.ErrNotFound
func (s *SQLiteStore) GetByID(ctx context.Context, id int64) (domain.Member, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+memberColumns+" FROM members WHERE id = ?", id)
	entity, err := scanMember(row.Scan)
	if err == sql.ErrNoRows {
		return domain.Member{}, fmt.Errorf("member %d: %w", id, storage.ErrNotFound)
	}
	return entity, err
}

// Insert persists a new Member and returns its generated id.
// PRE: entity has been validated
// POST: Entity is persisted
func (s *SQLiteStore) Insert(ctx context.Context, entity domain.Member) (int64, error) {
	res, err := s.db.ExecContext(ctx, `
		INSERT INTO members (trainer_id, name, email, phone, join_date, birth_date, height, weight,
			belt_level, weight_category, parent_name, parent_phone, parent_email, registration_date)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		nullableID(entity.TrainerID), entity.Name, entity.Email, entity.Phone, entity.JoinDate,
		entity.BirthDate, entity.Height, entity.Weight, entity.BeltLevel, entity.WeightCategory,
		entity.ParentName, entity.ParentPhone, entity.ParentEmail, entity.RegistrationDate)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// Update overwrites every mutable field of a Member. Last write wins; there is
// no compare-and-swap.
// PRE: entity has been validated and carries every field
// POST: Row is fully overwritten, or storage.ErrNotFound
func (s *SQLiteStore) Update(ctx context.Context, entity domain.Member) error {
	res, err := s.db.ExecContext(ctx, `
		UPDATE members SET
			trainer_id = ?, name = ?, email = ?, phone = ?, join_date = ?, birth_date = ?,
			height = ?, weight = ?, belt_level = ?, weight_category = ?,
			parent_name = ?, parent_phone = ?, parent_email = ?, registration_date = ?
		WHERE id = ?`,
		nullableID(entity.TrainerID), entity.Name, entity.Email, entity.Phone, entity.JoinDate,
		entity.BirthDate, entity.Height, entity.Weight, entity.BeltLevel, entity.WeightCategory,
		entity.ParentName, entity.ParentPhone, entity.ParentEmail, entity.RegistrationDate,
		entity.ID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("member %d: %w", entity.ID, storage.ErrNotFound)
	}
	return nil
}

// Delete removes a Member. Enrollments and payments referencing the member
// are left in place; readers tolerate the orphans.
// PRE: id > 0
// POST: Row with given id is removed
func (s *SQLiteStore) Delete(ctx context.Context, id int64) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM members WHERE id = ?", id)
	return err
}

// List retrieves members, optionally restricted to one trainer.
// PRE: filter has valid parameters
// POST: Returns matching entities ordered by id
func (s *SQLiteStore) List(ctx context.Context, filter ListFilter) ([]domain.Member, error) {
	query := "SELECT " + memberColumns + " FROM members"
	var args []any
	if filter.TrainerID != 0 {
		query += " WHERE trainer_id = ?"
		args = append(args, filter.TrainerID)
	}
	query += " ORDER BY id"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectMembers(rows)
}

// ListByIDs retrieves the members with the given ids. Unknown ids are simply
// absent from the result.
// PRE: none
// POST: Returns matching entities ordered by id
func (s *SQLiteStore) ListByIDs(ctx context.Context, ids []int64) ([]domain.Member, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(ids)), ",")
	query := "SELECT " + memberColumns + " FROM members WHERE id IN (" + placeholders + ") ORDER BY id"
	args := make([]any, len(ids))
	for i, id := range ids {
		args[i] = id
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectMembers(rows)
}

// SearchByName finds members whose name contains the query, case-insensitive
// per SQLite LIKE semantics (ASCII case folding).
// PRE: none; an empty query matches everyone
// POST: Returns matching members ordered by name
func (s *SQLiteStore) SearchByName(ctx context.Context, query string) ([]domain.Member, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT "+memberColumns+" FROM members WHERE name LIKE ? ORDER BY name",
		"%"+query+"%")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectMembers(rows)
}

func collectMembers(rows *sql.Rows) ([]domain.Member, error) {
	var results []domain.Member
	for rows.Next() {
		entity, err := scanMember(rows.Scan)
		if err != nil {
			return nil, err
		}
		results = append(results, entity)
	}
	return results, rows.Err()
}

func nullableID(id int64) any {
	if id == 0 {
		return nil
	}
	return id
}
