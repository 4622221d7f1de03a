package orchestrators

import (
	"context"
	"fmt"

	"github.com/yasintkd/fittrack-lite/internal/domain/class"
)

// ClassStoreForSave defines the store interface needed by the class
// orchestrators.
type ClassStoreForSave interface {
	Insert(ctx context.Context, value class.Class) (int64, error)
	Update(ctx context.Context, value class.Class) error
	Delete(ctx context.Context, id int64) error
}

// SaveClassInput carries a full class record. ID is zero on create.
type SaveClassInput struct {
	ID          int64
	TrainerID   int64
	Name        string
	Description string
	Day         string
	Time        string
}

// SaveClassDeps holds dependencies for the class orchestrators.
type SaveClassDeps struct {
	ClassStore ClassStoreForSave
}

func classFromInput(input SaveClassInput) class.Class {
	return class.Class{
		ID:          input.ID,
		TrainerID:   input.TrainerID,
		Name:        input.Name,
		Description: input.Description,
		Day:         input.Day,
		Time:        input.Time,
	}
}

// ExecuteCreateClass registers a new class.
// POST: Class persisted
func ExecuteCreateClass(ctx context.Context, input SaveClassInput, deps SaveClassDeps) (int64, error) {
	c := classFromInput(input)
	if err := c.Validate(); err != nil {
		return 0, err
	}
	id, err := deps.ClassStore.Insert(ctx, c)
	if err != nil {
		return 0, fmt.Errorf("failed to create class: %w", err)
	}
	return id, nil
}

// ExecuteUpdateClass overwrites a class record in full.
// PRE: input carries every field
// POST: Row fully overwritten, or storage.ErrNotFound
func ExecuteUpdateClass(ctx context.Context, input SaveClassInput, deps SaveClassDeps) error {
	c := classFromInput(input)
	if err := c.Validate(); err != nil {
		return err
	}
	if err := deps.ClassStore.Update(ctx, c); err != nil {
		return fmt.Errorf("failed to update class: %w", err)
	}
	return nil
}

// ExecuteDeleteClass hard-deletes a class. Enrollments referencing it stay
// behind as orphans.
// PRE: id > 0
// POST: Row removed; idempotent
func ExecuteDeleteClass(ctx context.Context, id int64, deps SaveClassDeps) error {
	if err := deps.ClassStore.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete class: %w", err)
	}
	return nil
}
