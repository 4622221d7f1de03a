package orchestrators

import (
	"context"
	"fmt"

	"github.com/yasintkd/fittrack-lite/internal/domain/trainer"
)

// TrainerStoreForSave defines the store interface needed by the trainer
// orchestrators.
type TrainerStoreForSave interface {
	Insert(ctx context.Context, value trainer.Trainer) (int64, error)
	Update(ctx context.Context, value trainer.Trainer) error
	Delete(ctx context.Context, id int64) error
}

// SaveTrainerInput carries a full trainer record. ID is zero on create.
type SaveTrainerInput struct {
	ID           int64
	Name         string
	Email        string
	Phone        string
	SharePercent float64
}

// SaveTrainerDeps holds dependencies for the trainer orchestrators.
type SaveTrainerDeps struct {
	TrainerStore TrainerStoreForSave
}

// ExecuteCreateTrainer registers a new trainer.
// PRE: SharePercent is the trainer's revenue cut, 0-100
// POST: Trainer persisted
func ExecuteCreateTrainer(ctx context.Context, input SaveTrainerInput, deps SaveTrainerDeps) (int64, error) {
	t := trainer.Trainer{
		Name:         input.Name,
		Email:        input.Email,
		Phone:        input.Phone,
		SharePercent: input.SharePercent,
	}
	if err := t.Validate(); err != nil {
		return 0, err
	}
	id, err := deps.TrainerStore.Insert(ctx, t)
	if err != nil {
		return 0, fmt.Errorf("failed to create trainer: %w", err)
	}
	return id, nil
}

// ExecuteUpdateTrainer overwrites a trainer record in full.
// PRE: input carries every field
// POST: Row fully overwritten, or storage.ErrNotFound
func ExecuteUpdateTrainer(ctx context.Context, input SaveTrainerInput, deps SaveTrainerDeps) error {
	t := trainer.Trainer{
		ID:           input.ID,
		Name:         input.Name,
		Email:        input.Email,
		Phone:        input.Phone,
		SharePercent: input.SharePercent,
	}
	if err := t.Validate(); err != nil {
		return err
	}
	if err := deps.TrainerStore.Update(ctx, t); err != nil {
		return fmt.Errorf("failed to update trainer: %w", err)
	}
	return nil
}

// ExecuteDeleteTrainer hard-deletes a trainer. Classes keep their dangling
// trainer_id; readers tolerate it.
// PRE: id > 0
// POST: Row removed; idempotent
func ExecuteDeleteTrainer(ctx context.Context, id int64, deps SaveTrainerDeps) error {
	if err := deps.TrainerStore.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete trainer: %w", err)
	}
	return nil
}
