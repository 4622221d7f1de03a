package orchestrators

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/yasintkd/fittrack-lite/internal/domain/member"
	"github.com/yasintkd/fittrack-lite/internal/domain/payment"
)

// MemberStoreForSave defines the store interface needed by the member
// orchestrators.
type MemberStoreForSave interface {
	GetByID(ctx context.Context, id int64) (member.Member, error)
	Insert(ctx context.Context, value member.Member) (int64, error)
	Update(ctx context.Context, value member.Member) error
	Delete(ctx context.Context, id int64) error
}

// ErrIncompleteRecord is returned when a full-record update is missing
// fields. Updates overwrite the whole row; partial records are rejected
// instead of silently blanking the absent columns.
var ErrIncompleteRecord = errors.New("update requires the full record")

// SaveMemberInput carries a full member record. ID is zero on create.
type SaveMemberInput struct {
	ID               int64
	TrainerID        int64
	Name             string
	Email            string
	Phone            string
	JoinDate         string
	BirthDate        string
	Height           float64
	Weight           float64
	BeltLevel        string
	WeightCategory   string
	ParentName       string
	ParentPhone      string
	ParentEmail      string
	RegistrationDate string
}

// SaveMemberDeps holds dependencies for the member orchestrators.
type SaveMemberDeps struct {
	MemberStore MemberStoreForSave
}

func memberFromInput(input SaveMemberInput) member.Member {
	return member.Member{
		ID:               input.ID,
		TrainerID:        input.TrainerID,
		Name:             input.Name,
		Email:            input.Email,
		Phone:            input.Phone,
		JoinDate:         input.JoinDate,
		BirthDate:        input.BirthDate,
		Height:           input.Height,
		Weight:           input.Weight,
		BeltLevel:        input.BeltLevel,
		WeightCategory:   input.WeightCategory,
		ParentName:       input.ParentName,
		ParentPhone:      input.ParentPhone,
		ParentEmail:      input.ParentEmail,
		RegistrationDate: input.RegistrationDate,
	}
}

// ExecuteCreateMember registers a new member.
// PRE: TrainerID already defaulted to the acting trainer by the caller
// POST: Member persisted; JoinDate defaults to today when absent
func ExecuteCreateMember(ctx context.Context, input SaveMemberInput, deps SaveMemberDeps) (int64, error) {
	if input.JoinDate == "" {
		input.JoinDate = time.Now().Format(payment.DayFormat)
	}
	m := memberFromInput(input)
	if err := m.Validate(); err != nil {
		return 0, err
	}
	id, err := deps.MemberStore.Insert(ctx, m)
	if err != nil {
		return 0, fmt.Errorf("failed to create member: %w", err)
	}
	return id, nil
}

// ExecuteUpdateMember overwrites a member record in full.
// PRE: input carries every field; partial updates are not supported
// POST: Row fully overwritten, ErrIncompleteRecord on a partial input,
// or storage.ErrNotFound
func ExecuteUpdateMember(ctx context.Context, input SaveMemberInput, deps SaveMemberDeps) error {
	if _, err := deps.MemberStore.GetByID(ctx, input.ID); err != nil {
		return err
	}

	// JoinDate is always set on create, so a blank one here means the
	// caller sent a partial record.
	if input.JoinDate == "" {
		return ErrIncompleteRecord
	}
	m := memberFromInput(input)
	if err := m.Validate(); err != nil {
		return err
	}
	if err := deps.MemberStore.Update(ctx, m); err != nil {
		return fmt.Errorf("failed to update member: %w", err)
	}
	return nil
}

// ExecuteDeleteMember hard-deletes a member. Payments and enrollments that
// reference it are left behind as orphans.
// PRE: id > 0
// POST: Row removed; idempotent
func ExecuteDeleteMember(ctx context.Context, id int64, deps SaveMemberDeps) error {
	if err := deps.MemberStore.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete member: %w", err)
	}
	return nil
}
