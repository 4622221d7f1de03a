package orchestrators

import (
	"context"
	"fmt"

	"github.com/yasintkd/fittrack-lite/internal/domain/enrollment"
)

// EnrollmentStoreForEnroll defines the store interface needed by Enroll.
type EnrollmentStoreForEnroll interface {
	Insert(ctx context.Context, value enrollment.Enrollment) (int64, error)
}

// EnrollInput carries input for the enroll orchestrator.
type EnrollInput struct {
	MemberID int64
	ClassID  int64
}

// EnrollDeps holds dependencies for Enroll.
type EnrollDeps struct {
	EnrollmentStore EnrollmentStoreForEnroll
}

// ExecuteEnroll links a member to a class. Enrolling the same member in the
// same class twice creates a second row; there is no uniqueness rule.
// PRE: MemberID and ClassID reference existing rows
// POST: Enrollment persisted
func ExecuteEnroll(ctx context.Context, input EnrollInput, deps EnrollDeps) (int64, error) {
	e := enrollment.Enrollment{
		MemberID: input.MemberID,
		ClassID:  input.ClassID,
	}
	if err := e.Validate(); err != nil {
		return 0, err
	}
	id, err := deps.EnrollmentStore.Insert(ctx, e)
	if err != nil {
		return 0, fmt.Errorf("failed to enroll member: %w", err)
	}
	return id, nil
}
