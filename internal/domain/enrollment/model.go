package enrollment

import "errors"

// Domain errors
var (
	ErrMissingMember = errors.New("enrollment requires a member")
	ErrMissingClass  = errors.New("enrollment requires a class")
)

// Enrollment records that a member attends a class. The same pair may be
// recorded more than once; no uniqueness is enforced.
type Enrollment struct {
	ID       int64
	MemberID int64
	ClassID  int64
}

// Validate checks if the Enrollment has valid data.
// PRE: Enrollment struct is initialized
// POST: Returns error if validation fails, nil otherwise
func (e *Enrollment) Validate() error {
	if e.MemberID <= 0 {
		return ErrMissingMember
	}
	if e.ClassID <= 0 {
		return ErrMissingClass
	}
	return nil
}
