package member

import (
	"errors"
	"strings"
)

// Max length constants for user-editable fields.
const (
	MaxNameLength = 100
)

// Domain errors
var (
	ErrEmptyName   = errors.New("member name cannot be empty")
	ErrNameTooLong = errors.New("member name cannot exceed 100 characters")
)

// Member holds state for a studio member. Dates are stored as YYYY-MM-DD
// strings, matching the database representation; malformed values are
// tolerated and treated as absent by readers.
type Member struct {
	ID               int64
	TrainerID        int64 // owning trainer row, 0 when unassigned
	Name             string
	Email            string
	Phone            string
	JoinDate         string
	BirthDate        string
	Height           float64 // cm
	Weight           float64 // kg
	BeltLevel        string
	WeightCategory   string
	ParentName       string
	ParentPhone      string
	ParentEmail      string
	RegistrationDate string
}

// Validate checks if the Member has valid data.
// PRE: Member struct is initialized
// POST: Returns error if validation fails, nil otherwise
func (m *Member) Validate() error {
	if strings.TrimSpace(m.Name) == "" {
		return ErrEmptyName
	}
	if len(m.Name) > MaxNameLength {
		return ErrNameTooLong
	}
	return nil
}
