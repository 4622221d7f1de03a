package class

import (
	"errors"
	"strings"
)

// Domain errors
var (
	ErrEmptyName = errors.New("class name cannot be empty")
)

// Class holds state for a scheduled class. Day and Time are free-form display
// strings ("Monday", "18:00"); TrainerID is the owning trainer row.
type Class struct {
	ID          int64
	TrainerID   int64
	Name        string
	Description string
	Day         string
	Time        string
}

// Validate checks if the Class has valid data.
// PRE: Class struct is initialized
// POST: Returns error if validation fails, nil otherwise
func (c *Class) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return ErrEmptyName
	}
	return nil
}
