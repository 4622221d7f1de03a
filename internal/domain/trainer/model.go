package trainer

import (
	"errors"
	"math"
	"strings"
)

// Domain errors
var (
	ErrEmptyName    = errors.New("trainer name cannot be empty")
	ErrInvalidShare = errors.New("share percent must be between 0 and 100")
)

// Trainer holds state for a trainer. SharePercent is the fraction of each
// payment (0-100) retained by the trainer rather than the studio.
type Trainer struct {
	ID           int64
	Name         string
	Email        string
	Phone        string
	SharePercent float64
}

// Validate checks if the Trainer has valid data.
// PRE: Trainer struct is initialized
// POST: Returns error if validation fails, nil otherwise
func (t *Trainer) Validate() error {
	if strings.TrimSpace(t.Name) == "" {
		return ErrEmptyName
	}
	if t.SharePercent < 0 || t.SharePercent > 100 {
		return ErrInvalidShare
	}
	return nil
}

// Split divides a payment amount between the trainer and the studio.
// INVARIANT: trainerShare + salonShare == Round2(amount)
func (t *Trainer) Split(amount float64) (trainerShare, salonShare float64) {
	return SplitAmount(amount, t.SharePercent)
}

// SplitAmount computes the revenue split for a payment amount at the given
// share percent. Shares are rounded to 2 decimal places; the studio share is
// the remainder, so the two always reconcile to the rounded amount.
func SplitAmount(amount, sharePercent float64) (trainerShare, salonShare float64) {
	trainerShare = Round2(amount * sharePercent / 100)
	salonShare = Round2(Round2(amount) - trainerShare)
	return trainerShare, salonShare
}

// Round2 rounds to 2 decimal places, half away from zero.
func Round2(x float64) float64 {
	return math.Round(x*100) / 100
}
