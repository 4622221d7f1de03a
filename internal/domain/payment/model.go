package payment

import (
	"errors"
	"time"
)

// DayFormat is the canonical date representation throughout the schema.
const DayFormat = "2006-01-02"

// RenewalWindowDays is how far ahead a coverage window may end before a
// renewal is suggested.
const RenewalWindowDays = 7

// Domain errors
var (
	ErrMissingMember = errors.New("payment requires a member")
	ErrBadAmount     = errors.New("payment amount must be positive")
)

// Payment records money received from a member. StartDate/EndDate describe
// the coverage window the payment entitles the member to; PaymentDate is when
// the money changed hands. All dates are YYYY-MM-DD strings and may be empty
// or malformed in old rows; readers parse them explicitly via ParseDay.
type Payment struct {
	ID          int64
	MemberID    int64
	Amount      float64
	PaymentDate string
	StartDate   string
	EndDate     string
	Note        string
}

// Validate checks if the Payment has valid data.
// PRE: Payment struct is initialized
// POST: Returns error if validation fails, nil otherwise
func (p *Payment) Validate() error {
	if p.MemberID <= 0 {
		return ErrMissingMember
	}
	if p.Amount <= 0 {
		return ErrBadAmount
	}
	return nil
}

// ParseDay parses a YYYY-MM-DD date string. The boolean reports whether the
// value was present and well-formed; callers decide what absence means
// instead of relying on a blanket error swallow.
func ParseDay(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(DayFormat, s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// EndsSoon reports whether a coverage end date falls inside the renewal
// window: today through today+7 days, both boundaries inclusive. Dates in the
// past are not "soon"; the window has already lapsed.
func EndsSoon(end, today time.Time) bool {
	end = truncateDay(end)
	today = truncateDay(today)
	if end.Before(today) {
		return false
	}
	return !end.After(today.AddDate(0, 0, RenewalWindowDays))
}

// DaysUntil returns the number of whole days from today until end.
func DaysUntil(end, today time.Time) int {
	return int(truncateDay(end).Sub(truncateDay(today)).Hours() / 24)
}

// MonthPrefix returns the YYYY-MM prefix used for calendar-month matching.
func MonthPrefix(t time.Time) string {
	return t.Format("2006-01")
}

// NextPaymentDay suggests the date for a follow-up payment: the first day of
// the month after the last payment. A missing or malformed last date falls
// back to today.
func NextPaymentDay(lastPaymentDate string, today time.Time) string {
	last, ok := ParseDay(lastPaymentDate)
	if !ok {
		return today.Format(DayFormat)
	}
	firstOfMonth := time.Date(last.Year(), last.Month(), 1, 0, 0, 0, 0, time.UTC)
	return firstOfMonth.AddDate(0, 1, 0).Format(DayFormat)
}

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
