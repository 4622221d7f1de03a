package payment

import (
	"testing"
	"time"
)

func day(s string) time.Time {
	t, err := time.Parse(DayFormat, s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestParseDay(t *testing.T) {
	if _, ok := ParseDay("2026-08-30"); !ok {
		t.Error("valid date rejected")
	}
	for _, s := range []string{"", "not-a-date", "30/08/2026", "2026-13-01", "2026-08-30T10:00:00Z"} {
		if _, ok := ParseDay(s); ok {
			t.Errorf("ParseDay(%q) accepted, want rejected", s)
		}
	}
}

func TestEndsSoon_WindowBoundaries(t *testing.T) {
	today := day("2026-08-30")
	tests := []struct {
		name string
		end  time.Time
		want bool
	}{
		{"ends today", today, true},
		{"ends tomorrow", today.AddDate(0, 0, 1), true},
		{"ends in exactly 7 days", today.AddDate(0, 0, 7), true},
		{"ends in 8 days", today.AddDate(0, 0, 8), false},
		{"ended yesterday", today.AddDate(0, 0, -1), false},
		{"ended long ago", today.AddDate(0, -3, 0), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EndsSoon(tt.end, today); got != tt.want {
				t.Errorf("EndsSoon(%v, %v) = %v, want %v", tt.end, today, got, tt.want)
			}
		})
	}
}

func TestDaysUntil(t *testing.T) {
	today := day("2026-08-30")
	if got := DaysUntil(day("2026-09-02"), today); got != 3 {
		t.Errorf("DaysUntil = %d, want 3", got)
	}
	if got := DaysUntil(day("2026-08-28"), today); got != -2 {
		t.Errorf("DaysUntil = %d, want -2", got)
	}
}

func TestNextPaymentDay(t *testing.T) {
	today := day("2026-08-30")
	tests := []struct {
		name string
		last string
		want string
	}{
		{"mid-month rolls to next first", "2026-08-15", "2026-09-01"},
		{"first-of-month rolls to next first", "2026-08-01", "2026-09-01"},
		{"december rolls to january", "2025-12-20", "2026-01-01"},
		{"empty falls back to today", "", "2026-08-30"},
		{"malformed falls back to today", "soon", "2026-08-30"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NextPaymentDay(tt.last, today); got != tt.want {
				t.Errorf("NextPaymentDay(%q) = %q, want %q", tt.last, got, tt.want)
			}
		})
	}
}

func TestPaymentValidate(t *testing.T) {
	valid := Payment{MemberID: 1, Amount: 50}
	if err := valid.Validate(); err != nil {
		t.Errorf("valid payment rejected: %v", err)
	}
	noMember := Payment{Amount: 50}
	if err := noMember.Validate(); err != ErrMissingMember {
		t.Errorf("got %v, want ErrMissingMember", err)
	}
	for _, amount := range []float64{0, -10} {
		p := Payment{MemberID: 1, Amount: amount}
		if err := p.Validate(); err != ErrBadAmount {
			t.Errorf("amount=%v: got %v, want ErrBadAmount", amount, err)
		}
	}
}
