package projections

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/yasintkd/fittrack-lite/internal/adapters/storage"
	domainClass "github.com/yasintkd/fittrack-lite/internal/domain/class"
	domainEnrollment "github.com/yasintkd/fittrack-lite/internal/domain/enrollment"
	domainMember "github.com/yasintkd/fittrack-lite/internal/domain/member"
	domainPayment "github.com/yasintkd/fittrack-lite/internal/domain/payment"
)

func memberDetailDeps(payments []domainPayment.Payment) GetMemberDetailDeps {
	return GetMemberDetailDeps{
		MemberStore: &mockClassDetailMemberStore{members: map[int64]domainMember.Member{
			1: {ID: 1, Name: "Ayşe Yılmaz"},
		}},
		PaymentStore: &mockClassDetailPaymentStore{payments: payments},
		EnrollmentStore: &mockClassDetailEnrollmentStore{enrollments: []domainEnrollment.Enrollment{
			{ID: 1, MemberID: 1, ClassID: 10},
			{ID: 2, MemberID: 1, ClassID: 99}, // class deleted
		}},
		ClassStore: &mockClassDetailClassStore{classes: map[int64]domainClass.Class{
			10: {ID: 10, Name: "Taekwondo Kids"},
		}},
	}
}

// TestQueryGetMemberDetail_RenewalSuggested verifies a coverage end inside
// the window surfaces a suggestion and orphaned enrollments are skipped.
func TestQueryGetMemberDetail_RenewalSuggested(t *testing.T) {
	today := time.Date(2026, 8, 30, 9, 0, 0, 0, time.UTC)
	deps := memberDetailDeps([]domainPayment.Payment{
		{ID: 1, MemberID: 1, Amount: 100, EndDate: "2026-09-03"},
	})

	res, err := QueryGetMemberDetail(context.Background(), GetMemberDetailQuery{MemberID: 1, Today: today}, deps)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.RenewSuggestion == "" {
		t.Error("RenewSuggestion empty, want a reminder for coverage ending in 4 days")
	}
	if len(res.ClassNames) != 1 || res.ClassNames[0] != "Taekwondo Kids" {
		t.Errorf("ClassNames = %v, want the surviving class only", res.ClassNames)
	}
}

// TestQueryGetMemberDetail_NoSuggestion verifies past, far-future, malformed
// and missing end dates all suppress the suggestion.
func TestQueryGetMemberDetail_NoSuggestion(t *testing.T) {
	today := time.Date(2026, 8, 30, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		payments []domainPayment.Payment
	}{
		{"already lapsed", []domainPayment.Payment{{ID: 1, MemberID: 1, Amount: 10, EndDate: "2026-08-20"}}},
		{"far future", []domainPayment.Payment{{ID: 1, MemberID: 1, Amount: 10, EndDate: "2026-12-31"}}},
		{"malformed", []domainPayment.Payment{{ID: 1, MemberID: 1, Amount: 10, EndDate: "soon"}}},
		{"empty", []domainPayment.Payment{{ID: 1, MemberID: 1, Amount: 10}}},
		{"no payments", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			deps := memberDetailDeps(tt.payments)
			res, err := QueryGetMemberDetail(context.Background(), GetMemberDetailQuery{MemberID: 1, Today: today}, deps)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if res.RenewSuggestion != "" {
				t.Errorf("RenewSuggestion = %q, want empty", res.RenewSuggestion)
			}
		})
	}
}

// TestQueryGetMemberDetail_NotFound verifies the sentinel propagates for
// unknown members.
func TestQueryGetMemberDetail_NotFound(t *testing.T) {
	deps := memberDetailDeps(nil)
	_, err := QueryGetMemberDetail(context.Background(), GetMemberDetailQuery{MemberID: 42, Today: time.Now()}, deps)
	if !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("error = %v, want ErrNotFound", err)
	}
}
