package projections

import (
	"context"
	"fmt"
	"slices"
	"testing"
	"time"

	"github.com/yasintkd/fittrack-lite/internal/adapters/storage"
	"github.com/yasintkd/fittrack-lite/internal/adapters/storage/member"
	domainClass "github.com/yasintkd/fittrack-lite/internal/domain/class"
	domainEnrollment "github.com/yasintkd/fittrack-lite/internal/domain/enrollment"
	domainMember "github.com/yasintkd/fittrack-lite/internal/domain/member"
	domainPayment "github.com/yasintkd/fittrack-lite/internal/domain/payment"
	domainTrainer "github.com/yasintkd/fittrack-lite/internal/domain/trainer"
)

type mockClassDetailClassStore struct {
	classes map[int64]domainClass.Class
}

// GetByID returns a seeded class.
// POST: Returns the class or a wrapped storage.ErrNotFound
func (m *mockClassDetailClassStore) GetByID(_ context.Context, id int64) (domainClass.Class, error) {
	if c, ok := m.classes[id]; ok {
		return c, nil
	}
	return domainClass.Class{}, fmt.Errorf("class %d: %w", id, storage.ErrNotFound)
}

// List returns all seeded classes.
func (m *mockClassDetailClassStore) List(_ context.Context) ([]domainClass.Class, error) {
	var out []domainClass.Class
	for _, c := range m.classes {
		out = append(out, c)
	}
	return out, nil
}

// ListByTrainerID returns seeded classes for one trainer.
func (m *mockClassDetailClassStore) ListByTrainerID(_ context.Context, trainerID int64) ([]domainClass.Class, error) {
	var out []domainClass.Class
	for _, c := range m.classes {
		if c.TrainerID == trainerID {
			out = append(out, c)
		}
	}
	return out, nil
}

type mockClassDetailTrainerStore struct {
	trainers map[int64]domainTrainer.Trainer
}

// GetByID returns a seeded trainer.
// POST: Returns the trainer or a wrapped storage.ErrNotFound
func (m *mockClassDetailTrainerStore) GetByID(_ context.Context, id int64) (domainTrainer.Trainer, error) {
	if t, ok := m.trainers[id]; ok {
		return t, nil
	}
	return domainTrainer.Trainer{}, fmt.Errorf("trainer %d: %w", id, storage.ErrNotFound)
}

// List returns all seeded trainers.
func (m *mockClassDetailTrainerStore) List(_ context.Context) ([]domainTrainer.Trainer, error) {
	var out []domainTrainer.Trainer
	for _, t := range m.trainers {
		out = append(out, t)
	}
	return out, nil
}

type mockClassDetailMemberStore struct {
	members map[int64]domainMember.Member
}

// GetByID returns a seeded member.
func (m *mockClassDetailMemberStore) GetByID(_ context.Context, id int64) (domainMember.Member, error) {
	if mem, ok := m.members[id]; ok {
		return mem, nil
	}
	return domainMember.Member{}, fmt.Errorf("member %d: %w", id, storage.ErrNotFound)
}

// List returns all seeded members.
func (m *mockClassDetailMemberStore) List(_ context.Context, _ member.ListFilter) ([]domainMember.Member, error) {
	var out []domainMember.Member
	for _, mem := range m.members {
		out = append(out, mem)
	}
	return out, nil
}

// ListByIDs returns seeded members matching the ids, ordered by id.
func (m *mockClassDetailMemberStore) ListByIDs(_ context.Context, ids []int64) ([]domainMember.Member, error) {
	var out []domainMember.Member
	for _, id := range ids {
		if mem, ok := m.members[id]; ok {
			out = append(out, mem)
		}
	}
	slices.SortFunc(out, func(a, b domainMember.Member) int { return int(a.ID - b.ID) })
	return out, nil
}

// SearchByName is unused in these tests.
func (m *mockClassDetailMemberStore) SearchByName(_ context.Context, _ string) ([]domainMember.Member, error) {
	return nil, nil
}

type mockClassDetailEnrollmentStore struct {
	enrollments []domainEnrollment.Enrollment
}

// List returns all seeded enrollments.
func (m *mockClassDetailEnrollmentStore) List(_ context.Context) ([]domainEnrollment.Enrollment, error) {
	return m.enrollments, nil
}

// ListByClassID returns seeded enrollments for one class.
func (m *mockClassDetailEnrollmentStore) ListByClassID(_ context.Context, classID int64) ([]domainEnrollment.Enrollment, error) {
	var out []domainEnrollment.Enrollment
	for _, e := range m.enrollments {
		if e.ClassID == classID {
			out = append(out, e)
		}
	}
	return out, nil
}

// ListByMemberID returns seeded enrollments for one member.
func (m *mockClassDetailEnrollmentStore) ListByMemberID(_ context.Context, memberID int64) ([]domainEnrollment.Enrollment, error) {
	var out []domainEnrollment.Enrollment
	for _, e := range m.enrollments {
		if e.MemberID == memberID {
			out = append(out, e)
		}
	}
	return out, nil
}

// CountByClassID counts seeded enrollments for one class.
func (m *mockClassDetailEnrollmentStore) CountByClassID(ctx context.Context, classID int64) (int, error) {
	list, _ := m.ListByClassID(ctx, classID)
	return len(list), nil
}

type mockClassDetailPaymentStore struct {
	payments []domainPayment.Payment
}

// GetByID is unused in these tests.
func (m *mockClassDetailPaymentStore) GetByID(_ context.Context, id int64) (domainPayment.Payment, error) {
	return domainPayment.Payment{}, fmt.Errorf("payment %d: %w", id, storage.ErrNotFound)
}

// List returns all seeded payments.
func (m *mockClassDetailPaymentStore) List(_ context.Context) ([]domainPayment.Payment, error) {
	return m.payments, nil
}

// ListByMemberID returns seeded payments for one member.
func (m *mockClassDetailPaymentStore) ListByMemberID(_ context.Context, memberID int64) ([]domainPayment.Payment, error) {
	var out []domainPayment.Payment
	for _, p := range m.payments {
		if p.MemberID == memberID {
			out = append(out, p)
		}
	}
	return out, nil
}

// LatestByMemberID is unused in these tests.
func (m *mockClassDetailPaymentStore) LatestByMemberID(_ context.Context, memberID int64) (domainPayment.Payment, error) {
	return domainPayment.Payment{}, fmt.Errorf("latest payment for member %d: %w", memberID, storage.ErrNotFound)
}

// TotalForMembersInMonth sums seeded payments by month prefix.
func (m *mockClassDetailPaymentStore) TotalForMembersInMonth(_ context.Context, memberIDs []int64, monthPrefix string) (float64, error) {
	var total float64
	for _, p := range m.payments {
		if slices.Contains(memberIDs, p.MemberID) && len(p.PaymentDate) >= 7 && p.PaymentDate[:7] == monthPrefix {
			total += p.Amount
		}
	}
	return total, nil
}

// DistinctPayerIDsByMonth lists seeded payer ids by month prefix.
func (m *mockClassDetailPaymentStore) DistinctPayerIDsByMonth(_ context.Context, monthPrefix string) ([]int64, error) {
	var ids []int64
	for _, p := range m.payments {
		if len(p.PaymentDate) >= 7 && p.PaymentDate[:7] == monthPrefix && !slices.Contains(ids, p.MemberID) {
			ids = append(ids, p.MemberID)
		}
	}
	return ids, nil
}

// LatestEndDates maps each payer to its max end date.
func (m *mockClassDetailPaymentStore) LatestEndDates(_ context.Context) (map[int64]string, error) {
	out := map[int64]string{}
	for _, p := range m.payments {
		if p.EndDate != "" && p.EndDate > out[p.MemberID] {
			out[p.MemberID] = p.EndDate
		}
	}
	return out, nil
}

// TestQueryGetClassDetail_SplitAndUnpaid verifies the month total, the
// trainer/studio split and the unpaid roster.
func TestQueryGetClassDetail_SplitAndUnpaid(t *testing.T) {
	today := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

	deps := GetClassDetailDeps{
		ClassStore: &mockClassDetailClassStore{classes: map[int64]domainClass.Class{
			1: {ID: 1, Name: "Taekwondo Kids", TrainerID: 5},
		}},
		TrainerStore: &mockClassDetailTrainerStore{trainers: map[int64]domainTrainer.Trainer{
			5: {ID: 5, Name: "Coach", SharePercent: 40},
		}},
		MemberStore: &mockClassDetailMemberStore{members: map[int64]domainMember.Member{
			1: {ID: 1, Name: "Paid"},
			2: {ID: 2, Name: "Unpaid"},
		}},
		EnrollmentStore: &mockClassDetailEnrollmentStore{enrollments: []domainEnrollment.Enrollment{
			{ID: 1, MemberID: 1, ClassID: 1},
			{ID: 2, MemberID: 2, ClassID: 1},
		}},
		PaymentStore: &mockClassDetailPaymentStore{payments: []domainPayment.Payment{
			{ID: 1, MemberID: 1, Amount: 50, PaymentDate: "2026-08-10"},
			{ID: 2, MemberID: 1, Amount: 80, PaymentDate: "2026-07-10"},
		}},
	}

	res, err := QueryGetClassDetail(context.Background(), GetClassDetailQuery{ClassID: 1, Today: today}, deps)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if res.TotalPayment != 50 {
		t.Errorf("TotalPayment = %v, want 50 (July payment excluded)", res.TotalPayment)
	}
	if res.TrainerShare != 20.00 || res.SalonShare != 30.00 {
		t.Errorf("split = %v/%v, want 20.00/30.00", res.TrainerShare, res.SalonShare)
	}
	if len(res.Members) != 2 {
		t.Errorf("roster size = %d, want 2", len(res.Members))
	}
	if len(res.UnpaidMembers) != 1 || res.UnpaidMembers[0].ID != 2 {
		t.Errorf("unpaid = %+v, want only member 2", res.UnpaidMembers)
	}
}

// TestQueryGetClassDetail_NoTrainer verifies a dangling trainer reference
// produces zero shares instead of an error.
func TestQueryGetClassDetail_NoTrainer(t *testing.T) {
	deps := GetClassDetailDeps{
		ClassStore: &mockClassDetailClassStore{classes: map[int64]domainClass.Class{
			1: {ID: 1, Name: "Orphaned", TrainerID: 99},
		}},
		TrainerStore:    &mockClassDetailTrainerStore{trainers: map[int64]domainTrainer.Trainer{}},
		MemberStore:     &mockClassDetailMemberStore{members: map[int64]domainMember.Member{}},
		EnrollmentStore: &mockClassDetailEnrollmentStore{},
		PaymentStore:    &mockClassDetailPaymentStore{},
	}

	res, err := QueryGetClassDetail(context.Background(), GetClassDetailQuery{ClassID: 1, Today: time.Now()}, deps)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.HasTrainer {
		t.Error("HasTrainer = true for dangling trainer reference")
	}
	if res.TrainerShare != 0 || res.SalonShare != 0 {
		t.Errorf("shares = %v/%v, want 0/0", res.TrainerShare, res.SalonShare)
	}
}
