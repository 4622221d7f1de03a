package orchestrators

import (
	"context"
	"testing"
	"time"

	emailAdapter "github.com/yasintkd/fittrack-lite/internal/adapters/email"
	"github.com/yasintkd/fittrack-lite/internal/adapters/storage/member"
	domainMember "github.com/yasintkd/fittrack-lite/internal/domain/member"
)

type mockReminderMemberStore struct {
	members []domainMember.Member
}

// List returns all seeded members.
// POST: Returns the seeded members regardless of filter
func (m *mockReminderMemberStore) List(_ context.Context, _ member.ListFilter) ([]domainMember.Member, error) {
	return m.members, nil
}

type mockReminderPaymentStore struct {
	endDates map[int64]string
}

// LatestEndDates returns the seeded coverage map.
// POST: Returns the seeded map
func (m *mockReminderPaymentStore) LatestEndDates(_ context.Context) (map[int64]string, error) {
	return m.endDates, nil
}

type captureSender struct {
	requests []emailAdapter.SendRequest
}

// Send records the request without delivering.
// POST: Request is appended to the capture log
func (s *captureSender) Send(_ context.Context, req emailAdapter.SendRequest) (emailAdapter.SendResult, error) {
	s.requests = append(s.requests, req)
	return emailAdapter.SendResult{MessageID: "test"}, nil
}

// SendBatch records each request without delivering.
// POST: Requests are appended to the capture log
func (s *captureSender) SendBatch(_ context.Context, reqs []emailAdapter.SendRequest) ([]emailAdapter.SendResult, error) {
	s.requests = append(s.requests, reqs...)
	results := make([]emailAdapter.SendResult, len(reqs))
	return results, nil
}

// TestExecuteSendRenewalReminders verifies window selection and address
// handling.
func TestExecuteSendRenewalReminders(t *testing.T) {
	today := time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)
	sender := &captureSender{}

	deps := SendRenewalRemindersDeps{
		MemberStore: &mockReminderMemberStore{members: []domainMember.Member{
			{ID: 1, Name: "Ends today", Email: "one@example.com"},
			{ID: 2, Name: "Ends in seven", Email: "two@example.com"},
			{ID: 3, Name: "Ends in eight", Email: "three@example.com"},
			{ID: 4, Name: "Already lapsed", Email: "four@example.com"},
			{ID: 5, Name: "No address"},
			{ID: 6, Name: "No payments", Email: "six@example.com"},
			{ID: 7, Name: "Bad date", Email: "seven@example.com"},
		}},
		PaymentStore: &mockReminderPaymentStore{endDates: map[int64]string{
			1: "2026-08-30",
			2: "2026-09-06",
			3: "2026-09-07",
			4: "2026-08-29",
			5: "2026-09-01",
			7: "not-a-date",
		}},
		EmailSender: sender,
		FromAddress: "FitTrack <noreply@fittrack.example>",
	}

	res, err := ExecuteSendRenewalReminders(context.Background(), SendRenewalRemindersInput{Today: today}, deps)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Members 1, 2, 5 are inside the window; 5 has no address.
	if res.Expiring != 3 {
		t.Errorf("Expiring = %d, want 3", res.Expiring)
	}
	if res.Sent != 2 {
		t.Errorf("Sent = %d, want 2", res.Sent)
	}
	if res.NoEmail != 1 {
		t.Errorf("NoEmail = %d, want 1", res.NoEmail)
	}

	if len(sender.requests) != 2 {
		t.Fatalf("sender got %d requests, want 2", len(sender.requests))
	}
	if sender.requests[0].To[0] != "one@example.com" || sender.requests[1].To[0] != "two@example.com" {
		t.Errorf("recipients = %v, %v", sender.requests[0].To, sender.requests[1].To)
	}
}

// TestExecuteSendRenewalReminders_NothingExpiring verifies the sender is not
// called when the window is empty.
func TestExecuteSendRenewalReminders_NothingExpiring(t *testing.T) {
	sender := &captureSender{}
	deps := SendRenewalRemindersDeps{
		MemberStore: &mockReminderMemberStore{members: []domainMember.Member{
			{ID: 1, Name: "Fresh", Email: "fresh@example.com"},
		}},
		PaymentStore: &mockReminderPaymentStore{endDates: map[int64]string{1: "2027-01-01"}},
		EmailSender:  sender,
	}

	res, err := ExecuteSendRenewalReminders(context.Background(), SendRenewalRemindersInput{Today: time.Now()}, deps)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Expiring != 0 || res.Sent != 0 {
		t.Errorf("result = %+v, want all zero", res)
	}
	if len(sender.requests) != 0 {
		t.Errorf("sender was called %d times, want 0", len(sender.requests))
	}
}
