package orchestrators

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	emailAdapter "github.com/yasintkd/fittrack-lite/internal/adapters/email"
	"github.com/yasintkd/fittrack-lite/internal/adapters/storage/member"
	domainMember "github.com/yasintkd/fittrack-lite/internal/domain/member"
	"github.com/yasintkd/fittrack-lite/internal/domain/payment"
)

// MemberStoreForReminders defines the member store interface needed by
// SendRenewalReminders.
type MemberStoreForReminders interface {
	List(ctx context.Context, filter member.ListFilter) ([]domainMember.Member, error)
}

// PaymentStoreForReminders defines the payment store interface needed by
// SendRenewalReminders.
type PaymentStoreForReminders interface {
	LatestEndDates(ctx context.Context) (map[int64]string, error)
}

// SendRenewalRemindersInput carries input for the reminder orchestrator.
type SendRenewalRemindersInput struct {
	Today time.Time
}

// SendRenewalRemindersResult reports what happened per category.
type SendRenewalRemindersResult struct {
	Expiring int // members inside the renewal window
	Sent     int // reminders actually delivered
	NoEmail  int // expiring members skipped for lack of an address
}

// SendRenewalRemindersDeps holds dependencies for SendRenewalReminders.
type SendRenewalRemindersDeps struct {
	MemberStore  MemberStoreForReminders
	PaymentStore PaymentStoreForReminders
	EmailSender  emailAdapter.Sender
	FromAddress  string
}

// ExecuteSendRenewalReminders emails every member whose latest coverage ends
// within the renewal window. Members without an email address are counted but
// skipped.
// PRE: EmailSender is configured (noop is fine)
// POST: One email per reachable expiring member; nothing persisted
func ExecuteSendRenewalReminders(ctx context.Context, input SendRenewalRemindersInput, deps SendRenewalRemindersDeps) (SendRenewalRemindersResult, error) {
	members, err := deps.MemberStore.List(ctx, member.ListFilter{})
	if err != nil {
		return SendRenewalRemindersResult{}, fmt.Errorf("failed to list members: %w", err)
	}
	endDates, err := deps.PaymentStore.LatestEndDates(ctx)
	if err != nil {
		return SendRenewalRemindersResult{}, fmt.Errorf("failed to load coverage ends: %w", err)
	}

	var result SendRenewalRemindersResult
	var reqs []emailAdapter.SendRequest
	for _, m := range members {
		end, ok := payment.ParseDay(endDates[m.ID])
		if !ok || !payment.EndsSoon(end, input.Today) {
			continue
		}
		result.Expiring++
		if m.Email == "" {
			result.NoEmail++
			continue
		}
		reqs = append(reqs, emailAdapter.SendRequest{
			To:      []string{m.Email},
			From:    deps.FromAddress,
			Subject: "Membership renewal reminder",
			HTML: fmt.Sprintf("<p>Hi %s,</p><p>Your membership ends on %s. Please renew to keep training with us.</p>",
				m.Name, endDates[m.ID]),
		})
	}

	if len(reqs) > 0 {
		results, err := deps.EmailSender.SendBatch(ctx, reqs)
		if err != nil {
			return result, fmt.Errorf("failed to send reminders: %w", err)
		}
		result.Sent = len(results)
	}

	slog.Info("renewal_reminders", "expiring", result.Expiring, "sent", result.Sent, "no_email", result.NoEmail)
	return result, nil
}
