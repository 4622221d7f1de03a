package orchestrators

import (
	"context"
	"fmt"

	"github.com/yasintkd/fittrack-lite/internal/domain/payment"
)

// PaymentStoreForRecord defines the store interface needed by the payment
// orchestrators.
type PaymentStoreForRecord interface {
	GetByID(ctx context.Context, id int64) (payment.Payment, error)
	Insert(ctx context.Context, value payment.Payment) (int64, error)
	Update(ctx context.Context, value payment.Payment) error
	Delete(ctx context.Context, id int64) error
}

// RecordPaymentInput carries a full payment record. ID is zero on create.
type RecordPaymentInput struct {
	ID          int64
	MemberID    int64
	Amount      float64
	PaymentDate string
	StartDate   string
	EndDate     string
	Note        string
}

// RecordPaymentDeps holds dependencies for the payment orchestrators.
type RecordPaymentDeps struct {
	PaymentStore PaymentStoreForRecord
}

func paymentFromInput(input RecordPaymentInput) payment.Payment {
	return payment.Payment{
		ID:          input.ID,
		MemberID:    input.MemberID,
		Amount:      input.Amount,
		PaymentDate: input.PaymentDate,
		StartDate:   input.StartDate,
		EndDate:     input.EndDate,
		Note:        input.Note,
	}
}

// ExecuteRecordPayment records money received from a member.
// PRE: Amount > 0; dates are YYYY-MM-DD or empty
// POST: Payment persisted
func ExecuteRecordPayment(ctx context.Context, input RecordPaymentInput, deps RecordPaymentDeps) (int64, error) {
	p := paymentFromInput(input)
	if err := p.Validate(); err != nil {
		return 0, err
	}
	id, err := deps.PaymentStore.Insert(ctx, p)
	if err != nil {
		return 0, fmt.Errorf("failed to record payment: %w", err)
	}
	return id, nil
}

// ExecuteUpdatePayment overwrites a payment record in full. The member the
// payment belongs to cannot be changed.
// PRE: input carries every field
// POST: Row fully overwritten, or storage.ErrNotFound
func ExecuteUpdatePayment(ctx context.Context, input RecordPaymentInput, deps RecordPaymentDeps) error {
	existing, err := deps.PaymentStore.GetByID(ctx, input.ID)
	if err != nil {
		return err
	}

	p := paymentFromInput(input)
	p.MemberID = existing.MemberID
	if err := p.Validate(); err != nil {
		return err
	}
	if err := deps.PaymentStore.Update(ctx, p); err != nil {
		return fmt.Errorf("failed to update payment: %w", err)
	}
	return nil
}

// ExecuteDeletePayment removes a payment and reports which member it belonged
// to so the caller can return to the member's page.
// PRE: id > 0
// POST: Row removed, or storage.ErrNotFound
func ExecuteDeletePayment(ctx context.Context, id int64, deps RecordPaymentDeps) (memberID int64, err error) {
	existing, err := deps.PaymentStore.GetByID(ctx, id)
	if err != nil {
		return 0, err
	}
	if err := deps.PaymentStore.Delete(ctx, id); err != nil {
		return 0, fmt.Errorf("failed to delete payment: %w", err)
	}
	return existing.MemberID, nil
}
