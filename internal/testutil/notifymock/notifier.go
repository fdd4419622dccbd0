package notifymock

import (
	"context"

	domain "lendledger/internal/domain/loan"
)

// Call records one notification attempt.
type Call struct {
	Kind   string
	LoanID string
}

// Notifier satisfies notify.Notifier and reports calls on a channel so
// tests can wait for fire-and-forget goroutines deterministically.
type Notifier struct {
	Calls chan Call
	Err   error
}

func New() *Notifier {
	return &Notifier{Calls: make(chan Call, 8)}
}

func (n *Notifier) LoanCreated(ctx context.Context, l *domain.Loan) error {
	n.Calls <- Call{Kind: "creation", LoanID: l.LoanID}
	return n.Err
}

func (n *Notifier) PaymentReminder(ctx context.Context, l *domain.Loan) error {
	n.Calls <- Call{Kind: "reminder", LoanID: l.LoanID}
	return n.Err
}
