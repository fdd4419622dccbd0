// Package notify is the notification side-channel. Notifications are always
// attempted after a successful ledger mutation but never required to succeed:
// callers fire them on a detached goroutine, log failures and move on.
package notify

import (
	"context"
	"log"

	"lendledger/internal/domain/loan"
	"lendledger/pkg/money"
)

type Kind string

const (
	KindCreation Kind = "creation"
	KindReminder Kind = "reminder"
)

type Notifier interface {
	LoanCreated(ctx context.Context, l *loan.Loan) error
	PaymentReminder(ctx context.Context, l *loan.Loan) error
}

// LogNotifier simulates the e-mail channel by writing what would have been
// sent to the process log. Default when no broker is configured.
type LogNotifier struct{}

func NewLogNotifier() *LogNotifier { return &LogNotifier{} }

func (n *LogNotifier) LoanCreated(ctx context.Context, l *loan.Loan) error {
	return n.send(KindCreation, l)
}

func (n *LogNotifier) PaymentReminder(ctx context.Context, l *loan.Loan) error {
	return n.send(KindReminder, l)
}

func (n *LogNotifier) send(kind Kind, l *loan.Loan) error {
	log.Printf("notify: kind=%s loan=%s borrower=%q to=%s cc=%s amount=%s monthly=%s",
		kind, l.LoanID, l.BorrowerName, l.BorrowerEmail, l.LenderEmail,
		money.Format(l.Principal), money.Format(l.MonthlyPayment))
	return nil
}
