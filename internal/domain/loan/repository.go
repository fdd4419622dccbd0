package loan

import "context"

// Repository is the ledger port. Save replaces the whole record; payment
// recording is a read-modify-write, so a future multi-actor deployment must
// wrap these calls with per-loan synchronization without touching the
// calculation contracts.
type Repository interface {
	Create(ctx context.Context, l *Loan) error
	GetByLoanID(ctx context.Context, loanID string) (*Loan, error)
	Save(ctx context.Context, l *Loan) error
	// List returns loans in creation order; a non-empty borrower term
	// filters by case-insensitive substring match on the borrower name.
	List(ctx context.Context, borrower string) ([]*Loan, error)
}
