package loan

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	domain "lendledger/internal/domain/loan"
	"lendledger/internal/notify"
	"lendledger/pkg/id"
	"lendledger/pkg/money"
)

const notifyTimeout = 5 * time.Second

type Usecase struct {
	repo     domain.Repository
	notifier notify.Notifier
}

func NewUsecase(r domain.Repository, n notify.Notifier) *Usecase {
	return &Usecase{repo: r, notifier: n}
}

// Create parses the draft, derives every computed field and appends a fresh
// loan to the ledger. Missing or unparseable required fields reject the
// operation; the ledger is untouched on any rejection.
func (u *Usecase) Create(ctx context.Context, in CreateLoanInput) (*LoanDTO, error) {
	for field, v := range map[string]string{
		"borrower_name":  in.BorrowerName,
		"borrower_email": in.BorrowerEmail,
		"lender_email":   in.LenderEmail,
	} {
		if strings.TrimSpace(v) == "" {
			return nil, fmt.Errorf("%w: %s", domain.ErrMissingField, field)
		}
	}

	principal, err := money.Parse(in.Amount)
	if err != nil {
		return nil, fmt.Errorf("%w: amount", domain.ErrMissingField)
	}
	rate, err := money.ParseRate(in.Rate)
	if err != nil {
		return nil, fmt.Errorf("%w: interest_rate", domain.ErrMissingField)
	}
	start, err := time.Parse("2006-01-02", in.StartDate)
	if err != nil {
		return nil, fmt.Errorf("%w: start_date", domain.ErrInvalidDate)
	}
	end, err := time.Parse("2006-01-02", in.EndDate)
	if err != nil {
		return nil, fmt.Errorf("%w: end_date", domain.ErrInvalidDate)
	}

	interest := domain.Interest(principal, rate)
	l := &domain.Loan{
		LoanID:         id.NewID32(),
		BorrowerName:   strings.TrimSpace(in.BorrowerName),
		BorrowerEmail:  strings.TrimSpace(in.BorrowerEmail),
		LenderEmail:    strings.TrimSpace(in.LenderEmail),
		Principal:      principal,
		Rate:           rate,
		InterestAmount: interest,
		StartDate:      start,
		EndDate:        end,
		Status:         domain.StatusActive,
		MonthlyPayment: domain.Monthly(principal, interest, domain.MonthsBetween(start, end)),
		CryptoTxRef:    strings.TrimSpace(in.CryptoTxRef),
		Payments:       []domain.Payment{},
	}
	// Crypto fields are optional; an absent or malformed rate just leaves
	// them unset, mirroring the calculator's best-effort contract.
	if usdtRate, err := money.ParseDecimal(in.USDTRate); err == nil {
		usdt := domain.USDTEquivalent(principal, usdtRate)
		l.USDTRate = &usdtRate
		l.USDTAmount = &usdt
	}
	l.Recalculate()

	if err := u.repo.Create(ctx, l); err != nil {
		return nil, err
	}

	u.notifyAsync(l, notify.KindCreation)
	return toDTO(l), nil
}

// RecordPayment appends one payment to a loan and recomputes the derived
// accumulators, replacing the stored record in full.
func (u *Usecase) RecordPayment(ctx context.Context, loanID string, in RecordPaymentInput) (*LoanDTO, error) {
	amount, err := money.Parse(in.Amount)
	if err != nil || amount <= 0 {
		return nil, domain.ErrInvalidAmount
	}
	date, err := time.Parse("2006-01-02", in.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: date", domain.ErrInvalidDate)
	}
	kind := domain.PaymentKind(in.Kind)
	if kind != domain.PaymentFull && kind != domain.PaymentPartial {
		return nil, domain.ErrInvalidKind
	}

	l, err := u.repo.GetByLoanID(ctx, loanID)
	if err != nil {
		return nil, err
	}

	l.ApplyPayment(domain.Payment{
		PaymentID: id.NewID32(),
		LoanRef:   l.ID,
		Amount:    amount,
		Date:      date,
		Kind:      kind,
	})
	if err := u.repo.Save(ctx, l); err != nil {
		return nil, err
	}
	return toDTO(l), nil
}

func (u *Usecase) Get(ctx context.Context, loanID string) (*LoanDTO, error) {
	l, err := u.repo.GetByLoanID(ctx, loanID)
	if err != nil {
		return nil, err
	}
	return toDTO(l), nil
}

// List returns the ledger in creation order, optionally filtered by a
// case-insensitive borrower-name search term.
func (u *Usecase) List(ctx context.Context, borrower string) ([]*LoanDTO, error) {
	loans, err := u.repo.List(ctx, borrower)
	if err != nil {
		return nil, err
	}
	out := make([]*LoanDTO, 0, len(loans))
	for _, l := range loans {
		out = append(out, toDTO(l))
	}
	return out, nil
}

func (u *Usecase) Payments(ctx context.Context, loanID string) ([]PaymentDTO, error) {
	dto, err := u.Get(ctx, loanID)
	if err != nil {
		return nil, err
	}
	return dto.Payments, nil
}

func (u *Usecase) Stats(ctx context.Context) (*StatsDTO, error) {
	loans, err := u.repo.List(ctx, "")
	if err != nil {
		return nil, err
	}
	s := &StatsDTO{TotalLoans: len(loans)}
	for _, l := range loans {
		s.TotalPrincipal += l.Principal
		if l.Status == domain.StatusActive {
			s.ActiveLoans++
		}
	}
	return s, nil
}

// MarkOverdue is the external status hook: the engine never infers overdue
// from dates, a scheduler (or an operator) calls this explicitly. Completed
// loans are terminal and reject the transition.
func (u *Usecase) MarkOverdue(ctx context.Context, loanID string) (*LoanDTO, error) {
	l, err := u.repo.GetByLoanID(ctx, loanID)
	if err != nil {
		return nil, err
	}
	if l.Status == domain.StatusCompleted {
		return nil, domain.ErrLoanCompleted
	}
	l.Status = domain.StatusOverdue
	if err := u.repo.Save(ctx, l); err != nil {
		return nil, err
	}
	return toDTO(l), nil
}

// Remind fires a payment-reminder notification for the loan.
func (u *Usecase) Remind(ctx context.Context, loanID string) error {
	l, err := u.repo.GetByLoanID(ctx, loanID)
	if err != nil {
		return err
	}
	u.notifyAsync(l, notify.KindReminder)
	return nil
}

// notifyAsync runs the notification on a detached goroutine. The side
// channel may fail or hang; neither blocks nor rolls back the mutation that
// triggered it, so errors are only logged.
func (u *Usecase) notifyAsync(l *domain.Loan, kind notify.Kind) {
	if u.notifier == nil {
		return
	}
	snapshot := *l
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
		defer cancel()
		var err error
		switch kind {
		case notify.KindReminder:
			err = u.notifier.PaymentReminder(ctx, &snapshot)
		default:
			err = u.notifier.LoanCreated(ctx, &snapshot)
		}
		if err != nil {
			log.Printf("notify %s for loan %s: %v", kind, snapshot.LoanID, err)
		}
	}()
}
