package loanmock

import (
	"context"
	"errors"

	domain "lendledger/internal/domain/loan"
)

// Repo is a function-backed mock that satisfies domain.Repository.
// Only the hooks a test sets are exercised; unset hooks return a
// "not implemented" error so accidental calls fail loudly.
type Repo struct {
	CreateFn      func(ctx context.Context, l *domain.Loan) error
	GetByLoanIDFn func(ctx context.Context, loanID string) (*domain.Loan, error)
	SaveFn        func(ctx context.Context, l *domain.Loan) error
	ListFn        func(ctx context.Context, borrower string) ([]*domain.Loan, error)
}

func (m *Repo) Create(ctx context.Context, l *domain.Loan) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, l)
	}
	return nil
}

func (m *Repo) GetByLoanID(ctx context.Context, loanID string) (*domain.Loan, error) {
	if m.GetByLoanIDFn != nil {
		return m.GetByLoanIDFn(ctx, loanID)
	}
	return nil, errors.New("not implemented")
}

func (m *Repo) Save(ctx context.Context, l *domain.Loan) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, l)
	}
	return nil
}

func (m *Repo) List(ctx context.Context, borrower string) ([]*domain.Loan, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, borrower)
	}
	return nil, errors.New("not implemented")
}
