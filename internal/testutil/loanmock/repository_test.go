package loanmock

import (
	"context"
	"testing"

	domain "lendledger/internal/domain/loan"
)

// compile-time check: the mock must keep tracking the repository port.
var _ domain.Repository = (*Repo)(nil)

func TestRepo_DefaultsAndHooks(t *testing.T) {
	ctx := context.Background()
	m := &Repo{}

	if err := m.Create(ctx, &domain.Loan{}); err != nil {
		t.Fatalf("Create default should be nil, got %v", err)
	}
	if _, err := m.GetByLoanID(ctx, "x"); err == nil {
		t.Fatal("GetByLoanID default should error")
	}
	if _, err := m.List(ctx, ""); err == nil {
		t.Fatal("List default should error")
	}

	called := false
	m.GetByLoanIDFn = func(ctx context.Context, loanID string) (*domain.Loan, error) {
		called = true
		return &domain.Loan{LoanID: loanID}, nil
	}
	l, err := m.GetByLoanID(ctx, "abc")
	if err != nil || !called || l.LoanID != "abc" {
		t.Fatalf("hook not used: %v %v", l, err)
	}
}
