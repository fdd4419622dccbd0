// Package memory is the default ledger backend: a process-local, ordered
// collection of loan records. Reads hand out deep copies and Save replaces
// the stored record wholesale, so callers never observe a partial update.
package memory

import (
	"context"
	"strings"
	"sync"

	domain "lendledger/internal/domain/loan"
)

type Ledger struct {
	mu    sync.RWMutex
	loans map[string]*domain.Loan
	order []string
}

func NewLedger() *Ledger {
	return &Ledger{loans: make(map[string]*domain.Loan)}
}

func (s *Ledger) Create(ctx context.Context, l *domain.Loan) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.loans[l.LoanID]; ok {
		return domain.ErrDuplicateLoan
	}
	s.loans[l.LoanID] = clone(l)
	s.order = append(s.order, l.LoanID)
	return nil
}

func (s *Ledger) GetByLoanID(ctx context.Context, loanID string) (*domain.Loan, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	l, ok := s.loans[loanID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return clone(l), nil
}

func (s *Ledger) Save(ctx context.Context, l *domain.Loan) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.loans[l.LoanID]; !ok {
		return domain.ErrNotFound
	}
	s.loans[l.LoanID] = clone(l)
	return nil
}

func (s *Ledger) List(ctx context.Context, borrower string) ([]*domain.Loan, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	term := strings.ToLower(strings.TrimSpace(borrower))
	out := make([]*domain.Loan, 0, len(s.order))
	for _, loanID := range s.order {
		l := s.loans[loanID]
		if term != "" && !strings.Contains(strings.ToLower(l.BorrowerName), term) {
			continue
		}
		out = append(out, clone(l))
	}
	return out, nil
}

// clone detaches the payment slice and decimal pointers so stored state
// never aliases what callers mutate.
func clone(l *domain.Loan) *domain.Loan {
	c := *l
	c.Payments = append([]domain.Payment(nil), l.Payments...)
	if l.USDTAmount != nil {
		v := *l.USDTAmount
		c.USDTAmount = &v
	}
	if l.USDTRate != nil {
		v := *l.USDTRate
		c.USDTRate = &v
	}
	return &c
}
