// Package gormrepo is the database-backed ledger (sqlite or mysql through
// GORM). Same contract as the in-memory backend; durability guarantees stay
// out of scope.
package gormrepo

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	domain "lendledger/internal/domain/loan"
)

type LoanRepository struct{ db *gorm.DB }

func NewLoanRepository(db *gorm.DB) *LoanRepository { return &LoanRepository{db: db} }

// Migrate creates the loans and payments tables.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&domain.Loan{}, &domain.Payment{})
}

func (r *LoanRepository) Create(ctx context.Context, l *domain.Loan) error {
	err := r.db.WithContext(ctx).Create(l).Error
	if err != nil && errors.Is(err, gorm.ErrDuplicatedKey) {
		return domain.ErrDuplicateLoan
	}
	return err
}

func (r *LoanRepository) GetByLoanID(ctx context.Context, loanID string) (*domain.Loan, error) {
	var out domain.Loan
	res := r.db.WithContext(ctx).
		Preload("Payments", func(db *gorm.DB) *gorm.DB { return db.Order("payments.id ASC") }).
		Where("loan_id = ?", loanID).
		First(&out)
	if res.Error != nil {
		if errors.Is(res.Error, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, res.Error
	}
	return &out, nil
}

func (r *LoanRepository) Save(ctx context.Context, l *domain.Loan) error {
	// Payments are append-only; FullSaveAssociations upserts the new tail
	// along with the recomputed accumulators in one go.
	return r.db.WithContext(ctx).
		Session(&gorm.Session{FullSaveAssociations: true}).
		Save(l).Error
}

func (r *LoanRepository) List(ctx context.Context, borrower string) ([]*domain.Loan, error) {
	q := r.db.WithContext(ctx).
		Preload("Payments", func(db *gorm.DB) *gorm.DB { return db.Order("payments.id ASC") }).
		Order("id ASC")
	if term := strings.TrimSpace(borrower); term != "" {
		q = q.Where("LOWER(borrower_name) LIKE ?", "%"+strings.ToLower(term)+"%")
	}
	var out []*domain.Loan
	if err := q.Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
