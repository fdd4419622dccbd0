package gormrepo

import (
	"context"
	"errors"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	domain "lendledger/internal/domain/loan"
	"lendledger/pkg/id"
)

var _ domain.Repository = (*LoanRepository)(nil)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func makeLoan(name string) *domain.Loan {
	l := &domain.Loan{
		LoanID:         id.NewID32(),
		BorrowerName:   name,
		BorrowerEmail:  "borrower@email.com",
		LenderEmail:    "lender@email.com",
		Principal:      1_000_000,
		Rate:           5,
		InterestAmount: 50_000,
		Status:         domain.StatusActive,
		Payments:       []domain.Payment{},
	}
	l.Recalculate()
	return l
}

func TestCreateAndGetByLoanID(t *testing.T) {
	repo := NewLoanRepository(openTestDB(t))
	ctx := context.Background()

	l := makeLoan("Jean Dupont")
	if err := repo.Create(ctx, l); err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := repo.GetByLoanID(ctx, l.LoanID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.BorrowerName != "Jean Dupont" || got.RemainingAmount != 1_050_000 {
		t.Fatalf("got %+v", got)
	}

	if _, err := repo.GetByLoanID(ctx, id.NewID32()); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("missing loan: err = %v", err)
	}
}

func TestCreate_DuplicateLoanID(t *testing.T) {
	repo := NewLoanRepository(openTestDB(t))
	ctx := context.Background()

	l := makeLoan("Jean Dupont")
	if err := repo.Create(ctx, l); err != nil {
		t.Fatalf("Create: %v", err)
	}

	dup := makeLoan("Jean Dupont")
	dup.LoanID = l.LoanID
	if err := repo.Create(ctx, dup); !errors.Is(err, domain.ErrDuplicateLoan) {
		t.Fatalf("duplicate create: err = %v, want ErrDuplicateLoan", err)
	}
}

func TestSave_PersistsPaymentsAndAccumulators(t *testing.T) {
	repo := NewLoanRepository(openTestDB(t))
	ctx := context.Background()

	l := makeLoan("Marie Martin")
	if err := repo.Create(ctx, l); err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := repo.GetByLoanID(ctx, l.LoanID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	got.ApplyPayment(domain.Payment{PaymentID: id.NewID32(), LoanRef: got.ID, Amount: 400_000, Kind: domain.PaymentPartial})
	got.ApplyPayment(domain.Payment{PaymentID: id.NewID32(), LoanRef: got.ID, Amount: 650_000, Kind: domain.PaymentFull})
	if err := repo.Save(ctx, got); err != nil {
		t.Fatalf("Save: %v", err)
	}

	reloaded, err := repo.GetByLoanID(ctx, l.LoanID)
	if err != nil {
		t.Fatalf("Get after save: %v", err)
	}
	if len(reloaded.Payments) != 2 {
		t.Fatalf("payments = %d, want 2", len(reloaded.Payments))
	}
	if reloaded.TotalPaid != 1_050_000 || reloaded.RemainingAmount != 0 {
		t.Fatalf("accumulators: paid=%d remaining=%d", reloaded.TotalPaid, reloaded.RemainingAmount)
	}
	if reloaded.Status != domain.StatusCompleted {
		t.Fatalf("status = %s, want completed", reloaded.Status)
	}
}

func TestList_SearchByBorrowerName(t *testing.T) {
	repo := NewLoanRepository(openTestDB(t))
	ctx := context.Background()

	for _, name := range []string{"Jean Dupont", "Marie Martin", "Jeanne Durand"} {
		if err := repo.Create(ctx, makeLoan(name)); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	all, err := repo.List(ctx, "")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("List all = %d, want 3", len(all))
	}

	jeans, err := repo.List(ctx, "JEAN")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(jeans) != 2 {
		t.Fatalf("search JEAN = %d, want 2", len(jeans))
	}
}
