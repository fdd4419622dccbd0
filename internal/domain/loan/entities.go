package loan

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusActive    Status = "active"
	StatusCompleted Status = "completed"
	StatusOverdue   Status = "overdue"
)

var (
	ErrNotFound      = errors.New("loan not found")
	ErrInvalidAmount = errors.New("invalid payment amount")
	ErrInvalidDate   = errors.New("invalid date")
	ErrInvalidKind   = errors.New("invalid payment kind")
	ErrMissingField  = errors.New("missing required field")
	ErrLoanCompleted = errors.New("loan already completed")
	ErrDuplicateLoan = errors.New("loan id already exists")
)

type PaymentKind string

const (
	PaymentFull    PaymentKind = "full"
	PaymentPartial PaymentKind = "partial"
)

// Payment is one recorded receipt of funds against a loan. Immutable once
// created; the kind is a user-asserted label, never derived from the amount.
type Payment struct {
	ID        uint64      `gorm:"primaryKey;column:id" json:"-"`
	PaymentID string      `gorm:"size:32;uniqueIndex:ux_payments_payment_id" json:"payment_id"`
	LoanRef   uint64      `gorm:"column:loan_ref;index" json:"-"`
	Amount    int64       `gorm:"not null" json:"amount"`
	Date      time.Time   `gorm:"type:date" json:"date"`
	Kind      PaymentKind `gorm:"size:8" json:"kind"`
	CreatedAt time.Time   `gorm:"autoCreateTime" json:"created_at"`
}

func (Payment) TableName() string { return "payments" }

// Loan is a lending agreement record. Amounts are in the smallest currency
// unit. The derived accumulators (InterestAmount, MonthlyPayment, TotalPaid,
// RemainingAmount) are kept consistent by the calc engine after every
// mutation; RemainingAmount stays signed so overpayments remain auditable.
type Loan struct {
	ID              uint64           `gorm:"primaryKey;column:id" json:"-"`
	LoanID          string           `gorm:"size:32;uniqueIndex:ux_loans_loan_id" json:"loan_id"`
	BorrowerName    string           `gorm:"size:255;index:idx_loans_borrower_name" json:"borrower_name"`
	BorrowerEmail   string           `gorm:"size:255" json:"borrower_email"`
	LenderEmail     string           `gorm:"size:255" json:"lender_email"`
	Principal       int64            `gorm:"not null" json:"principal"`
	Rate            float64          `gorm:"type:decimal(6,3)" json:"interest_rate"`
	InterestAmount  int64            `json:"interest_amount"`
	StartDate       time.Time        `gorm:"type:date" json:"start_date"`
	EndDate         time.Time        `gorm:"type:date" json:"end_date"`
	Status          Status           `gorm:"size:16;default:'active'" json:"status"`
	MonthlyPayment  int64            `json:"monthly_payment,omitempty"`
	USDTAmount      *decimal.Decimal `gorm:"type:decimal(20,2)" json:"usdt_amount,omitempty"`
	USDTRate        *decimal.Decimal `gorm:"type:decimal(20,2)" json:"usdt_rate,omitempty"`
	CryptoTxRef     string           `gorm:"size:128" json:"crypto_tx_ref,omitempty"`
	Payments        []Payment        `gorm:"foreignKey:LoanRef;references:ID" json:"payments"`
	TotalPaid       int64            `json:"total_paid"`
	RemainingAmount int64            `json:"remaining_amount"`
	CreatedAt       time.Time        `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time        `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Loan) TableName() string { return "loans" }
