package loan

import (
	"time"

	"github.com/shopspring/decimal"

	domain "lendledger/internal/domain/loan"
)

// CreateLoanInput is the draft-loan boundary format: every field arrives as
// a string, amounts possibly digit-grouped, dates as YYYY-MM-DD. Parsing is
// the usecase's job; nothing upstream is assumed pre-parsed.
type CreateLoanInput struct {
	BorrowerName  string `json:"borrower_name"`
	BorrowerEmail string `json:"borrower_email"`
	LenderEmail   string `json:"lender_email"`
	Amount        string `json:"amount"`
	Rate          string `json:"interest_rate"`
	StartDate     string `json:"start_date"`
	EndDate       string `json:"end_date"`
	USDTRate      string `json:"usdt_rate"`
	CryptoTxRef   string `json:"crypto_tx_ref"`
}

// RecordPaymentInput is the draft-payment boundary format.
type RecordPaymentInput struct {
	Amount string `json:"amount"`
	Date   string `json:"date"`
	Kind   string `json:"kind"`
}

type PaymentDTO struct {
	PaymentID string    `json:"payment_id"`
	Amount    int64     `json:"amount"`
	Date      time.Time `json:"date"`
	Kind      string    `json:"kind"`
}

type LoanDTO struct {
	LoanID          string           `json:"loan_id"`
	BorrowerName    string           `json:"borrower_name"`
	BorrowerEmail   string           `json:"borrower_email"`
	LenderEmail     string           `json:"lender_email"`
	Principal       int64            `json:"principal"`
	Rate            float64          `json:"interest_rate"`
	InterestAmount  int64            `json:"interest_amount"`
	StartDate       time.Time        `json:"start_date"`
	EndDate         time.Time        `json:"end_date"`
	Status          string           `json:"status"`
	MonthlyPayment  int64            `json:"monthly_payment,omitempty"`
	USDTAmount      *decimal.Decimal `json:"usdt_amount,omitempty"`
	USDTRate        *decimal.Decimal `json:"usdt_rate,omitempty"`
	CryptoTxRef     string           `json:"crypto_tx_ref,omitempty"`
	TotalPaid       int64            `json:"total_paid"`
	RemainingAmount int64            `json:"remaining_amount"`
	Payments        []PaymentDTO     `json:"payments"`
	CreatedAt       time.Time        `json:"created_at"`
}

// StatsDTO mirrors the ledger dashboard: total principal out, number of
// active loans, number of loans overall.
type StatsDTO struct {
	TotalPrincipal int64 `json:"total_principal"`
	ActiveLoans    int   `json:"active_loans"`
	TotalLoans     int   `json:"total_loans"`
}

func toDTO(l *domain.Loan) *LoanDTO {
	dto := &LoanDTO{
		LoanID:          l.LoanID,
		BorrowerName:    l.BorrowerName,
		BorrowerEmail:   l.BorrowerEmail,
		LenderEmail:     l.LenderEmail,
		Principal:       l.Principal,
		Rate:            l.Rate,
		InterestAmount:  l.InterestAmount,
		StartDate:       l.StartDate,
		EndDate:         l.EndDate,
		Status:          string(l.Status),
		MonthlyPayment:  l.MonthlyPayment,
		USDTAmount:      l.USDTAmount,
		USDTRate:        l.USDTRate,
		CryptoTxRef:     l.CryptoTxRef,
		TotalPaid:       l.TotalPaid,
		RemainingAmount: l.RemainingAmount,
		Payments:        make([]PaymentDTO, 0, len(l.Payments)),
		CreatedAt:       l.CreatedAt,
	}
	for _, p := range l.Payments {
		dto.Payments = append(dto.Payments, PaymentDTO{
			PaymentID: p.PaymentID,
			Amount:    p.Amount,
			Date:      p.Date,
			Kind:      string(p.Kind),
		})
	}
	return dto
}
