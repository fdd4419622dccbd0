// Package preview implements the loan derivation calculator: a best-effort,
// pure recomputation of the derived fields from a draft form. It is safe to
// call on every input change; incomplete or malformed fields leave the
// corresponding outputs unset instead of raising errors.
package preview

import (
	"time"

	"github.com/shopspring/decimal"

	"lendledger/internal/domain/loan"
	"lendledger/pkg/money"
)

type Usecase struct{}

func NewUsecase() *Usecase { return &Usecase{} }

// Draft carries the raw form fields. Amounts may be digit-grouped
// ("5 000 000"), dates are YYYY-MM-DD, rates are decimal strings.
type Draft struct {
	Amount    string `json:"amount"`
	Rate      string `json:"interest_rate"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	USDTRate  string `json:"usdt_rate"`
}

// Preview holds the derived fields. Nil means the field is not computable
// from the current draft; the caller renders those as blank.
type Preview struct {
	InterestAmount *int64           `json:"interest_amount,omitempty"`
	MonthlyPayment *int64           `json:"monthly_payment,omitempty"`
	Months         *int             `json:"months,omitempty"`
	USDTAmount     *decimal.Decimal `json:"usdt_amount,omitempty"`
}

// Derive recomputes every derived field from the draft. Pure and
// deterministic; never returns an error.
func (u *Usecase) Derive(d Draft) Preview {
	var out Preview

	principal, errAmount := money.Parse(d.Amount)
	rate, errRate := money.ParseRate(d.Rate)
	if errAmount == nil && errRate == nil {
		interest := loan.Interest(principal, rate)
		out.InterestAmount = &interest

		start, errStart := time.Parse("2006-01-02", d.StartDate)
		end, errEnd := time.Parse("2006-01-02", d.EndDate)
		if errStart == nil && errEnd == nil {
			months := loan.MonthsBetween(start, end)
			out.Months = &months
			if months > 0 {
				monthly := loan.Monthly(principal, interest, months)
				out.MonthlyPayment = &monthly
			}
		}
	}

	// The crypto equivalent needs only the principal and a rate; it is
	// cleared (stays nil) as soon as the rate is removed.
	if errAmount == nil && d.USDTRate != "" {
		if usdtRate, err := money.ParseDecimal(d.USDTRate); err == nil {
			usdt := loan.USDTEquivalent(principal, usdtRate)
			out.USDTAmount = &usdt
		}
	}

	return out
}
