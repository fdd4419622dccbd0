package loan

import (
	"math"
	"time"

	"github.com/shopspring/decimal"
)

// Derivation rules for the ledger. Everything here is pure: same inputs,
// same outputs, no clock and no stored state.

// Interest returns round(principal * rate / 100).
func Interest(principal int64, rate float64) int64 {
	return int64(math.Round(float64(principal) * rate / 100))
}

// MonthsBetween counts whole calendar months from start to end; the day of
// month is ignored. May be zero or negative when end does not follow start.
func MonthsBetween(start, end time.Time) int {
	return (end.Year()-start.Year())*12 + int(end.Month()) - int(start.Month())
}

// Monthly returns round((principal + interest) / months), or 0 when the
// month count is not positive (same-month or inverted ranges are treated as
// "not yet computable", not as errors).
func Monthly(principal, interest int64, months int) int64 {
	if months <= 0 {
		return 0
	}
	return int64(math.Round(float64(principal+interest) / float64(months)))
}

// USDTEquivalent converts a principal to its crypto equivalent at the given
// exchange rate, rounded to 2 decimal places.
func USDTEquivalent(principal int64, rate decimal.Decimal) decimal.Decimal {
	return decimal.NewFromInt(principal).DivRound(rate, 2)
}

// Recalculate rebuilds the derived accumulators from the payment history.
// TotalPaid is a full fold over the sequence rather than an incremental add,
// so out-of-band edits to the history stay tolerated. RemainingAmount keeps
// its sign on overpayment. The completed transition is one-way: once a loan
// settles it never reverts, whatever later corrections do to the balance.
func (l *Loan) Recalculate() {
	var paid int64
	for _, p := range l.Payments {
		paid += p.Amount
	}
	l.TotalPaid = paid
	l.RemainingAmount = l.Principal + l.InterestAmount - paid
	if l.RemainingAmount <= 0 {
		l.Status = StatusCompleted
	}
}

// ApplyPayment appends one payment and recomputes the accumulators.
func (l *Loan) ApplyPayment(p Payment) {
	l.Payments = append(l.Payments, p)
	l.Recalculate()
}
