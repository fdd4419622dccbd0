package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"lendledger/internal/usecase/loan"
)

type LoanHandler struct{ uc *loan.Usecase }

func NewLoanHandler(uc *loan.Usecase) *LoanHandler { return &LoanHandler{uc: uc} }

type createLoanReq struct {
	BorrowerName  string `json:"borrower_name"  validate:"required"`
	BorrowerEmail string `json:"borrower_email" validate:"required,email"`
	LenderEmail   string `json:"lender_email"   validate:"required,email"`
	Amount        string `json:"amount"         validate:"required,grouped"`
	Rate          string `json:"interest_rate"  validate:"required,rate"`
	StartDate     string `json:"start_date"     validate:"required,datetime=2006-01-02"`
	EndDate       string `json:"end_date"       validate:"required,datetime=2006-01-02"`
	USDTRate      string `json:"usdt_rate"      validate:"omitempty,rate"`
	CryptoTxRef   string `json:"crypto_tx_ref"`
}

func (h *LoanHandler) CreateLoan(c echo.Context) error {
	var req createLoanReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	dto, err := h.uc.Create(c.Request().Context(), loan.CreateLoanInput{
		BorrowerName:  req.BorrowerName,
		BorrowerEmail: req.BorrowerEmail,
		LenderEmail:   req.LenderEmail,
		Amount:        req.Amount,
		Rate:          req.Rate,
		StartDate:     req.StartDate,
		EndDate:       req.EndDate,
		USDTRate:      req.USDTRate,
		CryptoTxRef:   req.CryptoTxRef,
	})
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *LoanHandler) GetLoan(c echo.Context) error {
	dto, err := h.uc.Get(c.Request().Context(), c.Param("loan_id"))
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *LoanHandler) ListLoans(c echo.Context) error {
	dtos, err := h.uc.List(c.Request().Context(), c.QueryParam("borrower"))
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(http.StatusOK, dtos)
}

func (h *LoanHandler) Stats(c echo.Context) error {
	s, err := h.uc.Stats(c.Request().Context())
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(http.StatusOK, s)
}

// MarkOverdue is the external status hook; the engine never flips a loan to
// overdue on its own.
func (h *LoanHandler) MarkOverdue(c echo.Context) error {
	dto, err := h.uc.MarkOverdue(c.Request().Context(), c.Param("loan_id"))
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *LoanHandler) Remind(c echo.Context) error {
	if err := h.uc.Remind(c.Request().Context(), c.Param("loan_id")); err != nil {
		return domainError(c, err)
	}
	return c.JSON(http.StatusAccepted, map[string]string{"status": "reminder queued"})
}
