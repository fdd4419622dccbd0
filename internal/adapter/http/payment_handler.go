package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"lendledger/internal/usecase/loan"
)

type PaymentHandler struct{ uc *loan.Usecase }

func NewPaymentHandler(uc *loan.Usecase) *PaymentHandler { return &PaymentHandler{uc: uc} }

type recordPaymentReq struct {
	Amount string `json:"amount" validate:"required,grouped"`
	Date   string `json:"date"   validate:"required,datetime=2006-01-02"`
	Kind   string `json:"kind"   validate:"required,oneof=full partial"`
}

func (h *PaymentHandler) RecordPayment(c echo.Context) error {
	loanID := c.Param("loan_id")
	if loanID == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing loan_id path param"})
	}
	var req recordPaymentReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	dto, err := h.uc.RecordPayment(c.Request().Context(), loanID, loan.RecordPaymentInput{
		Amount: req.Amount,
		Date:   req.Date,
		Kind:   req.Kind,
	})
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *PaymentHandler) ListPayments(c echo.Context) error {
	payments, err := h.uc.Payments(c.Request().Context(), c.Param("loan_id"))
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(http.StatusOK, payments)
}
