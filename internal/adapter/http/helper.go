package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	domain "lendledger/internal/domain/loan"
)

// domainError maps ledger sentinel errors onto HTTP status codes.
func domainError(c echo.Context, err error) error {
	code := http.StatusBadRequest
	switch {
	case errors.Is(err, domain.ErrNotFound):
		code = http.StatusNotFound
	case errors.Is(err, domain.ErrLoanCompleted), errors.Is(err, domain.ErrDuplicateLoan):
		code = http.StatusConflict
	}
	return c.JSON(code, ErrorResponse{Error: err.Error()})
}

func containsFieldMsg(list []FieldError, field, substr string) bool {
	for _, e := range list {
		if e.Field == field && strings.Contains(e.Message, substr) {
			return true
		}
	}
	return false
}
