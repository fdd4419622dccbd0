package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"lendledger/internal/usecase/preview"
)

type PreviewHandler struct{ uc *preview.Usecase }

func NewPreviewHandler(uc *preview.Usecase) *PreviewHandler { return &PreviewHandler{uc: uc} }

// PreviewLoan recomputes the derived fields for a draft. Best-effort by
// contract: malformed or missing fields come back blank, never as an error,
// so the form can call this on every input change.
func (h *PreviewHandler) PreviewLoan(c echo.Context) error {
	var draft preview.Draft
	if err := c.Bind(&draft); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	return c.JSON(http.StatusOK, h.uc.Derive(draft))
}
