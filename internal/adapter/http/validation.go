package http

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

// Reusable error payload
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}
type ErrorResponse struct {
	Error   string       `json:"error"`
	Details []FieldError `json:"details,omitempty"`
}

var (
	// plain digits, or digit-grouped thousands ("5 000 000", "5,000,000")
	reGrouped = regexp.MustCompile(`^\d+$|^\d{1,3}([ ,.']\d{3})+$`)
	// decimal percentage ("5", "3.5", "3,5")
	reRate = regexp.MustCompile(`^\d+([.,]\d+)?$`)
)

type CustomValidator struct{ v *validator.Validate }

func NewValidator() *CustomValidator {
	v := validator.New()

	// amount strings arrive digit-grouped from the form
	_ = v.RegisterValidation("grouped", func(fl validator.FieldLevel) bool {
		return reGrouped.MatchString(fl.Field().String())
	})
	// percentage / exchange-rate strings
	_ = v.RegisterValidation("rate", func(fl validator.FieldLevel) bool {
		return reRate.MatchString(fl.Field().String())
	})

	return &CustomValidator{v: v}
}

func (cv *CustomValidator) Validate(i any) error { return cv.v.Struct(i) }

// Map validator.ValidationErrors → []FieldError with readable messages.
func ToFieldErrors(err error) []FieldError {
	ve, ok := err.(validator.ValidationErrors)
	if !ok {
		return []FieldError{{Field: "_", Message: err.Error()}}
	}
	out := make([]FieldError, 0, len(ve))
	for _, e := range ve {
		field := e.Field()
		switch e.Tag() {
		case "required":
			out = append(out, FieldError{Field: field, Message: "is required"})
		case "grouped":
			out = append(out, FieldError{Field: field, Message: "must be a digit-grouped amount"})
		case "rate":
			out = append(out, FieldError{Field: field, Message: "must be a decimal rate"})
		case "email":
			out = append(out, FieldError{Field: field, Message: "must be a valid e-mail address"})
		case "datetime":
			out = append(out, FieldError{Field: field, Message: "must be a YYYY-MM-DD date"})
		case "oneof":
			out = append(out, FieldError{Field: field, Message: "must be one of: " + e.Param()})
		default:
			out = append(out, FieldError{Field: field, Message: e.Tag() + " validation failed"})
		}
	}
	return out
}
