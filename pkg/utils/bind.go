package utils

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/ashkanv/shopdesk/pkg/validate"
)

var validation = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Optional fields: an empty value passes, the dedicated checks run on
	// anything else.
	_ = v.RegisterValidation("iban", func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		return s == "" || validate.IsIBAN(s)
	})
	_ = v.RegisterValidation("cardnumber", func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		return s == "" || validate.IsCardNumber(s)
	})
	_ = v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		return s == "" || validate.IsPhone(s)
	})
	return v
}

// DecodeAndValidate parses a JSON request body and runs struct validation
// over it. The caller decides the error response.
func DecodeAndValidate[T any](r *http.Request) (*T, error) {
	var input T
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		return nil, err
	}
	if err := validation.Struct(&input); err != nil {
		return nil, err
	}
	return &input, nil
}
