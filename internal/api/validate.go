package api

import (
	"bytes"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// present: a raw JSON member that exists and is not null.
	_ = v.RegisterValidation("present", func(fl validator.FieldLevel) bool {
		raw := bytes.TrimSpace(fl.Field().Bytes())
		return len(raw) > 0 && !bytes.Equal(raw, []byte("null"))
	})
	return v
}
