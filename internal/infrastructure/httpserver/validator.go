package httpserver

import (
	"net/http"

	"github.com/devshowcase/api/internal/utils"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// RequestValidator adapts go-playground/validator to echo.Validator.
type RequestValidator struct {
	validate *validator.Validate
}

func NewValidator() *RequestValidator {
	v := validator.New()

	// Struct tags cover shape; these cover the password and username policies.
	_ = v.RegisterValidation("password_strength", func(fl validator.FieldLevel) bool {
		return utils.ValidatePasswordStrength(fl.Field().String()) == nil
	})
	_ = v.RegisterValidation("username_charset", func(fl validator.FieldLevel) bool {
		return utils.ValidateUsername(fl.Field().String()) == nil
	})

	return &RequestValidator{validate: v}
}

func (v *RequestValidator) Validate(i interface{}) error {
	if err := v.validate.Struct(i); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return nil
}
