// Package validator plugs go-playground/validator into echo.
package validator

import (
	"strings"

	"acai/internal/domain/entity"
	domainerrors "acai/internal/domain/errors"
	"acai/internal/errors"

	"github.com/go-playground/validator/v10"
)

// CustomValidator implements echo.Validator.
type CustomValidator struct {
	validate *validator.Validate
}

// New returns a validator with the marketplace tags registered:
//
//	br_state   one of the Brazilian state names
func New() *CustomValidator {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Registration only fails for an empty tag or nil func.
	_ = v.RegisterValidation("br_state", func(fl validator.FieldLevel) bool {
		return entity.IsBrazilianState(fl.Field().String())
	})

	return &CustomValidator{validate: v}
}

// Validate checks i and reports failures as VALIDATION_FAILED.
func (cv *CustomValidator) Validate(i any) error {
	err := cv.validate.Struct(i)
	if err == nil {
		return nil
	}

	fieldErrs, ok := errors.AsType[validator.ValidationErrors](err)
	if !ok {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	fields := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		fields = append(fields, fe.Field()+" ("+fe.Tag()+")")
	}

	return domainerrors.ErrValidationFailed.WithDetails("campos inválidos: " + strings.Join(fields, ", "))
}
