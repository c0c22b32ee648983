package impl

import (
	"strings"

	domainerrors "acai/internal/domain/errors"
	"acai/internal/errors"

	"github.com/go-playground/validator/v10"
)

func newValidator() *validator.Validate {
	return validator.New(validator.WithRequiredStructEnabled())
}

// validationFailed converts validator errors into the VALIDATION_FAILED app error.
func validationFailed(err error) error {
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
