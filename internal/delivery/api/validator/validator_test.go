package validator

import (
	"testing"

	domainerrors "acai/internal/domain/errors"

	"github.com/stretchr/testify/assert"
)

type storeForm struct {
	Name  string `json:"name" validate:"required"`
	State string `json:"state" validate:"required,br_state"`
}

func TestCustomValidator(t *testing.T) {
	v := New()

	tests := []struct {
		name    string
		input   storeForm
		wantErr bool
		field   string
	}{
		{"valid", storeForm{Name: "Açaí Mania", State: "São Paulo"}, false, ""},
		{"missing name", storeForm{State: "Bahia"}, true, "Name (required)"},
		{"unknown state", storeForm{Name: "X", State: "California"}, true, "State (br_state)"},
		{"abbreviation is not a state", storeForm{Name: "X", State: "SP"}, true, "State (br_state)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(&tt.input)
			if !tt.wantErr {
				assert.NoError(t, err)

				return
			}
			assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
			assert.Contains(t, err.Error(), tt.field)
		})
	}
}

func TestCustomValidator_NotAStruct(t *testing.T) {
	err := New().Validate("plain")
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}
