package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"weather-query-api/internal/domain/apperror"
	"weather-query-api/internal/domain/model"
)

func TestValidate_CreateQueryDTO(t *testing.T) {
	v := New()

	tests := []struct {
		name string
		dto  model.CreateQueryDTO
		want string
	}{
		{"valid", model.CreateQueryDTO{Location: "Paris", StartDate: "2024-01-01", EndDate: "2024-01-02"}, ""},
		{"missing location", model.CreateQueryDTO{StartDate: "2024-01-01", EndDate: "2024-01-02"}, "location is required"},
		{"short location", model.CreateQueryDTO{Location: "P", StartDate: "2024-01-01", EndDate: "2024-01-02"}, "location must be at least 2 characters"},
		{"missing end date", model.CreateQueryDTO{Location: "Paris", StartDate: "2024-01-01"}, "end_date is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(tt.dto)
			if tt.want == "" {
				assert.NoError(t, err)
				return
			}
			assert.True(t, apperror.Is(err, apperror.KindValidation))
			assert.EqualError(t, err, tt.want)
		})
	}
}

func TestValidate_OtherRules(t *testing.T) {
	type payload struct {
		Email string `json:"email" validate:"email"`
	}

	err := New().Validate(payload{Email: "nope"})

	assert.EqualError(t, err, "email is invalid")
}
