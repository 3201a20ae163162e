package validation

import (
	"testing"

	"travel-agency-be/internal/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validApplication() *dto.CreateApplicationRequest {
	return &dto.CreateApplicationRequest{
		FullName: "Aziza Karimova",
		Phone:    "+998 90 123-45-67",
		Adults:   2,
	}
}

func TestValidateApplication(t *testing.T) {
	v := NewLeadValidator()

	t.Run("accepts a minimal valid request", func(t *testing.T) {
		assert.NoError(t, v.ValidateApplication(validApplication()))
	})

	tests := []struct {
		name      string
		mutate    func(req *dto.CreateApplicationRequest)
		wantField string
	}{
		{
			name:      "missing name",
			mutate:    func(req *dto.CreateApplicationRequest) { req.FullName = "" },
			wantField: "full_name",
		},
		{
			name:      "phone too short",
			mutate:    func(req *dto.CreateApplicationRequest) { req.Phone = "123" },
			wantField: "phone",
		},
		{
			name:      "phone with letters",
			mutate:    func(req *dto.CreateApplicationRequest) { req.Phone = "call me maybe" },
			wantField: "phone",
		},
		{
			name:      "malformed email",
			mutate:    func(req *dto.CreateApplicationRequest) { req.Email = "not-an-email" },
			wantField: "email",
		},
		{
			name: "budget range inverted",
			mutate: func(req *dto.CreateApplicationRequest) {
				from, to := 5000.0, 1000.0
				req.BudgetFrom = &from
				req.BudgetTo = &to
			},
			wantField: "budget_to",
		},
		{
			name:      "bad date format",
			mutate:    func(req *dto.CreateApplicationRequest) { req.DesiredStartDate = "15.07.2026" },
			wantField: "desired_start_date",
		},
		{
			name:      "unknown preferred contact",
			mutate:    func(req *dto.CreateApplicationRequest) { req.PreferredContact = "fax" },
			wantField: "preferred_contact",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validApplication()
			tt.mutate(req)

			err := v.ValidateApplication(req)
			require.Error(t, err)

			verr, ok := AsValidationError(err)
			require.True(t, ok, "expected a validation error, got %T", err)
			assert.Contains(t, verr.Fields, tt.wantField)
		})
	}

	t.Run("equal budget bounds are allowed", func(t *testing.T) {
		req := validApplication()
		amount := 1500.0
		req.BudgetFrom = &amount
		req.BudgetTo = &amount
		assert.NoError(t, v.ValidateApplication(req))
	})
}

func TestValidateContactMessage(t *testing.T) {
	v := NewLeadValidator()

	valid := func() *dto.CreateContactMessageRequest {
		return &dto.CreateContactMessageRequest{
			FullName: "John Smith",
			Email:    "john@example.com",
			Subject:  "booking",
			Message:  "Do you run winter departures?",
		}
	}

	t.Run("accepts a valid message", func(t *testing.T) {
		assert.NoError(t, v.ValidateContactMessage(valid()))
	})

	t.Run("requires email", func(t *testing.T) {
		req := valid()
		req.Email = ""
		err := v.ValidateContactMessage(req)
		require.Error(t, err)
		verr, ok := AsValidationError(err)
		require.True(t, ok)
		assert.Contains(t, verr.Fields, "email")
	})

	t.Run("rejects unknown subject", func(t *testing.T) {
		req := valid()
		req.Subject = "complaint"
		err := v.ValidateContactMessage(req)
		require.Error(t, err)
		verr, ok := AsValidationError(err)
		require.True(t, ok)
		assert.Contains(t, verr.Fields, "subject")
	})

	t.Run("optional phone is still checked when present", func(t *testing.T) {
		req := valid()
		req.Phone = "abc"
		err := v.ValidateContactMessage(req)
		require.Error(t, err)
		verr, ok := AsValidationError(err)
		require.True(t, ok)
		assert.Contains(t, verr.Fields, "phone")
	})
}
