package validation

import (
	"testing"

	"travel-agency-be/internal/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateTourPricing(t *testing.T) {
	f := func(v float64) *float64 { return &v }

	tests := []struct {
		name      string
		percent   *float64
		amount    *float64
		wantField string
	}{
		{name: "no discount", wantField: ""},
		{name: "percent only", percent: f(15), wantField: ""},
		{name: "amount only", amount: f(100), wantField: ""},
		{name: "percent above 100", percent: f(120), wantField: "discount_percent"},
		{name: "negative percent", percent: f(-5), wantField: "discount_percent"},
		{name: "negative amount", amount: f(-10), wantField: "discount_amount"},
		{name: "both modes set", percent: f(10), amount: f(50), wantField: "discount_amount"},
		{name: "zero percent with amount", percent: f(0), amount: f(50), wantField: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tour := &entity.Tour{DiscountPercent: tt.percent, DiscountAmount: tt.amount}
			err := ValidateTourPricing(tour)
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Contains(t, verr.Fields, tt.wantField)
		})
	}
}
