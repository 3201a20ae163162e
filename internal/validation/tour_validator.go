package validation

import "travel-agency-be/internal/entity"

// ValidateTourPricing enforces the discount business rules before a tour is
// stored: percent stays within 0-100 and the two discount modes are mutually
// exclusive. Storage does not guard this; the validator is the only gate.
func ValidateTourPricing(tour *entity.Tour) error {
	verr := NewValidationError()

	if tour.DiscountPercent != nil {
		if *tour.DiscountPercent < 0 || *tour.DiscountPercent > 100 {
			verr.Add("discount_percent", "must be between 0 and 100")
		}
	}
	if tour.DiscountAmount != nil && *tour.DiscountAmount < 0 {
		verr.Add("discount_amount", "must not be negative")
	}
	if tour.DiscountPercent != nil && *tour.DiscountPercent != 0 &&
		tour.DiscountAmount != nil && *tour.DiscountAmount != 0 {
		verr.Add("discount_amount", "set either a percent or an amount discount, not both")
	}

	return verr.Err()
}
