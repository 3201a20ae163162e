package validation

import (
	"reflect"
	"regexp"
	"strings"

	"travel-agency-be/internal/dto"

	"github.com/go-playground/validator/v10"
)

// phonePattern mirrors the intake form contract: optional leading "+", then at
// least six characters drawn from digits, hyphens, spaces and parentheses.
var phonePattern = regexp.MustCompile(`^\+?[0-9\-\s\(\)]{6,}$`)

type LeadValidator struct {
	validate *validator.Validate
}

func NewLeadValidator() *LeadValidator {
	v := validator.New()

	// Report errors under the json field name, not the Go field name
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	_ = v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		return phonePattern.MatchString(fl.Field().String())
	})

	return &LeadValidator{validate: v}
}

// ValidateApplication checks an inbound tour application. The request must
// already be normalized (defaults applied) by the caller.
func (lv *LeadValidator) ValidateApplication(req *dto.CreateApplicationRequest) error {
	verr := NewValidationError()
	lv.collect(req, verr)

	// Budget range is a cross-field rule; the error is scoped to budget_to
	// to match where the submitter can fix it.
	if req.BudgetFrom != nil && req.BudgetTo != nil && *req.BudgetFrom > *req.BudgetTo {
		verr.Add("budget_to", "must be greater than or equal to budget_from")
	}

	return verr.Err()
}

// ValidateContactMessage checks an inbound contact-page submission.
func (lv *LeadValidator) ValidateContactMessage(req *dto.CreateContactMessageRequest) error {
	verr := NewValidationError()
	lv.collect(req, verr)
	return verr.Err()
}

func (lv *LeadValidator) collect(req interface{}, verr *ValidationError) {
	err := lv.validate.Struct(req)
	if err == nil {
		return
	}
	invalid, ok := err.(validator.ValidationErrors)
	if !ok {
		verr.Add("_", err.Error())
		return
	}
	for _, fe := range invalid {
		verr.Add(fe.Field(), messageFor(fe))
	}
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "this field is required"
	case "email":
		return "must be a valid email address"
	case "phone":
		return "must be a valid phone number"
	case "min":
		return "must be at least " + fe.Param()
	case "max":
		return "must be at most " + fe.Param() + " characters"
	case "len":
		return "must be exactly " + fe.Param() + " characters"
	case "oneof":
		return "must be one of: " + fe.Param()
	case "datetime":
		return "must be a date in format " + fe.Param()
	default:
		return "is invalid"
	}
}
