package validation

import (
	"github.com/go-playground/validator/v10"
)

// Membership sets for the tracker's enum fields. Empty is accepted by every
// validator here; pair with "required" where a value must be present.
var (
	statusValues = map[string]bool{
		"Applied":   true,
		"Interview": true,
		"Offer":     true,
		"Rejected":  true,
		"Ghosted":   true,
	}

	stageValues = map[string]bool{
		"N/A":           true,
		"Screening":     true,
		"Technical":     true,
		"Final":         true,
		"Offer Pending": true,
	}
)

// RegisterValidators registers custom validators to the validator instance
func RegisterValidators(v *validator.Validate) {
	_ = v.RegisterValidation("app_status", ApplicationStatus)
	_ = v.RegisterValidation("interview_stage", InterviewStage)
	_ = v.RegisterValidation("yes_no", YesNo)
}

// ApplicationStatus validates that a string is a selectable application status
func ApplicationStatus(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	if val == "" {
		return true
	}
	return statusValues[val]
}

// InterviewStage validates that a string is a selectable interview stage
func InterviewStage(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	if val == "" {
		return true
	}
	return stageValues[val]
}

// YesNo validates the form's Yes/No selector fields
func YesNo(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	return val == "" || val == "Yes" || val == "No"
}
