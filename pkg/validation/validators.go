package validation

import (
	"time"

	"github.com/go-playground/validator/v10"
)

// RegisterValidators registers custom validators to the validator instance
func RegisterValidators(v *validator.Validate) {
	_ = v.RegisterValidation("day_date", DayDate)
	_ = v.RegisterValidation("confirm_word", ConfirmWord)
}

// DayDate validates a day-precision date string (YYYY-MM-DD). Empty values
// pass; combine with required when the field is mandatory.
func DayDate(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	if val == "" {
		return true
	}
	_, err := time.Parse("2006-01-02", val)
	return err == nil
}

// ConfirmWord validates the status-toggle confirmation vocabulary.
func ConfirmWord(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "activate", "deactivate":
		return true
	}
	return false
}
