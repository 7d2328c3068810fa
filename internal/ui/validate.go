package ui

import (
	"errors"

	"github.com/go-playground/validator/v10"

	"github.com/gags88/reminder-pwa/internal/models"
)

var validate = validator.New()

// reminderForm is the submit-time contract: both fields present, date a
// parseable calendar date. Nothing reaches the store until this passes.
type reminderForm struct {
	Title string `validate:"required"`
	Date  string `validate:"required,datetime=2006-01-02"`
}

// validateForm returns field name -> message for every violation, nil when
// the form is valid.
func validateForm(title, date string) map[string]string {
	err := validate.Struct(reminderForm{Title: title, Date: date})
	if err == nil {
		return nil
	}

	msgs := make(map[string]string)
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		msgs["title"] = "Invalid input"
		return msgs
	}

	for _, fe := range verrs {
		switch fe.Field() {
		case "Title":
			msgs["title"] = "Title is required"
		case "Date":
			if fe.Tag() == "required" {
				msgs["date"] = "Date is required"
			} else {
				msgs["date"] = "Date must be " + models.DateLayout
			}
		}
	}

	return msgs
}
