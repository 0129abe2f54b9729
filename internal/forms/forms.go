// Package forms defines the two submission forms and their server-side
// validation rules. Hidden-field tamper checks (does the teacher exist, is
// the weekday alias real) are handler concerns and run before these rules.
package forms

import (
	"fmt"
	"net/url"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// RequestForm is the "find me a teacher" lead form.
type RequestForm struct {
	Goal        string `form:"goal" validate:"required"`
	TimeBudget  string `form:"time" validate:"required,oneof=1-2 3-5 5-7 7-10"`
	ClientName  string `form:"clientName" validate:"required,max=50"`
	ClientPhone string `form:"clientPhone" validate:"required,max=12"`
}

// BookingForm is the trial-lesson form. Weekday, time and teacher travel as
// hidden fields and are re-validated against the database on submit.
type BookingForm struct {
	ClientWeekday string `form:"clientWeekday" validate:"required"`
	ClientTime    string `form:"clientTime" validate:"required,max=5"`
	ClientTeacher string `form:"clientTeacher" validate:"required"`
	ClientName    string `form:"clientName" validate:"required,max=50"`
	ClientPhone   string `form:"clientPhone" validate:"required,max=12"`
}

// FieldErrors maps a form field name to a message rendered next to it.
type FieldErrors map[string]string

func (fe FieldErrors) Error() string {
	if len(fe) == 0 {
		return ""
	}
	var messages []string
	for field, msg := range fe {
		messages = append(messages, fmt.Sprintf("%s: %s", field, msg))
	}
	return fmt.Sprintf("validation failed: %d error(s): [%s]", len(fe), strings.Join(messages, "; "))
}

type Validator struct {
	validate *validator.Validate
}

func NewValidator() *Validator {
	v := validator.New()

	// report errors under the form field name, not the Go field name
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := fld.Tag.Get("form")
		if name == "" {
			return fld.Name
		}
		return name
	})

	return &Validator{validate: v}
}

// Validate runs the struct rules and returns nil when the form is clean.
func (v *Validator) Validate(form any) FieldErrors {
	err := v.validate.Struct(form)
	if err == nil {
		return nil
	}

	out := FieldErrors{}
	for _, fe := range err.(validator.ValidationErrors) {
		out[fe.Field()] = message(fe)
	}

	return out
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "Please fill in this field"
	case "max":
		return fmt.Sprintf("Must be %s characters or fewer", fe.Param())
	case "oneof":
		return "Pick one of the offered options"
	default:
		return "Invalid value"
	}
}

// ParseRequestForm reads the request form fields from submitted values.
func ParseRequestForm(values url.Values) *RequestForm {
	return &RequestForm{
		Goal:        strings.TrimSpace(values.Get("goal")),
		TimeBudget:  strings.TrimSpace(values.Get("time")),
		ClientName:  strings.TrimSpace(values.Get("clientName")),
		ClientPhone: strings.TrimSpace(values.Get("clientPhone")),
	}
}

// ParseBookingForm reads the booking form fields from submitted values.
func ParseBookingForm(values url.Values) *BookingForm {
	return &BookingForm{
		ClientWeekday: strings.TrimSpace(values.Get("clientWeekday")),
		ClientTime:    strings.TrimSpace(values.Get("clientTime")),
		ClientTeacher: strings.TrimSpace(values.Get("clientTeacher")),
		ClientName:    strings.TrimSpace(values.Get("clientName")),
		ClientPhone:   strings.TrimSpace(values.Get("clientPhone")),
	}
}
