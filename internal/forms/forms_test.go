package forms_test

import (
	"net/url"
	"strings"
	"testing"

	"go.uber.org/goleak"

	"tinysteps/internal/forms"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func validRequestForm() *forms.RequestForm {
	return &forms.RequestForm{
		Goal:        "travel",
		TimeBudget:  "1-2",
		ClientName:  "Anna",
		ClientPhone: "123456789012",
	}
}

func validBookingForm() *forms.BookingForm {
	return &forms.BookingForm{
		ClientWeekday: "mon",
		ClientTime:    "09:00",
		ClientTeacher: "1",
		ClientName:    "Anna",
		ClientPhone:   "123456789012",
	}
}

func TestRequestFormValidation(t *testing.T) {
	v := forms.NewValidator()

	if errs := v.Validate(validRequestForm()); errs != nil {
		t.Fatalf("expected valid form, got %v", errs)
	}

	f := validRequestForm()
	f.ClientName = ""
	errs := v.Validate(f)
	if errs == nil {
		t.Fatalf("expected error for empty name")
	}
	if _, ok := errs["clientName"]; !ok {
		t.Fatalf("expected error keyed by form field name, got %v", errs)
	}

	f = validRequestForm()
	f.ClientName = strings.Repeat("a", 51)
	if errs := v.Validate(f); errs["clientName"] == "" {
		t.Fatalf("expected max-length error for 51-char name, got %v", errs)
	}

	f = validRequestForm()
	f.ClientPhone = strings.Repeat("1", 13)
	if errs := v.Validate(f); errs["clientPhone"] == "" {
		t.Fatalf("expected max-length error for 13-char phone, got %v", errs)
	}

	f = validRequestForm()
	f.TimeBudget = "100"
	if errs := v.Validate(f); errs["time"] == "" {
		t.Fatalf("expected oneof error for bad time budget, got %v", errs)
	}
}

func TestBookingFormValidation(t *testing.T) {
	v := forms.NewValidator()

	if errs := v.Validate(validBookingForm()); errs != nil {
		t.Fatalf("expected valid form, got %v", errs)
	}

	f := validBookingForm()
	f.ClientTime = "123456"
	if errs := v.Validate(f); errs["clientTime"] == "" {
		t.Fatalf("expected max-length error for 6-char time, got %v", errs)
	}

	f = validBookingForm()
	f.ClientName = ""
	f.ClientPhone = ""
	errs := v.Validate(f)
	if len(errs) != 2 {
		t.Fatalf("expected 2 field errors got %v", errs)
	}
}

func TestParseFormsTrimsValues(t *testing.T) {
	req := forms.ParseRequestForm(url.Values{
		"goal":        {" travel "},
		"time":        {"1-2"},
		"clientName":  {" Anna "},
		"clientPhone": {" 123 "},
	})
	if req.Goal != "travel" || req.ClientName != "Anna" || req.ClientPhone != "123" {
		t.Fatalf("values not trimmed: %#v", req)
	}

	b := forms.ParseBookingForm(url.Values{
		"clientWeekday": {"mon"},
		"clientTime":    {"09:00"},
		"clientTeacher": {" 7 "},
		"clientName":    {"Anna"},
		"clientPhone":   {"123"},
	})
	if b.ClientTeacher != "7" || b.ClientTime != "09:00" {
		t.Fatalf("values not parsed: %#v", b)
	}
}
