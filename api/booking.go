package api

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"tinysteps/internal/forms"
	"tinysteps/pkg/models"
	"tinysteps/pkg/repository"
)

// maxTimeLen bounds the HH:MM slot string carried in the URL and the hidden
// form field.
const maxTimeLen = 5

type BookingHandler struct {
	teacherRepo repository.TeacherRepo
	weekdayRepo repository.WeekdayRepo
	bookingRepo repository.BookingRepo
	validator   *forms.Validator
	renderer    *Renderer
}

func NewBookingHandler(tr repository.TeacherRepo, wr repository.WeekdayRepo, br repository.BookingRepo, v *forms.Validator, re *Renderer) *BookingHandler {
	return &BookingHandler{teacherRepo: tr, weekdayRepo: wr, bookingRepo: br, validator: v, renderer: re}
}

// Show renders the booking form pre-filled with the chosen slot. The slot
// comes straight from the URL, so it gets the same checks the submit path
// applies to hidden fields.
func (h *BookingHandler) Show(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	id, err := strconv.ParseInt(vars["id"], 10, 64)
	if err != nil || id <= 0 {
		h.renderer.NotFound(w)
		return
	}

	teacher, err := h.teacherRepo.GetTeacher(r.Context(), id)
	if err != nil {
		h.renderer.ServerError(w, "get teacher", err)
		return
	}
	if teacher == nil {
		h.renderer.NotFound(w)
		return
	}

	day, err := h.weekdayRepo.GetWeekdayByAlias(r.Context(), vars["day"])
	if err != nil {
		h.renderer.ServerError(w, "get weekday", err)
		return
	}
	if day == nil || len(vars["time"]) > maxTimeLen {
		h.renderer.NotFound(w)
		return
	}

	h.renderBookingForm(w, http.StatusOK, teacher, day, vars["time"], &forms.BookingForm{}, forms.FieldErrors{})
}

// Submit re-validates every hidden field against the database before
// trusting it: the teacher id, the weekday alias and the time length. Any
// mismatch is tampering and 404s with nothing written. Only then do the
// visible name/phone rules run.
func (h *BookingHandler) Submit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	form := forms.ParseBookingForm(r.PostForm)

	teacherID, err := strconv.ParseInt(form.ClientTeacher, 10, 64)
	if err != nil || teacherID <= 0 {
		h.renderer.NotFound(w)
		return
	}
	teacher, err := h.teacherRepo.GetTeacher(r.Context(), teacherID)
	if err != nil {
		h.renderer.ServerError(w, "get teacher", err)
		return
	}
	if teacher == nil {
		h.renderer.NotFound(w)
		return
	}

	day, err := h.weekdayRepo.GetWeekdayByAlias(r.Context(), form.ClientWeekday)
	if err != nil {
		h.renderer.ServerError(w, "get weekday", err)
		return
	}
	if day == nil || len(form.ClientTime) > maxTimeLen {
		h.renderer.NotFound(w)
		return
	}

	if errs := h.validator.Validate(form); errs != nil {
		// keep the chosen slot so the client does not lose it
		h.renderBookingForm(w, http.StatusOK, teacher, day, form.ClientTime, form, errs)
		return
	}

	booking := &models.Booking{
		TeacherID:   teacher.ID,
		WeekdayID:   day.ID,
		Time:        form.ClientTime,
		ClientName:  form.ClientName,
		ClientPhone: form.ClientPhone,
	}
	if _, err := h.bookingRepo.CreateBooking(r.Context(), booking); err != nil {
		h.renderer.ServerError(w, "store booking", err)
		return
	}

	h.renderer.Render(w, http.StatusOK, "booking_done.html", map[string]any{
		"Title":   "Booking confirmed",
		"Booking": booking,
		"Teacher": teacher,
		"Day":     day,
	})
}

func (h *BookingHandler) renderBookingForm(w http.ResponseWriter, status int, teacher *models.Teacher, day *models.Weekday, slot string, form *forms.BookingForm, errs forms.FieldErrors) {
	h.renderer.Render(w, status, "booking.html", map[string]any{
		"Title":   "Book a trial lesson",
		"Teacher": teacher,
		"Day":     day,
		"Time":    slot,
		"Form":    form,
		"Errors":  errs,
	})
}
