package api

import (
	"net/http"

	"tinysteps/internal/forms"
	"tinysteps/pkg/models"
	"tinysteps/pkg/repository"
)

type RequestHandler struct {
	goalRepo    repository.GoalRepo
	requestRepo repository.RequestRepo
	validator   *forms.Validator
	renderer    *Renderer
}

func NewRequestHandler(gr repository.GoalRepo, rr repository.RequestRepo, v *forms.Validator, re *Renderer) *RequestHandler {
	return &RequestHandler{goalRepo: gr, requestRepo: rr, validator: v, renderer: re}
}

// Show renders the empty request form.
func (h *RequestHandler) Show(w http.ResponseWriter, r *http.Request) {
	goals, err := h.goalRepo.ListGoals(r.Context())
	if err != nil {
		h.renderer.ServerError(w, "list goals", err)
		return
	}

	h.renderer.Render(w, http.StatusOK, "request.html", map[string]any{
		"Title":       "Find me a teacher",
		"Goals":       goals,
		"TimeBudgets": models.TimeBudgets,
		"Form":        &forms.RequestForm{TimeBudget: models.TimeBudgets[0]},
		"Errors":      forms.FieldErrors{},
	})
}

// Submit validates and persists a new lead. An unknown goal alias means the
// fixed-choice field was tampered with, so it 404s before field validation.
func (h *RequestHandler) Submit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	form := forms.ParseRequestForm(r.PostForm)

	goal, err := h.goalRepo.GetGoalByAlias(r.Context(), form.Goal)
	if err != nil {
		h.renderer.ServerError(w, "get goal", err)
		return
	}
	if goal == nil {
		h.renderer.NotFound(w)
		return
	}

	if errs := h.validator.Validate(form); errs != nil {
		goals, err := h.goalRepo.ListGoals(r.Context())
		if err != nil {
			h.renderer.ServerError(w, "list goals", err)
			return
		}
		h.renderer.Render(w, http.StatusOK, "request.html", map[string]any{
			"Title":       "Find me a teacher",
			"Goals":       goals,
			"TimeBudgets": models.TimeBudgets,
			"Form":        form,
			"Errors":      errs,
		})
		return
	}

	req := &models.Request{
		GoalID:      goal.ID,
		TimeBudget:  form.TimeBudget,
		ClientName:  form.ClientName,
		ClientPhone: form.ClientPhone,
	}
	if _, err := h.requestRepo.CreateRequest(r.Context(), req); err != nil {
		h.renderer.ServerError(w, "store request", err)
		return
	}

	h.renderer.Render(w, http.StatusOK, "request_done.html", map[string]any{
		"Title":   "Request received",
		"Request": req,
		"Goal":    goal,
	})
}
