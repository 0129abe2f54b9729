package api

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"tinysteps/pkg/repository"
)

const homeTeacherCount = 6

type PagesHandler struct {
	teacherRepo repository.TeacherRepo
	goalRepo    repository.GoalRepo
	weekdayRepo repository.WeekdayRepo
	renderer    *Renderer
}

func NewPagesHandler(tr repository.TeacherRepo, gr repository.GoalRepo, wr repository.WeekdayRepo, re *Renderer) *PagesHandler {
	return &PagesHandler{teacherRepo: tr, goalRepo: gr, weekdayRepo: wr, renderer: re}
}

// Home shows up to 6 randomly sampled teachers plus the goal menu. Fewer
// teachers appear when the catalog is smaller than the sample size.
func (h *PagesHandler) Home(w http.ResponseWriter, r *http.Request) {
	teachers, err := h.teacherRepo.RandomTeachers(r.Context(), homeTeacherCount)
	if err != nil {
		h.renderer.ServerError(w, "sample teachers", err)
		return
	}

	goals, err := h.goalRepo.ListGoals(r.Context())
	if err != nil {
		h.renderer.ServerError(w, "list goals", err)
		return
	}

	h.renderer.Render(w, http.StatusOK, "index.html", map[string]any{
		"Title":    "Tinysteps — find your tutor",
		"Goals":    goals,
		"Teachers": teachers,
	})
}

// AllTeachers lists the whole catalog ordered by name.
func (h *PagesHandler) AllTeachers(w http.ResponseWriter, r *http.Request) {
	teachers, err := h.teacherRepo.ListTeachers(r.Context())
	if err != nil {
		h.renderer.ServerError(w, "list teachers", err)
		return
	}

	goals, err := h.goalRepo.ListGoals(r.Context())
	if err != nil {
		h.renderer.ServerError(w, "list goals", err)
		return
	}

	h.renderer.Render(w, http.StatusOK, "index.html", map[string]any{
		"Title":    "All teachers",
		"Goals":    goals,
		"Teachers": teachers,
	})
}

// GoalDetail lists teachers whose goal set contains the aliased goal.
func (h *PagesHandler) GoalDetail(w http.ResponseWriter, r *http.Request) {
	alias := mux.Vars(r)["alias"]

	goal, err := h.goalRepo.GetGoalByAlias(r.Context(), alias)
	if err != nil {
		h.renderer.ServerError(w, "get goal", err)
		return
	}
	if goal == nil {
		h.renderer.NotFound(w)
		return
	}

	teachers, err := h.teacherRepo.ListTeachersByGoal(r.Context(), goal.ID)
	if err != nil {
		h.renderer.ServerError(w, "list teachers by goal", err)
		return
	}

	h.renderer.Render(w, http.StatusOK, "goal.html", map[string]any{
		"Title":    goal.Name,
		"Goal":     goal,
		"Teachers": teachers,
	})
}

// TeacherProfile shows a teacher page with the weekday availability grid.
func (h *PagesHandler) TeacherProfile(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
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

	days, err := h.weekdayRepo.ListWeekdays(r.Context())
	if err != nil {
		h.renderer.ServerError(w, "list weekdays", err)
		return
	}

	h.renderer.Render(w, http.StatusOK, "profile.html", map[string]any{
		"Title":   teacher.Name,
		"Teacher": teacher,
		"Days":    days,
	})
}
