package api

import (
	"net/http"

	"github.com/gorilla/mux"

	"tinysteps/internal/db"
	"tinysteps/internal/forms"
	"tinysteps/internal/repository/sqlite"
)

func SetupRoutes(version, buildTime string, database *db.DB) (*mux.Router, error) {
	r := mux.NewRouter()

	// Middleware chain
	r.Use(LoggingMiddleware)
	r.Use(RecoveryMiddleware)

	// Repository
	repo := sqlite.New(database, logger)

	renderer, err := NewRenderer()
	if err != nil {
		return nil, err
	}
	validator := forms.NewValidator()

	// Create handlers
	systemHandler := &SystemHandler{}
	pagesHandler := NewPagesHandler(repo, repo, repo, renderer)
	requestHandler := NewRequestHandler(repo, repo, validator, renderer)
	bookingHandler := NewBookingHandler(repo, repo, repo, validator, renderer)

	// Pages
	r.HandleFunc("/", pagesHandler.Home).Methods("GET")
	r.HandleFunc("/all/", pagesHandler.AllTeachers).Methods("GET")
	r.HandleFunc("/goals/{alias}/", pagesHandler.GoalDetail).Methods("GET")
	r.HandleFunc("/profiles/{id}/", pagesHandler.TeacherProfile).Methods("GET")

	// Forms
	r.HandleFunc("/request/", requestHandler.Show).Methods("GET")
	r.HandleFunc("/request/", requestHandler.Submit).Methods("POST")
	r.HandleFunc("/booking/{id}/{day}/{time}/", bookingHandler.Show).Methods("GET")
	r.HandleFunc("/booking_done/", bookingHandler.Submit).Methods("POST")

	// System endpoints
	r.HandleFunc("/version", systemHandler.VersionHandler(version, buildTime)).Methods("GET")
	r.HandleFunc("/health", systemHandler.HealthHandler).Methods("GET")

	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		renderer.NotFound(w)
	})

	return r, nil
}
