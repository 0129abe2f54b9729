package api_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"tinysteps/api"
	dbfs "tinysteps/db"
	"tinysteps/internal/db"
)

// setupServer boots the full stack on an in-memory database with the real
// migrations and seed fixtures applied.
func setupServer(t *testing.T) (*httptest.Server, *db.DB, func()) {
	t.Helper()
	ctx := context.Background()
	d, err := db.New(ctx, "file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("db.New: %v", err)
	}

	if err := db.Migrate(ctx, d, dbfs.Migrations, dbfs.SeedFiles); err != nil {
		d.Close()
		t.Fatalf("migrate: %v", err)
	}

	router, err := api.SetupRoutes("test", "now", d)
	if err != nil {
		d.Close()
		t.Fatalf("SetupRoutes: %v", err)
	}

	srv := httptest.NewServer(router)
	return srv, d, func() { srv.Close(); d.Close() }
}

func get(t *testing.T, url string) (int, string) {
	t.Helper()
	res, err := http.Get(url)
	if err != nil {
		t.Fatalf("get %s: %v", url, err)
	}
	defer res.Body.Close()
	body, err := io.ReadAll(res.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	return res.StatusCode, string(body)
}

func countRows(t *testing.T, d *db.DB, table string) int64 {
	t.Helper()
	var n int64
	row := d.QueryRow(context.Background(), `SELECT COUNT(*) FROM `+table)
	if err := row.Scan(&n); err != nil {
		t.Fatalf("count %s: %v", table, err)
	}
	return n
}

func TestHomePage(t *testing.T) {
	srv, _, cleanup := setupServer(t)
	defer cleanup()

	status, body := get(t, srv.URL+"/")
	if status != http.StatusOK {
		t.Fatalf("expected 200 got %d", status)
	}
	if !strings.Contains(body, "/profiles/") {
		t.Fatalf("expected teacher cards on home page")
	}
	if !strings.Contains(body, "/goals/travel/") {
		t.Fatalf("expected goal menu on home page")
	}
	// 6 sampled teachers, one picture each
	if n := strings.Count(body, "<img"); n != 6 {
		t.Fatalf("expected 6 teacher cards got %d", n)
	}
}

func TestAllTeachersPage(t *testing.T) {
	srv, d, cleanup := setupServer(t)
	defer cleanup()

	status, body := get(t, srv.URL+"/all/")
	if status != http.StatusOK {
		t.Fatalf("expected 200 got %d", status)
	}
	total := countRows(t, d, "teachers")
	if n := strings.Count(body, "<img"); int64(n) != total {
		t.Fatalf("expected %d teacher cards got %d", total, n)
	}
}

func TestGoalPageFiltersTeachers(t *testing.T) {
	srv, _, cleanup := setupServer(t)
	defer cleanup()

	status, body := get(t, srv.URL+"/goals/travel/")
	if status != http.StatusOK {
		t.Fatalf("expected 200 got %d", status)
	}
	// Ethan teaches travel, Olga is exam prep only
	if !strings.Contains(body, "Ethan Welch") {
		t.Fatalf("expected travel teacher on goal page")
	}
	if strings.Contains(body, "Olga Windler") {
		t.Fatalf("teacher without the goal leaked onto the goal page")
	}

	for _, alias := range []string{"travel", "study", "work", "relocate", "prog"} {
		status, _ := get(t, srv.URL+"/goals/"+alias+"/")
		if status != http.StatusOK {
			t.Fatalf("expected 200 for goal %s got %d", alias, status)
		}
	}
}

func TestGoalPageUnknownAlias(t *testing.T) {
	srv, _, cleanup := setupServer(t)
	defer cleanup()

	status, _ := get(t, srv.URL+"/goals/dance/")
	if status != http.StatusNotFound {
		t.Fatalf("expected 404 got %d", status)
	}
}

func TestProfilePage(t *testing.T) {
	srv, _, cleanup := setupServer(t)
	defer cleanup()

	status, body := get(t, srv.URL+"/profiles/1/")
	if status != http.StatusOK {
		t.Fatalf("expected 200 got %d", status)
	}
	if !strings.Contains(body, "Amanda Bennett") {
		t.Fatalf("expected teacher name on profile page")
	}
	// availability grid shows weekday names and booking links
	if !strings.Contains(body, "Monday") || !strings.Contains(body, "/booking/1/mon/") {
		t.Fatalf("expected availability grid on profile page")
	}

	status, _ = get(t, srv.URL+"/profiles/99999/")
	if status != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown teacher got %d", status)
	}

	status, _ = get(t, srv.URL+"/profiles/abc/")
	if status != http.StatusNotFound {
		t.Fatalf("expected 404 for non-numeric id got %d", status)
	}
}

func TestUnknownPathRendersNotFound(t *testing.T) {
	srv, _, cleanup := setupServer(t)
	defer cleanup()

	status, body := get(t, srv.URL+"/nope/")
	if status != http.StatusNotFound {
		t.Fatalf("expected 404 got %d", status)
	}
	if !strings.Contains(body, "Page not found") {
		t.Fatalf("expected rendered 404 page")
	}
}

func TestSystemEndpoints(t *testing.T) {
	srv, _, cleanup := setupServer(t)
	defer cleanup()

	status, body := get(t, srv.URL+"/health")
	if status != http.StatusOK || !strings.Contains(body, `"status":"ok"`) {
		t.Fatalf("unexpected health response: %d %s", status, body)
	}

	status, body = get(t, srv.URL+"/version")
	if status != http.StatusOK || !strings.Contains(body, `"version":"test"`) {
		t.Fatalf("unexpected version response: %d %s", status, body)
	}
}
