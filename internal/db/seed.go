package db

import (
	"context"
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"

	"github.com/qri-io/jsonschema"
)

// Reference rows seeded once. Goal aliases are the public URL keys and the
// weekday aliases key each teacher's free-time-slot map.
var seedGoals = []struct {
	Alias string
	Name  string
	Emoji string
}{
	{"travel", "For travel", "⛱"},
	{"study", "For study", "🏫"},
	{"work", "For work", "🏢"},
	{"relocate", "For relocation", "🚜"},
	{"prog", "For programming", "🐱"},
}

var seedWeekdays = []struct {
	Alias string
	Name  string
}{
	{"mon", "Monday"},
	{"tue", "Tuesday"},
	{"wed", "Wednesday"},
	{"thu", "Thursday"},
	{"fri", "Friday"},
	{"sat", "Saturday"},
	{"sun", "Sunday"},
}

type teacherFixture struct {
	Name    string              `json:"name"`
	About   string              `json:"about"`
	Rating  float64             `json:"rating"`
	Picture string              `json:"picture"`
	Price   int                 `json:"price"`
	Goals   []string            `json:"goals"`
	Free    map[string][]string `json:"free"`
}

// Seed inserts the goal and weekday reference rows and imports the teacher
// fixture document. Goals and weekdays use INSERT OR IGNORE keyed on their
// unique aliases; the teacher import is skipped when the teachers table is
// already populated, so reruns never duplicate rows.
func Seed(ctx context.Context, d *DB, seedFS embed.FS) error {
	for _, g := range seedGoals {
		if _, err := d.Exec(ctx, `INSERT OR IGNORE INTO goals (alias, name, emoji) VALUES (?, ?, ?)`, g.Alias, g.Name, g.Emoji); err != nil {
			return fmt.Errorf("seed goal %s: %w", g.Alias, err)
		}
	}

	for _, w := range seedWeekdays {
		if _, err := d.Exec(ctx, `INSERT OR IGNORE INTO weekdays (alias, name) VALUES (?, ?)`, w.Alias, w.Name); err != nil {
			return fmt.Errorf("seed weekday %s: %w", w.Alias, err)
		}
	}

	var teacherCount int64
	row := d.QueryRow(ctx, `SELECT COUNT(*) FROM teachers`)
	if err := row.Scan(&teacherCount); err != nil {
		return fmt.Errorf("count teachers: %w", err)
	}
	if teacherCount > 0 {
		// already imported
		return nil
	}

	doc, err := fs.ReadFile(seedFS, "seed/teachers.json")
	if err != nil {
		return fmt.Errorf("read teacher fixture: %w", err)
	}

	if err := validateTeacherFixture(ctx, seedFS, doc); err != nil {
		return err
	}

	var fixtures []teacherFixture
	if err := json.Unmarshal(doc, &fixtures); err != nil {
		return fmt.Errorf("decode teacher fixture: %w", err)
	}

	for _, t := range fixtures {
		free, err := json.Marshal(t.Free)
		if err != nil {
			return fmt.Errorf("encode free slots for %s: %w", t.Name, err)
		}

		res, err := d.Exec(ctx, `INSERT INTO teachers (name, about, rating, picture, price, free) VALUES (?, ?, ?, ?, ?, ?)`,
			t.Name, t.About, t.Rating, t.Picture, t.Price, string(free))
		if err != nil {
			return fmt.Errorf("insert teacher %s: %w", t.Name, err)
		}
		teacherID, err := res.LastInsertId()
		if err != nil {
			return fmt.Errorf("teacher id for %s: %w", t.Name, err)
		}

		// resolve goal aliases to goal rows
		for _, alias := range t.Goals {
			var goalID int64
			row := d.QueryRow(ctx, `SELECT id FROM goals WHERE alias = ?`, alias)
			if err := row.Scan(&goalID); err != nil {
				return fmt.Errorf("unknown goal %q for teacher %s: %w", alias, t.Name, err)
			}
			if _, err := d.Exec(ctx, `INSERT INTO teachers_goals (teacher_id, goal_id) VALUES (?, ?)`, teacherID, goalID); err != nil {
				return fmt.Errorf("link teacher %s to goal %s: %w", t.Name, alias, err)
			}
		}
	}

	return nil
}

// validateTeacherFixture checks the fixture document against the embedded
// JSON schema before anything is written.
func validateTeacherFixture(ctx context.Context, seedFS embed.FS, doc []byte) error {
	schemaBytes, err := fs.ReadFile(seedFS, "seed/teachers_schema.json")
	if err != nil {
		return fmt.Errorf("read fixture schema: %w", err)
	}

	rs := &jsonschema.Schema{}
	if err := json.Unmarshal(schemaBytes, rs); err != nil {
		return fmt.Errorf("compile fixture schema: %w", err)
	}

	keyErrs, err := rs.ValidateBytes(ctx, doc)
	if err != nil {
		return fmt.Errorf("validate teacher fixture: %w", err)
	}
	if len(keyErrs) > 0 {
		return fmt.Errorf("teacher fixture is invalid: %s", keyErrs[0].Error())
	}

	return nil
}
