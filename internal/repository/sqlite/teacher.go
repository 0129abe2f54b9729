package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"tinysteps/pkg/models"
)

const teacherColumns = `id, name, about, rating, picture, price, free`

func scanTeacher(scan func(dest ...any) error) (*models.Teacher, error) {
	var t models.Teacher
	var free string
	if err := scan(&t.ID, &t.Name, &t.About, &t.Rating, &t.Picture, &t.Price, &free); err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(free), &t.Free); err != nil {
		return nil, fmt.Errorf("decode free slots for teacher %d: %w", t.ID, err)
	}

	return &t, nil
}

func (r *SQLiteRepo) GetTeacher(ctx context.Context, id int64) (*models.Teacher, error) {
	row := r.conn.QueryRow(ctx, `SELECT `+teacherColumns+` FROM teachers WHERE id = ?`, id)
	t, err := scanTeacher(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}

		return nil, err
	}

	// attach goal aliases for the profile page
	rows, err := r.conn.QueryRows(ctx, `SELECT g.alias FROM goals g JOIN teachers_goals tg ON tg.goal_id = g.id WHERE tg.teacher_id = ? ORDER BY g.id`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var alias string
		if err := rows.Scan(&alias); err != nil {
			return nil, err
		}

		t.Goals = append(t.Goals, alias)
	}

	return t, rows.Err()
}

// ListTeachers returns every teacher ordered by name.
func (r *SQLiteRepo) ListTeachers(ctx context.Context) ([]models.Teacher, error) {
	return r.queryTeachers(ctx, `SELECT `+teacherColumns+` FROM teachers ORDER BY name`)
}

func (r *SQLiteRepo) ListTeachersByGoal(ctx context.Context, goalID int64) ([]models.Teacher, error) {
	return r.queryTeachers(ctx, `SELECT `+teacherColumns+` FROM teachers t JOIN teachers_goals tg ON tg.teacher_id = t.id WHERE tg.goal_id = ? ORDER BY t.name`, goalID)
}

// RandomTeachers samples up to n distinct teachers without replacement.
// When fewer than n teachers exist the whole population comes back.
func (r *SQLiteRepo) RandomTeachers(ctx context.Context, n int) ([]models.Teacher, error) {
	if n <= 0 {
		return nil, nil
	}

	return r.queryTeachers(ctx, `SELECT `+teacherColumns+` FROM teachers ORDER BY RANDOM() LIMIT ?`, n)
}

func (r *SQLiteRepo) queryTeachers(ctx context.Context, query string, args ...any) ([]models.Teacher, error) {
	rows, err := r.conn.QueryRows(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.Teacher
	for rows.Next() {
		t, err := scanTeacher(rows.Scan)
		if err != nil {
			return nil, err
		}

		out = append(out, *t)
	}

	return out, rows.Err()
}

func (r *SQLiteRepo) CreateTeacher(ctx context.Context, t *models.Teacher, goalIDs []int64) (int64, error) {
	if t == nil {
		return 0, fmt.Errorf("teacher is nil")
	}

	free := t.Free
	if free == nil {
		free = map[string][]string{}
	}
	b, err := json.Marshal(free)
	if err != nil {
		return 0, fmt.Errorf("encode free slots: %w", err)
	}

	res, err := r.conn.Exec(ctx, `INSERT INTO teachers (name, about, rating, picture, price, free) VALUES (?, ?, ?, ?, ?, ?)`,
		t.Name, t.About, t.Rating, t.Picture, t.Price, string(b))
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}

	for _, goalID := range goalIDs {
		if _, err := r.conn.Exec(ctx, `INSERT INTO teachers_goals (teacher_id, goal_id) VALUES (?, ?)`, id, goalID); err != nil {
			return 0, err
		}
	}

	return id, nil
}

func (r *SQLiteRepo) CountTeachers(ctx context.Context) (int64, error) {
	row := r.conn.QueryRow(ctx, `SELECT COUNT(*) FROM teachers`)
	var cnt int64
	if err := row.Scan(&cnt); err != nil {
		return 0, err
	}
	return cnt, nil
}
