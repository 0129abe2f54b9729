package sqlite

import (
	"context"
	"database/sql"

	"tinysteps/pkg/models"
)

func (r *SQLiteRepo) ListWeekdays(ctx context.Context) ([]models.Weekday, error) {
	rows, err := r.conn.QueryRows(ctx, `SELECT id, alias, name FROM weekdays ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.Weekday
	for rows.Next() {
		var w models.Weekday
		if err := rows.Scan(&w.ID, &w.Alias, &w.Name); err != nil {
			return nil, err
		}

		out = append(out, w)
	}

	return out, rows.Err()
}

func (r *SQLiteRepo) GetWeekdayByAlias(ctx context.Context, alias string) (*models.Weekday, error) {
	row := r.conn.QueryRow(ctx, `SELECT id, alias, name FROM weekdays WHERE alias = ?`, alias)
	var w models.Weekday
	if err := row.Scan(&w.ID, &w.Alias, &w.Name); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}

		return nil, err
	}

	return &w, nil
}

// WeekdayNames returns the alias -> display name map for rendering the
// availability grid.
func (r *SQLiteRepo) WeekdayNames(ctx context.Context) (map[string]string, error) {
	days, err := r.ListWeekdays(ctx)
	if err != nil {
		return nil, err
	}

	out := make(map[string]string, len(days))
	for _, d := range days {
		out[d.Alias] = d.Name
	}

	return out, nil
}
