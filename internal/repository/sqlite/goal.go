package sqlite

import (
	"context"
	"database/sql"

	"tinysteps/pkg/models"
)

func (r *SQLiteRepo) ListGoals(ctx context.Context) ([]models.Goal, error) {
	rows, err := r.conn.QueryRows(ctx, `SELECT id, alias, name, emoji FROM goals ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.Goal
	for rows.Next() {
		var g models.Goal
		if err := rows.Scan(&g.ID, &g.Alias, &g.Name, &g.Emoji); err != nil {
			return nil, err
		}

		out = append(out, g)
	}

	return out, rows.Err()
}

func (r *SQLiteRepo) GetGoalByAlias(ctx context.Context, alias string) (*models.Goal, error) {
	row := r.conn.QueryRow(ctx, `SELECT id, alias, name, emoji FROM goals WHERE alias = ?`, alias)
	var g models.Goal
	if err := row.Scan(&g.ID, &g.Alias, &g.Name, &g.Emoji); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}

		return nil, err
	}

	return &g, nil
}
