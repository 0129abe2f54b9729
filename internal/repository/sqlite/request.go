package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"tinysteps/pkg/models"
)

func (r *SQLiteRepo) CreateRequest(ctx context.Context, req *models.Request) (int64, error) {
	if req == nil {
		return 0, fmt.Errorf("request is nil")
	}

	if req.Reference == "" {
		req.Reference = uuid.NewString()
	}
	if req.Created == 0 {
		req.Created = now()
	}

	res, err := r.conn.Exec(ctx, `INSERT INTO requests (reference, goal_id, time_budget, client_name, client_phone, created) VALUES (?, ?, ?, ?, ?, ?)`,
		req.Reference, req.GoalID, req.TimeBudget, req.ClientName, req.ClientPhone, req.Created)
	if err != nil {
		return 0, err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	req.ID = id

	return id, nil
}

func (r *SQLiteRepo) GetRequestByID(ctx context.Context, id int64) (*models.Request, error) {
	row := r.conn.QueryRow(ctx, `SELECT id, reference, goal_id, time_budget, client_name, client_phone, created FROM requests WHERE id = ?`, id)
	var req models.Request
	if err := row.Scan(&req.ID, &req.Reference, &req.GoalID, &req.TimeBudget, &req.ClientName, &req.ClientPhone, &req.Created); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}

		return nil, err
	}

	return &req, nil
}
