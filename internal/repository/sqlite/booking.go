package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"tinysteps/pkg/models"
)

func (r *SQLiteRepo) CreateBooking(ctx context.Context, b *models.Booking) (int64, error) {
	if b == nil {
		return 0, fmt.Errorf("booking is nil")
	}

	if b.Reference == "" {
		b.Reference = uuid.NewString()
	}
	if b.Created == 0 {
		b.Created = now()
	}

	res, err := r.conn.Exec(ctx, `INSERT INTO bookings (reference, teacher_id, weekday_id, time, client_name, client_phone, created) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		b.Reference, b.TeacherID, b.WeekdayID, b.Time, b.ClientName, b.ClientPhone, b.Created)
	if err != nil {
		return 0, err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	b.ID = id

	return id, nil
}

func (r *SQLiteRepo) GetBookingByID(ctx context.Context, id int64) (*models.Booking, error) {
	row := r.conn.QueryRow(ctx, `SELECT id, reference, teacher_id, weekday_id, time, client_name, client_phone, created FROM bookings WHERE id = ?`, id)
	var b models.Booking
	if err := row.Scan(&b.ID, &b.Reference, &b.TeacherID, &b.WeekdayID, &b.Time, &b.ClientName, &b.ClientPhone, &b.Created); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}

		return nil, err
	}

	return &b, nil
}
