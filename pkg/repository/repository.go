package repository

import (
	"context"

	"tinysteps/pkg/models"
)

// Repository interfaces for domain entities. These are the public contracts
// consumers should depend on; concrete implementations live under internal/.
// Lookups return (nil, nil) when the row does not exist.

type GoalRepo interface {
	ListGoals(ctx context.Context) ([]models.Goal, error)
	GetGoalByAlias(ctx context.Context, alias string) (*models.Goal, error)
}

type WeekdayRepo interface {
	ListWeekdays(ctx context.Context) ([]models.Weekday, error)
	GetWeekdayByAlias(ctx context.Context, alias string) (*models.Weekday, error)
	// WeekdayNames returns the fixed alias -> display name map (7 entries).
	WeekdayNames(ctx context.Context) (map[string]string, error)
}

type TeacherRepo interface {
	GetTeacher(ctx context.Context, id int64) (*models.Teacher, error)
	// ListTeachers returns every teacher ordered by name.
	ListTeachers(ctx context.Context) ([]models.Teacher, error)
	ListTeachersByGoal(ctx context.Context, goalID int64) ([]models.Teacher, error)
	// RandomTeachers samples up to n distinct teachers without replacement.
	// When the population is smaller than n the whole population is returned.
	RandomTeachers(ctx context.Context, n int) ([]models.Teacher, error)
	CreateTeacher(ctx context.Context, t *models.Teacher, goalIDs []int64) (int64, error)
	CountTeachers(ctx context.Context) (int64, error)
}

type RequestRepo interface {
	CreateRequest(ctx context.Context, req *models.Request) (int64, error)
	GetRequestByID(ctx context.Context, id int64) (*models.Request, error)
}

type BookingRepo interface {
	CreateBooking(ctx context.Context, b *models.Booking) (int64, error)
	GetBookingByID(ctx context.Context, id int64) (*models.Booking, error)
}
