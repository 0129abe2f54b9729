package models

// Domain models matching the database schema in db/migrations/0001_init.sql

// Teacher is a seeded tutor profile. Free maps a weekday alias (mon..sun)
// to the time slots the teacher is available at, e.g. "10:00".
type Teacher struct {
	ID      int64               `json:"id" db:"id"`
	Name    string              `json:"name" db:"name" validate:"required"`
	About   string              `json:"about,omitempty" db:"about"`
	Rating  float64             `json:"rating" db:"rating"`
	Picture string              `json:"picture" db:"picture"`
	Price   int                 `json:"price" db:"price" validate:"gte=0"`
	Free    map[string][]string `json:"free" db:"free"`
	Goals   []string            `json:"goals,omitempty"`
}

// Goal is a learning goal; Alias is the public URL key.
type Goal struct {
	ID    int64  `json:"id" db:"id"`
	Alias string `json:"alias" db:"alias" validate:"required"`
	Name  string `json:"name" db:"name" validate:"required"`
	Emoji string `json:"emoji" db:"emoji"`
}

// Weekday is one of the 7 fixed calendar-day rows.
type Weekday struct {
	ID    int64  `json:"id" db:"id"`
	Alias string `json:"alias" db:"alias"`
	Name  string `json:"name" db:"name"`
}

// Request is a submitted "find me a teacher" lead. Append-only.
type Request struct {
	ID          int64  `json:"id" db:"id"`
	Reference   string `json:"reference" db:"reference"`
	GoalID      int64  `json:"goal_id" db:"goal_id"`
	TimeBudget  string `json:"time_budget" db:"time_budget"`
	ClientName  string `json:"client_name" db:"client_name"`
	ClientPhone string `json:"client_phone" db:"client_phone"`
	Created     int64  `json:"created" db:"created"`
}

// Booking is a submitted trial-lesson reservation. Append-only.
type Booking struct {
	ID          int64  `json:"id" db:"id"`
	Reference   string `json:"reference" db:"reference"`
	TeacherID   int64  `json:"teacher_id" db:"teacher_id"`
	WeekdayID   int64  `json:"weekday_id" db:"weekday_id"`
	Time        string `json:"time" db:"time"`
	ClientName  string `json:"client_name" db:"client_name"`
	ClientPhone string `json:"client_phone" db:"client_phone"`
	Created     int64  `json:"created" db:"created"`
}

// TimeBudgets are the accepted weekly-time-budget buckets on the request form.
var TimeBudgets = []string{"1-2", "3-5", "5-7", "7-10"}
