package entity

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type Screening struct {
	Base
	ShowTime pgtype.Time `db:"show_time"` // time of day, no date
	CinemaID uuid.UUID   `db:"cinema_id"`
	MovieID  uuid.UUID   `db:"movie_id"`
}

// ScreeningListing is a screening joined with its movie, as shown when browsing a cinema.
type ScreeningListing struct {
	Screening
	Movie Movie
}

// ClockTime builds a pgtype.Time from hours and minutes.
func ClockTime(hour, minute int) pgtype.Time {
	d := time.Duration(hour)*time.Hour + time.Duration(minute)*time.Minute
	return pgtype.Time{Microseconds: d.Microseconds(), Valid: true}
}

// FormatClock renders a time of day as "HH:MM".
func FormatClock(t pgtype.Time) string {
	if !t.Valid {
		return ""
	}
	d := time.Duration(t.Microseconds) * time.Microsecond
	return fmt.Sprintf("%02d:%02d", int(d.Hours())%24, int(d.Minutes())%60)
}
