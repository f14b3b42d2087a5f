package entity

import (
	"time"
)

type Movie struct {
	Base
	Title       string    `db:"title"`
	Runtime     int16     `db:"runtime"` // minutes
	ReleaseDate time.Time `db:"release_date"`
	PosterPath  string    `db:"poster_path"`
}
