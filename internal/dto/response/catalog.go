package response

import (
	"cinemania/internal/data/entity"
	"cinemania/pkg/utils"
)

type ScreeningResponse struct {
	ID             string `json:"id"`
	Time           string `json:"time"` // HH:MM
	MovieTitle     string `json:"movie_title"`
	PosterPath     string `json:"poster_path"`
	PosterURL      string `json:"poster_url"`
	ReleaseYear    int    `json:"release_year"`
	RuntimeMinutes int    `json:"runtime_minutes"`
}

func ScreeningToResponse(l *entity.ScreeningListing, posterBaseURL string) ScreeningResponse {
	return ScreeningResponse{
		ID:             l.ID.String(),
		Time:           entity.FormatClock(l.ShowTime),
		MovieTitle:     l.Movie.Title,
		PosterPath:     l.Movie.PosterPath,
		PosterURL:      utils.PosterURL(posterBaseURL, l.Movie.PosterPath),
		ReleaseYear:    l.Movie.ReleaseDate.Year(),
		RuntimeMinutes: int(l.Movie.Runtime),
	}
}
