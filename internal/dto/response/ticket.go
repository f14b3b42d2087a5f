package response

import (
	"time"

	"cinemania/internal/data/entity"
	"cinemania/pkg/utils"
)

type TicketResponse struct {
	ID            string    `json:"id"`
	ScreeningID   string    `json:"screening_id"`
	MovieTitle    string    `json:"movie_title"`
	PosterPath    string    `json:"poster_path"`
	PosterURL     string    `json:"poster_url"`
	ScreeningTime string    `json:"screening_time"` // HH:MM
	CinemaName    string    `json:"cinema_name"`
	PurchasedAt   time.Time `json:"purchased_at"`
}

func TicketToResponse(l *entity.TicketListing, posterBaseURL string) TicketResponse {
	return TicketResponse{
		ID:            l.ID.String(),
		ScreeningID:   l.ScreeningID.String(),
		MovieTitle:    l.Movie.Title,
		PosterPath:    l.Movie.PosterPath,
		PosterURL:     utils.PosterURL(posterBaseURL, l.Movie.PosterPath),
		ScreeningTime: entity.FormatClock(l.ShowTime),
		CinemaName:    l.Cinema.Name,
		PurchasedAt:   l.TimePurchased,
	}
}
