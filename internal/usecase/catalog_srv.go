package usecase

import (
	"context"
	"fmt"
	"strings"

	"cinemania/internal/data/repository"
	"cinemania/internal/dto/response"
	"cinemania/pkg/utils"

	"go.uber.org/zap"
)

// CatalogService answers the read-only browse queries: city -> cinema -> screening.
type CatalogService interface {
	ListCities(ctx context.Context) ([]string, error)
	ListCinemas(ctx context.Context, city string) ([]string, error)
	ListScreenings(ctx context.Context, cinemaName string) ([]response.ScreeningResponse, error)
	ListTickets(ctx context.Context) ([]response.TicketResponse, error)
}

type catalogService struct {
	repo   *repository.Repository
	poster utils.PosterConfig
	log    *zap.Logger
}

func NewCatalogService(repo *repository.Repository, poster utils.PosterConfig, log *zap.Logger) CatalogService {
	return &catalogService{
		repo:   repo,
		poster: poster,
		log:    log.With(zap.String("service", "catalog")),
	}
}

func (s *catalogService) ListCities(ctx context.Context) ([]string, error) {
	cities, err := s.repo.Cinema.FindCities(ctx)
	if err != nil {
		return nil, fmt.Errorf("list cities: %w: %w", ErrStoreUnavailable, err)
	}

	s.log.Debug("Cities retrieved", zap.Int("count", len(cities)))
	return cities, nil
}

func (s *catalogService) ListCinemas(ctx context.Context, city string) ([]string, error) {
	if strings.TrimSpace(city) == "" {
		return nil, fmt.Errorf("list cinemas: %w: city is required", ErrInvalidInput)
	}

	cinemas, err := s.repo.Cinema.FindByCity(ctx, city)
	if err != nil {
		return nil, fmt.Errorf("list cinemas in %s: %w: %w", city, ErrStoreUnavailable, err)
	}

	names := make([]string, len(cinemas))
	for i, cinema := range cinemas {
		names[i] = cinema.Name
	}

	s.log.Debug("Cinemas retrieved",
		zap.String("city", city),
		zap.Int("count", len(names)),
	)

	return names, nil
}

// ListScreenings returns the screenings at one cinema ordered by time of day.
// An unknown cinema yields an empty list, not an error.
func (s *catalogService) ListScreenings(ctx context.Context, cinemaName string) ([]response.ScreeningResponse, error) {
	if strings.TrimSpace(cinemaName) == "" {
		return nil, fmt.Errorf("list screenings: %w: cinema name is required", ErrInvalidInput)
	}

	listings, err := s.repo.Screening.FindByCinemaName(ctx, cinemaName)
	if err != nil {
		return nil, fmt.Errorf("list screenings at %s: %w: %w", cinemaName, ErrStoreUnavailable, err)
	}

	screenings := make([]response.ScreeningResponse, len(listings))
	for i, l := range listings {
		screenings[i] = response.ScreeningToResponse(l, s.poster.BaseURL)
	}

	s.log.Debug("Screenings retrieved",
		zap.String("cinema_name", cinemaName),
		zap.Int("count", len(screenings)),
	)

	return screenings, nil
}

// ListTickets returns every ticket, oldest purchase first.
func (s *catalogService) ListTickets(ctx context.Context) ([]response.TicketResponse, error) {
	listings, err := s.repo.Ticket.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list tickets: %w: %w", ErrStoreUnavailable, err)
	}

	tickets := make([]response.TicketResponse, len(listings))
	for i, l := range listings {
		tickets[i] = response.TicketToResponse(l, s.poster.BaseURL)
	}

	s.log.Debug("Tickets retrieved", zap.Int("count", len(tickets)))
	return tickets, nil
}
