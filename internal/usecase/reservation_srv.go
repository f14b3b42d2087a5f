package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"cinemania/internal/data/entity"
	"cinemania/internal/data/repository"
	"cinemania/internal/dto/response"
	"cinemania/internal/event"
	"cinemania/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ReservationService buys and cancels tickets. A screening holds at most one ticket.
type ReservationService interface {
	Purchase(ctx context.Context, screeningID string) (*response.TicketResponse, error)
	Cancel(ctx context.Context, ticketID string) error
}

type reservationService struct {
	repo      *repository.Repository
	poster    utils.PosterConfig
	publisher event.Publisher
	now       func() time.Time
	log       *zap.Logger
}

func NewReservationService(
	repo *repository.Repository,
	poster utils.PosterConfig,
	publisher event.Publisher,
	now func() time.Time,
	log *zap.Logger,
) ReservationService {
	if publisher == nil {
		publisher = event.NoopPublisher{}
	}
	if now == nil {
		now = time.Now
	}
	return &reservationService{
		repo:      repo,
		poster:    poster,
		publisher: publisher,
		now:       now,
		log:       log.With(zap.String("service", "reservation")),
	}
}

func (s *reservationService) Purchase(ctx context.Context, screeningID string) (*response.TicketResponse, error) {
	id, err := uuid.Parse(screeningID)
	if err != nil {
		return nil, fmt.Errorf("purchase: %w: screening ID %q", ErrInvalidInput, screeningID)
	}

	screening, err := s.repo.Screening.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("purchase for screening %s: %w: %w", screeningID, ErrStoreUnavailable, err)
	}
	if screening == nil {
		return nil, fmt.Errorf("screening %s: %w", screeningID, ErrNotFound)
	}

	ticket := &entity.Ticket{
		Base:          entity.Base{ID: uuid.New()},
		ScreeningID:   screening.ID,
		TimePurchased: s.now(),
	}

	if err := s.repo.Ticket.CreateIfAbsent(ctx, ticket); err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicate):
			s.log.Info("Duplicate purchase rejected", zap.String("screening_id", screeningID))
			return nil, fmt.Errorf("screening %s: %w", screeningID, ErrAlreadyReserved)
		case errors.Is(err, repository.ErrMissingReference):
			return nil, fmt.Errorf("screening %s: %w", screeningID, ErrNotFound)
		default:
			return nil, fmt.Errorf("purchase for screening %s: %w: %w", screeningID, ErrStoreUnavailable, err)
		}
	}

	s.log.Info("Ticket purchased",
		zap.String("ticket_id", ticket.ID.String()),
		zap.String("screening_id", screeningID),
	)

	resp := s.buildTicketResponse(ctx, ticket)

	s.publish(ctx, event.TicketEvent{
		Type:        event.TypeTicketPurchased,
		TicketID:    resp.ID,
		ScreeningID: resp.ScreeningID,
		MovieTitle:  resp.MovieTitle,
		CinemaName:  resp.CinemaName,
		ShowTime:    resp.ScreeningTime,
		OccurredAt:  ticket.TimePurchased,
	})

	return resp, nil
}

// Cancel deletes the ticket immediately; there is no soft delete.
func (s *reservationService) Cancel(ctx context.Context, ticketID string) error {
	id, err := uuid.Parse(ticketID)
	if err != nil {
		return fmt.Errorf("cancel: %w: ticket ID %q", ErrInvalidInput, ticketID)
	}

	if err := s.repo.Ticket.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return fmt.Errorf("ticket %s: %w", ticketID, ErrNotFound)
		}
		return fmt.Errorf("cancel ticket %s: %w: %w", ticketID, ErrStoreUnavailable, err)
	}

	s.log.Info("Ticket cancelled", zap.String("ticket_id", ticketID))

	s.publish(ctx, event.TicketEvent{
		Type:       event.TypeTicketCancelled,
		TicketID:   ticketID,
		OccurredAt: s.now(),
	})

	return nil
}

// buildTicketResponse reloads the ticket with its movie and cinema. The ticket is
// already stored, so a failed reload degrades to the bare ticket fields.
func (s *reservationService) buildTicketResponse(ctx context.Context, ticket *entity.Ticket) *response.TicketResponse {
	listing, err := s.repo.Ticket.FindByID(ctx, ticket.ID)
	if err != nil || listing == nil {
		s.log.Warn("Failed to load purchased ticket details",
			zap.Error(err),
			zap.String("ticket_id", ticket.ID.String()),
		)
		listing = &entity.TicketListing{Ticket: *ticket}
	}

	resp := response.TicketToResponse(listing, s.poster.BaseURL)
	return &resp
}

func (s *reservationService) publish(ctx context.Context, evt event.TicketEvent) {
	if err := s.publisher.Publish(ctx, evt); err != nil {
		s.log.Warn("Failed to publish ticket event",
			zap.Error(err),
			zap.String("type", evt.Type),
			zap.String("ticket_id", evt.TicketID),
		)
	}
}
