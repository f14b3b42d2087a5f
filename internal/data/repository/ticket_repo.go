package repository

import (
	"context"
	"errors"
	"fmt"

	"cinemania/internal/data/entity"
	"cinemania/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type TicketRepository interface {
	// CreateIfAbsent inserts the ticket unless its screening already has one.
	// Returns ErrDuplicate when nothing was written and ErrMissingReference when
	// the screening does not exist.
	CreateIfAbsent(ctx context.Context, ticket *entity.Ticket) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.TicketListing, error)
	FindAll(ctx context.Context) ([]*entity.TicketListing, error)
	// Delete returns ErrNotFound when no ticket has the id.
	Delete(ctx context.Context, id uuid.UUID) error
}

type ticketRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewTicketRepository(db database.PgxIface, log *zap.Logger) TicketRepository {
	return &ticketRepository{
		db:  db,
		log: log.With(zap.String("repository", "ticket")),
	}
}

const ticketListingSelect = `
		SELECT t.id, t.screening_id, t.time_purchased, s.show_time,
		       m.id, m.title, m.runtime, m.release_date, m.poster_path,
		       c.id, c.name, c.city
		FROM tickets t
		JOIN screenings s ON s.id = t.screening_id
		JOIN movies m ON m.id = s.movie_id
		JOIN cinemas c ON c.id = s.cinema_id
`

func (r *ticketRepository) CreateIfAbsent(ctx context.Context, ticket *entity.Ticket) error {
	query := `
		INSERT INTO tickets (id, screening_id, time_purchased)
		VALUES ($1, $2, $3)
		ON CONFLICT (screening_id) DO NOTHING
		RETURNING id
	`

	var id uuid.UUID
	err := r.db.QueryRow(ctx, query,
		ticket.ID,
		ticket.ScreeningID,
		ticket.TimePurchased,
	).Scan(&id)

	if errors.Is(err, pgx.ErrNoRows) {
		return ErrDuplicate
	}
	if err != nil {
		switch pgErrorCode(err) {
		case codeUniqueViolation:
			return ErrDuplicate
		case codeForeignKeyViolation:
			return ErrMissingReference
		}
		r.log.Error("Failed to create ticket",
			zap.Error(err),
			zap.String("screening_id", ticket.ScreeningID.String()),
		)
		return fmt.Errorf("create ticket for screening %s: %w", ticket.ScreeningID.String(), err)
	}

	ticket.ID = id
	return nil
}

// FindByID returns nil, nil when the ticket does not exist.
func (r *ticketRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.TicketListing, error) {
	query := ticketListingSelect + `
		WHERE t.id = $1
	`

	listing, err := scanTicketListing(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find ticket by ID",
			zap.Error(err),
			zap.String("ticket_id", id.String()),
		)
		return nil, fmt.Errorf("find ticket by ID %s: %w", id.String(), err)
	}

	return listing, nil
}

func (r *ticketRepository) FindAll(ctx context.Context) ([]*entity.TicketListing, error) {
	query := ticketListingSelect + `
		ORDER BY t.time_purchased, t.id
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find all tickets", zap.Error(err))
		return nil, fmt.Errorf("find all tickets: %w", err)
	}
	defer rows.Close()

	tickets := []*entity.TicketListing{}
	for rows.Next() {
		listing, err := scanTicketListing(rows)
		if err != nil {
			r.log.Error("Failed to scan ticket row", zap.Error(err))
			return nil, fmt.Errorf("scan ticket row: %w", err)
		}
		tickets = append(tickets, listing)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate ticket rows: %w", err)
	}

	return tickets, nil
}

func (r *ticketRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM tickets WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete ticket",
			zap.Error(err),
			zap.String("ticket_id", id.String()),
		)
		return fmt.Errorf("delete ticket %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return ErrNotFound
	}

	r.log.Info("Ticket deleted", zap.String("ticket_id", id.String()))
	return nil
}

func scanTicketListing(row pgx.Row) (*entity.TicketListing, error) {
	var l entity.TicketListing
	err := row.Scan(
		&l.ID,
		&l.ScreeningID,
		&l.TimePurchased,
		&l.ShowTime,
		&l.Movie.ID,
		&l.Movie.Title,
		&l.Movie.Runtime,
		&l.Movie.ReleaseDate,
		&l.Movie.PosterPath,
		&l.Cinema.ID,
		&l.Cinema.Name,
		&l.Cinema.City,
	)
	if err != nil {
		return nil, err
	}
	return &l, nil
}
