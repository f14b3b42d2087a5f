package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type Ticket struct {
	Base
	ScreeningID   uuid.UUID `db:"screening_id"`
	TimePurchased time.Time `db:"time_purchased"`
}

// TicketListing is a ticket joined through its screening to the movie and cinema.
type TicketListing struct {
	Ticket
	ShowTime pgtype.Time
	Movie    Movie
	Cinema   Cinema
}
