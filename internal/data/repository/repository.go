package repository

import (
	"cinemania/pkg/database"

	"go.uber.org/zap"
)

// Repository groups the per-table repositories over one store handle.
type Repository struct {
	Cinema    CinemaRepository
	Screening ScreeningRepository
	Ticket    TicketRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		Cinema:    NewCinemaRepository(db, log),
		Screening: NewScreeningRepository(db, log),
		Ticket:    NewTicketRepository(db, log),
	}
}
