package usecase

import (
	"time"

	"cinemania/internal/data/repository"
	"cinemania/internal/event"
	"cinemania/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Catalog     CatalogService
	Reservation ReservationService
}

func NewService(repo *repository.Repository, config *utils.Config, publisher event.Publisher, log *zap.Logger) *Service {
	return &Service{
		Catalog:     NewCatalogService(repo, config.Poster, log),
		Reservation: NewReservationService(repo, config.Poster, publisher, time.Now, log),
	}
}
