package adaptor

import (
	"errors"
	"net/http"

	"cinemania/internal/usecase"
	"cinemania/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	Catalog *CatalogHandler
	Ticket  *TicketHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Catalog: NewCatalogHandler(service.Catalog, log),
		Ticket:  NewTicketHandler(service.Reservation, service.Catalog, log),
	}
}

// writeServiceError maps the usecase error taxonomy onto HTTP status codes.
func writeServiceError(w http.ResponseWriter, log *zap.Logger, err error, operation string) {
	errMsg := err.Error()

	switch {
	case errors.Is(err, usecase.ErrInvalidInput):
		log.Warn("Invalid input for "+operation, zap.Error(err))
		utils.ResponseBadRequest(w, errMsg, nil)

	case errors.Is(err, usecase.ErrNotFound):
		log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, errMsg)

	case errors.Is(err, usecase.ErrAlreadyReserved):
		log.Warn(operation+" failed - already reserved", zap.Error(err))
		utils.ResponseConflict(w, errMsg)

	case errors.Is(err, usecase.ErrStoreUnavailable):
		log.Error(operation+" failed - store unavailable", zap.Error(err))
		utils.ResponseServiceUnavailable(w, "Store unavailable, try again later")

	default:
		log.Error("Failed to "+operation, zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
