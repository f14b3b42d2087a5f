package adaptor

import (
	"encoding/json"
	"net/http"

	"cinemania/internal/dto/request"
	"cinemania/internal/usecase"
	"cinemania/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// a purchase body is a single screening id
const maxPurchaseBody = 1 << 10

type TicketHandler struct {
	reservation usecase.ReservationService
	catalog     usecase.CatalogService
	log         *zap.Logger
}

func NewTicketHandler(reservation usecase.ReservationService, catalog usecase.CatalogService, log *zap.Logger) *TicketHandler {
	return &TicketHandler{
		reservation: reservation,
		catalog:     catalog,
		log:         log.With(zap.String("handler", "ticket")),
	}
}

// GetTickets handles GET /api/tickets
func (h *TicketHandler) GetTickets(w http.ResponseWriter, r *http.Request) {
	tickets, err := h.catalog.ListTickets(r.Context())
	if err != nil {
		writeServiceError(w, h.log, err, "list tickets")
		return
	}

	utils.ResponseSuccess(w, "success", tickets)
}

// PurchaseTicket handles POST /api/tickets
func (h *TicketHandler) PurchaseTicket(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxPurchaseBody)

	var req request.PurchaseTicketRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		h.log.Warn("Invalid purchase request",
			zap.String("errors", utils.FormatValidationErrors(validationErrors)),
		)
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	ticket, err := h.reservation.Purchase(r.Context(), req.ScreeningID)
	if err != nil {
		writeServiceError(w, h.log, err, "purchase ticket")
		return
	}

	utils.ResponseCreated(w, "success", ticket)
}

// CancelTicket handles DELETE /api/tickets/{id}
func (h *TicketHandler) CancelTicket(w http.ResponseWriter, r *http.Request) {
	ticketID := chi.URLParam(r, "id")
	if err := utils.ValidateVar(ticketID, "required,uuid"); err != nil {
		utils.ResponseBadRequest(w, "Ticket ID must be a valid UUID", nil)
		return
	}

	if err := h.reservation.Cancel(r.Context(), ticketID); err != nil {
		writeServiceError(w, h.log, err, "cancel ticket")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}
