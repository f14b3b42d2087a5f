package wire

import (
	"cinemania/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireTicket(r chi.Router, ticketHandler *adaptor.TicketHandler) {
	r.Route("/api/tickets", func(r chi.Router) {
		r.Get("/", ticketHandler.GetTickets)          // list, oldest purchase first
		r.Post("/", ticketHandler.PurchaseTicket)     // {"screening_id": "..."}
		r.Delete("/{id}", ticketHandler.CancelTicket) // cancel one ticket
	})
}
