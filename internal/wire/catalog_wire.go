package wire

import (
	"cinemania/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireCatalog(r chi.Router, catalogHandler *adaptor.CatalogHandler) {
	// GET /api/cities - distinct cities that have cinemas
	r.Get("/api/cities", catalogHandler.GetCities)

	// GET /api/cinemas?city=Springfield - cinema names in one city
	r.Get("/api/cinemas", catalogHandler.GetCinemas)

	// GET /api/screenings?cinema=Grand - screenings at one cinema, by time
	r.Get("/api/screenings", catalogHandler.GetScreenings)
}
