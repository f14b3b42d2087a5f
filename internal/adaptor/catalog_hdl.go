package adaptor

import (
	"net/http"

	"cinemania/internal/usecase"
	"cinemania/pkg/utils"

	"go.uber.org/zap"
)

type CatalogHandler struct {
	service usecase.CatalogService
	log     *zap.Logger
}

func NewCatalogHandler(service usecase.CatalogService, log *zap.Logger) *CatalogHandler {
	return &CatalogHandler{
		service: service,
		log:     log.With(zap.String("handler", "catalog")),
	}
}

// GetCities handles GET /api/cities
func (h *CatalogHandler) GetCities(w http.ResponseWriter, r *http.Request) {
	cities, err := h.service.ListCities(r.Context())
	if err != nil {
		writeServiceError(w, h.log, err, "list cities")
		return
	}

	utils.ResponseSuccess(w, "success", cities)
}

// GetCinemas handles GET /api/cinemas?city=...
func (h *CatalogHandler) GetCinemas(w http.ResponseWriter, r *http.Request) {
	city := r.URL.Query().Get("city")
	if city == "" {
		utils.ResponseBadRequest(w, "Query parameter city is required", nil)
		return
	}

	cinemas, err := h.service.ListCinemas(r.Context(), city)
	if err != nil {
		writeServiceError(w, h.log, err, "list cinemas")
		return
	}

	utils.ResponseSuccess(w, "success", cinemas)
}

// GetScreenings handles GET /api/screenings?cinema=...
func (h *CatalogHandler) GetScreenings(w http.ResponseWriter, r *http.Request) {
	cinema := r.URL.Query().Get("cinema")
	if cinema == "" {
		utils.ResponseBadRequest(w, "Query parameter cinema is required", nil)
		return
	}

	screenings, err := h.service.ListScreenings(r.Context(), cinema)
	if err != nil {
		writeServiceError(w, h.log, err, "list screenings")
		return
	}

	utils.ResponseSuccess(w, "success", screenings)
}
