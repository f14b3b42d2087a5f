package wire

import (
	"net/http"
	"strings"

	"cinemania/internal/adaptor"
	"cinemania/internal/data/repository"
	"cinemania/internal/event"
	"cinemania/internal/usecase"
	"cinemania/pkg/database"
	"cinemania/pkg/middleware"
	"cinemania/pkg/utils"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// App holds the wired HTTP router
type App struct {
	Router *chi.Mux
}

// Wiring builds repositories, services and handlers on top of one store handle
func Wiring(db database.PgxIface, config *utils.Config, publisher event.Publisher, logger *zap.Logger) *App {
	repo := repository.NewRepository(db, logger)
	service := usecase.NewService(repo, config, publisher, logger)
	handler := adaptor.NewHandler(service, logger)

	return &App{
		Router: setupRouter(handler, db, config, logger),
	}
}

func setupRouter(
	handler *adaptor.Handler,
	db database.PgxIface,
	config *utils.Config,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS())

	wireCatalog(r, handler.Catalog)
	wireTicket(r, handler.Ticket)
	wirePosters(r, config.Poster)

	r.Get("/health", adaptor.Health(db, logger))

	return r
}

// wirePosters serves poster files from the configured directory under the poster base URL.
func wirePosters(r chi.Router, poster utils.PosterConfig) {
	if poster.Dir == "" || !strings.HasPrefix(poster.BaseURL, "/") {
		return
	}

	prefix := strings.TrimSuffix(poster.BaseURL, "/")
	if prefix == "" {
		return
	}
	fs := http.StripPrefix(prefix+"/", http.FileServer(http.Dir(poster.Dir)))
	r.Handle(prefix+"/*", fs)
}
