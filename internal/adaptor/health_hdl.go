package adaptor

import (
	"context"
	"net/http"
	"time"

	"cinemania/pkg/utils"

	"go.uber.org/zap"
)

// Pinger is the part of the store handle the health check needs.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Health handles GET /health by pinging the store.
func Health(db Pinger, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := db.Ping(ctx); err != nil {
			log.Warn("Health check failed", zap.Error(err))
			utils.ResponseServiceUnavailable(w, "database unreachable")
			return
		}

		utils.ResponseSuccess(w, "OK", nil)
	}
}
