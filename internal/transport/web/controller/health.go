package controller

import (
	"net/http"

	"github.com/George-20m/Sip-Match2/internal/datasources"
	"github.com/George-20m/Sip-Match2/internal/domain"
)

// Health proxies the scoring service's health check. The API is only as
// useful as the scorer behind it, so its state is the service's state.
type Health struct {
	Scorer datasources.Scorer
}

func (c Health) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	health, err := c.Scorer.Health(r.Context())
	if err != nil {
		ctx := r.Context()
		logger := domain.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "scoring service health check failed", "error", err)

		writeMessage(w, r, http.StatusBadGateway, "scoring service unreachable")
		return
	}

	status := http.StatusOK
	if !health.Healthy() {
		status = http.StatusServiceUnavailable
	}
	writeJSON(w, r, status, health)
}
