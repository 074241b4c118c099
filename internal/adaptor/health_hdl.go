package adaptor

import (
	"context"
	"net/http"
	"time"

	"renovation-tracker/pkg/utils"
)

// Pinger is satisfied by the database pool.
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	db      Pinger
	appName string
}

func NewHealthHandler(db Pinger, appName string) *HealthHandler {
	return &HealthHandler{db: db, appName: appName}
}

// Health handles GET /health
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := h.db.Ping(ctx); err != nil {
		utils.ResponseJSON(w, http.StatusServiceUnavailable, false, "database unavailable", nil, map[string]string{"database": err.Error()})
		return
	}

	utils.ResponseJSON(w, http.StatusOK, true, "OK", map[string]string{"app": h.appName}, nil)
}
