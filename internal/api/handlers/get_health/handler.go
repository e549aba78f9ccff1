package get_health

import (
	"context"
	"net/http"
	"time"

	"github.com/m04kA/SMC-ScheduleAssistant/internal/api/handlers"
)

const checkTimeout = 2 * time.Second

// CheckFunc проверка готовности одной зависимости
type CheckFunc func(ctx context.Context) error

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// HealthResponse HTTP response model
type HealthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks,omitempty"`
}

type Handler struct {
	checks map[string]CheckFunc
	logger Logger
}

func NewHandler(checks map[string]CheckFunc, logger Logger) *Handler {
	return &Handler{
		checks: checks,
		logger: logger,
	}
}

// Handle GET /health
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), checkTimeout)
	defer cancel()

	resp := HealthResponse{Status: "ok"}
	if len(h.checks) > 0 {
		resp.Checks = make(map[string]string, len(h.checks))
	}

	healthy := true
	for name, check := range h.checks {
		if err := check(ctx); err != nil {
			h.logger.Warn("GET /health - Check %s failed: %v", name, err)
			resp.Checks[name] = err.Error()
			healthy = false
			continue
		}
		resp.Checks[name] = "ok"
	}

	if !healthy {
		resp.Status = "degraded"
		handlers.RespondJSON(w, http.StatusServiceUnavailable, resp)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, resp)
}
