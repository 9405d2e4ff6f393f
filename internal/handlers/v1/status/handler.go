package status

import (
	"context"
	"errors"
	"net/http"

	"github.com/carson-networks/budget-insights/internal/logging"
)

// pinger reports whether the database is reachable.
type pinger interface {
	PingContext(ctx context.Context) error
}

type Handler struct {
	DB pinger
}

func NewHandler(db pinger) Handler {
	return Handler{DB: db}
}

func (h *Handler) Handler(w http.ResponseWriter, req *http.Request, logData *logging.LogData) error {
	if req.Method != "GET" {
		w.WriteHeader(http.StatusBadRequest)
		return errors.New("status: method not GET")
	}

	if h.DB != nil {
		endTimer := logData.AddTiming("pingMs")
		err := h.DB.PingContext(req.Context())
		endTimer()
		if err != nil {
			w.WriteHeader(http.StatusServiceUnavailable)
			return err
		}
	}

	w.WriteHeader(http.StatusOK)
	return nil
}
