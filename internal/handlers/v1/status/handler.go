package status

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/carson-networks/transaction-server/internal/logging"
	"github.com/carson-networks/transaction-server/internal/resilience"
)

type breakerReporter interface {
	States() map[string]resilience.State
	IsHealthy() bool
}

// Response is the /status body.
type Response struct {
	Healthy  bool                        `json:"healthy"`
	Breakers map[string]resilience.State `json:"breakers"`
}

type Handler struct {
	Guards breakerReporter
}

func NewHandler(guards breakerReporter) Handler {
	return Handler{Guards: guards}
}

func (h *Handler) Handler(w http.ResponseWriter, req *http.Request, logData *logging.LogData) error {
	if req.Method != http.MethodGet {
		w.WriteHeader(http.StatusBadRequest)
		return errors.New("status: method not GET")
	}

	resp := Response{
		Healthy:  h.Guards.IsHealthy(),
		Breakers: h.Guards.States(),
	}
	logData.AddData("healthy", resp.Healthy)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	return json.NewEncoder(w).Encode(resp)
}
