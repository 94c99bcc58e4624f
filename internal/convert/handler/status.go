package handler

import (
	"net/http"
	"time"
)

type CurrencyStatusResponse struct {
	Present   bool       `json:"present"`
	FetchedAt *time.Time `json:"fetched_at,omitempty"`
	Stale     bool       `json:"stale"`
}

// CurrencyStatus godoc
// @Summary Currency subsystem health
// @Description Reports whether a rate snapshot is present and fresh, without triggering a fetch
// @Tags Health
// @Produce json
// @Success 200 {object} CurrencyStatusResponse
// @Router /currency/status [get]
func (h *Handler) CurrencyStatus(w http.ResponseWriter, _ *http.Request) {
	status := h.service.CacheStatus()

	res := CurrencyStatusResponse{Present: status.Present, Stale: status.Stale}
	if status.Present {
		fetchedAt := status.FetchedAt
		res.FetchedAt = &fetchedAt
	}
	writeJSON(w, http.StatusOK, res)
}
