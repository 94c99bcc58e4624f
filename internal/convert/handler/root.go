package handler

import (
	"net/http"
)

type RootResponse struct {
	Service       string `json:"service"`
	Documentation string `json:"documentation"`
	Health        string `json:"health"`
	Metrics       string `json:"metrics"`
}

// Root godoc
// @Summary Service information
// @Tags General
// @Produce json
// @Success 200 {object} RootResponse
// @Router / [get]
func (h *Handler) Root(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, RootResponse{
		Service:       "Unit Converter API",
		Documentation: "/swagger/index.html",
		Health:        "/healthz",
		Metrics:       "/metrics",
	})
}
