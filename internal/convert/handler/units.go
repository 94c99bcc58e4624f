package handler

import (
	"errors"
	"net/http"

	"unitconv/internal/domain"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
)

type ListCategoriesResponse struct {
	Categories []string `json:"categories" example:"currency,length,temperature,volume,weight"`
}

// ListCategories godoc
// @Summary List unit categories
// @Tags Units
// @Produce json
// @Success 200 {object} ListCategoriesResponse
// @Router /units [get]
func (h *Handler) ListCategories(w http.ResponseWriter, _ *http.Request) {
	categories := h.service.Categories()
	names := make([]string, 0, len(categories))
	for _, c := range categories {
		names = append(names, string(c))
	}
	writeJSON(w, http.StatusOK, ListCategoriesResponse{Categories: names})
}

type UnitView struct {
	Symbol string  `json:"symbol" example:"foot"`
	Factor float64 `json:"factor" example:"0.3048"`
	Offset float64 `json:"offset,omitempty"`
	Base   bool    `json:"base,omitempty"`
}

type ListUnitsResponse struct {
	Category string     `json:"category" example:"length"`
	Units    []UnitView `json:"units,omitempty"`
	Codes    []string   `json:"codes,omitempty" example:"EUR,JPY,USD"`
}

// ListUnits godoc
// @Summary List units of a category
// @Description Static categories return unit definitions; currency returns the codes covered by the current rate snapshot
// @Tags Units
// @Produce json
// @Param category path string true "Unit category"
// @Success 200 {object} ListUnitsResponse
// @Failure 404 {object} errorResponse
// @Failure 503 {object} errorResponse "no rate snapshot yet"
// @Router /units/{category} [get]
func (h *Handler) ListUnits(w http.ResponseWriter, r *http.Request) {
	category := normalizeCategory(chi.URLParam(r, "category"))

	if category == domain.CategoryCurrency {
		codes, err := h.service.CurrencyCodes()
		if err != nil {
			if errors.Is(err, domain.ErrSnapshotMissing) {
				writeError(w, http.StatusServiceUnavailable, "currency codes unavailable until the first rate fetch")
				return
			}
			logrus.WithError(err).WithField("handler", "ListUnits").Error("failed to list currency codes")
			writeError(w, http.StatusInternalServerError, "failed to list currency codes")
			return
		}
		writeJSON(w, http.StatusOK, ListUnitsResponse{Category: string(category), Codes: codes})
		return
	}

	units, err := h.service.ListUnits(category)
	if err != nil {
		writeError(w, statusForError(err), err.Error())
		return
	}

	views := make([]UnitView, 0, len(units))
	for _, u := range units {
		views = append(views, UnitView{Symbol: u.Symbol, Factor: u.Factor, Offset: u.Offset, Base: u.IsBase()})
	}
	writeJSON(w, http.StatusOK, ListUnitsResponse{Category: string(category), Units: views})
}
