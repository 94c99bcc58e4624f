package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"unitconv/internal/domain"
	"unitconv/internal/metrics"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
)

type ConvertRequest struct {
	Value    float64 `json:"value" example:"100"`
	FromUnit string  `json:"from_unit" example:"meter"`
	ToUnit   string  `json:"to_unit" example:"foot"`
}

type ConvertResponse struct {
	OriginalValue  float64 `json:"original_value" example:"100"`
	ConvertedValue float64 `json:"converted_value" example:"328.084"`
	FromUnit       string  `json:"from_unit" example:"meter"`
	ToUnit         string  `json:"to_unit" example:"foot"`
	Category       string  `json:"category" example:"length"`
}

// Convert godoc
// @Summary Convert a value between two units
// @Description Convert within a category (length, weight, volume, temperature) or between currencies using live rates
// @Tags Conversions
// @Accept json
// @Produce json
// @Param category path string true "Unit category"
// @Param request body ConvertRequest true "Conversion request"
// @Success 200 {object} ConvertResponse
// @Failure 400 {object} errorResponse
// @Failure 404 {object} errorResponse
// @Failure 502 {object} errorResponse
// @Failure 504 {object} errorResponse
// @Router /convert/{category} [post]
func (h *Handler) Convert(w http.ResponseWriter, r *http.Request) {
	category := normalizeCategory(chi.URLParam(r, "category"))

	r.Body = http.MaxBytesReader(w, r.Body, 512)
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	var req ConvertRequest
	if err := dec.Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	convReq := domain.ConversionRequest{
		Category: category,
		FromUnit: normalizeSymbol(category, req.FromUnit),
		ToUnit:   normalizeSymbol(category, req.ToUnit),
		Value:    req.Value,
	}

	start := time.Now()
	result, err := h.service.Convert(r.Context(), convReq)
	duration := time.Since(start)
	metrics.ConversionDuration.WithLabelValues(string(category)).Observe(duration.Seconds())

	if err != nil {
		metrics.ConversionsTotal.WithLabelValues(string(category), "error").Inc()
		statusCode := statusForError(err)
		if statusCode >= http.StatusInternalServerError {
			logrus.WithError(err).WithFields(logrus.Fields{
				"handler":  "Convert",
				"category": category,
				"from":     convReq.FromUnit,
				"to":       convReq.ToUnit,
			}).Error("conversion failed")
		}
		writeError(w, statusCode, err.Error())
		return
	}

	metrics.ConversionsTotal.WithLabelValues(string(category), "success").Inc()
	logrus.WithFields(logrus.Fields{
		"category":         category,
		"from_unit":        result.FromUnit,
		"to_unit":          result.ToUnit,
		"duration_seconds": duration.Seconds(),
	}).Info("Conversion completed")

	writeJSON(w, http.StatusOK, ConvertResponse{
		OriginalValue:  req.Value,
		ConvertedValue: result.Value,
		FromUnit:       result.FromUnit,
		ToUnit:         result.ToUnit,
		Category:       string(result.Category),
	})
}
