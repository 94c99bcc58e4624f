package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"unitconv/internal/convert"
	"unitconv/internal/domain"
)

type ConversionService interface {
	Convert(ctx context.Context, req domain.ConversionRequest) (domain.Conversion, error)
	ListUnits(category domain.Category) ([]domain.Unit, error)
	CurrencyCodes() ([]string, error)
	Categories() []domain.Category
	CacheStatus() domain.CacheStatus
}

type Handler struct {
	service ConversionService
}

func NewConversionHandler(service ConversionService) *Handler {
	return &Handler{service: service}
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, statusCode int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, statusCode int, errorMsg string) {
	writeJSON(w, statusCode, errorResponse{Error: errorMsg})
}

// statusForError maps engine errors to HTTP status codes. The engine itself
// knows nothing about HTTP; the mapping lives entirely here.
func statusForError(err error) int {
	switch {
	case errors.Is(err, domain.ErrUnitNotFound),
		errors.Is(err, domain.ErrCategoryMismatch),
		errors.Is(err, domain.ErrInvalidValue),
		errors.Is(err, convert.ErrFromUnitRequired),
		errors.Is(err, convert.ErrToUnitRequired):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrCategoryNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrFetchTimeout):
		return http.StatusGatewayTimeout
	case errors.Is(err, domain.ErrFetchUnavailable), errors.Is(err, domain.ErrFetchParse):
		return http.StatusBadGateway
	case errors.Is(err, domain.ErrSnapshotMissing), errors.Is(err, domain.ErrSnapshotStale):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// normalizeSymbol applies the case convention of the category: currency
// codes are upper-case, physical unit names lower-case. The registry itself
// stays exact-match.
func normalizeSymbol(category domain.Category, symbol string) string {
	symbol = strings.TrimSpace(symbol)
	if category == domain.CategoryCurrency {
		return strings.ToUpper(symbol)
	}
	return strings.ToLower(symbol)
}

func normalizeCategory(raw string) domain.Category {
	return domain.Category(strings.ToLower(strings.TrimSpace(raw)))
}
