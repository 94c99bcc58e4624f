package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"unitconv/internal/domain"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockService struct{ mock.Mock }

func (m *MockService) Convert(ctx context.Context, req domain.ConversionRequest) (domain.Conversion, error) {
	args := m.Called(ctx, req)
	result, _ := args.Get(0).(domain.Conversion)
	return result, args.Error(1)
}

func (m *MockService) ListUnits(category domain.Category) ([]domain.Unit, error) {
	args := m.Called(category)
	units, _ := args.Get(0).([]domain.Unit)
	return units, args.Error(1)
}

func (m *MockService) CurrencyCodes() ([]string, error) {
	args := m.Called()
	codes, _ := args.Get(0).([]string)
	return codes, args.Error(1)
}

func (m *MockService) Categories() []domain.Category {
	args := m.Called()
	categories, _ := args.Get(0).([]domain.Category)
	return categories
}

func (m *MockService) CacheStatus() domain.CacheStatus {
	args := m.Called()
	status, _ := args.Get(0).(domain.CacheStatus)
	return status
}

func newRequestWithCategory(method, target, category string, body []byte) *http.Request {
	var req *http.Request
	if body != nil {
		req = httptest.NewRequest(method, target, bytes.NewReader(body))
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("category", category)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

type errorJSON struct {
	Error string `json:"error"`
}

// --- Convert ---

func TestHandler_Convert_Success(t *testing.T) {
	mockService := new(MockService)
	h := NewConversionHandler(mockService)

	body := []byte(`{"value": 100, "from_unit": "Meter", "to_unit": " FOOT "}`)
	req := newRequestWithCategory(http.MethodPost, "/convert/Length", "Length", body)
	rr := httptest.NewRecorder()

	wantReq := domain.ConversionRequest{
		Category: domain.CategoryLength, FromUnit: "meter", ToUnit: "foot", Value: 100,
	}
	mockService.On("Convert", mock.Anything, wantReq).Return(domain.Conversion{
		Category: domain.CategoryLength, FromUnit: "meter", ToUnit: "foot", Value: 328.084,
	}, nil).Once()

	h.Convert(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	require.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	var res ConvertResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &res))
	require.InDelta(t, 100.0, res.OriginalValue, 1e-9)
	require.InDelta(t, 328.084, res.ConvertedValue, 1e-9)
	require.Equal(t, "meter", res.FromUnit)
	require.Equal(t, "foot", res.ToUnit)
	require.Equal(t, "length", res.Category)
	mockService.AssertExpectations(t)
}

func TestHandler_Convert_CurrencyCodesUpperCased(t *testing.T) {
	mockService := new(MockService)
	h := NewConversionHandler(mockService)

	body := []byte(`{"value": 100, "from_unit": "usd", "to_unit": "eur"}`)
	req := newRequestWithCategory(http.MethodPost, "/convert/currency", "currency", body)
	rr := httptest.NewRecorder()

	wantReq := domain.ConversionRequest{
		Category: domain.CategoryCurrency, FromUnit: "USD", ToUnit: "EUR", Value: 100,
	}
	mockService.On("Convert", mock.Anything, wantReq).Return(domain.Conversion{
		Category: domain.CategoryCurrency, FromUnit: "USD", ToUnit: "EUR", Value: 90,
	}, nil).Once()

	h.Convert(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	mockService.AssertExpectations(t)
}

func TestHandler_Convert_InvalidBody(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{name: "malformed json", body: `{"value": `},
		{name: "unknown field", body: `{"value": 1, "from_unit": "meter", "to_unit": "foot", "extra": true}`},
		{name: "wrong type", body: `{"value": "one", "from_unit": "meter", "to_unit": "foot"}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			mockService := new(MockService)
			h := NewConversionHandler(mockService)

			req := newRequestWithCategory(http.MethodPost, "/convert/length", "length", []byte(tc.body))
			rr := httptest.NewRecorder()

			h.Convert(rr, req)

			require.Equal(t, http.StatusBadRequest, rr.Code)
			mockService.AssertNotCalled(t, "Convert", mock.Anything, mock.Anything)
		})
	}
}

func TestHandler_Convert_ErrorMapping(t *testing.T) {
	cases := []struct {
		name       string
		serviceErr error
		wantStatus int
	}{
		{name: "unit not found", serviceErr: domain.ErrUnitNotFound, wantStatus: http.StatusBadRequest},
		{name: "category mismatch", serviceErr: domain.ErrCategoryMismatch, wantStatus: http.StatusBadRequest},
		{name: "invalid value", serviceErr: domain.ErrInvalidValue, wantStatus: http.StatusBadRequest},
		{name: "category not found", serviceErr: domain.ErrCategoryNotFound, wantStatus: http.StatusNotFound},
		{name: "fetch timeout", serviceErr: domain.ErrFetchTimeout, wantStatus: http.StatusGatewayTimeout},
		{name: "fetch unavailable", serviceErr: domain.ErrFetchUnavailable, wantStatus: http.StatusBadGateway},
		{name: "fetch parse", serviceErr: domain.ErrFetchParse, wantStatus: http.StatusBadGateway},
		{name: "snapshot missing", serviceErr: domain.ErrSnapshotMissing, wantStatus: http.StatusServiceUnavailable},
		{name: "unexpected", serviceErr: errors.New("boom"), wantStatus: http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			mockService := new(MockService)
			h := NewConversionHandler(mockService)

			body := []byte(`{"value": 1, "from_unit": "meter", "to_unit": "foot"}`)
			req := newRequestWithCategory(http.MethodPost, "/convert/length", "length", body)
			rr := httptest.NewRecorder()

			mockService.On("Convert", mock.Anything, mock.Anything).Return(domain.Conversion{}, tc.serviceErr).Once()

			h.Convert(rr, req)

			require.Equal(t, tc.wantStatus, rr.Code)
			var ej errorJSON
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &ej))
			require.NotEmpty(t, ej.Error)
			mockService.AssertExpectations(t)
		})
	}
}

// --- ListCategories ---

func TestHandler_ListCategories(t *testing.T) {
	mockService := new(MockService)
	h := NewConversionHandler(mockService)

	mockService.On("Categories").Return([]domain.Category{
		domain.CategoryCurrency, domain.CategoryLength,
	}).Once()

	req := httptest.NewRequest(http.MethodGet, "/units", nil)
	rr := httptest.NewRecorder()

	h.ListCategories(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	var res ListCategoriesResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &res))
	require.Equal(t, []string{"currency", "length"}, res.Categories)
}

// --- ListUnits ---

func TestHandler_ListUnits_StaticCategory(t *testing.T) {
	mockService := new(MockService)
	h := NewConversionHandler(mockService)

	mockService.On("ListUnits", domain.CategoryLength).Return([]domain.Unit{
		{Category: domain.CategoryLength, Symbol: "foot", Factor: 0.3048},
		{Category: domain.CategoryLength, Symbol: "meter", Factor: 1},
	}, nil).Once()

	req := newRequestWithCategory(http.MethodGet, "/units/length", "length", nil)
	rr := httptest.NewRecorder()

	h.ListUnits(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	var res ListUnitsResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &res))
	require.Equal(t, "length", res.Category)
	require.Len(t, res.Units, 2)
	require.Equal(t, "foot", res.Units[0].Symbol)
	require.False(t, res.Units[0].Base)
	require.True(t, res.Units[1].Base)
	mockService.AssertExpectations(t)
}

func TestHandler_ListUnits_UnknownCategory(t *testing.T) {
	mockService := new(MockService)
	h := NewConversionHandler(mockService)

	mockService.On("ListUnits", domain.Category("pressure")).Return(nil, domain.ErrCategoryNotFound).Once()

	req := newRequestWithCategory(http.MethodGet, "/units/pressure", "pressure", nil)
	rr := httptest.NewRecorder()

	h.ListUnits(rr, req)

	require.Equal(t, http.StatusNotFound, rr.Code)
	mockService.AssertExpectations(t)
}

func TestHandler_ListUnits_CurrencyCodes(t *testing.T) {
	mockService := new(MockService)
	h := NewConversionHandler(mockService)

	mockService.On("CurrencyCodes").Return([]string{"EUR", "JPY", "USD"}, nil).Once()

	req := newRequestWithCategory(http.MethodGet, "/units/currency", "currency", nil)
	rr := httptest.NewRecorder()

	h.ListUnits(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	var res ListUnitsResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &res))
	require.Equal(t, "currency", res.Category)
	require.Equal(t, []string{"EUR", "JPY", "USD"}, res.Codes)
	require.Empty(t, res.Units)
	mockService.AssertNotCalled(t, "ListUnits", mock.Anything)
}

func TestHandler_ListUnits_CurrencyNoSnapshotYet(t *testing.T) {
	mockService := new(MockService)
	h := NewConversionHandler(mockService)

	mockService.On("CurrencyCodes").Return(nil, domain.ErrSnapshotMissing).Once()

	req := newRequestWithCategory(http.MethodGet, "/units/currency", "currency", nil)
	rr := httptest.NewRecorder()

	h.ListUnits(rr, req)

	require.Equal(t, http.StatusServiceUnavailable, rr.Code)
	mockService.AssertExpectations(t)
}

// --- CurrencyStatus ---

func TestHandler_CurrencyStatus_Present(t *testing.T) {
	mockService := new(MockService)
	h := NewConversionHandler(mockService)

	fetchedAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	mockService.On("CacheStatus").Return(domain.CacheStatus{
		Present: true, FetchedAt: fetchedAt, Stale: true,
	}).Once()

	req := httptest.NewRequest(http.MethodGet, "/currency/status", nil)
	rr := httptest.NewRecorder()

	h.CurrencyStatus(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	var res CurrencyStatusResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &res))
	require.True(t, res.Present)
	require.True(t, res.Stale)
	require.NotNil(t, res.FetchedAt)
	require.True(t, res.FetchedAt.Equal(fetchedAt))
}

func TestHandler_CurrencyStatus_Missing(t *testing.T) {
	mockService := new(MockService)
	h := NewConversionHandler(mockService)

	mockService.On("CacheStatus").Return(domain.CacheStatus{}).Once()

	req := httptest.NewRequest(http.MethodGet, "/currency/status", nil)
	rr := httptest.NewRecorder()

	h.CurrencyStatus(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	var res CurrencyStatusResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &res))
	require.False(t, res.Present)
	require.Nil(t, res.FetchedAt)
}

// --- Root ---

func TestHandler_Root(t *testing.T) {
	h := NewConversionHandler(new(MockService))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rr := httptest.NewRecorder()

	h.Root(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	var res RootResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &res))
	require.Equal(t, "Unit Converter API", res.Service)
	require.Equal(t, "/healthz", res.Health)
}
