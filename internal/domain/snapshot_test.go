package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestRateSnapshot_Rate_BaseIsAlwaysOne(t *testing.T) {
	s := &RateSnapshot{Base: "USD", Rates: map[string]float64{"EUR": 0.9}, FetchedAt: time.Now()}

	rate, ok := s.Rate("USD")
	require.True(t, ok)
	require.Equal(t, 1.0, rate)

	rate, ok = s.Rate("EUR")
	require.True(t, ok)
	require.InDelta(t, 0.9, rate, 1e-12)

	_, ok = s.Rate("XXX")
	require.False(t, ok)
}

func TestRateSnapshot_Codes_IncludesBaseOnce(t *testing.T) {
	s := &RateSnapshot{Base: "USD", Rates: map[string]float64{"EUR": 0.9, "JPY": 150}}
	require.ElementsMatch(t, []string{"USD", "EUR", "JPY"}, s.Codes())

	withBase := &RateSnapshot{Base: "USD", Rates: map[string]float64{"USD": 1, "EUR": 0.9}}
	require.ElementsMatch(t, []string{"USD", "EUR"}, withBase.Codes())
}

func TestUnit_IsBase(t *testing.T) {
	require.True(t, Unit{Factor: 1}.IsBase())
	require.False(t, Unit{Factor: 0.3048}.IsBase())
	require.False(t, Unit{Factor: 1, Offset: -273.15}.IsBase())
}
