package httpclient

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"unitconv/internal/domain"
)

// ExchangeRateClient fetches exchange rates from an exchangerate-api style
// provider: GET {baseURL}/{base} returns {"base": "...", "rates": {...}}.
// It makes a single attempt per call; retry policy belongs to the caller.
type ExchangeRateClient struct {
	http    *http.Client
	baseURL string
}

func NewExchangeRateClient(httpClient *http.Client, baseURL string) *ExchangeRateClient {
	return &ExchangeRateClient{http: httpClient, baseURL: baseURL}
}

type apiResponse struct {
	Base  string             `json:"base"`
	Rates map[string]float64 `json:"rates"`
}

func (c *ExchangeRateClient) FetchRates(ctx context.Context, base string) (*domain.RateSnapshot, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("%w: bad base URL: %v", domain.ErrFetchUnavailable, err)
	}
	u.Path = strings.TrimSuffix(u.Path, "/") + "/" + base

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request for base %q: %v", domain.ErrFetchUnavailable, base, err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		if isTimeout(err) {
			return nil, fmt.Errorf("%w: base %q: %v", domain.ErrFetchTimeout, base, err)
		}
		return nil, fmt.Errorf("%w: base %q: %v", domain.ErrFetchUnavailable, base, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: unexpected status %d for base %q", domain.ErrFetchUnavailable, resp.StatusCode, base)
	}

	var body apiResponse
	if err = json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response for base %q: %v", domain.ErrFetchParse, base, err)
	}
	if len(body.Rates) == 0 {
		return nil, fmt.Errorf("%w: response for base %q carries no rates", domain.ErrFetchParse, base)
	}

	return &domain.RateSnapshot{
		Base:      base,
		Rates:     body.Rates,
		FetchedAt: time.Now(),
	}, nil
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
