package coingate

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/eapache/go-resiliency/breaker"
	"github.com/kylycht/buysell/model"
	"github.com/kylycht/buysell/service"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/semaphore"
	"golang.org/x/time/rate"
)

const (
	DefaultURL string = "https://api.coingate.com/v2/rates/" // rates endpoint of CoinGate API
	userAgent  string = "buysell/1.0"
)

// Response is the part of the rates
// payload the exchange page reads
type Response struct {
	Merchant model.RateTable `json:"merchant"`
}

// Config of the CoinGate client
type Config struct {
	URL         string        // rates endpoint, DefaultURL when empty
	Timeout     time.Duration // per request timeout
	MaxInFlight int64         // concurrent requests to the API
}

type client struct {
	ratesURL    *url.URL            // endpoint for rates requests
	httpClient  *http.Client        // HTTP client used to communicate with the API.
	rateLimiter *rate.Limiter       // Rate limiter for coingate api
	sem         *semaphore.Weighted // bounds requests in flight
	breaker     *breaker.Breaker    // stops calling the API while it keeps failing
}

func New(cfg Config) (service.Rates, error) {
	raw := cfg.URL
	if raw == "" {
		raw = DefaultURL
	}

	ratesURL, err := url.Parse(raw)
	if err != nil {
		return nil, err
	}

	maxInFlight := cfg.MaxInFlight
	if maxInFlight <= 0 {
		maxInFlight = 10
	}

	c := &client{
		ratesURL:    ratesURL,
		rateLimiter: rate.NewLimiter(rate.Every(100*time.Millisecond), 20),
		sem:         semaphore.NewWeighted(maxInFlight),
		breaker:     breaker.New(5, 1, 30*time.Second),
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
			Transport: roundTripperFn(
				func(req *http.Request) (*http.Response, error) {
					req.Header.Set("User-Agent", userAgent)
					req.Header.Set("Accept", "application/json")

					return http.DefaultTransport.RoundTrip(req)
				},
			),
		},
	}

	return c, nil
}

func (c *client) Do(ctx context.Context, req *http.Request, v interface{}) error {
	if err := c.rateLimiter.Wait(ctx); err != nil {
		return err
	}

	if err := c.sem.Acquire(ctx, 1); err != nil {
		return err
	}
	defer c.sem.Release(1)

	log.Debug().Str("url", req.URL.String()).Msg("fetching information from API")

	// the caller giving up is not an upstream failure and must not trip the breaker
	var ctxErr error

	err := c.breaker.Run(func() error {
		err := c.fetch(req, v)
		if err != nil && ctx.Err() != nil {
			ctxErr = err
			return nil
		}

		return err
	})
	if ctxErr != nil {
		return ctxErr
	}

	return err
}

func (c *client) fetch(req *http.Request, v interface{}) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}

	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unable to fetch rates due to code: %d", resp.StatusCode)
	}

	switch v := v.(type) {
	case nil:
	case io.Writer:
		_, err = io.Copy(v, resp.Body)
	default:
		decErr := json.NewDecoder(resp.Body).Decode(v)
		if decErr == io.EOF {
			decErr = nil // ignore EOF errors caused by empty response body
		}
		if decErr != nil {
			err = decErr
		}
	}

	return err
}

// GetRates implements service.Rates.
// GET /v2/rates/
func (c *client) GetRates(ctx context.Context) (model.RateTable, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.ratesURL.String(), nil)
	if err != nil {
		return nil, err
	}

	r := &Response{}

	if err := c.Do(ctx, req, r); err != nil {
		return nil, fmt.Errorf("fetch rates: %w", err)
	}

	log.Debug().Int("cryptos", len(r.Merchant)).Msg("obtained merchant rates")

	return r.Merchant, nil
}

type roundTripperFn func(*http.Request) (*http.Response, error)

func (fn roundTripperFn) RoundTrip(r *http.Request) (*http.Response, error) {
	return fn(r)
}
