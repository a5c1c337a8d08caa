package routing

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"dispatch/internal/entities"
	"dispatch/internal/service/route"
	retrierconfig "dispatch/pkg/retrier"
	"dispatch/pkg/retrier/backoff_adapter"
)

const (
	providerName = "routing-provider"

	// Ответ провайдера ограничен мегабайтом: закодированный путь
	// длинной доставки укладывается с запасом.
	maxResponseBytes = 1 << 20
)

const (
	initialInterval = 100 * time.Millisecond
	maxInterval     = 2 * time.Second
	maxElapsedTime  = 1 * time.Second
	randomization   = 0.5
	multiplier      = 2.0
)

// Gateway - HTTP-клиент внешнего провайдера маршрутизации.
// Любой исход кроме валидного 2xx-ответа схлопывается в
// route.ErrEstimationFailed: провайдер для системы необязателен.
type Gateway struct {
	client         httpDoer
	retrier        retrier
	estimateURL    string
	requestTimeout time.Duration
}

func New(client httpDoer, estimateURL string, requestTimeout time.Duration) *Gateway {
	retryConfig := retrierconfig.Config{
		InitialInterval: initialInterval,
		MaxInterval:     maxInterval,
		MaxElapsedTime:  maxElapsedTime,
		Randomization:   randomization,
		Multiplier:      multiplier,
		ShouldRetry:     isRetryableError,
	}

	return &Gateway{
		client:         client,
		retrier:        backoff_adapter.New(retryConfig),
		estimateURL:    estimateURL,
		requestTimeout: requestTimeout,
	}
}

func (g *Gateway) Estimate(ctx context.Context, origin, destination entities.GeoPoint) (*entities.RouteEstimate, error) {
	body, err := json.Marshal(toEstimateRequest(origin, destination))
	if err != nil {
		return nil, fmt.Errorf("gateway routing, marshal request: %w", err)
	}

	var resp estimateResponse

	err = g.executeWithMetrics(ctx, "Estimate", func(ctx context.Context) error {
		return g.doEstimate(ctx, body, &resp)
	})
	if err != nil {
		return nil, fmt.Errorf("gateway routing, estimate: %w: %w", route.ErrEstimationFailed, err)
	}

	return toDomain(resp), nil
}

func (g *Gateway) doEstimate(ctx context.Context, body []byte, out *estimateResponse) error {
	ctx, cancel := context.WithTimeout(ctx, g.requestTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.estimateURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		// тело дочитывается ради keep-alive
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxResponseBytes))
		return &statusError{code: resp.StatusCode}
	}

	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	if len(out.Path) == 0 || out.DurationSeconds < 0 {
		return fmt.Errorf("malformed response: %d points, %d seconds", len(out.Path), out.DurationSeconds)
	}

	return nil
}

type statusError struct {
	code int
}

func (e *statusError) Error() string {
	return fmt.Sprintf("unexpected status %d", e.code)
}

// Ретраи: 429, 5xx и сетевые сбои. Прочие 4xx и мусор в теле
// повторять бессмысленно.
func isRetryableError(err error) bool {
	if err == nil {
		return false
	}

	var statusErr *statusError
	if errors.As(err, &statusErr) {
		return statusErr.code == http.StatusTooManyRequests ||
			statusErr.code >= http.StatusInternalServerError
	}

	var netErr interface{ Timeout() bool }
	if errors.As(err, &netErr) {
		return true
	}

	return errors.Is(err, context.DeadlineExceeded)
}

func (g *Gateway) executeWithMetrics(ctx context.Context, method string, fn func(context.Context) error) error {
	var attempt uint64
	start := time.Now()

	err := g.retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		attempt++
		return fn(ctx)
	})

	code := getStatusLabel(err)
	GatewayRequestDuration.WithLabelValues(providerName, method, code).Observe(time.Since(start).Seconds())

	if attempt > 1 {
		GatewayRetriesTotal.WithLabelValues(providerName, method, code).Inc()
	}

	return err
}

func getStatusLabel(err error) string {
	if err == nil {
		return "200"
	}

	var statusErr *statusError
	if errors.As(err, &statusErr) {
		return fmt.Sprintf("%d", statusErr.code)
	}

	return "network"
}
