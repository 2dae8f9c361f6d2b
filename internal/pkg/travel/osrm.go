package travel

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/loopline/dispatch/internal/pkg/circuitbreaker"
	"github.com/loopline/dispatch/internal/pkg/logger"
	"github.com/loopline/dispatch/internal/pkg/models"
)

// OSRMProvider queries an OSRM routing engine for driving durations. Calls
// run through a circuit breaker so a down engine fails fast instead of
// stalling every planning pass.
type OSRMProvider struct {
	client  *http.Client
	baseURL string
	breaker *circuitbreaker.CircuitBreaker
}

// NewOSRMProvider creates a provider against the configured OSRM base URL.
func NewOSRMProvider(config models.TravelConfig, zapLogger *logger.ZapLogger) *OSRMProvider {
	timeout := time.Duration(config.RequestTimeout) * time.Second
	if timeout <= 0 {
		timeout = 5 * time.Second
	}

	return &OSRMProvider{
		client:  &http.Client{Timeout: timeout},
		baseURL: config.OSRMBaseURL,
		breaker: circuitbreaker.New(circuitbreaker.DefaultConfig("osrm"), zapLogger),
	}
}

type osrmRouteResponse struct {
	Code   string `json:"code"`
	Routes []struct {
		Duration float64 `json:"duration"`
		Distance float64 `json:"distance"`
	} `json:"routes"`
}

// Duration returns the fastest driving duration between the two points.
func (p *OSRMProvider) Duration(ctx context.Context, from, to models.Coordinates) (time.Duration, error) {
	var result time.Duration

	err := p.breaker.Execute(ctx, func(ctx context.Context) error {
		d, err := p.route(ctx, from, to)
		if err != nil {
			return err
		}
		result = d
		return nil
	})
	if err != nil {
		return 0, err
	}
	return result, nil
}

func (p *OSRMProvider) route(ctx context.Context, from, to models.Coordinates) (time.Duration, error) {
	// OSRM takes coordinates longitude-first.
	url := fmt.Sprintf("%s/route/v1/driving/%f,%f;%f,%f?overview=false",
		p.baseURL, from.Longitude, from.Latitude, to.Longitude, to.Latitude)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, fmt.Errorf("create request: %w", err)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("osrm request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return 0, fmt.Errorf("osrm returned status %d: %s", resp.StatusCode, string(body))
	}

	var routeResp osrmRouteResponse
	if err := json.NewDecoder(resp.Body).Decode(&routeResp); err != nil {
		return 0, fmt.Errorf("decode osrm response: %w", err)
	}
	if routeResp.Code != "Ok" || len(routeResp.Routes) == 0 {
		return 0, fmt.Errorf("osrm found no route (code %s)", routeResp.Code)
	}

	return time.Duration(routeResp.Routes[0].Duration * float64(time.Second)), nil
}
