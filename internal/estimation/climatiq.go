// Package estimation computes a monthly CO2-kg footprint baseline from
// survey answers, using the Climatiq estimation API when available and
// closed-form fallback arithmetic otherwise.
package estimation

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// DefaultTimeout bounds each estimation API call. On timeout the caller
// falls back immediately; there is no retry.
const DefaultTimeout = 10 * time.Second

// defaultBaseURL is the Climatiq estimate endpoint.
const defaultBaseURL = "https://api.climatiq.io/data/v1"

// Climatiq activity IDs for the commute and flight estimates.
const (
	activityCar = "passenger_vehicle-vehicle_type_car-fuel_source_na-engine_size_na-vehicle_age_na-vehicle_weight_na"
	activityRail   = "passenger_train-route_type_commuter_rail"
	activityFlight = "passenger_flight-route_type_domestic-aircraft_type_na-distance_na-class_na-rf_included"
)

// Client calls an external emission-estimation service. A request carries an
// activity descriptor and a metric distance; the response is kg CO2e.
type Client interface {
	Estimate(ctx context.Context, activityID string, distanceKm float64) (float64, error)
}

// APIError represents a non-success response from the estimation service.
type APIError struct {
	StatusCode int
	Message    string
	Cause      error
}

func (e *APIError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("estimation API error: %s: %v", e.Message, e.Cause)
	}
	if e.StatusCode != 0 {
		return fmt.Sprintf("estimation API error: %s (status %d)", e.Message, e.StatusCode)
	}
	return fmt.Sprintf("estimation API error: %s", e.Message)
}

func (e *APIError) Unwrap() error {
	return e.Cause
}

// ClimatiqClient implements Client against the Climatiq HTTP API.
type ClimatiqClient struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// Option configures a ClimatiqClient.
type Option func(*ClimatiqClient)

// WithBaseURL overrides the API endpoint. Used by tests.
func WithBaseURL(url string) Option {
	return func(c *ClimatiqClient) {
		c.baseURL = url
	}
}

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *ClimatiqClient) {
		c.httpClient = client
	}
}

// NewClimatiqClient creates a Climatiq API client.
func NewClimatiqClient(apiKey string, opts ...Option) (*ClimatiqClient, error) {
	if apiKey == "" {
		return nil, &APIError{Message: "API key is required"}
	}

	c := &ClimatiqClient{
		apiKey:     apiKey,
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{Timeout: DefaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// estimateRequest is the Climatiq /estimate request body.
type estimateRequest struct {
	EmissionFactor emissionFactor     `json:"emission_factor"`
	Parameters     estimateParameters `json:"parameters"`
}

type emissionFactor struct {
	ActivityID string `json:"activity_id"`
	Source     string `json:"source"`
	Region     string `json:"region"`
	Year       string `json:"year"`
}

type estimateParameters struct {
	Distance     float64 `json:"distance"`
	DistanceUnit string  `json:"distance_unit"`
}

// estimateResponse is the subset of the Climatiq response we read.
type estimateResponse struct {
	CO2e float64 `json:"co2e"`
}

// Estimate requests a CO2e figure for an activity over a metric distance.
// Any transport error, timeout, or non-200 status is returned as an APIError;
// the engine treats every error identically by using the fallback table.
func (c *ClimatiqClient) Estimate(ctx context.Context, activityID string, distanceKm float64) (float64, error) {
	body, err := json.Marshal(estimateRequest{
		EmissionFactor: emissionFactor{
			ActivityID: activityID,
			Source:     "EPA",
			Region:     "US",
			Year:       "2024",
		},
		Parameters: estimateParameters{
			Distance:     distanceKm,
			DistanceUnit: "km",
		},
	})
	if err != nil {
		return 0, &APIError{Message: "failed to encode request", Cause: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/estimate", bytes.NewReader(body))
	if err != nil {
		return 0, &APIError{Message: "failed to create request", Cause: err}
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, &APIError{Message: "request failed", Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return 0, &APIError{StatusCode: resp.StatusCode, Message: "non-success status"}
	}

	var parsed estimateResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return 0, &APIError{Message: "failed to decode response", Cause: err}
	}

	return parsed.CO2e, nil
}
