// Package weatherstack resolves city names to coordinates with the
// Weatherstack current-weather API.
package weatherstack

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"eventsmanager/internal/domain"
)

// DefaultBaseURL is the Weatherstack current-weather endpoint.
const DefaultBaseURL = "http://api.weatherstack.com/current"

// StatusError is returned when Weatherstack answers with a non-2xx status.
type StatusError struct {
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("weatherstack api returned status: %d", e.StatusCode)
}

// ErrorDetail is the error object of an unsuccessful response.
type ErrorDetail struct {
	Code int    `json:"code"`
	Type string `json:"type"`
	Info string `json:"info"`
}

// FailedResponse is the body Weatherstack returns with "success": false.
// It becomes the payload of the resulting UpstreamServiceError.
type FailedResponse struct {
	Success bool        `json:"success"`
	Error   ErrorDetail `json:"error"`
}

// response covers both shapes. Successful responses omit "success".
type response struct {
	Success *bool       `json:"success"`
	Error   ErrorDetail `json:"error"`
	// Only the coordinates are read; Weatherstack sends them as strings.
	Location struct {
		Lat string `json:"lat"`
		Lon string `json:"lon"`
	} `json:"location"`
}

type client struct {
	http      *http.Client
	baseURL   string
	accessKey string
}

// NewClient returns a domain.Geocoder backed by Weatherstack. An empty baseURL
// uses DefaultBaseURL; a nil httpClient uses http.DefaultClient.
func NewClient(httpClient *http.Client, baseURL, accessKey string) domain.Geocoder {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &client{http: httpClient, baseURL: baseURL, accessKey: accessKey}
}

func (c *client) Locate(ctx context.Context, city string) (domain.Coordinates, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return domain.Coordinates{}, fmt.Errorf("invalid weatherstack url: %w", err)
	}
	q := u.Query()
	q.Set("access_key", c.accessKey)
	q.Set("query", city)
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return domain.Coordinates{}, fmt.Errorf("failed to create request: %w", err)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return domain.Coordinates{}, fmt.Errorf("failed to reach weatherstack: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return domain.Coordinates{}, &StatusError{StatusCode: resp.StatusCode}
	}

	var body response
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return domain.Coordinates{}, fmt.Errorf("failed to decode weatherstack response: %w", err)
	}
	if body.Success != nil && !*body.Success {
		return domain.Coordinates{}, &domain.UpstreamServiceError{
			Message: "Some internal services not working",
			Payload: FailedResponse{Success: false, Error: body.Error},
		}
	}

	lat, err := strconv.ParseFloat(body.Location.Lat, 64)
	if err != nil {
		return domain.Coordinates{}, fmt.Errorf("invalid latitude %q: %w", body.Location.Lat, err)
	}
	lon, err := strconv.ParseFloat(body.Location.Lon, 64)
	if err != nil {
		return domain.Coordinates{}, fmt.Errorf("invalid longitude %q: %w", body.Location.Lon, err)
	}
	return domain.Coordinates{Latitude: lat, Longitude: lon}, nil
}
