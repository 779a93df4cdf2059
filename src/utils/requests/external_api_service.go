package requests

import (
	"context"
	"net/http"
	"net/url"
	"time"
)

// ExternalAPIService is a small helper for calling third-party HTTP APIs.
// It owns a single long-lived http.Client shared by every request.
type ExternalAPIService struct {
	Client *http.Client
}

// NewExternalAPIService creates a new instance of ExternalAPIService.
// A nil client falls back to a default one with a request timeout.
func NewExternalAPIService(client *http.Client) *ExternalAPIService {
	if client == nil {
		client = &http.Client{Timeout: 15 * time.Second}
	}
	return &ExternalAPIService{Client: client}
}

// makeRequest is a helper function to make HTTP requests, supporting optional query parameters
func (s *ExternalAPIService) makeRequest(ctx context.Context, method, endpoint string, params url.Values) (*http.Response, error) {
	if params != nil {
		endpoint = endpoint + "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	return s.Client.Do(req)
}

// Get makes a GET request to the external service, accepting optional query parameters
func (s *ExternalAPIService) Get(ctx context.Context, endpoint string, params url.Values) (*http.Response, error) {
	return s.makeRequest(ctx, "GET", endpoint, params)
}
