package secrets

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Store fetches raw secret payloads by identifier.
type Store interface {
	GetSecretValue(ctx context.Context, secretID string) ([]byte, error)
}

// HTTPStore talks to the remote secret store over its HTTP surface.
// A single GET per resolution, no retries: credential resolution happens once
// at process start and transient failures should surface to the operator.
type HTTPStore struct {
	baseURL string
	client  *http.Client
}

// NewHTTPStore builds a store client rooted at baseURL. The timeout bounds
// the whole fetch; zero falls back to 10s.
func NewHTTPStore(baseURL string, timeout time.Duration) *HTTPStore {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &HTTPStore{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
	}
}

// GetSecretValue fetches the payload for the given identifier.
func (s *HTTPStore) GetSecretValue(ctx context.Context, secretID string) ([]byte, error) {
	if s.baseURL == "" {
		return nil, fmt.Errorf("secret store base URL is not configured")
	}

	endpoint := s.baseURL + "/v1/secrets/" + url.PathEscape(secretID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("building secret request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching secret %q: %w", secretID, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetching secret %q: store replied %d", secretID, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading secret %q payload: %w", secretID, err)
	}
	return body, nil
}
