// Package weather fetches current conditions from third-party weather
// services and keeps the latest result per city.
package weather

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/Dan9191/unidash/internal/models"
)

// Provider returns the current weather for a city.
type Provider interface {
	Name() string
	Current(ctx context.Context, city string) (*models.Weather, error)
}

// Icon maps a condition description to an icon name.
func Icon(desc string) string {
	d := strings.ToLower(desc)
	switch {
	case strings.Contains(d, "sun") || strings.Contains(d, "clear"):
		return "sun"
	case strings.Contains(d, "cloud"):
		return "cloud"
	case strings.Contains(d, "rain"):
		return "cloud-showers-heavy"
	case strings.Contains(d, "snow"):
		return "snowflake"
	case strings.Contains(d, "thunder"):
		return "bolt"
	default:
		return "cloud-sun"
	}
}

// get performs a GET and returns the body of a 200 response.
func get(ctx context.Context, client *http.Client, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}
	return body, nil
}
