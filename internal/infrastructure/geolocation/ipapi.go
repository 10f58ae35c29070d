package geolocation

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/99minutos/geopoint/internal/core/domain"
)

const (
	DefaultIPAPIEndpoint = "http://ip-api.com/json/?fields=status,message,lat,lon"
	defaultHTTPTimeout   = 5 * time.Second
)

// ErrPositionUnavailable is returned when a provider cannot determine a position.
var ErrPositionUnavailable = errors.New("position unavailable")

type httpStatusError struct {
	Code int
	Body string
}

func (e *httpStatusError) Error() string {
	return fmt.Sprintf("code %d: %s", e.Code, e.Body)
}

type ipapiResponse struct {
	Status  string  `json:"status"`
	Message string  `json:"message"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
}

// IPAPIProvider resolves the host position from its public IP using an
// ip-api compatible endpoint. It performs a single request per call.
type IPAPIProvider struct {
	client   *http.Client
	endpoint string
}

// NewIPAPIProvider returns a provider for endpoint; empty endpoint and
// non-positive timeout fall back to defaults.
func NewIPAPIProvider(endpoint string, timeout time.Duration) *IPAPIProvider {
	if endpoint == "" {
		endpoint = DefaultIPAPIEndpoint
	}
	if timeout <= 0 {
		timeout = defaultHTTPTimeout
	}
	return &IPAPIProvider{
		client:   &http.Client{Timeout: timeout},
		endpoint: endpoint,
	}
}

func (p *IPAPIProvider) CurrentPosition(ctx context.Context) (domain.Position, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.endpoint, nil)
	if err != nil {
		return domain.Position{}, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return domain.Position{}, fmt.Errorf("ip geolocation: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return domain.Position{}, fmt.Errorf("ip geolocation: %w", &httpStatusError{
			Code: resp.StatusCode,
			Body: strings.TrimSpace(string(b)),
		})
	}

	var decoded ipapiResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return domain.Position{}, fmt.Errorf("decode ip geolocation response: %w", err)
	}

	if decoded.Status != "success" {
		return domain.Position{}, fmt.Errorf("%w: %s", ErrPositionUnavailable, decoded.Message)
	}

	return domain.Position{Latitude: decoded.Lat, Longitude: decoded.Lon}, nil
}
