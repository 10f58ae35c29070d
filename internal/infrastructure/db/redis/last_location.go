package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/99minutos/geopoint/internal/core/domain"
)

// LastLocationStore keeps the latest report per device as JSON, with the
// location in its tagged wire form.
// Key format: location:last:<device_id>
type LastLocationStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewLastLocationStore creates a store; ttl <= 0 keeps entries forever.
func NewLastLocationStore(client *redis.Client, ttl time.Duration) *LastLocationStore {
	return &LastLocationStore{client: client, ttl: ttl}
}

// Put stores report as the device's last known location.
func (s *LastLocationStore) Put(ctx context.Context, report *domain.LocationReport) error {
	b, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("encode last location: %w", err)
	}
	ttl := s.ttl
	if ttl < 0 {
		ttl = 0
	}
	return s.client.Set(ctx, s.key(report.DeviceID), b, ttl).Err()
}

// Get returns domain.ErrLocationUnknown when nothing is stored for the device.
func (s *LastLocationStore) Get(ctx context.Context, deviceID string) (*domain.LocationReport, error) {
	b, err := s.client.Get(ctx, s.key(deviceID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domain.ErrLocationUnknown
		}
		return nil, fmt.Errorf("read last location: %w", err)
	}

	var report domain.LocationReport
	if err := json.Unmarshal(b, &report); err != nil {
		return nil, fmt.Errorf("decode last location: %w", err)
	}
	return &report, nil
}

func (s *LastLocationStore) key(deviceID string) string {
	return "location:last:" + deviceID
}
