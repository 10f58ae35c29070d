package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const dedupTTL = time.Hour

// DedupChecker provides idempotency checks for location reports backed by Redis.
// Key format: dedup:<device_id>:<unix_nano_timestamp>
type DedupChecker struct {
	client *redis.Client
}

// NewDedupChecker creates a DedupChecker wrapping the given Redis client.
func NewDedupChecker(client *redis.Client) *DedupChecker {
	return &DedupChecker{client: client}
}

// IsDuplicate reports whether a report with this device and timestamp was already processed.
func (d *DedupChecker) IsDuplicate(ctx context.Context, deviceID string, ts time.Time) (bool, error) {
	n, err := d.client.Exists(ctx, d.key(deviceID, ts)).Result()
	if err != nil {
		return false, fmt.Errorf("dedup check: %w", err)
	}
	return n > 0, nil
}

// Mark records that this report has been processed (expires after dedupTTL).
func (d *DedupChecker) Mark(ctx context.Context, deviceID string, ts time.Time) error {
	return d.client.Set(ctx, d.key(deviceID, ts), "1", dedupTTL).Err()
}

func (d *DedupChecker) key(deviceID string, ts time.Time) string {
	return fmt.Sprintf("dedup:%s:%d", deviceID, ts.UnixNano())
}
