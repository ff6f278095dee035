package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// scanDedupTTL is the window within which a repeated (parcel, status) scan is
// considered the same physical scan. Barcode guns routinely double-fire.
const scanDedupTTL = 30 * time.Second

// ScanDedup provides idempotency checks for warehouse barcode scans.
// Key format: scan:<tracking_number>:<status>
type ScanDedup struct {
	client *redis.Client
}

// NewScanDedup creates a ScanDedup wrapping the given Redis client.
func NewScanDedup(client *redis.Client) *ScanDedup {
	return &ScanDedup{client: client}
}

// IsDuplicate reports whether the same scan was already recorded within the TTL.
func (d *ScanDedup) IsDuplicate(ctx context.Context, trackingNumber, status string) (bool, error) {
	n, err := d.client.Exists(ctx, d.key(trackingNumber, status)).Result()
	if err != nil {
		return false, fmt.Errorf("scan dedup check: %w", err)
	}
	return n > 0, nil
}

// Mark records that this scan has been processed (expires after scanDedupTTL).
func (d *ScanDedup) Mark(ctx context.Context, trackingNumber, status string) error {
	return d.client.Set(ctx, d.key(trackingNumber, status), "1", scanDedupTTL).Err()
}

func (d *ScanDedup) key(trackingNumber, status string) string {
	return fmt.Sprintf("scan:%s:%s", trackingNumber, status)
}
