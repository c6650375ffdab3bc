package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Wallet snapshots cached for dashboard reads. Display only; balance
// decisions always go to the database.

const walletSnapshotTTL = 30 * time.Second

var ErrSnapshotMiss = errors.New("wallet snapshot not cached")

func walletSnapshotKey(userID int64) string {
	return fmt.Sprintf("wallet_snapshot:%d", userID)
}

func (r *RedisService) CacheWalletSnapshot(ctx context.Context, userID int64, snapshot any) error {
	payload, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("marshal wallet snapshot: %w", err)
	}
	return r.client.Set(ctx, walletSnapshotKey(userID), payload, walletSnapshotTTL).Err()
}

func (r *RedisService) GetWalletSnapshot(ctx context.Context, userID int64, out any) error {
	payload, err := r.client.Get(ctx, walletSnapshotKey(userID)).Result()
	if errors.Is(err, redis.Nil) {
		return ErrSnapshotMiss
	} else if err != nil {
		return fmt.Errorf("get wallet snapshot: %w", err)
	}
	return json.Unmarshal([]byte(payload), out)
}
