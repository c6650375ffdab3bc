package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
)

// Daily withdrawal volume per user, advisory figures for the admin
// dashboard. The ledger stays the source of truth.

func dailyWithdrawalKey(userID int64) string {
	return fmt.Sprintf("daily_withdrawals:%d:%s", userID, time.Now().Format("2006-01-02"))
}

// TrackDailyWithdrawal adds amount to today's running total for the user.
func (r *RedisService) TrackDailyWithdrawal(ctx context.Context, userID int64, amount decimal.Decimal) error {
	key := dailyWithdrawalKey(userID)

	current, err := r.client.Get(ctx, key).Result()
	total := amount
	if err == nil {
		parsed, parseErr := decimal.NewFromString(current)
		if parseErr != nil {
			return fmt.Errorf("parse daily total: %w", parseErr)
		}
		total = parsed.Add(amount)
	} else if !errors.Is(err, redis.Nil) {
		return fmt.Errorf("get daily total: %w", err)
	}

	if err := r.client.Set(ctx, key, total.String(), 0).Err(); err != nil {
		return fmt.Errorf("store daily total: %w", err)
	}

	// Expire at end of day
	midnight := time.Now().Add(24 * time.Hour).Truncate(24 * time.Hour)
	if err := r.client.ExpireAt(ctx, key, midnight).Err(); err != nil {
		return fmt.Errorf("set daily total expiry: %w", err)
	}

	return nil
}

// GetDailyWithdrawals returns today's running total for the user.
func (r *RedisService) GetDailyWithdrawals(ctx context.Context, userID int64) (decimal.Decimal, error) {
	val, err := r.client.Get(ctx, dailyWithdrawalKey(userID)).Result()
	if errors.Is(err, redis.Nil) {
		return decimal.Zero, nil
	} else if err != nil {
		return decimal.Zero, err
	}
	return decimal.NewFromString(val)
}
