package referral

import (
	"errors"
	"fmt"
	"time"

	db "github.com/PrimeHarvest/PrimeHarvest-Backend/db/sqlc"
	"github.com/shopspring/decimal"
)

var (
	ErrAlreadyReferred  = errors.New("user already referred")
	ErrSelfReferral     = errors.New("users cannot refer themselves")
	ErrRewardNotFound   = errors.New("affiliate reward not found")
	ErrAlreadyProcessed = errors.New("affiliate reward was already processed")
	ErrInvalidCode      = errors.New("invalid referral code")
)

type RewardStatus string

const (
	RewardPending   RewardStatus = "pending"
	RewardProcessed RewardStatus = "processed"
)

type RewardModel struct {
	ID          int64           `json:"id"`
	UserID      int64           `json:"user_id"`
	Amount      decimal.Decimal `json:"amount"`
	Level       int             `json:"level"`
	Status      RewardStatus    `json:"status"`
	ProcessedAt *time.Time      `json:"processed_at,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
}

type ReferralModel struct {
	ID         int64     `json:"id"`
	ReferrerID int64     `json:"referrer_id"`
	RefereeID  int64     `json:"referee_id"`
	Level      int       `json:"level"`
	CreatedAt  time.Time `json:"created_at"`
}

func ToRewardModel(r db.AffiliateReward) (*RewardModel, error) {
	amount, err := decimal.NewFromString(r.Amount)
	if err != nil {
		return nil, fmt.Errorf("parse reward amount: %w", err)
	}

	model := &RewardModel{
		ID:        r.ID,
		UserID:    r.UserID,
		Amount:    amount,
		Level:     int(r.Level),
		Status:    RewardStatus(r.Status),
		CreatedAt: r.CreatedAt,
	}

	if r.ProcessedAt.Valid {
		at := r.ProcessedAt.Time
		model.ProcessedAt = &at
	}

	return model, nil
}

func ToRewardModels(rewards []db.AffiliateReward) ([]RewardModel, error) {
	models := make([]RewardModel, len(rewards))
	for i, r := range rewards {
		m, err := ToRewardModel(r)
		if err != nil {
			return nil, err
		}
		models[i] = *m
	}
	return models, nil
}

func ToReferralModel(r db.UserReferral) ReferralModel {
	return ReferralModel{
		ID:         r.ID,
		ReferrerID: r.ReferrerID,
		RefereeID:  r.RefereeID,
		Level:      int(r.Level),
		CreatedAt:  r.CreatedAt,
	}
}
