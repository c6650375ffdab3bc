package referral

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	db "github.com/PrimeHarvest/PrimeHarvest-Backend/db/sqlc"
	"github.com/PrimeHarvest/PrimeHarvest-Backend/services/fee"
	"github.com/PrimeHarvest/PrimeHarvest-Backend/services/monitoring/logging"
	"github.com/shopspring/decimal"
)

const maxReferralDepth = 3

type referralStore interface {
	CreateUserReferral(ctx context.Context, arg db.CreateUserReferralParams) (db.UserReferral, error)
	GetReferralByRefereeID(ctx context.Context, refereeID int64) (db.UserReferral, error)
	GetReferrerChain(ctx context.Context, refereeID int64) ([]db.UserReferral, error)
	ListUserReferrals(ctx context.Context, referrerID int64) ([]db.UserReferral, error)
	CreateAffiliateReward(ctx context.Context, arg db.CreateAffiliateRewardParams) (db.AffiliateReward, error)
	GetAffiliateReward(ctx context.Context, id int64) (db.AffiliateReward, error)
	ListAffiliateRewardsByStatus(ctx context.Context, arg db.ListAffiliateRewardsByStatusParams) ([]db.AffiliateReward, error)
	ListUserAffiliateRewards(ctx context.Context, userID int64) ([]db.AffiliateReward, error)
	ProcessRewardTx(ctx context.Context, rewardID int64) (db.ProcessRewardTxResult, error)
}

type Service struct {
	store  referralStore
	codes  *CodeGenerator
	logger *logging.Logger
}

func NewService(store referralStore, codes *CodeGenerator, logger *logging.Logger) *Service {
	return &Service{
		store:  store,
		codes:  codes,
		logger: logger,
	}
}

// TrackReferral links a new user to their referrer and extends the
// chain up to three levels deep.
func (s *Service) TrackReferral(ctx context.Context, referrerID, refereeID int64) ([]ReferralModel, error) {
	if referrerID == refereeID {
		return nil, ErrSelfReferral
	}

	_, err := s.store.GetReferralByRefereeID(ctx, refereeID)
	if err == nil {
		return nil, ErrAlreadyReferred
	} else if !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("check existing referral: %w", err)
	}

	links := []ReferralModel{}

	direct, err := s.store.CreateUserReferral(ctx, db.CreateUserReferralParams{
		ReferrerID: referrerID,
		RefereeID:  refereeID,
		Level:      1,
	})
	if err != nil {
		return nil, fmt.Errorf("create referral: %w", err)
	}
	links = append(links, ToReferralModel(direct))

	// The referrer's own ancestors become level-2 and level-3 referrers
	// of the new user.
	ancestors, err := s.store.GetReferrerChain(ctx, referrerID)
	if err != nil {
		return nil, fmt.Errorf("get referrer chain: %w", err)
	}
	for _, a := range ancestors {
		level := a.Level + 1
		if level > maxReferralDepth {
			continue
		}
		link, err := s.store.CreateUserReferral(ctx, db.CreateUserReferralParams{
			ReferrerID: a.ReferrerID,
			RefereeID:  refereeID,
			Level:      level,
		})
		if err != nil {
			return nil, fmt.Errorf("extend referral chain: %w", err)
		}
		links = append(links, ToReferralModel(link))
	}

	return links, nil
}

// ResolveCode maps a referral code back to the referring user.
func (s *Service) ResolveCode(code string) (int64, error) {
	return s.codes.Decode(code)
}

// Code returns the user's shareable referral code.
func (s *Service) Code(userID int64) (string, error) {
	return s.codes.Encode(userID)
}

// Accrue creates a pending reward worth the level percentage (5%, 2%,
// 1%) of the base amount. Nothing is credited until Process.
func (s *Service) Accrue(ctx context.Context, userID int64, level int, baseAmount decimal.Decimal) (*RewardModel, error) {
	amount, err := fee.RewardAmount(baseAmount, level)
	if err != nil {
		return nil, err
	}
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("reward amount must be positive")
	}

	reward, err := s.store.CreateAffiliateReward(ctx, db.CreateAffiliateRewardParams{
		UserID: userID,
		Amount: amount.String(),
		Level:  int16(level),
	})
	if err != nil {
		return nil, fmt.Errorf("create reward: %w", err)
	}

	s.logger.WithFields(map[string]interface{}{
		"user_id": userID,
		"level":   level,
		"amount":  amount.String(),
	}).Info("affiliate reward accrued")

	return ToRewardModel(reward)
}

// GrantLoanBonus accrues the flat loan bonus to every referrer of the
// applicant. Users without a referrer chain earn nothing.
func (s *Service) GrantLoanBonus(ctx context.Context, applicantID int64) error {
	chain, err := s.store.GetReferrerChain(ctx, applicantID)
	if err != nil {
		return fmt.Errorf("get referrer chain: %w", err)
	}

	for _, link := range chain {
		_, err := s.store.CreateAffiliateReward(ctx, db.CreateAffiliateRewardParams{
			UserID: link.ReferrerID,
			Amount: fee.LoanBonusAmount.String(),
			Level:  link.Level,
		})
		if err != nil {
			return fmt.Errorf("create loan bonus reward: %w", err)
		}
	}

	return nil
}

// Process credits a pending reward to its wallet with the matching
// ledger row. Processing twice credits exactly once.
func (s *Service) Process(ctx context.Context, rewardID int64) (*RewardModel, error) {
	result, err := s.store.ProcessRewardTx(ctx, rewardID)
	if errors.Is(err, db.ErrRewardProcessed) {
		if _, getErr := s.store.GetAffiliateReward(ctx, rewardID); errors.Is(getErr, sql.ErrNoRows) {
			return nil, ErrRewardNotFound
		}
		return nil, ErrAlreadyProcessed
	} else if err != nil {
		return nil, fmt.Errorf("process reward: %w", err)
	}

	s.logger.WithFields(map[string]interface{}{
		"reward_id": rewardID,
		"user_id":   result.Reward.UserID,
	}).Info("affiliate reward processed")

	return ToRewardModel(result.Reward)
}

// ListPending feeds the admin processing queue.
func (s *Service) ListPending(ctx context.Context, limit, offset int32) ([]RewardModel, error) {
	rewards, err := s.store.ListAffiliateRewardsByStatus(ctx, db.ListAffiliateRewardsByStatusParams{
		Status: db.RewardStatusPending,
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		return nil, fmt.Errorf("list pending rewards: %w", err)
	}
	return ToRewardModels(rewards)
}

func (s *Service) ListUserRewards(ctx context.Context, userID int64) ([]RewardModel, error) {
	rewards, err := s.store.ListUserAffiliateRewards(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list user rewards: %w", err)
	}
	return ToRewardModels(rewards)
}

func (s *Service) ListUserReferrals(ctx context.Context, referrerID int64) ([]ReferralModel, error) {
	refs, err := s.store.ListUserReferrals(ctx, referrerID)
	if err != nil {
		return nil, fmt.Errorf("list user referrals: %w", err)
	}
	models := make([]ReferralModel, len(refs))
	for i, r := range refs {
		models[i] = ToReferralModel(r)
	}
	return models, nil
}
