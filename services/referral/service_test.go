package referral_test

import (
	"context"
	"database/sql"
	"io"
	"sync"
	"testing"

	db "github.com/PrimeHarvest/PrimeHarvest-Backend/db/sqlc"
	"github.com/PrimeHarvest/PrimeHarvest-Backend/services/monitoring/logging"
	"github.com/PrimeHarvest/PrimeHarvest-Backend/services/referral"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *logging.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return &logging.Logger{Logger: l}
}

func d(s string) decimal.Decimal {
	v, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return v
}

type fakeReferralStore struct {
	mu           sync.Mutex
	referrals    []db.UserReferral
	rewards      map[int64]db.AffiliateReward
	balances     map[int64]decimal.Decimal
	nextReferral int64
	nextReward   int64
}

func newFakeReferralStore() *fakeReferralStore {
	return &fakeReferralStore{
		rewards:      make(map[int64]db.AffiliateReward),
		balances:     make(map[int64]decimal.Decimal),
		nextReferral: 1,
		nextReward:   1,
	}
}

func (f *fakeReferralStore) CreateUserReferral(ctx context.Context, arg db.CreateUserReferralParams) (db.UserReferral, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	r := db.UserReferral{
		ID:         f.nextReferral,
		ReferrerID: arg.ReferrerID,
		RefereeID:  arg.RefereeID,
		Level:      arg.Level,
	}
	f.nextReferral++
	f.referrals = append(f.referrals, r)
	return r, nil
}

func (f *fakeReferralStore) GetReferralByRefereeID(ctx context.Context, refereeID int64) (db.UserReferral, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, r := range f.referrals {
		if r.RefereeID == refereeID && r.Level == 1 {
			return r, nil
		}
	}
	return db.UserReferral{}, sql.ErrNoRows
}

func (f *fakeReferralStore) GetReferrerChain(ctx context.Context, refereeID int64) ([]db.UserReferral, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var chain []db.UserReferral
	for level := int16(1); level <= 3; level++ {
		for _, r := range f.referrals {
			if r.RefereeID == refereeID && r.Level == level {
				chain = append(chain, r)
			}
		}
	}
	return chain, nil
}

func (f *fakeReferralStore) ListUserReferrals(ctx context.Context, referrerID int64) ([]db.UserReferral, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []db.UserReferral
	for _, r := range f.referrals {
		if r.ReferrerID == referrerID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeReferralStore) CreateAffiliateReward(ctx context.Context, arg db.CreateAffiliateRewardParams) (db.AffiliateReward, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	r := db.AffiliateReward{
		ID:     f.nextReward,
		UserID: arg.UserID,
		Amount: arg.Amount,
		Level:  arg.Level,
		Status: db.RewardStatusPending,
	}
	f.nextReward++
	f.rewards[r.ID] = r
	return r, nil
}

func (f *fakeReferralStore) GetAffiliateReward(ctx context.Context, id int64) (db.AffiliateReward, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	r, ok := f.rewards[id]
	if !ok {
		return db.AffiliateReward{}, sql.ErrNoRows
	}
	return r, nil
}

func (f *fakeReferralStore) ListAffiliateRewardsByStatus(ctx context.Context, arg db.ListAffiliateRewardsByStatusParams) ([]db.AffiliateReward, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []db.AffiliateReward
	for id := int64(1); id < f.nextReward; id++ {
		if r, ok := f.rewards[id]; ok && r.Status == arg.Status {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeReferralStore) ListUserAffiliateRewards(ctx context.Context, userID int64) ([]db.AffiliateReward, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []db.AffiliateReward
	for id := int64(1); id < f.nextReward; id++ {
		if r, ok := f.rewards[id]; ok && r.UserID == userID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeReferralStore) ProcessRewardTx(ctx context.Context, rewardID int64) (db.ProcessRewardTxResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var result db.ProcessRewardTxResult

	r, ok := f.rewards[rewardID]
	if !ok || r.Status != db.RewardStatusPending {
		return result, db.ErrRewardProcessed
	}

	r.Status = db.RewardStatusProcessed
	f.rewards[rewardID] = r
	result.Reward = r

	f.balances[r.UserID] = f.balances[r.UserID].Add(d(r.Amount))

	return result, nil
}

func newService(t *testing.T, store *fakeReferralStore) *referral.Service {
	codes, err := referral.NewCodeGenerator("prime-harvest-salt")
	require.NoError(t, err)
	return referral.NewService(store, codes, testLogger())
}

func TestCodes_RoundTrip(t *testing.T) {
	svc := newService(t, newFakeReferralStore())

	code, err := svc.Code(42)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, len(code), 8)

	got, err := svc.ResolveCode(code)
	require.NoError(t, err)
	assert.Equal(t, int64(42), got)

	_, err = svc.ResolveCode("not-a-code")
	assert.ErrorIs(t, err, referral.ErrInvalidCode)
}

func TestTrackReferral_DirectLink(t *testing.T) {
	store := newFakeReferralStore()
	svc := newService(t, store)

	links, err := svc.TrackReferral(context.Background(), 1, 2)
	require.NoError(t, err)
	require.Len(t, links, 1)
	assert.Equal(t, int64(1), links[0].ReferrerID)
	assert.Equal(t, int64(2), links[0].RefereeID)
	assert.Equal(t, 1, links[0].Level)
}

func TestTrackReferral_ExtendsChainToThreeLevels(t *testing.T) {
	store := newFakeReferralStore()
	svc := newService(t, store)

	// 1 referred 2, 2 referred 3, 3 refers 4.
	_, err := svc.TrackReferral(context.Background(), 1, 2)
	require.NoError(t, err)
	_, err = svc.TrackReferral(context.Background(), 2, 3)
	require.NoError(t, err)

	links, err := svc.TrackReferral(context.Background(), 3, 4)
	require.NoError(t, err)
	require.Len(t, links, 3)
	assert.Equal(t, int64(3), links[0].ReferrerID)
	assert.Equal(t, 1, links[0].Level)
	assert.Equal(t, int64(2), links[1].ReferrerID)
	assert.Equal(t, 2, links[1].Level)
	assert.Equal(t, int64(1), links[2].ReferrerID)
	assert.Equal(t, 3, links[2].Level)
}

func TestTrackReferral_ChainCapsAtDepthThree(t *testing.T) {
	store := newFakeReferralStore()
	svc := newService(t, store)

	for i := int64(1); i <= 4; i++ {
		_, err := svc.TrackReferral(context.Background(), i, i+1)
		require.NoError(t, err)
	}

	// User 5 was just referred by 4; only 4, 3 and 2 qualify, never 1.
	chain, err := store.GetReferrerChain(context.Background(), 5)
	require.NoError(t, err)
	require.Len(t, chain, 3)
	for _, link := range chain {
		assert.NotEqual(t, int64(1), link.ReferrerID)
	}
}

func TestTrackReferral_RejectsSelfAndDuplicates(t *testing.T) {
	store := newFakeReferralStore()
	svc := newService(t, store)

	_, err := svc.TrackReferral(context.Background(), 1, 1)
	assert.ErrorIs(t, err, referral.ErrSelfReferral)

	_, err = svc.TrackReferral(context.Background(), 1, 2)
	require.NoError(t, err)

	_, err = svc.TrackReferral(context.Background(), 3, 2)
	assert.ErrorIs(t, err, referral.ErrAlreadyReferred)
}

func TestAccrue_AppliesLevelPercent(t *testing.T) {
	store := newFakeReferralStore()
	svc := newService(t, store)

	tests := []struct {
		level int
		base  string
		want  string
	}{
		{1, "1000", "50"},
		{2, "1000", "20"},
		{3, "1000", "10"},
		{1, "3.33", "0.17"},
	}

	for _, tt := range tests {
		reward, err := svc.Accrue(context.Background(), 7, tt.level, d(tt.base))
		require.NoError(t, err)
		assert.True(t, reward.Amount.Equal(d(tt.want)), "level %d of %s: got %s want %s",
			tt.level, tt.base, reward.Amount, tt.want)
		assert.Equal(t, referral.RewardPending, reward.Status)
	}
}

func TestAccrue_InvalidLevel(t *testing.T) {
	svc := newService(t, newFakeReferralStore())

	_, err := svc.Accrue(context.Background(), 7, 4, d("1000"))
	assert.Error(t, err)
}

func TestGrantLoanBonus_FlatRewardPerChainLink(t *testing.T) {
	store := newFakeReferralStore()
	svc := newService(t, store)

	_, err := svc.TrackReferral(context.Background(), 1, 2)
	require.NoError(t, err)
	_, err = svc.TrackReferral(context.Background(), 2, 3)
	require.NoError(t, err)

	require.NoError(t, svc.GrantLoanBonus(context.Background(), 3))

	rewardsFor2, err := svc.ListUserRewards(context.Background(), 2)
	require.NoError(t, err)
	require.Len(t, rewardsFor2, 1)
	assert.True(t, rewardsFor2[0].Amount.Equal(d("250")))

	rewardsFor1, err := svc.ListUserRewards(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, rewardsFor1, 1)
	assert.True(t, rewardsFor1[0].Amount.Equal(d("250")))
}

func TestGrantLoanBonus_NoChainNoRewards(t *testing.T) {
	store := newFakeReferralStore()
	svc := newService(t, store)

	require.NoError(t, svc.GrantLoanBonus(context.Background(), 9))
	assert.Empty(t, store.rewards)
}

func TestProcess_CreditsExactlyOnce(t *testing.T) {
	store := newFakeReferralStore()
	svc := newService(t, store)

	reward, err := svc.Accrue(context.Background(), 7, 1, d("1000"))
	require.NoError(t, err)

	processed, err := svc.Process(context.Background(), reward.ID)
	require.NoError(t, err)
	assert.Equal(t, referral.RewardProcessed, processed.Status)
	assert.True(t, store.balances[7].Equal(d("50")))

	_, err = svc.Process(context.Background(), reward.ID)
	assert.ErrorIs(t, err, referral.ErrAlreadyProcessed)
	assert.True(t, store.balances[7].Equal(d("50")), "a second run credits nothing")
}

func TestProcess_UnknownReward(t *testing.T) {
	svc := newService(t, newFakeReferralStore())

	_, err := svc.Process(context.Background(), 404)
	assert.ErrorIs(t, err, referral.ErrRewardNotFound)
}
