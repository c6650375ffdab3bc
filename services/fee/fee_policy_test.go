package fee_test

import (
	"testing"

	"github.com/PrimeHarvest/PrimeHarvest-Backend/services/fee"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(s string) decimal.Decimal {
	v, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return v
}

func TestCompute_SplitsFeeAndNet(t *testing.T) {
	tests := []struct {
		name    string
		amount  string
		percent string
		wantFee string
		wantNet string
	}{
		{"whole dollars", "100", "5", "5", "95"},
		{"ten percent", "250", "10", "25", "225"},
		{"rounds half away from zero", "3.33", "5", "0.17", "3.16"},
		{"sub-cent fee rounds", "0.01", "5", "0", "0.01"},
		{"zero percent", "100", "0", "0", "100"},
		{"large amount", "49999.99", "5", "2500", "47499.99"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := fee.Compute(d(tt.amount), d(tt.percent))
			assert.True(t, b.Fee.Equal(d(tt.wantFee)), "fee: got %s want %s", b.Fee, tt.wantFee)
			assert.True(t, b.Net.Equal(d(tt.wantNet)), "net: got %s want %s", b.Net, tt.wantNet)
		})
	}
}

func TestCompute_FeePlusNetEqualsAmount(t *testing.T) {
	amounts := []string{"0.01", "3.33", "100", "1234.56", "49999.99"}
	percents := []string{"1", "2.5", "5", "10"}

	for _, a := range amounts {
		for _, p := range percents {
			b := fee.Compute(d(a), d(p))
			assert.True(t, b.Fee.Add(b.Net).Equal(d(a)),
				"amount %s at %s%%: %s + %s != %s", a, p, b.Fee, b.Net, a)
		}
	}
}

func TestCompute_Deterministic(t *testing.T) {
	amount := d("3333.33")
	percent := d("5")

	first := fee.Compute(amount, percent)
	for i := 0; i < 10000; i++ {
		again := fee.Compute(amount, percent)
		require.True(t, again.Fee.Equal(first.Fee), "iteration %d drifted: %s vs %s", i, again.Fee, first.Fee)
		require.True(t, again.Net.Equal(first.Net))
	}
}

func TestCommitmentFee(t *testing.T) {
	assert.True(t, fee.CommitmentFee(d("3500")).Equal(d("175")))
	assert.True(t, fee.CommitmentFee(d("50000")).Equal(d("2500")))

	// 13760 * 5% = 688, the loan bonus threshold exactly.
	assert.True(t, fee.CommitmentFee(d("13760")).Equal(fee.LoanBonusThreshold))
}

func TestRewardPercent(t *testing.T) {
	tests := []struct {
		level int
		want  string
	}{
		{1, "5"},
		{2, "2"},
		{3, "1"},
	}
	for _, tt := range tests {
		p, err := fee.RewardPercent(tt.level)
		require.NoError(t, err)
		assert.True(t, p.Equal(d(tt.want)))
	}

	_, err := fee.RewardPercent(0)
	assert.Error(t, err)
	_, err = fee.RewardPercent(4)
	assert.Error(t, err)
}

func TestRewardAmount(t *testing.T) {
	got, err := fee.RewardAmount(d("1000"), 1)
	require.NoError(t, err)
	assert.True(t, got.Equal(d("50")))

	got, err = fee.RewardAmount(d("1000"), 3)
	require.NoError(t, err)
	assert.True(t, got.Equal(d("10")))
}
