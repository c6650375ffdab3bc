// Package fee holds the fee schedule for the platform. Everything in
// here is pure computation over decimals; callers round-trip through
// this package so that every fee in the system is derived the same way.
package fee

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Monetary amounts are rounded to the currency minor unit (cents).
const currencyPrecision = 2

var (
	oneHundred = decimal.NewFromInt(100)

	// CommitmentFeePercent is the fixed fee charged on every loan
	// application, non-refundable once deducted.
	CommitmentFeePercent = decimal.NewFromInt(5)

	// LoanBonusThreshold is the commitment fee at or above which the
	// applicant's referrer chain earns a flat loan bonus.
	LoanBonusThreshold = decimal.NewFromInt(688)

	// LoanBonusAmount is the flat reward granted when the threshold is met.
	LoanBonusAmount = decimal.NewFromInt(250)

	rewardPercents = map[int]decimal.Decimal{
		1: decimal.NewFromInt(5),
		2: decimal.NewFromInt(2),
		3: decimal.NewFromInt(1),
	}
)

type Breakdown struct {
	Fee decimal.Decimal `json:"fee"`
	Net decimal.Decimal `json:"net"`
}

// Compute splits amount into fee and net. The fee is rounded once, at
// this boundary, so repeated computations with the same inputs always
// agree to the cent.
func Compute(amount decimal.Decimal, percent decimal.Decimal) Breakdown {
	f := amount.Mul(percent).Div(oneHundred).Round(currencyPrecision)
	return Breakdown{
		Fee: f,
		Net: amount.Sub(f),
	}
}

// CommitmentFee returns the fixed 5% commitment fee on a loan amount.
func CommitmentFee(loanAmount decimal.Decimal) decimal.Decimal {
	return Compute(loanAmount, CommitmentFeePercent).Fee
}

// RewardPercent returns the referral reward percentage for a chain
// level. Levels run 1..3 with decreasing rates (5%, 2%, 1%).
func RewardPercent(level int) (decimal.Decimal, error) {
	p, ok := rewardPercents[level]
	if !ok {
		return decimal.Decimal{}, fmt.Errorf("invalid referral level: %d", level)
	}
	return p, nil
}

// RewardAmount computes the referral reward for a base amount at the
// given chain level.
func RewardAmount(baseAmount decimal.Decimal, level int) (decimal.Decimal, error) {
	p, err := RewardPercent(level)
	if err != nil {
		return decimal.Decimal{}, err
	}
	return Compute(baseAmount, p).Fee, nil
}
