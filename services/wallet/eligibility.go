package wallet

import (
	"github.com/PrimeHarvest/PrimeHarvest-Backend/services/fee"
	"github.com/shopspring/decimal"
)

// Loan product bounds.
var (
	MinLoanAmount          = decimal.NewFromInt(3500)
	MaxLoanAmount          = decimal.NewFromInt(50000)
	LoanInvestmentMultiple = decimal.NewFromInt(3)
)

// Rejection reasons, surfaced to the UI verbatim.
const (
	ReasonInvalidAmount       = "Invalid amount."
	ReasonInsufficientBalance = "Insufficient balance."
	ReasonLoanBelowMinimum    = "Minimum loan amount is $3,500."
	ReasonLoanAboveMaximum    = "Maximum loan amount is $50,000."
	ReasonLoanExceedsMultiple = "Loan amount exceeds 300% of proposed investment."
	ReasonCommitmentFeeShort  = "Insufficient funds for commitment fee."
)

type Eligibility struct {
	Eligible bool   `json:"eligible"`
	Reason   string `json:"reason,omitempty"`
}

func eligible() Eligibility {
	return Eligibility{Eligible: true}
}

func ineligible(reason string) Eligibility {
	return Eligibility{Eligible: false, Reason: reason}
}

// CheckWithdrawalEligibility applies the withdrawal rules in order;
// the first failure wins.
func CheckWithdrawalEligibility(w *WalletModel, requestedAmount decimal.Decimal) Eligibility {
	if requestedAmount.LessThanOrEqual(decimal.Zero) {
		return ineligible(ReasonInvalidAmount)
	}
	if w.Balance.LessThan(requestedAmount) {
		return ineligible(ReasonInsufficientBalance)
	}
	return eligible()
}

// CheckLoanEligibility applies the loan application rules in order;
// the first failure wins.
func CheckLoanEligibility(w *WalletModel, requestedLoanAmount, proposedInvestment decimal.Decimal) Eligibility {
	if requestedLoanAmount.LessThan(MinLoanAmount) {
		return ineligible(ReasonLoanBelowMinimum)
	}
	if requestedLoanAmount.GreaterThan(MaxLoanAmount) {
		return ineligible(ReasonLoanAboveMaximum)
	}
	if requestedLoanAmount.GreaterThan(proposedInvestment.Mul(LoanInvestmentMultiple)) {
		return ineligible(ReasonLoanExceedsMultiple)
	}
	if w.Balance.LessThan(fee.CommitmentFee(requestedLoanAmount)) {
		return ineligible(ReasonCommitmentFeeShort)
	}
	return eligible()
}
