package apistrings

const (
	ServerError     = "Something went wrong, please try again"
	UserNotFound    = "User could not be identified"
	AdminOnly       = "This action requires an admin account"
	InvalidInput    = "Invalid request input"
	InvalidAmount   = "Invalid amount"
	UserNoWallet    = "User has no wallet"
	DuplicateWallet = "User already has a wallet"

	WithdrawalNotFound = "Withdrawal could not be found"
	MetricsUnavailable = "Daily metrics are currently unavailable"
	WithdrawalReviewed = "Withdrawal was already reviewed"
	RetryBalanceChange = "Balance changed, please retry"

	LoanNotFound = "Loan application could not be found"
	LoanDecided  = "Loan application was already decided"

	RewardNotFound  = "Affiliate reward could not be found"
	RewardProcessed = "Affiliate reward was already processed"
	InvalidReferral = "Invalid referral code"
	AlreadyReferred = "User was already referred"
)
