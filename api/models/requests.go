package models

// Monetary amounts travel as strings and are parsed into decimals at
// the boundary; they never touch binary floating point.

type WithdrawalRequest struct {
	Amount      string `json:"amount" binding:"required"`
	Destination string `json:"destination" binding:"required"`
}

type WithdrawalQuoteRequest struct {
	Amount string `json:"amount" form:"amount" binding:"required"`
}

type LoanApplicationRequest struct {
	Amount             string `json:"amount" binding:"required"`
	ProposedInvestment string `json:"proposed_investment" binding:"required"`
	Purpose            string `json:"purpose" binding:"required"`
}

type CreditRequest struct {
	Amount string `json:"amount" binding:"required"`
}

type DecisionRequest struct {
	Notes string `json:"notes"`
	// NotifyEmail, when set, receives the decision email.
	NotifyEmail string `json:"notify_email" binding:"omitempty,email"`
}

type TrackReferralRequest struct {
	Code string `json:"code" binding:"required"`
}

type AccrueRewardRequest struct {
	UserID     int64  `json:"user_id" binding:"required"`
	Level      int    `json:"level" binding:"required,min=1,max=3"`
	BaseAmount string `json:"base_amount" binding:"required"`
}
