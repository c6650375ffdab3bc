package loan

import (
	"fmt"
	"time"

	db "github.com/PrimeHarvest/PrimeHarvest-Backend/db/sqlc"
	"github.com/shopspring/decimal"
)

type LoanStatus string

const (
	StatusPending  LoanStatus = "pending"
	StatusApproved LoanStatus = "approved"
	StatusRejected LoanStatus = "rejected"
)

type LoanApplicationModel struct {
	ID                 int64           `json:"id"`
	UserID             int64           `json:"user_id"`
	Amount             decimal.Decimal `json:"amount"`
	ProposedInvestment decimal.Decimal `json:"proposed_investment"`
	CommitmentFee      decimal.Decimal `json:"commitment_fee"`
	Purpose            string          `json:"purpose"`
	Status             LoanStatus      `json:"status"`
	ApprovedBy         *int64          `json:"approved_by,omitempty"`
	ApprovedAt         *time.Time      `json:"approved_at,omitempty"`
	AdminNotes         string          `json:"admin_notes,omitempty"`
	CreatedAt          time.Time       `json:"created_at"`
}

func ToLoanApplicationModel(app db.LoanApplication) (*LoanApplicationModel, error) {
	amount, err := decimal.NewFromString(app.Amount)
	if err != nil {
		return nil, fmt.Errorf("parse loan amount: %w", err)
	}
	proposed, err := decimal.NewFromString(app.ProposedInvestment)
	if err != nil {
		return nil, fmt.Errorf("parse proposed investment: %w", err)
	}
	commitmentFee, err := decimal.NewFromString(app.CommitmentFee)
	if err != nil {
		return nil, fmt.Errorf("parse commitment fee: %w", err)
	}

	model := &LoanApplicationModel{
		ID:                 app.ID,
		UserID:             app.UserID,
		Amount:             amount,
		ProposedInvestment: proposed,
		CommitmentFee:      commitmentFee,
		Purpose:            app.Purpose,
		Status:             LoanStatus(app.Status),
		AdminNotes:         app.AdminNotes,
		CreatedAt:          app.CreatedAt,
	}

	if app.ApprovedBy.Valid {
		by := app.ApprovedBy.Int64
		model.ApprovedBy = &by
	}
	if app.ApprovedAt.Valid {
		at := app.ApprovedAt.Time
		model.ApprovedAt = &at
	}

	return model, nil
}

func ToLoanApplicationModels(apps []db.LoanApplication) ([]LoanApplicationModel, error) {
	models := make([]LoanApplicationModel, len(apps))
	for i, app := range apps {
		m, err := ToLoanApplicationModel(app)
		if err != nil {
			return nil, err
		}
		models[i] = *m
	}
	return models, nil
}
