package loan

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	db "github.com/PrimeHarvest/PrimeHarvest-Backend/db/sqlc"
	"github.com/PrimeHarvest/PrimeHarvest-Backend/services/fee"
	"github.com/PrimeHarvest/PrimeHarvest-Backend/services/monitoring/logging"
	"github.com/PrimeHarvest/PrimeHarvest-Backend/services/wallet"
	"github.com/shopspring/decimal"
)

type loanStore interface {
	GetWallet(ctx context.Context, userID int64) (db.Wallet, error)
	GetLoanApplication(ctx context.Context, id int64) (db.LoanApplication, error)
	ListLoanApplicationsByStatus(ctx context.Context, arg db.ListLoanApplicationsByStatusParams) ([]db.LoanApplication, error)
	ListUserLoanApplications(ctx context.Context, userID int64) ([]db.LoanApplication, error)
	LoanApplyTx(ctx context.Context, arg db.LoanApplyTxParams) (db.LoanApplyTxResult, error)
	ApproveLoanTx(ctx context.Context, arg db.LoanDecisionTxParams) (db.ApproveLoanTxResult, error)
	RejectLoanTx(ctx context.Context, arg db.LoanDecisionTxParams) (db.LoanApplication, error)
}

// bonusGranter lets the referral workflow react to qualifying commitment
// fees without this package knowing its types.
type bonusGranter interface {
	GrantLoanBonus(ctx context.Context, applicantID int64) error
}

type Service struct {
	store   loanStore
	rewards bonusGranter
	logger  *logging.Logger
}

func NewService(store loanStore, rewards bonusGranter, logger *logging.Logger) *Service {
	return &Service{
		store:   store,
		rewards: rewards,
		logger:  logger,
	}
}

// Submit files a loan application: eligibility first, then one atomic
// deduction of the 5% commitment fee with its completed ledger row and
// the pending application. The fee is not refunded if the application is
// later rejected.
func (s *Service) Submit(ctx context.Context, userID int64, amount, proposedInvestment decimal.Decimal, purpose string) (*LoanApplicationModel, error) {
	dbWallet, err := s.store.GetWallet(ctx, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, wallet.ErrWalletNotFound
	} else if err != nil {
		return nil, fmt.Errorf("get wallet: %w", err)
	}

	model, err := wallet.ToWalletModel(dbWallet)
	if err != nil {
		return nil, err
	}

	if verdict := wallet.CheckLoanEligibility(model, amount, proposedInvestment); !verdict.Eligible {
		return nil, wallet.NewIneligibleError(verdict.Reason)
	}

	commitmentFee := fee.CommitmentFee(amount)

	result, err := s.store.LoanApplyTx(ctx, db.LoanApplyTxParams{
		UserID:             userID,
		Amount:             amount.String(),
		ProposedInvestment: proposedInvestment.String(),
		CommitmentFee:      commitmentFee.String(),
		Purpose:            purpose,
	})
	if errors.Is(err, db.ErrInsufficientBalance) {
		return nil, ErrBalanceConflict
	} else if err != nil {
		return nil, fmt.Errorf("apply for loan: %w", err)
	}

	s.logger.WithFields(map[string]interface{}{
		"user_id":        userID,
		"application_id": result.Application.ID,
		"commitment_fee": commitmentFee.String(),
	}).Info("loan application filed")

	// Qualifying commitment fees earn the applicant's referrer chain a
	// flat bonus. A failure here never unwinds the application.
	if s.rewards != nil && commitmentFee.GreaterThanOrEqual(fee.LoanBonusThreshold) {
		if err := s.rewards.GrantLoanBonus(ctx, userID); err != nil {
			s.logger.WithField("user_id", userID).Errorf("grant loan referral bonus: %v", err)
		}
	}

	return ToLoanApplicationModel(result.Application)
}

// Approve disburses the loan: application flips to approved, the wallet
// is credited, and the completed loan ledger row is written, all in one
// database transaction.
func (s *Service) Approve(ctx context.Context, loanID, adminID int64, notes string) (*LoanApplicationModel, error) {
	if adminID == 0 {
		return nil, ErrInvalidAdminUser
	}

	result, err := s.store.ApproveLoanTx(ctx, db.LoanDecisionTxParams{
		LoanID:  loanID,
		AdminID: adminID,
		Notes:   notes,
	})
	if errors.Is(err, db.ErrLoanNotPending) {
		return nil, s.decidedOrMissing(ctx, loanID)
	} else if err != nil {
		return nil, fmt.Errorf("approve loan: %w", err)
	}

	s.logger.WithFields(map[string]interface{}{
		"application_id": loanID,
		"admin_id":       adminID,
	}).Info("loan approved and disbursed")

	return ToLoanApplicationModel(result.Application)
}

// Reject closes the application without touching the wallet; the
// commitment fee deducted at submission stays deducted.
func (s *Service) Reject(ctx context.Context, loanID, adminID int64, notes string) (*LoanApplicationModel, error) {
	if adminID == 0 {
		return nil, ErrInvalidAdminUser
	}

	rejected, err := s.store.RejectLoanTx(ctx, db.LoanDecisionTxParams{
		LoanID:  loanID,
		AdminID: adminID,
		Notes:   notes,
	})
	if errors.Is(err, db.ErrLoanNotPending) {
		return nil, s.decidedOrMissing(ctx, loanID)
	} else if err != nil {
		return nil, fmt.Errorf("reject loan: %w", err)
	}

	s.logger.WithFields(map[string]interface{}{
		"application_id": loanID,
		"admin_id":       adminID,
	}).Info("loan rejected, commitment fee retained")

	return ToLoanApplicationModel(rejected)
}

func (s *Service) GetApplication(ctx context.Context, loanID int64) (*LoanApplicationModel, error) {
	app, err := s.store.GetLoanApplication(ctx, loanID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	} else if err != nil {
		return nil, fmt.Errorf("get loan application: %w", err)
	}
	return ToLoanApplicationModel(app)
}

// ListPending feeds the admin decision queue.
func (s *Service) ListPending(ctx context.Context, limit, offset int32) ([]LoanApplicationModel, error) {
	apps, err := s.store.ListLoanApplicationsByStatus(ctx, db.ListLoanApplicationsByStatusParams{
		Status: db.LoanStatusPending,
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		return nil, fmt.Errorf("list pending loans: %w", err)
	}
	return ToLoanApplicationModels(apps)
}

func (s *Service) ListUserApplications(ctx context.Context, userID int64) ([]LoanApplicationModel, error) {
	apps, err := s.store.ListUserLoanApplications(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list user loans: %w", err)
	}
	return ToLoanApplicationModels(apps)
}

func (s *Service) decidedOrMissing(ctx context.Context, loanID int64) error {
	if _, err := s.store.GetLoanApplication(ctx, loanID); errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	return ErrAlreadyDecided
}
