package api

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/PrimeHarvest/PrimeHarvest-Backend/api/apistrings"
	models "github.com/PrimeHarvest/PrimeHarvest-Backend/api/models"
	basemodels "github.com/PrimeHarvest/PrimeHarvest-Backend/models"
	"github.com/PrimeHarvest/PrimeHarvest-Backend/services/loan"
	"github.com/PrimeHarvest/PrimeHarvest-Backend/services/referral"
	"github.com/PrimeHarvest/PrimeHarvest-Backend/services/wallet"
	"github.com/PrimeHarvest/PrimeHarvest-Backend/utils"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type Loan struct {
	server      *Server
	loanService *loan.Service
}

func (l Loan) router(server *Server) {
	l.server = server
	rewards := referral.NewService(server.store, server.codes, server.logger)
	l.loanService = loan.NewService(server.store, rewards, server.logger)

	serverGroupV1 := server.router.Group("/api/v1/loans")
	serverGroupV1.Use(AuthenticatedMiddleware())
	serverGroupV1.POST("", l.submitApplication)
	serverGroupV1.GET("", l.listOwnApplications)
	serverGroupV1.GET(":loanID", l.getApplication)

	adminGroupV1 := server.router.Group("/api/v1/admin/loans")
	adminGroupV1.Use(AuthenticatedMiddleware(), AdminMiddleware())
	adminGroupV1.GET("pending", l.listPending)
	adminGroupV1.POST(":loanID/approve", l.approveApplication)
	adminGroupV1.POST(":loanID/reject", l.rejectApplication)
}

func (l *Loan) submitApplication(ctx *gin.Context) {
	activeUser, err := utils.GetActiveUser(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, basemodels.NewError(apistrings.UserNotFound))
		return
	}

	var request models.LoanApplicationRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, basemodels.NewError(apistrings.InvalidInput))
		return
	}

	amount, err := decimal.NewFromString(request.Amount)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, basemodels.NewError(apistrings.InvalidAmount))
		return
	}
	proposed, err := decimal.NewFromString(request.ProposedInvestment)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, basemodels.NewError(apistrings.InvalidAmount))
		return
	}

	application, err := l.loanService.Submit(ctx, activeUser.UserID, amount, proposed, request.Purpose)
	var ineligible *wallet.IneligibleError
	switch {
	case errors.As(err, &ineligible):
		ctx.JSON(http.StatusBadRequest, basemodels.NewError(ineligible.Reason))
		return
	case errors.Is(err, wallet.ErrWalletNotFound):
		ctx.JSON(http.StatusNotFound, basemodels.NewError(apistrings.UserNoWallet))
		return
	case errors.Is(err, loan.ErrBalanceConflict):
		ctx.JSON(http.StatusConflict, basemodels.NewError(apistrings.RetryBalanceChange))
		return
	case err != nil:
		l.server.logger.Error("DB Error", err)
		ctx.JSON(http.StatusInternalServerError, basemodels.NewError(apistrings.ServerError))
		return
	}

	ctx.JSON(http.StatusOK, basemodels.NewSuccess("Loan Application Submitted Successfully", application))
}

func (l *Loan) listOwnApplications(ctx *gin.Context) {
	activeUser, err := utils.GetActiveUser(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, basemodels.NewError(apistrings.UserNotFound))
		return
	}

	applications, err := l.loanService.ListUserApplications(ctx, activeUser.UserID)
	if err != nil {
		l.server.logger.Error("DB Error", err)
		ctx.JSON(http.StatusInternalServerError, basemodels.NewError(apistrings.ServerError))
		return
	}

	ctx.JSON(http.StatusOK, basemodels.NewSuccess("Loan Applications Fetched Successfully", applications))
}

func (l *Loan) getApplication(ctx *gin.Context) {
	activeUser, err := utils.GetActiveUser(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, basemodels.NewError(apistrings.UserNotFound))
		return
	}

	loanID, err := strconv.ParseInt(ctx.Param("loanID"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, basemodels.NewError(apistrings.InvalidInput))
		return
	}

	application, err := l.loanService.GetApplication(ctx, loanID)
	if errors.Is(err, loan.ErrNotFound) {
		ctx.JSON(http.StatusNotFound, basemodels.NewError(apistrings.LoanNotFound))
		return
	} else if err != nil {
		l.server.logger.Error("DB Error", err)
		ctx.JSON(http.StatusInternalServerError, basemodels.NewError(apistrings.ServerError))
		return
	}

	// Applicants can only see their own applications.
	if application.UserID != activeUser.UserID && activeUser.Role != utils.RoleAdmin {
		ctx.JSON(http.StatusNotFound, basemodels.NewError(apistrings.LoanNotFound))
		return
	}

	ctx.JSON(http.StatusOK, basemodels.NewSuccess("Loan Application Fetched Successfully", application))
}

func (l *Loan) listPending(ctx *gin.Context) {
	limit, offset := pagination(ctx)
	applications, err := l.loanService.ListPending(ctx, limit, offset)
	if err != nil {
		l.server.logger.Error("DB Error", err)
		ctx.JSON(http.StatusInternalServerError, basemodels.NewError(apistrings.ServerError))
		return
	}

	ctx.JSON(http.StatusOK, basemodels.NewSuccess("Pending Loan Applications Fetched Successfully", applications))
}

func (l *Loan) approveApplication(ctx *gin.Context) {
	l.decide(ctx, l.loanService.Approve, true, "Loan Application Approved Successfully")
}

func (l *Loan) rejectApplication(ctx *gin.Context) {
	l.decide(ctx, l.loanService.Reject, false, "Loan Application Rejected")
}

func (l *Loan) decide(ctx *gin.Context, op func(ctx context.Context, loanID, adminID int64, notes string) (*loan.LoanApplicationModel, error), approved bool, message string) {
	activeUser, err := utils.GetActiveUser(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, basemodels.NewError(apistrings.UserNotFound))
		return
	}

	loanID, err := strconv.ParseInt(ctx.Param("loanID"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, basemodels.NewError(apistrings.InvalidInput))
		return
	}

	var request models.DecisionRequest
	if ctx.Request.ContentLength > 0 {
		if err := ctx.ShouldBindJSON(&request); err != nil {
			ctx.JSON(http.StatusBadRequest, basemodels.NewError(apistrings.InvalidInput))
			return
		}
	}

	application, err := op(ctx, loanID, activeUser.UserID, request.Notes)
	switch {
	case errors.Is(err, loan.ErrNotFound):
		ctx.JSON(http.StatusNotFound, basemodels.NewError(apistrings.LoanNotFound))
		return
	case errors.Is(err, loan.ErrAlreadyDecided):
		ctx.JSON(http.StatusConflict, basemodels.NewError(apistrings.LoanDecided))
		return
	case err != nil:
		l.server.logger.Error("DB Error", err)
		ctx.JSON(http.StatusInternalServerError, basemodels.NewError(apistrings.ServerError))
		return
	}

	if request.NotifyEmail != "" {
		l.server.notifier.LoanDecision(request.NotifyEmail, approved)
	}

	ctx.JSON(http.StatusOK, basemodels.NewSuccess(message, application))
}
