package api

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/PrimeHarvest/PrimeHarvest-Backend/api/apistrings"
	models "github.com/PrimeHarvest/PrimeHarvest-Backend/api/models"
	basemodels "github.com/PrimeHarvest/PrimeHarvest-Backend/models"
	"github.com/PrimeHarvest/PrimeHarvest-Backend/services/transaction"
	"github.com/PrimeHarvest/PrimeHarvest-Backend/services/wallet"
	"github.com/PrimeHarvest/PrimeHarvest-Backend/services/withdrawal"
	"github.com/PrimeHarvest/PrimeHarvest-Backend/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Withdrawal struct {
	server             *Server
	withdrawalService  *withdrawal.Service
	transactionService *transaction.TransactionService
}

func (w Withdrawal) router(server *Server) {
	w.server = server
	w.withdrawalService = withdrawal.NewService(server.store, server.logger)
	w.transactionService = transaction.NewTransactionService(server.store, server.logger)

	serverGroupV1 := server.router.Group("/api/v1/withdrawals")
	serverGroupV1.Use(AuthenticatedMiddleware())
	serverGroupV1.POST("", w.submitWithdrawal)

	adminGroupV1 := server.router.Group("/api/v1/admin/withdrawals")
	adminGroupV1.Use(AuthenticatedMiddleware(), AdminMiddleware())
	adminGroupV1.GET("pending", w.listPending)
	adminGroupV1.GET("daily/:userID", w.dailyVolume)
	adminGroupV1.POST(":transactionID/approve", w.approveWithdrawal)
	adminGroupV1.POST(":transactionID/reject", w.rejectWithdrawal)
}

func (w *Withdrawal) submitWithdrawal(ctx *gin.Context) {
	activeUser, err := utils.GetActiveUser(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, basemodels.NewError(apistrings.UserNotFound))
		return
	}

	var request models.WithdrawalRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, basemodels.NewError(apistrings.InvalidInput))
		return
	}

	amount, err := decimal.NewFromString(request.Amount)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, basemodels.NewError(apistrings.InvalidAmount))
		return
	}

	result, err := w.withdrawalService.Submit(ctx, activeUser.UserID, amount, request.Destination)
	var ineligible *wallet.IneligibleError
	switch {
	case errors.As(err, &ineligible):
		ctx.JSON(http.StatusBadRequest, basemodels.NewError(ineligible.Reason))
		return
	case errors.Is(err, wallet.ErrWalletNotFound):
		ctx.JSON(http.StatusNotFound, basemodels.NewError(apistrings.UserNoWallet))
		return
	case errors.Is(err, withdrawal.ErrBalanceConflict):
		ctx.JSON(http.StatusConflict, basemodels.NewError(apistrings.RetryBalanceChange))
		return
	case err != nil:
		w.server.logger.Error("DB Error", err)
		ctx.JSON(http.StatusInternalServerError, basemodels.NewError(apistrings.ServerError))
		return
	}

	if w.server.redis != nil {
		if err := w.server.redis.TrackDailyWithdrawal(ctx, activeUser.UserID, result.Amount); err != nil {
			w.server.logger.Errorf("track daily withdrawal: %v", err)
		}
	}
	w.server.notifier.WithdrawalSubmitted(activeUser.Email, result.Amount)

	ctx.JSON(http.StatusOK, basemodels.NewSuccess("Withdrawal Submitted For Review", result))
}

func (w *Withdrawal) listPending(ctx *gin.Context) {
	limit, offset := pagination(ctx)
	txs, err := w.transactionService.ListPendingWithdrawals(ctx, limit, offset)
	if err != nil {
		w.server.logger.Error("DB Error", err)
		ctx.JSON(http.StatusInternalServerError, basemodels.NewError(apistrings.ServerError))
		return
	}

	ctx.JSON(http.StatusOK, basemodels.NewSuccess("Pending Withdrawals Fetched Successfully", txs))
}

// dailyVolume reports today's withdrawal total for a user from the
// advisory Redis counter.
func (w *Withdrawal) dailyVolume(ctx *gin.Context) {
	if w.server.redis == nil {
		ctx.JSON(http.StatusServiceUnavailable, basemodels.NewError(apistrings.MetricsUnavailable))
		return
	}

	userID, err := strconv.ParseInt(ctx.Param("userID"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, basemodels.NewError(apistrings.InvalidInput))
		return
	}

	total, err := w.server.redis.GetDailyWithdrawals(ctx, userID)
	if err != nil {
		w.server.logger.Errorf("get daily withdrawals: %v", err)
		ctx.JSON(http.StatusInternalServerError, basemodels.NewError(apistrings.ServerError))
		return
	}

	ctx.JSON(http.StatusOK, basemodels.NewSuccess("Daily Withdrawal Volume Fetched Successfully", gin.H{
		"user_id": userID,
		"total":   total,
	}))
}

func (w *Withdrawal) approveWithdrawal(ctx *gin.Context) {
	w.review(ctx, w.withdrawalService.Approve, true, "Withdrawal Approved Successfully")
}

func (w *Withdrawal) rejectWithdrawal(ctx *gin.Context) {
	w.review(ctx, w.withdrawalService.Reject, false, "Withdrawal Rejected, Funds Restored")
}

func (w *Withdrawal) review(ctx *gin.Context, decide func(context.Context, uuid.UUID, int64) (*transaction.TransactionModel, error), approved bool, message string) {
	activeUser, err := utils.GetActiveUser(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, basemodels.NewError(apistrings.UserNotFound))
		return
	}

	transactionID, err := uuid.Parse(ctx.Param("transactionID"))
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

	tx, err := decide(ctx, transactionID, activeUser.UserID)
	switch {
	case errors.Is(err, withdrawal.ErrNotFound), errors.Is(err, withdrawal.ErrNotWithdrawal):
		ctx.JSON(http.StatusNotFound, basemodels.NewError(apistrings.WithdrawalNotFound))
		return
	case errors.Is(err, withdrawal.ErrAlreadyReviewed):
		ctx.JSON(http.StatusConflict, basemodels.NewError(apistrings.WithdrawalReviewed))
		return
	case err != nil:
		w.server.logger.Error("DB Error", err)
		ctx.JSON(http.StatusInternalServerError, basemodels.NewError(apistrings.ServerError))
		return
	}

	if request.NotifyEmail != "" {
		if approved {
			w.server.notifier.WithdrawalApproved(request.NotifyEmail, tx.Amount)
		} else {
			w.server.notifier.WithdrawalRejected(request.NotifyEmail, tx.Amount)
		}
	}

	ctx.JSON(http.StatusOK, basemodels.NewSuccess(message, tx))
}
