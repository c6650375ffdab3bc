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
	"github.com/PrimeHarvest/PrimeHarvest-Backend/utils"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type Wallet struct {
	server             *Server
	walletService      *wallet.WalletService
	transactionService *transaction.TransactionService
}

func (w Wallet) router(server *Server) {
	w.server = server
	w.walletService = wallet.NewWalletService(server.store, server.logger)
	w.transactionService = transaction.NewTransactionService(server.store, server.logger)

	serverGroupV1 := server.router.Group("/api/v1/wallets")
	serverGroupV1.POST("", AuthenticatedMiddleware(), w.createWallet)
	serverGroupV1.GET("", AuthenticatedMiddleware(), w.getWallet)
	serverGroupV1.GET("transactions", AuthenticatedMiddleware(), w.getTransactions)
	serverGroupV1.GET("withdrawal-quote", AuthenticatedMiddleware(), w.quoteWithdrawal)

	adminGroupV1 := server.router.Group("/api/v1/admin/wallets")
	adminGroupV1.Use(AuthenticatedMiddleware(), AdminMiddleware())
	adminGroupV1.POST(":userID/deposit", w.deposit)
	adminGroupV1.POST(":userID/profit", w.accrueProfit)
	adminGroupV1.GET(":userID/reconcile", w.reconcile)
	adminGroupV1.GET(":userID/snapshot", w.snapshot)
}

func (w *Wallet) getWallet(ctx *gin.Context) {
	activeUser, err := utils.GetActiveUser(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, basemodels.NewError(apistrings.UserNotFound))
		return
	}

	model, err := w.walletService.GetWallet(ctx, activeUser.UserID)
	if errors.Is(err, wallet.ErrWalletNotFound) {
		ctx.JSON(http.StatusNotFound, basemodels.NewError(apistrings.UserNoWallet))
		return
	} else if err != nil {
		w.server.logger.Error("DB Error", err)
		ctx.JSON(http.StatusInternalServerError, basemodels.NewError(apistrings.ServerError))
		return
	}

	ctx.JSON(http.StatusOK, basemodels.NewSuccess("User Wallet Fetched Successfully", model))
}

func (w *Wallet) createWallet(ctx *gin.Context) {
	activeUser, err := utils.GetActiveUser(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, basemodels.NewError(apistrings.UserNotFound))
		return
	}

	model, err := w.walletService.CreateWallet(ctx, activeUser.UserID)
	if errors.Is(err, wallet.ErrWalletExists) {
		ctx.JSON(http.StatusConflict, basemodels.NewError(apistrings.DuplicateWallet))
		return
	} else if err != nil {
		w.server.logger.Error("DB Error", err)
		ctx.JSON(http.StatusInternalServerError, basemodels.NewError(apistrings.ServerError))
		return
	}

	ctx.JSON(http.StatusOK, basemodels.NewSuccess("User Wallet Created Successfully", model))
}

func (w *Wallet) getTransactions(ctx *gin.Context) {
	activeUser, err := utils.GetActiveUser(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, basemodels.NewError(apistrings.UserNotFound))
		return
	}

	limit, offset := pagination(ctx)
	txs, err := w.transactionService.ListUserTransactions(ctx, activeUser.UserID, limit, offset)
	if err != nil {
		w.server.logger.Error("DB Error", err)
		ctx.JSON(http.StatusInternalServerError, basemodels.NewError(apistrings.ServerError))
		return
	}

	ctx.JSON(http.StatusOK, basemodels.NewSuccess("User Transactions Fetched Successfully", txs))
}

func (w *Wallet) quoteWithdrawal(ctx *gin.Context) {
	activeUser, err := utils.GetActiveUser(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, basemodels.NewError(apistrings.UserNotFound))
		return
	}

	var request models.WithdrawalQuoteRequest
	if err := ctx.ShouldBindQuery(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, basemodels.NewError(apistrings.InvalidInput))
		return
	}

	amount, err := decimal.NewFromString(request.Amount)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, basemodels.NewError(apistrings.InvalidAmount))
		return
	}

	quote, err := w.walletService.CalculateWithdrawal(ctx, activeUser.UserID, amount)
	if errors.Is(err, wallet.ErrWalletNotFound) {
		ctx.JSON(http.StatusNotFound, basemodels.NewError(apistrings.UserNoWallet))
		return
	} else if err != nil {
		w.server.logger.Error("DB Error", err)
		ctx.JSON(http.StatusInternalServerError, basemodels.NewError(apistrings.ServerError))
		return
	}

	ctx.JSON(http.StatusOK, basemodels.NewSuccess("Withdrawal Quote Computed Successfully", quote))
}

func (w *Wallet) deposit(ctx *gin.Context) {
	w.credit(ctx, w.walletService.Deposit, "Deposit Credited Successfully")
}

func (w *Wallet) accrueProfit(ctx *gin.Context) {
	w.credit(ctx, w.walletService.AccrueProfit, "Profit Credited Successfully")
}

type creditFunc func(ctx context.Context, userID int64, amount decimal.Decimal, adminID int64) (*wallet.WalletModel, error)

func (w *Wallet) credit(ctx *gin.Context, op creditFunc, message string) {
	activeUser, err := utils.GetActiveUser(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, basemodels.NewError(apistrings.UserNotFound))
		return
	}

	userID, err := strconv.ParseInt(ctx.Param("userID"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, basemodels.NewError(apistrings.InvalidInput))
		return
	}

	var request models.CreditRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, basemodels.NewError(apistrings.InvalidInput))
		return
	}

	amount, err := decimal.NewFromString(request.Amount)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, basemodels.NewError(apistrings.InvalidAmount))
		return
	}

	model, err := op(ctx, userID, amount, activeUser.UserID)
	var ineligible *wallet.IneligibleError
	switch {
	case errors.As(err, &ineligible):
		ctx.JSON(http.StatusBadRequest, basemodels.NewError(ineligible.Reason))
		return
	case errors.Is(err, wallet.ErrWalletNotFound):
		ctx.JSON(http.StatusNotFound, basemodels.NewError(apistrings.UserNoWallet))
		return
	case err != nil:
		w.server.logger.Error("DB Error", err)
		ctx.JSON(http.StatusInternalServerError, basemodels.NewError(apistrings.ServerError))
		return
	}

	ctx.JSON(http.StatusOK, basemodels.NewSuccess(message, model))
}

// snapshot serves the dashboard's wallet view from the short-lived
// Redis cache, falling back to the database on a miss. Display only.
func (w *Wallet) snapshot(ctx *gin.Context) {
	userID, err := strconv.ParseInt(ctx.Param("userID"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, basemodels.NewError(apistrings.InvalidInput))
		return
	}

	if w.server.redis != nil {
		var cached wallet.WalletModel
		if err := w.server.redis.GetWalletSnapshot(ctx, userID, &cached); err == nil {
			ctx.JSON(http.StatusOK, basemodels.NewSuccess("Wallet Snapshot Fetched Successfully", cached))
			return
		}
	}

	model, err := w.walletService.GetWallet(ctx, userID)
	if errors.Is(err, wallet.ErrWalletNotFound) {
		ctx.JSON(http.StatusNotFound, basemodels.NewError(apistrings.UserNoWallet))
		return
	} else if err != nil {
		w.server.logger.Error("DB Error", err)
		ctx.JSON(http.StatusInternalServerError, basemodels.NewError(apistrings.ServerError))
		return
	}

	if w.server.redis != nil {
		if err := w.server.redis.CacheWalletSnapshot(ctx, userID, model); err != nil {
			w.server.logger.Errorf("cache wallet snapshot: %v", err)
		}
	}

	ctx.JSON(http.StatusOK, basemodels.NewSuccess("Wallet Snapshot Fetched Successfully", model))
}

func (w *Wallet) reconcile(ctx *gin.Context) {
	userID, err := strconv.ParseInt(ctx.Param("userID"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, basemodels.NewError(apistrings.InvalidInput))
		return
	}

	report, err := w.transactionService.Reconcile(ctx, userID)
	if err != nil {
		w.server.logger.Error("DB Error", err)
		ctx.JSON(http.StatusInternalServerError, basemodels.NewError(apistrings.ServerError))
		return
	}

	ctx.JSON(http.StatusOK, basemodels.NewSuccess("Wallet Reconciliation Computed Successfully", report))
}

func pagination(ctx *gin.Context) (int32, int32) {
	limit, err := strconv.ParseInt(ctx.DefaultQuery("limit", "50"), 10, 32)
	if err != nil || limit <= 0 || limit > 200 {
		limit = 50
	}
	offset, err := strconv.ParseInt(ctx.DefaultQuery("offset", "0"), 10, 32)
	if err != nil || offset < 0 {
		offset = 0
	}
	return int32(limit), int32(offset)
}
