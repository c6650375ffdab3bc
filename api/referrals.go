package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/PrimeHarvest/PrimeHarvest-Backend/api/apistrings"
	models "github.com/PrimeHarvest/PrimeHarvest-Backend/api/models"
	basemodels "github.com/PrimeHarvest/PrimeHarvest-Backend/models"
	"github.com/PrimeHarvest/PrimeHarvest-Backend/services/referral"
	"github.com/PrimeHarvest/PrimeHarvest-Backend/utils"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

type Referral struct {
	server          *Server
	referralService *referral.Service
}

func (r Referral) router(server *Server) {
	r.server = server
	r.referralService = referral.NewService(server.store, server.codes, server.logger)

	serverGroupV1 := server.router.Group("/api/v1/referrals")
	serverGroupV1.Use(AuthenticatedMiddleware())
	serverGroupV1.GET("code", r.getCode)
	serverGroupV1.POST("track", r.trackReferral)
	serverGroupV1.GET("", r.listReferrals)
	serverGroupV1.GET("rewards", r.listRewards)

	adminGroupV1 := server.router.Group("/api/v1/admin/rewards")
	adminGroupV1.Use(AuthenticatedMiddleware(), AdminMiddleware())
	adminGroupV1.GET("pending", r.listPendingRewards)
	adminGroupV1.POST("accrue", r.accrueReward)
	adminGroupV1.POST(":rewardID/process", r.processReward)
}

// getCode returns the caller's shareable referral code.
func (r *Referral) getCode(ctx *gin.Context) {
	activeUser, err := utils.GetActiveUser(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, basemodels.NewError(apistrings.UserNotFound))
		return
	}

	code, err := r.referralService.Code(activeUser.UserID)
	if err != nil {
		r.server.logger.Error("Referral Code Error", err)
		ctx.JSON(http.StatusInternalServerError, basemodels.NewError(apistrings.ServerError))
		return
	}

	ctx.JSON(http.StatusOK, basemodels.NewSuccess("Referral Code Fetched Successfully", gin.H{"code": code}))
}

// trackReferral links the caller to the owner of the submitted code and
// extends the ancestor chain up to three levels.
func (r *Referral) trackReferral(ctx *gin.Context) {
	activeUser, err := utils.GetActiveUser(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, basemodels.NewError(apistrings.UserNotFound))
		return
	}

	var request models.TrackReferralRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, basemodels.NewError(apistrings.InvalidInput))
		return
	}

	referrerID, err := r.referralService.ResolveCode(request.Code)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, basemodels.NewError(apistrings.InvalidReferral))
		return
	}

	links, err := r.referralService.TrackReferral(ctx, referrerID, activeUser.UserID)
	switch {
	case errors.Is(err, referral.ErrSelfReferral):
		ctx.JSON(http.StatusBadRequest, basemodels.NewError(apistrings.InvalidReferral))
		return
	case errors.Is(err, referral.ErrAlreadyReferred):
		ctx.JSON(http.StatusConflict, basemodels.NewError(apistrings.AlreadyReferred))
		return
	case err != nil:
		r.server.logger.Error("DB Error", err)
		ctx.JSON(http.StatusInternalServerError, basemodels.NewError(apistrings.ServerError))
		return
	}

	ctx.JSON(http.StatusOK, basemodels.NewSuccess("Referral Tracked Successfully", links))
}

func (r *Referral) listReferrals(ctx *gin.Context) {
	activeUser, err := utils.GetActiveUser(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, basemodels.NewError(apistrings.UserNotFound))
		return
	}

	links, err := r.referralService.ListUserReferrals(ctx, activeUser.UserID)
	if err != nil {
		r.server.logger.Error("DB Error", err)
		ctx.JSON(http.StatusInternalServerError, basemodels.NewError(apistrings.ServerError))
		return
	}

	ctx.JSON(http.StatusOK, basemodels.NewSuccess("Referrals Fetched Successfully", links))
}

func (r *Referral) listRewards(ctx *gin.Context) {
	activeUser, err := utils.GetActiveUser(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, basemodels.NewError(apistrings.UserNotFound))
		return
	}

	rewards, err := r.referralService.ListUserRewards(ctx, activeUser.UserID)
	if err != nil {
		r.server.logger.Error("DB Error", err)
		ctx.JSON(http.StatusInternalServerError, basemodels.NewError(apistrings.ServerError))
		return
	}

	ctx.JSON(http.StatusOK, basemodels.NewSuccess("Affiliate Rewards Fetched Successfully", rewards))
}

func (r *Referral) listPendingRewards(ctx *gin.Context) {
	limit, offset := pagination(ctx)
	rewards, err := r.referralService.ListPending(ctx, limit, offset)
	if err != nil {
		r.server.logger.Error("DB Error", err)
		ctx.JSON(http.StatusInternalServerError, basemodels.NewError(apistrings.ServerError))
		return
	}

	ctx.JSON(http.StatusOK, basemodels.NewSuccess("Pending Affiliate Rewards Fetched Successfully", rewards))
}

// accrueReward records a percentage reward for a referrer, typically
// driven by a referee's investment event.
func (r *Referral) accrueReward(ctx *gin.Context) {
	var request models.AccrueRewardRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, basemodels.NewError(apistrings.InvalidInput))
		return
	}

	validate := validator.New()
	if err := validate.Struct(request); err != nil {
		ctx.JSON(http.StatusBadRequest, basemodels.NewError(apistrings.InvalidInput))
		return
	}

	baseAmount, err := decimal.NewFromString(request.BaseAmount)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, basemodels.NewError(apistrings.InvalidAmount))
		return
	}

	reward, err := r.referralService.Accrue(ctx, request.UserID, request.Level, baseAmount)
	if err != nil {
		r.server.logger.Error("DB Error", err)
		ctx.JSON(http.StatusInternalServerError, basemodels.NewError(apistrings.ServerError))
		return
	}

	ctx.JSON(http.StatusOK, basemodels.NewSuccess("Affiliate Reward Accrued Successfully", reward))
}

// processReward settles a pending reward into the beneficiary's wallet.
func (r *Referral) processReward(ctx *gin.Context) {
	rewardID, err := strconv.ParseInt(ctx.Param("rewardID"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, basemodels.NewError(apistrings.InvalidInput))
		return
	}

	reward, err := r.referralService.Process(ctx, rewardID)
	switch {
	case errors.Is(err, referral.ErrRewardNotFound):
		ctx.JSON(http.StatusNotFound, basemodels.NewError(apistrings.RewardNotFound))
		return
	case errors.Is(err, referral.ErrAlreadyProcessed):
		ctx.JSON(http.StatusConflict, basemodels.NewError(apistrings.RewardProcessed))
		return
	case err != nil:
		r.server.logger.Error("DB Error", err)
		ctx.JSON(http.StatusInternalServerError, basemodels.NewError(apistrings.ServerError))
		return
	}

	ctx.JSON(http.StatusOK, basemodels.NewSuccess("Affiliate Reward Processed Successfully", reward))
}
