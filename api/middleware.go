package api

import (
	"net/http"
	"strings"

	"github.com/PrimeHarvest/PrimeHarvest-Backend/api/apistrings"
	basemodels "github.com/PrimeHarvest/PrimeHarvest-Backend/models"
	"github.com/PrimeHarvest/PrimeHarvest-Backend/services/security"
	"github.com/PrimeHarvest/PrimeHarvest-Backend/utils"
	"github.com/gin-gonic/gin"
)

func AuthenticatedMiddleware() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		token := ctx.GetHeader("Authorization")
		if token == "" {
			ctx.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized Request"})
			ctx.Abort()
			return
		}

		tokenSplit := strings.Split(token, " ")
		if len(tokenSplit) != 2 || strings.ToLower(tokenSplit[0]) != "bearer" {
			ctx.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid token, expects bearer token"})
			ctx.Abort()
			return
		}

		// Verified sessions are cached so hot paths skip signature checks.
		var user utils.TokenObject
		if cached, err := security.CacheInstance.Get(tokenSplit[1]); err == nil {
			user = cached.(utils.TokenObject)
		} else {
			verified, err := TokenController.VerifyToken(tokenSplit[1])
			if err != nil {
				ctx.JSON(http.StatusUnauthorized, gin.H{"message": err.Error()})
				ctx.Abort()
				return
			}
			security.CacheInstance.Insert(tokenSplit[1], verified)
			user = verified
		}

		ctx.Set("user_id", user.UserID)
		ctx.Set("user_role", user.Role)
		/// Accessible User Across the App
		ctx.Set("user", user)
		ctx.Next()
	}
}

func AdminMiddleware() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		user, err := utils.GetActiveUser(ctx)
		if err != nil || user.Role != utils.RoleAdmin {
			ctx.JSON(http.StatusForbidden, basemodels.NewError(apistrings.AdminOnly))
			ctx.Abort()
			return
		}
		ctx.Next()
	}
}

func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {

		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Credentials", "true")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Header("Access-Control-Allow-Methods", "POST,HEAD,PATCH,OPTIONS,GET,PUT")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
