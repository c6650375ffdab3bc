package api

import (
	"database/sql"
	"fmt"
	"log"
	"net/http"

	db "github.com/PrimeHarvest/PrimeHarvest-Backend/db/sqlc"
	"github.com/PrimeHarvest/PrimeHarvest-Backend/models"
	"github.com/PrimeHarvest/PrimeHarvest-Backend/services/monitoring/logging"
	"github.com/PrimeHarvest/PrimeHarvest-Backend/services/notification"
	redisservice "github.com/PrimeHarvest/PrimeHarvest-Backend/services/redis"
	"github.com/PrimeHarvest/PrimeHarvest-Backend/services/referral"
	"github.com/PrimeHarvest/PrimeHarvest-Backend/services/security"
	"github.com/PrimeHarvest/PrimeHarvest-Backend/utils"
	"github.com/gin-gonic/gin"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

// / TODO: the config should be the one accessible like this
var TokenController *utils.JWTToken

type Server struct {
	router   *gin.Engine
	store    *db.Store
	config   *utils.Config
	logger   *logging.Logger
	redis    *redisservice.RedisService
	notifier *notification.NotificationService
	codes    *referral.CodeGenerator
}

func NewServer(envPath string) *Server {
	c, err := utils.LoadConfig(envPath)
	if err != nil {
		panic(fmt.Sprintf("Could not load config: %v", err))
	}

	conn, err := sql.Open(c.DBDriver, utils.GetDBSource(c, c.DBName))
	if err != nil {
		panic(fmt.Sprintf("Could not load DB: %v", err))
	}

	m, err := migrate.New(
		"file://db/migrations",
		utils.GetDBSource(c, c.DBName),
	)
	if err != nil {
		log.Fatalf("Unable to instantiate the database schema migrator - %v", err)
	}

	if err := m.Up(); err != nil {
		if err != migrate.ErrNoChange {
			log.Fatalf("Unable to migrate up to the latest database schema - %v", err)
		}
	}

	g := gin.Default()
	l := logging.NewLogger()
	store := db.NewStore(conn)

	rs, err := redisservice.NewRedisService(&redisservice.RedisConfig{
		Host:     c.RedisHost,
		Port:     c.RedisPort,
		Password: c.RedisPassword,
	})
	if err != nil {
		// Dashboard metrics are advisory; the ledger does not need Redis.
		l.Errorf("redis unavailable, daily metrics disabled: %v", err)
		rs = nil
	}

	codes, err := referral.NewCodeGenerator(c.ReferralSalt)
	if err != nil {
		log.Fatalf("Unable to initialise referral codes - %v", err)
	}

	sessionCache := security.NewCache()
	if err := sessionCache.Start(); err != nil {
		log.Fatalf("Unable to start session cache - %v", err)
	}

	g.Use(CORSMiddleware())
	g.Use(l.LoggingMiddleWare())

	TokenController = utils.NewJWTToken(c)

	return &Server{
		router:   g,
		store:    store,
		config:   c,
		logger:   l,
		redis:    rs,
		notifier: notification.NewNotificationService(notification.NewPlunk(c), l),
		codes:    codes,
	}
}

func (s *Server) Start() {

	dr := models.SuccessResponse{
		Status:  "success",
		Message: "Welcome to PrimeHarvest!",
		Version: utils.REVISION,
	}

	s.router.GET("/", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, dr)
	})

	/// Register Object Routers Below
	Wallet{}.router(s)
	Withdrawal{}.router(s)
	Loan{}.router(s)
	Referral{}.router(s)

	s.router.Run(fmt.Sprintf(":%v", s.config.ServerPort))
}
