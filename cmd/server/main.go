package main

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	_ "elective/docs" // swagger docs

	"elective/internal/accounts"
	"elective/internal/auth"
	"elective/internal/cache"
	"elective/internal/config"
	"elective/internal/db"
	"elective/internal/handler"
	"elective/internal/logger"
	"elective/internal/repository"
	"elective/internal/router"
	"elective/internal/service"
)

// @title Elective Services API
// @version 1.0
// @description CRUD backend for service orders with JWT role-gated mutations.
// @host localhost:8080
// @BasePath /
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT token, with or without the "Bearer " prefix.
func main() {
	cfg, err := config.Load(context.Background())
	if err != nil {
		panic(err)
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	// Currency amounts render as JSON numbers, not quoted strings.
	decimal.MarshalJSONWithoutQuotes = true

	gormDB, err := db.NewMySQL(cfg.MySQL)
	if err != nil {
		log.Fatal().Err(err).Msg("database init")
	}
	if err := db.Migrate(gormDB); err != nil {
		log.Fatal().Err(err).Msg("auto-migrate")
	}

	store, err := accounts.Open(cfg.UsersFile)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.UsersFile).Msg("open accounts file")
	}

	cacheClient := cache.New(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	tokens := auth.NewJWTService(cfg.JWTSecret)
	authService := service.NewAuthService(store, tokens)

	h := router.Handlers{
		Auth:      handler.NewAuthHandler(authService, log),
		Address:   handler.NewAddressHandler(repository.NewAddressRepository(gormDB, cacheClient), log),
		Customer:  handler.NewCustomerHandler(repository.NewCustomerRepository(gormDB, cacheClient), log),
		Service:   handler.NewServiceHandler(repository.NewServiceRepository(gormDB, cacheClient), log),
		Order:     handler.NewOrderHandler(repository.NewOrderRepository(gormDB, cacheClient), log),
		OrderItem: handler.NewOrderItemHandler(repository.NewOrderItemRepository(gormDB, cacheClient), log),
		Payment:   handler.NewPaymentHandler(repository.NewPaymentRepository(gormDB, cacheClient), log),
	}

	e := echo.New()
	e.HideBanner = true
	router.Register(e, tokens, store, h)

	addr := ":" + cfg.ServerPort
	log.Info().Str("addr", addr).Msg("starting server")
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("server start")
	}
}
