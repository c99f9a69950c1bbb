package main

import (
	"log"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"

	_ "github.com/Aditi-Ethiraj14/OceanSync/docs" // swagger docs

	"github.com/Aditi-Ethiraj14/OceanSync/internal/auth"
	"github.com/Aditi-Ethiraj14/OceanSync/internal/cache"
	"github.com/Aditi-Ethiraj14/OceanSync/internal/config"
	"github.com/Aditi-Ethiraj14/OceanSync/internal/handler"
	"github.com/Aditi-Ethiraj14/OceanSync/internal/observability"
	"github.com/Aditi-Ethiraj14/OceanSync/internal/router"
	"github.com/Aditi-Ethiraj14/OceanSync/internal/service"
	"github.com/Aditi-Ethiraj14/OceanSync/internal/storage"
)

// @title OceanSync API
// @version 1.0
// @description Citizen ocean-hazard reporting API with admin triage.
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the access token.
func main() {
	cfg := config.Load()

	e := echo.New()
	e.Use(middleware.RequestID())

	var store storage.Store
	switch cfg.StorageDriver {
	case config.DriverMySQL:
		gormDB, err := storage.OpenMySQL(cfg.MySQLDSN)
		if err != nil {
			log.Fatalf("database init: %v", err)
		}
		store, err = storage.NewGormStore(gormDB)
		if err != nil {
			log.Fatalf("storage init: %v", err)
		}
		log.Println("Using MySQL storage")
	case config.DriverMemory:
		store = storage.NewMemoryStore()
		log.Println("Using in-memory storage: state is lost on restart")
	default:
		log.Fatalf("unknown storage driver %q", cfg.StorageDriver)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	metrics := observability.NewMetrics(prometheus.DefaultRegisterer)

	jwtService := auth.NewJWTService(cfg.JWTSecret)
	tokenStore := auth.NewRedisTokenStore(cacheClient)

	authService := service.NewAuthService(store, jwtService, tokenStore, metrics)
	reportService := service.NewReportService(store, cacheClient, metrics)
	triageService := service.NewTriageService(store)

	router.Register(
		e,
		cfg,
		handler.NewAuthHandler(authService),
		handler.NewReportHandler(reportService, jwtService),
		handler.NewAdminHandler(triageService),
	)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
