package app

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/you/rentalfront/internal/config"
	httpx "github.com/you/rentalfront/internal/http"
	"github.com/you/rentalfront/internal/http/handlers"
	"github.com/you/rentalfront/internal/http/middleware"
	"github.com/you/rentalfront/internal/infrastructure/authz"
	"github.com/you/rentalfront/internal/infrastructure/backend"
	"github.com/you/rentalfront/internal/infrastructure/session"
	"github.com/you/rentalfront/internal/services"
)

// Run wires the whole frontend together and serves until the listener
// fails. Redis is pinged up front so a bad address fails fast instead of
// on the first login.
func Run(cfg *config.Config) error {
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		return err
	}

	cas, err := authz.NewCasbinService()
	if err != nil {
		return err
	}

	// Infrastructure
	api := backend.NewClient(cfg.BackendBaseURL, cfg.BackendTimeout)
	sessionStore := session.NewRedisStore(rdb, cfg.SessionTTL)

	// Backend clients
	authClient := backend.NewAuthClient(api)
	reservationClient := backend.NewReservationClient(api)
	contractClient := backend.NewContractClient(api)
	userClient := backend.NewUserClient(api)
	sysConfigClient := backend.NewSystemConfigClient(api)

	// Services
	sessionSvc := services.NewSessionService(sessionStore, authClient, cfg.SessionTTL)
	reservationSvc := services.NewReservationService(reservationClient)
	contractSvc := services.NewContractService(contractClient)
	capabilitySvc := services.NewCapabilityService(cas.E)

	// Handlers and middleware
	authH := handlers.NewAuthHandler(sessionSvc, authClient, userClient)
	reservationH := handlers.NewReservationHandler(reservationSvc)
	contractH := handlers.NewContractHandler(contractSvc)
	managementH := handlers.NewManagementHandler(userClient, capabilitySvc)
	sysConfigH := handlers.NewSystemConfigHandler(sysConfigClient)
	sessMW := middleware.NewSessionMW(sessionSvc)
	capsMW := middleware.NewCapabilityMW(capabilitySvc)

	r := httpx.BuildRouter(authH, reservationH, contractH, managementH, sysConfigH, sessMW, capsMW)

	addr := ":" + cfg.Port
	log.Printf("listening on %s, backend %s", addr, cfg.BackendBaseURL)
	return http.ListenAndServe(addr, r)
}
