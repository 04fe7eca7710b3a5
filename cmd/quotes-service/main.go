package main

import (
	"fmt"
	"os"

	"github.com/nurpe/printhub-quotes/internal/auth"
	"github.com/nurpe/printhub-quotes/internal/config"
	"github.com/nurpe/printhub-quotes/internal/db"
	"github.com/nurpe/printhub-quotes/internal/excel"
	httphandler "github.com/nurpe/printhub-quotes/internal/http"
	"github.com/nurpe/printhub-quotes/internal/http/middleware"
	"github.com/nurpe/printhub-quotes/internal/logger"
	"github.com/nurpe/printhub-quotes/internal/pdf"
	"github.com/nurpe/printhub-quotes/internal/repository"
	"github.com/nurpe/printhub-quotes/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Environment)

	database, err := db.New(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect database")
	}

	requestRepo := repository.NewQuoteRequestRepository(database)
	quotationRepo := repository.NewQuotationRepository(database)
	messageRepo := repository.NewMessageRepository(database)
	userRepo := repository.NewUserRepository(database)

	identityService := service.NewIdentityService(userRepo, cfg)
	requestService := service.NewQuoteRequestService(requestRepo, identityService, excel.NewGenerator())
	quotationService := service.NewQuotationService(quotationRepo, requestRepo, identityService, pdf.NewGenerator(), cfg)
	messageService := service.NewMessageService(messageRepo, identityService)

	tokenParser := auth.NewParser(cfg.Auth.AccessSecret)
	handler := httphandler.NewHandler(requestService, quotationService, messageService, identityService, log)
	requireAuth := middleware.Auth(tokenParser)
	optionalAuth := middleware.OptionalAuth(tokenParser)
	router := httphandler.NewRouter(handler, requireAuth, optionalAuth, cfg.Environment, cfg.HTTP.AllowedOrigins)

	addr := fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port)
	log.Info().Str("addr", addr).Msg("starting quotes service")

	if err := router.Run(addr); err != nil {
		log.Error().Err(err).Msg("server stopped")
		os.Exit(1)
	}
}
