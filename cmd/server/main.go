package main

import (
	"net/http"

	"freshcatch-be/internal/cart"
	"freshcatch-be/internal/checkout"
	"freshcatch-be/internal/commerce"
	"freshcatch-be/internal/config"
	"freshcatch-be/internal/logger"
	"freshcatch-be/internal/middleware"
	"freshcatch-be/internal/order"
	"freshcatch-be/internal/transport"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func main() {
	cfg := config.LoadConfig()
	logger.Init(cfg.AppEnv)
	defer logger.Sync()

	commerceClient := commerce.NewClient(cfg.CommerceBaseURL, cfg.PublishableKey)

	cartSvc := cart.NewService(commerceClient)
	checkoutSvc := checkout.NewService(commerceClient)
	orderSvc := order.NewService(commerceClient)

	r := chi.NewRouter()
	r.Use(logger.RequestIDMiddleware)
	r.Use(logger.LoggingMiddleware)
	r.Use(middleware.Auth([]byte(cfg.JWTSecret)))
	r.Use(middleware.RateLimit)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		transport.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	cart.NewHandler(cartSvc).Register(r)
	checkout.NewHandler(checkoutSvc).Register(r)
	order.NewHandler(orderSvc).Register(r)

	logger.L().Info("storefront API listening", zap.String("port", cfg.AppPort))
	if err := http.ListenAndServe(":"+cfg.AppPort, r); err != nil {
		logger.L().Fatal("server stopped", zap.Error(err))
	}
}
