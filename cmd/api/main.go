package main

import (
	"context"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/uistudio/uistudio-backend/api/routes"
	"github.com/uistudio/uistudio-backend/internal/catalog"
	"github.com/uistudio/uistudio-backend/internal/listing"
	"github.com/uistudio/uistudio-backend/pkg/config"
	"github.com/uistudio/uistudio-backend/pkg/logger"
	"github.com/uistudio/uistudio-backend/pkg/metrics"
	"github.com/uistudio/uistudio-backend/pkg/stripe"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	registry, err := catalog.BuildRegistry()
	if err != nil {
		logg.Error(context.Background(), "failed to build component registry", err)
		os.Exit(1)
	}

	// A missing Stripe key keeps the server up; the listing endpoint
	// reports the misconfiguration in its payload instead.
	var provider listing.Provider
	if cfg.Stripe.Configured() {
		stripeClient, err := stripe.NewClient(context.Background(), cfg.Stripe, logg)
		if err != nil {
			logg.Error(context.Background(), "failed to bootstrap stripe client", err)
			os.Exit(1)
		}
		provider = listing.NewStripeProvider(stripeClient)
	} else {
		logg.Warn(context.Background(), "stripe secret key not set, product listing will respond with a configuration error")
	}

	listingService := listing.NewService(provider, listing.Options{
		Configured: cfg.Stripe.Configured(),
		ProductIDs: cfg.Stripe.ProductIDs,
		PriceIDs:   cfg.Stripe.PriceIDs,
		ListLimit:  cfg.Stripe.ListLimit,
	}, logg)

	promRegistry := prometheus.NewRegistry()
	httpMetrics := metrics.NewHTTPMetrics(promRegistry)

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":        cfg.App.Env,
		"addr":       addr,
		"components": registry.Len(),
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr:    addr,
		Handler: routes.NewRouter(cfg, logg, registry, listingService, httpMetrics, promRegistry),
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "api server stopped unexpectedly", err)
		os.Exit(1)
	}
}
