package config

import (
	"os"
	"testing"
)

func TestLoad_Success(t *testing.T) {
	setMinimalEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}

	if cfg.App.Env != "production" {
		t.Fatalf("expected App.Env to be production, got %q", cfg.App.Env)
	}
	if cfg.App.LogLevel != "info" {
		t.Fatalf("expected default log level info, got %q", cfg.App.LogLevel)
	}
	if cfg.Stripe.Configured() {
		t.Fatal("Stripe should not report configured without a secret key")
	}
	if cfg.Stripe.ListLimit != 100 {
		t.Fatalf("expected default list limit 100, got %d", cfg.Stripe.ListLimit)
	}
}

func TestLoad_MissingRequired(t *testing.T) {
	setMinimalEnv(t)
	if err := os.Unsetenv("UISTUDIO_APP_ENV"); err != nil {
		t.Fatalf("failed to unset UISTUDIO_APP_ENV: %v", err)
	}

	if _, err := Load(); err == nil {
		t.Fatal("expected missing required env to return an error")
	}
}

func TestLoad_StripeAllowLists(t *testing.T) {
	setMinimalEnv(t)
	t.Setenv(EnvStripeSecretKey, "sk_test_abc")
	t.Setenv("UISTUDIO_STRIPE_PRODUCT_IDS", "prod_1,prod_2")
	t.Setenv("UISTUDIO_STRIPE_PRICE_IDS", "price_1")
	t.Setenv("UISTUDIO_STRIPE_LIST_LIMIT", "25")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}

	if !cfg.Stripe.Configured() {
		t.Fatal("expected Stripe to report configured")
	}
	if got := len(cfg.Stripe.ProductIDs); got != 2 {
		t.Fatalf("expected 2 product ids, got %d", got)
	}
	if cfg.Stripe.ProductIDs[0] != "prod_1" || cfg.Stripe.ProductIDs[1] != "prod_2" {
		t.Fatalf("unexpected product ids %v", cfg.Stripe.ProductIDs)
	}
	if got := len(cfg.Stripe.PriceIDs); got != 1 {
		t.Fatalf("expected 1 price id, got %d", got)
	}
	if cfg.Stripe.ListLimit != 25 {
		t.Fatalf("expected list limit 25, got %d", cfg.Stripe.ListLimit)
	}
}

func setMinimalEnv(t *testing.T) {
	t.Helper()

	t.Setenv("UISTUDIO_APP_ENV", "production")
	t.Setenv("UISTUDIO_APP_PORT", "8081")
	os.Unsetenv(EnvStripeSecretKey)
	os.Unsetenv("UISTUDIO_STRIPE_PRODUCT_IDS")
	os.Unsetenv("UISTUDIO_STRIPE_PRICE_IDS")
	os.Unsetenv("UISTUDIO_STRIPE_LIST_LIMIT")
}

func TestAppConfigEnvHelpers(t *testing.T) {
	devConfig := AppConfig{Env: "DEVELOPMENT"}
	if !devConfig.IsDev() {
		t.Fatalf("expected IsDev true for %q", devConfig.Env)
	}
	if devConfig.IsProd() {
		t.Fatalf("expected IsProd false for %q", devConfig.Env)
	}

	prodConfig := AppConfig{Env: "Production"}
	if !prodConfig.IsProd() {
		t.Fatalf("expected IsProd true for %q", prodConfig.Env)
	}
}

func TestStripeEnvironmentDefaults(t *testing.T) {
	if env := (StripeConfig{}).Environment(); env != "test" {
		t.Fatalf("expected empty env to normalize to test, got %q", env)
	}
	if env := (StripeConfig{Env: " LIVE "}).Environment(); env != "live" {
		t.Fatalf("expected live, got %q", env)
	}
}
