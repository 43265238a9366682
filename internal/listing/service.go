package listing

import (
	"context"
	"strings"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/uistudio/uistudio-backend/pkg/config"
	"github.com/uistudio/uistudio-backend/pkg/logger"
)

// ListedProduct is one purchasable (product, price) pair in display shape.
type ListedProduct struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Description     string   `json:"description"`
	Price           float64  `json:"price"`
	Currency        string   `json:"currency"`
	Period          string   `json:"period"`
	Features        []string `json:"features"`
	Popular         bool     `json:"popular,omitempty"`
	StripePriceID   string   `json:"stripePriceId,omitempty"`
	StripeProductID string   `json:"stripeProductId,omitempty"`
}

// Result is the store products payload. The endpoint always answers 200;
// failures surface only through these fields.
type Result struct {
	Products []ListedProduct `json:"products"`
	Error    string          `json:"error,omitempty"`
	Message  string          `json:"message,omitempty"`
	Warning  string          `json:"warning,omitempty"`
}

const (
	PeriodMonth   = "month"
	PeriodYear    = "year"
	PeriodForever = "forever"
)

// Options carries the listing configuration resolved at startup.
type Options struct {
	// Configured reports whether a Stripe secret key was supplied.
	Configured bool

	// ProductIDs and PriceIDs restrict the listing to the given provider
	// ids when non-empty.
	ProductIDs []string
	PriceIDs   []string

	// ListLimit caps the bulk list calls. Stripe caps a page at 100.
	ListLimit int64
}

type Service struct {
	provider Provider
	opts     Options
	logg     *logger.Logger
}

func NewService(provider Provider, opts Options, logg *logger.Logger) *Service {
	if opts.ListLimit <= 0 || opts.ListLimit > 100 {
		opts.ListLimit = 100
	}
	opts.ProductIDs = cleanIDs(opts.ProductIDs)
	opts.PriceIDs = cleanIDs(opts.PriceIDs)
	return &Service{provider: provider, opts: opts, logg: logg}
}

// ListProducts resolves products and prices from the provider and joins
// them into Listed Products. It never returns an error: every failure mode
// terminates in a Result describing what went wrong.
func (s *Service) ListProducts(ctx context.Context) Result {
	if !s.opts.Configured {
		s.warn(ctx, "store.products: stripe secret key missing")
		return Result{
			Products: []ListedProduct{},
			Error:    "Stripe is not configured",
			Message:  "Set " + config.EnvStripeSecretKey + " to enable the product listing.",
		}
	}

	if s.provider == nil {
		s.warn(ctx, "store.products: stripe client unavailable")
		return Result{
			Products: []ListedProduct{},
			Error:    "Stripe client unavailable",
			Message:  "The Stripe client failed to initialize; check the server logs.",
		}
	}

	products, failure := s.resolveProducts(ctx)
	if failure != nil {
		return *failure
	}

	prices, failure := s.resolvePrices(ctx)
	if failure != nil {
		return *failure
	}

	listed := join(products, prices)
	if len(listed) == 0 {
		s.warn(ctx, "store.products: no purchasable product/price pairs")
		return Result{
			Products: []ListedProduct{},
			Warning:  "No purchasable products found",
			Message:  "Check your Stripe dashboard or allow-list configuration.",
		}
	}

	return Result{Products: listed}
}

func (s *Service) resolveProducts(ctx context.Context) ([]Product, *Result) {
	if len(s.opts.ProductIDs) > 0 {
		products := fetchEach(ctx, s.opts.ProductIDs, s.provider.RetrieveProduct, func(id string, err error) {
			s.warnErr(ctx, "store.products: product retrieve failed", id, err)
		})
		if len(products) == 0 {
			s.warn(ctx, "store.products: no allow-listed products resolved")
			return nil, &Result{
				Products: []ListedProduct{},
				Error:    "No products could be retrieved",
				Message:  "None of the configured product ids could be fetched from Stripe.",
			}
		}
		return products, nil
	}

	products, err := s.provider.ListActiveProducts(ctx, s.opts.ListLimit)
	if err != nil {
		return nil, s.providerFailure(ctx, "store.products: product list failed", err)
	}
	return products, nil
}

func (s *Service) resolvePrices(ctx context.Context) ([]Price, *Result) {
	if len(s.opts.PriceIDs) > 0 {
		prices := fetchEach(ctx, s.opts.PriceIDs, s.provider.RetrievePrice, func(id string, err error) {
			s.warnErr(ctx, "store.products: price retrieve failed", id, err)
		})
		if len(prices) == 0 {
			s.warn(ctx, "store.products: no allow-listed prices resolved")
			return nil, &Result{
				Products: []ListedProduct{},
				Error:    "No prices could be retrieved",
				Message:  "None of the configured price ids could be fetched from Stripe.",
			}
		}
		return prices, nil
	}

	prices, err := s.provider.ListActivePrices(ctx, s.opts.ListLimit)
	if err != nil {
		return nil, s.providerFailure(ctx, "store.products: price list failed", err)
	}
	return prices, nil
}

// providerFailure classifies a provider error by message. "No such" and
// "Invalid" indicate a configuration problem rather than a transient one.
func (s *Service) providerFailure(ctx context.Context, msg string, err error) *Result {
	if s.logg != nil {
		s.logg.Error(ctx, msg, err)
	}

	text := err.Error()
	if strings.Contains(text, "No such") || strings.Contains(text, "Invalid") {
		return &Result{
			Products: []ListedProduct{},
			Error:    "Invalid Stripe configuration",
			Message:  "Stripe rejected the request; verify your API key and configured ids.",
		}
	}
	return &Result{
		Products: []ListedProduct{},
		Error:    "Failed to load products from Stripe",
		Message:  "An unexpected Stripe error occurred; try again later.",
	}
}

// join emits one Listed Product per (product, matching price) pair in
// stable input order. Products without a matching price are dropped.
func join(products []Product, prices []Price) []ListedProduct {
	listed := make([]ListedProduct, 0, len(prices))
	for _, prod := range products {
		for _, pr := range prices {
			if pr.ProductID != prod.ID {
				continue
			}
			listed = append(listed, derive(prod, pr))
		}
	}
	return listed
}

func derive(prod Product, pr Price) ListedProduct {
	amount := decimal.NewFromInt(pr.UnitAmount).Shift(-2)

	return ListedProduct{
		ID:              prod.ID + "_" + pr.ID,
		Name:            prod.Name,
		Description:     prod.Description,
		Price:           amount.InexactFloat64(),
		Currency:        strings.ToUpper(pr.Currency),
		Period:          derivePeriod(pr),
		Features:        deriveFeatures(prod),
		Popular:         prod.Metadata["popular"] == "true",
		StripePriceID:   pr.ID,
		StripeProductID: prod.ID,
	}
}

func derivePeriod(pr Price) string {
	if pr.Recurring != nil {
		switch pr.Recurring.Interval {
		case PeriodMonth:
			return PeriodMonth
		case PeriodYear:
			return PeriodYear
		}
	}
	return PeriodForever
}

// fetchEach issues every retrieve concurrently and drops failed items,
// keeping the survivors in allow-list order so output stays deterministic.
func fetchEach[T any](ctx context.Context, ids []string, fetch func(context.Context, string) (T, error), onErr func(string, error)) []T {
	results := make([]*T, len(ids))

	var wg sync.WaitGroup
	for i, id := range ids {
		wg.Add(1)
		go func(i int, id string) {
			defer wg.Done()
			item, err := fetch(ctx, id)
			if err != nil {
				if onErr != nil {
					onErr(id, err)
				}
				return
			}
			results[i] = &item
		}(i, id)
	}
	wg.Wait()

	out := make([]T, 0, len(ids))
	for _, item := range results {
		if item != nil {
			out = append(out, *item)
		}
	}
	return out
}

func cleanIDs(ids []string) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		trimmed := strings.TrimSpace(id)
		if trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func (s *Service) warn(ctx context.Context, msg string) {
	if s.logg != nil {
		s.logg.Warn(ctx, msg)
	}
}

func (s *Service) warnErr(ctx context.Context, msg, id string, err error) {
	if s.logg == nil {
		return
	}
	ctx = s.logg.WithFields(ctx, map[string]any{"id": id, "error": err.Error()})
	s.logg.Warn(ctx, msg)
}
