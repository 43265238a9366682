package listing

import (
	"context"

	"github.com/stripe/stripe-go/v84"
	"github.com/stripe/stripe-go/v84/price"
	"github.com/stripe/stripe-go/v84/product"

	pkgstripe "github.com/uistudio/uistudio-backend/pkg/stripe"
)

type stripeProvider struct{}

// NewStripeProvider wraps the initialized Stripe client so the listing
// service can be tested against a fake.
func NewStripeProvider(api *pkgstripe.Client) Provider {
	if api == nil {
		return nil
	}
	return &stripeProvider{}
}

func (p *stripeProvider) RetrieveProduct(ctx context.Context, id string) (Product, error) {
	params := &stripe.ProductParams{}
	params.Context = ctx
	sp, err := product.Get(id, params)
	if err != nil {
		return Product{}, err
	}
	return productFromStripe(sp), nil
}

func (p *stripeProvider) ListActiveProducts(ctx context.Context, limit int64) ([]Product, error) {
	params := &stripe.ProductListParams{
		Active: stripe.Bool(true),
	}
	params.Limit = stripe.Int64(limit)
	params.Context = ctx

	var out []Product
	iter := product.List(params)
	for iter.Next() {
		out = append(out, productFromStripe(iter.Product()))
	}
	if err := iter.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (p *stripeProvider) RetrievePrice(ctx context.Context, id string) (Price, error) {
	params := &stripe.PriceParams{}
	params.Context = ctx
	sp, err := price.Get(id, params)
	if err != nil {
		return Price{}, err
	}
	return priceFromStripe(sp), nil
}

func (p *stripeProvider) ListActivePrices(ctx context.Context, limit int64) ([]Price, error) {
	params := &stripe.PriceListParams{
		Active: stripe.Bool(true),
	}
	params.Limit = stripe.Int64(limit)
	params.Context = ctx

	var out []Price
	iter := price.List(params)
	for iter.Next() {
		out = append(out, priceFromStripe(iter.Price()))
	}
	if err := iter.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func productFromStripe(sp *stripe.Product) Product {
	return Product{
		ID:          sp.ID,
		Name:        sp.Name,
		Description: sp.Description,
		Metadata:    sp.Metadata,
	}
}

func priceFromStripe(sp *stripe.Price) Price {
	converted := Price{
		ID:         sp.ID,
		UnitAmount: sp.UnitAmount,
		Currency:   string(sp.Currency),
	}
	if sp.Product != nil {
		converted.ProductID = sp.Product.ID
	}
	if sp.Recurring != nil {
		converted.Recurring = &Recurring{Interval: string(sp.Recurring.Interval)}
	}
	return converted
}
