package listing

import "context"

// Product is the narrow slice of the billing provider's product record the
// listing service consumes. SDK types stay behind the adapter.
type Product struct {
	ID          string
	Name        string
	Description string
	Metadata    map[string]string
}

// Recurring carries the provider's billing-cycle interval (month/year).
type Recurring struct {
	Interval string
}

// Price is the narrow slice of the provider's price record.
type Price struct {
	ID         string
	ProductID  string
	UnitAmount int64
	Currency   string
	Recurring  *Recurring
}

// Provider exposes the four provider operations the listing service needs.
type Provider interface {
	RetrieveProduct(ctx context.Context, id string) (Product, error)
	ListActiveProducts(ctx context.Context, limit int64) ([]Product, error)
	RetrievePrice(ctx context.Context, id string) (Price, error)
	ListActivePrices(ctx context.Context, limit int64) ([]Price, error)
}
