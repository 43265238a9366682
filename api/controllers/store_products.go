package controllers

import (
	"context"
	"net/http"

	"github.com/uistudio/uistudio-backend/api/responses"
	"github.com/uistudio/uistudio-backend/internal/listing"
	"github.com/uistudio/uistudio-backend/pkg/logger"
)

// ProductLister resolves the purchasable product list.
type ProductLister interface {
	ListProducts(ctx context.Context) listing.Result
}

// StoreProducts serves the purchasable product list. By contract this
// endpoint always answers 200; failures surface only through payload
// fields so storefront clients never break on a status code.
func StoreProducts(svc ProductLister, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			if logg != nil {
				logg.Warn(r.Context(), "store.products: listing service unavailable")
			}
			responses.WriteRaw(w, http.StatusOK, listing.Result{
				Products: []listing.ListedProduct{},
				Error:    "Product listing unavailable",
				Message:  "The listing service failed to initialize; check the server logs.",
			})
			return
		}

		responses.WriteRaw(w, http.StatusOK, svc.ListProducts(r.Context()))
	}
}
