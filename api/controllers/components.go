package controllers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/uistudio/uistudio-backend/api/responses"
	"github.com/uistudio/uistudio-backend/internal/catalog"
	pkgerrors "github.com/uistudio/uistudio-backend/pkg/errors"
	"github.com/uistudio/uistudio-backend/pkg/logger"
)

type componentListResponse struct {
	Components []catalog.Entry `json:"components"`
	Total      int             `json:"total"`
}

type categoryListResponse struct {
	Categories []catalog.CategoryCount `json:"categories"`
}

// ComponentsList returns the flattened, searchable variant list.
func ComponentsList(reg *catalog.Registry, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if reg == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "component registry unavailable"))
			return
		}

		query := strings.TrimSpace(r.URL.Query().Get("q"))
		category := strings.TrimSpace(r.URL.Query().Get("category"))

		entries := reg.Search(query, category)
		responses.WriteSuccess(w, componentListResponse{
			Components: entries,
			Total:      len(entries),
		})
	}
}

// ComponentDetail returns one variant by slug.
func ComponentDetail(reg *catalog.Registry, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if reg == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "component registry unavailable"))
			return
		}

		slug := strings.TrimSpace(chi.URLParam(r, "slug"))
		if slug == "" {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "slug is required"))
			return
		}

		entry, ok := reg.Lookup(slug)
		if !ok {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeNotFound, "component not found"))
			return
		}

		responses.WriteSuccess(w, entry)
	}
}

// CategoriesList returns the category labels with variant counts.
func CategoriesList(reg *catalog.Registry, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if reg == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "component registry unavailable"))
			return
		}

		responses.WriteSuccess(w, categoryListResponse{Categories: reg.Categories()})
	}
}
