package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uistudio/uistudio-backend/internal/catalog"
)

func buildTestRegistry(t *testing.T) *catalog.Registry {
	t.Helper()
	reg, err := catalog.BuildRegistry()
	require.NoError(t, err)
	return reg
}

func TestComponentsList(t *testing.T) {
	reg := buildTestRegistry(t)

	t.Run("all entries", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/components", nil)
		rec := httptest.NewRecorder()

		ComponentsList(reg, testLogger()).ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)

		var envelope struct {
			Data componentListResponse `json:"data"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
		assert.Equal(t, len(envelope.Data.Components), envelope.Data.Total)
		assert.NotEmpty(t, envelope.Data.Components)
	})

	t.Run("category filter", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/components?category=buttons", nil)
		rec := httptest.NewRecorder()

		ComponentsList(reg, testLogger()).ServeHTTP(rec, req)

		var envelope struct {
			Data componentListResponse `json:"data"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
		require.NotEmpty(t, envelope.Data.Components)
		for _, entry := range envelope.Data.Components {
			assert.Equal(t, "buttons", entry.Category)
		}
	})

	t.Run("query filter", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/components?q=command", nil)
		rec := httptest.NewRecorder()

		ComponentsList(reg, testLogger()).ServeHTTP(rec, req)

		var envelope struct {
			Data componentListResponse `json:"data"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
		require.Equal(t, 1, envelope.Data.Total)
		assert.Equal(t, "dialog-command", envelope.Data.Components[0].Slug)
	})

	t.Run("nil registry", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/components", nil)
		rec := httptest.NewRecorder()

		ComponentsList(nil, testLogger()).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}

func TestComponentDetail(t *testing.T) {
	reg := buildTestRegistry(t)

	makeRequest := func(slug string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/components/"+slug, nil)
		routeCtx := chi.NewRouteContext()
		routeCtx.URLParams.Add("slug", slug)
		req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, routeCtx))
		rec := httptest.NewRecorder()
		ComponentDetail(reg, testLogger()).ServeHTTP(rec, req)
		return rec
	}

	t.Run("known slug", func(t *testing.T) {
		rec := makeRequest("hero-centered")
		require.Equal(t, http.StatusOK, rec.Code)

		var envelope struct {
			Data catalog.Entry `json:"data"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
		assert.Equal(t, "heroes", envelope.Data.Category)
		assert.Equal(t, "CenteredHero", envelope.Data.ComponentName)
		assert.NotEmpty(t, envelope.Data.Props)
	})

	t.Run("unknown slug", func(t *testing.T) {
		rec := makeRequest("does-not-exist")
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestCategoriesList(t *testing.T) {
	reg := buildTestRegistry(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/categories", nil)
	rec := httptest.NewRecorder()

	CategoriesList(reg, testLogger()).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var envelope struct {
		Data categoryListResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	require.NotEmpty(t, envelope.Data.Categories)

	names := make(map[string]bool)
	for _, cat := range envelope.Data.Categories {
		names[cat.Name] = true
		assert.Greater(t, cat.Count, 0)
	}
	assert.True(t, names["buttons"])
	assert.True(t, names["heroes"])
}
