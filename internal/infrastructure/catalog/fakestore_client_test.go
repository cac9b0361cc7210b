package catalog_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Tienda-api/internal/infrastructure/catalog"
)

func TestListProducts_DecodificaProductos(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/products", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"id":1,"title":"Mochila","price":109.95,"description":"Para portátil","category":"men's clothing","image":"https://example.test/1.png"},
			{"id":2,"title":"Camiseta","price":22.3,"description":"Slim fit","category":"men's clothing","image":"https://example.test/2.png"}
		]`))
	}))
	defer srv.Close()

	client := catalog.NewFakeStoreClient(srv.URL, 5*time.Second)
	products, err := client.ListProducts(context.Background())
	require.NoError(t, err)

	require.Len(t, products, 2)
	assert.Equal(t, int64(1), products[0].ID)
	assert.Equal(t, "Mochila", products[0].Title)
	assert.True(t, products[0].Price.Equal(decimal.RequireFromString("109.95")),
		"el precio debe decodificarse a decimal sin pérdida: %s", products[0].Price)
	assert.Equal(t, "men's clothing", products[1].Category)
}

func TestListProducts_HTTPNo200_RetornaError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := catalog.NewFakeStoreClient(srv.URL, 5*time.Second)
	_, err := client.ListProducts(context.Background())
	assert.Error(t, err)
}

func TestListProducts_CuerpoInvalido_RetornaError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"no":"es un array"}`))
	}))
	defer srv.Close()

	client := catalog.NewFakeStoreClient(srv.URL, 5*time.Second)
	_, err := client.ListProducts(context.Background())
	assert.Error(t, err)
}

func TestListProducts_ContextoCancelado_RetornaError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	client := catalog.NewFakeStoreClient(srv.URL, 5*time.Second)
	_, err := client.ListProducts(ctx)
	assert.Error(t, err)
}
