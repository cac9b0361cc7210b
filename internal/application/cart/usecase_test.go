package cart_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Tienda-api/internal/application/cart"
	"github.com/jhoicas/Tienda-api/internal/application/dto"
	"github.com/jhoicas/Tienda-api/internal/domain"
	"github.com/jhoicas/Tienda-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fake en memoria del carrito
// ──────────────────────────────────────────────────────────────────────────────

type fakeCartRepo struct {
	items []*entity.CartItem
}

func (r *fakeCartRepo) Create(item *entity.CartItem) error {
	r.items = append(r.items, item)
	return nil
}
func (r *fakeCartRepo) Update(item *entity.CartItem) error {
	for i, it := range r.items {
		if it.UserID == item.UserID && it.ProductID == item.ProductID {
			r.items[i] = item
		}
	}
	return nil
}
func (r *fakeCartRepo) GetByUserAndProduct(userID string, productID int64) (*entity.CartItem, error) {
	for _, it := range r.items {
		if it.UserID == userID && it.ProductID == productID {
			return it, nil
		}
	}
	return nil, nil
}
func (r *fakeCartRepo) ListByUser(userID string) ([]*entity.CartItem, error) {
	var out []*entity.CartItem
	for _, it := range r.items {
		if it.UserID == userID {
			out = append(out, it)
		}
	}
	return out, nil
}
func (r *fakeCartRepo) DeleteByUserAndProduct(userID string, productID int64) error {
	kept := r.items[:0]
	for _, it := range r.items {
		if !(it.UserID == userID && it.ProductID == productID) {
			kept = append(kept, it)
		}
	}
	r.items = kept
	return nil
}
func (r *fakeCartRepo) DeleteByUser(userID string) error {
	kept := r.items[:0]
	for _, it := range r.items {
		if it.UserID != userID {
			kept = append(kept, it)
		}
	}
	r.items = kept
	return nil
}

const testUserID = "00000000-0000-0000-0000-000000000001"

func addReq(productID int64, price string, qty int64) dto.AddCartItemRequest {
	return dto.AddCartItemRequest{
		ProductID: productID,
		Title:     "Producto",
		UnitPrice: decimal.RequireFromString(price),
		Quantity:  qty,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests AddItem
// ──────────────────────────────────────────────────────────────────────────────

func TestAddItem_SinCantidad_AsumeUna(t *testing.T) {
	uc := cart.NewCartUseCase(&fakeCartRepo{})

	resp, err := uc.AddItem(testUserID, addReq(1, "10.00", 0))
	require.NoError(t, err)

	require.Len(t, resp.Items, 1)
	assert.Equal(t, int64(1), resp.Items[0].Quantity)
	assert.Equal(t, int64(1), resp.TotalItems)
}

// Mismo producto dos veces: una sola línea con la cantidad sumada, nunca duplicada.
func TestAddItem_ProductoRepetido_FusionaLinea(t *testing.T) {
	uc := cart.NewCartUseCase(&fakeCartRepo{})

	_, err := uc.AddItem(testUserID, addReq(1, "10.00", 2))
	require.NoError(t, err)
	resp, err := uc.AddItem(testUserID, addReq(1, "10.00", 3))
	require.NoError(t, err)

	require.Len(t, resp.Items, 1, "no debe duplicarse la línea")
	assert.Equal(t, int64(5), resp.Items[0].Quantity)
	assert.True(t, resp.Items[0].LineTotal.Equal(decimal.RequireFromString("50.00")))
	assert.Equal(t, int64(5), resp.TotalItems)
}

func TestAddItem_ProductosDistintos_LineasSeparadas(t *testing.T) {
	uc := cart.NewCartUseCase(&fakeCartRepo{})

	_, err := uc.AddItem(testUserID, addReq(1, "10.00", 1))
	require.NoError(t, err)
	resp, err := uc.AddItem(testUserID, addReq(2, "5.50", 2))
	require.NoError(t, err)

	assert.Len(t, resp.Items, 2)
	assert.Equal(t, int64(3), resp.TotalItems)
}

func TestAddItem_EntradaInvalida_RetornaError(t *testing.T) {
	uc := cart.NewCartUseCase(&fakeCartRepo{})

	_, err := uc.AddItem(testUserID, addReq(0, "10.00", 1))
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "product_id cero")

	_, err = uc.AddItem(testUserID, dto.AddCartItemRequest{
		ProductID: 1, Title: "", UnitPrice: decimal.NewFromInt(10),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "título vacío")

	_, err = uc.AddItem(testUserID, addReq(1, "-0.01", 1))
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "precio negativo")

	_, err = uc.AddItem(testUserID, addReq(1, "10.00", -2))
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "cantidad negativa")
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests RemoveItem / GetCart
// ──────────────────────────────────────────────────────────────────────────────

func TestRemoveItem_EliminaSoloEsaLinea(t *testing.T) {
	uc := cart.NewCartUseCase(&fakeCartRepo{})

	_, err := uc.AddItem(testUserID, addReq(1, "10.00", 2))
	require.NoError(t, err)
	_, err = uc.AddItem(testUserID, addReq(2, "5.00", 1))
	require.NoError(t, err)

	resp, err := uc.RemoveItem(testUserID, 1)
	require.NoError(t, err)

	require.Len(t, resp.Items, 1)
	assert.Equal(t, int64(2), resp.Items[0].ProductID)
}

func TestRemoveItem_ProductoAusente_RetornaNotFound(t *testing.T) {
	uc := cart.NewCartUseCase(&fakeCartRepo{})

	_, err := uc.RemoveItem(testUserID, 99)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestGetCart_Vacio_RetornaListaVaciaSinError(t *testing.T) {
	uc := cart.NewCartUseCase(&fakeCartRepo{})

	resp, err := uc.GetCart(testUserID)
	require.NoError(t, err)
	assert.Empty(t, resp.Items)
	assert.Equal(t, int64(0), resp.TotalItems)
}
