package checkout_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Tienda-api/internal/application/checkout"
	"github.com/jhoicas/Tienda-api/internal/domain"
	"github.com/jhoicas/Tienda-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

func item(productID int64, price string, qty int64) *entity.CartItem {
	return &entity.CartItem{
		ID:        "test-item",
		UserID:    "test-user",
		ProductID: productID,
		Title:     "Producto de prueba",
		UnitPrice: decimal.RequireFromString(price),
		Quantity:  qty,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests ComputeQuote — desglose de precios
// ──────────────────────────────────────────────────────────────────────────────

// Nivel silver (0.75/unidad): 2×10.00 + 1×5.00 = 25.00 de subtotal,
// 3 unidades × 0.75 = 2.25 de envío, total 27.25.
func TestComputeQuote_Silver_EnvioPorUnidad(t *testing.T) {
	items := []*entity.CartItem{
		item(1, "10.00", 2),
		item(2, "5.00", 1),
	}
	q, err := checkout.ComputeQuote(items, entity.TierFor(entity.MembershipSilver))
	require.NoError(t, err)

	assert.True(t, q.Subtotal.Equal(decimal.RequireFromString("25.00")), "subtotal: %s", q.Subtotal)
	assert.True(t, q.Shipping.Equal(decimal.RequireFromString("2.25")), "envío: %s", q.Shipping)
	assert.True(t, q.Total.Equal(decimal.RequireFromString("27.25")), "total: %s", q.Total)
	assert.Equal(t, int64(3), q.TotalQuantity)
}

// Nivel platinum: envío gratis sin importar cuántas unidades lleve el carrito.
func TestComputeQuote_Platinum_EnvioGratis(t *testing.T) {
	items := []*entity.CartItem{item(1, "19.99", 10)}
	q, err := checkout.ComputeQuote(items, entity.TierFor(entity.MembershipPlatinum))
	require.NoError(t, err)

	assert.True(t, q.Shipping.IsZero(), "envío platinum debe ser 0: %s", q.Shipping)
	assert.True(t, q.Total.Equal(q.Subtotal), "total debe igualar al subtotal")
}

// Membresía desconocida cae al nivel bronze (1.00/unidad).
func TestComputeQuote_MembresiaDesconocida_UsaBronze(t *testing.T) {
	items := []*entity.CartItem{item(1, "10.00", 2)}
	q, err := checkout.ComputeQuote(items, entity.TierFor("diamond"))
	require.NoError(t, err)

	assert.True(t, q.Shipping.Equal(decimal.RequireFromString("2.00")), "envío bronze: %s", q.Shipping)
}

// Carrito vacío no se puede cotizar.
func TestComputeQuote_CarritoVacio_RetornaError(t *testing.T) {
	_, err := checkout.ComputeQuote(nil, entity.TierFor(entity.MembershipBronze))
	assert.ErrorIs(t, err, domain.ErrEmptyCart)
}

// Una línea con cantidad < 1 invalida el carrito completo.
func TestComputeQuote_CantidadInvalida_RetornaError(t *testing.T) {
	items := []*entity.CartItem{
		item(1, "10.00", 2),
		item(2, "5.00", 0),
	}
	_, err := checkout.ComputeQuote(items, entity.TierFor(entity.MembershipGold))
	assert.ErrorIs(t, err, domain.ErrInvalidCartData)
}

// Una línea con precio negativo invalida el carrito completo.
func TestComputeQuote_PrecioNegativo_RetornaError(t *testing.T) {
	items := []*entity.CartItem{item(1, "-1.00", 1)}
	_, err := checkout.ComputeQuote(items, entity.TierFor(entity.MembershipGold))
	assert.ErrorIs(t, err, domain.ErrInvalidCartData)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests PointsEarned — un punto por cada 100 gastados (sin envío)
// ──────────────────────────────────────────────────────────────────────────────

func TestPointsEarned_DescuentaEnvioYTrunca(t *testing.T) {
	cases := []struct {
		nombre   string
		total    string
		shipping string
		want     int64
	}{
		{"total 127.25 con envío 2.25 gana 1 punto", "127.25", "2.25", 1},
		{"menos de 100 sin envío no gana puntos", "99.99", "0", 0},
		{"exactamente 100 gana 1 punto", "100.00", "0", 1},
		{"250 sin envío gana 2 puntos", "250.00", "0", 2},
		{"el envío no suma puntos", "105.00", "10.00", 0},
	}
	for _, tc := range cases {
		t.Run(tc.nombre, func(t *testing.T) {
			got := checkout.PointsEarned(
				decimal.RequireFromString(tc.total),
				decimal.RequireFromString(tc.shipping),
			)
			assert.Equal(t, tc.want, got)
		})
	}
}
