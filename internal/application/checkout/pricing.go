package checkout

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Tienda-api/internal/domain"
	"github.com/jhoicas/Tienda-api/internal/domain/entity"
)

// Quote es el desglose de precios de un carrito para un nivel de membresía.
type Quote struct {
	Subtotal      decimal.Decimal
	Shipping      decimal.Decimal
	Total         decimal.Decimal
	TotalQuantity int64
}

// ComputeQuote calcula subtotal, envío y total de un carrito.
//
//	subtotal = Σ (precio × cantidad)
//	shipping = tarifa_del_nivel × Σ cantidad   (tarifa por unidad, no por pedido)
//	total    = subtotal + shipping
//
// Un carrito vacío retorna ErrEmptyCart. Una línea con cantidad < 1 o precio
// negativo retorna ErrInvalidCartData; el caller decide el saneamiento
// (descartar el carrito completo).
func ComputeQuote(items []*entity.CartItem, tier entity.MembershipTier) (Quote, error) {
	if len(items) == 0 {
		return Quote{}, domain.ErrEmptyCart
	}
	var subtotal decimal.Decimal
	var totalQty int64
	for _, item := range items {
		if !item.Valid() {
			return Quote{}, domain.ErrInvalidCartData
		}
		subtotal = subtotal.Add(item.UnitPrice.Mul(decimal.NewFromInt(item.Quantity)))
		totalQty += item.Quantity
	}
	shipping := tier.ShippingRate.Mul(decimal.NewFromInt(totalQty))
	return Quote{
		Subtotal:      subtotal,
		Shipping:      shipping,
		Total:         subtotal.Add(shipping),
		TotalQuantity: totalQty,
	}, nil
}

// pointsDivisor: un punto por cada 100 unidades monetarias gastadas (sin envío).
var pointsDivisor = decimal.NewFromInt(100)

// PointsEarned calcula los puntos ganados por un pedido:
// floor((total − envío) / 100).
func PointsEarned(total, shipping decimal.Decimal) int64 {
	return total.Sub(shipping).Div(pointsDivisor).Floor().IntPart()
}
