package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// CartItem representa una línea del carrito en preparación (aún no comprada).
// Hay a lo sumo una línea por (UserID, ProductID): añadir el mismo producto
// incrementa Quantity en lugar de crear otra línea.
type CartItem struct {
	ID        string
	UserID    string
	ProductID int64 // id numérico del producto en el catálogo externo
	Title     string
	UnitPrice decimal.Decimal
	Quantity  int64 // siempre >= 1
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Valid verifica los invariantes de la línea: precio no negativo y cantidad >= 1.
func (i *CartItem) Valid() bool {
	return i != nil && i.Quantity >= 1 && !i.UnitPrice.IsNegative()
}
