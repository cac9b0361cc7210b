package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order representa un pedido confirmado del libro de pedidos (append-only).
// El ID es un consecutivo global estrictamente creciente; el pedido es inmutable
// una vez creado.
type Order struct {
	ID              int64
	UserID          string
	Username        string // snapshot del username al momento de la compra
	Subtotal        decimal.Decimal
	Shipping        decimal.Decimal
	Total           decimal.Decimal // Subtotal + Shipping
	DeliveryAddress string
	PaymentMethod   string
	PointsEarned    int64
	CreatedAt       time.Time
}

// OrderItem es el snapshot de una línea del carrito dentro de un pedido.
type OrderItem struct {
	ID        string
	OrderID   int64
	ProductID int64
	Title     string
	UnitPrice decimal.Decimal
	Quantity  int64
}
