package dto

import "github.com/shopspring/decimal"

// CheckoutRequest entrada para confirmar el pedido.
type CheckoutRequest struct {
	DeliveryAddress string `json:"delivery_address" validate:"required"`
	PaymentMethod   string `json:"payment_method" validate:"required"`
}

// QuoteResponse desglose de precios del carrito sin confirmar el pedido
// (el resumen que la página de checkout muestra antes de "Confirm Order").
type QuoteResponse struct {
	Membership string             `json:"membership"`
	Items      []CartItemResponse `json:"items"`
	Subtotal   decimal.Decimal    `json:"subtotal"`
	Shipping   decimal.Decimal    `json:"shipping"`
	Total      decimal.Decimal    `json:"total"`
}

// OrderItemResponse snapshot de una línea dentro de un pedido.
type OrderItemResponse struct {
	ProductID int64           `json:"product_id"`
	Title     string          `json:"title"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Quantity  int64           `json:"quantity"`
	LineTotal decimal.Decimal `json:"line_total"`
}

// OrderResponse salida de un pedido confirmado.
type OrderResponse struct {
	ID              int64               `json:"id"`
	Username        string              `json:"username"`
	Subtotal        decimal.Decimal     `json:"subtotal"`
	Shipping        decimal.Decimal     `json:"shipping"`
	Total           decimal.Decimal     `json:"total"`
	DeliveryAddress string              `json:"delivery_address"`
	PaymentMethod   string              `json:"payment_method"`
	PointsEarned    int64               `json:"points_earned"`
	Date            string              `json:"date"`
	Items           []OrderItemResponse `json:"items"`
}
