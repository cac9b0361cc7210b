package dto

import "github.com/shopspring/decimal"

// AddCartItemRequest entrada para añadir un producto al carrito.
// Quantity es opcional: si viene en cero se asume 1, como el botón "Add to Cart".
type AddCartItemRequest struct {
	ProductID int64           `json:"product_id" validate:"required,gt=0"`
	Title     string          `json:"title" validate:"required,max=300"`
	UnitPrice decimal.Decimal `json:"unit_price" validate:"required"`
	Quantity  int64           `json:"quantity" validate:"omitempty,min=1"`
}

// CartItemResponse salida de una línea del carrito.
type CartItemResponse struct {
	ProductID int64           `json:"product_id"`
	Title     string          `json:"title"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Quantity  int64           `json:"quantity"`
	LineTotal decimal.Decimal `json:"line_total"`
}

// CartResponse salida del carrito completo.
// TotalItems es la suma de cantidades (el contador del ícono del carrito).
type CartResponse struct {
	Items      []CartItemResponse `json:"items"`
	TotalItems int64              `json:"total_items"`
}
