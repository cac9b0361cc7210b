package dto

import "github.com/shopspring/decimal"

// CatalogProductResponse un producto del catálogo externo (Fake Store API).
type CatalogProductResponse struct {
	ID          int64           `json:"id"`
	Title       string          `json:"title"`
	Price       decimal.Decimal `json:"price"`
	Description string          `json:"description,omitempty"`
	Category    string          `json:"category,omitempty"`
	Image       string          `json:"image"`
}
