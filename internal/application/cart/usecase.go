package cart

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Tienda-api/internal/application/dto"
	"github.com/jhoicas/Tienda-api/internal/domain"
	"github.com/jhoicas/Tienda-api/internal/domain/entity"
	"github.com/jhoicas/Tienda-api/internal/domain/repository"
)

// CartUseCase casos de uso del carrito en preparación.
type CartUseCase struct {
	cartRepo repository.CartRepository
}

// NewCartUseCase construye el caso de uso.
func NewCartUseCase(cartRepo repository.CartRepository) *CartUseCase {
	return &CartUseCase{cartRepo: cartRepo}
}

// AddItem añade un producto al carrito. Si ya existe una línea con el mismo
// product_id se incrementa su cantidad (merge); nunca se duplica la línea.
func (uc *CartUseCase) AddItem(userID string, in dto.AddCartItemRequest) (*dto.CartResponse, error) {
	if in.ProductID <= 0 || in.Title == "" || in.UnitPrice.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	qty := in.Quantity
	if qty == 0 {
		qty = 1 // el botón "Add to Cart" añade de a una unidad
	}
	if qty < 1 {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	existing, err := uc.cartRepo.GetByUserAndProduct(userID, in.ProductID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		existing.Quantity += qty
		existing.UpdatedAt = now
		if err := uc.cartRepo.Update(existing); err != nil {
			return nil, err
		}
	} else {
		item := &entity.CartItem{
			ID:        uuid.New().String(),
			UserID:    userID,
			ProductID: in.ProductID,
			Title:     in.Title,
			UnitPrice: in.UnitPrice,
			Quantity:  qty,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := uc.cartRepo.Create(item); err != nil {
			return nil, err
		}
	}
	return uc.GetCart(userID)
}

// GetCart devuelve el carrito del usuario con el total de unidades.
func (uc *CartUseCase) GetCart(userID string) (*dto.CartResponse, error) {
	items, err := uc.cartRepo.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	return ToCartResponse(items), nil
}

// RemoveItem elimina una línea del carrito por product_id.
func (uc *CartUseCase) RemoveItem(userID string, productID int64) (*dto.CartResponse, error) {
	if productID <= 0 {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.cartRepo.GetByUserAndProduct(userID, productID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, domain.ErrNotFound
	}
	if err := uc.cartRepo.DeleteByUserAndProduct(userID, productID); err != nil {
		return nil, err
	}
	return uc.GetCart(userID)
}

// ToCartResponse convierte las líneas del carrito a DTO con totales por línea.
func ToCartResponse(items []*entity.CartItem) *dto.CartResponse {
	resp := &dto.CartResponse{Items: make([]dto.CartItemResponse, 0, len(items))}
	for _, it := range items {
		qty := decimal.NewFromInt(it.Quantity)
		resp.Items = append(resp.Items, dto.CartItemResponse{
			ProductID: it.ProductID,
			Title:     it.Title,
			UnitPrice: it.UnitPrice,
			Quantity:  it.Quantity,
			LineTotal: it.UnitPrice.Mul(qty),
		})
		resp.TotalItems += it.Quantity
	}
	return resp
}
