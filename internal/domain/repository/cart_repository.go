package repository

import "github.com/jhoicas/Tienda-api/internal/domain/entity"

// CartRepository define el puerto de persistencia para el carrito en preparación.
type CartRepository interface {
	Create(item *entity.CartItem) error
	Update(item *entity.CartItem) error
	GetByUserAndProduct(userID string, productID int64) (*entity.CartItem, error)
	ListByUser(userID string) ([]*entity.CartItem, error)
	DeleteByUserAndProduct(userID string, productID int64) error
	// DeleteByUser vacía el carrito completo (tras confirmar el pedido o al
	// descartar un carrito corrupto).
	DeleteByUser(userID string) error
}
