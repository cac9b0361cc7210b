package repository

import "github.com/jhoicas/Tienda-api/internal/domain/entity"

// OrderRepository define el puerto de persistencia para el libro de pedidos.
// Los pedidos son inmutables: no hay Update ni Delete.
type OrderRepository interface {
	// NextID incrementa el consecutivo global de pedidos y devuelve el nuevo valor.
	// Debe invocarse dentro de la transacción del commit para que los IDs sean
	// únicos y estrictamente crecientes.
	NextID() (int64, error)
	Create(order *entity.Order) error
	CreateItem(item *entity.OrderItem) error
	GetByID(id int64) (*entity.Order, error)
	GetItemsByOrderID(orderID int64) ([]*entity.OrderItem, error)
	ListByUser(userID string, limit, offset int) ([]*entity.Order, error)
}
