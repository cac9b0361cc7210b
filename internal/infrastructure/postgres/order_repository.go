package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Tienda-api/internal/domain/entity"
	"github.com/jhoicas/Tienda-api/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo implementación de OrderRepository sobre PostgreSQL (usable con pool o tx).
// El libro de pedidos es append-only: no hay UPDATE ni DELETE sobre orders.
type OrderRepo struct {
	q Querier
}

// NewOrderRepository construye el adaptador. Pasar pool o tx (Querier).
func NewOrderRepository(q Querier) *OrderRepo {
	return &OrderRepo{q: q}
}

// NextID incrementa el consecutivo global (fila única de order_counter) y
// devuelve el nuevo valor. El upsert crea la fila con 1 en el primer pedido.
// Dentro de una transacción el UPDATE bloquea la fila, así dos commits
// concurrentes no pueden obtener el mismo consecutivo.
func (r *OrderRepo) NextID() (int64, error) {
	query := `
		INSERT INTO order_counter (id, last_order_id) VALUES (1, 1)
		ON CONFLICT (id) DO UPDATE SET last_order_id = order_counter.last_order_id + 1
		RETURNING last_order_id`
	var id int64
	if err := r.q.QueryRow(context.Background(), query).Scan(&id); err != nil {
		return 0, fmt.Errorf("next order id: %w", err)
	}
	return id, nil
}

// Create persiste la cabecera de un pedido.
func (r *OrderRepo) Create(order *entity.Order) error {
	query := `
		INSERT INTO orders (id, user_id, username, subtotal, shipping, total, delivery_address, payment_method, points_earned, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		order.ID, order.UserID, order.Username, order.Subtotal, order.Shipping, order.Total,
		order.DeliveryAddress, order.PaymentMethod, order.PointsEarned, order.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert order: %w", err)
	}
	return nil
}

// CreateItem persiste una línea (snapshot) de un pedido.
func (r *OrderRepo) CreateItem(item *entity.OrderItem) error {
	query := `
		INSERT INTO order_items (id, order_id, product_id, title, unit_price, quantity)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.OrderID, item.ProductID, item.Title, item.UnitPrice, item.Quantity,
	)
	if err != nil {
		return fmt.Errorf("insert order item: %w", err)
	}
	return nil
}

// GetByID obtiene la cabecera de un pedido.
func (r *OrderRepo) GetByID(id int64) (*entity.Order, error) {
	query := `
		SELECT id, user_id, username, subtotal, shipping, total, delivery_address, payment_method, points_earned, created_at
		FROM orders WHERE id = $1`
	var o entity.Order
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&o.ID, &o.UserID, &o.Username, &o.Subtotal, &o.Shipping, &o.Total,
		&o.DeliveryAddress, &o.PaymentMethod, &o.PointsEarned, &o.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order by id: %w", err)
	}
	return &o, nil
}

// GetItemsByOrderID obtiene las líneas de un pedido.
func (r *OrderRepo) GetItemsByOrderID(orderID int64) ([]*entity.OrderItem, error) {
	query := `
		SELECT id, order_id, product_id, title, unit_price, quantity
		FROM order_items WHERE order_id = $1 ORDER BY product_id ASC`
	rows, err := r.q.Query(context.Background(), query, orderID)
	if err != nil {
		return nil, fmt.Errorf("list order items: %w", err)
	}
	defer rows.Close()
	var list []*entity.OrderItem
	for rows.Next() {
		var it entity.OrderItem
		if err := rows.Scan(&it.ID, &it.OrderID, &it.ProductID, &it.Title, &it.UnitPrice, &it.Quantity); err != nil {
			return nil, fmt.Errorf("scan order item: %w", err)
		}
		list = append(list, &it)
	}
	return list, rows.Err()
}

// ListByUser lista los pedidos del usuario, más recientes primero.
func (r *OrderRepo) ListByUser(userID string, limit, offset int) ([]*entity.Order, error) {
	query := `
		SELECT id, user_id, username, subtotal, shipping, total, delivery_address, payment_method, points_earned, created_at
		FROM orders WHERE user_id = $1 ORDER BY id DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()
	var list []*entity.Order
	for rows.Next() {
		var o entity.Order
		if err := rows.Scan(&o.ID, &o.UserID, &o.Username, &o.Subtotal, &o.Shipping, &o.Total, &o.DeliveryAddress, &o.PaymentMethod, &o.PointsEarned, &o.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		list = append(list, &o)
	}
	return list, rows.Err()
}
