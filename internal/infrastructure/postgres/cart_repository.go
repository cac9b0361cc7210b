package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Tienda-api/internal/domain/entity"
	"github.com/jhoicas/Tienda-api/internal/domain/repository"
)

var _ repository.CartRepository = (*CartRepo)(nil)

// CartRepo implementación de CartRepository sobre PostgreSQL (usable con pool o tx).
// El constraint único (user_id, product_id) respalda el merge por producto.
type CartRepo struct {
	q Querier
}

// NewCartRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCartRepository(q Querier) *CartRepo {
	return &CartRepo{q: q}
}

// Create persiste una nueva línea del carrito.
func (r *CartRepo) Create(item *entity.CartItem) error {
	query := `
		INSERT INTO cart_items (id, user_id, product_id, title, unit_price, quantity, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.UserID, item.ProductID, item.Title, item.UnitPrice, item.Quantity,
		item.CreatedAt, item.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert cart item: %w", err)
	}
	return nil
}

// Update actualiza cantidad y precio de una línea existente.
func (r *CartRepo) Update(item *entity.CartItem) error {
	query := `
		UPDATE cart_items SET title = $2, unit_price = $3, quantity = $4, updated_at = $5
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.Title, item.UnitPrice, item.Quantity, item.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update cart item: %w", err)
	}
	return nil
}

// GetByUserAndProduct obtiene la línea del usuario para un producto, o nil si no existe.
func (r *CartRepo) GetByUserAndProduct(userID string, productID int64) (*entity.CartItem, error) {
	query := `
		SELECT id, user_id, product_id, title, unit_price, quantity, created_at, updated_at
		FROM cart_items WHERE user_id = $1 AND product_id = $2`
	var it entity.CartItem
	err := r.q.QueryRow(context.Background(), query, userID, productID).Scan(
		&it.ID, &it.UserID, &it.ProductID, &it.Title, &it.UnitPrice, &it.Quantity,
		&it.CreatedAt, &it.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get cart item: %w", err)
	}
	return &it, nil
}

// ListByUser lista las líneas del carrito del usuario en orden de inserción.
func (r *CartRepo) ListByUser(userID string) ([]*entity.CartItem, error) {
	query := `
		SELECT id, user_id, product_id, title, unit_price, quantity, created_at, updated_at
		FROM cart_items WHERE user_id = $1 ORDER BY created_at ASC`
	rows, err := r.q.Query(context.Background(), query, userID)
	if err != nil {
		return nil, fmt.Errorf("list cart items: %w", err)
	}
	defer rows.Close()
	var list []*entity.CartItem
	for rows.Next() {
		var it entity.CartItem
		if err := rows.Scan(&it.ID, &it.UserID, &it.ProductID, &it.Title, &it.UnitPrice, &it.Quantity, &it.CreatedAt, &it.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan cart item: %w", err)
		}
		list = append(list, &it)
	}
	return list, rows.Err()
}

// DeleteByUserAndProduct elimina una línea por producto.
func (r *CartRepo) DeleteByUserAndProduct(userID string, productID int64) error {
	_, err := r.q.Exec(context.Background(),
		`DELETE FROM cart_items WHERE user_id = $1 AND product_id = $2`, userID, productID)
	if err != nil {
		return fmt.Errorf("delete cart item: %w", err)
	}
	return nil
}

// DeleteByUser vacía el carrito completo del usuario.
func (r *CartRepo) DeleteByUser(userID string) error {
	_, err := r.q.Exec(context.Background(),
		`DELETE FROM cart_items WHERE user_id = $1`, userID)
	if err != nil {
		return fmt.Errorf("clear cart: %w", err)
	}
	return nil
}
