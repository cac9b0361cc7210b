package checkout

import (
	"context"

	"github.com/jhoicas/Tienda-api/internal/domain/entity"
	"github.com/jhoicas/Tienda-api/internal/domain/repository"
)

// CheckoutTxRunner ejecuta una función dentro de una transacción que incluye
// los repos del commit del pedido: pedidos, carrito y usuarios.
// Si fn retorna error el caller hace rollback (no existen commits parciales).
type CheckoutTxRunner interface {
	RunCheckout(ctx context.Context, fn func(
		orderRepo repository.OrderRepository,
		cartRepo repository.CartRepository,
		userRepo repository.UserRepository,
	) error) error
}

// ReceiptPDFGenerator genera el comprobante PDF de un pedido confirmado.
type ReceiptPDFGenerator interface {
	GenerateReceiptPDF(
		ctx context.Context,
		order *entity.Order,
		user *entity.User,
		items []*entity.OrderItem,
	) ([]byte, error)
}
