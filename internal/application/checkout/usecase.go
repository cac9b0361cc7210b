package checkout

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Tienda-api/internal/application/dto"
	"github.com/jhoicas/Tienda-api/internal/domain"
	"github.com/jhoicas/Tienda-api/internal/domain/entity"
	"github.com/jhoicas/Tienda-api/internal/domain/repository"
)

// CheckoutUseCase unifica el flujo de compra en una sola máquina de estados:
// carrito en preparación → validado → confirmado → carrito vaciado.
// La confirmación corre completa dentro de una transacción: consecutivo del
// pedido, snapshot de líneas, abono de puntos y borrado del carrito, o nada.
type CheckoutUseCase struct {
	txRunner  CheckoutTxRunner
	cartRepo  repository.CartRepository
	userRepo  repository.UserRepository
	orderRepo repository.OrderRepository
}

// NewCheckoutUseCase construye el caso de uso.
func NewCheckoutUseCase(
	txRunner CheckoutTxRunner,
	cartRepo repository.CartRepository,
	userRepo repository.UserRepository,
	orderRepo repository.OrderRepository,
) *CheckoutUseCase {
	return &CheckoutUseCase{
		txRunner:  txRunner,
		cartRepo:  cartRepo,
		userRepo:  userRepo,
		orderRepo: orderRepo,
	}
}

// Quote valida el carrito y devuelve el desglose de precios sin confirmar nada.
//
// Si alguna línea viola los invariantes (cantidad < 1 o precio negativo) el
// carrito completo se descarta en lugar de intentar repararlo, y se retorna
// ErrInvalidCartData para que el usuario vuelva a añadir productos.
func (uc *CheckoutUseCase) Quote(ctx context.Context, userID string) (*dto.QuoteResponse, error) {
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrNotFound
	}
	items, err := uc.cartRepo.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	tier := entity.TierFor(user.Membership)
	quote, err := ComputeQuote(items, tier)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCartData) {
			_ = uc.cartRepo.DeleteByUser(userID) // saneamiento: descartar el carrito corrupto
		}
		return nil, err
	}
	return uc.toQuoteResponse(tier.Name, items, quote), nil
}

// Confirm confirma el pedido del carrito en preparación.
//
// Transiciones: Validated requiere carrito no vacío y líneas válidas; Committed
// requiere dirección de entrega y método de pago; Cleared borra el carrito.
// Todo el commit ocurre en una transacción: si cualquier escritura falla no
// queda pedido, ni consecutivo consumido, ni puntos abonados.
func (uc *CheckoutUseCase) Confirm(ctx context.Context, userID string, in dto.CheckoutRequest) (*dto.OrderResponse, error) {
	address := strings.TrimSpace(in.DeliveryAddress)
	if address == "" {
		return nil, domain.ErrMissingAddress
	}
	payment := strings.TrimSpace(in.PaymentMethod)
	if payment == "" {
		return nil, domain.ErrMissingPayment
	}

	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrNotFound
	}

	items, err := uc.cartRepo.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	tier := entity.TierFor(user.Membership)
	quote, err := ComputeQuote(items, tier)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCartData) {
			_ = uc.cartRepo.DeleteByUser(userID)
		}
		return nil, err
	}

	now := time.Now()
	points := PointsEarned(quote.Total, quote.Shipping)
	var order *entity.Order
	var orderItems []*entity.OrderItem

	err = uc.txRunner.RunCheckout(ctx, func(
		orderRepo repository.OrderRepository,
		cartRepo repository.CartRepository,
		userRepo repository.UserRepository,
	) error {
		// 1) Consecutivo global: lastOrderID + 1, estrictamente creciente.
		orderID, err := orderRepo.NextID()
		if err != nil {
			return err
		}

		// 2) Cabecera del pedido con snapshot de usuario y precios.
		order = &entity.Order{
			ID:              orderID,
			UserID:          user.ID,
			Username:        user.Username,
			Subtotal:        quote.Subtotal,
			Shipping:        quote.Shipping,
			Total:           quote.Total,
			DeliveryAddress: address,
			PaymentMethod:   payment,
			PointsEarned:    points,
			CreatedAt:       now,
		}
		if err := orderRepo.Create(order); err != nil {
			return err
		}

		// 3) Snapshot de las líneas del carrito.
		for _, it := range items {
			oi := &entity.OrderItem{
				ID:        uuid.New().String(),
				OrderID:   orderID,
				ProductID: it.ProductID,
				Title:     it.Title,
				UnitPrice: it.UnitPrice,
				Quantity:  it.Quantity,
			}
			if err := orderRepo.CreateItem(oi); err != nil {
				return err
			}
			orderItems = append(orderItems, oi)
		}

		// 4) Abono de puntos al usuario.
		if points > 0 {
			if err := userRepo.AddPoints(user.ID, points); err != nil {
				return err
			}
		}

		// 5) Cleared: vaciar el carrito en preparación.
		return cartRepo.DeleteByUser(user.ID)
	})
	if err != nil {
		return nil, err
	}

	return uc.toOrderResponse(order, orderItems), nil
}

// GetOrder devuelve un pedido propio por ID con sus líneas.
func (uc *CheckoutUseCase) GetOrder(ctx context.Context, userID string, orderID int64) (*dto.OrderResponse, error) {
	order, err := uc.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	if order.UserID != userID {
		return nil, domain.ErrForbidden
	}
	items, err := uc.orderRepo.GetItemsByOrderID(orderID)
	if err != nil {
		return nil, err
	}
	return uc.toOrderResponse(order, items), nil
}

// ListOrders devuelve el historial de pedidos del usuario (solo los propios).
func (uc *CheckoutUseCase) ListOrders(ctx context.Context, userID string, limit, offset int) ([]dto.OrderResponse, error) {
	if limit <= 0 {
		limit = 20
	}
	orders, err := uc.orderRepo.ListByUser(userID, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.OrderResponse, 0, len(orders))
	for _, o := range orders {
		items, err := uc.orderRepo.GetItemsByOrderID(o.ID)
		if err != nil {
			return nil, err
		}
		out = append(out, *uc.toOrderResponse(o, items))
	}
	return out, nil
}

func (uc *CheckoutUseCase) toQuoteResponse(membership string, items []*entity.CartItem, q Quote) *dto.QuoteResponse {
	resp := &dto.QuoteResponse{
		Membership: membership,
		Items:      make([]dto.CartItemResponse, 0, len(items)),
		Subtotal:   q.Subtotal.Round(2),
		Shipping:   q.Shipping.Round(2),
		Total:      q.Total.Round(2),
	}
	for _, it := range items {
		resp.Items = append(resp.Items, dto.CartItemResponse{
			ProductID: it.ProductID,
			Title:     it.Title,
			UnitPrice: it.UnitPrice,
			Quantity:  it.Quantity,
			LineTotal: it.UnitPrice.Mul(decimal.NewFromInt(it.Quantity)),
		})
	}
	return resp
}

func (uc *CheckoutUseCase) toOrderResponse(o *entity.Order, items []*entity.OrderItem) *dto.OrderResponse {
	resp := &dto.OrderResponse{
		ID:              o.ID,
		Username:        o.Username,
		Subtotal:        o.Subtotal.Round(2),
		Shipping:        o.Shipping.Round(2),
		Total:           o.Total.Round(2),
		DeliveryAddress: o.DeliveryAddress,
		PaymentMethod:   o.PaymentMethod,
		PointsEarned:    o.PointsEarned,
		Date:            o.CreatedAt.Format("2006-01-02"),
		Items:           make([]dto.OrderItemResponse, 0, len(items)),
	}
	for _, it := range items {
		resp.Items = append(resp.Items, dto.OrderItemResponse{
			ProductID: it.ProductID,
			Title:     it.Title,
			UnitPrice: it.UnitPrice,
			Quantity:  it.Quantity,
			LineTotal: it.UnitPrice.Mul(decimal.NewFromInt(it.Quantity)),
		})
	}
	return resp
}
