package checkout

import (
	"context"
	"fmt"

	"github.com/jhoicas/Tienda-api/internal/domain"
	"github.com/jhoicas/Tienda-api/internal/domain/repository"
)

// ReceiptUseCase genera el comprobante (PDF) de un pedido confirmado.
type ReceiptUseCase struct {
	orderRepo repository.OrderRepository
	userRepo  repository.UserRepository
	generator ReceiptPDFGenerator
}

// NewReceiptUseCase construye el caso de uso inyectando sus dependencias.
func NewReceiptUseCase(
	orderRepo repository.OrderRepository,
	userRepo repository.UserRepository,
	generator ReceiptPDFGenerator,
) *ReceiptUseCase {
	return &ReceiptUseCase{
		orderRepo: orderRepo,
		userRepo:  userRepo,
		generator: generator,
	}
}

// DownloadReceiptPDF recupera el pedido, verifica que pertenece al usuario del
// token y genera el PDF del comprobante.
//
// Retorna:
//   - (pdfBytes, filename, nil)  si todo sale bien.
//   - domain.ErrNotFound         si el pedido no existe.
//   - domain.ErrForbidden        si el pedido es de otro usuario.
func (uc *ReceiptUseCase) DownloadReceiptPDF(
	ctx context.Context,
	userID string,
	orderID int64,
) (pdfBytes []byte, filename string, err error) {
	order, err := uc.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: obtener pedido: %w", err)
	}
	if order == nil {
		return nil, "", domain.ErrNotFound
	}
	if order.UserID != userID {
		return nil, "", domain.ErrForbidden
	}

	user, err := uc.userRepo.GetByID(order.UserID)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: obtener usuario: %w", err)
	}
	if user == nil {
		return nil, "", domain.ErrNotFound
	}

	items, err := uc.orderRepo.GetItemsByOrderID(orderID)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: obtener líneas del pedido: %w", err)
	}

	pdfBytes, err = uc.generator.GenerateReceiptPDF(ctx, order, user, items)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: generar comprobante: %w", err)
	}

	filename = fmt.Sprintf("pedido-%d.pdf", order.ID)
	return pdfBytes, filename, nil
}
