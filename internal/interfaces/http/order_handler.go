package http

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Tienda-api/internal/application/checkout"
	"github.com/jhoicas/Tienda-api/internal/application/dto"
	"github.com/jhoicas/Tienda-api/internal/domain"
)

// OrderHandler expone el historial de pedidos y el comprobante PDF (protegido).
type OrderHandler struct {
	checkoutUC *checkout.CheckoutUseCase
	receiptUC  *checkout.ReceiptUseCase
}

// NewOrderHandler construye el handler.
func NewOrderHandler(checkoutUC *checkout.CheckoutUseCase, receiptUC *checkout.ReceiptUseCase) *OrderHandler {
	return &OrderHandler{checkoutUC: checkoutUC, receiptUC: receiptUC}
}

// List godoc
// @Summary      Historial de pedidos del usuario autenticado
// @Tags         orders
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "máximo de pedidos (default 20)"
// @Param        offset  query  int  false  "desplazamiento"
// @Success      200  {array}  dto.OrderResponse
// @Router       /api/orders [get]
func (h *OrderHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "limit y offset deben ser numéricos"})
	}
	page.DefaultPage()
	out, err := h.checkoutUC.ListOrders(c.UserContext(), GetUserID(c), page.Limit, page.Offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Get godoc
// @Summary      Detalle de un pedido propio
// @Tags         orders
// @Security     Bearer
// @Produce      json
// @Param        id  path  int  true  "número de pedido"
// @Success      200  {object}  dto.OrderResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/orders/{id} [get]
func (h *OrderHandler) Get(c *fiber.Ctx) error {
	orderID, err := parseOrderID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id de pedido debe ser numérico"})
	}
	out, err := h.checkoutUC.GetOrder(c.UserContext(), GetUserID(c), orderID)
	if err != nil {
		return orderError(c, err)
	}
	return c.JSON(out)
}

// DownloadPDF godoc
// @Summary      Descargar el comprobante PDF de un pedido propio
// @Tags         orders
// @Security     Bearer
// @Produce      application/pdf
// @Param        id  path  int  true  "número de pedido"
// @Success      200  {file}  binary
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/orders/{id}/pdf [get]
func (h *OrderHandler) DownloadPDF(c *fiber.Ctx) error {
	orderID, err := parseOrderID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id de pedido debe ser numérico"})
	}
	pdfBytes, filename, err := h.receiptUC.DownloadReceiptPDF(c.UserContext(), GetUserID(c), orderID)
	if err != nil {
		return orderError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, filename))
	return c.Send(pdfBytes)
}

func parseOrderID(c *fiber.Ctx) (int64, error) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, domain.ErrInvalidInput
	}
	return id, nil
}

// orderError traduce los errores de dominio de pedidos a HTTP.
func orderError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "pedido no encontrado"})
	case errors.Is(err, domain.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "el pedido pertenece a otro usuario"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
