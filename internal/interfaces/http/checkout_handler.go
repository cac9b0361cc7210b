package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Tienda-api/internal/application/checkout"
	"github.com/jhoicas/Tienda-api/internal/application/dto"
	"github.com/jhoicas/Tienda-api/internal/domain"
)

// CheckoutHandler maneja la cotización y confirmación del pedido (protegido).
type CheckoutHandler struct {
	uc *checkout.CheckoutUseCase
}

// NewCheckoutHandler construye el handler.
func NewCheckoutHandler(uc *checkout.CheckoutUseCase) *CheckoutHandler {
	return &CheckoutHandler{uc: uc}
}

// Quote godoc
// @Summary      Cotizar el carrito (subtotal, envío por membresía, total)
// @Tags         checkout
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.QuoteResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Failure      422  {object}  dto.ErrorResponse
// @Router       /api/checkout/quote [get]
func (h *CheckoutHandler) Quote(c *fiber.Ctx) error {
	out, err := h.uc.Quote(c.UserContext(), GetUserID(c))
	if err != nil {
		return checkoutError(c, err)
	}
	return c.JSON(out)
}

// Confirm godoc
// @Summary      Confirmar el pedido del carrito en preparación
// @Tags         checkout
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CheckoutRequest  true  "delivery_address, payment_method"
// @Success      201   {object}  dto.OrderResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/checkout [post]
func (h *CheckoutHandler) Confirm(c *fiber.Ctx) error {
	var in dto.CheckoutRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Confirm(c.UserContext(), GetUserID(c), in)
	if err != nil {
		return checkoutError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// checkoutError traduce los errores de dominio del checkout a HTTP.
func checkoutError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrEmptyCart):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "EMPTY_CART", Message: "el carrito está vacío; añade productos antes de pasar por caja"})
	case errors.Is(err, domain.ErrInvalidCartData):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "INVALID_CART_DATA", Message: "los datos del carrito eran inválidos y el carrito fue descartado; vuelve a añadir productos"})
	case errors.Is(err, domain.ErrMissingAddress):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_DELIVERY_ADDRESS", Message: "ingresa una dirección de entrega"})
	case errors.Is(err, domain.ErrMissingPayment):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_PAYMENT_METHOD", Message: "selecciona un método de pago"})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "usuario no encontrado"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
