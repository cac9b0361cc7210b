package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Tienda-api/internal/application/dto"
	"github.com/jhoicas/Tienda-api/internal/application/usecase"
	"github.com/jhoicas/Tienda-api/internal/domain"
)

// CatalogHandler expone el catálogo externo de productos (protegido).
type CatalogHandler struct {
	uc *usecase.CatalogUseCase
}

// NewCatalogHandler construye el handler.
func NewCatalogHandler(uc *usecase.CatalogUseCase) *CatalogHandler {
	return &CatalogHandler{uc: uc}
}

// List godoc
// @Summary      Listar productos del catálogo
// @Tags         catalog
// @Security     Bearer
// @Produce      json
// @Success      200  {array}   dto.CatalogProductResponse
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/catalog [get]
func (h *CatalogHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.ListProducts(c.UserContext())
	if err != nil {
		if errors.Is(err, domain.ErrCatalogUnavailable) {
			return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Code: "CATALOG_FETCH_FAILED", Message: "no fue posible consultar el catálogo de productos"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
