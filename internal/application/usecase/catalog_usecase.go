package usecase

import (
	"context"
	"time"

	"github.com/jhoicas/Tienda-api/internal/application/dto"
	"github.com/jhoicas/Tienda-api/internal/application/ports"
	"github.com/jhoicas/Tienda-api/internal/domain"
)

// catalogTimeout límite superior por consulta al catálogo externo, además del
// timeout de red del cliente HTTP.
const catalogTimeout = 10 * time.Second

// CatalogUseCase expone el catálogo externo a la capa HTTP.
// Un fallo del colaborador externo se reporta como ErrCatalogUnavailable y no
// modifica ningún estado de la tienda.
type CatalogUseCase struct {
	catalog ports.CatalogService
}

// NewCatalogUseCase construye el caso de uso.
func NewCatalogUseCase(catalog ports.CatalogService) *CatalogUseCase {
	return &CatalogUseCase{catalog: catalog}
}

// ListProducts devuelve los productos publicados en el catálogo externo.
func (uc *CatalogUseCase) ListProducts(ctx context.Context) ([]dto.CatalogProductResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, catalogTimeout)
	defer cancel()

	products, err := uc.catalog.ListProducts(ctx)
	if err != nil {
		return nil, domain.ErrCatalogUnavailable
	}
	return products, nil
}
