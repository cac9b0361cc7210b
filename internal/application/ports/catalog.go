package ports

import (
	"context"

	"github.com/jhoicas/Tienda-api/internal/application/dto"
)

// CatalogService define el puerto de salida hacia el catálogo externo de
// productos. Cualquier adaptador (Fake Store API, mock) debe implementar esta
// interfaz. Siguiendo el principio de inversión de dependencias (DIP), la capa
// de aplicación solo conoce este contrato, no la implementación concreta.
type CatalogService interface {
	// ListProducts obtiene el listado de productos publicados.
	// El contexto debe llevar un timeout para evitar bloqueos en llamadas externas.
	ListProducts(ctx context.Context) ([]dto.CatalogProductResponse, error)
}
