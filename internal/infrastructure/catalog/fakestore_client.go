package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Tienda-api/internal/application/dto"
	"github.com/jhoicas/Tienda-api/internal/application/ports"
)

// Verificar en tiempo de compilación que FakeStoreClient implementa CatalogService.
var _ ports.CatalogService = (*FakeStoreClient)(nil)

// FakeStoreClient adaptador que implementa CatalogService contra la Fake Store API
// (https://fakestoreapi.com). Usa net/http de la librería estándar; no requiere SDK.
type FakeStoreClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewFakeStoreClient construye el adaptador.
// baseURL sin slash final (ej. "https://fakestoreapi.com"); timeout de red por petición.
func NewFakeStoreClient(baseURL string, timeout time.Duration) *FakeStoreClient {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &FakeStoreClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// fakeStoreProduct estructura del producto según el API externo.
// El precio llega como número JSON; se decodifica directo a decimal.
type fakeStoreProduct struct {
	ID          int64           `json:"id"`
	Title       string          `json:"title"`
	Price       decimal.Decimal `json:"price"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	Image       string          `json:"image"`
}

// ListProducts obtiene el listado completo de productos publicados.
// Cualquier fallo (red, HTTP no-200, cuerpo inválido) se retorna como error;
// el use case lo traduce a ErrCatalogUnavailable sin tocar ningún estado.
func (c *FakeStoreClient) ListProducts(ctx context.Context) ([]dto.CatalogProductResponse, error) {
	url := c.baseURL + "/products"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("catalog: crear HTTP request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("catalog: timeout o cancelación: %w", ctx.Err())
		}
		return nil, fmt.Errorf("catalog: llamada HTTP fallida: %w", err)
	}
	defer resp.Body.Close()

	rawBody, err := io.ReadAll(io.LimitReader(resp.Body, 4*1024*1024))
	if err != nil {
		return nil, fmt.Errorf("catalog: leer respuesta: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("catalog: HTTP %d: %s", resp.StatusCode, string(rawBody))
	}

	var products []fakeStoreProduct
	if err := json.Unmarshal(rawBody, &products); err != nil {
		return nil, fmt.Errorf("catalog: deserializar respuesta: %w", err)
	}

	out := make([]dto.CatalogProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, dto.CatalogProductResponse{
			ID:          p.ID,
			Title:       p.Title,
			Price:       p.Price,
			Description: p.Description,
			Category:    p.Category,
			Image:       p.Image,
		})
	}
	return out, nil
}
