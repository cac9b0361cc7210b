package checkout_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Tienda-api/internal/application/checkout"
	"github.com/jhoicas/Tienda-api/internal/domain"
	"github.com/jhoicas/Tienda-api/internal/domain/entity"
)

// fakePDFGenerator devuelve bytes fijos sin renderizar nada.
type fakePDFGenerator struct {
	called bool
}

func (g *fakePDFGenerator) GenerateReceiptPDF(
	_ context.Context,
	_ *entity.Order,
	_ *entity.User,
	_ []*entity.OrderItem,
) ([]byte, error) {
	g.called = true
	return []byte("%PDF-fake"), nil
}

func TestDownloadReceiptPDF_PedidoPropio_GeneraPDF(t *testing.T) {
	checkoutUC, cartRepo, orderRepo, userRepo := buildCheckout(silverUser())
	addCartLine(cartRepo, 1, "10.00", 1)
	confirmed, err := checkoutUC.Confirm(context.Background(), testUserID, validCheckoutReq())
	require.NoError(t, err)

	gen := &fakePDFGenerator{}
	uc := checkout.NewReceiptUseCase(orderRepo, userRepo, gen)

	pdfBytes, filename, err := uc.DownloadReceiptPDF(context.Background(), testUserID, confirmed.ID)
	require.NoError(t, err)

	assert.True(t, gen.called)
	assert.Equal(t, []byte("%PDF-fake"), pdfBytes)
	assert.Equal(t, "pedido-1.pdf", filename)
}

func TestDownloadReceiptPDF_PedidoAjeno_RetornaForbidden(t *testing.T) {
	checkoutUC, cartRepo, orderRepo, userRepo := buildCheckout(silverUser())
	addCartLine(cartRepo, 1, "10.00", 1)
	confirmed, err := checkoutUC.Confirm(context.Background(), testUserID, validCheckoutReq())
	require.NoError(t, err)

	uc := checkout.NewReceiptUseCase(orderRepo, userRepo, &fakePDFGenerator{})

	_, _, err = uc.DownloadReceiptPDF(context.Background(), "otro-usuario", confirmed.ID)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestDownloadReceiptPDF_PedidoInexistente_RetornaNotFound(t *testing.T) {
	_, _, orderRepo, userRepo := buildCheckout(silverUser())
	uc := checkout.NewReceiptUseCase(orderRepo, userRepo, &fakePDFGenerator{})

	_, _, err := uc.DownloadReceiptPDF(context.Background(), testUserID, 42)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
