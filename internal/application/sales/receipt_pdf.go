package sales

import (
	"context"
	"fmt"

	"github.com/akax-pajomel/ventas-api/internal/domain"
	"github.com/akax-pajomel/ventas-api/internal/domain/entity"
	domsales "github.com/akax-pajomel/ventas-api/internal/domain/sales"
	"github.com/akax-pajomel/ventas-api/internal/domain/repository"
	"github.com/akax-pajomel/ventas-api/pkg/logger"
)

// ReceiptGenerator puerto del generador del documento de recibo.
type ReceiptGenerator interface {
	GenerateReceipt(ctx context.Context, venta *entity.Sale) ([]byte, error)
}

// ReceiptPDFUseCase genera el recibo imprimible de una venta.
type ReceiptPDFUseCase struct {
	saleRepo repository.SaleRepository
	gen      ReceiptGenerator
	log      *logger.Logger
}

// NewReceiptPDFUseCase construye el caso de uso.
func NewReceiptPDFUseCase(saleRepo repository.SaleRepository, gen ReceiptGenerator, log *logger.Logger) *ReceiptPDFUseCase {
	return &ReceiptPDFUseCase{saleRepo: saleRepo, gen: gen, log: log}
}

// Generate produce los bytes del PDF y el nombre de archivo sugerido.
func (uc *ReceiptPDFUseCase) Generate(ctx context.Context, saleID string) ([]byte, string, error) {
	ctx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()

	venta, err := uc.saleRepo.GetByID(ctx, saleID)
	if err != nil {
		return nil, "", fmt.Errorf("obtener venta: %w", err)
	}
	if venta == nil {
		return nil, "", domain.ErrNotFound
	}

	pdfBytes, err := uc.gen.GenerateReceipt(ctx, venta)
	if err != nil {
		return nil, "", fmt.Errorf("generar recibo: %w", err)
	}

	filename := fmt.Sprintf("Recibo_%s.pdf", domsales.ReceiptLabel(venta.ReceiptNumber, venta.ID))
	uc.log.Info().Str("sale_id", saleID).Str("archivo", filename).Msg("recibo generado")
	return pdfBytes, filename, nil
}
