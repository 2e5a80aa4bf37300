package sales

import (
	"context"
	"fmt"
	"strings"

	"github.com/akax-pajomel/ventas-api/internal/application/dto"
	domsales "github.com/akax-pajomel/ventas-api/internal/domain/sales"
)

// SuggestNextReceiptNumber lee la venta registrada más recientemente y deriva
// el siguiente número de recibo (prefijo + consecutivo). Es una sugerencia
// pura: no reserva el número, y un Create concurrente con el mismo valor
// seguirá fallando con ErrDuplicateReceipt.
func (uc *UseCase) SuggestNextReceiptNumber(ctx context.Context) (*dto.ReceiptSuggestionResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()

	last, err := uc.saleRepo.FindMostRecent(ctx)
	if err != nil {
		return nil, fmt.Errorf("calcular recibo: %w", err)
	}
	lastReceipt := ""
	if last != nil {
		lastReceipt = last.ReceiptNumber
	}
	return &dto.ReceiptSuggestionResponse{
		Suggestion: domsales.NextReceiptNumber(lastReceipt),
	}, nil
}

// CheckReceiptAvailable reporta si un número de recibo está libre. El recibo
// es opcional: el string vacío siempre está disponible.
func (uc *UseCase) CheckReceiptAvailable(ctx context.Context, value string) (*dto.ReceiptAvailableResponse, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return &dto.ReceiptAvailableResponse{Available: true}, nil
	}

	ctx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()

	existing, err := uc.saleRepo.FindByReceiptNumber(ctx, value)
	if err != nil {
		return nil, fmt.Errorf("verificar recibo: %w", err)
	}
	return &dto.ReceiptAvailableResponse{Available: existing == nil}, nil
}
