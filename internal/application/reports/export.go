package reports

import (
	"context"
	"fmt"

	"github.com/akax-pajomel/ventas-api/internal/domain/entity"
	"github.com/akax-pajomel/ventas-api/internal/domain/period"
	"github.com/akax-pajomel/ventas-api/internal/domain/report"
)

// Exporter puerto de serialización del informe (CSV, XLSX…).
type Exporter interface {
	Export(ventas []entity.Sale) ([]byte, error)
}

// Export carga las ventas del filtro, las ordena como el historial del
// informe (fecha descendente) y las serializa con el exportador dado.
// Devuelve los bytes y el nombre de archivo sin extensión.
func (uc *UseCase) Export(ctx context.Context, f Filter, ex Exporter) ([]byte, string, error) {
	ventas, rango, err := uc.Load(ctx, f)
	if err != nil {
		return nil, "", err
	}

	data, err := ex.Export(report.HistoryOrdered(ventas))
	if err != nil {
		return nil, "", fmt.Errorf("exportar informe: %w", err)
	}

	uc.log.Info().Int("ventas", len(ventas)).Msg("Informe exportado")
	return data, exportFilename(rango), nil
}

// exportFilename Informe_Ventas_<desde>_al_<hasta>; "Completo" si no hay rango.
func exportFilename(rango *period.DateRange) string {
	desde, hasta := "Completo", "Completo"
	if rango != nil {
		desde = rango.From.Format(dayFormat)
		hasta = rango.To.Format(dayFormat)
	}
	return fmt.Sprintf("Informe_Ventas_%s_al_%s", desde, hasta)
}
