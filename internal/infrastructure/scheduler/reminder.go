// Package scheduler corre tareas periódicas. Por ahora una sola: el
// recordatorio diario de cuentas por cobrar.
package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/shopspring/decimal"

	"github.com/akax-pajomel/ventas-api/internal/domain/entity"
	"github.com/akax-pajomel/ventas-api/internal/domain/repository"
	"github.com/akax-pajomel/ventas-api/pkg/logger"
)

// reminderSpec cron estándar de 5 campos: todos los días a las 07:00.
const reminderSpec = "0 7 * * *"

// jobTimeout límite de cada corrida del recordatorio.
const jobTimeout = 30 * time.Second

// Reminder revisa a diario las ventas con saldo pendiente y deja constancia
// en el log para el seguimiento de cobros.
type Reminder struct {
	saleRepo repository.SaleRepository
	log      *logger.Logger
	cron     *cron.Cron
}

// NewReminder construye el recordatorio.
func NewReminder(saleRepo repository.SaleRepository, log *logger.Logger) *Reminder {
	return &Reminder{saleRepo: saleRepo, log: log, cron: cron.New()}
}

// Start programa la corrida diaria y arranca el cron.
func (r *Reminder) Start() error {
	if _, err := r.cron.AddFunc(reminderSpec, r.RunOnce); err != nil {
		return fmt.Errorf("programar recordatorio: %w", err)
	}
	r.cron.Start()
	r.log.Info().Str("cron", reminderSpec).Msg("Recordatorio de cuentas por cobrar programado")
	return nil
}

// Stop detiene el cron y espera a que termine la corrida en curso.
func (r *Reminder) Stop() {
	ctx := r.cron.Stop()
	<-ctx.Done()
}

// RunOnce ejecuta una corrida del recordatorio. Expuesta para poder
// dispararla a mano.
func (r *Reminder) RunOnce() {
	ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
	defer cancel()

	ventas, err := r.saleRepo.List(ctx)
	if err != nil {
		r.log.Error().Err(err).Msg("Recordatorio: no se pudo listar ventas")
		return
	}

	var (
		pendientes int
		saldo      decimal.Decimal
	)
	for i := range ventas {
		v := &ventas[i]
		if v.PaymentStatus == entity.StatusPaid {
			continue
		}
		if v.PendingBalance.IsPositive() {
			pendientes++
			saldo = saldo.Add(v.PendingBalance)
		}
	}

	if pendientes == 0 {
		r.log.Info().Msg("Recordatorio: sin cuentas por cobrar")
		return
	}
	r.log.Warn().
		Int("ventas_pendientes", pendientes).
		Str("saldo_total", saldo.StringFixed(2)).
		Msg("Recordatorio: hay cuentas por cobrar")
}
