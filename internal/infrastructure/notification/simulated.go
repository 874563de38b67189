// Package notification envía los avisos al cliente cuando su orden de
// trabajo queda terminada. El envío es simulado: se registra en el log con
// una latencia fija, como haría un proveedor de email/SMS real.
package notification

import (
	"context"
	"time"

	"github.com/Jawbreaker1989/queenscorner-api/internal/application/ports"
	"github.com/Jawbreaker1989/queenscorner-api/internal/domain/entity"
	"github.com/Jawbreaker1989/queenscorner-api/pkg/logger"
)

// delay latencia simulada del proveedor.
const delay = 500 * time.Millisecond

var _ ports.Notifier = (*Simulated)(nil)

// Simulated notificador de desarrollo/demo.
type Simulated struct {
	log *logger.Logger
}

// NewSimulated construye el notificador.
func NewSimulated(log *logger.Logger) *Simulated {
	return &Simulated{log: log}
}

// NotifyWorkOrderFinished simula el aviso al cliente respetando la
// cancelación del contexto (el pool de tareas impone el timeout).
func (n *Simulated) NotifyWorkOrderFinished(ctx context.Context, client *entity.Client, order *entity.WorkOrder) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(delay):
	}
	n.log.Info().
		Str("orden", order.Code).
		Str("cliente", client.Name).
		Str("email", client.Email).
		Msg("notificación enviada: orden de trabajo terminada")
	return nil
}
