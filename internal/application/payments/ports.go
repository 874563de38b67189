package payments

import (
	"context"

	"github.com/Jawbreaker1989/queenscorner-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción con los repos de
// pagos y negocios. El alta o el borrado de un pago y el recálculo del
// anticipo del negocio deben confirmarse juntos o no confirmarse.
type TxRunner interface {
	RunPayments(ctx context.Context, fn func(
		paymentRepo repository.PaymentRepository,
		projectRepo repository.ProjectRepository,
	) error) error
}
