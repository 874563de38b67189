package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Jawbreaker1989/queenscorner-api/internal/application/payments"
	"github.com/Jawbreaker1989/queenscorner-api/internal/domain/repository"
)

var _ payments.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// RunPayments inicia una transacción con los repos de pagos y negocios
// atados a la tx (registrar/eliminar pago + recalcular anticipo) y hace
// Commit o Rollback.
func (r *TxRunner) RunPayments(ctx context.Context, fn func(
	paymentRepo repository.PaymentRepository,
	projectRepo repository.ProjectRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	paymentRepo := NewPaymentRepository(tx)
	projectRepo := NewProjectRepository(tx)

	if err := fn(paymentRepo, projectRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
