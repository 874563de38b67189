// Package payments casos de uso del libro de pagos: alta y borrado de
// abonos con recálculo transaccional del anticipo del negocio.
package payments

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Jawbreaker1989/queenscorner-api/internal/application/dto"
	"github.com/Jawbreaker1989/queenscorner-api/internal/application/ports"
	"github.com/Jawbreaker1989/queenscorner-api/internal/domain"
	"github.com/Jawbreaker1989/queenscorner-api/internal/domain/entity"
	"github.com/Jawbreaker1989/queenscorner-api/internal/domain/repository"
)

// UseCase casos de uso de pagos.
type UseCase struct {
	txRunner    TxRunner
	paymentRepo repository.PaymentRepository
	projectRepo repository.ProjectRepository
	cache       ports.ReadCache
}

// NewUseCase construye el caso de uso.
func NewUseCase(
	txRunner TxRunner,
	paymentRepo repository.PaymentRepository,
	projectRepo repository.ProjectRepository,
	cache ports.ReadCache,
) *UseCase {
	return &UseCase{txRunner: txRunner, paymentRepo: paymentRepo, projectRepo: projectRepo, cache: cache}
}

// Create registra un abono contra un negocio y recalcula el anticipo y el
// saldo dentro de la misma transacción. El monto debe ser estrictamente
// positivo y el medio de pago pertenecer al conjunto cerrado.
func (uc *UseCase) Create(ctx context.Context, in dto.CreatePaymentRequest) (*dto.PaymentResponse, error) {
	if in.ProjectID == "" {
		return nil, fmt.Errorf("%w: negocioId requerido", domain.ErrInvalidInput)
	}
	if !in.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: el monto debe ser mayor que cero", domain.ErrBusinessRule)
	}
	method := entity.PaymentMethod(in.Method)
	if !method.Valid() {
		return nil, fmt.Errorf("%w: método de pago %q inválido", domain.ErrInvalidInput, in.Method)
	}
	project, err := uc.projectRepo.GetByID(in.ProjectID)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, domain.ErrNotFound
	}

	now := time.Now()
	paidAt := now
	if in.PaidAt != nil {
		paidAt = *in.PaidAt
	}
	payment := &entity.Payment{
		ID:           uuid.New().String(),
		ProjectID:    project.ID,
		Amount:       in.Amount,
		Method:       method,
		Reference:    in.Reference,
		Observations: in.Observations,
		PaidAt:       paidAt,
		CreatedAt:    now,
	}

	err = uc.txRunner.RunPayments(ctx, func(
		paymentRepo repository.PaymentRepository,
		projectRepo repository.ProjectRepository,
	) error {
		if err := paymentRepo.Create(payment); err != nil {
			return err
		}
		// advance = Σ pagos y balance = total − advance, en una sentencia
		// atómica sobre la fila del negocio.
		return projectRepo.RecalculateAdvance(project.ID)
	})
	if err != nil {
		return nil, err
	}

	uc.cache.InvalidateRegion(ports.CacheRegionProjects)
	updated, err := uc.projectRepo.GetByID(project.ID)
	if err != nil {
		return nil, err
	}
	return dto.ToPaymentResponse(payment, updated), nil
}

// ListByProject lista los abonos de un negocio.
func (uc *UseCase) ListByProject(projectID string) ([]*dto.PaymentResponse, error) {
	project, err := uc.projectRepo.GetByID(projectID)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, domain.ErrNotFound
	}
	list, err := uc.paymentRepo.ListByProject(projectID)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.PaymentResponse, 0, len(list))
	for _, p := range list {
		out = append(out, dto.ToPaymentResponse(p, project))
	}
	return out, nil
}

// Delete elimina un abono (única mutación permitida) y recalcula el
// anticipo del negocio en la misma transacción.
func (uc *UseCase) Delete(ctx context.Context, id string) error {
	payment, err := uc.paymentRepo.GetByID(id)
	if err != nil {
		return err
	}
	if payment == nil {
		return domain.ErrNotFound
	}

	err = uc.txRunner.RunPayments(ctx, func(
		paymentRepo repository.PaymentRepository,
		projectRepo repository.ProjectRepository,
	) error {
		if err := paymentRepo.Delete(id); err != nil {
			return err
		}
		return projectRepo.RecalculateAdvance(payment.ProjectID)
	})
	if err != nil {
		return err
	}

	uc.cache.InvalidateRegion(ports.CacheRegionProjects)
	return nil
}
