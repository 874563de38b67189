// Package workorders casos de uso de las órdenes de trabajo: CRUD con
// defaults, máquina de estados libre y notificación asíncrona al terminar.
package workorders

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
	"github.com/Jawbreaker1989/queenscorner-api/pkg/codes"
	"github.com/Jawbreaker1989/queenscorner-api/pkg/logger"
)

// Defaults aplicados en la creación cuando el caller omite campos.
const (
	DescriptionPrefix   = "Order for: "
	DefaultObservations = "Sin observaciones"
	defaultDuration     = 7 * 24 * time.Hour
)

// UseCase casos de uso de órdenes de trabajo.
type UseCase struct {
	repo          repository.WorkOrderRepository
	projectRepo   repository.ProjectRepository
	quotationRepo repository.QuotationRepository
	clientRepo    repository.ClientRepository
	submitter     ports.TaskSubmitter
	notifier      ports.Notifier
	log           *logger.Logger
}

// NewUseCase construye el caso de uso.
func NewUseCase(
	repo repository.WorkOrderRepository,
	projectRepo repository.ProjectRepository,
	quotationRepo repository.QuotationRepository,
	clientRepo repository.ClientRepository,
	submitter ports.TaskSubmitter,
	notifier ports.Notifier,
	log *logger.Logger,
) *UseCase {
	return &UseCase{
		repo:          repo,
		projectRepo:   projectRepo,
		quotationRepo: quotationRepo,
		clientRepo:    clientRepo,
		submitter:     submitter,
		notifier:      notifier,
		log:           log,
	}
}

// Create crea una orden atada a un negocio existente. Defaults: descripción
// "Order for: <descripción del negocio>", prioridad MEDIUM, inicio mañana,
// fin inicio+7 días, observaciones genéricas.
func (uc *UseCase) Create(in dto.CreateWorkOrderRequest) (*dto.WorkOrderResponse, error) {
	if in.ProjectID == "" {
		return nil, fmt.Errorf("%w: negocioId requerido", domain.ErrInvalidInput)
	}
	project, err := uc.projectRepo.GetByID(in.ProjectID)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, domain.ErrNotFound
	}

	now := time.Now()
	description := in.Description
	if description == "" {
		description = DescriptionPrefix + project.QuotationDescription
	}
	priority := entity.WorkOrderPriority(in.Priority)
	if in.Priority == "" {
		priority = entity.PriorityMedium
	}
	if !priority.Valid() {
		return nil, fmt.Errorf("%w: prioridad %q inválida", domain.ErrInvalidInput, in.Priority)
	}
	start := now.AddDate(0, 0, 1) // mañana
	if in.EstimatedStart != nil {
		start = *in.EstimatedStart
	}
	end := start.Add(defaultDuration)
	if in.EstimatedEnd != nil {
		end = *in.EstimatedEnd
	}
	observations := in.Observations
	if observations == "" {
		observations = DefaultObservations
	}

	o := &entity.WorkOrder{
		ID:             uuid.New().String(),
		Code:           codes.New("OT"),
		ProjectID:      project.ID,
		State:          entity.WorkOrderPending,
		Priority:       priority,
		Description:    description,
		Observations:   observations,
		EstimatedStart: start,
		EstimatedEnd:   end,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.repo.Create(o); err != nil {
		return nil, err
	}
	return dto.ToWorkOrderResponse(o), nil
}

// GetByID obtiene el detalle de una orden.
func (uc *UseCase) GetByID(id string) (*dto.WorkOrderResponse, error) {
	o, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, domain.ErrNotFound
	}
	return dto.ToWorkOrderResponse(o), nil
}

// List lista órdenes con paginación.
func (uc *UseCase) List(limit, offset int) ([]*dto.WorkOrderResponse, error) {
	page := dto.PageRequest{Limit: limit, Offset: offset}
	page.DefaultPage()
	list, err := uc.repo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	return toResponses(list), nil
}

// ListByProject lista las órdenes de un negocio.
func (uc *UseCase) ListByProject(projectID string) ([]*dto.WorkOrderResponse, error) {
	list, err := uc.repo.ListByProject(projectID)
	if err != nil {
		return nil, err
	}
	return toResponses(list), nil
}

// ChangeState transiciona la orden. Las transiciones son libres dentro del
// conjunto de estados; FINISHED/DELIVERED estampan la entrega real y
// FINISHED encola la notificación al cliente (best-effort: un fallo o una
// cola llena jamás revierte ni bloquea el cambio de estado).
func (uc *UseCase) ChangeState(id string, in dto.ChangeStateRequest) (*dto.WorkOrderResponse, error) {
	target := entity.WorkOrderState(in.State)
	if !target.ValidTarget() {
		return nil, fmt.Errorf("%w: estado %q no es destino válido", domain.ErrBusinessRule, in.State)
	}
	o, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, domain.ErrNotFound
	}
	o.State = target
	if in.Observations != "" {
		o.Observations = in.Observations
	}
	if (target == entity.WorkOrderFinished || target == entity.WorkOrderDelivered) && o.DeliveredAt == nil {
		now := time.Now()
		o.DeliveredAt = &now
	}
	o.UpdatedAt = time.Now()
	if err := uc.repo.Update(o); err != nil {
		return nil, err
	}

	if target == entity.WorkOrderFinished {
		uc.enqueueFinishedNotification(o)
	}
	return dto.ToWorkOrderResponse(o), nil
}

// Update edita descripción, prioridad, fechas y observaciones.
func (uc *UseCase) Update(id string, in dto.UpdateWorkOrderRequest) (*dto.WorkOrderResponse, error) {
	o, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, domain.ErrNotFound
	}
	if in.Description != nil {
		o.Description = *in.Description
	}
	if in.Priority != nil {
		priority := entity.WorkOrderPriority(*in.Priority)
		if !priority.Valid() {
			return nil, fmt.Errorf("%w: prioridad %q inválida", domain.ErrInvalidInput, *in.Priority)
		}
		o.Priority = priority
	}
	if in.EstimatedStart != nil {
		o.EstimatedStart = *in.EstimatedStart
	}
	if in.EstimatedEnd != nil {
		o.EstimatedEnd = *in.EstimatedEnd
	}
	if in.Observations != nil {
		o.Observations = *in.Observations
	}
	o.UpdatedAt = time.Now()
	if err := uc.repo.Update(o); err != nil {
		return nil, err
	}
	return dto.ToWorkOrderResponse(o), nil
}

// Delete elimina la orden.
func (uc *UseCase) Delete(id string) error {
	o, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if o == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

// enqueueFinishedNotification resuelve el cliente vía negocio → cotización →
// cliente y encola el aviso. Cualquier tropiezo se registra y se descarta.
func (uc *UseCase) enqueueFinishedNotification(o *entity.WorkOrder) {
	project, err := uc.projectRepo.GetByID(o.ProjectID)
	if err != nil || project == nil {
		uc.log.Warn().Str("orden", o.Code).Msg("negocio no resuelto para notificación")
		return
	}
	quotation, err := uc.quotationRepo.GetByID(project.QuotationID)
	if err != nil || quotation == nil {
		uc.log.Warn().Str("orden", o.Code).Msg("cotización no resuelta para notificación")
		return
	}
	client, err := uc.clientRepo.GetByID(quotation.ClientID)
	if err != nil || client == nil {
		uc.log.Warn().Str("orden", o.Code).Msg("cliente no resuelto para notificación")
		return
	}
	order := *o
	uc.submitter.Submit(ports.Task{
		Kind: "notificacion-orden",
		Run: func(ctx context.Context) error {
			return uc.notifier.NotifyWorkOrderFinished(ctx, client, &order)
		},
	})
}

func toResponses(list []*entity.WorkOrder) []*dto.WorkOrderResponse {
	out := make([]*dto.WorkOrderResponse, 0, len(list))
	for _, o := range list {
		out = append(out, dto.ToWorkOrderResponse(o))
	}
	return out
}
