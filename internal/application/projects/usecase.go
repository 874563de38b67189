// Package projects casos de uso del negocio: conversión desde cotización
// aprobada (máximo un negocio por cotización), transición de estado y saldos.
package projects

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Jawbreaker1989/queenscorner-api/internal/application/dto"
	"github.com/Jawbreaker1989/queenscorner-api/internal/application/ports"
	"github.com/Jawbreaker1989/queenscorner-api/internal/domain"
	"github.com/Jawbreaker1989/queenscorner-api/internal/domain/entity"
	"github.com/Jawbreaker1989/queenscorner-api/internal/domain/repository"
	"github.com/Jawbreaker1989/queenscorner-api/pkg/codes"
)

// UseCase casos de uso de negocios.
type UseCase struct {
	repo          repository.ProjectRepository
	quotationRepo repository.QuotationRepository
	cache         ports.ReadCache
}

// NewUseCase construye el caso de uso.
func NewUseCase(
	repo repository.ProjectRepository,
	quotationRepo repository.QuotationRepository,
	cache ports.ReadCache,
) *UseCase {
	return &UseCase{repo: repo, quotationRepo: quotationRepo, cache: cache}
}

// CreateFromApproved convierte una cotización APPROVED en negocio.
// Reglas: la cotización debe estar APPROVED, con total positivo, y no puede
// existir ya un negocio para ella. Los campos Quotation* quedan como
// snapshot tomado aquí, no como vista en vivo.
func (uc *UseCase) CreateFromApproved(in dto.CreateProjectRequest) (*dto.ProjectResponse, error) {
	if in.QuotationID == "" {
		return nil, fmt.Errorf("%w: cotizacionId requerido", domain.ErrInvalidInput)
	}
	q, err := uc.quotationRepo.GetByID(in.QuotationID)
	if err != nil {
		return nil, err
	}
	if q == nil {
		return nil, domain.ErrNotFound
	}
	if q.State != entity.QuotationApproved {
		return nil, fmt.Errorf("%w: la cotización está en %s, debe estar APPROVED", domain.ErrBusinessRule, q.State)
	}
	if !q.Total.IsPositive() {
		return nil, fmt.Errorf("%w: la cotización tiene total %s, debe ser positivo", domain.ErrBusinessRule, q.Total)
	}
	existing, err := uc.repo.GetByQuotationID(q.ID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: ya existe el negocio %s para esta cotización", domain.ErrBusinessRule, existing.Code)
	}

	now := time.Now()
	p := &entity.Project{
		ID:          uuid.New().String(),
		Code:        codes.New("NEG"),
		QuotationID: q.ID,
		State:       entity.ProjectInReview,

		QuotationCode:         q.Code,
		QuotationState:        q.State,
		QuotationDate:         q.CreatedAt,
		QuotationDescription:  q.Description,
		QuotationObservations: q.Observations,
		QuotationSubtotal:     q.Subtotal,
		QuotationTax:          q.Tax,
		QuotationTotal:        q.Total,

		Budget:       in.Budget,
		Advance:      in.Advance,
		Responsible:  in.Responsible,
		Observations: in.Observations,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if in.EstimatedStart != nil {
		p.EstimatedStart = *in.EstimatedStart
	}
	if in.EstimatedEnd != nil {
		p.EstimatedEnd = *in.EstimatedEnd
	}
	p.RecalculateBalance()

	if err := uc.repo.Create(p); err != nil {
		return nil, err
	}
	uc.cache.InvalidateRegion(ports.CacheRegionProjects)
	return dto.ToProjectResponse(p), nil
}

// GetByID obtiene el detalle de un negocio (cacheado).
func (uc *UseCase) GetByID(id string) (*dto.ProjectResponse, error) {
	key := "detail:" + id
	if v, ok := uc.cache.Get(ports.CacheRegionProjects, key); ok {
		if resp, ok := v.(*dto.ProjectResponse); ok {
			return resp, nil
		}
	}
	p, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	resp := dto.ToProjectResponse(p)
	uc.cache.Set(ports.CacheRegionProjects, key, resp)
	return resp, nil
}

// List lista negocios con paginación (cacheado).
func (uc *UseCase) List(limit, offset int) ([]*dto.ProjectResponse, error) {
	page := dto.PageRequest{Limit: limit, Offset: offset}
	page.DefaultPage()
	key := fmt.Sprintf("list:%d:%d", page.Limit, page.Offset)
	if v, ok := uc.cache.Get(ports.CacheRegionProjects, key); ok {
		if resp, ok := v.([]*dto.ProjectResponse); ok {
			return resp, nil
		}
	}
	list, err := uc.repo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ProjectResponse, 0, len(list))
	for _, p := range list {
		out = append(out, dto.ToProjectResponse(p))
	}
	uc.cache.Set(ports.CacheRegionProjects, key, out)
	return out, nil
}

// ChangeState transiciona el negocio a IN_REVIEW/CANCELLED/FINALIZED y
// actualiza la fecha de última modificación. Los estados terminales no se
// abandonan.
func (uc *UseCase) ChangeState(id string, in dto.ChangeStateRequest) (*dto.ProjectResponse, error) {
	target := entity.ProjectState(in.State)
	if !target.ValidTarget() {
		return nil, fmt.Errorf("%w: estado %q no es destino válido", domain.ErrBusinessRule, in.State)
	}
	p, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	if p.State.Terminal() && p.State != target {
		return nil, fmt.Errorf("%w: el negocio está en estado terminal %s", domain.ErrBusinessRule, p.State)
	}
	p.State = target
	if in.Observations != "" {
		p.Observations = in.Observations
	}
	p.UpdatedAt = time.Now()
	if err := uc.repo.Update(p); err != nil {
		return nil, err
	}
	uc.cache.InvalidateRegion(ports.CacheRegionProjects)
	return dto.ToProjectResponse(p), nil
}

// Update edita presupuesto, fechas estimadas, responsable y observaciones.
// El anticipo no se toca por aquí: lo mantiene el libro de pagos.
func (uc *UseCase) Update(id string, in dto.UpdateProjectRequest) (*dto.ProjectResponse, error) {
	p, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	if p.State.Terminal() {
		return nil, fmt.Errorf("%w: el negocio está en estado terminal %s", domain.ErrBusinessRule, p.State)
	}
	if in.Budget != nil {
		p.Budget = *in.Budget
	}
	if in.EstimatedStart != nil {
		p.EstimatedStart = *in.EstimatedStart
	}
	if in.EstimatedEnd != nil {
		p.EstimatedEnd = *in.EstimatedEnd
	}
	if in.Responsible != nil {
		p.Responsible = *in.Responsible
	}
	if in.Observations != nil {
		p.Observations = *in.Observations
	}
	p.RecalculateBalance()
	p.UpdatedAt = time.Now()
	if err := uc.repo.Update(p); err != nil {
		return nil, err
	}
	uc.cache.InvalidateRegion(ports.CacheRegionProjects)
	return dto.ToProjectResponse(p), nil
}
