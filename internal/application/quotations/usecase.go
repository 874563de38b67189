// Package quotations casos de uso del flujo de cotización: creación con
// defaults, recálculo de totales, transición de estado y borrado.
package quotations

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Jawbreaker1989/queenscorner-api/internal/application/dto"
	"github.com/Jawbreaker1989/queenscorner-api/internal/application/ports"
	"github.com/Jawbreaker1989/queenscorner-api/internal/domain"
	"github.com/Jawbreaker1989/queenscorner-api/internal/domain/entity"
	"github.com/Jawbreaker1989/queenscorner-api/internal/domain/repository"
	"github.com/Jawbreaker1989/queenscorner-api/pkg/codes"
)

// Defaults aplicados cuando el caller omite los campos opcionales.
const (
	DefaultDescription = "Custom service"
	defaultValidity    = 30 * 24 * time.Hour
)

// DefaultItemPrice precio del ítem sintético cuando no se envían líneas.
var DefaultItemPrice = decimal.NewFromInt(100000)

// UseCase casos de uso de cotizaciones.
type UseCase struct {
	repo       repository.QuotationRepository
	clientRepo repository.ClientRepository
	seqRepo    repository.SequenceRepository
	cache      ports.ReadCache
}

// NewUseCase construye el caso de uso.
func NewUseCase(
	repo repository.QuotationRepository,
	clientRepo repository.ClientRepository,
	seqRepo repository.SequenceRepository,
	cache ports.ReadCache,
) *UseCase {
	return &UseCase{repo: repo, clientRepo: clientRepo, seqRepo: seqRepo, cache: cache}
}

// Create crea una cotización en DRAFT para un cliente existente, aplica
// defaults y recalcula los totales desde las líneas.
func (uc *UseCase) Create(in dto.CreateQuotationRequest) (*dto.QuotationResponse, error) {
	if in.ClientID == "" {
		return nil, fmt.Errorf("%w: clienteId requerido", domain.ErrInvalidInput)
	}
	client, err := uc.clientRepo.GetByID(in.ClientID)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrNotFound
	}

	now := time.Now()
	description := in.Description
	if description == "" {
		description = DefaultDescription
	}
	validUntil := now.Add(defaultValidity)
	if in.ValidUntil != nil {
		validUntil = *in.ValidUntil
	}

	number, err := uc.seqRepo.Next("COT")
	if err != nil {
		return nil, fmt.Errorf("consecutivo de cotización: %w", err)
	}

	q := &entity.Quotation{
		ID:           uuid.New().String(),
		Code:         codes.New("COT"),
		Number:       number,
		ClientID:     client.ID,
		State:        entity.QuotationDraft,
		Description:  description,
		Observations: in.Observations,
		ValidUntil:   validUntil,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	items := in.Items
	if len(items) == 0 {
		// Ítem sintético: cantidad 1 al precio de referencia.
		items = []dto.QuotationItemRequest{{
			Description: description,
			Quantity:    1,
			UnitPrice:   DefaultItemPrice,
		}}
	}
	for _, it := range items {
		if it.Quantity <= 0 {
			return nil, fmt.Errorf("%w: cantidad debe ser positiva", domain.ErrInvalidInput)
		}
		if it.UnitPrice.IsNegative() {
			return nil, fmt.Errorf("%w: precio unitario no puede ser negativo", domain.ErrInvalidInput)
		}
		q.Items = append(q.Items, entity.QuotationItem{
			ID:          uuid.New().String(),
			QuotationID: q.ID,
			Description: it.Description,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
		})
	}
	q.RecalculateTotals()

	if err := uc.repo.Create(q); err != nil {
		return nil, err
	}
	uc.cache.InvalidateRegion(ports.CacheRegionQuotations)
	return dto.ToQuotationResponse(q, client), nil
}

// GetByID obtiene el detalle con el cliente embebido (cacheado).
func (uc *UseCase) GetByID(id string) (*dto.QuotationResponse, error) {
	key := "detail:" + id
	if v, ok := uc.cache.Get(ports.CacheRegionQuotations, key); ok {
		if resp, ok := v.(*dto.QuotationResponse); ok {
			return resp, nil
		}
	}
	q, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if q == nil {
		return nil, domain.ErrNotFound
	}
	client, err := uc.clientRepo.GetByID(q.ClientID)
	if err != nil {
		return nil, err
	}
	resp := dto.ToQuotationResponse(q, client)
	uc.cache.Set(ports.CacheRegionQuotations, key, resp)
	return resp, nil
}

// List lista cotizaciones con paginación (cacheado).
func (uc *UseCase) List(limit, offset int) ([]*dto.QuotationResponse, error) {
	page := dto.PageRequest{Limit: limit, Offset: offset}
	page.DefaultPage()
	key := fmt.Sprintf("list:%d:%d", page.Limit, page.Offset)
	if v, ok := uc.cache.Get(ports.CacheRegionQuotations, key); ok {
		if resp, ok := v.([]*dto.QuotationResponse); ok {
			return resp, nil
		}
	}
	list, err := uc.repo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.QuotationResponse, 0, len(list))
	for _, q := range list {
		out = append(out, dto.ToQuotationResponse(q, nil))
	}
	uc.cache.Set(ports.CacheRegionQuotations, key, out)
	return out, nil
}

// ChangeState transiciona la cotización. Solo SENT/APPROVED/REJECTED son
// destinos válidos; entre ellos no se valida adyacencia ni estado de origen
// (permisividad heredada del diseño original, mantenida a propósito).
func (uc *UseCase) ChangeState(id string, in dto.ChangeStateRequest) (*dto.QuotationResponse, error) {
	target := entity.QuotationState(in.State)
	if !target.ValidTarget() {
		return nil, fmt.Errorf("%w: estado %q no es destino válido", domain.ErrBusinessRule, in.State)
	}
	q, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if q == nil {
		return nil, domain.ErrNotFound
	}
	q.State = target
	if in.Observations != "" {
		q.Observations = in.Observations
	}
	q.UpdatedAt = time.Now()
	if err := uc.repo.Update(q); err != nil {
		return nil, err
	}
	uc.cache.InvalidateRegion(ports.CacheRegionQuotations)
	client, _ := uc.clientRepo.GetByID(q.ClientID)
	return dto.ToQuotationResponse(q, client), nil
}

// Update edita fecha de validez, descripción y observaciones. Las líneas y
// los totales no son mutables por esta vía.
func (uc *UseCase) Update(id string, in dto.UpdateQuotationRequest) (*dto.QuotationResponse, error) {
	q, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if q == nil {
		return nil, domain.ErrNotFound
	}
	if in.ValidUntil != nil {
		q.ValidUntil = *in.ValidUntil
	}
	if in.Description != nil {
		q.Description = *in.Description
	}
	if in.Observations != nil {
		q.Observations = *in.Observations
	}
	q.UpdatedAt = time.Now()
	if err := uc.repo.Update(q); err != nil {
		return nil, err
	}
	uc.cache.InvalidateRegion(ports.CacheRegionQuotations)
	client, _ := uc.clientRepo.GetByID(q.ClientID)
	return dto.ToQuotationResponse(q, client), nil
}

// Delete borrado duro con cascada a líneas.
func (uc *UseCase) Delete(id string) error {
	q, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if q == nil {
		return domain.ErrNotFound
	}
	if err := uc.repo.Delete(id); err != nil {
		return err
	}
	uc.cache.InvalidateRegion(ports.CacheRegionQuotations)
	return nil
}
