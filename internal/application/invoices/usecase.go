// Package invoices casos de uso de facturación: construcción desde el
// negocio, numeración FAC-<año>-<seq> atómica por año, envío con reglas y
// generación asíncrona del PDF.
package invoices

import (
	"context"
	"fmt"
	"strings"
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

// UseCase casos de uso de facturas.
type UseCase struct {
	repo          repository.InvoiceRepository
	projectRepo   repository.ProjectRepository
	quotationRepo repository.QuotationRepository
	clientRepo    repository.ClientRepository
	seqRepo       repository.SequenceRepository
	cache         ports.ReadCache
	submitter     ports.TaskSubmitter
	renderer      ports.InvoicePDFRenderer
	storage       ports.PDFStorage
	log           *logger.Logger
}

// NewUseCase construye el caso de uso.
func NewUseCase(
	repo repository.InvoiceRepository,
	projectRepo repository.ProjectRepository,
	quotationRepo repository.QuotationRepository,
	clientRepo repository.ClientRepository,
	seqRepo repository.SequenceRepository,
	cache ports.ReadCache,
	submitter ports.TaskSubmitter,
	renderer ports.InvoicePDFRenderer,
	storage ports.PDFStorage,
	log *logger.Logger,
) *UseCase {
	return &UseCase{
		repo:          repo,
		projectRepo:   projectRepo,
		quotationRepo: quotationRepo,
		clientRepo:    clientRepo,
		seqRepo:       seqRepo,
		cache:         cache,
		submitter:     submitter,
		renderer:      renderer,
		storage:       storage,
		log:           log,
	}
}

// Create construye una factura para un negocio FINALIZED. Si no llegan
// líneas explícitas se siembra una única línea desde el subtotal cotizado
// del negocio. El anticipo se copia del negocio y el número se asigna de la
// secuencia atómica del año en curso.
func (uc *UseCase) Create(userID string, in dto.CreateInvoiceRequest) (*dto.InvoiceResponse, error) {
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
	if project.State != entity.ProjectFinalized {
		return nil, fmt.Errorf("%w: el negocio está en %s, debe estar FINALIZED para facturar", domain.ErrBusinessRule, project.State)
	}

	now := time.Now()
	seq, err := uc.seqRepo.NextForYear("FAC", now.Year())
	if err != nil {
		return nil, fmt.Errorf("consecutivo de factura: %w", err)
	}

	f := &entity.Invoice{
		ID:          uuid.New().String(),
		Code:        codes.New("FAC"),
		Number:      entity.FormatInvoiceNumber(now.Year(), seq),
		ProjectID:   project.ID,
		QuotationID: project.QuotationID,
		State:       entity.InvoiceStatusEnRevision,
		Advance:     project.Advance,
		IssuedAt:    now,
		CreatedBy:   userID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	lines := in.Lines
	if len(lines) == 0 {
		// Sin líneas explícitas: una sola línea con el subtotal cotizado,
		// de modo que el recálculo reproduzca el total del negocio.
		lines = []dto.InvoiceLineRequest{{
			Description: project.QuotationDescription,
			Quantity:    1,
			UnitValue:   project.QuotationSubtotal,
		}}
	}
	for _, l := range lines {
		if l.Quantity <= 0 {
			return nil, fmt.Errorf("%w: cantidad debe ser positiva", domain.ErrInvalidInput)
		}
		if l.UnitValue.IsNegative() {
			return nil, fmt.Errorf("%w: valor unitario no puede ser negativo", domain.ErrInvalidInput)
		}
		f.Lines = append(f.Lines, entity.InvoiceLine{
			ID:          uuid.New().String(),
			InvoiceID:   f.ID,
			Description: l.Description,
			Quantity:    l.Quantity,
			UnitValue:   l.UnitValue,
		})
	}
	f.RecalculateTotals()

	if err := uc.repo.Create(f); err != nil {
		return nil, err
	}
	uc.cache.InvalidateRegion(ports.CacheRegionInvoices)
	uc.enqueuePDF(f)
	return dto.ToInvoiceResponse(f), nil
}

// GetByID obtiene el detalle de una factura (cacheado).
func (uc *UseCase) GetByID(id string) (*dto.InvoiceResponse, error) {
	key := "detail:" + id
	if v, ok := uc.cache.Get(ports.CacheRegionInvoices, key); ok {
		if resp, ok := v.(*dto.InvoiceResponse); ok {
			return resp, nil
		}
	}
	f, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if f == nil {
		return nil, domain.ErrNotFound
	}
	resp := dto.ToInvoiceResponse(f)
	uc.cache.Set(ports.CacheRegionInvoices, key, resp)
	return resp, nil
}

// List lista facturas con paginación (cacheado).
func (uc *UseCase) List(limit, offset int) ([]*dto.InvoiceResponse, error) {
	page := dto.PageRequest{Limit: limit, Offset: offset}
	page.DefaultPage()
	key := fmt.Sprintf("list:%d:%d", page.Limit, page.Offset)
	if v, ok := uc.cache.Get(ports.CacheRegionInvoices, key); ok {
		if resp, ok := v.([]*dto.InvoiceResponse); ok {
			return resp, nil
		}
	}
	list, err := uc.repo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.InvoiceResponse, 0, len(list))
	for _, f := range list {
		out = append(out, dto.ToInvoiceResponse(f))
	}
	uc.cache.Set(ports.CacheRegionInvoices, key, out)
	return out, nil
}

// ChangeState cambia el estado de la factura. El conjunto es abierto, pero
// pasar a ENVIADA exige al menos una línea y negocio asociado, y estampa la
// fecha y el usuario de envío.
func (uc *UseCase) ChangeState(id, userID string, in dto.ChangeStateRequest) (*dto.InvoiceResponse, error) {
	state := strings.TrimSpace(in.State)
	if state == "" {
		return nil, fmt.Errorf("%w: estado requerido", domain.ErrInvalidInput)
	}
	f, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if f == nil {
		return nil, domain.ErrNotFound
	}
	if state == entity.InvoiceStatusEnviada {
		if len(f.Lines) == 0 {
			return nil, fmt.Errorf("%w: la factura no tiene líneas, no puede enviarse", domain.ErrBusinessRule)
		}
		if f.ProjectID == "" {
			return nil, fmt.Errorf("%w: la factura no tiene negocio asociado", domain.ErrBusinessRule)
		}
		now := time.Now()
		f.SentAt = &now
		f.SentBy = userID
	}
	f.State = state
	f.UpdatedAt = time.Now()
	if err := uc.repo.Update(f); err != nil {
		return nil, err
	}
	uc.cache.InvalidateRegion(ports.CacheRegionInvoices)
	return dto.ToInvoiceResponse(f), nil
}

// enqueuePDF encola la generación del PDF. El render toma la factura ya
// calculada, guarda los bytes y registra la ruta; nada de esto bloquea ni
// revierte la creación.
func (uc *UseCase) enqueuePDF(f *entity.Invoice) {
	client := uc.resolveClient(f)
	invoice := *f
	uc.submitter.Submit(ports.Task{
		Kind: "pdf-factura",
		Run: func(ctx context.Context) error {
			data, err := uc.renderer.RenderInvoicePDF(ctx, &invoice, client)
			if err != nil {
				return fmt.Errorf("render PDF %s: %w", invoice.Number, err)
			}
			path, err := uc.storage.SaveInvoicePDF(invoice.Number+".pdf", data)
			if err != nil {
				return fmt.Errorf("guardar PDF %s: %w", invoice.Number, err)
			}
			if err := uc.repo.UpdatePDFPath(invoice.ID, path); err != nil {
				return fmt.Errorf("registrar ruta PDF %s: %w", invoice.Number, err)
			}
			uc.cache.InvalidateRegion(ports.CacheRegionInvoices)
			uc.log.Info().Str("factura", invoice.Number).Str("ruta", path).Msg("PDF generado")
			return nil
		},
	})
}

func (uc *UseCase) resolveClient(f *entity.Invoice) *entity.Client {
	if f.QuotationID == "" {
		return nil
	}
	q, err := uc.quotationRepo.GetByID(f.QuotationID)
	if err != nil || q == nil {
		return nil
	}
	client, err := uc.clientRepo.GetByID(q.ClientID)
	if err != nil {
		return nil
	}
	return client
}
