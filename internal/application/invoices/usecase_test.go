package invoices_test

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Jawbreaker1989/queenscorner-api/internal/application/dto"
	"github.com/Jawbreaker1989/queenscorner-api/internal/application/invoices"
	"github.com/Jawbreaker1989/queenscorner-api/internal/application/ports"
	"github.com/Jawbreaker1989/queenscorner-api/internal/domain"
	"github.com/Jawbreaker1989/queenscorner-api/internal/domain/entity"
	"github.com/Jawbreaker1989/queenscorner-api/internal/infrastructure/cache"
	"github.com/Jawbreaker1989/queenscorner-api/internal/infrastructure/memory"
	"github.com/Jawbreaker1989/queenscorner-api/pkg/logger"
)

// syncSubmitter ejecuta cada tarea en línea; apto para envíos concurrentes.
type syncSubmitter struct {
	mu    sync.Mutex
	kinds []string
}

func (s *syncSubmitter) Submit(t ports.Task) bool {
	s.mu.Lock()
	s.kinds = append(s.kinds, t.Kind)
	s.mu.Unlock()
	_ = t.Run(context.Background())
	return true
}

type fakeRenderer struct{}

func (fakeRenderer) RenderInvoicePDF(_ context.Context, invoice *entity.Invoice, _ *entity.Client) ([]byte, error) {
	return []byte("%PDF " + invoice.Number), nil
}

type fakeStorage struct {
	mu    sync.Mutex
	saved map[string][]byte
}

func (s *fakeStorage) SaveInvoicePDF(filename string, data []byte) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.saved == nil {
		s.saved = make(map[string][]byte)
	}
	s.saved[filename] = data
	return "storage/facturas/" + filename, nil
}

type fixture struct {
	uc      *invoices.UseCase
	store   *memory.Store
	sub     *syncSubmitter
	storage *fakeStorage
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store := memory.NewStore()
	sub := &syncSubmitter{}
	storage := &fakeStorage{}
	uc := invoices.NewUseCase(
		memory.NewInvoiceRepository(store),
		memory.NewProjectRepository(store),
		memory.NewQuotationRepository(store),
		memory.NewClientRepository(store),
		memory.NewSequenceRepository(store),
		cache.NewRegional(time.Minute, 100),
		sub,
		fakeRenderer{},
		storage,
		logger.New(logger.Config{Env: "test", Level: "error"}),
	)
	return &fixture{uc: uc, store: store, sub: sub, storage: storage}
}

// seedFinalized negocio FINALIZED con subtotal cotizado 1.000.000 y
// anticipo 400.000.
func (f *fixture) seedFinalized(t *testing.T, id string) *entity.Project {
	t.Helper()
	p := &entity.Project{
		ID:                   id,
		Code:                 "NEG-" + id,
		QuotationID:          "cot-" + id,
		State:                entity.ProjectFinalized,
		QuotationDescription: "Mural para recepción",
		QuotationSubtotal:    decimal.NewFromInt(1000000),
		QuotationTotal:       decimal.NewFromInt(1190000),
		Advance:              decimal.NewFromInt(400000),
		CreatedAt:            time.Now(),
	}
	require.NoError(t, memory.NewProjectRepository(f.store).Create(p))
	return p
}

func TestCrearFacturaDesdeNegocioFinalizado(t *testing.T) {
	f := newFixture(t)
	p := f.seedFinalized(t, "1")

	resp, err := f.uc.Create("user-1", dto.CreateInvoiceRequest{ProjectID: p.ID})
	require.NoError(t, err)

	year := time.Now().Year()
	assert.Equal(t, fmt.Sprintf("FAC-%d-%06d", year, 1), resp.Number)
	assert.Equal(t, entity.InvoiceStatusEnRevision, resp.State)
	assert.Equal(t, "user-1", resp.CreatedBy)

	// línea sembrada desde el subtotal cotizado
	require.Len(t, resp.Lines, 1)
	assert.Equal(t, 1, resp.Lines[0].LineNumber)
	assert.Equal(t, "Mural para recepción", resp.Lines[0].Description)
	assert.True(t, decimal.NewFromInt(1000000).Equal(resp.Lines[0].UnitValue))

	// totales: subtotal 1.000.000, IVA 190.000, total 1.190.000,
	// saldo = total − anticipo copiado del negocio
	assert.True(t, decimal.NewFromInt(190000).Equal(resp.IVA))
	assert.True(t, decimal.NewFromInt(1190000).Equal(resp.Total))
	assert.True(t, decimal.NewFromInt(400000).Equal(resp.Advance))
	assert.True(t, decimal.NewFromInt(790000).Equal(resp.Balance))
}

func TestCrearFacturaNegocioNoFinalizado(t *testing.T) {
	f := newFixture(t)
	p := &entity.Project{ID: "neg-1", State: entity.ProjectInReview, CreatedAt: time.Now()}
	require.NoError(t, memory.NewProjectRepository(f.store).Create(p))

	_, err := f.uc.Create("user-1", dto.CreateInvoiceRequest{ProjectID: p.ID})
	assert.ErrorIs(t, err, domain.ErrBusinessRule)
}

func TestCrearFacturaNegocioInexistente(t *testing.T) {
	f := newFixture(t)

	_, err := f.uc.Create("user-1", dto.CreateInvoiceRequest{ProjectID: "no-existe"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCrearFacturaConLineasExplicitas(t *testing.T) {
	f := newFixture(t)
	p := f.seedFinalized(t, "1")

	resp, err := f.uc.Create("user-1", dto.CreateInvoiceRequest{
		ProjectID: p.ID,
		Lines: []dto.InvoiceLineRequest{
			{Description: "Mural", Quantity: 2, UnitValue: decimal.NewFromInt(300000)},
			{Description: "Instalación", Quantity: 1, UnitValue: decimal.NewFromInt(150000)},
		},
	})
	require.NoError(t, err)

	require.Len(t, resp.Lines, 2)
	assert.Equal(t, 1, resp.Lines[0].LineNumber)
	assert.Equal(t, 2, resp.Lines[1].LineNumber)
	assert.True(t, decimal.NewFromInt(750000).Equal(resp.Subtotal))
}

func TestNumeracionFacturaConcurrenteSinDuplicados(t *testing.T) {
	f := newFixture(t)

	const n = 20
	for i := 0; i < n; i++ {
		f.seedFinalized(t, fmt.Sprintf("%d", i))
	}

	var wg sync.WaitGroup
	numbers := make(chan string, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			resp, err := f.uc.Create("user-1", dto.CreateInvoiceRequest{ProjectID: fmt.Sprintf("%d", i)})
			if err == nil {
				numbers <- resp.Number
			}
		}(i)
	}
	wg.Wait()
	close(numbers)

	seen := make(map[string]bool)
	for num := range numbers {
		assert.False(t, seen[num], "número duplicado %s", num)
		seen[num] = true
	}
	assert.Len(t, seen, n)
}

func TestFacturaGeneraPDFEnSegundoPlano(t *testing.T) {
	f := newFixture(t)
	p := f.seedFinalized(t, "1")

	resp, err := f.uc.Create("user-1", dto.CreateInvoiceRequest{ProjectID: p.ID})
	require.NoError(t, err)

	require.Contains(t, f.sub.kinds, "pdf-factura")
	assert.Contains(t, f.storage.saved, resp.Number+".pdf")

	got, err := memory.NewInvoiceRepository(f.store).GetByID(resp.ID)
	require.NoError(t, err)
	assert.Equal(t, "storage/facturas/"+resp.Number+".pdf", got.PDFPath)
}

func TestEnviarFacturaEstampaEnvio(t *testing.T) {
	f := newFixture(t)
	p := f.seedFinalized(t, "1")

	created, err := f.uc.Create("user-1", dto.CreateInvoiceRequest{ProjectID: p.ID})
	require.NoError(t, err)

	resp, err := f.uc.ChangeState(created.ID, "user-2", dto.ChangeStateRequest{State: entity.InvoiceStatusEnviada})
	require.NoError(t, err)

	assert.Equal(t, entity.InvoiceStatusEnviada, resp.State)
	require.NotNil(t, resp.SentAt)
	assert.Equal(t, "user-2", resp.SentBy)
}

func TestEnviarFacturaSinLineas(t *testing.T) {
	f := newFixture(t)
	now := time.Now()
	inv := &entity.Invoice{
		ID:        "fac-1",
		Number:    "FAC-2026-000009",
		State:     entity.InvoiceStatusEnRevision,
		IssuedAt:  now,
		CreatedAt: now,
	}
	require.NoError(t, memory.NewInvoiceRepository(f.store).Create(inv))

	_, err := f.uc.ChangeState(inv.ID, "user-1", dto.ChangeStateRequest{State: entity.InvoiceStatusEnviada})
	assert.ErrorIs(t, err, domain.ErrBusinessRule)
}

func TestEstadoLibreNoExigeReglas(t *testing.T) {
	// Fuera de ENVIADA el conjunto de estados es abierto.
	f := newFixture(t)
	p := f.seedFinalized(t, "1")

	created, err := f.uc.Create("user-1", dto.CreateInvoiceRequest{ProjectID: p.ID})
	require.NoError(t, err)

	resp, err := f.uc.ChangeState(created.ID, "user-1", dto.ChangeStateRequest{State: "PAGADA"})
	require.NoError(t, err)
	assert.Equal(t, entity.InvoiceStatusPagada, resp.State)
	assert.Nil(t, resp.SentAt)
}
