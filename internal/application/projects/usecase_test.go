package projects_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Jawbreaker1989/queenscorner-api/internal/application/dto"
	"github.com/Jawbreaker1989/queenscorner-api/internal/application/projects"
	"github.com/Jawbreaker1989/queenscorner-api/internal/domain"
	"github.com/Jawbreaker1989/queenscorner-api/internal/domain/entity"
	"github.com/Jawbreaker1989/queenscorner-api/internal/infrastructure/cache"
	"github.com/Jawbreaker1989/queenscorner-api/internal/infrastructure/memory"
)

func newUseCase(t *testing.T) (*projects.UseCase, *memory.Store) {
	t.Helper()
	store := memory.NewStore()
	uc := projects.NewUseCase(
		memory.NewProjectRepository(store),
		memory.NewQuotationRepository(store),
		cache.NewRegional(time.Minute, 100),
	)
	return uc, store
}

// seedQuotation persiste una cotización 2×500.000 en el estado indicado:
// subtotal 1.000.000, IVA 190.000, total 1.190.000.
func seedQuotation(t *testing.T, store *memory.Store, state entity.QuotationState) *entity.Quotation {
	t.Helper()
	q := &entity.Quotation{
		ID:           "cot-1",
		Code:         "COT-1",
		Number:       1,
		ClientID:     "cli-1",
		State:        state,
		Description:  "Mural para recepción",
		Observations: "entrega en obra",
		Items: []entity.QuotationItem{
			{ID: "it-1", QuotationID: "cot-1", Description: "Mural 2x3m", Quantity: 2, UnitPrice: decimal.NewFromInt(500000)},
		},
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	q.RecalculateTotals()
	require.NoError(t, memory.NewQuotationRepository(store).Create(q))
	return q
}

func TestConvertirCotizacionAprobada(t *testing.T) {
	uc, store := newUseCase(t)
	q := seedQuotation(t, store, entity.QuotationApproved)

	resp, err := uc.CreateFromApproved(dto.CreateProjectRequest{
		QuotationID: q.ID,
		Advance:     decimal.NewFromInt(400000),
		Responsible: "Taller",
	})
	require.NoError(t, err)

	assert.Equal(t, "IN_REVIEW", resp.State)
	assert.Equal(t, q.ID, resp.QuotationID)

	// snapshot de la cotización al momento de convertir
	assert.Equal(t, q.Code, resp.QuotationCode)
	assert.Equal(t, q.Description, resp.QuotationDescription)
	assert.True(t, decimal.NewFromInt(1000000).Equal(resp.QuotationSubtotal))
	assert.True(t, decimal.NewFromInt(190000).Equal(resp.QuotationTax))
	assert.True(t, decimal.NewFromInt(1190000).Equal(resp.QuotationTotal))

	// saldo = total cotizado − anticipo
	assert.True(t, decimal.NewFromInt(790000).Equal(resp.Balance))
}

func TestConvertirCotizacionNoAprobada(t *testing.T) {
	uc, store := newUseCase(t)
	q := seedQuotation(t, store, entity.QuotationSent)

	_, err := uc.CreateFromApproved(dto.CreateProjectRequest{QuotationID: q.ID})
	assert.ErrorIs(t, err, domain.ErrBusinessRule)
}

func TestConvertirCotizacionInexistente(t *testing.T) {
	uc, _ := newUseCase(t)

	_, err := uc.CreateFromApproved(dto.CreateProjectRequest{QuotationID: "no-existe"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestConvertirCotizacionTotalCero(t *testing.T) {
	uc, store := newUseCase(t)
	q := seedQuotation(t, store, entity.QuotationApproved)
	q.Items = nil
	q.RecalculateTotals()
	require.NoError(t, memory.NewQuotationRepository(store).Update(q))

	_, err := uc.CreateFromApproved(dto.CreateProjectRequest{QuotationID: q.ID})
	assert.ErrorIs(t, err, domain.ErrBusinessRule)
}

func TestUnNegocioPorCotizacion(t *testing.T) {
	uc, store := newUseCase(t)
	q := seedQuotation(t, store, entity.QuotationApproved)

	_, err := uc.CreateFromApproved(dto.CreateProjectRequest{QuotationID: q.ID})
	require.NoError(t, err)

	_, err = uc.CreateFromApproved(dto.CreateProjectRequest{QuotationID: q.ID})
	assert.ErrorIs(t, err, domain.ErrBusinessRule)
}

func TestSnapshotNoSigueALaCotizacion(t *testing.T) {
	uc, store := newUseCase(t)
	q := seedQuotation(t, store, entity.QuotationApproved)

	resp, err := uc.CreateFromApproved(dto.CreateProjectRequest{QuotationID: q.ID})
	require.NoError(t, err)

	// editar la cotización después de convertir no cambia el snapshot
	q.Description = "otra cosa"
	q.Items[0].UnitPrice = decimal.NewFromInt(999999)
	q.RecalculateTotals()
	require.NoError(t, memory.NewQuotationRepository(store).Update(q))

	got, err := uc.GetByID(resp.ID)
	require.NoError(t, err)
	assert.Equal(t, "Mural para recepción", got.QuotationDescription)
	assert.True(t, decimal.NewFromInt(1190000).Equal(got.QuotationTotal))
}

func TestCambiarEstadoNegocio(t *testing.T) {
	uc, store := newUseCase(t)
	q := seedQuotation(t, store, entity.QuotationApproved)

	created, err := uc.CreateFromApproved(dto.CreateProjectRequest{QuotationID: q.ID})
	require.NoError(t, err)

	resp, err := uc.ChangeState(created.ID, dto.ChangeStateRequest{State: "FINALIZED"})
	require.NoError(t, err)
	assert.Equal(t, "FINALIZED", resp.State)
}

func TestNegocioTerminalNoSeReabre(t *testing.T) {
	uc, store := newUseCase(t)
	q := seedQuotation(t, store, entity.QuotationApproved)

	created, err := uc.CreateFromApproved(dto.CreateProjectRequest{QuotationID: q.ID})
	require.NoError(t, err)

	_, err = uc.ChangeState(created.ID, dto.ChangeStateRequest{State: "CANCELLED"})
	require.NoError(t, err)

	_, err = uc.ChangeState(created.ID, dto.ChangeStateRequest{State: "IN_REVIEW"})
	assert.ErrorIs(t, err, domain.ErrBusinessRule)
}

func TestActualizarNegocioNoTocaAnticipo(t *testing.T) {
	uc, store := newUseCase(t)
	q := seedQuotation(t, store, entity.QuotationApproved)

	created, err := uc.CreateFromApproved(dto.CreateProjectRequest{
		QuotationID: q.ID,
		Advance:     decimal.NewFromInt(200000),
	})
	require.NoError(t, err)

	budget := decimal.NewFromInt(800000)
	resp, err := uc.Update(created.ID, dto.UpdateProjectRequest{Budget: &budget})
	require.NoError(t, err)

	assert.True(t, budget.Equal(resp.Budget))
	assert.True(t, decimal.NewFromInt(200000).Equal(resp.Advance))
}
