package payments_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Jawbreaker1989/queenscorner-api/internal/application/dto"
	"github.com/Jawbreaker1989/queenscorner-api/internal/application/payments"
	"github.com/Jawbreaker1989/queenscorner-api/internal/domain"
	"github.com/Jawbreaker1989/queenscorner-api/internal/domain/entity"
	"github.com/Jawbreaker1989/queenscorner-api/internal/infrastructure/cache"
	"github.com/Jawbreaker1989/queenscorner-api/internal/infrastructure/memory"
)

func newUseCase(t *testing.T) (*payments.UseCase, *memory.Store) {
	t.Helper()
	store := memory.NewStore()
	uc := payments.NewUseCase(
		memory.NewTxRunner(store),
		memory.NewPaymentRepository(store),
		memory.NewProjectRepository(store),
		cache.NewRegional(time.Minute, 100),
	)
	return uc, store
}

// seedProject negocio con total cotizado 1.190.000 y anticipo en cero.
func seedProject(t *testing.T, store *memory.Store) *entity.Project {
	t.Helper()
	p := &entity.Project{
		ID:             "neg-1",
		Code:           "NEG-1",
		QuotationID:    "cot-1",
		State:          entity.ProjectInReview,
		QuotationTotal: decimal.NewFromInt(1190000),
		CreatedAt:      time.Now(),
	}
	p.RecalculateBalance()
	require.NoError(t, memory.NewProjectRepository(store).Create(p))
	return p
}

func TestRegistrarPagoRecalculaAnticipo(t *testing.T) {
	uc, store := newUseCase(t)
	p := seedProject(t, store)
	ctx := context.Background()

	resp, err := uc.Create(ctx, dto.CreatePaymentRequest{
		ProjectID: p.ID,
		Amount:    decimal.NewFromInt(400000),
		Method:    "TRANSFER",
		Reference: "TRF-001",
	})
	require.NoError(t, err)

	assert.True(t, decimal.NewFromInt(400000).Equal(resp.ProjectAdvance))
	assert.True(t, decimal.NewFromInt(790000).Equal(resp.ProjectBalance))
}

func TestPagosSeAcumulan(t *testing.T) {
	uc, store := newUseCase(t)
	p := seedProject(t, store)
	ctx := context.Background()

	_, err := uc.Create(ctx, dto.CreatePaymentRequest{ProjectID: p.ID, Amount: decimal.NewFromInt(300000), Method: "CASH"})
	require.NoError(t, err)

	resp, err := uc.Create(ctx, dto.CreatePaymentRequest{ProjectID: p.ID, Amount: decimal.NewFromInt(200000), Method: "CARD"})
	require.NoError(t, err)

	// anticipo = Σ pagos vigentes
	assert.True(t, decimal.NewFromInt(500000).Equal(resp.ProjectAdvance))
	assert.True(t, decimal.NewFromInt(690000).Equal(resp.ProjectBalance))
}

func TestPagoMontoNoPositivo(t *testing.T) {
	uc, store := newUseCase(t)
	p := seedProject(t, store)

	_, err := uc.Create(context.Background(), dto.CreatePaymentRequest{
		ProjectID: p.ID,
		Amount:    decimal.Zero,
		Method:    "CASH",
	})
	assert.ErrorIs(t, err, domain.ErrBusinessRule)

	_, err = uc.Create(context.Background(), dto.CreatePaymentRequest{
		ProjectID: p.ID,
		Amount:    decimal.NewFromInt(-100),
		Method:    "CASH",
	})
	assert.ErrorIs(t, err, domain.ErrBusinessRule)
}

func TestPagoMetodoInvalido(t *testing.T) {
	uc, store := newUseCase(t)
	p := seedProject(t, store)

	_, err := uc.Create(context.Background(), dto.CreatePaymentRequest{
		ProjectID: p.ID,
		Amount:    decimal.NewFromInt(1000),
		Method:    "BITCOIN",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestPagoNegocioInexistente(t *testing.T) {
	uc, _ := newUseCase(t)

	_, err := uc.Create(context.Background(), dto.CreatePaymentRequest{
		ProjectID: "no-existe",
		Amount:    decimal.NewFromInt(1000),
		Method:    "CASH",
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestEliminarPagoReduceElAnticipo(t *testing.T) {
	uc, store := newUseCase(t)
	p := seedProject(t, store)
	ctx := context.Background()

	first, err := uc.Create(ctx, dto.CreatePaymentRequest{ProjectID: p.ID, Amount: decimal.NewFromInt(300000), Method: "CASH"})
	require.NoError(t, err)
	_, err = uc.Create(ctx, dto.CreatePaymentRequest{ProjectID: p.ID, Amount: decimal.NewFromInt(200000), Method: "CARD"})
	require.NoError(t, err)

	require.NoError(t, uc.Delete(ctx, first.ID))

	got, err := memory.NewProjectRepository(store).GetByID(p.ID)
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(200000).Equal(got.Advance))
	assert.True(t, decimal.NewFromInt(990000).Equal(got.Balance))
}

func TestListarPagosPorNegocio(t *testing.T) {
	uc, store := newUseCase(t)
	p := seedProject(t, store)
	ctx := context.Background()

	_, err := uc.Create(ctx, dto.CreatePaymentRequest{ProjectID: p.ID, Amount: decimal.NewFromInt(100000), Method: "CASH"})
	require.NoError(t, err)
	_, err = uc.Create(ctx, dto.CreatePaymentRequest{ProjectID: p.ID, Amount: decimal.NewFromInt(150000), Method: "TRANSFER"})
	require.NoError(t, err)

	list, err := uc.ListByProject(p.ID)
	require.NoError(t, err)
	require.Len(t, list, 2)
}
