package quotations_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Jawbreaker1989/queenscorner-api/internal/application/dto"
	"github.com/Jawbreaker1989/queenscorner-api/internal/application/quotations"
	"github.com/Jawbreaker1989/queenscorner-api/internal/domain"
	"github.com/Jawbreaker1989/queenscorner-api/internal/domain/entity"
	"github.com/Jawbreaker1989/queenscorner-api/internal/infrastructure/cache"
	"github.com/Jawbreaker1989/queenscorner-api/internal/infrastructure/memory"
)

func newUseCase(t *testing.T) (*quotations.UseCase, *memory.Store) {
	t.Helper()
	store := memory.NewStore()
	uc := quotations.NewUseCase(
		memory.NewQuotationRepository(store),
		memory.NewClientRepository(store),
		memory.NewSequenceRepository(store),
		cache.NewRegional(time.Minute, 100),
	)
	return uc, store
}

func seedClient(t *testing.T, store *memory.Store) *entity.Client {
	t.Helper()
	c := &entity.Client{
		ID:        "cli-1",
		Name:      "Galería Norte",
		Email:     "contacto@galerianorte.co",
		Active:    true,
		CreatedAt: time.Now(),
	}
	require.NoError(t, memory.NewClientRepository(store).Create(c))
	return c
}

func TestCrearCotizacionConDefaults(t *testing.T) {
	uc, store := newUseCase(t)
	client := seedClient(t, store)

	resp, err := uc.Create(dto.CreateQuotationRequest{ClientID: client.ID})
	require.NoError(t, err)

	assert.Equal(t, "DRAFT", resp.State)
	assert.Equal(t, quotations.DefaultDescription, resp.Description)
	assert.Equal(t, int64(1), resp.Number)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, int64(1), resp.Items[0].Quantity)
	assert.True(t, quotations.DefaultItemPrice.Equal(resp.Items[0].UnitPrice))

	// 1 × 100.000 → subtotal 100.000, IVA 19.000, total 119.000
	assert.True(t, decimal.NewFromInt(100000).Equal(resp.Subtotal))
	assert.True(t, decimal.NewFromInt(19000).Equal(resp.Tax))
	assert.True(t, decimal.NewFromInt(119000).Equal(resp.Total))

	// validez por defecto: ~30 días desde hoy
	assert.WithinDuration(t, time.Now().Add(30*24*time.Hour), resp.ValidUntil, time.Minute)
	require.NotNil(t, resp.Client)
	assert.Equal(t, client.Name, resp.Client.Name)
}

func TestCrearCotizacionConItemsExplicitos(t *testing.T) {
	uc, store := newUseCase(t)
	client := seedClient(t, store)

	resp, err := uc.Create(dto.CreateQuotationRequest{
		ClientID:    client.ID,
		Description: "Mural para recepción",
		Items: []dto.QuotationItemRequest{
			{Description: "Mural 2x3m", Quantity: 2, UnitPrice: decimal.NewFromInt(500000)},
		},
	})
	require.NoError(t, err)

	assert.True(t, decimal.NewFromInt(1000000).Equal(resp.Subtotal))
	assert.True(t, decimal.NewFromInt(190000).Equal(resp.Tax))
	assert.True(t, decimal.NewFromInt(1190000).Equal(resp.Total))
}

func TestCrearCotizacionClienteInexistente(t *testing.T) {
	uc, _ := newUseCase(t)

	_, err := uc.Create(dto.CreateQuotationRequest{ClientID: "no-existe"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCrearCotizacionCantidadInvalida(t *testing.T) {
	uc, store := newUseCase(t)
	client := seedClient(t, store)

	_, err := uc.Create(dto.CreateQuotationRequest{
		ClientID: client.ID,
		Items:    []dto.QuotationItemRequest{{Description: "x", Quantity: 0, UnitPrice: decimal.NewFromInt(1000)}},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCambiarEstadoCotizacion(t *testing.T) {
	uc, store := newUseCase(t)
	client := seedClient(t, store)

	created, err := uc.Create(dto.CreateQuotationRequest{ClientID: client.ID})
	require.NoError(t, err)

	resp, err := uc.ChangeState(created.ID, dto.ChangeStateRequest{State: "SENT"})
	require.NoError(t, err)
	assert.Equal(t, "SENT", resp.State)

	resp, err = uc.ChangeState(created.ID, dto.ChangeStateRequest{State: "APPROVED"})
	require.NoError(t, err)
	assert.Equal(t, "APPROVED", resp.State)
}

func TestCambiarEstadoCotizacionDestinoInvalido(t *testing.T) {
	uc, store := newUseCase(t)
	client := seedClient(t, store)

	created, err := uc.Create(dto.CreateQuotationRequest{ClientID: client.ID})
	require.NoError(t, err)

	_, err = uc.ChangeState(created.ID, dto.ChangeStateRequest{State: "DRAFT"})
	assert.ErrorIs(t, err, domain.ErrBusinessRule)

	_, err = uc.ChangeState(created.ID, dto.ChangeStateRequest{State: "ARCHIVED"})
	assert.ErrorIs(t, err, domain.ErrBusinessRule)
}

func TestCambiarEstadoAprobadaVuelveAEnviada(t *testing.T) {
	// Las transiciones no validan adyacencia: APPROVED → SENT es permitido.
	uc, store := newUseCase(t)
	client := seedClient(t, store)

	created, err := uc.Create(dto.CreateQuotationRequest{ClientID: client.ID})
	require.NoError(t, err)

	_, err = uc.ChangeState(created.ID, dto.ChangeStateRequest{State: "APPROVED"})
	require.NoError(t, err)

	resp, err := uc.ChangeState(created.ID, dto.ChangeStateRequest{State: "SENT"})
	require.NoError(t, err)
	assert.Equal(t, "SENT", resp.State)
}

func TestActualizarCotizacionNoTocaTotales(t *testing.T) {
	uc, store := newUseCase(t)
	client := seedClient(t, store)

	created, err := uc.Create(dto.CreateQuotationRequest{ClientID: client.ID})
	require.NoError(t, err)

	nueva := "Escultura en bronce"
	resp, err := uc.Update(created.ID, dto.UpdateQuotationRequest{Description: &nueva})
	require.NoError(t, err)

	assert.Equal(t, nueva, resp.Description)
	assert.True(t, created.Total.Equal(resp.Total))
}

func TestEliminarCotizacion(t *testing.T) {
	uc, store := newUseCase(t)
	client := seedClient(t, store)

	created, err := uc.Create(dto.CreateQuotationRequest{ClientID: client.ID})
	require.NoError(t, err)

	require.NoError(t, uc.Delete(created.ID))

	_, err = uc.GetByID(created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestNumeroCotizacionConsecutivo(t *testing.T) {
	uc, store := newUseCase(t)
	client := seedClient(t, store)

	first, err := uc.Create(dto.CreateQuotationRequest{ClientID: client.ID})
	require.NoError(t, err)
	second, err := uc.Create(dto.CreateQuotationRequest{ClientID: client.ID})
	require.NoError(t, err)

	assert.Equal(t, first.Number+1, second.Number)
}

func TestListadoDespuesDeCrearNoSirveCacheObsoleto(t *testing.T) {
	uc, store := newUseCase(t)
	client := seedClient(t, store)

	_, err := uc.Create(dto.CreateQuotationRequest{ClientID: client.ID})
	require.NoError(t, err)

	list, err := uc.List(20, 0)
	require.NoError(t, err)
	require.Len(t, list, 1)

	// segunda creación debe invalidar la región y aparecer en el listado
	_, err = uc.Create(dto.CreateQuotationRequest{ClientID: client.ID})
	require.NoError(t, err)

	list, err = uc.List(20, 0)
	require.NoError(t, err)
	assert.Len(t, list, 2)
}
