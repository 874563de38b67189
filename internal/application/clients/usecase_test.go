package clients_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Jawbreaker1989/queenscorner-api/internal/application/clients"
	"github.com/Jawbreaker1989/queenscorner-api/internal/application/dto"
	"github.com/Jawbreaker1989/queenscorner-api/internal/domain"
	"github.com/Jawbreaker1989/queenscorner-api/internal/infrastructure/cache"
	"github.com/Jawbreaker1989/queenscorner-api/internal/infrastructure/memory"
)

func newUseCase(t *testing.T) *clients.UseCase {
	t.Helper()
	store := memory.NewStore()
	return clients.NewUseCase(
		memory.NewClientRepository(store),
		cache.NewRegional(time.Minute, 100),
	)
}

func TestCrearCliente(t *testing.T) {
	uc := newUseCase(t)

	resp, err := uc.Create(dto.CreateClientRequest{
		Name:  "Galería Norte",
		Email: "contacto@galerianorte.co",
		City:  "Bogotá",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, "Galería Norte", resp.Name)
	assert.True(t, resp.Active)
}

func TestCrearClienteSinNombre(t *testing.T) {
	uc := newUseCase(t)

	_, err := uc.Create(dto.CreateClientRequest{Email: "sin@nombre.co"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestObtenerClienteInexistente(t *testing.T) {
	uc := newUseCase(t)

	_, err := uc.GetByID("no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestActualizarCliente(t *testing.T) {
	uc := newUseCase(t)

	created, err := uc.Create(dto.CreateClientRequest{Name: "Galería Norte"})
	require.NoError(t, err)

	phone := "3001234567"
	resp, err := uc.Update(created.ID, dto.UpdateClientRequest{Phone: &phone})
	require.NoError(t, err)
	assert.Equal(t, phone, resp.Phone)
	assert.Equal(t, "Galería Norte", resp.Name)
}

func TestEliminarClienteEsBajaLogica(t *testing.T) {
	uc := newUseCase(t)

	created, err := uc.Create(dto.CreateClientRequest{Name: "Galería Norte"})
	require.NoError(t, err)

	require.NoError(t, uc.Delete(created.ID))

	// el cliente sigue consultable pero inactivo
	got, err := uc.GetByID(created.ID)
	require.NoError(t, err)
	assert.False(t, got.Active)
}

func TestActualizarClienteInactivo(t *testing.T) {
	uc := newUseCase(t)

	created, err := uc.Create(dto.CreateClientRequest{Name: "Galería Norte"})
	require.NoError(t, err)
	require.NoError(t, uc.Delete(created.ID))

	name := "Otro nombre"
	_, err = uc.Update(created.ID, dto.UpdateClientRequest{Name: &name})
	assert.ErrorIs(t, err, domain.ErrBusinessRule)
}

func TestListarSoloActivos(t *testing.T) {
	uc := newUseCase(t)

	first, err := uc.Create(dto.CreateClientRequest{Name: "Activo"})
	require.NoError(t, err)
	second, err := uc.Create(dto.CreateClientRequest{Name: "Inactivo"})
	require.NoError(t, err)
	require.NoError(t, uc.Delete(second.ID))

	actives, err := uc.List(true, 20, 0)
	require.NoError(t, err)
	require.Len(t, actives, 1)
	assert.Equal(t, first.ID, actives[0].ID)

	all, err := uc.List(false, 20, 0)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}
