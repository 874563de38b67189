package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Jawbreaker1989/queenscorner-api/internal/application/auth"
	"github.com/Jawbreaker1989/queenscorner-api/internal/application/dto"
	"github.com/Jawbreaker1989/queenscorner-api/internal/domain"
	"github.com/Jawbreaker1989/queenscorner-api/internal/infrastructure/memory"
	"github.com/Jawbreaker1989/queenscorner-api/pkg/jwt"
)

var jwtCfg = auth.JWTConfig{Secret: "secreto-de-prueba", ExpMinutes: 1440, Issuer: "queenscorner-api"}

func newUseCase(t *testing.T) (*auth.UseCase, *memory.Store) {
	t.Helper()
	store := memory.NewStore()
	return auth.NewUseCase(memory.NewUserRepository(store), jwtCfg), store
}

func TestLoginAdministrador(t *testing.T) {
	uc, _ := newUseCase(t)
	require.NoError(t, uc.SeedAdmin("admin", "admin123"))

	resp, err := uc.Login(dto.LoginRequest{Username: "admin", Password: "admin123"})
	require.NoError(t, err)

	assert.Equal(t, "Bearer", resp.TokenType)
	assert.Equal(t, 1440*60, resp.ExpiresIn)
	assert.Equal(t, "admin", resp.Username)
	assert.Equal(t, "admin", resp.Role)

	// el token emitido debe ser verificable con el mismo secreto
	_, username, role, err := jwt.Parse(jwtCfg.Secret, resp.Token)
	require.NoError(t, err)
	assert.Equal(t, "admin", username)
	assert.Equal(t, "admin", role)
}

func TestLoginPasswordIncorrecta(t *testing.T) {
	uc, _ := newUseCase(t)
	require.NoError(t, uc.SeedAdmin("admin", "admin123"))

	_, err := uc.Login(dto.LoginRequest{Username: "admin", Password: "otra"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLoginUsuarioInexistente(t *testing.T) {
	uc, _ := newUseCase(t)

	_, err := uc.Login(dto.LoginRequest{Username: "nadie", Password: "x"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLoginCamposVacios(t *testing.T) {
	uc, _ := newUseCase(t)

	_, err := uc.Login(dto.LoginRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSeedAdminEsIdempotente(t *testing.T) {
	uc, store := newUseCase(t)
	require.NoError(t, uc.SeedAdmin("admin", "admin123"))

	first, err := memory.NewUserRepository(store).GetByUsername("admin")
	require.NoError(t, err)

	// re-sembrar con otra contraseña conserva identidad y rota el hash
	require.NoError(t, uc.SeedAdmin("admin", "nueva-clave"))

	second, err := memory.NewUserRepository(store).GetByUsername("admin")
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, first.CreatedAt, second.CreatedAt)
	assert.NotEqual(t, first.PasswordHash, second.PasswordHash)

	_, err = uc.Login(dto.LoginRequest{Username: "admin", Password: "nueva-clave"})
	assert.NoError(t, err)
}
